package aisnmea

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGatehouse_Fields(t *testing.T) {
	fields := []string{"$PGHP", "1", "2022", "12", "21", "12", "35", "43", "123", "", "2", "", "1"}

	g, err := ParseGatehouse(fields)
	require.NoError(t, err)

	assert.Equal(t, GatehouseInfo{
		Year: 2022, Month: 12, Day: 21,
		Hour: 12, Minute: 35, Second: 43, MS: 123,
		PSS: "", Region: "2", Country: "", OnlineData: "1",
	}, g)
}

func TestParseGatehouse_TooFewFields(t *testing.T) {
	_, err := ParseGatehouse([]string{"$PGHP", "1", "2022"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidNMEAMessage)
}

func TestParseGatehouse_InvalidYear(t *testing.T) {
	fields := []string{"$PGHP", "1", "abcd", "12", "21", "12", "35", "43", "123", "", "2"}
	_, err := ParseGatehouse(fields)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidNMEAMessage)
}

func TestIsGatehouseTalker(t *testing.T) {
	assert.True(t, isGatehouseTalker("$PGHP"))
	assert.False(t, isGatehouseTalker("!AIVDM"))
}

// TestFramer_Parse_GatehouseAttachesToNextSentence exercises the
// wrapper-then-AIS-sentence pairing the way a Gatehouse receiver
// actually emits them on the wire: $PGHP is buffered and attached to
// whichever AIVDM/AIVDO sentence follows it.
func TestFramer_Parse_GatehouseAttachesToNextSentence(t *testing.T) {
	f := NewFramer(ParserConfig{})

	s, err := f.Parse([]byte("$PGHP,1,2022,12,21,12,35,43,123,,2,,1*0D"))
	require.NoError(t, err)
	assert.Nil(t, s, "a Gatehouse wrapper is buffered, not returned")

	s, err = f.Parse([]byte("!AIVDM,1,1,,A,15NG6V0P01G?cFhE`R2IU?wn28R>,0*06"))
	require.NoError(t, err)
	require.NotNil(t, s)
	require.NotNil(t, s.Gatehouse)
	assert.Equal(t, 2022, s.Gatehouse.Year)
	assert.Equal(t, 12, s.Gatehouse.Month)
	assert.Equal(t, 21, s.Gatehouse.Day)

	// the wrapper does not carry over to a second, unrelated sentence.
	s, err = f.Parse([]byte("!AIVDM,1,1,,A,15NG6V0P01G?cFhE`R2IU?wn28R>,0*06"))
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Nil(t, s.Gatehouse)
}
