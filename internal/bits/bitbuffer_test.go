package bits

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_ReadUint(t *testing.T) {
	var testCases = []struct {
		name     string
		payload  string
		fillBits uint8
		readBits int
		expect   uint64
	}{
		{name: "ok, single char, 6 bits", payload: "0", readBits: 6, expect: 0},
		{name: "ok, 'w' is max value", payload: "w", readBits: 6, expect: 63},
		{name: "ok, multi char, msg type", payload: "15", readBits: 6, expect: 1},
		{name: "ok, with fill bits", payload: "0", fillBits: 2, readBits: 4, expect: 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := NewReader(tc.payload, tc.fillBits)
			require.NoError(t, err)

			v, err := r.ReadUint(tc.readBits)
			assert.NoError(t, err)
			assert.Equal(t, tc.expect, v)
		})
	}
}

func TestReader_NonPrintable(t *testing.T) {
	_, err := NewReader(string([]byte{127}), 0)
	assert.ErrorIs(t, err, ErrNonPrintable)
}

func TestReader_ReadInt_RoundTrip(t *testing.T) {
	var testCases = []int64{-128, -1, 0, 1, 127, -64, 63}
	for _, v := range testCases {
		w := NewWriter()
		w.WriteInt(v, 8)
		payload, fill := w.Bytes()

		r, err := NewReader(payload, fill)
		require.NoError(t, err)
		got, err := r.ReadInt(8)
		require.NoError(t, err)
		assert.Equal(t, v, got, "value: %v", v)
	}
}

func TestReader_ReadString(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.WriteString("HELLO", 42))
	payload, fill := w.Bytes()

	r, err := NewReader(payload, fill)
	require.NoError(t, err)
	s, err := r.ReadString(42)
	require.NoError(t, err)
	assert.Equal(t, "HELLO", s)
}

func TestReader_ReadString_PaddingOnlyTrimmedToEmpty(t *testing.T) {
	w := NewWriter()
	w.WriteUint(0, 6) // value 0 is '@', the padding character
	// every entry of the six-bit table is a printable glyph, so this
	// exercises the trailing-'@' trim path: a field holding only padding
	// reads back as "".
	payload, fill := w.Bytes()
	r, err := NewReader(payload, fill)
	require.NoError(t, err)
	s, err := r.ReadString(6)
	require.NoError(t, err)
	assert.Equal(t, "", s)
}

func TestReader_ReadRaw(t *testing.T) {
	w := NewWriter()
	w.WriteRaw([]byte{0xAB, 0xCD}, 16)
	payload, fill := w.Bytes()

	r, err := NewReader(payload, fill)
	require.NoError(t, err)
	b, err := r.ReadRaw(16)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xAB, 0xCD}, b)
}

func TestReader_ReadRaw_PartialByte(t *testing.T) {
	w := NewWriter()
	w.WriteUint(0b101, 3)
	payload, fill := w.Bytes()

	r, err := NewReader(payload, fill)
	require.NoError(t, err)
	b, err := r.ReadRaw(3)
	require.NoError(t, err)
	assert.Equal(t, []byte{0b10100000}, b)
}

func TestReader_OutOfRange(t *testing.T) {
	r, err := NewReader("0", 0)
	require.NoError(t, err)
	_, err = r.ReadUint(7)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestWriter_Bytes_FillBits(t *testing.T) {
	w := NewWriter()
	w.WriteUint(1, 7) // 7 bits -> needs 5 fill bits to reach 12 (2 chars)
	payload, fill := w.Bytes()
	assert.Equal(t, uint8(5), fill)
	assert.Len(t, payload, 2)
}
