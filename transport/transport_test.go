package transport

import (
	"context"
	"io"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSource_ReadLine(t *testing.T) {
	r := strings.NewReader("!AIVDM,1,1,,A,15M67FC000G?ufbE`FepT@3n00Sa,0*5C\n!AIVDM,1,1,,B,abc,0*00\n")
	src := NewFileSource(r)
	defer src.Close()

	ctx := context.Background()
	line1, err := src.ReadLine(ctx)
	require.NoError(t, err)
	assert.Equal(t, "!AIVDM,1,1,,A,15M67FC000G?ufbE`FepT@3n00Sa,0*5C", string(line1))

	line2, err := src.ReadLine(ctx)
	require.NoError(t, err)
	assert.Equal(t, "!AIVDM,1,1,,B,abc,0*00", string(line2))

	_, err = src.ReadLine(ctx)
	assert.ErrorIs(t, err, io.EOF)
}

func TestFileSource_ReadLine_CancelledContext(t *testing.T) {
	r := strings.NewReader("one\ntwo\n")
	src := NewFileSource(r)
	defer src.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := src.ReadLine(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestUDPSource_ReadLine(t *testing.T) {
	src, err := ListenUDP("127.0.0.1:0")
	require.NoError(t, err)
	defer src.Close()

	addr := src.conn.LocalAddr().(*net.UDPAddr)
	conn, err := net.Dial("udp", addr.String())
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Write([]byte("!AIVDM,1,1,,A,abc,0*00\r\n"))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	line, err := src.ReadLine(ctx)
	require.NoError(t, err)
	assert.Equal(t, "!AIVDM,1,1,,A,abc,0*00", string(line))
}
