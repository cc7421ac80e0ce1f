// Package transport provides LineSource adapters feeding raw NMEA
// sentence lines into a Framer, mirroring go-nmea-client's
// RawMessageReader/RawMessageWriter split (interface.go) adapted from
// framed binary messages to newline-delimited text.
package transport

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net"
	"strings"
	"time"

	"github.com/tarm/serial"
)

// LineSource reads successive raw NMEA sentence lines (line terminator
// stripped; any tag block prefix is kept for Framer.Parse) from some
// underlying stream. A LineSource
// must not be shared across independent streams, the same ownership
// rule as FragmentAssembler/Framer.
type LineSource interface {
	ReadLine(ctx context.Context) ([]byte, error)
	Close() error
}

// FileSource reads lines from an io.Reader with bufio.Scanner, grounded
// on canboat.Device's plain line-oriented reading of a file-backed
// io.ReadWriteCloser.
type FileSource struct {
	closer  io.Closer
	scanner *bufio.Scanner
}

// NewFileSource wraps r (closed by Close, if it implements io.Closer).
func NewFileSource(r io.Reader) *FileSource {
	fs := &FileSource{scanner: bufio.NewScanner(r)}
	if c, ok := r.(io.Closer); ok {
		fs.closer = c
	}
	return fs
}

// ReadLine returns the next line. ctx cancellation is checked before
// each read since bufio.Scanner itself has no cancellation hook.
func (f *FileSource) ReadLine(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !f.scanner.Scan() {
		if err := f.scanner.Err(); err != nil {
			return nil, err
		}
		return nil, io.EOF
	}
	return f.scanner.Bytes(), nil
}

// Close closes the underlying reader, if closeable.
func (f *FileSource) Close() error {
	if f.closer == nil {
		return nil
	}
	return f.closer.Close()
}

// dialTimeout bounds how long TCPSource/UDPSource wait to establish
// their connection.
const dialTimeout = 10 * time.Second

// TCPSource dials a tcp:// address and reads newline-delimited
// sentences from the connection, grounded on cmd/n2kreader/main.go's
// `strings.HasPrefix(*deviceAddr, "tcp://")` + net.Dialer branch.
type TCPSource struct {
	conn    net.Conn
	scanner *bufio.Scanner
}

// DialTCP connects to addr (host:port, no "tcp://" prefix).
func DialTCP(ctx context.Context, addr string) (*TCPSource, error) {
	dialer := net.Dialer{Timeout: dialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("transport: dialing %q: %w", addr, err)
	}
	return &TCPSource{conn: conn, scanner: bufio.NewScanner(conn)}, nil
}

// ReadLine returns the next line read off the connection.
func (t *TCPSource) ReadLine(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !t.scanner.Scan() {
		if err := t.scanner.Err(); err != nil {
			return nil, err
		}
		return nil, io.EOF
	}
	return t.scanner.Bytes(), nil
}

// Close closes the TCP connection.
func (t *TCPSource) Close() error {
	return t.conn.Close()
}

// UDPSource reads whole datagrams, each expected to carry one sentence
// line (UDP AIS relays, e.g. OpenCPN's network output, send one
// sentence per packet rather than a byte stream).
type UDPSource struct {
	conn net.PacketConn
	buf  []byte
}

// udpReadBufferSize comfortably exceeds MaxSentenceLength plus any tag
// block prefix a relay might prepend.
const udpReadBufferSize = 4096

// ListenUDP opens a UDP socket on addr (host:port).
func ListenUDP(addr string) (*UDPSource, error) {
	conn, err := net.ListenPacket("udp", addr)
	if err != nil {
		return nil, fmt.Errorf("transport: listening on %q: %w", addr, err)
	}
	return &UDPSource{conn: conn, buf: make([]byte, udpReadBufferSize)}, nil
}

// ReadLine blocks for the next datagram, trimmed of its line terminator.
func (u *UDPSource) ReadLine(ctx context.Context) ([]byte, error) {
	if deadline, ok := ctx.Deadline(); ok {
		_ = u.conn.SetReadDeadline(deadline)
	}
	n, _, err := u.conn.ReadFrom(u.buf)
	if err != nil {
		return nil, err
	}
	line := u.buf[:n]
	line = []byte(strings.TrimRight(string(line), "\r\n"))
	return line, nil
}

// Close closes the UDP socket.
func (u *UDPSource) Close() error {
	return u.conn.Close()
}

// SerialSource reads lines from a serial device, grounded on
// cmd/n2kreader/main.go's tarm/serial.OpenPort usage for the Actisense
// NGT-1 USB device, adapted from NMEA 2000's binary framing to AIS's
// line-oriented one.
type SerialSource struct {
	port    io.ReadWriteCloser
	scanner *bufio.Scanner
}

// SerialConfig mirrors the subset of tarm/serial.Config exposed as
// command-line flags.
type SerialConfig struct {
	Name        string
	Baud        int
	ReadTimeout time.Duration
}

// OpenSerial opens the named serial device at the given baud rate.
func OpenSerial(cfg SerialConfig) (*SerialSource, error) {
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = 100 * time.Millisecond
	}
	port, err := serial.OpenPort(&serial.Config{
		Name:        cfg.Name,
		Baud:        cfg.Baud,
		ReadTimeout: cfg.ReadTimeout,
		Size:        8,
	})
	if err != nil {
		return nil, fmt.Errorf("transport: opening serial port %q: %w", cfg.Name, err)
	}
	return &SerialSource{port: port, scanner: bufio.NewScanner(port)}, nil
}

// ReadLine returns the next line read off the serial port.
func (s *SerialSource) ReadLine(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return nil, err
		}
		return nil, io.EOF
	}
	return s.scanner.Bytes(), nil
}

// Close closes the serial port.
func (s *SerialSource) Close() error {
	return s.port.Close()
}
