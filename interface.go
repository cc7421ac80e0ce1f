package aisnmea

import "context"

// LineSource is the external collaborator this module consumes: it
// yields one sentence's worth of bytes per call. Implementations must
// not split a sentence across calls; lines beginning with '#' and empty
// lines are skipped by Framer.Parse itself. Concrete adapters (file/TCP/UDP/serial) live in the
// transport package; this interface is the seam the core pipeline
// consumes, mirroring go-nmea-client's RawMessageReader (interface.go).
type LineSource interface {
	// ReadLine returns the next line's bytes, without the terminator.
	ReadLine(ctx context.Context) ([]byte, error)
	Close() error
}
