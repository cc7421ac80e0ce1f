package aisnmea

import "errors"

// Error taxonomy. Each distinguishable failure condition gets its own
// sentinel so callers can distinguish failure modes with errors.Is, the same way
// go-nmea-client exports ErrValueNoData/ErrValueOutOfRange/ErrValueReserved
// and ErrDecodeUnknownPGN as distinguishable sentinels rather than one
// generic error type.
var (
	// ErrInvalidChecksum is returned when a sentence's or tag block's
	// computed XOR checksum does not match the one carried on the wire.
	ErrInvalidChecksum = errors.New("aisnmea: invalid checksum")
	// ErrNonPrintableCharacter is returned when a payload contains a byte
	// outside the ASCII-6 alphabet.
	ErrNonPrintableCharacter = errors.New("aisnmea: non-printable character in payload")
	// ErrMissingMultipartMessage is returned by FragmentAssembler.Reset
	// for every in-flight group that was discarded before it ever
	// received all of its fragments.
	ErrMissingMultipartMessage = errors.New("aisnmea: missing part of multi-fragment message")
	// ErrMissingPayload is returned when an assembled sentence group
	// produced a zero-length payload.
	ErrMissingPayload = errors.New("aisnmea: assembled payload is empty")
	// ErrInvalidNMEAMessage is returned for framing violations: missing
	// '*', wrong field count, or total length over 82 characters.
	ErrInvalidNMEAMessage = errors.New("aisnmea: invalid NMEA sentence framing")
	// ErrInvalidData is returned by Encoder.Encode when the header is not
	// 5 characters. Field values are not checked against it: a string
	// longer than its field fails with the ais encoder's own error, and
	// an integer wider than its field is written as its low bits.
	ErrInvalidData = errors.New("aisnmea: value invalid for field")
)
