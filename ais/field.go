package ais

// Kind identifies how a Field's raw bits are interpreted.
type Kind uint8

const (
	// KindUint is an unsigned integer, optionally divided by Scale.
	KindUint Kind = iota
	// KindInt is a two's complement signed integer, optionally divided
	// by Scale.
	KindInt
	// KindBool is a single bit.
	KindBool
	// KindString is ASCII-6 packed text (ITU-R M.1371 table 47), '@'
	// padded, trimmed of trailing '@' on decode.
	KindString
	// KindRaw is an opaque bit run, kept as MSB-aligned bytes.
	KindRaw
	// KindMMSI is a 30-bit unsigned integer formatted as a zero-padded
	// 9-digit string, the way every message type's station identity
	// field is presented.
	KindMMSI
	// KindEnum is an unsigned integer resolved against Field.Enum into
	// a label; the raw code is preserved alongside the label.
	KindEnum
	// KindTurn is the 8-bit ROTais encoding.
	KindTurn
)

// Field describes one fixed-width element of an AIS message's bit
// layout, the declarative counterpart to go-nmea-client's PGN field
// tables (canboatpgns.go) but for ASCII-6 packed bits instead of
// byte-aligned CAN data.
type Field struct {
	Name string
	Bits int
	Kind Kind

	// Scale divides the raw integer value for KindUint/KindInt fields
	// carrying a fixed-point quantity (e.g. speed over ground, scale
	// 10 for 0.1 knot units). Zero means unscaled.
	Scale float64

	// Enum maps raw codes to labels for KindEnum fields.
	Enum map[uint64]string
}

func u(name string, bits int) Field              { return Field{Name: name, Bits: bits, Kind: KindUint} }
func uScaled(name string, bits int, s float64) Field {
	return Field{Name: name, Bits: bits, Kind: KindUint, Scale: s}
}
func i(name string, bits int) Field { return Field{Name: name, Bits: bits, Kind: KindInt} }
func iScaled(name string, bits int, s float64) Field {
	return Field{Name: name, Bits: bits, Kind: KindInt, Scale: s}
}
func b(name string, bits int) Field      { return Field{Name: name, Bits: bits, Kind: KindBool} }
func str(name string, bits int) Field    { return Field{Name: name, Bits: bits, Kind: KindString} }
func raw(name string, bits int) Field    { return Field{Name: name, Bits: bits, Kind: KindRaw} }
func mmsiField(name string) Field        { return Field{Name: name, Bits: 30, Kind: KindMMSI} }
func enum(name string, bits int, e map[uint64]string) Field {
	return Field{Name: name, Bits: bits, Kind: KindEnum, Enum: e}
}
func turn(name string) Field { return Field{Name: name, Bits: 8, Kind: KindTurn} }
