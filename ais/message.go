package ais

import "fmt"

// Value is one decoded field of a Message: a tagged union over the
// Kind space, the same "FieldValue" shape go-nmea-client uses to
// represent a CAN PGN's fields without per-PGN Go structs
// (fieldvalue.go), adapted here to ASCII-6 packed AIS fields instead
// of byte-aligned NMEA2000 ones.
type Value struct {
	Name string
	Kind Kind

	Uint  uint64
	Int   int64
	Bool  bool
	Str   string
	Raw   []byte
	Float float64 // populated for Scale != 0 fields, KindTurn, and distance/position conversions
	Label string  // populated for KindEnum

	Available bool // false for fields carrying a "not available" sentinel
}

// Message is a decoded AIS payload: the message type's numeric header
// plus an ordered bag of Values, mirroring go-nmea-client's
// FieldValues (fieldvalue.go) rather than 27 bespoke Go structs -
// every message type shares one declarative shape, only the Fields
// table driving the decode differs.
type Message struct {
	Type   int
	Repeat uint8
	MMSI   string

	Values []Value

	index map[string]int
}

func newMessage(msgType int) *Message {
	return &Message{Type: msgType, index: make(map[string]int)}
}

func (m *Message) append(v Value) {
	m.index[v.Name] = len(m.Values)
	m.Values = append(m.Values, v)
}

// Get returns the named field and whether it was decoded (it may be
// absent on a short/truncated payload).
func (m *Message) Get(name string) (Value, bool) {
	idx, ok := m.index[name]
	if !ok {
		return Value{}, false
	}
	return m.Values[idx], true
}

// Uint returns the named field's unsigned integer value, or 0 if absent.
func (m *Message) Uint(name string) uint64 {
	v, _ := m.Get(name)
	return v.Uint
}

// Int returns the named field's signed integer value, or 0 if absent.
func (m *Message) Int(name string) int64 {
	v, _ := m.Get(name)
	return v.Int
}

// Float returns the named field's scaled numeric value, or 0 if absent.
func (m *Message) Float(name string) float64 {
	v, _ := m.Get(name)
	return v.Float
}

// String returns the named field's decoded text, or "" if absent.
func (m *Message) String(name string) string {
	v, _ := m.Get(name)
	return v.Str
}

// Bool returns the named field's boolean value, or false if absent.
func (m *Message) Bool(name string) bool {
	v, _ := m.Get(name)
	return v.Bool
}

// Label returns the named enum field's resolved label, or "" if absent.
func (m *Message) Label(name string) string {
	v, _ := m.Get(name)
	return v.Label
}

// GoString implements fmt.GoStringer for readable debug output.
func (m *Message) GoString() string {
	return fmt.Sprintf("ais.Message{Type: %d, MMSI: %q, %d fields}", m.Type, m.MMSI, len(m.Values))
}
