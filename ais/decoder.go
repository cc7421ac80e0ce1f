package ais

import (
	"errors"
	"fmt"

	"github.com/aldas/go-ais-client/internal/bits"
)

// ErrUnsupportedMessageType is returned by Decode for a message type
// value outside 1-27.
var ErrUnsupportedMessageType = errors.New("ais: unsupported message type")

// ErrEmptyPayload is returned when Decode is given a zero-length bit
// stream: not enough bits even for the 6-bit message type field.
var ErrEmptyPayload = errors.New("ais: payload too short to contain a message type")

// Decoder decodes ASCII-6 packed AIS payloads into Messages, walking
// each message type's declarative Field table the way go-nmea-client's
// canboat decoder walks a PGN's field table (canboat/decoder.go), but
// over an MSB-first bit stream instead of byte-aligned CAN data.
type Decoder struct{}

// NewDecoder creates a Decoder. It carries no state: AIS field tables
// are read-only globals, unlike go-nmea-client's canboat Decoder which
// owns a mutable PGN registry.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode decodes one assembled AIS payload (already fragment-reassembled,
// see AssembledMessage.Payload/FillBits) into a Message.
//
// Short payloads are tolerated: if the bit stream runs
// out mid-field, decoding stops and the Message carries only the
// fields read so far, with no error - this is the documented policy for
// types 7/13/15/16/20 whose trailing repeated groups are optional, and
// applies uniformly to any other truncated payload too.
func (d *Decoder) Decode(payload string, fillBits uint8) (*Message, error) {
	r, err := bits.NewReader(payload, fillBits)
	if err != nil {
		return nil, fmt.Errorf("ais: decoding payload: %w", err)
	}
	if r.Len() < 6 {
		return nil, ErrEmptyPayload
	}
	msgTypeBits, err := r.ReadUint(6)
	if err != nil {
		return nil, fmt.Errorf("ais: reading message type: %w", err)
	}
	msgType := int(msgTypeBits)

	// rewind: the shared decodeFields walk re-reads msg_type as the
	// table's first field, keeping the table the single source of
	// truth for field order.
	r, err = bits.NewReader(payload, fillBits)
	if err != nil {
		return nil, err
	}

	switch msgType {
	case 1, 2, 3:
		mode := radioSOTDMA
		if msgType == 3 {
			mode = radioITDMA
		}
		return d.decodePositionReportA(r, msgType, mode)
	case 4, 11:
		return decodeFields(r, msgType, baseStationReport)
	case 5:
		return decodeFields(r, msgType, staticAndVoyageData)
	case 6:
		return decodeBinaryAddressed(r, msgType)
	case 7, 13:
		return decodeAckSlots(r, msgType)
	case 8:
		return decodeBinaryBroadcast(r, msgType)
	case 9:
		return d.decodeSAR(r, msgType)
	case 10:
		return decodeFields(r, msgType, utcInquiry)
	case 12:
		return decodeAddressedSafety(r, msgType)
	case 14:
		return decodeSafetyBroadcast(r, msgType)
	case 15:
		return decodeInterrogation(r, msgType)
	case 16:
		return decodeAssignmentModeCommand(r, msgType)
	case 17:
		return decodeDGNSSBroadcast(r, msgType)
	case 18:
		return d.decodeStandardClassB(r, msgType)
	case 19:
		return decodeFields(r, msgType, extendedClassBPositionReport)
	case 20:
		return decodeDataLinkManagement(r, msgType)
	case 21:
		return decodeFields(r, msgType, aidToNavigationReport)
	case 22:
		return decodeChannelManagement(r, msgType)
	case 23:
		return decodeFields(r, msgType, groupAssignmentCommand)
	case 24:
		return decodeStaticDataReport(r, msgType)
	case 25:
		return decodeBinaryMessageSingleSlot(r, msgType)
	case 26:
		return decodeBinaryMessageMultiSlot(r, msgType)
	case 27:
		return decodeFields(r, msgType, longRangeBroadcast)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedMessageType, msgType)
	}
}

// decodeFields walks table in order, stopping (without error) the
// moment the bit stream can't satisfy the next field - the short
// payload tolerance policy every call site shares.
func decodeFields(r *bits.Reader, msgType int, table []Field) (*Message, error) {
	m := newMessage(msgType)
	for _, f := range table {
		v, err := readField(r, f)
		if err != nil {
			if errors.Is(err, bits.ErrOutOfRange) {
				break
			}
			return nil, fmt.Errorf("ais: decoding field %q: %w", f.Name, err)
		}
		m.append(v)
		if f.Name == "mmsi" {
			m.MMSI = v.Str
		}
		if f.Name == "repeat" {
			m.Repeat = uint8(v.Uint)
		}
	}
	return m, nil
}

func readField(r *bits.Reader, f Field) (Value, error) {
	v := Value{Name: f.Name, Kind: f.Kind, Available: true}
	switch f.Kind {
	case KindUint:
		raw, err := r.ReadUint(f.Bits)
		if err != nil {
			return Value{}, err
		}
		v.Uint = raw
		if f.Scale != 0 {
			v.Float = float64(raw) / f.Scale
		}
	case KindInt:
		raw, err := r.ReadInt(f.Bits)
		if err != nil {
			return Value{}, err
		}
		v.Int = raw
		if f.Scale != 0 {
			v.Float = float64(raw) / f.Scale
		}
	case KindBool:
		raw, err := r.ReadBool()
		if err != nil {
			return Value{}, err
		}
		v.Bool = raw
	case KindString:
		s, err := r.ReadString(f.Bits)
		if err != nil {
			return Value{}, err
		}
		v.Str = s
	case KindRaw:
		raw, err := r.ReadRaw(f.Bits)
		if err != nil {
			return Value{}, err
		}
		v.Raw = raw
	case KindMMSI:
		raw, err := r.ReadUint(30)
		if err != nil {
			return Value{}, err
		}
		v.Uint = raw
		v.Str = fmt.Sprintf("%09d", raw)
	case KindEnum:
		raw, err := r.ReadUint(f.Bits)
		if err != nil {
			return Value{}, err
		}
		v.Uint = raw
		v.Label = enumLabel(f.Enum, raw)
	case KindTurn:
		raw, err := r.ReadInt(f.Bits)
		if err != nil {
			return Value{}, err
		}
		v.Int = raw
		deg, available := decodeTurnRate(raw)
		v.Float = deg
		v.Available = available
	default:
		return Value{}, fmt.Errorf("ais: unknown field kind %d", f.Kind)
	}
	return v, nil
}

func (d *Decoder) decodePositionReportA(r *bits.Reader, msgType int, mode radioMode) (*Message, error) {
	m, err := decodeFields(r, msgType, positionReportA)
	if err != nil {
		return nil, err
	}
	attachRadio(m, "radio", 19, mode)
	return m, nil
}

func (d *Decoder) decodeSAR(r *bits.Reader, msgType int) (*Message, error) {
	m, err := decodeFields(r, msgType, sarAircraftPositionReport)
	if err != nil {
		return nil, err
	}
	attachRadio(m, "radio", 20, radioSOTDMA)
	return m, nil
}

func (d *Decoder) decodeStandardClassB(r *bits.Reader, msgType int) (*Message, error) {
	m, err := decodeFields(r, msgType, standardClassBPositionReport)
	if err != nil {
		return nil, err
	}
	attachRadio(m, "radio", 20, radioAuto)
	return m, nil
}

// attachRadio re-resolves the already-read raw "radio" field's bits
// into RadioStatus sub-fields, appended as synthetic Values so callers
// can read them with Message.Get without a separate return type.
func attachRadio(m *Message, fieldName string, width int, mode radioMode) {
	v, ok := m.Get(fieldName)
	if !ok {
		return
	}
	rs := decodeRadioStatus(v.Uint, width, mode)
	m.append(Value{Name: "radio_sync_state", Kind: KindUint, Uint: rs.SyncState, Available: true})
	if rs.SOTDMA {
		m.append(Value{Name: "radio_slot_timeout", Kind: KindUint, Uint: rs.SlotTimeout, Available: true})
		m.append(Value{Name: "radio_sub_message", Kind: KindUint, Uint: rs.SubMessage, Available: true})
	} else {
		m.append(Value{Name: "radio_slot_increment", Kind: KindUint, Uint: rs.SlotIncrement, Available: true})
		m.append(Value{Name: "radio_slots_to_allocate", Kind: KindUint, Uint: rs.SlotsToAllocate, Available: true})
		m.append(Value{Name: "radio_keep_flag", Kind: KindBool, Bool: rs.KeepFlag, Available: true})
	}
}
