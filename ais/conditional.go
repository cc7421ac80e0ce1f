package ais

import (
	"errors"
	"fmt"

	"github.com/aldas/go-ais-client/internal/bits"
)

// This file holds the message types whose layout genuinely branches on
// already-decoded bits:
// type 22 (branch on `addressed`), type 24 (branch on `part_number`),
// types 25/26 (branch on `addressed`/`structured`), plus the repeated
// groups of types 6/7/8/12/13/14/15/16/20 whose trailing entries are
// simply however many the payload has room for - those use
// decodeFields' ordinary short-payload stop, just with a header/slot
// split instead of one flat table.

func decodeBinaryAddressed(r *bits.Reader, msgType int) (*Message, error) {
	m, err := decodeFields(r, msgType, binaryAddressedMessageHeader)
	if err != nil {
		return nil, err
	}
	appendRemainingRaw(m, r, "data")
	return m, nil
}

func decodeBinaryBroadcast(r *bits.Reader, msgType int) (*Message, error) {
	m, err := decodeFields(r, msgType, binaryBroadcastMessageHeader)
	if err != nil {
		return nil, err
	}
	appendRemainingRaw(m, r, "data")
	return m, nil
}

func decodeAddressedSafety(r *bits.Reader, msgType int) (*Message, error) {
	m, err := decodeFields(r, msgType, addressedSafetyMessageHeader)
	if err != nil {
		return nil, err
	}
	appendRemainingString(m, r, "text")
	return m, nil
}

func decodeSafetyBroadcast(r *bits.Reader, msgType int) (*Message, error) {
	m, err := decodeFields(r, msgType, safetyBroadcastMessageHeader)
	if err != nil {
		return nil, err
	}
	appendRemainingString(m, r, "text")
	return m, nil
}

// decodeAckSlots decodes types 7/13 (binary/safety related
// acknowledge): a header followed by up to 4 (mmsi, seqno) pairs,
// however many the payload has room for.
func decodeAckSlots(r *bits.Reader, msgType int) (*Message, error) {
	m, err := decodeFields(r, msgType, binaryAcknowledgeHeader)
	if err != nil {
		return nil, err
	}
	for slot := 1; slot <= 4; slot++ {
		for _, f := range binaryAckSlot {
			v, err := readField(r, f)
			if err != nil {
				if errors.Is(err, bits.ErrOutOfRange) {
					return m, nil
				}
				return nil, err
			}
			v.Name = fmt.Sprintf("%s%d", f.Name, slot)
			m.append(v)
		}
	}
	return m, nil
}

// decodeInterrogation decodes type 15: up to 2 stations, each with up
// to 2 (req_msg_type, slot_offset) requests - stop at whatever the
// payload actually carries.
func decodeInterrogation(r *bits.Reader, msgType int) (*Message, error) {
	m, err := decodeFields(r, msgType, interrogationHeader)
	if err != nil {
		return nil, err
	}
	for station := 1; station <= 2; station++ {
		mmsiV, err := readField(r, mmsiField(fmt.Sprintf("mmsi%d", station)))
		if err != nil {
			if errors.Is(err, bits.ErrOutOfRange) {
				return m, nil
			}
			return nil, err
		}
		m.append(mmsiV)
		for req := 1; req <= 2; req++ {
			for _, f := range interrogationRequest {
				v, err := readField(r, f)
				if err != nil {
					if errors.Is(err, bits.ErrOutOfRange) {
						return m, nil
					}
					return nil, err
				}
				v.Name = fmt.Sprintf("%s_%d_%d", f.Name, station, req)
				m.append(v)
			}
		}
	}
	return m, nil
}

// decodeAssignmentModeCommand decodes type 16: a header followed by
// one or two (dest_mmsi, offset, increment) triples - the payload is
// 96 bits for one, 144 for two.
func decodeAssignmentModeCommand(r *bits.Reader, msgType int) (*Message, error) {
	m, err := decodeFields(r, msgType, assignmentModeCommandHeader)
	if err != nil {
		return nil, err
	}
	for slot := 1; slot <= 2; slot++ {
		for _, f := range assignmentModeCommandSlot {
			v, err := readField(r, f)
			if err != nil {
				if errors.Is(err, bits.ErrOutOfRange) {
					return m, nil
				}
				return nil, err
			}
			v.Name = fmt.Sprintf("%s%d", f.Name, slot)
			m.append(v)
		}
	}
	return m, nil
}

func decodeDGNSSBroadcast(r *bits.Reader, msgType int) (*Message, error) {
	m, err := decodeFields(r, msgType, dgnssBroadcastHeader)
	if err != nil {
		return nil, err
	}
	appendRemainingRaw(m, r, "data")
	return m, nil
}

// decodeDataLinkManagement decodes type 20: a header followed by up to
// 4 repeated (offset, number, timeout, increment) groups.
func decodeDataLinkManagement(r *bits.Reader, msgType int) (*Message, error) {
	m, err := decodeFields(r, msgType, dataLinkManagementHeader)
	if err != nil {
		return nil, err
	}
	for slot := 1; slot <= 4; slot++ {
		for _, f := range dataLinkManagementSlot {
			v, err := readField(r, f)
			if err != nil {
				if errors.Is(err, bits.ErrOutOfRange) {
					return m, nil
				}
				return nil, err
			}
			v.Name = fmt.Sprintf("%s%d", f.Name, slot)
			m.append(v)
		}
	}
	return m, nil
}

// decodeChannelManagement decodes type 22. The `addressed` flag that
// selects its branch sits at absolute bit offset 139, after the
// 70-bit section it governs, so the branch section is
// peeked before being interpreted rather than read in file order.
func decodeChannelManagement(r *bits.Reader, msgType int) (*Message, error) {
	header := []Field{
		u("msg_type", 6),
		u("repeat", 2),
		mmsiField("mmsi"),
		raw("spare", 2),
	}
	m, err := decodeFields(r, msgType, header)
	if err != nil {
		return nil, err
	}

	tail := []Field{
		u("channel_a", 12),
		u("channel_b", 12),
		u("txrx_mode", 4),
		b("power", 1),
	}
	for _, f := range tail {
		v, terr := readField(r, f)
		if terr != nil {
			if errors.Is(terr, bits.ErrOutOfRange) {
				return m, nil
			}
			return nil, terr
		}
		m.append(v)
	}

	// The addressed/region-rectangle branch (70 bits) sits here, but
	// which layout it holds is only known once the `addressed` flag
	// just past it is read - so the 70 bits are captured raw first and
	// reinterpreted against the right field table afterwards.
	branchBits, err := r.ReadRaw(70)
	if err != nil {
		if errors.Is(err, bits.ErrOutOfRange) {
			return m, nil
		}
		return nil, err
	}
	branch, err := bits.NewReaderFromRaw(branchBits, 70)
	if err != nil {
		return nil, err
	}

	addressedV, err := readField(r, b("addressed", 1))
	if err != nil {
		if errors.Is(err, bits.ErrOutOfRange) {
			return m, nil
		}
		return nil, err
	}
	m.append(addressedV)

	if addressedV.Bool {
		fields := []Field{mmsiField("dest_mmsi1"), raw("spare1", 5), mmsiField("dest_mmsi2"), raw("spare2", 5)}
		for _, f := range fields {
			v, ferr := readField(branch, f)
			if ferr != nil {
				break
			}
			m.append(v)
		}
	} else {
		fields := []Field{
			iScaled("ne_lon", 18, 10), iScaled("ne_lat", 17, 10),
			iScaled("sw_lon", 18, 10), iScaled("sw_lat", 17, 10),
		}
		for _, f := range fields {
			v, ferr := readField(branch, f)
			if ferr != nil {
				break
			}
			m.append(v)
		}
	}

	rest := []Field{b("band_a", 1), b("band_b", 1), u("zone_size", 3), raw("spare3", 23)}
	for _, f := range rest {
		v, terr := readField(r, f)
		if terr != nil {
			if errors.Is(terr, bits.ErrOutOfRange) {
				break
			}
			return nil, terr
		}
		m.append(v)
	}
	return m, nil
}

// decodeStaticDataReport decodes type 24: part A (shipname) or part B
// (dimensions/type/callsign), selected by the part_number field read
// right after mmsi.
func decodeStaticDataReport(r *bits.Reader, msgType int) (*Message, error) {
	header := []Field{u("msg_type", 6), u("repeat", 2), mmsiField("mmsi")}
	m, err := decodeFields(r, msgType, header)
	if err != nil {
		return nil, err
	}
	partV, err := readField(r, u("part_number", 2))
	if err != nil {
		if errors.Is(err, bits.ErrOutOfRange) {
			return m, nil
		}
		return nil, err
	}
	m.append(partV)

	var table []Field
	if partV.Uint == 0 {
		table = []Field{str("shipname", 120)}
	} else {
		table = []Field{
			enum("ship_type", 8, shipType),
			str("vendor_id", 18),
			str("callsign", 42),
			u("to_bow", 9),
			u("to_stern", 9),
			u("to_port", 6),
			u("to_starboard", 6),
			raw("spare", 6),
		}
	}
	for _, f := range table {
		v, ferr := readField(r, f)
		if ferr != nil {
			if errors.Is(ferr, bits.ErrOutOfRange) {
				break
			}
			return nil, ferr
		}
		m.append(v)
	}
	return m, nil
}

// decodeBinaryMessageSingleSlot decodes type 25: addressed/structured
// flags select whether a destination mmsi and/or a (dac, fid)
// application id precede the opaque data payload.
func decodeBinaryMessageSingleSlot(r *bits.Reader, msgType int) (*Message, error) {
	return decodeBinaryMessage(r, msgType, false)
}

// decodeBinaryMessageMultiSlot decodes type 26: same as type 25, with a
// 20-bit radio field at the very end instead of running to the last bit.
func decodeBinaryMessageMultiSlot(r *bits.Reader, msgType int) (*Message, error) {
	return decodeBinaryMessage(r, msgType, true)
}

func decodeBinaryMessage(r *bits.Reader, msgType int, hasRadioSuffix bool) (*Message, error) {
	header := []Field{u("msg_type", 6), u("repeat", 2), mmsiField("mmsi"), b("addressed", 1), b("structured", 1)}
	m, err := decodeFields(r, msgType, header)
	if err != nil {
		return nil, err
	}
	addressed := m.Bool("addressed")
	structured := m.Bool("structured")

	if addressed {
		v, ferr := readField(r, mmsiField("dest_mmsi"))
		if ferr != nil {
			if errors.Is(ferr, bits.ErrOutOfRange) {
				return m, nil
			}
			return nil, ferr
		}
		m.append(v)
	}
	if structured {
		for _, f := range []Field{u("dac", 10), u("fid", 6)} {
			v, ferr := readField(r, f)
			if ferr != nil {
				if errors.Is(ferr, bits.ErrOutOfRange) {
					return m, nil
				}
				return nil, ferr
			}
			m.append(v)
		}
	}

	dataBits := r.Len()
	if hasRadioSuffix {
		dataBits -= 20
	}
	if dataBits > 0 {
		v, ferr := readField(r, raw("data", dataBits))
		if ferr == nil {
			m.append(v)
		}
	}
	if hasRadioSuffix {
		if v, ferr := readField(r, u("radio", 20)); ferr == nil {
			m.append(v)
		}
	}
	return m, nil
}

// appendRemainingRaw reads every bit left in r into a single KindRaw
// field, used for the opaque application-data tail of binary messages.
func appendRemainingRaw(m *Message, r *bits.Reader, name string) {
	remaining := r.Len()
	if remaining <= 0 {
		return
	}
	v, err := readField(r, raw(name, remaining))
	if err == nil {
		m.append(v)
	}
}

// appendRemainingString reads every bit left in r as ASCII-6 text,
// used for the variable-length free text of safety related messages.
func appendRemainingString(m *Message, r *bits.Reader, name string) {
	remaining := r.Len()
	remaining -= remaining % 6
	if remaining <= 0 {
		return
	}
	v, err := readField(r, str(name, remaining))
	if err == nil {
		m.append(v)
	}
}
