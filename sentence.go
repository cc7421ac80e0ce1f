package aisnmea

import (
	"fmt"
	"strconv"

	"github.com/aldas/go-ais-client/internal/utils"
)

// Sentence is a parsed, validated NMEA 0183 AIVDM/AIVDO framing record.
// It owns its raw bytes and an optional tag block / Gatehouse sibling,
// mirroring go-nmea-client's RawMessage ownership model.
type Sentence struct {
	// Delimiter is '!' for AIVDM/AIVDO.
	Delimiter byte
	// TalkerID is the 2 character talker identifier, e.g. "AI".
	TalkerID string
	// SentenceType is the 3 character sentence type, usually "VDM"/"VDO".
	SentenceType string

	FragmentCount int
	FragmentIndex int

	// SequenceID is the 0-9 sequence id shared by fragments of the same
	// multi-part message; HasSequenceID is false when the field was empty.
	SequenceID    int
	HasSequenceID bool

	// Channel is "A", "B", or "" when not reported.
	Channel string

	// Payload is the raw ASCII-6 payload characters, unparsed.
	Payload  string
	FillBits uint8

	Checksum uint8
	// IsValid is false when the checksum did not match and the parser was
	// configured to tolerate that (ErrorIfChecksumInvalid == false).
	IsValid bool

	TagBlock  *TagBlock
	Gatehouse *GatehouseInfo

	// Raw is the original line bytes (tag block and line terminator
	// excluded), owned by this Sentence.
	Raw []byte
}

// ParserConfig controls Framer.Parse's strictness.
type ParserConfig struct {
	// ErrorIfChecksumInvalid makes Framer.Parse return ErrInvalidChecksum
	// instead of returning a Sentence with IsValid=false. It applies to
	// the sentence body only: a tag block whose checksum does not match
	// is rejected with ErrInvalidChecksum in either mode.
	ErrorIfChecksumInvalid bool
}

// MaxSentenceLength is the maximum number of characters an NMEA sentence
// may occupy, excluding any tag block prefix and the line terminator.
const MaxSentenceLength = 82

// Framer parses lines of bytes into Sentence values, tracking any
// Gatehouse wrapper seen so it can be attached to the next AIS sentence
// from the same source. A Framer must not be shared across independent
// sources, the same way a FragmentAssembler must not be.
type Framer struct {
	config ParserConfig

	pendingGatehouse *GatehouseInfo
}

// NewFramer creates a Framer with the given configuration.
func NewFramer(config ParserConfig) *Framer {
	return &Framer{config: config}
}

// Parse parses one line. It returns (nil, nil) when the line carried no
// AIS sentence: a skipped comment/empty line, or a $PGHP wrapper that was
// buffered for the next sentence.
func (f *Framer) Parse(line []byte) (*Sentence, error) {
	line = trimLineTerminator(line)
	if len(line) == 0 || line[0] == '#' {
		return nil, nil
	}

	var tagBlock *TagBlock
	if line[0] == '\\' {
		content, rest, err := parseRawTagBlock(line)
		if err != nil {
			return nil, err
		}
		tb, err := ParseTagBlock(content)
		if err != nil {
			return nil, err
		}
		tagBlock = &tb
		line = rest
	}

	if len(line) == 0 {
		return nil, fmt.Errorf("%w: empty sentence after tag block", ErrInvalidNMEAMessage)
	}
	delimiter := line[0]
	if delimiter != '!' && delimiter != '$' {
		return nil, fmt.Errorf("%w: expected '!' or '$', got %q", ErrInvalidNMEAMessage, delimiter)
	}

	star := -1
	for i := 1; i < len(line); i++ {
		if line[i] == '*' {
			star = i
			break
		}
	}
	if star < 0 || star+3 > len(line) {
		return nil, fmt.Errorf("%w: missing checksum", ErrInvalidNMEAMessage)
	}
	body := line[1:star]
	wantCS, ok := parseHexByte(line[star+1], line[star+2])
	if !ok {
		return nil, fmt.Errorf("%w: checksum is not hex", ErrInvalidNMEAMessage)
	}
	gotCS := xorChecksum(body)
	isValid := wantCS == gotCS
	if !isValid && f.config.ErrorIfChecksumInvalid {
		return nil, fmt.Errorf("%w: want %s got %s", ErrInvalidChecksum, formatChecksum(wantCS), formatChecksum(gotCS))
	}

	if star+3 > MaxSentenceLength {
		return nil, fmt.Errorf("%w: sentence length %d exceeds %d characters: %q", ErrInvalidNMEAMessage, star+3, MaxSentenceLength, utils.FormatSpaces(line))
	}

	fields := splitFields(body)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty sentence body", ErrInvalidNMEAMessage)
	}

	header := fields[0] // e.g. "AIVDM"
	if isGatehouseTalker(string(delimiter) + header) {
		g, err := ParseGatehouse(append([]string{string(delimiter) + header}, fields[1:]...))
		if err != nil {
			return nil, err
		}
		f.pendingGatehouse = &g
		return nil, nil
	}

	if len(header) != 5 {
		return nil, fmt.Errorf("%w: talker+type field %q must be 5 characters", ErrInvalidNMEAMessage, header)
	}
	if len(fields) != 7 {
		return nil, fmt.Errorf("%w: expected 7 comma-separated fields, got %d", ErrInvalidNMEAMessage, len(fields))
	}

	s := &Sentence{
		Delimiter:    delimiter,
		TalkerID:     header[0:2],
		SentenceType: header[2:5],
		Checksum:     wantCS,
		IsValid:      isValid,
		TagBlock:     tagBlock,
		Raw:          append([]byte(nil), line...),
	}

	var err error
	if s.FragmentCount, err = parseSmallInt(fields[1], "fragment count"); err != nil {
		return nil, err
	}
	if s.FragmentIndex, err = parseSmallInt(fields[2], "fragment index"); err != nil {
		return nil, err
	}
	if s.FragmentIndex > s.FragmentCount {
		return nil, fmt.Errorf("%w: fragment index %d greater than fragment count %d", ErrInvalidNMEAMessage, s.FragmentIndex, s.FragmentCount)
	}
	if fields[3] != "" {
		seq, err := parseSmallInt(fields[3], "sequence id")
		if err != nil {
			return nil, err
		}
		s.SequenceID = seq
		s.HasSequenceID = true
	}
	s.Channel = fields[4]

	for i := 0; i < len(fields[5]); i++ {
		c := fields[5][i]
		if c < '0' || c > 'w' || (c > 'W' && c < '`') {
			return nil, fmt.Errorf("%w: payload byte 0x%02x", ErrNonPrintableCharacter, c)
		}
	}
	s.Payload = fields[5]

	fillBits, err := parseSmallInt(fields[6], "fill bits")
	if err != nil {
		return nil, err
	}
	if fillBits < 0 || fillBits > 5 {
		return nil, fmt.Errorf("%w: fill bits %d out of range 0-5", ErrInvalidNMEAMessage, fillBits)
	}
	s.FillBits = uint8(fillBits)

	if f.pendingGatehouse != nil {
		s.Gatehouse = f.pendingGatehouse
		f.pendingGatehouse = nil
	}

	return s, nil
}

func parseSmallInt(s string, name string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s %q", ErrInvalidNMEAMessage, name, s)
	}
	return n, nil
}

func trimLineTerminator(line []byte) []byte {
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	return line
}

func splitFields(body []byte) []string {
	fields := make([]string, 0, 7)
	start := 0
	for i := 0; i <= len(body); i++ {
		if i == len(body) || body[i] == ',' {
			fields = append(fields, string(body[start:i]))
			start = i + 1
		}
	}
	return fields
}
