package aisnmea

import (
	"fmt"

	"github.com/aldas/go-ais-client/ais"
)

// maxPayloadCharsPerSentence bounds each fragment's payload so the
// resulting sentence (including framing) stays within MaxSentenceLength.
const maxPayloadCharsPerSentence = 60

// Encoder turns ais.Messages into framed, checksummed Sentences,
// splitting into multiple fragments when the payload doesn't fit in
// one sentence - the inverse of Framer+FragmentAssembler. A single
// Encoder hands out sequentially rotating sequence ids (0-9) across
// the multi-fragment messages it produces, the way a real AIS
// transceiver would, so two unrelated multi-part messages emitted back
// to back don't collide. Like the rest of the core it is single-
// threaded and cooperative and holds no internal lock.
type Encoder struct {
	seq int
}

// NewEncoder creates an Encoder with its sequence id counter at 0.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode encodes msg into one or more Sentences under the given 5
// character header (e.g. "AIVDM") and channel ("A"/"B"/"").
func (e *Encoder) Encode(msg *ais.Message, header string, channel string) ([]*Sentence, error) {
	if len(header) != 5 {
		return nil, fmt.Errorf("%w: header %q must be 5 characters", ErrInvalidData, header)
	}
	talkerID, sentenceType := header[0:2], header[2:5]

	payload, fillBits, err := ais.NewEncoder().EncodePayload(msg)
	if err != nil {
		return nil, fmt.Errorf("aisnmea: encoding message: %w", err)
	}

	chunks := chunkPayload(payload, maxPayloadCharsPerSentence)
	count := len(chunks)

	hasSeq := count > 1
	var seqID int
	if hasSeq {
		seqID = e.seq
		e.seq = (e.seq + 1) % 10
	}

	sentences := make([]*Sentence, count)
	for idx, chunk := range chunks {
		fb := uint8(0)
		if idx == count-1 {
			fb = fillBits
		}
		body := fmt.Sprintf("%s%s,%d,%d,%s,%s,%s,%d", talkerID, sentenceType, count, idx+1, seqField(hasSeq, seqID), channel, chunk, fb)
		cs := xorChecksum([]byte(body))
		rawLine := fmt.Sprintf("!%s*%s", body, formatChecksum(cs))

		sentences[idx] = &Sentence{
			Delimiter:     '!',
			TalkerID:      talkerID,
			SentenceType:  sentenceType,
			FragmentCount: count,
			FragmentIndex: idx + 1,
			SequenceID:    seqID,
			HasSequenceID: hasSeq,
			Channel:       channel,
			Payload:       chunk,
			FillBits:      fb,
			Checksum:      cs,
			IsValid:       true,
			Raw:           []byte(rawLine),
		}
	}
	return sentences, nil
}

func seqField(hasSeq bool, seqID int) string {
	if !hasSeq {
		return ""
	}
	return fmt.Sprintf("%d", seqID)
}

// chunkPayload splits payload into chunks of at most n characters,
// always returning at least one (possibly empty) chunk.
func chunkPayload(payload string, n int) []string {
	if len(payload) == 0 {
		return []string{""}
	}
	var chunks []string
	for len(payload) > 0 {
		end := n
		if end > len(payload) {
			end = len(payload)
		}
		chunks = append(chunks, payload[:end])
		payload = payload[end:]
	}
	return chunks
}
