package aisnmea

import (
	"fmt"
	"strconv"
	"strings"
)

// TagBlock is the parsed `\k:v,...*CS\` prefix that may precede an NMEA
// sentence, carrying station/time metadata. Framer.Parse parses it as
// soon as the sentence is framed. Each recognized key has its own field
// plus a Has* flag; unrecognized keys are dropped, and only Raw keeps
// the original text. Parsing the same content twice gives equal values.
type TagBlock struct {
	// Raw is the unparsed content between the backslashes, excluding the
	// trailing "*CS".
	Raw string

	UnixTime        int64  // c
	HasUnixTime     bool
	Destination     string // d
	HasDestination  bool
	LineCount       int64 // n
	HasLineCount    bool
	RelativeTime    int64 // r
	HasRelativeTime bool
	Source          string // s
	HasSource       bool
	Text            string // t
	HasText         bool

	// Group holds the parsed `g:sentence-num/total/group-id` value, when present.
	Group   TagBlockGroup
	HasGroup bool
}

// TagBlockGroup is the parsed form of the tag block "g" key: a sentence's
// position within a tag-block group and that group's id.
type TagBlockGroup struct {
	SentenceNum int
	Total       int
	GroupID     string
}

// ParseTagBlock parses the content of a tag block (without the enclosing
// backslashes or the trailing checksum) into a TagBlock. Unknown keys are
// ignored.
func ParseTagBlock(content string) (TagBlock, error) {
	tb := TagBlock{Raw: content}
	if content == "" {
		return tb, nil
	}
	for _, kv := range strings.Split(content, ",") {
		idx := strings.IndexByte(kv, ':')
		if idx < 0 {
			continue
		}
		key := kv[:idx]
		value := kv[idx+1:]
		switch key {
		case "c":
			v, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return TagBlock{}, fmt.Errorf("aisnmea: invalid tag block 'c' value %q: %w", value, err)
			}
			tb.UnixTime = v
			tb.HasUnixTime = true
		case "d":
			tb.Destination = value
			tb.HasDestination = true
		case "n":
			v, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return TagBlock{}, fmt.Errorf("aisnmea: invalid tag block 'n' value %q: %w", value, err)
			}
			tb.LineCount = v
			tb.HasLineCount = true
		case "r":
			v, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return TagBlock{}, fmt.Errorf("aisnmea: invalid tag block 'r' value %q: %w", value, err)
			}
			tb.RelativeTime = v
			tb.HasRelativeTime = true
		case "s":
			tb.Source = value
			tb.HasSource = true
		case "t":
			tb.Text = value
			tb.HasText = true
		case "g":
			g, err := parseTagBlockGroup(value)
			if err != nil {
				return TagBlock{}, err
			}
			tb.Group = g
			tb.HasGroup = true
		default:
			// unknown keys are ignored, per spec
		}
	}
	return tb, nil
}

func parseTagBlockGroup(value string) (TagBlockGroup, error) {
	parts := strings.Split(value, "/")
	if len(parts) != 3 {
		return TagBlockGroup{}, fmt.Errorf("aisnmea: invalid tag block 'g' value %q, expected sentence-num/total/group-id", value)
	}
	num, err := strconv.Atoi(parts[0])
	if err != nil {
		return TagBlockGroup{}, fmt.Errorf("aisnmea: invalid tag block group sentence number %q: %w", parts[0], err)
	}
	total, err := strconv.Atoi(parts[1])
	if err != nil {
		return TagBlockGroup{}, fmt.Errorf("aisnmea: invalid tag block group total %q: %w", parts[1], err)
	}
	return TagBlockGroup{SentenceNum: num, Total: total, GroupID: parts[2]}, nil
}

// parseRawTagBlock reads a `\...\` prefixed tag block from the start of
// line, returning its content and the remaining bytes after the closing
// backslash. A checksum mismatch is returned as ErrInvalidChecksum.
func parseRawTagBlock(line []byte) (content string, rest []byte, err error) {
	// line[0] == '\\'
	end := -1
	for i := 1; i < len(line); i++ {
		if line[i] == '\\' {
			end = i
			break
		}
	}
	if end < 0 {
		return "", nil, fmt.Errorf("%w: unterminated tag block", ErrInvalidNMEAMessage)
	}
	body := line[1:end] // between backslashes
	star := -1
	for i := len(body) - 1; i >= 0; i-- {
		if body[i] == '*' {
			star = i
			break
		}
	}
	if star < 0 || len(body)-star != 3 {
		return "", nil, fmt.Errorf("%w: tag block missing checksum", ErrInvalidNMEAMessage)
	}
	content = string(body[:star])
	wantCS, ok := parseHexByte(body[star+1], body[star+2])
	if !ok {
		return "", nil, fmt.Errorf("%w: tag block checksum is not hex", ErrInvalidNMEAMessage)
	}
	gotCS := xorChecksum(body[:star])
	if wantCS != gotCS {
		return "", nil, fmt.Errorf("%w: tag block checksum %s does not match computed %s", ErrInvalidChecksum, formatChecksum(wantCS), formatChecksum(gotCS))
	}
	return content, line[end+1:], nil
}
