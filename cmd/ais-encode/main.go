// Command ais-encode reads JSON-lines describing sparse AIS messages
// from stdin (or a file given with -in) and writes framed, checksummed
// AIVDM sentences to stdout, fragmenting multi-part payloads as needed.
// Uses the same stdlib flag / stdlib log, single-responsibility shape
// as this module's other command-line tools, mirrored from decode to
// encode.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	aisnmea "github.com/aldas/go-ais-client"
	"github.com/aldas/go-ais-client/ais"
)

// encodeRequest is one JSON-lines record: the message type plus a
// sparse bag of named field values. Numeric fields may be given as
// either an integer (written as-is) or a float (for scaled fields like
// lon/lat/course/sog).
type encodeRequest struct {
	Type   int                    `json:"type"`
	MMSI   string                 `json:"mmsi"`
	Fields map[string]interface{} `json:"fields"`
}

func main() {
	inPath := flag.String("in", "", "path to JSON-lines input file (default: stdin)")
	header := flag.String("header", "AIVDM", "5 character talker+sentence-type header")
	channel := flag.String("channel", "A", "AIS channel (A/B)")
	flag.Parse()

	in := os.Stdin
	if *inPath != "" {
		f, err := os.Open(*inPath)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		in = f
	}

	sentenceEncoder := aisnmea.NewEncoder()

	scanner := bufio.NewScanner(in)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req encodeRequest
		if err := json.Unmarshal(line, &req); err != nil {
			fmt.Printf("# line %d: invalid JSON: %v\n", lineNum, err)
			continue
		}

		msg := ais.NewMessage(req.Type)
		if req.MMSI != "" {
			msg.Set(ais.MMSIValue("mmsi", req.MMSI))
		}
		for name, raw := range req.Fields {
			msg.Set(fieldValue(name, raw))
		}

		sentences, err := sentenceEncoder.Encode(msg, *header, *channel)
		if err != nil {
			fmt.Printf("# line %d: encode error: %v\n", lineNum, err)
			continue
		}
		for _, s := range sentences {
			fmt.Printf("%s\n", s.Raw)
		}
	}
	if err := scanner.Err(); err != nil && err != io.EOF {
		log.Fatal(err)
	}
}

// fieldValue guesses the right ais.Value constructor from a decoded
// JSON value's Go type: JSON has no int/float distinction, so a whole
// number is written as KindUint and anything with a fractional part as
// a scaled field.
func fieldValue(name string, raw interface{}) ais.Value {
	switch v := raw.(type) {
	case string:
		return ais.StringValue(name, v)
	case bool:
		return ais.BoolValue(name, v)
	case float64:
		if v == float64(int64(v)) {
			return ais.UintValue(name, uint64(v))
		}
		return ais.FloatValue(name, v)
	default:
		return ais.Value{Name: name}
	}
}
