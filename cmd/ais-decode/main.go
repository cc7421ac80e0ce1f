// Command ais-decode reads NMEA 0183 AIVDM/AIVDO sentences from a file,
// TCP address, UDP address, or serial device, reassembles multi-part
// messages, decodes them, and prints one JSON object per message to
// stdout, using the same stdlib flag / stdlib log / line-oriented
// reading shape as this module's other command-line tools.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	aisnmea "github.com/aldas/go-ais-client"
	"github.com/aldas/go-ais-client/ais"
	"github.com/aldas/go-ais-client/filter"
	"github.com/aldas/go-ais-client/tracker"
	"github.com/aldas/go-ais-client/transport"
)

func main() {
	deviceAddr := flag.String("device", "", "path to file/serial device, or tcp://host:port, or udp://host:port")
	baudRate := flag.Int("baud", 38400, "serial device baud rate")
	typeFilter := flag.String("types", "", "comma separated list of message types to keep, e.g. 1,2,3,5")
	trackVessels := flag.Bool("track", false, "maintain a vessel tracker and print CREATED/UPDATED/DELETED events instead of raw messages")
	errorIfChecksumInvalid := flag.Bool("strict-checksum", false, "fail a sentence instead of tolerating a checksum mismatch")
	flag.Parse()

	if *deviceAddr == "" {
		log.Fatal("missing -device\n")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	source, err := openSource(ctx, *deviceAddr, *baudRate)
	if err != nil {
		log.Fatal(err)
	}
	defer source.Close()

	var chain *filter.Chain
	if *typeFilter != "" {
		types, err := parseIntList(*typeFilter)
		if err != nil {
			log.Fatalf("invalid -types: %v\n", err)
		}
		chain = filter.NewChain(filter.MessageTypeFilter(types...))
	}

	var vesselTracker *tracker.Tracker
	if *trackVessels {
		vesselTracker = tracker.New(tracker.Config{
			OnEvent: func(e tracker.Event) {
				fmt.Printf("# %s %s\n", e.Type, e.Track.MMSI)
			},
		})
	}

	framer := aisnmea.NewFramer(aisnmea.ParserConfig{ErrorIfChecksumInvalid: *errorIfChecksumInvalid})
	assembler := aisnmea.NewFragmentAssembler()
	decoder := ais.NewDecoder()

	errorCount := 0
	for {
		line, err := source.ReadLine(ctx)
		if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
			break
		}
		if err != nil {
			errorCount++
			fmt.Printf("# read error: %v\n", err)
			if errorCount > 20 {
				log.Fatal("too many consecutive read errors\n")
			}
			continue
		}
		errorCount = 0

		sentence, err := framer.Parse(line)
		if err != nil {
			fmt.Printf("# framing error: %v\n", err)
			continue
		}
		if sentence == nil {
			continue
		}

		assembled, err := assembler.Add(sentence)
		if err != nil {
			fmt.Printf("# assembly error: %v\n", err)
			continue
		}
		if assembled == nil {
			continue // waiting on more fragments
		}

		msg, err := decoder.Decode(assembled.Payload, assembled.FillBits)
		if err != nil {
			fmt.Printf("# decode error: %v\n", err)
			continue
		}

		if chain != nil && !chain.Match(msg) {
			continue
		}

		if vesselTracker != nil {
			vesselTracker.Update(msg, time.Now())
			continue
		}

		b, _ := json.Marshal(messageToMap(msg))
		fmt.Printf("%s\n", b)
	}

	for _, dropped := range assembler.Reset() {
		fmt.Printf("# %v\n", dropped)
	}
}

func openSource(ctx context.Context, addr string, baud int) (transport.LineSource, error) {
	switch {
	case strings.HasPrefix(addr, "tcp://"):
		return transport.DialTCP(ctx, strings.TrimPrefix(addr, "tcp://"))
	case strings.HasPrefix(addr, "udp://"):
		return transport.ListenUDP(strings.TrimPrefix(addr, "udp://"))
	default:
		if info, err := os.Stat(addr); err == nil && info.Mode().IsRegular() {
			f, err := os.Open(addr)
			if err != nil {
				return nil, err
			}
			return transport.NewFileSource(f), nil
		}
		return transport.OpenSerial(transport.SerialConfig{Name: addr, Baud: baud})
	}
}

func parseIntList(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", p, err)
		}
		out = append(out, n)
	}
	return out, nil
}

func messageToMap(msg *ais.Message) map[string]any {
	out := map[string]any{
		"type": msg.Type,
		"mmsi": msg.MMSI,
	}
	for _, v := range msg.Values {
		switch v.Kind {
		case ais.KindString:
			out[v.Name] = v.Str
		case ais.KindBool:
			out[v.Name] = v.Bool
		case ais.KindEnum:
			out[v.Name] = v.Label
		case ais.KindMMSI:
			out[v.Name] = v.Str
		case ais.KindRaw:
			out[v.Name] = fmt.Sprintf("%x", v.Raw)
		case ais.KindTurn:
			out[v.Name] = v.Float
		case ais.KindInt:
			if v.Float != 0 {
				out[v.Name] = v.Float
			} else {
				out[v.Name] = v.Int
			}
		default:
			if v.Float != 0 {
				out[v.Name] = v.Float
			} else {
				out[v.Name] = v.Uint
			}
		}
	}
	return out
}
