package aisnmea

import (
	"fmt"
	"strconv"
	"strings"
)

// GatehouseInfo is a parsed `$PGHP,...` companion sentence. It carries no
// AIS payload itself; it associates with the next AIS sentence consumed
// from the same source. Shaped like go-nmea-client's CanBusHeader: a
// small owned value type attached as a sibling to the sentence it
// decorates.
type GatehouseInfo struct {
	Year, Month, Day        int
	Hour, Minute, Second, MS int
	PSS                     string
	Region                  string
	Country                 string
	OnlineData              string
}

// ParseGatehouse parses the comma-separated fields of a $PGHP sentence
// body (talker+type through the field before the checksum).
func ParseGatehouse(fields []string) (GatehouseInfo, error) {
	// $PGHP,1,2022,12,21,12,35,43,123,,2,,1*CS
	// fields[0] == "$PGHP"
	if len(fields) < 11 {
		return GatehouseInfo{}, fmt.Errorf("%w: PGHP sentence has too few fields", ErrInvalidNMEAMessage)
	}
	atoi := func(s string) (int, error) {
		if s == "" {
			return 0, nil
		}
		return strconv.Atoi(s)
	}
	var g GatehouseInfo
	var err error
	if g.Year, err = atoi(fields[2]); err != nil {
		return GatehouseInfo{}, fmt.Errorf("%w: invalid PGHP year: %v", ErrInvalidNMEAMessage, err)
	}
	if g.Month, err = atoi(fields[3]); err != nil {
		return GatehouseInfo{}, fmt.Errorf("%w: invalid PGHP month: %v", ErrInvalidNMEAMessage, err)
	}
	if g.Day, err = atoi(fields[4]); err != nil {
		return GatehouseInfo{}, fmt.Errorf("%w: invalid PGHP day: %v", ErrInvalidNMEAMessage, err)
	}
	if g.Hour, err = atoi(fields[5]); err != nil {
		return GatehouseInfo{}, fmt.Errorf("%w: invalid PGHP hour: %v", ErrInvalidNMEAMessage, err)
	}
	if g.Minute, err = atoi(fields[6]); err != nil {
		return GatehouseInfo{}, fmt.Errorf("%w: invalid PGHP minute: %v", ErrInvalidNMEAMessage, err)
	}
	if g.Second, err = atoi(fields[7]); err != nil {
		return GatehouseInfo{}, fmt.Errorf("%w: invalid PGHP second: %v", ErrInvalidNMEAMessage, err)
	}
	if g.MS, err = atoi(fields[8]); err != nil {
		return GatehouseInfo{}, fmt.Errorf("%w: invalid PGHP ms: %v", ErrInvalidNMEAMessage, err)
	}
	g.PSS = fields[9]
	g.Region = fields[10]
	if len(fields) > 11 {
		g.Country = fields[11]
	}
	if len(fields) > 12 {
		g.OnlineData = fields[12]
	}
	return g, nil
}

// isGatehouseTalker reports whether the sentence's talker+type identifier
// (e.g. "$PGHP") is a Gatehouse wrapper rather than an AIVDM/AIVDO sentence.
func isGatehouseTalker(s string) bool {
	return strings.HasPrefix(s, "$PGHP")
}
