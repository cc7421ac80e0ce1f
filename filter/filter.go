// Package filter provides composable predicates over decoded AIS
// messages, grounded on the great-circle distance math in
// doismellburning-samoyed's latlong.go (ll_distance_km) reimplemented
// as idiomatic Go rather than transliterated.
package filter

import (
	"math"

	"github.com/aldas/go-ais-client/ais"
)

// Filter decides whether one decoded message should pass.
type Filter interface {
	Match(msg *ais.Message) bool
}

// FilterFunc adapts a plain function to the Filter interface.
type FilterFunc func(msg *ais.Message) bool

// Match implements Filter.
func (f FilterFunc) Match(msg *ais.Message) bool { return f(msg) }

// AttributeFilter wraps an arbitrary predicate function, for callers
// needing a one-off condition the other Filters don't express.
func AttributeFilter(fn func(msg *ais.Message) bool) Filter {
	return FilterFunc(fn)
}

// NoneFilter passes a message iff every named field is present and
// carries an "available" value - the inverse of an
// absent/N/A field, since ITU-R M.1371 represents "unknown" with
// sentinel values rather than omission for most numeric fields.
func NoneFilter(names ...string) Filter {
	return FilterFunc(func(msg *ais.Message) bool {
		for _, name := range names {
			v, ok := msg.Get(name)
			if !ok || !v.Available {
				return false
			}
		}
		return true
	})
}

// MessageTypeFilter passes messages whose Type is one of types.
func MessageTypeFilter(types ...int) Filter {
	allowed := make(map[int]struct{}, len(types))
	for _, t := range types {
		allowed[t] = struct{}{}
	}
	return FilterFunc(func(msg *ais.Message) bool {
		_, ok := allowed[msg.Type]
		return ok
	})
}

// earthRadiusKM is the Haversine sphere radius used throughout, same
// constant latlong.go's R_KM uses.
const earthRadiusKM = 6371.0

// DistanceFilter passes messages whose lon/lat field is within kmRadius
// kilometres of (lat, lon), using the great-circle Haversine formula.
// A message with no lon/lat field (or an unavailable one) never passes.
func DistanceFilter(lat, lon, kmRadius float64) Filter {
	return FilterFunc(func(msg *ais.Message) bool {
		msgLat, msgLon, ok := positionOf(msg)
		if !ok {
			return false
		}
		return haversineKM(lat, lon, msgLat, msgLon) <= kmRadius
	})
}

// GridFilter passes messages whose lon/lat field falls within the
// closed rectangle [latMin, latMax] x [lonMin, lonMax].
func GridFilter(latMin, lonMin, latMax, lonMax float64) Filter {
	return FilterFunc(func(msg *ais.Message) bool {
		msgLat, msgLon, ok := positionOf(msg)
		if !ok {
			return false
		}
		return msgLat >= latMin && msgLat <= latMax && msgLon >= lonMin && msgLon <= lonMax
	})
}

func positionOf(msg *ais.Message) (lat, lon float64, ok bool) {
	latV, latOK := msg.Get("lat")
	lonV, lonOK := msg.Get("lon")
	if !latOK || !lonOK || !latV.Available || !lonV.Available {
		return 0, 0, false
	}
	return latV.Float, lonV.Float, true
}

// haversineKM is the same formula as latlong.go's ll_distance_km:
// a = sin²(Δlat/2) + cos(lat1)cos(lat2)sin²(Δlon/2), d = R*2*atan2(√a, √(1-a)).
func haversineKM(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lon1Rad := lon1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	lon2Rad := lon2 * math.Pi / 180

	dLat := lat2Rad - lat1Rad
	dLon := lon2Rad - lon1Rad
	a := math.Pow(math.Sin(dLat/2), 2) + math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Pow(math.Sin(dLon/2), 2)
	return earthRadiusKM * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// Chain runs a sequence of Filters in order, passing a message only if
// every Filter in the chain passes it.
type Chain struct {
	filters []Filter
}

// NewChain builds a Chain from filters, evaluated in the given order.
func NewChain(filters ...Filter) *Chain {
	return &Chain{filters: filters}
}

// Match implements Filter: it short-circuits on the first Filter that
// rejects the message.
func (c *Chain) Match(msg *ais.Message) bool {
	for _, f := range c.filters {
		if !f.Match(msg) {
			return false
		}
	}
	return true
}

// Apply filters messages, returning only those every Filter in the
// chain passes, preserving input order.
func (c *Chain) Apply(messages []*ais.Message) []*ais.Message {
	var out []*ais.Message
	for _, msg := range messages {
		if c.Match(msg) {
			out = append(out, msg)
		}
	}
	return out
}
