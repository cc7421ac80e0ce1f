package ais

// Enumeration tables resolve an AIS field's raw numeric code to the
// label ITU-R M.1371 assigns it. Only the codes a decoder actually
// needs to distinguish are named here; enumLabel resolves every other
// code to "reserved".

var navigationStatus = map[uint64]string{
	0:  "under way using engine",
	1:  "at anchor",
	2:  "not under command",
	3:  "restricted manoeuvrability",
	4:  "constrained by her draught",
	5:  "moored",
	6:  "aground",
	7:  "engaged in fishing",
	8:  "under way sailing",
	9:  "reserved for HSC",
	10: "reserved for WIG",
	11: "power-driven vessel towing astern",
	12: "power-driven vessel pushing ahead or towing alongside",
	14: "AIS-SART, MOB-AIS, EPIRB-AIS",
	15: "not defined",
}

var epfdFixType = map[uint64]string{
	0:  "undefined",
	1:  "GPS",
	2:  "GLONASS",
	3:  "combined GPS/GLONASS",
	4:  "Loran-C",
	5:  "Chayka",
	6:  "integrated navigation system",
	7:  "surveyed",
	8:  "Galileo",
}

var shipType = map[uint64]string{
	0:  "not available",
	30: "fishing",
	31: "towing",
	32: "towing, exceeds 200m or 25m breadth",
	33: "dredging or underwater operations",
	34: "diving operations",
	35: "military operations",
	36: "sailing",
	37: "pleasure craft",
	40: "high speed craft",
	50: "pilot vessel",
	51: "search and rescue vessel",
	52: "tug",
	53: "port tender",
	54: "anti-pollution equipment",
	55: "law enforcement",
	58: "medical transport",
	59: "noncombatant ship per RR resolution 18",
	60: "passenger",
	70: "cargo",
	80: "tanker",
	90: "other type",
}

var maneuverIndicator = map[uint64]string{
	0: "not available",
	1: "no special maneuver",
	2: "special maneuver",
}

var aidType = map[uint64]string{
	0:  "not specified",
	1:  "reference point",
	2:  "RACON",
	3:  "fixed structure off-shore",
	4:  "reserved",
	5:  "light, without sectors",
	6:  "light, with sectors",
	7:  "leading light front",
	8:  "leading light rear",
	9:  "beacon, cardinal N",
	10: "beacon, cardinal E",
	11: "beacon, cardinal S",
	12: "beacon, cardinal W",
	13: "beacon, port hand",
	14: "beacon, starboard hand",
	15: "beacon, preferred channel port hand",
	16: "beacon, preferred channel starboard hand",
	17: "beacon, isolated danger",
	18: "beacon, safe water",
	19: "beacon, special mark",
	20: "cardinal mark N",
	21: "cardinal mark E",
	22: "cardinal mark S",
	23: "cardinal mark W",
	24: "port hand mark",
	25: "starboard hand mark",
	26: "preferred channel port hand mark",
	27: "preferred channel starboard hand mark",
	28: "isolated danger",
	29: "safe water",
	30: "special mark",
	31: "light vessel/LANBY/rigs",
}

var stationType = map[uint64]string{
	0:  "all types of mobile stations",
	1:  "reserved for future use",
	2:  "all types of Class B mobile stations",
	3:  "SAR airborne mobile station",
	4:  "aid to navigation station",
	5:  "class B shipborne mobile station",
	6:  "regional use",
	7:  "regional use",
	8:  "regional use",
	9:  "regional use",
	10: "reserved for future use",
}

// enumLabel resolves code against table, falling back to "reserved".
func enumLabel(table map[uint64]string, code uint64) string {
	if label, ok := table[code]; ok {
		return label
	}
	return "reserved"
}
