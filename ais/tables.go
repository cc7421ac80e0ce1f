package ais

// Field tables for every declared AIS message type, widths and order
// per ITU-R M.1371 / the AIVDM reference. Positions
// 1/2/3, 4/11, 7/13, and 20's repeated groups share a table; true
// conditional layouts (15's optional trailing station, 16's optional
// second assignment triple, 20's repeated groups, 22's branch on
// `addressed`, 24's part A/B, 25/26's addressed/structured branch) are
// handled in conditional.go, not here - this file only lists fixed-order
// fields.

// positionReportA is shared by types 1, 2 and 3 (Class A position
// report); only the communication-state sub-format differs, selected
// by the caller.
var positionReportA = []Field{
	u("msg_type", 6),
	u("repeat", 2),
	mmsiField("mmsi"),
	enum("nav_status", 4, navigationStatus),
	turn("rot"),
	uScaled("sog", 10, 10),
	b("position_accuracy", 1),
	iScaled("lon", 28, 600000),
	iScaled("lat", 27, 600000),
	uScaled("course", 12, 10),
	u("heading", 9),
	u("timestamp", 6),
	enum("maneuver", 2, maneuverIndicator),
	raw("spare", 3),
	b("raim", 1),
	u("radio", 19),
}

// baseStationReport is shared by types 4 (base station report) and 11
// (UTC/date response).
var baseStationReport = []Field{
	u("msg_type", 6),
	u("repeat", 2),
	mmsiField("mmsi"),
	u("year", 14),
	u("month", 4),
	u("day", 5),
	u("hour", 5),
	u("minute", 6),
	u("second", 6),
	b("position_accuracy", 1),
	iScaled("lon", 28, 600000),
	iScaled("lat", 27, 600000),
	enum("epfd", 4, epfdFixType),
	raw("spare", 10),
	b("raim", 1),
	u("radio", 19),
}

var staticAndVoyageData = []Field{
	u("msg_type", 6),
	u("repeat", 2),
	mmsiField("mmsi"),
	u("ais_version", 2),
	u("imo", 30),
	str("callsign", 42),
	str("shipname", 120),
	enum("ship_type", 8, shipType),
	u("to_bow", 9),
	u("to_stern", 9),
	u("to_port", 6),
	u("to_starboard", 6),
	enum("epfd", 4, epfdFixType),
	u("month", 4),
	u("day", 5),
	u("hour", 5),
	u("minute", 6),
	uScaled("draught", 8, 10),
	str("destination", 120),
	b("dte", 1),
	raw("spare", 1),
}

var binaryAddressedMessageHeader = []Field{
	u("msg_type", 6),
	u("repeat", 2),
	mmsiField("mmsi"),
	u("seqno", 2),
	mmsiField("dest_mmsi"),
	b("retransmit", 1),
	raw("spare", 1),
	u("dac", 10),
	u("fid", 6),
}

var binaryAcknowledgeHeader = []Field{
	u("msg_type", 6),
	u("repeat", 2),
	mmsiField("mmsi"),
	raw("spare", 2),
}

// binaryAckSlot is one (mmsi, sequence) pair, repeated up to 4 times
// in types 7/13, as many times as the payload has bits for.
var binaryAckSlot = []Field{
	mmsiField("mmsi"),
	u("seqno", 2),
}

var binaryBroadcastMessageHeader = []Field{
	u("msg_type", 6),
	u("repeat", 2),
	mmsiField("mmsi"),
	raw("spare", 2),
	u("dac", 10),
	u("fid", 6),
}

var sarAircraftPositionReport = []Field{
	u("msg_type", 6),
	u("repeat", 2),
	mmsiField("mmsi"),
	u("altitude", 12),
	uScaled("sog", 10, 1),
	b("position_accuracy", 1),
	iScaled("lon", 28, 600000),
	iScaled("lat", 27, 600000),
	uScaled("course", 12, 10),
	u("timestamp", 6),
	raw("regional_reserved", 8),
	b("dte", 1),
	raw("spare", 3),
	b("assigned", 1),
	b("raim", 1),
	u("radio", 20),
}

var utcInquiry = []Field{
	u("msg_type", 6),
	u("repeat", 2),
	mmsiField("mmsi"),
	raw("spare", 2),
	mmsiField("dest_mmsi"),
	raw("spare2", 2),
}

var addressedSafetyMessageHeader = []Field{
	u("msg_type", 6),
	u("repeat", 2),
	mmsiField("mmsi"),
	u("seqno", 2),
	mmsiField("dest_mmsi"),
	b("retransmit", 1),
	raw("spare", 1),
}

var safetyBroadcastMessageHeader = []Field{
	u("msg_type", 6),
	u("repeat", 2),
	mmsiField("mmsi"),
	raw("spare", 2),
}

var interrogationHeader = []Field{
	u("msg_type", 6),
	u("repeat", 2),
	mmsiField("mmsi"),
	raw("spare", 2),
}

// interrogationRequest is one (msg_type, slot_offset) request, as many
// as type 15 has room for.
var interrogationRequest = []Field{
	u("req_msg_type", 6),
	u("slot_offset", 12),
	raw("spare", 2),
}

var assignmentModeCommandHeader = []Field{
	u("msg_type", 6),
	u("repeat", 2),
	mmsiField("mmsi"),
	raw("spare", 2),
}

// assignmentModeCommandSlot is one destination's (mmsi, offset,
// increment) triple; type 16 carries one or two.
var assignmentModeCommandSlot = []Field{
	mmsiField("dest_mmsi"),
	u("offset", 12),
	u("increment", 10),
}

var dgnssBroadcastHeader = []Field{
	u("msg_type", 6),
	u("repeat", 2),
	mmsiField("mmsi"),
	raw("spare", 2),
	iScaled("lon", 18, 10),
	iScaled("lat", 17, 10),
	raw("spare2", 5),
}

var standardClassBPositionReport = []Field{
	u("msg_type", 6),
	u("repeat", 2),
	mmsiField("mmsi"),
	raw("reserved", 8),
	uScaled("sog", 10, 10),
	b("position_accuracy", 1),
	iScaled("lon", 28, 600000),
	iScaled("lat", 27, 600000),
	uScaled("course", 12, 10),
	u("heading", 9),
	u("timestamp", 6),
	raw("regional_reserved", 2),
	b("cs_unit", 1),
	b("display_flag", 1),
	b("dsc_flag", 1),
	b("band_flag", 1),
	b("msg22_flag", 1),
	b("assigned", 1),
	b("raim", 1),
	u("radio", 20),
}

var extendedClassBPositionReport = []Field{
	u("msg_type", 6),
	u("repeat", 2),
	mmsiField("mmsi"),
	raw("reserved", 8),
	uScaled("sog", 10, 10),
	b("position_accuracy", 1),
	iScaled("lon", 28, 600000),
	iScaled("lat", 27, 600000),
	uScaled("course", 12, 10),
	u("heading", 9),
	u("timestamp", 6),
	raw("regional_reserved", 4),
	str("shipname", 120),
	enum("ship_type", 8, shipType),
	u("to_bow", 9),
	u("to_stern", 9),
	u("to_port", 6),
	u("to_starboard", 6),
	enum("epfd", 4, epfdFixType),
	b("raim", 1),
	b("dte", 1),
	b("assigned", 1),
	raw("spare", 4),
}

// dataLinkManagementHeader is type 20's common prefix; its up to four
// repeated groups are read by dataLinkManagementSlot.
var dataLinkManagementHeader = []Field{
	u("msg_type", 6),
	u("repeat", 2),
	mmsiField("mmsi"),
	raw("spare", 2),
}

var dataLinkManagementSlot = []Field{
	u("offset", 12),
	u("number", 4),
	u("timeout", 3),
	u("increment", 11),
}

var aidToNavigationReport = []Field{
	u("msg_type", 6),
	u("repeat", 2),
	mmsiField("mmsi"),
	enum("aid_type", 5, aidType),
	str("name", 120),
	b("position_accuracy", 1),
	iScaled("lon", 28, 600000),
	iScaled("lat", 27, 600000),
	u("to_bow", 9),
	u("to_stern", 9),
	u("to_port", 6),
	u("to_starboard", 6),
	enum("epfd", 4, epfdFixType),
	u("timestamp", 6),
	b("off_position", 1),
	raw("regional_reserved", 8),
	b("raim", 1),
	b("virtual_aid", 1),
	b("assigned", 1),
	raw("spare", 1),
	str("name_extension", 88),
}

// groupAssignmentCommand is type 23.
var groupAssignmentCommand = []Field{
	u("msg_type", 6),
	u("repeat", 2),
	mmsiField("mmsi"),
	raw("spare", 2),
	iScaled("ne_lon", 18, 10),
	iScaled("ne_lat", 17, 10),
	iScaled("sw_lon", 18, 10),
	iScaled("sw_lat", 17, 10),
	enum("station_type", 4, stationType),
	enum("ship_type", 8, shipType),
	u("txrx", 2),
	u("interval", 4),
	u("quiet", 4),
	raw("spare2", 28),
}

// staticDataReportPartA is type 24 part number 0.
var staticDataReportPartA = []Field{
	u("msg_type", 6),
	u("repeat", 2),
	mmsiField("mmsi"),
	u("part_number", 2),
	str("shipname", 120),
}

// staticDataReportPartB is type 24 part number 1.
var staticDataReportPartB = []Field{
	u("msg_type", 6),
	u("repeat", 2),
	mmsiField("mmsi"),
	u("part_number", 2),
	enum("ship_type", 8, shipType),
	str("vendor_id", 18),
	str("callsign", 42),
	u("to_bow", 9),
	u("to_stern", 9),
	u("to_port", 6),
	u("to_starboard", 6),
	raw("spare", 6),
}

var longRangeBroadcast = []Field{
	u("msg_type", 6),
	u("repeat", 2),
	mmsiField("mmsi"),
	b("position_accuracy", 1),
	b("raim", 1),
	enum("nav_status", 4, navigationStatus),
	iScaled("lon", 18, 600),
	iScaled("lat", 17, 600),
	uScaled("sog", 6, 1),
	uScaled("course", 9, 1),
	b("gnss_flag", 1),
	raw("spare", 1),
}
