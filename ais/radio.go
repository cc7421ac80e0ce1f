package ais

// radioMode picks which communication-state sub-format a message
// type's radio field uses: fixed for most types, data-dependent only
// for type 18.
type radioMode uint8

const (
	radioSOTDMA radioMode = iota
	radioITDMA
	radioAuto // type 18: top bit of the field selects the sub-format
)

// RadioStatus is the decoded form of a position report's communication
// state field (ITU-R M.1371 §3.3.7.2/7.3), covering both the SOTDMA
// and ITDMA sub-formats.
type RadioStatus struct {
	SOTDMA bool

	SyncState       uint64
	SlotTimeout     uint64 // SOTDMA only
	SubMessage      uint64 // SOTDMA only; meaning depends on SlotTimeout
	SlotIncrement   uint64 // ITDMA only
	SlotsToAllocate uint64 // ITDMA only
	KeepFlag        bool   // ITDMA only
}

// decodeRadioStatus interprets a raw communication-state field of the
// given bit width under the given mode.
func decodeRadioStatus(raw uint64, width int, mode radioMode) RadioStatus {
	isITDMA := mode == radioITDMA
	if mode == radioAuto {
		isITDMA = raw&(uint64(1)<<uint(width-1)) != 0
	}

	rs := RadioStatus{SOTDMA: !isITDMA}
	rs.SyncState = (raw >> uint(width-2)) & 0x3
	rest := raw & (uint64(1)<<uint(width-2) - 1)
	if rs.SOTDMA {
		rs.SlotTimeout = (rest >> uint(width-5)) & 0x7
		rs.SubMessage = rest & (uint64(1)<<uint(width-5) - 1)
	} else {
		rs.SlotIncrement = (rest >> 4) & (uint64(1)<<uint(width-6) - 1)
		rs.SlotsToAllocate = (rest >> 1) & 0x7
		rs.KeepFlag = rest&0x1 != 0
	}
	return rs
}
