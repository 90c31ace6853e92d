package advert

// GAP AD types, Bluetooth Core Specification Supplement Part A.
const (
	TypeFlags                byte = 0x01
	TypeIncomplete16BitUUIDs byte = 0x02
	TypeComplete16BitUUIDs   byte = 0x03
	TypeShortenedLocalName   byte = 0x08
	TypeCompleteLocalName    byte = 0x09
	TypeTxPowerLevel         byte = 0x0A
	TypeServiceData          byte = 0x16
	TypeManufacturerSpecific byte = 0xFF
)
