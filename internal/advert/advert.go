package advert

import (
	"fmt"
)

// Record is a single AD structure from an advertising payload.
type Record struct {
	Type byte
	Data []byte
}

// Advertisement represents a decoded BLE advertising payload stripped from
// transport details.
type Advertisement struct {
	Raw     []byte
	Records []Record
}

// Parse walks the length-prefixed AD structures of a raw advertising payload.
// A zero length byte terminates parsing (trailing padding); a structure that
// overruns the payload is an error. Record data is copied out of the input
// buffer.
func Parse(raw []byte) (Advertisement, error) {
	adv := Advertisement{Raw: append([]byte(nil), raw...)}
	for i := 0; i < len(raw); {
		length := int(raw[i])
		if length == 0 {
			break
		}
		if i+1+length > len(raw) {
			return Advertisement{}, fmt.Errorf("ad structure at offset %d declares %d bytes, only %d remain", i, length, len(raw)-i-1)
		}
		adv.Records = append(adv.Records, Record{
			Type: raw[i+1],
			Data: append([]byte(nil), raw[i+2:i+1+length]...),
		})
		i += 1 + length
	}
	return adv, nil
}

// Record returns the data of the first AD structure with the given type.
func (a Advertisement) Record(adType byte) ([]byte, bool) {
	for _, rec := range a.Records {
		if rec.Type == adType {
			return rec.Data, true
		}
	}
	return nil, false
}

// ManufacturerData returns the first manufacturer-specific data block, or nil
// when the advertisement carries none.
func (a Advertisement) ManufacturerData() []byte {
	data, _ := a.Record(TypeManufacturerSpecific)
	return data
}

// LocalName returns the complete local name, falling back to the shortened
// form.
func (a Advertisement) LocalName() string {
	if data, ok := a.Record(TypeCompleteLocalName); ok {
		return string(data)
	}
	if data, ok := a.Record(TypeShortenedLocalName); ok {
		return string(data)
	}
	return ""
}

// Flags returns the advertising flags octet if present.
func (a Advertisement) Flags() (byte, bool) {
	data, ok := a.Record(TypeFlags)
	if !ok || len(data) == 0 {
		return 0, false
	}
	return data[0], true
}

// TxPowerLevel returns the advertised Tx power level if present.
func (a Advertisement) TxPowerLevel() (int8, bool) {
	data, ok := a.Record(TypeTxPowerLevel)
	if !ok || len(data) == 0 {
		return 0, false
	}
	return int8(data[0]), true
}
