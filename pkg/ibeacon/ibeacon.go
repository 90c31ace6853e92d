package ibeacon

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/JOJOyh/goblebeacon/pkg/beacon"
)

// Byte layout of the iBeacon manufacturer-specific data block:
//
//	0-1   company identifier, transmitted LSB first (0x004C = Apple)
//	2-3   advertisement indicator, big-endian (0x0215)
//	4-19  proximity UUID, byte order as transmitted
//	20-21 major, big-endian
//	22-23 minor, big-endian
//	24    calibrated Tx power at 1 m, two's complement
const (
	// RecordLength is the exact size of an iBeacon manufacturer data block.
	RecordLength = 25

	// AppleCompanyID is the Bluetooth SIG company identifier iBeacons
	// advertise under.
	AppleCompanyID uint16 = 0x004C

	// AdvIndicator marks the iBeacon sub-format within Apple manufacturer
	// data.
	AdvIndicator uint16 = 0x0215
)

// Record holds the decoded contents of an iBeacon manufacturer-specific data
// block. A Record is immutable once constructed and shares no memory with the
// buffer it was decoded from.
type Record struct {
	companyIdentifier      uint16
	advertisementIndicator uint16
	proximityUUID          string
	major                  uint16
	minor                  uint16
	calibratedTxPower      int8
}

// WrongLengthError reports a data block whose size does not match the iBeacon
// schema.
type WrongLengthError struct {
	Actual int
}

func (e WrongLengthError) Error() string {
	return fmt.Sprintf("ibeacon: manufacturer data must be %d bytes, got %d", RecordLength, e.Actual)
}

// NotBeaconError reports a block the classifier did not recognize as an
// iBeacon. Data holds a copy of the rejected bytes for diagnostics.
type NotBeaconError struct {
	Data []byte
}

func (e NotBeaconError) Error() string {
	return fmt.Sprintf("ibeacon: manufacturer record %s is not from an iBeacon", hex.EncodeToString(e.Data))
}

// Decode validates data against the iBeacon schema and extracts the record
// fields. The classifier confirms the block is an iBeacon before any field is
// read; every non-iBeacon answer is rejected uniformly. Decode is a pure
// function and safe to call concurrently.
func Decode(data []byte, classifier beacon.Classifier) (Record, error) {
	if len(data) != RecordLength {
		return Record{}, WrongLengthError{Actual: len(data)}
	}
	if classifier.Classify(data) != beacon.IBeacon {
		return Record{}, NotBeaconError{Data: append([]byte(nil), data...)}
	}
	return Record{
		companyIdentifier:      binary.LittleEndian.Uint16(data[0:2]),
		advertisementIndicator: binary.BigEndian.Uint16(data[2:4]),
		proximityUUID:          formatUUID(data[4:20]),
		major:                  binary.BigEndian.Uint16(data[20:22]),
		minor:                  binary.BigEndian.Uint16(data[22:24]),
		calibratedTxPower:      int8(data[24]),
	}, nil
}

// DecodeDefault decodes data using the classifiers registered with the beacon
// package. It is the entry point for callers holding an already-isolated
// manufacturer-specific data block.
func DecodeDefault(data []byte) (Record, error) {
	return Decode(data, registryClassifier{})
}

// CompanyIdentifier returns the Bluetooth SIG company identifier.
func (r Record) CompanyIdentifier() uint16 { return r.companyIdentifier }

// AdvertisementIndicator returns the iBeacon sub-format marker.
func (r Record) AdvertisementIndicator() uint16 { return r.advertisementIndicator }

// ProximityUUID returns the 16-byte deployment identifier as a lowercase
// dash-grouped hex string (8-4-4-4-12).
func (r Record) ProximityUUID() string { return r.proximityUUID }

// Major returns the operator-assigned major subdivision value.
func (r Record) Major() uint16 { return r.major }

// Minor returns the operator-assigned minor subdivision value.
func (r Record) Minor() uint16 { return r.minor }

// CalibratedTxPower returns the measured RSSI at 1 m reported by the beacon.
func (r Record) CalibratedTxPower() int8 { return r.calibratedTxPower }

func formatUUID(b []byte) string {
	s := hex.EncodeToString(b)
	return s[:8] + "-" + s[8:12] + "-" + s[12:16] + "-" + s[16:20] + "-" + s[20:]
}
