package ibeacon

import (
	"context"
	"fmt"

	"github.com/JOJOyh/goblebeacon/internal/company"
	"github.com/JOJOyh/goblebeacon/internal/options"
	"github.com/JOJOyh/goblebeacon/pkg/beacon"
)

func init() {
	beacon.RegisterClassifier(Classifier{})
	beacon.RegisterDriver(beacon.IBeacon, driver{})
}

// Classifier recognizes the iBeacon prefix inside manufacturer-specific data.
type Classifier struct{}

// Name returns the canonical classifier name.
func (Classifier) Name() string { return "ibeacon" }

// Classify checks the Apple company identifier and advertisement indicator
// prefix. Blocks longer than the schema still match here; Decode enforces the
// exact length.
func (Classifier) Classify(data []byte) beacon.Type {
	if len(data) < RecordLength {
		return beacon.Unknown
	}
	if data[0] == 0x4C && data[1] == 0x00 && data[2] == 0x02 && data[3] == 0x15 {
		return beacon.IBeacon
	}
	return beacon.Unknown
}

// registryClassifier answers through the beacon package registry, so callers
// without an explicit collaborator get whatever classifiers are registered.
type registryClassifier struct{}

func (registryClassifier) Name() string { return "registry" }

func (registryClassifier) Classify(data []byte) beacon.Type {
	return beacon.Classify(data)
}

type driver struct{}

// Name returns the canonical driver name.
func (driver) Name() string { return "ibeacon" }

// Process decodes the manufacturer data block and returns a response map.
// When a measured RSSI is present in the context the fields also carry a
// distance estimate and proximity band.
func (driver) Process(ctx context.Context, data []byte) (map[string]any, error) {
	rec, err := Decode(data, Classifier{})
	if err != nil {
		return nil, err
	}
	fields := map[string]any{
		"company_id":          fmt.Sprintf("0x%04X", rec.CompanyIdentifier()),
		"beacon_type":         fmt.Sprintf("0x%04X", rec.AdvertisementIndicator()),
		"proximity_uuid":      rec.ProximityUUID(),
		"major":               int(rec.Major()),
		"minor":               int(rec.Minor()),
		"calibrated_tx_power": int(rec.CalibratedTxPower()),
	}
	if name := company.Lookup(rec.CompanyIdentifier()); name != "" {
		fields["company_name"] = name
	}
	if rssi, ok := options.MeasuredRSSI(ctx); ok {
		acc := Accuracy(rec.CalibratedTxPower(), rssi)
		fields["estimated_accuracy_m"] = acc
		fields["proximity"] = ProximityFromAccuracy(acc).String()
	}
	return fields, nil
}
