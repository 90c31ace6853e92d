package ibeacon

import "math"

// Proximity buckets a distance estimate into the ranges commonly shown to
// users.
type Proximity int

const (
	ProximityUnknown Proximity = iota
	ProximityImmediate
	ProximityNear
	ProximityFar
)

// String returns the lowercase display name of the band.
func (p Proximity) String() string {
	switch p {
	case ProximityImmediate:
		return "immediate"
	case ProximityNear:
		return "near"
	case ProximityFar:
		return "far"
	default:
		return "unknown"
	}
}

// Accuracy estimates the distance to the beacon in metres from its calibrated
// Tx power and a measured RSSI, both in dBm. It returns -1 when no estimate
// is possible (an RSSI of zero means no reading).
func Accuracy(txPower int8, rssi float64) float64 {
	if rssi == 0 {
		return -1
	}
	ratio := rssi / float64(txPower)
	if ratio < 1.0 {
		return math.Pow(ratio, 10)
	}
	return 0.89976*math.Pow(ratio, 7.7095) + 0.111
}

// ProximityFromAccuracy maps a distance estimate onto the display bands.
func ProximityFromAccuracy(accuracy float64) Proximity {
	switch {
	case accuracy < 0:
		return ProximityUnknown
	case accuracy <= 0.5:
		return ProximityImmediate
	case accuracy <= 3.0:
		return ProximityNear
	default:
		return ProximityFar
	}
}
