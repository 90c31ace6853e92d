package options

import (
	"context"
	"fmt"
)

type contextKey struct{}

// WithMeasuredRSSI stores a measured signal strength inside the context.
func WithMeasuredRSSI(ctx context.Context, rssi float64) context.Context {
	return context.WithValue(ctx, contextKey{}, rssi)
}

// MeasuredRSSI retrieves the measured signal strength from context if present.
func MeasuredRSSI(ctx context.Context) (float64, bool) {
	v, ok := ctx.Value(contextKey{}).(float64)
	return v, ok
}

// ValidateRSSI checks that a measured RSSI is a plausible dBm reading.
func ValidateRSSI(rssi float64) error {
	if rssi >= 0 {
		return fmt.Errorf("measured RSSI must be negative dBm, got %.1f", rssi)
	}
	if rssi < -127 {
		return fmt.Errorf("measured RSSI below -127 dBm is not representable, got %.1f", rssi)
	}
	return nil
}
