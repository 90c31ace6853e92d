package goblebeacon

import (
	"context"

	internalopts "github.com/JOJOyh/goblebeacon/internal/options"
)

// AnalyzeOptions configures parsing.
type AnalyzeOptions struct {
	// ManufacturerDataOnly treats the input as an already-isolated
	// manufacturer-specific data block instead of a full advertising payload.
	ManufacturerDataOnly bool

	// MeasuredRSSI is a measured signal strength in dBm used to estimate the
	// distance to calibrated beacons. Zero means no reading was taken.
	MeasuredRSSI float64
}

func (opts AnalyzeOptions) toInternal(ctx context.Context) (context.Context, error) {
	if opts.MeasuredRSSI == 0 {
		return ctx, nil
	}
	if err := internalopts.ValidateRSSI(opts.MeasuredRSSI); err != nil {
		return ctx, err
	}
	return internalopts.WithMeasuredRSSI(ctx, opts.MeasuredRSSI), nil
}
