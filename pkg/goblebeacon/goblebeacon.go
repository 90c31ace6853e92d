package goblebeacon

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"github.com/JOJOyh/goblebeacon/internal/advert"
	"github.com/JOJOyh/goblebeacon/internal/company"
	"github.com/JOJOyh/goblebeacon/pkg/beacon"
	_ "github.com/JOJOyh/goblebeacon/pkg/ibeacon" // register classifier and driver
)

// Result captures the outcome of AnalyzeHex.
type Result struct {
	Kind          string
	Driver        string
	RawHex        string
	ByteCount     int
	Advertisement *advert.Advertisement
	Fields        map[string]any
}

// String renders a human-readable representation of the result.
func (r Result) String() string {
	summary := map[string]any{
		"kind":       r.Kind,
		"driver":     r.Driver,
		"byte_count": r.ByteCount,
		"raw_hex":    r.RawHex,
	}
	if r.Advertisement != nil {
		if name := r.Advertisement.LocalName(); name != "" {
			summary["local_name"] = name
		}
		if md := r.Advertisement.ManufacturerData(); len(md) >= 2 {
			id := uint16(md[0]) | uint16(md[1])<<8
			summary["company_id"] = fmt.Sprintf("0x%04X", id)
			if name := company.Lookup(id); name != "" {
				summary["company_name"] = name
			}
		}
	}
	if len(r.Fields) > 0 {
		summary["fields"] = r.Fields
	}
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Sprintf("kind: %s driver: %s bytes:%d raw:%s (marshal error: %v)", r.Kind, r.Driver, r.ByteCount, r.RawHex, err)
	}
	return string(data)
}

// AnalyzeHex parses the advertising payload, classifies the beacon scheme,
// and returns decoded data.
func AnalyzeHex(ctx context.Context, raw string) (Result, error) {
	return AnalyzeHexWithOptions(ctx, raw, AnalyzeOptions{})
}

// AnalyzeHexWithOptions parses the payload with custom options.
func AnalyzeHexWithOptions(ctx context.Context, raw string, opts AnalyzeOptions) (Result, error) {
	ctx, err := opts.toInternal(ctx)
	if err != nil {
		return Result{}, err
	}
	data, err := decodeHex(raw)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		Kind:      beacon.Unknown.String(),
		Driver:    "unknown",
		RawHex:    strings.ToUpper(stripWhitespace(raw)),
		ByteCount: len(data),
	}

	block := data
	if !opts.ManufacturerDataOnly {
		adv, err := advert.Parse(data)
		if err != nil {
			return Result{}, err
		}
		result.Advertisement = &adv
		block = adv.ManufacturerData()
		if block == nil {
			return result, fmt.Errorf("advertisement carries no manufacturer-specific data")
		}
	}

	kind := beacon.Classify(block)
	result.Kind = kind.String()
	drv, err := beacon.LookupDriver(kind)
	if err != nil {
		return result, nil
	}
	fields, err := drv.Process(ctx, block)
	if err != nil {
		return result, err
	}
	result.Driver = drv.Name()
	result.Fields = fields
	return result, nil
}

func decodeHex(input string) ([]byte, error) {
	clean := stripWhitespace(input)
	if strings.HasPrefix(clean, "0X") || strings.HasPrefix(clean, "0x") {
		clean = clean[2:]
	}
	if len(clean)%2 != 0 {
		return nil, fmt.Errorf("hex payload must contain an even number of digits, got %d", len(clean))
	}
	decoded := make([]byte, len(clean)/2)
	if _, err := hex.Decode(decoded, []byte(clean)); err != nil {
		return nil, fmt.Errorf("decode hex: %w", err)
	}
	return decoded, nil
}

func stripWhitespace(s string) string {
	builder := strings.Builder{}
	builder.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || r == '|' || r == '_' || r == ':' {
			continue
		}
		builder.WriteRune(r)
	}
	return builder.String()
}
