package goblebeacon

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/JOJOyh/goblebeacon/internal/testutil"
)

func TestIBeaconGolden(t *testing.T) {
	fixtures := []struct {
		name       string
		opts       AnalyzeOptions
		expectFile string
	}{
		{name: "apple_worked_example"},
		{
			name:       "apple_md_only",
			opts:       AnalyzeOptions{ManufacturerDataOnly: true},
			expectFile: "ibeacon/apple_worked_example.json",
		},
	}
	for _, tc := range fixtures {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			hexStr := testutil.LoadHex(t, "ibeacon/"+tc.name+".hex")
			result, err := AnalyzeHexWithOptions(context.Background(), hexStr, tc.opts)
			require.NoError(t, err)
			require.Equal(t, "ibeacon", result.Driver)

			path := "ibeacon/" + tc.name + ".json"
			if tc.expectFile != "" {
				path = tc.expectFile
			}
			var expected map[string]any
			testutil.LoadJSON(t, path, &expected)
			require.Equal(t, expected, normalize(t, result.Fields))
		})
	}
}

// normalize round-trips the fields through JSON so numeric types compare the
// way the fixture decodes them.
func normalize(t *testing.T, fields map[string]any) map[string]any {
	t.Helper()
	raw, err := json.Marshal(fields)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}
