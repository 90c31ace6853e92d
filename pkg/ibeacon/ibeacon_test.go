package ibeacon

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/JOJOyh/goblebeacon/pkg/beacon"
)

var workedExample = []byte{
	0x4C, 0x00, 0x02, 0x15,
	0xE2, 0xC5, 0x6D, 0xB5, 0xDF, 0xFB, 0x48, 0xD2,
	0xB0, 0x60, 0xD0, 0xF5, 0xA7, 0x10, 0x96, 0xE0,
	0x00, 0x01, 0x00, 0x02, 0xC5,
}

type stubClassifier struct {
	result beacon.Type
}

func (stubClassifier) Name() string { return "stub" }

func (s stubClassifier) Classify([]byte) beacon.Type { return s.result }

func TestDecodeWorkedExample(t *testing.T) {
	rec, err := DecodeDefault(workedExample)
	require.NoError(t, err)
	require.Equal(t, uint16(0x004C), rec.CompanyIdentifier())
	require.Equal(t, uint16(0x0215), rec.AdvertisementIndicator())
	require.Equal(t, "e2c56db5-dffb-48d2-b060-d0f5a71096e0", rec.ProximityUUID())
	require.Equal(t, uint16(1), rec.Major())
	require.Equal(t, uint16(2), rec.Minor())
	require.Equal(t, int8(-59), rec.CalibratedTxPower())
}

func TestDecodeUUIDShape(t *testing.T) {
	pattern := regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

	data := make([]byte, RecordLength)
	copy(data, workedExample)
	for i := 4; i < 20; i++ {
		data[i] = byte(0xA0 + i)
	}
	rec, err := DecodeDefault(data)
	require.NoError(t, err)
	require.Regexp(t, pattern, rec.ProximityUUID())
}

func TestDecodeWrongLength(t *testing.T) {
	for _, n := range []int{0, 1, 24, 26, 31} {
		data := make([]byte, n)
		copy(data, workedExample)
		_, err := Decode(data, stubClassifier{result: beacon.IBeacon})
		var wrongLen WrongLengthError
		require.ErrorAs(t, err, &wrongLen, "length %d", n)
		require.Equal(t, n, wrongLen.Actual)
	}
}

func TestDecodeNotIBeacon(t *testing.T) {
	data := append([]byte(nil), workedExample...)
	data[0] = 0x06
	data[1] = 0x00

	_, err := DecodeDefault(data)
	var notBeacon NotBeaconError
	require.ErrorAs(t, err, &notBeacon)
	require.Equal(t, data, notBeacon.Data)
}

func TestDecodeClassifierIsInjected(t *testing.T) {
	// A rejecting double overrides bytes that look like an iBeacon.
	_, err := Decode(workedExample, stubClassifier{result: beacon.Unknown})
	var notBeacon NotBeaconError
	require.ErrorAs(t, err, &notBeacon)

	// An accepting double lets arbitrary 25-byte content through.
	arbitrary := make([]byte, RecordLength)
	for i := range arbitrary {
		arbitrary[i] = byte(i)
	}
	rec, err := Decode(arbitrary, stubClassifier{result: beacon.IBeacon})
	require.NoError(t, err)
	require.Equal(t, uint16(0x0100), rec.CompanyIdentifier())
	require.Equal(t, uint16(0x0203), rec.AdvertisementIndicator())
}

func TestDecodeIdempotent(t *testing.T) {
	first, err := DecodeDefault(workedExample)
	require.NoError(t, err)
	second, err := DecodeDefault(workedExample)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestDecodeDefensiveCopy(t *testing.T) {
	data := append([]byte(nil), workedExample...)
	rec, err := DecodeDefault(data)
	require.NoError(t, err)

	for i := range data {
		data[i] = 0xFF
	}
	require.Equal(t, uint16(0x004C), rec.CompanyIdentifier())
	require.Equal(t, "e2c56db5-dffb-48d2-b060-d0f5a71096e0", rec.ProximityUUID())
	require.Equal(t, uint16(1), rec.Major())
	require.Equal(t, uint16(2), rec.Minor())
	require.Equal(t, int8(-59), rec.CalibratedTxPower())
}

func TestDecodeNeverPartial(t *testing.T) {
	_, err := DecodeDefault(workedExample[:24])
	require.Error(t, err)
	require.False(t, errors.As(err, &NotBeaconError{}))
}

func TestClassifier(t *testing.T) {
	require.Equal(t, beacon.IBeacon, Classifier{}.Classify(workedExample))

	longer := append(append([]byte(nil), workedExample...), 0xDE, 0xAD)
	require.Equal(t, beacon.IBeacon, Classifier{}.Classify(longer))

	short := workedExample[:24]
	require.Equal(t, beacon.Unknown, Classifier{}.Classify(short))

	other := append([]byte(nil), workedExample...)
	other[2] = 0x03
	require.Equal(t, beacon.Unknown, Classifier{}.Classify(other))
}
