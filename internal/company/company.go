package company

// Lookup returns a human-readable name for a Bluetooth SIG company ID, or ""
// when the ID is not in the table.
// See: https://www.bluetooth.com/specifications/assigned-numbers/
func Lookup(companyID uint16) string {
	if name, ok := companyNames[companyID]; ok {
		return name
	}
	return ""
}

var companyNames = map[uint16]string{
	0x0002: "Intel",
	0x0006: "Microsoft",
	0x000A: "Qualcomm",
	0x000D: "Texas Instruments",
	0x004C: "Apple",
	0x0059: "Nordic Semiconductor",
	0x0075: "Samsung",
	0x00E0: "Google",
	0x0118: "Radius Networks",
	0x015D: "Estimote",
	0x0157: "Huawei",
	0x0171: "Amazon",
	0x025B: "Kontakt Micro-Location",
	0x02FF: "Tile",
	0x0310: "Xiaomi",
	0x0499: "Ruuvi Innovations",
}
