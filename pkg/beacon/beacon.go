package beacon

// Type identifies the advertising scheme a manufacturer-specific data block
// belongs to.
type Type int

const (
	Unknown Type = iota
	IBeacon
)

// String returns the canonical lowercase name of the scheme.
func (t Type) String() string {
	switch t {
	case IBeacon:
		return "ibeacon"
	default:
		return "unknown"
	}
}

// Classifier decides which beacon scheme a manufacturer-specific data block
// belongs to. Inconclusive answers are reported as Unknown. Implementations
// must be safe for concurrent use.
type Classifier interface {
	Name() string
	Classify(data []byte) Type
}
