package beacon

import (
	"context"
	"fmt"
	"sync"
)

// Driver decodes a manufacturer-specific data block once its scheme is known.
type Driver interface {
	Name() string
	Process(ctx context.Context, data []byte) (map[string]any, error)
}

var (
	regMu       sync.RWMutex
	classifiers []Classifier
	drivers     = map[Type]Driver{}
)

// RegisterClassifier stores a classifier in memory. Classifiers run in
// registration order.
func RegisterClassifier(c Classifier) {
	regMu.Lock()
	defer regMu.Unlock()
	classifiers = append(classifiers, c)
}

// RegisterDriver stores the driver responsible for a beacon scheme.
func RegisterDriver(t Type, drv Driver) {
	regMu.Lock()
	defer regMu.Unlock()
	drivers[t] = drv
}

// Classify runs the registered classifiers and returns the first conclusive
// answer, or Unknown when none of them recognizes the data.
func Classify(data []byte) Type {
	regMu.RLock()
	defer regMu.RUnlock()
	for _, c := range classifiers {
		if t := c.Classify(data); t != Unknown {
			return t
		}
	}
	return Unknown
}

// LookupDriver returns the driver registered for the given scheme.
func LookupDriver(t Type) (Driver, error) {
	regMu.RLock()
	defer regMu.RUnlock()
	if drv, ok := drivers[t]; ok {
		return drv, nil
	}
	return nil, fmt.Errorf("driver not found for beacon type %q", t)
}
