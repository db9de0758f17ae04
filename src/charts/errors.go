package charts

import "errors"

var (
	// ErrUnknownKind is returned for a chart kind missing from the registry.
	ErrUnknownKind = errors.New("unknown chart kind")
	// ErrUnknownVariant is returned for a variant other than data, val or test.
	ErrUnknownVariant = errors.New("unknown chart variant")
	// ErrInvalidKind reports an incomplete kind definition, usually from YAML.
	ErrInvalidKind = errors.New("invalid chart kind")
)
