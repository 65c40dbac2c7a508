package resolve

import "errors"

// Sentinel errors for resolution.
var (
	ErrNilTheme             = errors.New("resolve: theme is nil")
	ErrNilRenderer          = errors.New("resolve: renderer is nil")
	ErrMisconfiguredCaching = errors.New("resolve: boolean variables caching requires styles caching")
)
