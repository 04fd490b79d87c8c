package blurpass

import "errors"

var (
	// ErrNoSourceImage is returned when a pass is drawn without a source image.
	ErrNoSourceImage = errors.New("blurpass: source image not set")
	// ErrInvalidResolution is returned when a pass is drawn before a positive
	// resolution was set. The shader's step would divide by zero.
	ErrInvalidResolution = errors.New("blurpass: resolution must be positive")
	// ErrInvalidStrength is returned when the blur strength is negative or not finite.
	ErrInvalidStrength = errors.New("blurpass: blur strength must be finite and non-negative")
)
