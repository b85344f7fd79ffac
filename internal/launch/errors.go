package launch

import "errors"

// ErrUnsupportedPlatform is returned when no URL opener is known for the OS.
var ErrUnsupportedPlatform = errors.New("no URL opener for this platform")
