package core

import "errors"

// ErrInvalidConfiguration is wrapped by every startup validation failure
// Callers match it with errors.Is
var ErrInvalidConfiguration = errors.New("invalid configuration")
