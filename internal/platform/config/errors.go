package config

import (
	"errors"
	"fmt"
)

// Sentinel error kinds for this package. These allow errors.Is from callers.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrLoadConfig    = errors.New("load config failed")

	// ErrMissingHostName is returned when HOST_NAME is unset or blank. The
	// service cannot compute its root path without it and must not start.
	ErrMissingHostName = fmt.Errorf("%w: HOST_NAME is required", ErrInvalidConfig)
)
