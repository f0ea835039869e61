package core

import (
	"errors"
	"fmt"
)

// ErrConfig is the root of every configuration error in this module.
//
// Package level sentinels wrap it, so callers can test for the whole class
// with errors.Is(err, core.ErrConfig) or for one parameter with the
// package sentinel.
var ErrConfig = errors.New("configuration error")

// ConfigError builds a package sentinel that wraps [ErrConfig].
func ConfigError(msg string) error {
	return fmt.Errorf("%w: %s", ErrConfig, msg)
}
