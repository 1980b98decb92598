package config

import "errors"

var (
	ErrInvalidConfig = errors.New("config: invalid configuration")
	ErrReadConfig    = errors.New("config: failed to read configuration")
)
