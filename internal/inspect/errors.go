package inspect

import "errors"

var (
	ErrMissingURL   = errors.New("inspect: url parameter is required")
	ErrInvalidKind  = errors.New("inspect: kind must be action, render or resource")
	ErrInvalidParam = errors.New("inspect: render parameter must be name=value")
	ErrInvalidBool  = errors.New("inspect: secure must be a boolean token")
)
