package viewmapping

import "errors"

var ErrInvalidMapping = errors.New("viewmapping: invalid servlet mapping")
