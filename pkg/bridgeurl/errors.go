package bridgeurl

import "errors"

var (
	ErrMalformedURL = errors.New("bridgeurl: malformed URL")
	ErrNoContainer  = errors.New("bridgeurl: no portlet container bound")
)
