package openssl

import "errors"

var (
	// ErrToolFailed indicates an openssl invocation exited non-zero
	ErrToolFailed = errors.New("openssl invocation failed")
	// ErrToolStart indicates the openssl binary could not be launched
	ErrToolStart = errors.New("openssl could not be started")
)
