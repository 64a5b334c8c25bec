package config

import "errors"

var (
	// ErrWebServerPortCanNotBeZero is returned if the webserver port is unset.
	ErrWebServerPortCanNotBeZero = errors.New("webserver port can not be zero")

	// ErrEmptyURL is returned if the webserver base URL is unset.
	ErrEmptyURL = errors.New("webserver url can not be empty")

	// ErrUnknownDBDriver is returned for unsupported database drivers.
	ErrUnknownDBDriver = errors.New("unknown database driver")
)
