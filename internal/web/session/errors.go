package session

import "github.com/pkg/errors"

// ErrNoSession indicates no session exists for the presented session ID.
var ErrNoSession = errors.New("no session for ID")
