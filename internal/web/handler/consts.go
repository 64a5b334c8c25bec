// Package handler holds the pieces shared by all web handlers: route
// constants, the JSON error envelope and request validation.
package handler

const (
	// RootPath is the root path of a route group.
	RootPath = "/"

	// IDPath is the id parameter path of a route group.
	IDPath = "/:id"

	// ErrNilACDFatalLogMsg is used if app or cfg or db var pointer is nil.
	ErrNilACDFatalLogMsg = "app, cfg or db is nil"
)
