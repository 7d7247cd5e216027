package service

import "errors"

// User-facing failure taxonomy. Handlers map these to flash messages and
// redirects; nothing in this package is fatal to the process.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrDuplicateClinic    = errors.New("clinic name already exists")
	ErrUnknownClinic      = errors.New("clinic does not exist")
	ErrNotFound           = errors.New("not found")
	ErrInvalidSession     = errors.New("invalid or expired session")
)
