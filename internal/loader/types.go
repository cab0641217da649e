package loader

import (
	"errors"
	"time"

	"github.com/go-resty/resty/v2"
)

var (
	// ErrResponseTableNotFound is returned when the page has no envelope definition table.
	ErrResponseTableNotFound = errors.New("unable to find response definition table")

	// ErrInvalidTableURL is returned when a path table's URL cannot be turned into an API path.
	ErrInvalidTableURL = errors.New("invalid table URL")
)

// Service fetches and parses the API documentation page
type Service struct {
	client    *resty.Client
	userAgent string
	timeout   time.Duration
	debug     Debugger
}

// Debugger interface for logging
type Debugger interface {
	Printf(format string, v ...interface{})
}

// noOpDebugger discards debug output
type noOpDebugger struct{}

func (n *noOpDebugger) Printf(format string, v ...interface{}) {}

// Option configures a Service
type Option func(*Service)
