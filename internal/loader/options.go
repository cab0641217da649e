package loader

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultUserAgent is sent when no user agent is configured. The documentation
// host rejects requests without one.
const DefaultUserAgent = "giantbomb-openapi"

// NewService creates a new loader service with optional configuration
func NewService(options ...Option) *Service {
	s := &Service{
		userAgent: DefaultUserAgent,
		debug:     &noOpDebugger{},
	}

	for _, opt := range options {
		opt(s)
	}

	if s.client == nil {
		s.client = resty.New()
	}
	if s.timeout > 0 {
		s.client.SetTimeout(s.timeout)
	}

	return s
}

// WithClient sets the HTTP client used for remote sources
func WithClient(client *resty.Client) Option {
	return func(s *Service) {
		s.client = client
	}
}

// WithUserAgent sets the User-Agent header of the fetch request
func WithUserAgent(userAgent string) Option {
	return func(s *Service) {
		if userAgent != "" {
			s.userAgent = userAgent
		}
	}
}

// WithTimeout bounds the fetch request; zero means no limit
func WithTimeout(timeout time.Duration) Option {
	return func(s *Service) {
		s.timeout = timeout
	}
}

// WithDebugger sets the debugger for logging
func WithDebugger(debugger Debugger) Option {
	return func(s *Service) {
		if debugger != nil {
			s.debug = debugger
		}
	}
}
