package loader

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/griffnb/giantbomb-openapi/internal/domain"
)

// Load reads the documentation page from a URL or a local file and parses it.
func (s *Service) Load(ctx context.Context, source string) (*domain.Page, error) {
	body, err := s.read(ctx, source)
	if err != nil {
		return nil, err
	}

	s.debug.Printf("Loader: read %d bytes from %s", len(body), source)

	return s.Parse(bytes.NewReader(body))
}

func (s *Service) read(ctx context.Context, source string) ([]byte, error) {
	if !IsRemote(source) {
		body, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("failed to read documentation file: %w", err)
		}
		return body, nil
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("User-Agent", s.userAgent).
		Get(source)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch documentation from %s: %w", source, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("failed to fetch documentation from %s: status %s", source, resp.Status())
	}

	return resp.Body(), nil
}

// IsRemote reports whether source is an http(s) URL rather than a file path.
func IsRemote(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
