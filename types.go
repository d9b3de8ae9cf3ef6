package md2wiki

import (
	"fmt"
	"strings"
)

// Flavor selects the Atlassian markup dialect to emit.
type Flavor string

// Supported flavors.
const (
	FlavorJira       Flavor = "jira"
	FlavorConfluence Flavor = "confluence"
)

// ParseFlavor resolves user input into a Flavor. Accepts the full names
// and their single letter forms, case-insensitively.
func ParseFlavor(s string) (Flavor, error) {
	switch strings.ToLower(s) {
	case "jira", "j":
		return FlavorJira, nil
	case "confluence", "c":
		return FlavorConfluence, nil
	}
	return "", fmt.Errorf("%w: %q (must be jira or confluence)", ErrUnknownFlavor, s)
}

// Input contains conversion parameters.
type Input struct {
	Markdown     string // Markdown content (required)
	HeadingShift int    // added to every heading level (may be negative)
	TOC          bool   // emit a leading {toc} macro
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	flavor Flavor
}

// WithFlavor sets the markup flavor. The default is Jira.
func WithFlavor(f Flavor) Option {
	return func(s *Service) {
		s.cfg.flavor = f
	}
}
