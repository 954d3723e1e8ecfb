package filter

import (
	"fmt"
	"regexp"
)

// DefaultHealthCheckPatterns matches high-frequency liveness-probe
// request lines at the end of a message, with or without a trailing
// slash.
var DefaultHealthCheckPatterns = []string{`/api/health/?$`, `/health/?$`}

// ConfigError reports a pattern that failed to compile. It is returned
// at filter construction time, never during emission.
type ConfigError struct {
	Pattern string
	Err     error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("filter: invalid pattern %q: %v", e.Pattern, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ContentFilter decides whether a rendered message should reach the
// sinks. Patterns are compiled once at construction; evaluation
// short-circuits on the first match.
type ContentFilter struct {
	patterns []*regexp.Regexp
}

// New compiles patterns case-insensitively into a ContentFilter. A nil
// or empty slice selects DefaultHealthCheckPatterns. Any pattern that
// fails to compile aborts construction with a *ConfigError.
func New(patterns []string) (*ContentFilter, error) {
	if len(patterns) == 0 {
		patterns = DefaultHealthCheckPatterns
	}

	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(`(?i)` + p)
		if err != nil {
			return nil, &ConfigError{Pattern: p, Err: err}
		}
		compiled = append(compiled, re)
	}
	return &ContentFilter{patterns: compiled}, nil
}

// ShouldEmit reports whether message passes the filter. It returns
// false iff any configured pattern matches anywhere in the message.
func (f *ContentFilter) ShouldEmit(message string) bool {
	for _, re := range f.patterns {
		if re.MatchString(message) {
			return false
		}
	}
	return true
}
