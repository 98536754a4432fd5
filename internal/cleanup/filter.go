package cleanup

import (
	"fmt"
	"time"

	"github.com/IGLOU-EU/go-wildcard"
	"github.com/aatumaykin/agesweep/internal/constants"
	"github.com/wasilibs/go-re2"
	"golang.org/x/text/unicode/norm"
)

const day = 24 * time.Hour

// Excluder matches file base names against exclusion patterns.
type Excluder struct {
	patterns []*re2.Regexp
}

// NewExcluder compiles patterns. Matching is unanchored, so a pattern that
// must match the whole name needs ^ and $.
func NewExcluder(patterns []string) (*Excluder, error) {
	e := &Excluder{patterns: make([]*re2.Regexp, 0, len(patterns))}
	for _, p := range patterns {
		re, err := re2.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("%w: exclude pattern %q: %v", ErrInvalidArgument, p, err)
		}
		e.patterns = append(e.patterns, re)
	}
	return e, nil
}

// Excluded reports whether name matches any pattern. Names are compared in
// NFC so decomposed names written by macOS match precomposed patterns.
func (e *Excluder) Excluded(name string) bool {
	name = norm.NFC.String(name)
	for _, re := range e.patterns {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}

// Eligible reports whether a file modified at modTime is strictly older than days at now.
// No file can be older than MaxDays, so larger thresholds match nothing.
func Eligible(modTime, now time.Time, days int) bool {
	if days > constants.MaxDays {
		return false
	}
	return now.Sub(modTime) > time.Duration(days)*day
}

// Protector matches full paths against wildcard patterns. Protected files are
// never deleted and protected directories are neither entered nor pruned.
type Protector struct {
	patterns []string
}

func NewProtector(patterns []string) *Protector {
	return &Protector{patterns: append([]string(nil), patterns...)}
}

func (p *Protector) Protected(path string) bool {
	for _, pattern := range p.patterns {
		if wildcard.Match(pattern, path) {
			return true
		}
	}
	return false
}
