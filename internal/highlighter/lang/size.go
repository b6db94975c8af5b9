package lang

import (
	"os"

	"github.com/bethropolis/side/internal/syntax"
)

// DefaultLargeFileThreshold is the size at which highlighting is disabled.
const DefaultLargeFileThreshold int64 = 2 * 1024 * 1024

// SizePolicy downgrades large files to the plain language.
type SizePolicy struct {
	Threshold int64
	// Stat defaults to os.Stat.
	Stat func(name string) (os.FileInfo, error)
}

// Downgrade reports whether path is at least the threshold in size.
// A file that cannot be inspected is not downgraded.
func (p SizePolicy) Downgrade(path string) bool {
	if path == "" {
		return false
	}
	threshold := p.Threshold
	if threshold <= 0 {
		threshold = DefaultLargeFileThreshold
	}
	stat := p.Stat
	if stat == nil {
		stat = os.Stat
	}
	info, err := stat(path)
	if err != nil {
		return false
	}
	return info.Size() >= threshold
}

// Apply returns language, or the plain language when path is too large.
func (p SizePolicy) Apply(path, language string) string {
	if p.Downgrade(path) {
		return syntax.PlainLanguage
	}
	return language
}
