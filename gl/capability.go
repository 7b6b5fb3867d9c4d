package gl

import (
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// baselineVersion is assumed whenever the driver's version string cannot be
// parsed. Resolution must still be attemptable against a broken driver, so
// parse failure degrades instead of erroring.
var baselineVersion = semver.MustParse("1.0.0")

// CapabilitySet is the probed version and extension surface of the active
// driver context. A set is immutable once constructed; probing after a
// context switch builds a fresh one so stale aliasing decisions never
// persist.
type CapabilitySet struct {
	version    *semver.Version
	extensions map[string]struct{}
}

// NewCapabilitySet parses versionStr and normalizes extensions into a
// de-duplicated set. Each extensions argument may be a single token or a
// whole space-delimited list, covering both the legacy EXTENSIONS string
// and the indexed enumeration query styles.
func NewCapabilitySet(versionStr string, extensions ...string) *CapabilitySet {
	set := make(map[string]struct{})
	for _, ext := range extensions {
		for _, token := range strings.Fields(ext) {
			set[token] = struct{}{}
		}
	}
	return &CapabilitySet{
		version:    ParseVersion(versionStr),
		extensions: set,
	}
}

// ParseVersion parses a driver version string of the form
// "<major>.<minor>[.<patch>][ vendor info]". Embedded-profile prefixes
// ("OpenGL ES 3.2 ...") are recognized. Unparseable input yields the 1.0
// baseline, never an error.
func ParseVersion(s string) *semver.Version {
	s = strings.TrimSpace(s)
	for _, prefix := range []string{"OpenGL ES-CM ", "OpenGL ES-CL ", "OpenGL ES ", "OpenGL SC "} {
		if rest, ok := strings.CutPrefix(s, prefix); ok {
			s = rest
			break
		}
	}
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return baselineVersion
	}
	v, err := semver.NewVersion(fields[0])
	if err != nil {
		return baselineVersion
	}
	return v
}

// Version returns the parsed driver version.
func (c *CapabilitySet) Version() *semver.Version { return c.version }

// AtLeast reports whether the probed version meets major.minor.
func (c *CapabilitySet) AtLeast(major, minor uint64) bool {
	if c.version.Major() != major {
		return c.version.Major() > major
	}
	return c.version.Minor() >= minor
}

// Supports reports whether the driver advertises the extension token.
func (c *CapabilitySet) Supports(token string) bool {
	_, ok := c.extensions[token]
	return ok
}

// Extensions returns the advertised tokens in sorted order.
func (c *CapabilitySet) Extensions() []string {
	out := make([]string, 0, len(c.extensions))
	for token := range c.extensions {
		out = append(out, token)
	}
	sort.Strings(out)
	return out
}
