package gl

import (
	"fmt"
	"sync"

	"github.com/Masterminds/semver/v3"
)

// Requirement gates an alias candidate on the probed capability set. The
// zero value is satisfied by every driver.
type Requirement struct {
	minVersion *semver.Version
	extension  string
}

// Always marks a candidate as available on every driver.
func Always() Requirement { return Requirement{} }

// CoreSince gates a candidate on the version that promoted it to core. A
// driver below the threshold does not export the unsuffixed name at all.
func CoreSince(major, minor uint64) Requirement {
	return Requirement{minVersion: semver.New(major, minor, 0, "", "")}
}

// Extension gates a candidate on an advertised extension token.
func Extension(token string) Requirement {
	return Requirement{extension: token}
}

// SatisfiedBy reports whether caps meets the requirement.
func (r Requirement) SatisfiedBy(caps *CapabilitySet) bool {
	if r.minVersion != nil {
		return caps.AtLeast(r.minVersion.Major(), r.minVersion.Minor())
	}
	if r.extension != "" {
		return caps.Supports(r.extension)
	}
	return true
}

func (r Requirement) String() string {
	switch {
	case r.minVersion != nil:
		return fmt.Sprintf("version>=%d.%d", r.minVersion.Major(), r.minVersion.Minor())
	case r.extension != "":
		return r.extension
	default:
		return "always"
	}
}

// Candidate pairs a native symbol name with the capability a driver needs
// before it will export that symbol.
type Candidate struct {
	Symbol   string
	Requires Requirement
}

// Command is a logical driver command together with its alias candidates in
// decreasing preference order: the promoted core name first, then the
// specification-declared equivalent vendor and extension variants.
type Command struct {
	Name       string
	Candidates []Candidate
}

// Registry is the alias table mapping logical command names to candidate
// lists. It is built once from specification data and read-only during
// resolution.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]Command
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// Register adds cmd to the table, replacing any previous entry of the same
// name.
func (r *Registry) Register(cmd Command) error {
	if cmd.Name == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	if len(cmd.Candidates) == 0 {
		return fmt.Errorf("command %q has no alias candidates", cmd.Name)
	}
	for _, c := range cmd.Candidates {
		if c.Symbol == "" {
			return fmt.Errorf("command %q has a candidate with an empty symbol name", cmd.Name)
		}
	}
	r.mu.Lock()
	r.commands[cmd.Name] = cmd
	r.mu.Unlock()
	return nil
}

// Lookup returns the registered command, if any.
func (r *Registry) Lookup(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.commands[name]
	return cmd, ok
}

// CandidatesFor returns the ordered alias candidates for name that caps can
// satisfy. Unsatisfied candidates are omitted entirely: a core name below
// its promotion threshold does not exist in that driver, so resolution
// starts directly from the extension-suffixed names. The result is a pure
// function of the registry contents and caps.
func (r *Registry) CandidatesFor(name string, caps *CapabilitySet) []Candidate {
	r.mu.RLock()
	cmd, ok := r.commands[name]
	r.mu.RUnlock()
	if !ok {
		return nil
	}
	out := make([]Candidate, 0, len(cmd.Candidates))
	for _, c := range cmd.Candidates {
		if c.Requires.SatisfiedBy(caps) {
			out = append(out, c)
		}
	}
	return out
}
