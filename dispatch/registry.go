package dispatch

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance is the largest edit distance Suggest accepts.
const maxSuggestDistance = 2

// Handler runs a command on the joined payload string. The payload is empty
// when no arguments followed the command name.
type Handler func(payload string) (string, error)

// CommandSpec binds a command name to its handler and description.
type CommandSpec struct {
	// Name is the unique, lower-case command name
	Name string
	// Aliases are additional names resolving to this command
	Aliases []string
	// Description is the one-line text shown by help
	Description string
	// Args names the required arguments; its length is the command's arity
	Args []string
	// Handler runs the command
	Handler Handler
}

// Arity returns the number of arguments the command requires.
func (c CommandSpec) Arity() int {
	return len(c.Args)
}

// Usage returns a one-line usage string such as "strtools kebab <string>".
func (c CommandSpec) Usage(program string) string {
	var b strings.Builder
	b.WriteString(program)
	b.WriteByte(' ')
	b.WriteString(c.Name)
	for _, arg := range c.Args {
		b.WriteString(" <")
		b.WriteString(arg)
		b.WriteByte('>')
	}
	return b.String()
}

// Registry is an immutable, ordered set of commands.
type Registry struct {
	specs []CommandSpec
	index map[string]int
}

// NewRegistry builds a Registry from specs, keeping their order. Names and
// aliases must be non-empty and unique, and every spec needs a handler.
func NewRegistry(specs ...CommandSpec) (*Registry, error) {
	r := &Registry{
		specs: make([]CommandSpec, 0, len(specs)),
		index: make(map[string]int, len(specs)),
	}
	for _, spec := range specs {
		if spec.Name == "" {
			return nil, fmt.Errorf("dispatch: command name must not be empty")
		}
		if spec.Handler == nil {
			return nil, fmt.Errorf("dispatch: command %s has no handler", spec.Name)
		}
		pos := len(r.specs)
		for _, name := range append([]string{spec.Name}, spec.Aliases...) {
			if name == "" {
				return nil, fmt.Errorf("dispatch: command %s has an empty alias", spec.Name)
			}
			if _, exists := r.index[name]; exists {
				return nil, fmt.Errorf("dispatch: command %s already registered", name)
			}
			r.index[name] = pos
		}
		spec.Aliases = append([]string(nil), spec.Aliases...)
		spec.Args = append([]string(nil), spec.Args...)
		r.specs = append(r.specs, spec)
	}
	return r, nil
}

// MustNewRegistry is like NewRegistry but panics on error. It is intended
// for registries declared at program start.
func MustNewRegistry(specs ...CommandSpec) *Registry {
	r, err := NewRegistry(specs...)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup returns the command registered under name or one of its aliases.
func (r *Registry) Lookup(name string) (CommandSpec, bool) {
	pos, ok := r.index[name]
	if !ok {
		return CommandSpec{}, false
	}
	return r.specs[pos], true
}

// List returns every command in registration order.
func (r *Registry) List() []CommandSpec {
	return append([]CommandSpec(nil), r.specs...)
}

// Suggest returns the registered name or alias closest to name, or "" when
// nothing is within two edits.
func (r *Registry) Suggest(name string) string {
	name = strings.ToLower(name)
	best, bestDist := "", maxSuggestDistance+1
	for _, spec := range r.specs {
		for _, candidate := range append([]string{spec.Name}, spec.Aliases...) {
			if d := levenshtein.ComputeDistance(name, candidate); d < bestDist {
				best, bestDist = candidate, d
			}
		}
	}
	return best
}
