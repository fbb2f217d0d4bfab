package dispatch

import (
	"strconv"
	"strings"
)

// OptionValue is the parsed value of one command-line option. A token
// without "=" is a boolean flag: Bool is true and Value is empty.
type OptionValue struct {
	Value string
	Bool  bool
}

// Arguments holds parsed process arguments. Positionals[0], when present, is
// the command name. Arguments are read-only once parsed.
type Arguments struct {
	Options     map[string]OptionValue
	Positionals []string
}

// Parse classifies raw arguments (without the program name). Tokens starting
// with '-' are options: leading dashes are stripped and "key=value" is split
// at the first '='. Every other token is appended to Positionals in order.
// Unknown options are kept, never rejected.
func Parse(raw []string) Arguments {
	args := Arguments{
		Options:     make(map[string]OptionValue),
		Positionals: make([]string, 0, len(raw)),
	}
	for _, tok := range raw {
		if !strings.HasPrefix(tok, "-") {
			args.Positionals = append(args.Positionals, tok)
			continue
		}
		name := strings.TrimLeft(tok, "-")
		if key, value, ok := strings.Cut(name, "="); ok {
			args.Options[key] = OptionValue{Value: value}
		} else {
			args.Options[name] = OptionValue{Bool: true}
		}
	}
	return args
}

// HasOption reports whether the option was given in any form.
func (a Arguments) HasOption(name string) bool {
	_, ok := a.Options[name]
	return ok
}

// Option returns the string value of name, or def when the option is absent
// or was given as a bare flag.
func (a Arguments) Option(name, def string) string {
	v, ok := a.Options[name]
	if !ok || v.Bool {
		return def
	}
	return v.Value
}

// Flag reports whether name was given as a bare flag or with a value that
// parses as true ("--color=true").
func (a Arguments) Flag(name string) bool {
	v, ok := a.Options[name]
	if !ok {
		return false
	}
	if v.Bool {
		return true
	}
	b, err := strconv.ParseBool(v.Value)
	return err == nil && b
}

// Argument returns the positional at index i.
func (a Arguments) Argument(i int) (string, bool) {
	if i < 0 || i >= len(a.Positionals) {
		return "", false
	}
	return a.Positionals[i], true
}

// Command returns the first positional, or "" when there is none.
func (a Arguments) Command() string {
	cmd, _ := a.Argument(0)
	return cmd
}

// Payload joins every positional after the command name with single spaces.
// Empty when no arguments follow the command.
func (a Arguments) Payload() string {
	if len(a.Positionals) < 2 {
		return ""
	}
	return strings.Join(a.Positionals[1:], " ")
}
