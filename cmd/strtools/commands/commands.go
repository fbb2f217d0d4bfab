// Package commands declares the strtools command registry.
package commands

import (
	"fmt"
	"strings"

	"github.com/erraggy/strtools/dispatch"
	"github.com/erraggy/strtools/strcase"
)

// Program is the binary name shown in help and usage hints.
const Program = "strtools"

// banner is the first line printed by help.
const banner = "<info>String Tools CLI</info> <comment>--</comment> <warning>Usage:</warning> " + Program + " <command> [args]"

// Config holds option values that change command output.
type Config struct {
	// Format selects the output of the all command: text, json or yaml
	Format string
}

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() Config {
	return Config{Format: FormatText}
}

// NewRegistry declares every command. The help command lists the registry
// it belongs to and renders its markup with renderer.
func NewRegistry(engine *strcase.Engine, renderer dispatch.Renderer, cfg Config) (*dispatch.Registry, error) {
	var reg *dispatch.Registry

	help := func(string) (string, error) {
		return Help(reg, renderer), nil
	}
	convert := func(fn func(string) string) dispatch.Handler {
		return func(s string) (string, error) { return fn(s), nil }
	}
	str := []string{"string"}

	reg, err := dispatch.NewRegistry(
		dispatch.CommandSpec{Name: "help", Description: "Display the help screen.", Handler: help},
		dispatch.CommandSpec{Name: "kebab", Description: "Convert a string to kebab-case.", Args: str, Handler: convert(engine.Kebab)},
		dispatch.CommandSpec{Name: "snake", Description: "Convert a string to snake_case.", Args: str,
			Handler: convert(func(s string) string { return engine.Snake(s, strcase.DefaultDelimiter) })},
		dispatch.CommandSpec{Name: "camel", Description: "Convert a string to camelCase.", Args: str, Handler: convert(engine.Camel)},
		dispatch.CommandSpec{Name: "studly", Aliases: []string{"pascal"}, Description: "Convert a string to StudlyCaps/PascalCase.", Args: str, Handler: convert(engine.Studly)},
		dispatch.CommandSpec{Name: "lower", Description: "Convert a string to lowercase.", Args: str, Handler: convert(engine.Lower)},
		dispatch.CommandSpec{Name: "upper", Description: "Convert a string to UPPERCASE.", Args: str, Handler: convert(engine.Upper)},
		dispatch.CommandSpec{Name: "title", Description: "Convert a string to Title Case.", Args: str, Handler: convert(engine.Title)},
		dispatch.CommandSpec{Name: "headline", Description: "Convert a string to Headline Case.", Args: str, Handler: convert(engine.Headline)},
		dispatch.CommandSpec{Name: "slug", Description: "Convert a string to a URL slug.", Args: str, Handler: convert(engine.Slug)},
		dispatch.CommandSpec{Name: "sentence", Description: "Convert a string to Sentence case.", Args: str, Handler: convert(engine.Sentence)},
		dispatch.CommandSpec{Name: "count", Description: "Count the characters in a string.", Args: str, Handler: convert(strcase.Length)},
		dispatch.CommandSpec{Name: "words", Description: "Count the words in a string.", Args: str, Handler: convert(strcase.WordCount)},
		dispatch.CommandSpec{Name: "all", Description: "Show a string in every case (--format=text|json|yaml).", Args: str,
			Handler: func(s string) (string, error) { return All(engine, s, cfg.Format) }},
	)
	if err != nil {
		return nil, fmt.Errorf("commands: %w", err)
	}
	return reg, nil
}

// Help renders the usage banner followed by one "  <name> - <description>"
// line per command.
func Help(reg *dispatch.Registry, renderer dispatch.Renderer) string {
	lines := []string{renderer.Render(banner)}
	for _, spec := range reg.List() {
		line := fmt.Sprintf("  <warning>%s</warning> <comment>- %s</comment>", spec.Name, spec.Description)
		if len(spec.Aliases) > 0 {
			line += fmt.Sprintf(" <comment>(alias: %s)</comment>", strings.Join(spec.Aliases, ", "))
		}
		lines = append(lines, renderer.Render(line))
	}
	return strings.Join(lines, "\n")
}
