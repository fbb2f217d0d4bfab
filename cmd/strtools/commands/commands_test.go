package commands

import (
	"strings"
	"testing"

	"github.com/erraggy/strtools/dispatch"
	"github.com/erraggy/strtools/internal/markup"
	"github.com/erraggy/strtools/strcase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T, cfg Config) *dispatch.Registry {
	t.Helper()
	engine, err := strcase.New()
	require.NoError(t, err)
	reg, err := NewRegistry(engine, markup.New(false), cfg)
	require.NoError(t, err)
	return reg
}

func TestNewRegistryCommands(t *testing.T) {
	reg := newTestRegistry(t, DefaultConfig())

	var names []string
	for _, spec := range reg.List() {
		names = append(names, spec.Name)
	}
	assert.Equal(t, []string{
		"help", "kebab", "snake", "camel", "studly", "lower", "upper", "title",
		"headline", "slug", "sentence", "count", "words", "all",
	}, names)

	help, ok := reg.Lookup("help")
	require.True(t, ok)
	assert.Equal(t, 0, help.Arity())

	pascal, ok := reg.Lookup("pascal")
	require.True(t, ok)
	assert.Equal(t, "studly", pascal.Name)

	for _, spec := range reg.List() {
		if spec.Name == "help" {
			continue
		}
		assert.Equal(t, 1, spec.Arity(), "command %s", spec.Name)
		assert.NotEmpty(t, spec.Description, "command %s", spec.Name)
	}
}

func TestRegistryHandlers(t *testing.T) {
	reg := newTestRegistry(t, DefaultConfig())

	tests := []struct {
		command  string
		input    string
		expected string
	}{
		{"kebab", "Hello World", "hello-world"},
		{"snake", "Hello World", "hello_world"},
		{"camel", "hello world", "helloWorld"},
		{"studly", "hello world", "HelloWorld"},
		{"pascal", "hello world", "HelloWorld"},
		{"lower", "Hello World", "hello world"},
		{"upper", "Hello World", "HELLO WORLD"},
		{"title", "hello wORLD", "Hello World"},
		{"headline", "hello-world", "Hello World"},
		{"headline", "hello_world", "Hello World"},
		{"slug", "Héllo, Wörld!", "hello-world"},
		{"sentence", "hello_world", "Hello world"},
		{"count", "hello world", "11"},
		{"words", "hello world", "2"},
	}

	for _, tt := range tests {
		t.Run(tt.command+"/"+tt.input, func(t *testing.T) {
			spec, ok := reg.Lookup(tt.command)
			require.True(t, ok)
			got, err := spec.Handler(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestHelp(t *testing.T) {
	reg := newTestRegistry(t, DefaultConfig())

	spec, ok := reg.Lookup("help")
	require.True(t, ok)
	out, err := spec.Handler("")
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, len(reg.List())+1)
	assert.Equal(t, "String Tools CLI -- Usage: strtools <command> [args]", lines[0])
	assert.Contains(t, lines, "  help - Display the help screen.")
	assert.Contains(t, lines, "  kebab - Convert a string to kebab-case.")
	assert.Contains(t, lines, "  studly - Convert a string to StudlyCaps/PascalCase. (alias: pascal)")
	assert.Equal(t, out, Help(reg, markup.New(false)))
}

func TestHelpColored(t *testing.T) {
	reg := newTestRegistry(t, DefaultConfig())

	out := Help(reg, markup.New(true))
	assert.Contains(t, out, "\x1b[")
	assert.NotContains(t, out, "<warning>")
	assert.Contains(t, out, "kebab")
}
