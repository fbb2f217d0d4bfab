package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/erraggy/strtools/strcase"
	"github.com/erraggy/strtools/strerrors"
	"go.yaml.in/yaml/v4"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Conversions is the structured output of the all command.
type Conversions struct {
	Input    string `json:"input" yaml:"input"`
	Kebab    string `json:"kebab" yaml:"kebab"`
	Snake    string `json:"snake" yaml:"snake"`
	Camel    string `json:"camel" yaml:"camel"`
	Studly   string `json:"studly" yaml:"studly"`
	Lower    string `json:"lower" yaml:"lower"`
	Upper    string `json:"upper" yaml:"upper"`
	Title    string `json:"title" yaml:"title"`
	Headline string `json:"headline" yaml:"headline"`
	Slug     string `json:"slug" yaml:"slug"`
	Sentence string `json:"sentence" yaml:"sentence"`
}

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return &strerrors.ConfigError{
			Option:  "format",
			Value:   format,
			Message: fmt.Sprintf("valid formats: %s, %s, %s", FormatText, FormatJSON, FormatYAML),
		}
	}
	return nil
}

// All renders s in every case supported by engine.
func All(engine *strcase.Engine, s string, format string) (string, error) {
	if err := ValidateOutputFormat(format); err != nil {
		return "", err
	}

	if format == FormatText {
		return allText(engine, s)
	}

	conv := Conversions{
		Input:    s,
		Kebab:    engine.Kebab(s),
		Snake:    engine.Snake(s, strcase.DefaultDelimiter),
		Camel:    engine.Camel(s),
		Studly:   engine.Studly(s),
		Lower:    engine.Lower(s),
		Upper:    engine.Upper(s),
		Title:    engine.Title(s),
		Headline: engine.Headline(s),
		Slug:     engine.Slug(s),
		Sentence: engine.Sentence(s),
	}
	return OutputStructured(conv, format)
}

func allText(engine *strcase.Engine, s string) (string, error) {
	cs := strcase.Cases()
	width := 0
	for _, c := range cs {
		width = max(width, len(c)+1)
	}

	lines := make([]string, 0, len(cs))
	for _, c := range cs {
		out, err := engine.Convert(c, s)
		if err != nil {
			return "", fmt.Errorf("commands: %w", err)
		}
		lines = append(lines, fmt.Sprintf("%-*s %s", width, string(c)+":", out))
	}
	return strings.Join(lines, "\n"), nil
}

// OutputStructured marshals data as json or yaml without a trailing newline.
func OutputStructured(data any, format string) (string, error) {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return "", fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return "", fmt.Errorf("marshaling to %s: %w", format, err)
	}

	return strings.TrimRight(string(bytes), "\n"), nil
}
