package commands

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/erraggy/strtools/strcase"
	"github.com/erraggy/strtools/strerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

func expectedConversions(s string) Conversions {
	return Conversions{
		Input:    s,
		Kebab:    strcase.Kebab(s),
		Snake:    strcase.Snake(s, strcase.DefaultDelimiter),
		Camel:    strcase.Camel(s),
		Studly:   strcase.Studly(s),
		Lower:    strcase.Lower(s),
		Upper:    strcase.Upper(s),
		Title:    strcase.Title(s),
		Headline: strcase.Headline(s),
		Slug:     strcase.Slug(s),
		Sentence: strcase.Sentence(s),
	}
}

func TestValidateOutputFormat(t *testing.T) {
	for _, format := range []string{FormatText, FormatJSON, FormatYAML} {
		assert.NoError(t, ValidateOutputFormat(format), format)
	}

	err := ValidateOutputFormat("xml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, strerrors.ErrConfig))
	var cfgErr *strerrors.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "format", cfgErr.Option)
	assert.Equal(t, "xml", cfgErr.Value)
	assert.Contains(t, err.Error(), "valid formats: text, json, yaml")
}

func TestAllText(t *testing.T) {
	engine, err := strcase.New()
	require.NoError(t, err)

	out, err := All(engine, "helloWorld", FormatText)
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, len(strcase.Cases()))

	got := make(map[string]string, len(lines))
	valueColumn := -1
	for _, line := range lines {
		name, value, ok := strings.Cut(line, ":")
		require.True(t, ok, line)
		got[name] = strings.TrimSpace(value)

		col := len(line) - len(strings.TrimLeft(value, " "))
		if valueColumn < 0 {
			valueColumn = col
		}
		assert.Equal(t, valueColumn, col, "values should be aligned: %q", line)
	}

	want := expectedConversions("helloWorld")
	assert.Equal(t, want.Kebab, got["kebab"])
	assert.Equal(t, want.Snake, got["snake"])
	assert.Equal(t, want.Camel, got["camel"])
	assert.Equal(t, want.Studly, got["studly"])
	assert.Equal(t, want.Headline, got["headline"])
	assert.Equal(t, want.Sentence, got["sentence"])
	assert.Equal(t, "hello-world", got["kebab"])
	assert.Equal(t, "Hello World", got["headline"])
}

func TestAllJSON(t *testing.T) {
	engine, err := strcase.New()
	require.NoError(t, err)

	out, err := All(engine, "Hello World", FormatJSON)
	require.NoError(t, err)
	assert.False(t, strings.HasSuffix(out, "\n"))

	var got Conversions
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, expectedConversions("Hello World"), got)
}

func TestAllYAML(t *testing.T) {
	engine, err := strcase.New()
	require.NoError(t, err)

	out, err := All(engine, "user_profileId", FormatYAML)
	require.NoError(t, err)
	assert.Contains(t, out, "studly: UserProfileId")

	var got Conversions
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, expectedConversions("user_profileId"), got)
}

func TestAllInvalidFormat(t *testing.T) {
	engine, err := strcase.New()
	require.NoError(t, err)

	_, err = All(engine, "hello", "xml")
	assert.ErrorIs(t, err, strerrors.ErrConfig)
}

func TestOutputStructuredInvalidFormat(t *testing.T) {
	_, err := OutputStructured(Conversions{}, FormatText)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format for structured output")
}
