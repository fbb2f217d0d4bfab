package strcase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("default cache", func(t *testing.T) {
		e, err := New()
		require.NoError(t, err)
		assert.Equal(t, 0, e.CacheLen())
	})

	t.Run("negative cache size rejected", func(t *testing.T) {
		_, err := New(WithCacheSize(-1))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "strcase: invalid options")
	})

	t.Run("zero cache size disables caching", func(t *testing.T) {
		e, err := New(WithCacheSize(0))
		require.NoError(t, err)
		assert.Equal(t, "hello-world", e.Kebab("Hello World"))
		assert.Equal(t, 0, e.CacheLen())
	})
}

func TestEngineMatchesPackageFunctions(t *testing.T) {
	e, err := New()
	require.NoError(t, err)

	for _, input := range seedInputs {
		// Run twice so the second pass is served from the cache.
		for range 2 {
			assert.Equal(t, Kebab(input), e.Kebab(input), "Kebab(%q)", input)
			assert.Equal(t, Snake(input, "."), e.Snake(input, "."), "Snake(%q, \".\")", input)
			assert.Equal(t, Camel(input), e.Camel(input), "Camel(%q)", input)
			assert.Equal(t, Studly(input), e.Studly(input), "Studly(%q)", input)
			assert.Equal(t, Pascal(input), e.Pascal(input), "Pascal(%q)", input)
			assert.Equal(t, Lower(input), e.Lower(input), "Lower(%q)", input)
			assert.Equal(t, Upper(input), e.Upper(input), "Upper(%q)", input)
			assert.Equal(t, Title(input), e.Title(input), "Title(%q)", input)
			assert.Equal(t, Headline(input), e.Headline(input), "Headline(%q)", input)
			assert.Equal(t, Slug(input), e.Slug(input), "Slug(%q)", input)
			assert.Equal(t, Sentence(input), e.Sentence(input), "Sentence(%q)", input)
		}
	}
}

func TestEngineCacheKeys(t *testing.T) {
	e, err := New()
	require.NoError(t, err)

	// Same input, different delimiters must not collide.
	assert.Equal(t, "hello_world", e.Snake("Hello World", "_"))
	assert.Equal(t, "hello-world", e.Snake("Hello World", "-"))
	assert.Equal(t, "hello-world", e.Kebab("Hello World"))
	assert.Equal(t, 3, e.CacheLen())

	// Same input, different conversions must not collide.
	assert.Equal(t, "helloWorld", e.Camel("hello world"))
	assert.Equal(t, "HelloWorld", e.Studly("hello world"))
	assert.Equal(t, "HelloWorld", e.Pascal("hello world"))
	assert.Equal(t, 5, e.CacheLen(), "Pascal shares Studly's entry")

	e.Purge()
	assert.Equal(t, 0, e.CacheLen())
}

func TestEngineCacheBounded(t *testing.T) {
	e, err := New(WithCacheSize(2))
	require.NoError(t, err)

	e.Lower("A")
	e.Lower("B")
	e.Lower("C")
	assert.Equal(t, 2, e.CacheLen())
}

func TestEnginesDoNotShareCache(t *testing.T) {
	a, err := New()
	require.NoError(t, err)
	b, err := New()
	require.NoError(t, err)

	a.Kebab("Hello World")
	assert.Equal(t, 1, a.CacheLen())
	assert.Equal(t, 0, b.CacheLen())
}

func TestEngineConvert(t *testing.T) {
	e, err := New()
	require.NoError(t, err)

	tests := []struct {
		c    Case
		want string
	}{
		{CaseKebab, "hello-world"},
		{CaseSnake, "hello_world"},
		{CaseCamel, "helloWorld"},
		{CaseStudly, "HelloWorld"},
		{CasePascal, "HelloWorld"},
		{CaseLower, "hello world"},
		{CaseUpper, "HELLO WORLD"},
		{CaseTitle, "Hello World"},
		{CaseHeadline, "Hello World"},
		{CaseSlug, "hello-world"},
		{CaseSentence, "Hello world"},
	}

	for _, tt := range tests {
		t.Run(string(tt.c), func(t *testing.T) {
			assert.True(t, IsValidCase(tt.c))
			got, err := e.Convert(tt.c, "Hello World")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown case", func(t *testing.T) {
		assert.False(t, IsValidCase("screaming"))
		_, err := e.Convert("screaming", "Hello World")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown case")
	})
}

func TestCases(t *testing.T) {
	cs := Cases()
	assert.NotContains(t, cs, CasePascal)
	for _, c := range cs {
		assert.True(t, IsValidCase(c), "Cases() returned invalid case %q", c)
	}
}
