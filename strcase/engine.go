package strcase

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of conversions an Engine remembers when no
// WithCacheSize option is given.
const DefaultCacheSize = 256

// Case names a conversion supported by Engine.Convert.
type Case string

const (
	// CaseKebab selects Kebab.
	CaseKebab Case = "kebab"
	// CaseSnake selects Snake with DefaultDelimiter.
	CaseSnake Case = "snake"
	// CaseCamel selects Camel.
	CaseCamel Case = "camel"
	// CaseStudly selects Studly.
	CaseStudly Case = "studly"
	// CasePascal selects Pascal.
	CasePascal Case = "pascal"
	// CaseLower selects Lower.
	CaseLower Case = "lower"
	// CaseUpper selects Upper.
	CaseUpper Case = "upper"
	// CaseTitle selects Title.
	CaseTitle Case = "title"
	// CaseHeadline selects Headline.
	CaseHeadline Case = "headline"
	// CaseSlug selects Slug.
	CaseSlug Case = "slug"
	// CaseSentence selects Sentence.
	CaseSentence Case = "sentence"
)

// Cases returns every Case in display order. Pascal is omitted because it
// always matches Studly.
func Cases() []Case {
	return []Case{
		CaseKebab,
		CaseSnake,
		CaseCamel,
		CaseStudly,
		CaseLower,
		CaseUpper,
		CaseTitle,
		CaseHeadline,
		CaseSlug,
		CaseSentence,
	}
}

// IsValidCase reports whether c names a supported conversion.
func IsValidCase(c Case) bool {
	_, ok := converters[c]
	return ok
}

var converters = map[Case]func(string) string{
	CaseKebab:    Kebab,
	CaseSnake:    func(s string) string { return Snake(s, DefaultDelimiter) },
	CaseCamel:    Camel,
	CaseStudly:   Studly,
	CasePascal:   Studly,
	CaseLower:    Lower,
	CaseUpper:    Upper,
	CaseTitle:    Title,
	CaseHeadline: Headline,
	CaseSlug:     Slug,
	CaseSentence: Sentence,
}

// cacheKey identifies a memoized conversion. The delimiter is only set for
// Snake; Kebab is cached as its own conversion.
type cacheKey struct {
	conversion Case
	input      string
	delimiter  string
}

// Engine performs conversions through a bounded LRU cache. The cache is an
// optimization only: an Engine returns exactly what the package-level
// functions return. An Engine is safe for concurrent use.
type Engine struct {
	cache *lru.Cache[cacheKey, string]
}

// Option is a function that configures an Engine
type Option func(*engineConfig) error

type engineConfig struct {
	cacheSize int
}

// WithCacheSize sets the maximum number of cached conversions.
// A size of 0 disables caching; negative sizes are rejected.
func WithCacheSize(size int) Option {
	return func(cfg *engineConfig) error {
		if size < 0 {
			return fmt.Errorf("cache size must not be negative, got %d", size)
		}
		cfg.cacheSize = size
		return nil
	}
}

// New creates an Engine with its own cache.
func New(opts ...Option) (*Engine, error) {
	cfg := engineConfig{cacheSize: DefaultCacheSize}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, fmt.Errorf("strcase: invalid options: %w", err)
		}
	}

	e := &Engine{}
	if cfg.cacheSize > 0 {
		cache, err := lru.New[cacheKey, string](cfg.cacheSize)
		if err != nil {
			return nil, fmt.Errorf("strcase: creating cache: %w", err)
		}
		e.cache = cache
	}
	return e, nil
}

// Convert applies the named conversion to s.
func (e *Engine) Convert(c Case, s string) (string, error) {
	fn, ok := converters[c]
	if !ok {
		return "", fmt.Errorf("strcase: unknown case %q", c)
	}
	switch c {
	case CaseSnake:
		return e.Snake(s, DefaultDelimiter), nil
	case CasePascal:
		c = CaseStudly
	}
	return e.memo(c, s, "", fn), nil
}

// Kebab is the cached form of the package-level Kebab.
func (e *Engine) Kebab(s string) string { return e.memo(CaseKebab, s, "", Kebab) }

// Snake is the cached form of the package-level Snake.
func (e *Engine) Snake(s string, delimiter string) string {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}
	return e.memo(CaseSnake, s, delimiter, func(v string) string { return Snake(v, delimiter) })
}

// Camel is the cached form of the package-level Camel.
func (e *Engine) Camel(s string) string { return e.memo(CaseCamel, s, "", Camel) }

// Studly is the cached form of the package-level Studly.
func (e *Engine) Studly(s string) string { return e.memo(CaseStudly, s, "", Studly) }

// Pascal is an alias of Studly and shares its cache entries.
func (e *Engine) Pascal(s string) string { return e.Studly(s) }

// Lower is the cached form of the package-level Lower.
func (e *Engine) Lower(s string) string { return e.memo(CaseLower, s, "", Lower) }

// Upper is the cached form of the package-level Upper.
func (e *Engine) Upper(s string) string { return e.memo(CaseUpper, s, "", Upper) }

// Title is the cached form of the package-level Title.
func (e *Engine) Title(s string) string { return e.memo(CaseTitle, s, "", Title) }

// Headline is the cached form of the package-level Headline.
func (e *Engine) Headline(s string) string { return e.memo(CaseHeadline, s, "", Headline) }

// Slug is the cached form of the package-level Slug.
func (e *Engine) Slug(s string) string { return e.memo(CaseSlug, s, "", Slug) }

// Sentence is the cached form of the package-level Sentence.
func (e *Engine) Sentence(s string) string { return e.memo(CaseSentence, s, "", Sentence) }

// CacheLen returns the number of cached conversions.
func (e *Engine) CacheLen() int {
	if e.cache == nil {
		return 0
	}
	return e.cache.Len()
}

// Purge empties the cache.
func (e *Engine) Purge() {
	if e.cache != nil {
		e.cache.Purge()
	}
}

func (e *Engine) memo(c Case, input, delimiter string, fn func(string) string) string {
	if e.cache == nil {
		return fn(input)
	}
	key := cacheKey{conversion: c, input: input, delimiter: delimiter}
	if v, ok := e.cache.Get(key); ok {
		return v
	}
	v := fn(input)
	e.cache.Add(key, v)
	return v
}
