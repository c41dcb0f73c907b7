package proptest

import (
	"shelf/internal/library"
	"time"

	"pgregory.net/rapid"
)

const (
	typicalMinBooks = 1
	typicalMaxBooks = 10
)

// Field generators stay clear of commas and newlines: the store format
// has no quoting, so those characters cannot appear inside a field.
var (
	iterDirGen  = rapid.StringMatching(`[a-z]{8}`)
	nameGen     = rapid.StringMatching(`[A-Z][a-z]{2,10}( [A-Z][a-z]{2,10})?`)
	authorGen   = rapid.StringMatching(`[A-Z][a-z]{2,8} [A-Z][a-z]{2,10}`)
	borrowerGen = rapid.StringMatching(`[A-Z][a-z]{2,8}`)
	queryGen    = rapid.StringMatching(`[a-zA-Z]{1,6}`)
)

func yearGen() *rapid.Generator[int] {
	return rapid.IntRange(0, 2030)
}

func dateGen() *rapid.Generator[time.Time] {
	return rapid.Custom(func(t *rapid.T) time.Time {
		year := rapid.IntRange(1990, 2026).Draw(t, "year")
		month := rapid.IntRange(1, 12).Draw(t, "month")
		day := rapid.IntRange(1, 28).Draw(t, "day")
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	})
}

type BookGenOpt func(*bookGenConfig)

type bookGenConfig struct {
	name *string
}

func WithName(name string) BookGenOpt {
	return func(c *bookGenConfig) {
		c.name = &name
	}
}

func GenBook(t *rapid.T, opts ...BookGenOpt) library.Book {
	cfg := &bookGenConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	var name string
	if cfg.name != nil {
		name = *cfg.name
	} else {
		name = nameGen.Draw(t, "name")
	}

	b := library.NewBook(
		name,
		authorGen.Draw(t, "author"),
		yearGen().Draw(t, "year"),
		dateGen().Draw(t, "issueDate"),
	)
	b.Borrowed = rapid.Bool().Draw(t, "borrowed")
	return b
}
