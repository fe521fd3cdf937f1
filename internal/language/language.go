// Package language parses and caches the language table printed by
// `mkvmerge --list-languages`.
package language

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"iter"
	"regexp"
	"strings"
	"sync"

	"github.com/wagiedev/mkvtoolnix-go/internal/errors"
)

const (
	// Undetermined is the ISO 639 code for an undetermined language.
	Undetermined = "und"
	// English is the ISO 639-3 code for English.
	English = "eng"

	headerLines = 2
)

// lineRe matches `name | iso639-3 | iso639-2 | iso639-1`; the last two columns may be blank.
var lineRe = regexp.MustCompile(`^\s*([^|]+)\s+\|\s*([a-z]{3})\s*\|\s*([a-z]{3})?\s*\|\s*([a-z]{2})?\s*$`)

// Language is one row of the language table.
// Two languages are the same language when their ISO 639-3 codes match.
type Language struct {
	Name    string `json:"name"`
	ISO6393 string `json:"iso639_3"`
	ISO6392 string `json:"iso639_2,omitempty"`
	ISO6391 string `json:"iso639_1,omitempty"`
}

// Code returns the code to pass to mkvmerge and mkvpropedit: the ISO 639-2
// code when the language has one, its ISO 639-3 code otherwise.
func (l Language) Code() string {
	if l.ISO6392 != "" {
		return l.ISO6392
	}

	return l.ISO6393
}

// IsUndetermined reports whether l is the "und" placeholder language.
func (l Language) IsUndetermined() bool { return l.ISO6393 == Undetermined }

// IsEnglish reports whether l is English.
func (l Language) IsEnglish() bool { return l.ISO6393 == English }

// Equal compares languages by ISO 639-3 code.
func (l Language) Equal(other Language) bool { return l.ISO6393 == other.ISO6393 }

func (l Language) String() string {
	return fmt.Sprintf("%s (%s)", l.Name, l.ISO6393)
}

// Table is an immutable set of languages keyed by ISO 639-3 code.
type Table struct {
	languages []Language
	byISO6393 map[string]int
	byISO6392 map[string]int
	byISO6391 map[string]int
}

// NewTable indexes languages. Later duplicates of an ISO 639-3 code are ignored.
func NewTable(languages []Language) *Table {
	t := &Table{
		languages: make([]Language, 0, len(languages)),
		byISO6393: make(map[string]int, len(languages)),
		byISO6392: make(map[string]int, len(languages)),
		byISO6391: make(map[string]int, len(languages)),
	}

	for _, l := range languages {
		if _, dup := t.byISO6393[l.ISO6393]; dup {
			continue
		}

		idx := len(t.languages)
		t.languages = append(t.languages, l)
		t.byISO6393[l.ISO6393] = idx

		if l.ISO6392 != "" {
			if _, ok := t.byISO6392[l.ISO6392]; !ok {
				t.byISO6392[l.ISO6392] = idx
			}
		}

		if l.ISO6391 != "" {
			if _, ok := t.byISO6391[l.ISO6391]; !ok {
				t.byISO6391[l.ISO6391] = idx
			}
		}
	}

	return t
}

// Parse reads `--list-languages` output. The two header lines are skipped and
// rows that do not match the column layout are ignored.
func Parse(r io.Reader) (*Table, error) {
	scanner := bufio.NewScanner(r)
	languages := make([]Language, 0, 512)

	for n := 0; scanner.Scan(); n++ {
		if n < headerLines {
			continue
		}

		m := lineRe.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}

		languages = append(languages, Language{
			Name:    strings.TrimSpace(m[1]),
			ISO6393: m[2],
			ISO6392: m[3],
			ISO6391: m[4],
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read language table: %w", err)
	}

	return NewTable(languages), nil
}

// Lookup resolves code against the ISO 639-3 column first, then ISO 639-2,
// then ISO 639-1. Matching is case-insensitive.
func (t *Table) Lookup(code string) (Language, error) {
	key := strings.ToLower(strings.TrimSpace(code))

	for _, index := range []map[string]int{t.byISO6393, t.byISO6392, t.byISO6391} {
		if idx, ok := index[key]; ok {
			return t.languages[idx], nil
		}
	}

	return Language{}, &errors.UnknownLanguageError{Code: code}
}

// All yields every language in table order.
func (t *Table) All() iter.Seq[Language] {
	return func(yield func(Language) bool) {
		for _, l := range t.languages {
			if !yield(l) {
				return
			}
		}
	}
}

// Len returns the number of languages in the table.
func (t *Table) Len() int { return len(t.languages) }

// Loader produces a table, typically by running mkvmerge.
type Loader func(ctx context.Context) (*Table, error)

// Cache loads a table at most once successfully.
//
// Concurrent first callers are serialised, so the loader never runs twice at
// the same time. A failed load is not cached; the next caller retries.
type Cache struct {
	mu    sync.Mutex
	load  Loader
	table *Table
}

// NewCache returns a cache backed by load.
func NewCache(load Loader) *Cache {
	return &Cache{load: load}
}

// Get returns the cached table, loading it on first use.
func (c *Cache) Get(ctx context.Context) (*Table, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.table != nil {
		return c.table, nil
	}

	table, err := c.load(ctx)
	if err != nil {
		return nil, err
	}

	c.table = table

	return table, nil
}
