package language

import (
	"context"
	stderrors "errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wagiedev/mkvtoolnix-go/internal/errors"
)

const sampleTable = `English language name                | ISO 639-3 code | ISO 639-2 code | ISO 639-1 code
--------------------------------------+----------------+----------------+---------------
Abkhazian                             | abk            | abk            | ab
English                               | eng            | eng            | en
German                                | deu            | ger            | de
Ghotuo                                | aaa            |                |
Italian                               | ita            | ita            | it
Undetermined                          | und            | und            |
this line is not a table row
`

func parseSample(t *testing.T) *Table {
	t.Helper()

	table, err := Parse(strings.NewReader(sampleTable))
	require.NoError(t, err)

	return table
}

// TestParse tests that header lines are skipped and optional columns are
// captured as empty strings.
func TestParse(t *testing.T) {
	table := parseSample(t)

	require.Equal(t, 6, table.Len())

	ghotuo, err := table.Lookup("aaa")
	require.NoError(t, err)
	require.Equal(t, Language{Name: "Ghotuo", ISO6393: "aaa"}, ghotuo)

	german, err := table.Lookup("deu")
	require.NoError(t, err)
	require.Equal(t, Language{Name: "German", ISO6393: "deu", ISO6392: "ger", ISO6391: "de"}, german)
}

// TestParse_SkipsHeaderEvenIfItMatches tests that the first two lines never
// become languages.
func TestParse_SkipsHeaderEvenIfItMatches(t *testing.T) {
	input := "Fake | fff | fff | ff\nFake2 | ggg | ggg | gg\nItalian | ita | ita | it\n"

	table, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
}

// TestLookup_FallbackColumns tests lookup through ISO 639-2 and 639-1 codes.
func TestLookup_FallbackColumns(t *testing.T) {
	table := parseSample(t)

	byBibliographic, err := table.Lookup("ger")
	require.NoError(t, err)
	require.Equal(t, "deu", byBibliographic.ISO6393)

	byTwoLetter, err := table.Lookup("IT")
	require.NoError(t, err)
	require.Equal(t, "ita", byTwoLetter.ISO6393)
}

// TestLookup_Unknown tests that an unknown code fails with a typed error.
func TestLookup_Unknown(t *testing.T) {
	table := parseSample(t)

	_, err := table.Lookup("zzz")
	require.Error(t, err)
	require.ErrorIs(t, err, errors.ErrUnknownLanguage)

	langErr, ok := stderrors.AsType[*errors.UnknownLanguageError](err)
	require.True(t, ok)
	require.Equal(t, "zzz", langErr.Code)
}

func TestLanguageHelpers(t *testing.T) {
	table := parseSample(t)

	und, err := table.Lookup(Undetermined)
	require.NoError(t, err)
	require.True(t, und.IsUndetermined())
	require.False(t, und.IsEnglish())

	eng, err := table.Lookup("en")
	require.NoError(t, err)
	require.True(t, eng.IsEnglish())
	require.Equal(t, "English (eng)", eng.String())

	require.True(t, eng.Equal(Language{ISO6393: "eng", Name: "other name"}))
	require.Equal(t, "ger", Language{ISO6393: "deu", ISO6392: "ger"}.Code())
	require.Equal(t, "aaa", Language{ISO6393: "aaa"}.Code())
}

func TestAll(t *testing.T) {
	table := parseSample(t)

	codes := make([]string, 0, table.Len())
	for l := range table.All() {
		codes = append(codes, l.ISO6393)
		if len(codes) == 3 {
			break
		}
	}

	require.Equal(t, []string{"abk", "eng", "deu"}, codes)
}

// TestCache_LoadsOnce tests that concurrent first access runs the loader once.
func TestCache_LoadsOnce(t *testing.T) {
	var calls atomic.Int32

	cache := NewCache(func(context.Context) (*Table, error) {
		calls.Add(1)

		return Parse(strings.NewReader(sampleTable))
	})

	var wg sync.WaitGroup

	for range 16 {
		wg.Go(func() {
			table, err := cache.Get(context.Background())
			require.NoError(t, err)
			require.Equal(t, 6, table.Len())
		})
	}

	wg.Wait()
	require.Equal(t, int32(1), calls.Load())
}

// TestCache_RetriesAfterFailure tests that a failed load is not cached.
func TestCache_RetriesAfterFailure(t *testing.T) {
	var calls atomic.Int32

	cache := NewCache(func(context.Context) (*Table, error) {
		if calls.Add(1) == 1 {
			return nil, stderrors.New("mkvmerge missing")
		}

		return NewTable([]Language{{Name: "English", ISO6393: "eng"}}), nil
	})

	_, err := cache.Get(context.Background())
	require.Error(t, err)

	table, err := cache.Get(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
	require.Equal(t, int32(2), calls.Load())
}
