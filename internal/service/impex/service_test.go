package impex

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/vocab-builder/internal/adapter/store/file"
	"github.com/heartmarshall/vocab-builder/internal/domain"
	"github.com/heartmarshall/vocab-builder/internal/service/vocab"
)

//go:generate moq -out translator_mock_test.go -pkg impex . translator

// ---------------------------------------------------------------------------
// Test helpers
// ---------------------------------------------------------------------------

var pairEnIt = domain.LangPair{From: "en", To: "it"}

type fixture struct {
	svc   *Service
	vocab *vocab.Service
	store *file.Store
	dir   string
}

// newFixture wires the service to a file store in a temp dir.
func newFixture(t *testing.T, tr translator) fixture {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	dir := t.TempDir()
	store, err := file.New(dir, log)
	require.NoError(t, err)

	vs := vocab.NewService(log, store)
	_, err = vs.InitializeIfAbsent(context.Background(), domain.NewMeta(pairEnIt, "English", "Italian"))
	require.NoError(t, err)

	return fixture{svc: NewService(log, vs, tr, dir), vocab: vs, store: store, dir: dir}
}

func (f fixture) set(t *testing.T) *domain.VocabularySet {
	t.Helper()
	set, err := f.vocab.Load(context.Background(), pairEnIt)
	require.NoError(t, err)
	return set
}

func (f fixture) seed(t *testing.T, pairs ...vocab.MergePair) {
	t.Helper()
	_, err := f.vocab.Merge(context.Background(), pairEnIt, pairs, vocab.MergeOptions{Force: true})
	require.NoError(t, err)
}

// dictionary answers en->it and it->en from a fixed table.
func dictionary(words map[string]string) *translatorMock {
	return &translatorMock{
		TranslateFunc: func(ctx context.Context, from, to, text string) (string, error) {
			if out, ok := words[from+":"+text]; ok {
				return out, nil
			}
			return "", fmt.Errorf("no entry for %q: %w", text, domain.ErrNotFound)
		},
	}
}

// ---------------------------------------------------------------------------
// CSV import
// ---------------------------------------------------------------------------

func TestImportCSV_BlankValueWordWithExtraColumn(t *testing.T) {
	t.Parallel()

	tr := dictionary(map[string]string{"it:cane": "dog"})
	f := newFixture(t, tr)

	res, err := f.svc.ImportCSV(context.Background(), pairEnIt, strings.NewReader(",noun,cane,dog\n"), true)
	require.NoError(t, err)
	assert.Equal(t, []string{"cane"}, res.Imported)
	assert.Empty(t, tr.TranslateCalls(), "the extra column supplies the value, no lookup")

	e, ok := f.set(t).Entry("cane")
	require.True(t, ok)
	assert.Equal(t, []string{"dog"}, e.Translations)
	assert.Equal(t, "noun", e.Part)
}

func TestImportCSV_Rows(t *testing.T) {
	t.Parallel()

	tr := dictionary(map[string]string{
		"it:cane":  "dog",
		"en:house": "casa",
		"it:ciao":  "ciao",
	})
	f := newFixture(t, tr)

	input := strings.Join([]string{
		`,noun,cane`,           // value looked up
		`house,noun,`,          // key looked up
		`,,ciao`,               // lookup echoes the word: missed
		`,,`,                   // nothing usable
		`tree,noun,albero,oak`, // extra column is another translation
		`solo`,                 // one column: value only, lookup fails
	}, "\n")

	res, err := f.svc.ImportCSV(context.Background(), pairEnIt, strings.NewReader(input), true)
	require.NoError(t, err)

	assert.Equal(t, 6, res.Rows)
	assert.Equal(t, []string{"cane", "casa", "albero"}, res.Imported)
	assert.Equal(t, []string{"ciao", "solo"}, res.Missed)
	assert.Equal(t, 1, res.Skipped)

	set := f.set(t)
	assert.Equal(t, []string{"cane", "casa", "albero"}, set.Headwords())
	albero, _ := set.Entry("albero")
	assert.Equal(t, []string{"tree", "oak"}, albero.Translations)
	casa, _ := set.Entry("casa")
	assert.Equal(t, []string{"house"}, casa.Translations)
}

func TestImportCSV_ReservedKeyIsMissed(t *testing.T) {
	t.Parallel()

	tr := dictionary(map[string]string{"en:metadata": "meta"})
	f := newFixture(t, tr)

	input := "dog,noun,cane\nx,,meta\nmetadata,,\n"
	res, err := f.svc.ImportCSV(context.Background(), pairEnIt, strings.NewReader(input), true)
	require.NoError(t, err)

	assert.Equal(t, []string{"cane"}, res.Imported)
	assert.Equal(t, []string{"meta", "metadata"}, res.Missed)

	set := f.set(t)
	assert.Equal(t, []string{"cane"}, set.Headwords())
	assert.Equal(t, pairEnIt, set.Meta.Pair())
	assert.Equal(t, "Italian", set.Meta.KeyLangName)
}

func TestImportCSV_LookupDisabledMissesHalfRows(t *testing.T) {
	t.Parallel()

	tr := dictionary(map[string]string{"it:cane": "dog"})
	f := newFixture(t, tr)

	res, err := f.svc.ImportCSV(context.Background(), pairEnIt, strings.NewReader(",noun,cane\ncat,noun,gatto\n"), false)
	require.NoError(t, err)

	assert.Equal(t, []string{"gatto"}, res.Imported)
	assert.Equal(t, []string{"cane"}, res.Missed)
	assert.Empty(t, tr.TranslateCalls())
}

func TestImportCSV_ProviderOutageStopsLookups(t *testing.T) {
	t.Parallel()

	tr := &translatorMock{
		TranslateFunc: func(ctx context.Context, from, to, text string) (string, error) {
			return "", domain.ErrProviderUnavailable
		},
	}
	f := newFixture(t, tr)

	res, err := f.svc.ImportCSV(context.Background(), pairEnIt, strings.NewReader(",,cane\n,,gatto\n,,casa\n"), true)
	require.NoError(t, err)

	assert.Len(t, tr.TranslateCalls(), 1)
	assert.Equal(t, []string{"cane", "gatto", "casa"}, res.Missed)
	assert.Empty(t, res.Imported)
}

func TestImportCSV_MergesWithExistingEntries(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	f.seed(t, vocab.MergePair{Values: []string{"house"}, Key: "casa", Part: "noun"})

	_, err := f.svc.ImportCSV(context.Background(), pairEnIt, strings.NewReader("home,noun,casa\nHOUSE,noun,casa\n"), true)
	require.NoError(t, err)

	e, _ := f.set(t).Entry("casa")
	assert.Equal(t, []string{"house", "home"}, e.Translations)

	backup, err := f.store.LoadBackup(context.Background(), pairEnIt)
	require.NoError(t, err)
	_, ok := backup.Entry("casa")
	assert.True(t, ok, "store is backed up before the import merges")
}

func TestImportCSV_StripsBOMAndWritesSnapshot(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)

	_, err := f.svc.ImportCSV(context.Background(), pairEnIt, strings.NewReader("\ufeffcat,noun,gatto\n"), false)
	require.NoError(t, err)

	_, ok := f.set(t).Entry("gatto")
	require.True(t, ok)

	data, err := os.ReadFile(filepath.Join(f.dir, "it_en_exported_words.csv"))
	require.NoError(t, err)
	assert.Equal(t, "gatto,noun,cat\n", string(data))
}

func TestImportCSV_InvalidPair(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)

	_, err := f.svc.ImportCSV(context.Background(), domain.LangPair{From: "it", To: "it"}, strings.NewReader("a,,b"), false)
	require.ErrorIs(t, err, domain.ErrValidation)
}

// ---------------------------------------------------------------------------
// Export
// ---------------------------------------------------------------------------

func TestExportCSV(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	f.seed(t,
		vocab.MergePair{Values: []string{"house", "home"}, Key: "casa", Part: "noun"},
		vocab.MergePair{Values: []string{"to eat"}, Key: "mangiare, io", Part: ""},
	)

	var buf bytes.Buffer
	require.NoError(t, f.svc.ExportCSV(context.Background(), pairEnIt, &buf))

	assert.Equal(t, "casa,noun,house,home\n\"mangiare, io\",,to eat\n", buf.String())
}

func TestExportCSV_EmptySet(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)

	var buf bytes.Buffer
	require.NoError(t, f.svc.ExportCSV(context.Background(), pairEnIt, &buf))
	assert.Empty(t, buf.String(), "meta is never exported")
}

// ---------------------------------------------------------------------------
// JSON
// ---------------------------------------------------------------------------

func TestExportImportJSON(t *testing.T) {
	t.Parallel()

	src := newFixture(t, nil)
	src.seed(t,
		vocab.MergePair{Values: []string{"house"}, Key: "casa", Part: "noun"},
		vocab.MergePair{Values: []string{"cat"}, Key: "gatto"},
	)

	var buf bytes.Buffer
	require.NoError(t, src.svc.ExportJSON(context.Background(), pairEnIt, &buf))
	assert.Contains(t, buf.String(), `"meta": {`)

	dst := newFixture(t, nil)
	dst.seed(t, vocab.MergePair{Values: []string{"dog"}, Key: "cane"})

	n, err := dst.svc.ImportJSON(context.Background(), pairEnIt, &buf)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"casa", "gatto"}, dst.set(t).Headwords())

	backup, err := dst.store.LoadBackup(context.Background(), pairEnIt)
	require.NoError(t, err)
	assert.Equal(t, []string{"cane"}, backup.Headwords())
}

func TestImportJSON_Rejects(t *testing.T) {
	t.Parallel()

	const meta = `"meta": {"val_langid": "en", "key_langid": "it"}`

	tests := []struct {
		name   string
		body   string
		fields []string
	}{
		{name: "malformed", body: `{"meta": `},
		{name: "other pair", body: `{"meta": {"val_langid": "en", "key_langid": "de"}, "haus": {"translations": ["house"]}}`},
		{
			name:   "no translations",
			body:   `{` + meta + `, "vuoto": {"translations": []}}`,
			fields: []string{"vuoto.translations"},
		},
		{
			name:   "bad review date",
			body:   `{` + meta + `, "data": {"translations": ["date"], "lastCorrect": "yesterday"}}`,
			fields: []string{"data.lastCorrect"},
		},
		{
			name:   "case duplicate translation",
			body:   `{` + meta + `, "gatto": {"translations": ["Cat", "cat "]}}`,
			fields: []string{"gatto.translations[1]"},
		},
		{
			name: "every bad entry listed",
			body: `{` + meta + `, "vuoto": {"translations": []}, "casa": {"translations": ["house"]},` +
				` "data": {"translations": ["date"], "lastCorrect": "2023-02-29"}}`,
			fields: []string{"vuoto.translations", "data.lastCorrect"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t, nil)
			f.seed(t, vocab.MergePair{Values: []string{"dog"}, Key: "cane"})

			_, err := f.svc.ImportJSON(context.Background(), pairEnIt, strings.NewReader(tt.body))
			require.ErrorIs(t, err, domain.ErrValidation)
			assert.Equal(t, []string{"cane"}, f.set(t).Headwords())

			if tt.fields != nil {
				var verr *domain.ValidationError
				require.ErrorAs(t, err, &verr)
				var got []string
				for _, fe := range verr.Errors {
					got = append(got, fe.Field)
				}
				assert.Equal(t, tt.fields, got)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// XLSX
// ---------------------------------------------------------------------------

func TestXLSX_ExportThenImport(t *testing.T) {
	t.Parallel()

	src := newFixture(t, nil)
	src.seed(t,
		vocab.MergePair{Values: []string{"house", "home"}, Key: "casa", Part: "noun"},
	)

	var buf bytes.Buffer
	require.NoError(t, src.svc.ExportXLSX(context.Background(), pairEnIt, &buf))
	require.NotZero(t, buf.Len())

	// The export layout is headword first; reading it back with the import
	// layout swaps sides, so import into the reverse pair.
	dst := newFixture(t, nil)
	reverse := domain.LangPair{From: "it", To: "en"}
	res, err := dst.svc.ImportXLSX(context.Background(), reverse, &buf, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"house"}, res.Imported)

	set, err := dst.vocab.Load(context.Background(), reverse)
	require.NoError(t, err)
	e, ok := set.Entry("house")
	require.True(t, ok)
	assert.Equal(t, []string{"casa", "home"}, e.Translations)
	assert.Equal(t, "noun", e.Part)
}

func TestImportXLSX_NotAWorkbook(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)

	_, err := f.svc.ImportXLSX(context.Background(), pairEnIt, strings.NewReader("not a zip"), false)
	require.ErrorIs(t, err, domain.ErrValidation)
}
