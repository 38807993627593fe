package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sent "github.com/revelaction/phrasal/sentence"
	"github.com/revelaction/phrasal/sentence/sentencetest"
)

// docDir writes the sample posts and a malformed doc to a temp dir.
func docDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	write := func(name string, doc sent.Doc) {
		data, err := json.Marshal(doc)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0644))
	}

	write("a_posts.json", sentencetest.Posts())
	write("b_broken.json", sent.Doc{
		Labels: []string{"broken"},
		Sentences: []sent.Sentence{
			sentencetest.New(
				sentencetest.W{Text: "Stop", Pos: "VERB", Dep: "ROOT", Head: 0},
				sentencetest.W{Text: "go", Pos: "VERB", Dep: "ROOT", Head: 1},
			),
		},
	})

	return dir
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	// no user config file, no environment overrides
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	for _, e := range os.Environ() {
		if k, _, ok := strings.Cut(e, "="); ok && strings.HasPrefix(k, "PHRASAL_") {
			t.Setenv(k, "")
			os.Unsetenv(k)
		}
	}

	var out, errOut bytes.Buffer
	ui := UI{Out: &out, Err: &errOut}
	err := newApp(ui).RunContext(context.Background(), append([]string{"phrasal"}, args...))
	return out.String(), errOut.String(), err
}

func TestLsDoc(t *testing.T) {
	dir := docDir(t)

	out, _, err := run(t, "-d", dir, "ls")
	require.NoError(t, err)
	assert.Equal(t, "📖 0 a_posts.json\n📖 1 b_broken.json\n", out)

	out, _, err = run(t, "-d", dir, "ls", "--label", "review")
	require.NoError(t, err)
	assert.Equal(t, "📖 0 a_posts.json\n", out)
}

func TestLsLabels(t *testing.T) {
	out, _, err := run(t, "-d", docDir(t), "labels")
	require.NoError(t, err)
	assert.Equal(t, "broken, reviews, social\n", out)
}

func TestNoDocPath(t *testing.T) {
	_, _, err := run(t, "ls")
	assert.ErrorContains(t, err, "Doc path must be specified")
}

func TestSentence(t *testing.T) {
	out, _, err := run(t, "-d", docDir(t), "sentence", "0", "3")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "✍  0-3 Really impressed with the fast delivery and careful packaging.\n"))
	assert.Contains(t, out, "Part of Speech (POS) Analysis:")
	assert.Contains(t, out, "Dependency Parsing Analysis:")
	assert.NotContains(t, out, "⚠")

	out, _, err = run(t, "-d", docDir(t), "sentence", "1", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "⚠  malformed parse tree")

	_, _, err = run(t, "-d", docDir(t), "sentence", "0")
	assert.Error(t, err)

	_, _, err = run(t, "-d", docDir(t), "sentence", "0", "9")
	assert.ErrorContains(t, err, "sentence 9 not found in doc 0")
}

func TestSentenceById(t *testing.T) {
	dir := t.TempDir()
	delivery, camera := sentencetest.Delivery(), sentencetest.Camera()
	delivery.Id, camera.Id = 10, 20
	data, err := json.Marshal(sent.Doc{Title: "ids.json", Sentences: []sent.Sentence{delivery, camera}})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ids.json"), data, 0644))

	out, _, err := run(t, "-d", dir, "sentence", "0", "20")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "✍  0-20 The new iPhone camera"), out)

	out, _, err = run(t, "-d", dir, "phrases", "0", "10")
	require.NoError(t, err)
	assert.NotContains(t, out, "iPhone")

	_, _, err = run(t, "-d", dir, "phrases", "0", "1")
	assert.ErrorContains(t, err, "sentence 1 not found in doc 0")
}

func TestPhrases(t *testing.T) {
	out, _, err := run(t, "-d", docDir(t), "phrases", "0", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "Key Phrases:\n  The new iPhone camera takes stunning photos\n")
	assert.Contains(t, out, "Noun Phrases:\n  The new iPhone camera\n  stunning photos\n  low light conditions\n")
}

func TestAspects(t *testing.T) {
	out, _, err := run(t, "-d", docDir(t), "aspects", "0", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "  delivery        fast delivery")
	assert.Contains(t, out, "  packaging       careful packaging")
}

func TestOpinions(t *testing.T) {
	out, _, err := run(t, "-d", docDir(t), "opinions", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "  amod(camera, new)\n  amod(photos, stunning)\n  amod(conditions, low)\n")
	assert.Contains(t, out, "  amod(delivery, fast)\n  amod(packaging, careful)\n")
	assert.NotContains(t, out, "Customer service")
}

func TestAnalyzeJSON(t *testing.T) {
	out, _, err := run(t, "-d", docDir(t), "analyze", "--json", "-w", "2", "0")
	require.NoError(t, err)

	var analyses []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &analyses))
	require.Len(t, analyses, 4)
	for i, a := range analyses {
		assert.Equal(t, float64(i), a["sentence_id"])
	}
	assert.Equal(t, "Customer service was terrible and the manager was very rude.", analyses[1]["text"])
}

func TestAnalyzeReport(t *testing.T) {
	out, _, err := run(t, "-d", docDir(t), "analyze", "-f", "phrases", "0", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Text: The restaurant's pasta was delicious but their prices are too high.")
	assert.Contains(t, out, "Key Phrase Analysis:")
	assert.NotContains(t, out, "Opinion Patterns:")

	_, _, err = run(t, "-d", docDir(t), "analyze", "-f", "xml", "0")
	assert.ErrorContains(t, err, "allowed formats")
}

func TestAnalyzeStrict(t *testing.T) {
	dir := docDir(t)

	_, _, err := run(t, "-d", dir, "analyze", "--json", "1")
	require.NoError(t, err)

	_, _, err = run(t, "-d", dir, "analyze", "--json", "--strict", "1")
	assert.ErrorIs(t, err, sent.ErrMalformedParseTree)

	out, _, err := run(t, "-d", dir, "analyze", "--json", "--strict", "--label", "social")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "["))
}

func TestScore(t *testing.T) {
	out, _, err := run(t, "score", "very", "good", "https://example.com")
	require.NoError(t, err)
	assert.Contains(t, out, "Sentiment: POSITIVE\n")
	assert.Contains(t, out, "Polarity Score: 0.910\n")
	assert.Contains(t, out, "Subjectivity Score: 0.780\n")
	assert.Contains(t, out, "Confidence: 0.810\n")
	assert.Contains(t, out, "Strength: strong\n")

	_, _, err = run(t, "score")
	assert.Error(t, err)
}

func TestScoreLexicon(t *testing.T) {
	lex := filepath.Join(t.TempDir(), "lex.tsv")
	require.NoError(t, os.WriteFile(lex, []byte("meh\t-0.2\t0.4\n"), 0644))

	out, _, err := run(t, "-l", lex, "score", "good", "meh")
	require.NoError(t, err)
	assert.Contains(t, out, "Polarity Score: -0.200\n")
	assert.Contains(t, out, "Strength: weak\n")
}

func TestStat(t *testing.T) {
	out, _, err := run(t, "-d", docDir(t), "stat")
	require.NoError(t, err)
	assert.Contains(t, out, "Total Sentences Analyzed: 5\n")
	assert.Contains(t, out, "num malformed 1\n")
	assert.Contains(t, out, "Num aspects 5, num opinions 5\n")
}

func TestImportDoc(t *testing.T) {
	dir := docDir(t)
	db := filepath.Join(t.TempDir(), "docs.db")

	out, _, err := run(t, "import", "--from", dir, "--to", db, "--no-progress")
	require.NoError(t, err)
	assert.Contains(t, out, "Successfully imported 2 docs")

	out, _, err = run(t, "-d", db, "ls")
	require.NoError(t, err)
	assert.Equal(t, "📖 1 a_posts.json\n📖 2 b_broken.json\n", out)

	out, _, err = run(t, "-d", db, "phrases", "1", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Noun Phrases:\n  Customer service\n  the manager\n")
}

func TestVerboseLogs(t *testing.T) {
	_, errOut, err := run(t, "--verbose", "-d", docDir(t), "analyze", "--json", "0", "0")
	require.NoError(t, err)
	assert.Contains(t, errOut, "analyzed sentence")
}

func TestBash(t *testing.T) {
	out, _, err := run(t, "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "complete -o default -F _phrasal_autocomplete phrasal")
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "phrasal version dev (commit: none)")
}
