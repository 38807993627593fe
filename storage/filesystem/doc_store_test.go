package filesystem

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sent "github.com/revelaction/phrasal/sentence"
	"github.com/revelaction/phrasal/sentence/sentencetest"
)

func writeDoc(t *testing.T, dir, name string, doc sent.Doc) {
	t.Helper()
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0644))
}

func newStore(t *testing.T) *DocStore {
	t.Helper()
	dir := t.TempDir()

	posts := sentencetest.Posts()
	writeDoc(t, dir, "b_posts.json", posts)
	writeDoc(t, dir, "a_food.json", sent.Doc{
		Labels:    []string{"food"},
		Sentences: []sent.Sentence{sentencetest.Food()},
	})
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.json"), 0755))

	store, err := NewDocStore(dir)
	require.NoError(t, err)
	return store
}

func TestDocStoreList(t *testing.T) {
	store := newStore(t)

	docs, err := store.List("")
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "a_food.json", docs[0].Title)
	assert.Equal(t, 0, docs[0].Id)
	assert.Equal(t, "b_posts.json", docs[1].Title)
	assert.Nil(t, docs[1].Sentences)

	docs, err = store.List("review")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, 1, docs[0].Id)
	assert.Equal(t, []string{"social", "reviews"}, docs[0].Labels)
}

func TestDocStoreRead(t *testing.T) {
	store := newStore(t)

	doc, err := store.Read(1)
	require.NoError(t, err)
	require.Len(t, doc.Sentences, 4)
	assert.Equal(t, "b_posts.json", doc.Title)
	for i, s := range doc.Sentences {
		assert.Equal(t, i, s.Id)
		assert.Equal(t, 1, s.DocId)
	}
	assert.Equal(t, "takes", doc.Sentences[0].Tokens[4].Text)

	_, err = store.Read(2)
	assert.Error(t, err)
	_, err = store.Read(-1)
	assert.Error(t, err)
}

func TestDocStorePreload(t *testing.T) {
	store := newStore(t)

	var names []string
	err := store.Preload(func(current, total int, name string) {
		assert.Equal(t, 2, total)
		assert.Equal(t, len(names)+1, current)
		names = append(names, name)
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a_food.json", "b_posts.json"}, names)
}

func TestDocStoreLabels(t *testing.T) {
	store := newStore(t)

	labels, err := store.Labels("")
	require.NoError(t, err)
	assert.Equal(t, []string{"food", "reviews", "social"}, labels)

	labels, err = store.Labels("o")
	require.NoError(t, err)
	assert.Equal(t, []string{"food", "social"}, labels)
}

func TestDocStoreWrite(t *testing.T) {
	store := newStore(t)
	assert.True(t, errors.Is(store.Write(sent.Doc{}), ErrReadOnly))
}

func TestDocStoreBadJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{"), 0644))

	store, err := NewDocStore(dir)
	require.NoError(t, err)

	_, err = store.Read(0)
	assert.ErrorContains(t, err, "JSON decoding error")
}

func TestNewDocStoreMissingDir(t *testing.T) {
	_, err := NewDocStore(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestReadDocTitleFallback(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "post.json", sent.Doc{Sentences: []sent.Sentence{sentencetest.Camera()}})

	doc, err := ReadDoc(filepath.Join(dir, "post.json"))
	require.NoError(t, err)
	assert.Equal(t, "post.json", doc.Title)
	require.Len(t, doc.Sentences, 1)
}

func TestReadDocTokenIndexes(t *testing.T) {
	dir := t.TempDir()
	data := `{"sentences": [{"tokens": [
		{"text": "terrible", "pos": "ADJ", "dep": "amod", "head": 1},
		{"text": "service", "pos": "NOUN", "dep": "ROOT", "head": 1}
	]}]}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "post.json"), []byte(data), 0644))

	doc, err := ReadDoc(filepath.Join(dir, "post.json"))
	require.NoError(t, err)
	require.Len(t, doc.Sentences, 1)
	tokens := doc.Sentences[0].Tokens
	require.Len(t, tokens, 2)
	assert.Equal(t, 0, tokens[0].Index)
	assert.Equal(t, 1, tokens[1].Index)
}
