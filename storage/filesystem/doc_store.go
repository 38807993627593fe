package filesystem

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	sent "github.com/revelaction/phrasal/sentence"
	"github.com/revelaction/phrasal/storage"
)

// ErrReadOnly is returned by Write: the directory is filled by the parser.
var ErrReadOnly = errors.New("read-only storage")

// DocStore is a directory of parsed docs, one JSON file per doc. Doc ids are
// the positions of the files in name order.
type DocStore struct {
	docDir string

	// In-memory cache
	docs   []sent.Doc
	loaded []bool
}

var (
	_ storage.DocRepository = (*DocStore)(nil)
	_ storage.Preloader     = (*DocStore)(nil)
)

// NewDocStore creates a filesystem document handler.
func NewDocStore(docDir string) (*DocStore, error) {
	files, err := os.ReadDir(docDir)
	if err != nil {
		return nil, err
	}

	docs := make([]sent.Doc, 0, len(files))

	idx := 0
	for _, file := range files {
		if file.IsDir() || filepath.Ext(file.Name()) != ".json" {
			continue
		}
		docs = append(docs, sent.Doc{
			Id:    idx,
			Title: file.Name(),
		})
		idx++
	}

	return &DocStore{
		docDir: docDir,
		docs:   docs,
		loaded: make([]bool, len(docs)),
	}, nil
}

// Preload reads all docs into memory.
func (h *DocStore) Preload(cb func(current, total int, name string)) error {
	total := len(h.docs)
	for i := range h.docs {
		if cb != nil {
			cb(i+1, total, h.docs[i].Title)
		}

		if err := h.load(i); err != nil {
			return err
		}
	}

	return nil
}

// List returns the docs metadata. Filtering by label needs the doc content,
// so matching docs are loaded.
func (h *DocStore) List(labelMatch string) ([]sent.Doc, error) {
	out := []sent.Doc{}
	for i := range h.docs {
		if labelMatch != "" {
			if err := h.load(i); err != nil {
				return nil, err
			}
		}

		d := h.docs[i]
		if !storage.HasLabel(d.Labels, labelMatch) {
			continue
		}
		out = append(out, sent.Doc{Id: d.Id, Title: d.Title, Labels: d.Labels})
	}
	return out, nil
}

func (h *DocStore) Read(id int) (sent.Doc, error) {
	if id < 0 || id >= len(h.docs) {
		return sent.Doc{}, fmt.Errorf("doc id out of range: %d", id)
	}
	if err := h.load(id); err != nil {
		return sent.Doc{}, err
	}
	return h.docs[id], nil
}

func (h *DocStore) Labels(pattern string) ([]string, error) {
	if err := h.Preload(nil); err != nil {
		return nil, err
	}
	return storage.UniqueLabels(h.docs, pattern), nil
}

func (h *DocStore) Write(doc sent.Doc) error {
	return ErrReadOnly
}

// load reads the doc i from disk once. Title and Id come from the
// directory listing.
func (h *DocStore) load(i int) error {
	if h.loaded[i] {
		return nil
	}

	doc := &h.docs[i] // pointer to modify in place
	fullDoc, err := ReadDoc(filepath.Join(h.docDir, doc.Title))
	if err != nil {
		return fmt.Errorf("doc %s: %w", doc.Title, err)
	}

	doc.Labels = fullDoc.Labels
	doc.Sentences = fullDoc.Sentences
	for j := range doc.Sentences {
		doc.Sentences[j].DocId = doc.Id
	}

	h.loaded[i] = true
	return nil
}

// ReadDoc reads a Doc JSON from the given path and unmarshals it.
//
// Sentences without an explicit id are numbered by position. Token indexes
// are always their position, the one heads refer to.
func ReadDoc(path string) (sent.Doc, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return sent.Doc{}, fmt.Errorf("IO error: %w", err)
	}

	var doc sent.Doc
	err = json.Unmarshal(f, &doc)
	if err != nil {
		return sent.Doc{}, fmt.Errorf("JSON decoding error: %w", err)
	}

	if doc.Title == "" {
		doc.Title = filepath.Base(path)
	}
	for i := range doc.Sentences {
		if doc.Sentences[i].Id == 0 {
			doc.Sentences[i].Id = i
		}
		for j := range doc.Sentences[i].Tokens {
			doc.Sentences[i].Tokens[j].Index = j
		}
	}

	return doc, nil
}
