package storage

import (
	sent "github.com/revelaction/phrasal/sentence"
)

// DocReader reads parsed docs.
type DocReader interface {
	// List returns docs without their sentences, only Id, Title and
	// Labels. A non empty labelMatch keeps the docs having a label that
	// contains it.
	List(labelMatch string) ([]sent.Doc, error)

	// Read returns the doc with its sentences.
	Read(id int) (sent.Doc, error)

	// Labels returns the sorted set of labels containing pattern.
	Labels(pattern string) ([]string, error)
}

// DocWriter stores parsed docs.
type DocWriter interface {
	Write(doc sent.Doc) error
}

type DocRepository interface {
	DocReader
	DocWriter
}

// Preloader is implemented by stores that can read every doc up front. cb
// is called before each doc with its 1-based position.
type Preloader interface {
	Preload(cb func(current, total int, name string)) error
}
