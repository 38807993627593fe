package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	sent "github.com/revelaction/phrasal/sentence"
	"github.com/revelaction/phrasal/storage"
)

// target is a doc and optionally one of its sentences, as given on the
// command line: <docId> [sentenceId]. Sentences are addressed by their Id.
type target struct {
	DocId int
	SentId *int // nil = all sentences
}

func parseTarget(c *cli.Context) (target, error) {
	var t target

	if c.NArg() < 1 || c.NArg() > 2 {
		return t, errors.New("needs one or two arguments: <docId> [sentenceId]")
	}

	docId, err := strconv.Atoi(c.Args().Get(0))
	if err != nil {
		return t, fmt.Errorf("invalid docId: %v", err)
	}
	t.DocId = docId

	if c.NArg() == 2 {
		sentId, err := strconv.Atoi(c.Args().Get(1))
		if err != nil {
			return t, fmt.Errorf("invalid sentenceId: %v", err)
		}
		t.SentId = &sentId
	}

	return t, nil
}

// sentences reads the doc of t and returns the selected sentences.
func (t target) sentences(repo storage.DocReader) (sent.Doc, []sent.Sentence, error) {
	doc, err := repo.Read(t.DocId)
	if err != nil {
		return doc, nil, err
	}

	if t.SentId == nil {
		return doc, doc.Sentences, nil
	}

	for i, s := range doc.Sentences {
		if s.Id == *t.SentId {
			return doc, doc.Sentences[i : i+1], nil
		}
	}

	return doc, nil, fmt.Errorf("sentence %d not found in doc %d", *t.SentId, t.DocId)
}
