// Package sentencetest builds parsed sentences for tests, in the shape the
// spacy english model produces them.
package sentencetest

import (
	"strings"

	sent "github.com/revelaction/phrasal/sentence"
)

// W is a word of a sentence under construction: its text, coarse POS,
// dependency relation and the index of its head.
type W struct {
	Text string
	Pos  string
	Dep  string
	Head int
}

// New builds a Sentence from words. Character offsets are computed as if the
// words were separated by one space, except punctuation and clitics ('s,
// n't) which are attached to the previous word.
func New(words ...W) sent.Sentence {
	s := sent.Sentence{Tokens: make([]sent.Token, 0, len(words))}
	idx := 0
	for i, w := range words {
		if i > 0 && !attached(w) {
			idx++
		}
		s.Tokens = append(s.Tokens, sent.Token{
			Id:    i,
			Head:  w.Head,
			Pos:   w.Pos,
			Dep:   w.Dep,
			Idx:   idx,
			Text:  w.Text,
			Lemma: strings.ToLower(w.Text),
			Index: i,
		})
		idx += len([]rune(w.Text))
	}
	return s
}

func attached(w W) bool {
	return w.Pos == "PUNCT" || strings.HasPrefix(w.Text, "'") || w.Text == "n't"
}

// Camera is "The new iPhone camera takes stunning photos in low light conditions!"
func Camera() sent.Sentence {
	return New(
		W{"The", "DET", "det", 3},
		W{"new", "ADJ", "amod", 3},
		W{"iPhone", "PROPN", "compound", 3},
		W{"camera", "NOUN", "nsubj", 4},
		W{"takes", "VERB", "ROOT", 4},
		W{"stunning", "ADJ", "amod", 6},
		W{"photos", "NOUN", "dobj", 4},
		W{"in", "ADP", "prep", 4},
		W{"low", "ADJ", "amod", 10},
		W{"light", "NOUN", "compound", 10},
		W{"conditions", "NOUN", "pobj", 7},
		W{"!", "PUNCT", "punct", 4},
	)
}

// Service is "Customer service was terrible and the manager was very rude."
func Service() sent.Sentence {
	return New(
		W{"Customer", "NOUN", "compound", 1},
		W{"service", "NOUN", "nsubj", 2},
		W{"was", "AUX", "ROOT", 2},
		W{"terrible", "ADJ", "acomp", 2},
		W{"and", "CCONJ", "cc", 2},
		W{"the", "DET", "det", 6},
		W{"manager", "NOUN", "nsubj", 7},
		W{"was", "AUX", "conj", 2},
		W{"very", "ADV", "advmod", 9},
		W{"rude", "ADJ", "acomp", 7},
		W{".", "PUNCT", "punct", 7},
	)
}

// Pasta is "The restaurant's pasta was delicious but their prices are too high."
func Pasta() sent.Sentence {
	return New(
		W{"The", "DET", "det", 1},
		W{"restaurant", "NOUN", "poss", 3},
		W{"'s", "PART", "case", 1},
		W{"pasta", "NOUN", "nsubj", 4},
		W{"was", "AUX", "ROOT", 4},
		W{"delicious", "ADJ", "acomp", 4},
		W{"but", "CCONJ", "cc", 4},
		W{"their", "PRON", "poss", 8},
		W{"prices", "NOUN", "nsubj", 9},
		W{"are", "AUX", "conj", 4},
		W{"too", "ADV", "advmod", 11},
		W{"high", "ADJ", "acomp", 9},
		W{".", "PUNCT", "punct", 9},
	)
}

// Delivery is "Really impressed with the fast delivery and careful packaging."
func Delivery() sent.Sentence {
	return New(
		W{"Really", "ADV", "advmod", 1},
		W{"impressed", "VERB", "ROOT", 1},
		W{"with", "ADP", "prep", 1},
		W{"the", "DET", "det", 5},
		W{"fast", "ADJ", "amod", 5},
		W{"delivery", "NOUN", "pobj", 2},
		W{"and", "CCONJ", "cc", 5},
		W{"careful", "ADJ", "amod", 8},
		W{"packaging", "NOUN", "conj", 5},
		W{".", "PUNCT", "punct", 1},
	)
}

// Food is "Great food, bad food." The noun food is modified twice.
func Food() sent.Sentence {
	return New(
		W{"Great", "ADJ", "amod", 1},
		W{"food", "NOUN", "ROOT", 1},
		W{",", "PUNCT", "punct", 1},
		W{"bad", "ADJ", "amod", 4},
		W{"food", "NOUN", "appos", 1},
		W{".", "PUNCT", "punct", 1},
	)
}

// TerribleService is "terrible service".
func TerribleService() sent.Sentence {
	return New(
		W{"terrible", "ADJ", "amod", 1},
		W{"service", "NOUN", "ROOT", 1},
	)
}

// Posts is a doc with the sample social media posts.
func Posts() sent.Doc {
	doc := sent.Doc{
		Title:  "posts.json",
		Labels: []string{"social", "reviews"},
	}
	for i, s := range []sent.Sentence{Camera(), Service(), Pasta(), Delivery()} {
		s.Id = i
		doc.Sentences = append(doc.Sentences, s)
	}
	return doc
}
