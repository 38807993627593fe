package stat

import (
	"github.com/revelaction/phrasal/extract"
	sent "github.com/revelaction/phrasal/sentence"
)

type Handler struct {
	stats Stats
}

// Stats are the parse shape figures of a set of sentences and the number
// of aspects and opinions extracted from them.
type Stats struct {
	NumSentences          int
	NumTokens             int
	TokensPerSentenceMean int
	TokensPerSentenceDis  map[int]int

	NumRoots     int
	NumAmods     int
	NumMalformed int

	NumAspects  int
	NumOpinions int
}

func (h *Handler) Get() Stats {
	s := h.stats
	if s.NumSentences > 0 {
		s.TokensPerSentenceMean = s.NumTokens / s.NumSentences
	}
	return s
}

func NewHandler() *Handler {
	stats := Stats{TokensPerSentenceDis: map[int]int{}}
	return &Handler{
		stats: stats,
	}
}

// Aggregate adds the shape figures of the doc sentences.
func (h *Handler) Aggregate(doc sent.Doc) {
	for _, sentence := range doc.Sentences {
		h.stats.NumSentences++
		h.stats.NumTokens += len(sentence.Tokens)
		h.stats.TokensPerSentenceDis[len(sentence.Tokens)]++

		for _, t := range sentence.Tokens {
			switch t.Dep {
			case sent.DepRoot:
				h.stats.NumRoots++
			case sent.DepAmod:
				h.stats.NumAmods++
			}
		}

		if sent.Validate(sentence) != nil {
			h.stats.NumMalformed++
		}
	}
}

// AggregateAnalysis adds the aspects and opinions of an analyzed sentence.
func (h *Handler) AggregateAnalysis(a extract.Analysis) {
	h.stats.NumAspects += len(a.Aspects)
	h.stats.NumOpinions += len(a.Opinions)
}
