package stat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/revelaction/phrasal/extract"
	sent "github.com/revelaction/phrasal/sentence"
	"github.com/revelaction/phrasal/sentence/sentencetest"
)

func TestAggregate(t *testing.T) {
	h := NewHandler()
	h.Aggregate(sentencetest.Posts())

	s := h.Get()
	assert.Equal(t, 4, s.NumSentences)
	assert.Equal(t, 12+11+13+10, s.NumTokens)
	assert.Equal(t, 46/4, s.TokensPerSentenceMean)
	assert.Equal(t, 1, s.TokensPerSentenceDis[13])
	assert.Equal(t, 4, s.NumRoots)
	assert.Equal(t, 5, s.NumAmods)
	assert.Equal(t, 0, s.NumMalformed)
}

func TestAggregateMalformed(t *testing.T) {
	h := NewHandler()
	h.Aggregate(sent.Doc{Sentences: []sent.Sentence{
		sentencetest.New(
			sentencetest.W{Text: "a", Pos: "NOUN", Dep: "dep", Head: 1},
			sentencetest.W{Text: "b", Pos: "NOUN", Dep: "dep", Head: 0},
		),
	}})

	assert.Equal(t, 1, h.Get().NumMalformed)
}

func TestAggregateAnalysis(t *testing.T) {
	h := NewHandler()
	h.AggregateAnalysis(extract.Analysis{
		Aspects:  map[string]extract.AspectSentiment{"camera": {}},
		Opinions: []extract.Opinion{{}, {}},
	})
	h.AggregateAnalysis(extract.Analysis{})

	s := h.Get()
	assert.Equal(t, 1, s.NumAspects)
	assert.Equal(t, 2, s.NumOpinions)
}

func TestGetEmpty(t *testing.T) {
	s := NewHandler().Get()
	assert.Equal(t, 0, s.TokensPerSentenceMean)
	assert.Equal(t, 0, s.NumSentences)
}
