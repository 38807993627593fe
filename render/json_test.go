package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/revelaction/phrasal/extract"
	"github.com/revelaction/phrasal/sentiment"
)

func TestJSONRendererRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONRenderer(&buf)
	if err := r.Render(nil); err != nil {
		t.Fatalf("render: %v", err)
	}

	if got := strings.TrimSpace(buf.String()); got != "[]" {
		t.Fatalf("expected empty array, got %q", got)
	}
}

func TestJSONRendererRenderOneResult(t *testing.T) {
	a := extract.Analysis{
		DocId:      1,
		SentenceId: 5,
		Text:       "terrible service",
		KeyPhrases: []extract.PhraseSentiment{
			{Phrase: "service", Sentiment: sentiment.Sentiment{}},
		},
		NounPhrases: []extract.PhraseSentiment{
			{Phrase: "terrible service", Sentiment: sentiment.Sentiment{Polarity: -1, Subjectivity: 1}},
		},
		Aspects: map[string]extract.AspectSentiment{
			"service": {
				Aspect:    "service",
				Modifiers: []string{"terrible"},
				Phrase:    "terrible service",
				Sentiment: sentiment.Sentiment{Polarity: -1, Subjectivity: 1},
			},
		},
		Opinions: []extract.Opinion{
			{OpinionWord: "terrible", Target: "service", Pattern: "amod(service, terrible)"},
		},
	}

	var buf bytes.Buffer
	r := NewJSONRenderer(&buf)
	r.Indent = true
	if err := r.Render([]extract.Analysis{a}); err != nil {
		t.Fatalf("render: %v", err)
	}

	var results []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &results); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}

	res := results[0]
	if res["sentence_id"] != float64(5) {
		t.Errorf("expected sentence_id 5, got %v", res["sentence_id"])
	}

	nps, ok := res["noun_phrase_analysis"].([]any)
	if !ok || len(nps) != 1 {
		t.Fatalf("expected 1 noun phrase, got %v", res["noun_phrase_analysis"])
	}

	// the sentiment fields are flattened into the phrase object
	np := nps[0].(map[string]any)
	if np["phrase"] != "terrible service" || np["polarity"] != float64(-1) {
		t.Errorf("unexpected noun phrase %v", np)
	}

	aspects := res["aspect_sentiments"].(map[string]any)
	if _, ok := aspects["service"]; !ok {
		t.Errorf("expected aspect service, got %v", aspects)
	}

	opinions := res["opinion_patterns"].([]any)
	if opinions[0].(map[string]any)["pattern"] != "amod(service, terrible)" {
		t.Errorf("unexpected opinion %v", opinions[0])
	}
}
