package extract

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	sent "github.com/revelaction/phrasal/sentence"
	"github.com/revelaction/phrasal/sentiment"
)

// Analysis is the syntactic and semantic analysis of one sentence.
type Analysis struct {
	DocId      int    `json:"doc_id"`
	SentenceId int    `json:"sentence_id"`
	Text       string `json:"text"`

	// Sentiment is the score of the whole sentence text.
	Sentiment sentiment.Sentiment `json:"sentiment"`

	KeyPhrases  []PhraseSentiment          `json:"key_phrase_analysis"`
	NounPhrases []PhraseSentiment          `json:"noun_phrase_analysis"`
	Aspects     map[string]AspectSentiment `json:"aspect_sentiments"`
	Opinions    []Opinion                  `json:"opinion_patterns"`
}

// texter is implemented by parses that know their surface text.
type texter interface {
	Text() string
}

// Analyze scores the key phrases and noun phrases of p and adds its aspect
// sentiments and opinion patterns.
func (e *Extractor) Analyze(p sent.Parse) Analysis {
	phrases := e.KeyPhrases(p)

	a := Analysis{
		Text:        parseText(p),
		KeyPhrases:  e.score(phrases.KeyPhrases),
		NounPhrases: e.score(phrases.NounPhrases),
		Aspects:     e.AspectSentiments(p),
		Opinions:    e.Opinions(p),
	}

	a.Sentiment = e.scorer.Score(a.Text)

	e.logger.Debug("analyzed sentence",
		zap.String("text", a.Text),
		zap.Int("key_phrases", len(a.KeyPhrases)),
		zap.Int("noun_phrases", len(a.NounPhrases)),
		zap.Int("aspects", len(a.Aspects)),
		zap.Int("opinions", len(a.Opinions)),
	)

	return a
}

// AnalyzeSentence analyzes s. In strict mode the tree is validated first and
// a malformed sentence returns an error wrapping
// sentence.ErrMalformedParseTree.
func (e *Extractor) AnalyzeSentence(s sent.Sentence) (Analysis, error) {
	if e.Strict {
		if err := sent.Validate(s); err != nil {
			e.logger.Warn("rejected sentence", zap.Int("doc", s.DocId), zap.Int("sentence", s.Id), zap.Error(err))
			return Analysis{}, err
		}
	}

	a := e.Analyze(sent.NewTree(s))
	a.DocId = s.DocId
	a.SentenceId = s.Id
	return a, nil
}

// AnalyzeAll analyzes sentences with at most workers goroutines. Results keep
// the order of sentences. The first error (a malformed sentence in strict
// mode, or ctx being done) stops the remaining work.
func (e *Extractor) AnalyzeAll(ctx context.Context, sentences []sent.Sentence, workers int) ([]Analysis, error) {
	if workers < 1 {
		workers = 1
	}

	results := make([]Analysis, len(sentences))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, s := range sentences {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			a, err := e.AnalyzeSentence(s)
			if err != nil {
				return err
			}
			results[i] = a
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func (e *Extractor) score(phrases []string) []PhraseSentiment {
	out := make([]PhraseSentiment, 0, len(phrases))
	for _, p := range phrases {
		out = append(out, PhraseSentiment{Phrase: p, Sentiment: e.scorer.Score(p)})
	}
	return out
}

func parseText(p sent.Parse) string {
	if t, ok := p.(texter); ok {
		return t.Text()
	}

	var words []string
	for _, n := range p.Nodes() {
		words = append(words, n.Text())
	}
	return strings.Join(words, " ")
}
