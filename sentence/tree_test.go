package sentence_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sent "github.com/revelaction/phrasal/sentence"
	"github.com/revelaction/phrasal/sentence/sentencetest"
)

func texts(nodes []sent.Node) []string {
	out := []string{}
	for _, n := range nodes {
		out = append(out, n.Text())
	}
	return out
}

func TestTreeChildrenOrder(t *testing.T) {
	tree := sent.NewTree(sentencetest.Camera())
	nodes := tree.Nodes()
	require.Len(t, nodes, 12)

	camera := nodes[3]
	assert.Equal(t, []string{"The", "new", "iPhone"}, texts(camera.Children()))
	assert.Equal(t, []string{"The", "new", "iPhone"}, texts(camera.Lefts()))
	assert.Empty(t, camera.Rights())

	takes := nodes[4]
	assert.Equal(t, []string{"camera"}, texts(takes.Lefts()))
	assert.Equal(t, []string{"photos", "in", "!"}, texts(takes.Rights()))
	assert.Equal(t, "takes", takes.Head().Text())
	assert.Equal(t, "takes", camera.Head().Text())
}

func TestTreeRoots(t *testing.T) {
	roots := sent.NewTree(sentencetest.Service()).Roots()
	require.Len(t, roots, 1)
	assert.Equal(t, "was", roots[0].Text())
	assert.Equal(t, 2, roots[0].Index())
}

func TestTreeEmpty(t *testing.T) {
	tree := sent.NewTree(sent.Sentence{})
	assert.Empty(t, tree.Nodes())
	assert.Empty(t, tree.Roots())
	assert.Empty(t, tree.NounChunks())
}

func TestTreeOutOfRangeHead(t *testing.T) {
	s := sentencetest.New(sentencetest.W{Text: "lost", Pos: "NOUN", Dep: "nsubj", Head: 7})
	n := sent.NewTree(s).Nodes()[0]
	assert.Equal(t, "lost", n.Head().Text())
	assert.Empty(t, n.Children())
}

func TestNounChunksDerived(t *testing.T) {
	cases := []struct {
		name string
		s    sent.Sentence
		want []string
	}{
		{"camera", sentencetest.Camera(), []string{"The new iPhone camera", "stunning photos", "low light conditions"}},
		{"service", sentencetest.Service(), []string{"Customer service", "the manager"}},
		{"pasta", sentencetest.Pasta(), []string{"The restaurant's pasta", "their prices"}},
		{"delivery", sentencetest.Delivery(), []string{"the fast delivery", "careful packaging"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, sent.NewTree(tc.s).NounChunks())
		})
	}
}

func TestNounChunksFromParser(t *testing.T) {
	s := sentencetest.Camera()
	s.Chunks = []sent.Span{{Start: 2, End: 4}, {Start: 9, End: 9}, {Start: 10, End: 40}}

	assert.Equal(t, []string{"iPhone camera"}, sent.NewTree(s).NounChunks())
}

func TestText(t *testing.T) {
	s := sentencetest.Pasta()
	assert.Equal(t, "The restaurant's pasta was delicious but their prices are too high.", sent.Text(s.Tokens))

	noOffsets := []sent.Token{{Text: "great"}, {Text: "food"}}
	assert.Equal(t, "great food", sent.Text(noOffsets))
	assert.Equal(t, "", sent.Text(nil))
}

func TestTextMultiTokenWord(t *testing.T) {
	tokens := []sent.Token{
		{Text: "quiere", Idx: 10},
		{Text: "envolverse", Idx: 17},
		{Text: "envolverse", Idx: 17},
		{Text: "hoy", Idx: 28},
	}
	assert.Equal(t, "quiere envolverse hoy", sent.Text(tokens))
}

func TestValidate(t *testing.T) {
	require.NoError(t, sent.Validate(sentencetest.Camera()))
	require.NoError(t, sent.Validate(sent.Sentence{}))

	twoRoots := sentencetest.New(
		sentencetest.W{Text: "Stop", Pos: "VERB", Dep: "ROOT", Head: 0},
		sentencetest.W{Text: "go", Pos: "VERB", Dep: "ROOT", Head: 1},
	)
	noRoot := sentencetest.New(
		sentencetest.W{Text: "a", Pos: "DET", Dep: "det", Head: 1},
		sentencetest.W{Text: "b", Pos: "NOUN", Dep: "nsubj", Head: 0},
	)
	outOfRange := sentencetest.New(
		sentencetest.W{Text: "a", Pos: "NOUN", Dep: "ROOT", Head: 0},
		sentencetest.W{Text: "b", Pos: "ADJ", Dep: "amod", Head: 5},
	)
	cycle := sentencetest.New(
		sentencetest.W{Text: "a", Pos: "NOUN", Dep: "ROOT", Head: 0},
		sentencetest.W{Text: "b", Pos: "ADJ", Dep: "amod", Head: 2},
		sentencetest.W{Text: "c", Pos: "ADJ", Dep: "amod", Head: 1},
	)

	for name, s := range map[string]sent.Sentence{
		"two roots":    twoRoots,
		"no root":      noRoot,
		"out of range": outOfRange,
		"cycle":        cycle,
	} {
		err := sent.Validate(s)
		if !errors.Is(err, sent.ErrMalformedParseTree) {
			t.Errorf("%s: expected ErrMalformedParseTree, got %v", name, err)
		}
	}
}

func TestExplain(t *testing.T) {
	assert.Equal(t, "adjectival modifier", sent.Explain("amod"))
	assert.Equal(t, "proper noun", sent.Explain("PROPN"))
	assert.Equal(t, "", sent.Explain("nope"))
}
