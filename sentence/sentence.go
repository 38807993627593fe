package sentence

// Doc is a parsed document: a post, a review or a whole text, split in
// sentences.
type Doc struct {
	Id int `json:"id"`

	Title string `json:"title"`

	Labels    []string   `json:"labels"`
	Sentences []Sentence `json:"sentences"`
}

// Library is a collection of Doc
type Library []Doc

// Sentence is the dependency parse of one sentence.
type Sentence struct {
	Id     int     `json:"id"`
	DocId  int     `json:"doc_id"`
	Tokens []Token `json:"tokens"`

	// Chunks are the base noun phrases segmented by the parser (spacy
	// doc.noun_chunks). Optional: when empty they are derived from the tree.
	Chunks []Span `json:"chunks,omitempty"`
}

// Span is a half open [Start, End) range of token indexes in a sentence.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Token represents a word of the sentence, with POS and metadata.
type Token struct {
	Id int `json:"id"`

	// Index in the sentence of the syntactic head. The root points at itself.
	Head int `json:"head"`

	SentenceId int    `json:"sent"`
	Pos        string `json:"pos"`
	Dep        string `json:"dep"`

	// A string containing detailed POS data
	Tag string `json:"tag"`

	// the index of the start character of the token in the original doc (set by spacy, stanza)
	Idx int `json:"idx"`

	// The unmodified word
	Text string `json:"text"`

	// The lemma of the word
	Lemma string `json:"lemma"`

	// The index of the word in the sentence, starting at 0.
	Index int `json:"index"`
}

// Coarse part of speech tags (Universal POS) the extractor looks at.
const (
	PosNoun  = "NOUN"
	PosPropn = "PROPN"
	PosPron  = "PRON"
	PosAdj   = "ADJ"
	PosAdv   = "ADV"
	PosVerb  = "VERB"
)

// Dependency relations the extractor looks at (ClearNLP labels, as spacy
// english models emit them).
const (
	DepRoot      = "ROOT"
	DepNsubj     = "nsubj"
	DepNsubjPass = "nsubjpass"
	DepDobj      = "dobj"
	DepPobj      = "pobj"
	DepAmod      = "amod"
	DepDative    = "dative"
	DepAppos     = "appos"
	DepAttr      = "attr"
)
