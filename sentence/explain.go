package sentence

var glossary = map[string]string{
	// Universal POS tags
	"ADJ":   "adjective",
	"ADP":   "adposition",
	"ADV":   "adverb",
	"AUX":   "auxiliary",
	"CCONJ": "coordinating conjunction",
	"DET":   "determiner",
	"INTJ":  "interjection",
	"NOUN":  "noun",
	"NUM":   "numeral",
	"PART":  "particle",
	"PRON":  "pronoun",
	"PROPN": "proper noun",
	"PUNCT": "punctuation",
	"SCONJ": "subordinating conjunction",
	"SYM":   "symbol",
	"VERB":  "verb",
	"X":     "other",
	"SPACE": "space",

	// Dependency labels
	"ROOT":      "root",
	"acl":       "clausal modifier of noun (adjectival clause)",
	"acomp":     "adjectival complement",
	"advcl":     "adverbial clause modifier",
	"advmod":    "adverbial modifier",
	"agent":     "agent",
	"amod":      "adjectival modifier",
	"appos":     "appositional modifier",
	"attr":      "attribute",
	"aux":       "auxiliary",
	"auxpass":   "auxiliary (passive)",
	"case":      "case marking",
	"cc":        "coordinating conjunction",
	"ccomp":     "clausal complement",
	"compound":  "compound",
	"conj":      "conjunct",
	"csubj":     "clausal subject",
	"dative":    "dative",
	"dep":       "unclassified dependent",
	"det":       "determiner",
	"dobj":      "direct object",
	"expl":      "expletive",
	"intj":      "interjection",
	"mark":      "marker",
	"meta":      "meta modifier",
	"neg":       "negation modifier",
	"nmod":      "modifier of nominal",
	"npadvmod":  "noun phrase as adverbial modifier",
	"nsubj":     "nominal subject",
	"nsubjpass": "nominal subject (passive)",
	"nummod":    "numeric modifier",
	"oprd":      "object predicate",
	"parataxis": "parataxis",
	"pcomp":     "complement of preposition",
	"pobj":      "object of preposition",
	"poss":      "possession modifier",
	"preconj":   "pre-correlative conjunction",
	"prep":      "prepositional modifier",
	"prt":       "particle",
	"punct":     "punctuation",
	"quantmod":  "modifier of quantifier",
	"relcl":     "relative clause modifier",
	"xcomp":     "open clausal complement",
}

// Explain returns a short description of a POS tag or dependency label, or
// the empty string if the label is unknown.
func Explain(label string) string {
	return glossary[label]
}
