package sentence

import "strings"

// Text rebuilds the surface text of consecutive tokens.
//
// The `idx` field is the character offset (rune based) of the token in the
// original text, so the gap between two tokens is the difference of their
// offsets minus the length of the first one. Tokens of a multi token word
// share the same `idx` and `text`:
//
//	{"text": "envolverse", "idx": 2431, "index": 4, ...},
//	{"text": "envolverse", "idx": 2431, "index": 5, ...},
//
// and the second one is not rendered again. Tokens without offsets (all idx
// zero) are joined with single spaces.
func Text(tokens []Token) string {
	if len(tokens) == 0 {
		return ""
	}

	if !hasOffsets(tokens) {
		words := make([]string, len(tokens))
		for i, t := range tokens {
			words[i] = t.Text
		}
		return strings.Join(words, " ")
	}

	var str strings.Builder
	str.WriteString(tokens[0].Text)
	lastIdx := tokens[0].Idx
	lastLen := len([]rune(tokens[0].Text))

	for _, token := range tokens[1:] {
		diff := token.Idx - lastIdx
		if diff > 0 {
			if gap := diff - lastLen; gap > 0 {
				str.WriteString(strings.Repeat(" ", gap))
			}
			str.WriteString(token.Text)
		}

		lastIdx = token.Idx
		lastLen = len([]rune(token.Text))
	}

	return strings.ReplaceAll(str.String(), "\n", " ")
}

func hasOffsets(tokens []Token) bool {
	for _, t := range tokens {
		if t.Idx != 0 {
			return true
		}
	}
	return false
}
