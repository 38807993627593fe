package sentiment

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var (
	reURL     = regexp.MustCompile(`(?m)https?\S+|www\S+`)
	reMention = regexp.MustCompile(`@\w+`)

	lower = cases.Lower(language.English)

	apostrophes = strings.NewReplacer("’", "'", "‘", "'")
)

// Clean removes URLs and user mentions from a post. Hashtags and emojis are
// kept, they carry sentiment.
func Clean(text string) string {
	text = reURL.ReplaceAllString(text, "")
	text = reMention.ReplaceAllString(text, "")
	return strings.Join(strings.Fields(text), " ")
}

// Words splits text in lower case words without surrounding punctuation.
func Words(text string) []string {
	text = apostrophes.Replace(norm.NFC.String(text))
	text = lower.String(text)

	var out []string
	for _, f := range strings.Fields(text) {
		w := strings.TrimFunc(f, func(r rune) bool {
			return unicode.IsPunct(r) && r != '\''
		})
		// the negation clitic keeps its apostrophe: can't, n't
		if !strings.HasSuffix(w, "n't") {
			w = strings.Trim(w, "'")
		}
		if w != "" {
			out = append(out, w)
		}
	}
	return out
}
