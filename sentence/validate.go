package sentence

import (
	"errors"
	"fmt"
)

// ErrMalformedParseTree is returned when the head relations of a sentence do
// not form a tree with a single root.
var ErrMalformedParseTree = errors.New("malformed parse tree")

// Validate checks that s has exactly one root, that every head is a token of
// the sentence and that following heads from any token reaches the root.
//
// An empty sentence is valid.
func Validate(s Sentence) error {
	n := len(s.Tokens)
	if n == 0 {
		return nil
	}

	root := -1
	for i, t := range s.Tokens {
		if t.Head < 0 || t.Head >= n {
			return fmt.Errorf("%w: token %d (%q) has head %d out of range", ErrMalformedParseTree, i, t.Text, t.Head)
		}

		isRoot := t.Dep == DepRoot
		if isRoot != (t.Head == i) {
			return fmt.Errorf("%w: token %d (%q) with dep %q has head %d", ErrMalformedParseTree, i, t.Text, t.Dep, t.Head)
		}

		if !isRoot {
			continue
		}
		if root >= 0 {
			return fmt.Errorf("%w: multiple roots at %d and %d", ErrMalformedParseTree, root, i)
		}
		root = i
	}

	if root < 0 {
		return fmt.Errorf("%w: no root", ErrMalformedParseTree)
	}

	// every path to the root has at most n-1 steps
	for i := range s.Tokens {
		cur := i
		for steps := 0; cur != root; steps++ {
			if steps >= n {
				return fmt.Errorf("%w: cycle through token %d (%q)", ErrMalformedParseTree, i, s.Tokens[i].Text)
			}
			cur = s.Tokens[cur].Head
		}
	}

	return nil
}
