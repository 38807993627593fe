package sentence

const depConj = "conj"

// npDeps are the relations that make a nominal the head of a base noun
// phrase.
var npDeps = map[string]bool{
	"oprd":       true,
	DepNsubj:     true,
	DepDobj:      true,
	DepNsubjPass: true,
	"pcomp":      true,
	DepPobj:      true,
	DepDative:    true,
	DepAppos:     true,
	DepAttr:      true,
	DepRoot:      true,
}

// deriveChunks segments base noun phrases the way the spacy english
// iterator does: a nominal heading a np relation (or conjoined to one) spans
// from the left edge of its subtree to itself. Overlapping chunks are
// skipped.
func (t *Tree) deriveChunks() []Span {
	var spans []Span
	prevEnd := -1

	for i, n := range t.nodes {
		switch n.token.Pos {
		case PosNoun, PosPropn, PosPron:
		default:
			continue
		}

		left := t.leftEdge(i)
		if left <= prevEnd {
			continue
		}

		dep := n.token.Dep
		if !npDeps[dep] {
			if dep != depConj {
				continue
			}
			if !npDeps[t.conjHead(i)] {
				continue
			}
		}

		prevEnd = i
		spans = append(spans, Span{Start: left, End: i + 1})
	}

	return spans
}

// leftEdge returns the smallest index in the subtree of i.
func (t *Tree) leftEdge(i int) int {
	edge := i
	seen := map[int]bool{i: true}
	stack := []int{i}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, c := range t.nodes[cur].children {
			if seen[c] {
				continue
			}
			seen[c] = true
			if c < edge {
				edge = c
			}
			stack = append(stack, c)
		}
	}
	return edge
}

// conjHead climbs a chain of left-headed conj relations and returns the
// relation of its first member.
func (t *Tree) conjHead(i int) string {
	cur := t.nodes[i].head
	for steps := 0; steps < len(t.nodes); steps++ {
		if cur < 0 || cur >= len(t.nodes) {
			return ""
		}
		n := t.nodes[cur]
		if n.token.Dep != depConj || n.head >= cur {
			return n.token.Dep
		}
		cur = n.head
	}
	return ""
}
