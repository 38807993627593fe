package sentence

// Node is a token seen as a vertex of the dependency tree.
//
// Any parser binding can feed the extractor by implementing Node and Parse;
// Tree is the implementation over the JSON token format.
type Node interface {
	Text() string
	Pos() string
	Dep() string

	// Index is the position of the node in the sentence.
	Index() int

	// Head is the syntactic head. The root returns itself.
	Head() Node

	// Children are the dependents of the node, in sentence order.
	Children() []Node

	// Lefts are the children positioned before the node.
	Lefts() []Node

	// Rights are the children positioned after the node.
	Rights() []Node
}

// Parse is a dependency parsed sentence.
type Parse interface {
	// Nodes returns all nodes in sentence order.
	Nodes() []Node

	// NounChunks returns the surface text of the base noun phrases.
	NounChunks() []string
}

type node struct {
	tree     *Tree
	token    Token
	index    int
	head     int
	children []int
}

func (n *node) Text() string { return n.token.Text }
func (n *node) Pos() string  { return n.token.Pos }
func (n *node) Dep() string  { return n.token.Dep }
func (n *node) Index() int   { return n.index }

func (n *node) Head() Node {
	if n.head < 0 || n.head >= len(n.tree.nodes) {
		return n
	}
	return n.tree.nodes[n.head]
}

func (n *node) Children() []Node {
	return n.tree.collect(n.children, func(int) bool { return true })
}

func (n *node) Lefts() []Node {
	return n.tree.collect(n.children, func(c int) bool { return c < n.index })
}

func (n *node) Rights() []Node {
	return n.tree.collect(n.children, func(c int) bool { return c > n.index })
}

// Tree is a read only dependency tree view over a Sentence. It is safe for
// concurrent use.
type Tree struct {
	sentence Sentence
	nodes    []*node
}

var _ Parse = (*Tree)(nil)

// NewTree links every token of s to its head and children. Token positions
// are taken from the slice order; Token.Head refers to those positions.
//
// Out of range heads are treated as self references, so a malformed
// sentence still produces a navigable (if meaningless) tree. Use Validate to
// reject it instead.
func NewTree(s Sentence) *Tree {
	t := &Tree{sentence: s, nodes: make([]*node, len(s.Tokens))}

	for i, tk := range s.Tokens {
		t.nodes[i] = &node{tree: t, token: tk, index: i, head: tk.Head}
	}

	// children are appended in increasing index order, so they keep the
	// sentence order
	for i, n := range t.nodes {
		if n.head == i || n.head < 0 || n.head >= len(t.nodes) {
			continue
		}
		parent := t.nodes[n.head]
		parent.children = append(parent.children, i)
	}

	return t
}

// Sentence returns the underlying sentence.
func (t *Tree) Sentence() Sentence {
	return t.sentence
}

// Text returns the surface text of the sentence.
func (t *Tree) Text() string {
	return Text(t.sentence.Tokens)
}

func (t *Tree) Nodes() []Node {
	out := make([]Node, len(t.nodes))
	for i, n := range t.nodes {
		out[i] = n
	}
	return out
}

// Roots returns the nodes labelled as root, in sentence order.
func (t *Tree) Roots() []Node {
	var roots []Node
	for _, n := range t.nodes {
		if n.token.Dep == DepRoot {
			roots = append(roots, n)
		}
	}
	return roots
}

// NounChunks returns the parser chunks if the sentence carries them, or the
// chunks derived from the tree otherwise.
func (t *Tree) NounChunks() []string {
	spans := t.sentence.Chunks
	if len(spans) == 0 {
		spans = t.deriveChunks()
	}

	chunks := make([]string, 0, len(spans))
	for _, sp := range spans {
		if sp.Start < 0 || sp.End > len(t.sentence.Tokens) || sp.Start >= sp.End {
			continue
		}
		chunks = append(chunks, Text(t.sentence.Tokens[sp.Start:sp.End]))
	}

	return chunks
}

func (t *Tree) collect(idxs []int, keep func(int) bool) []Node {
	out := []Node{}
	for _, i := range idxs {
		if keep(i) {
			out = append(out, t.nodes[i])
		}
	}
	return out
}
