package newick

import (
	"fmt"
	"math"
	"strconv"

	"github.com/matzehuels/cladegram/pkg/timetree"
)

// SyntaxError reports a grammar violation in a Newick string. It carries the
// token category the parser expected, the offending character and its 1-based
// byte offset in the input.
type SyntaxError struct {
	Offset   int    // 1-based byte offset of the failure
	Expected string // token category the parser was looking for
	Found    byte   // offending character, 0 at end of input
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	if e.Found == 0 {
		return fmt.Sprintf("newick: offset %d: expected %s, found end of input", e.Offset, e.Expected)
	}
	return fmt.Sprintf("newick: offset %d: expected %s, found %q", e.Offset, e.Expected, e.Found)
}

// Parse reads a single Newick tree from text and returns it as a fully aged
// time tree. The whole input is consumed: anything but whitespace after the
// terminating ';' is a syntax error.
//
// Branch lengths in the input are converted to absolute ages (see the package
// documentation), node numbers are assigned and the tree caches are built.
func Parse(text string) (*timetree.Tree, error) {
	p := &parser{src: text}

	root, err := p.parseNode()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.accept(';') {
		return nil, p.errExpected("terminating ';'")
	}
	p.skipSpace()
	if p.pos < len(p.src) {
		return nil, p.errExpected("end of input")
	}

	normalizeAges(root)
	return timetree.New(root), nil
}

// parser is a recursive-descent scanner over a Newick string. All token
// matches are anchored at pos; the grammar is LL(1) over the token classes,
// so no backtracking beyond a single unread character is ever needed.
type parser struct {
	src string
	pos int
}

// parseNode parses one Node production: an optional parenthesized child list
// followed by optional label, annotation and branch length.
func (p *parser) parseNode() (*timetree.Node, error) {
	n := timetree.NewNode()

	p.skipSpace()
	if p.accept('(') {
		for {
			child, err := p.parseNode()
			if err != nil {
				return nil, err
			}
			n.AddChild(child)

			p.skipSpace()
			if p.accept(',') {
				continue
			}
			if p.accept(')') {
				break
			}
			return nil, p.errExpected("',' or ')' in descendant list")
		}
	}

	label, err := p.parseLabel()
	if err != nil {
		return nil, err
	}
	n.Label = label

	if err := p.parseAnnotation(n); err != nil {
		return nil, err
	}

	p.skipSpace()
	if p.accept(':') {
		length, err := p.parseNumber()
		if err != nil {
			return nil, err
		}
		// Age temporarily holds the branch length until normalizeAges runs.
		n.Age = length
	}

	return n, nil
}

// parseLabel matches an optional label: a bareword run of word characters or
// a quoted string. A missing label consumes nothing and returns "".
func (p *parser) parseLabel() (string, error) {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return "", nil
	}

	switch quote := p.src[p.pos]; quote {
	case '\'', '"':
		start := p.pos
		p.pos++
		for p.pos < len(p.src) {
			if p.src[p.pos] == quote {
				label := p.src[start+1 : p.pos]
				p.pos++
				return label, nil
			}
			p.pos++
		}
		p.pos = start
		return "", p.errExpected("closing quote for label")
	}

	start := p.pos
	for p.pos < len(p.src) && isWordChar(p.src[p.pos]) {
		p.pos++
	}
	return p.src[start:p.pos], nil
}

// parseAnnotation matches an optional [&key=value,...] block. Once the [&
// opener has been consumed, keys, '=' signs, values and the closing ']' are
// all mandatory.
func (p *parser) parseAnnotation(n *timetree.Node) error {
	p.skipSpace()
	if p.pos+1 >= len(p.src) || p.src[p.pos] != '[' || p.src[p.pos+1] != '&' {
		return nil
	}
	p.pos += 2

	for {
		p.skipSpace()
		key := p.scanRunUntil("=,]")
		if key == "" {
			return p.errExpected("annotation key")
		}
		p.skipSpace()
		if !p.accept('=') {
			return p.errExpected("'=' after annotation key")
		}
		p.skipSpace()
		value := p.scanRunUntil(",]")
		if value == "" {
			return p.errExpected("annotation value")
		}
		n.Annotations[key] = value

		p.skipSpace()
		if p.accept(',') {
			continue
		}
		if p.accept(']') {
			return nil
		}
		return p.errExpected("',' or ']' in annotation")
	}
}

// parseNumber matches a mandatory signed decimal with optional fractional
// part and optional exponent, anchored at the current position.
func (p *parser) parseNumber() (float64, error) {
	p.skipSpace()
	start := p.pos

	if !p.accept('+') {
		p.accept('-')
	}
	digits := p.scanDigits()
	if p.accept('.') {
		digits += p.scanDigits()
	}
	if digits == 0 {
		p.pos = start
		return 0, p.errExpected("number after ':'")
	}
	if p.accept('e') || p.accept('E') {
		if !p.accept('+') {
			p.accept('-')
		}
		if p.scanDigits() == 0 {
			return 0, p.errExpected("exponent digits")
		}
	}

	v, err := strconv.ParseFloat(p.src[start:p.pos], 64)
	if err != nil {
		p.pos = start
		return 0, p.errExpected("number after ':'")
	}
	return v, nil
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

// accept consumes the next byte if it equals c.
func (p *parser) accept(c byte) bool {
	if p.pos < len(p.src) && p.src[p.pos] == c {
		p.pos++
		return true
	}
	return false
}

// scanDigits consumes a run of ASCII digits and returns its length.
func (p *parser) scanDigits() int {
	start := p.pos
	for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
		p.pos++
	}
	return p.pos - start
}

// scanRunUntil consumes bytes up to (not including) the first occurrence of
// any byte in stop, with trailing spaces trimmed from the result.
func (p *parser) scanRunUntil(stop string) string {
	start := p.pos
	for p.pos < len(p.src) && !containsByte(stop, p.src[p.pos]) {
		p.pos++
	}
	end := p.pos
	for end > start && (p.src[end-1] == ' ' || p.src[end-1] == '\t') {
		end--
	}
	return p.src[start:end]
}

// errExpected builds a SyntaxError anchored at the current scan position.
func (p *parser) errExpected(expected string) error {
	var found byte
	if p.pos < len(p.src) {
		found = p.src[p.pos]
	}
	return &SyntaxError{Offset: p.pos + 1, Expected: expected, Found: found}
}

func isWordChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

func containsByte(s string, c byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return true
		}
	}
	return false
}

// normalizeAges converts in-place branch lengths into absolute ages. The tree
// height is the maximum cumulative branch length from the root over all nodes;
// it can only be known after the whole tree has been parsed, which is why two
// traversals are required.
func normalizeAges(root *timetree.Node) {
	var height float64
	var depth func(n *timetree.Node, acc float64)
	depth = func(n *timetree.Node, acc float64) {
		if acc > height {
			height = acc
		}
		for _, c := range n.Children {
			depth(c, acc+c.Age)
		}
	}
	depth(root, 0)

	var convert func(n *timetree.Node, acc float64)
	convert = func(n *timetree.Node, acc float64) {
		for _, c := range n.Children {
			convert(c, acc+c.Age)
		}
		age := height - acc
		if math.Abs(age) < ageEpsilon {
			age = 0
		}
		n.Age = age
	}
	convert(root, 0)
}

// ageEpsilon absorbs floating-point residue when a cumulative depth equals
// the tree height; without it, contemporaneous leaves could end up with ages
// like -2.2e-16.
const ageEpsilon = 1e-12
