package kml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
)

// Namespace is the OGC KML 2.2 namespace every element lookup is scoped to.
const Namespace = "http://www.opengis.net/kml/2.2"

// voidElements never take children when they turn up as raw HTML inside a
// description.
var voidElements = []string{"br", "hr", "img", "input", "area", "col", "param", "meta", "base"}

// node is one element of a parsed document. The tree is immutable once
// parseTree returns.
type node struct {
	name     xml.Name
	attr     []xml.Attr
	text     string
	children []*node
}

// document is the root of a parsed tree. syntaxErr holds the first syntax
// error the parser stepped over, if any; the tree is still complete apart
// from the bytes that caused it.
type document struct {
	*node
	syntaxErr error
}

// frame is an open element together with the namespace bindings in scope.
type frame struct {
	n    *node
	ns   map[string]string
	text strings.Builder
}

type treeBuilder struct {
	src   []byte
	stack []*frame
}

// parseTree decodes data into an element tree, repairing what it can.
//
// Unprefixed elements outside any xmlns declaration are placed in defaultNS;
// pass "" to leave them without a namespace.
//
// Tokens are read raw so a stray end tag cannot unwind the whole document:
// an end tag closes the nearest open element with the same local name and is
// dropped when there is none. Unknown entities pass through, HTML void
// elements close themselves and elements still open at EOF are closed
// implicitly. On a syntax error the offending bytes are kept as text of the
// open element and decoding resumes right after them. Only a document with no
// element at all is reported as malformed.
func parseTree(data []byte, defaultNS string) (*document, error) {
	root := &frame{n: &node{}, ns: map[string]string{}}
	if defaultNS != "" {
		root.ns[""] = defaultNS
	}
	b := &treeBuilder{src: data, stack: []*frame{root}}

	var firstErr error
	for pos := 0; pos < len(b.src); {
		next, err := b.decode(pos)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		pos = next
	}
	b.closeTo(1)
	if len(root.n.children) == 0 {
		return nil, &MalformedXMLError{Err: firstErr}
	}
	return &document{node: root.n, syntaxErr: firstErr}, nil
}

// decode feeds tokens from src[pos:] into the tree. It returns the offset to
// resume from and the syntax error that stopped it, or len(src) and nil at
// EOF.
func (b *treeBuilder) decode(pos int) (int, error) {
	d := xml.NewDecoder(bytes.NewReader(b.src[pos:]))
	d.Strict = false
	d.Entity = xml.HTMLEntity
	if pos == 0 {
		d.CharsetReader = b.charsetReader(d)
	}
	for {
		start := int(d.InputOffset())
		tok, err := d.RawToken()
		if err == io.EOF {
			return len(b.src), nil
		}
		if err != nil {
			end := max(int(d.InputOffset()), start+1)
			end = min(pos+end, len(b.src))
			b.top().text.Write(b.src[pos+start : end])
			return end, err
		}
		b.add(tok)
	}
}

func (b *treeBuilder) top() *frame { return b.stack[len(b.stack)-1] }

func (b *treeBuilder) add(tok xml.Token) {
	top := b.top()
	switch t := tok.(type) {
	case xml.StartElement:
		ns := bindNamespaces(top.ns, t.Attr)
		n := &node{name: resolveName(ns, t.Name), attr: t.Attr}
		top.n.children = append(top.n.children, n)
		if isVoid(t.Name.Local) {
			return
		}
		b.stack = append(b.stack, &frame{n: n, ns: ns})
	case xml.EndElement:
		for i := len(b.stack) - 1; i > 0; i-- {
			if b.stack[i].n.name.Local == t.Name.Local {
				b.closeTo(i)
				return
			}
		}
	case xml.CharData:
		top.text.Write(t)
	}
}

// closeTo closes every open element from depth i upwards.
func (b *treeBuilder) closeTo(i int) {
	for j := len(b.stack) - 1; j >= i; j-- {
		b.stack[j].n.text = b.stack[j].text.String()
	}
	b.stack = b.stack[:i]
}

// charsetReader converts the rest of the input to UTF-8 up front and splices
// it into src after the XML declaration, so offsets reported by d keep
// indexing src when decoding has to resume.
func (b *treeBuilder) charsetReader(d *xml.Decoder) func(string, io.Reader) (io.Reader, error) {
	return func(label string, input io.Reader) (io.Reader, error) {
		enc, err := ianaindex.IANA.Encoding(label)
		if err != nil {
			return nil, err
		}
		if enc == nil {
			return nil, fmt.Errorf("unsupported charset %q", label)
		}
		converted, err := io.ReadAll(enc.NewDecoder().Reader(input))
		if err != nil {
			return nil, err
		}
		off := int(d.InputOffset())
		b.src = append(b.src[:off:off], converted...)
		return bytes.NewReader(converted), nil
	}
}

// bindNamespaces returns the bindings in scope for an element with attrs,
// copying parent only when the element declares something new.
func bindNamespaces(parent map[string]string, attrs []xml.Attr) map[string]string {
	ns := parent
	copied := false
	for _, a := range attrs {
		var prefix string
		switch {
		case a.Name.Space == "" && a.Name.Local == "xmlns":
		case a.Name.Space == "xmlns":
			prefix = a.Name.Local
		default:
			continue
		}
		if !copied {
			ns = make(map[string]string, len(parent)+1)
			for k, v := range parent {
				ns[k] = v
			}
			copied = true
		}
		ns[prefix] = a.Value
	}
	return ns
}

// resolveName replaces the prefix of name with its namespace URL. Unbound
// prefixes are kept as they are.
func resolveName(ns map[string]string, name xml.Name) xml.Name {
	if url, ok := ns[name.Space]; ok {
		name.Space = url
	}
	return name
}

func isVoid(local string) bool {
	for _, v := range voidElements {
		if strings.EqualFold(v, local) {
			return true
		}
	}
	return false
}

// is reports whether n is the KML element local.
func (n *node) is(local string) bool {
	return n.name.Local == local && n.name.Space == Namespace
}

func (n *node) attrValue(local string) string {
	for _, a := range n.attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

// child returns the first direct child named local.
func (n *node) child(local string) *node {
	for _, c := range n.children {
		if c.is(local) {
			return c
		}
	}
	return nil
}

// childText returns the trimmed text of the first direct child named local.
func (n *node) childText(local string) (string, bool) {
	c := n.child(local)
	if c == nil {
		return "", false
	}
	return strings.TrimSpace(c.text), true
}

// walk visits every descendant of n in document order (pre-order), stopping
// early when fn returns false.
func (n *node) walk(fn func(*node) bool) bool {
	for _, c := range n.children {
		if !fn(c) || !c.walk(fn) {
			return false
		}
	}
	return true
}

// findAll returns every descendant named local in document order.
func (n *node) findAll(local string) []*node {
	var out []*node
	n.walk(func(c *node) bool {
		if c.is(local) {
			out = append(out, c)
		}
		return true
	})
	return out
}

// find returns the first element matching path, where path[0] may sit at
// any depth below n and each following step is a direct child of the one
// before it.
func (n *node) find(path ...string) *node {
	if len(path) == 0 {
		return nil
	}
	var found *node
	n.walk(func(c *node) bool {
		if !c.is(path[0]) {
			return true
		}
		found = c.descend(path[1:])
		return found == nil
	})
	return found
}

// descend follows path through direct children, trying siblings in order.
func (n *node) descend(path []string) *node {
	if len(path) == 0 {
		return n
	}
	for _, c := range n.children {
		if !c.is(path[0]) {
			continue
		}
		if hit := c.descend(path[1:]); hit != nil {
			return hit
		}
	}
	return nil
}
