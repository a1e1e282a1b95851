package iso

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Document is a parsed catalogue document.
type Document struct {
	Root *Element

	// prefixes remembers the namespace prefixes declared by the source so
	// rendering does not rename unknown namespaces.
	prefixes map[string]string
}

// NewDocument wraps an element tree.
func NewDocument(root *Element) *Document {
	return &Document{Root: root}
}

// Metadata returns the gmd:MD_Metadata element of the document. It is either
// the root element or the first one nested in it, e.g. when the document is a
// CSW GetRecordById response.
func (d *Document) Metadata() *Element {
	if d == nil || d.Root == nil {
		return nil
	}
	var found *Element
	d.Root.Walk(func(e *Element) bool {
		if e.Name == GMD("MD_Metadata") {
			found = e
			return false
		}
		return true
	})
	return found
}

// Parse reads a document.
func Parse(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)
	doc := &Document{prefixes: map[string]string{}}
	var stack []*Element
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "error decoding document")
		}
		switch t := tok.(type) {
		case xml.StartElement:
			e := &Element{Name: t.Name}
			for _, a := range t.Attr {
				switch {
				case a.Name.Space == "xmlns":
					if _, ok := doc.prefixes[a.Value]; !ok {
						doc.prefixes[a.Value] = a.Name.Local
					}
					continue
				case a.Name.Space == "" && a.Name.Local == "xmlns":
					continue
				}
				e.Attr = append(e.Attr, a)
			}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, e)
			} else if doc.Root == nil {
				doc.Root = e
			}
			stack = append(stack, e)
		case xml.EndElement:
			e := stack[len(stack)-1]
			if len(e.Children) > 0 {
				e.Text = ""
			}
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				e := stack[len(stack)-1]
				if len(e.Children) == 0 {
					e.Text += string(t)
				}
			}
		}
	}
	if doc.Root == nil {
		return nil, errors.New("document is empty")
	}
	return doc, nil
}

// ParseBytes is a convenience wrapper around Parse.
func ParseBytes(data []byte) (*Document, error) {
	return Parse(bytes.NewReader(data))
}

// Render writes the document as indented XML.
func (d *Document) Render(w io.Writer) error {
	if d == nil || d.Root == nil {
		return errors.New("document is empty")
	}
	r := &renderer{w: bufio.NewWriter(w), prefixes: d.assignPrefixes()}
	r.writeString(xml.Header)
	r.element(d.Root, 0, true)
	if r.err != nil {
		return r.err
	}
	return r.w.Flush()
}

// Bytes renders the document into a byte slice.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// assignPrefixes collects the namespaces used by the tree and picks a prefix
// for each of them.
func (d *Document) assignPrefixes() map[string]string {
	used := map[string]bool{}
	d.Root.Walk(func(e *Element) bool {
		if e.Name.Space != "" {
			used[e.Name.Space] = true
		}
		for _, a := range e.Attr {
			if a.Name.Space != "" {
				used[a.Name.Space] = true
			}
		}
		return true
	})
	res := map[string]string{NamespaceXML: "xml"}
	taken := map[string]bool{"xml": true}
	spaces := make([]string, 0, len(used))
	for ns := range used {
		spaces = append(spaces, ns)
	}
	sort.Strings(spaces)
	// Well-known namespaces always get their conventional prefix since
	// attribute values such as xsi:type refer to it.
	for _, ns := range spaces {
		if p, ok := DefaultPrefixes[ns]; ok && ns != NamespaceXML {
			res[ns] = p
			taken[p] = true
		}
	}
	n := 0
	for _, ns := range spaces {
		if _, ok := res[ns]; ok {
			continue
		}
		p, ok := d.prefixes[ns]
		for !ok || p == "" || taken[p] {
			n++
			p, ok = fmt.Sprintf("ns%d", n), true
		}
		res[ns] = p
		taken[p] = true
	}
	return res
}

type renderer struct {
	w        *bufio.Writer
	prefixes map[string]string
	err      error
}

func (r *renderer) writeString(s string) {
	if r.err != nil {
		return
	}
	_, r.err = r.w.WriteString(s)
}

func (r *renderer) escape(s string) {
	if r.err != nil {
		return
	}
	r.err = xml.EscapeText(r.w, []byte(s))
}

func (r *renderer) qualify(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	p, ok := r.prefixes[name.Space]
	if !ok {
		return name.Local
	}
	return p + ":" + name.Local
}

func (r *renderer) element(e *Element, depth int, root bool) {
	indent := strings.Repeat("  ", depth)
	r.writeString(indent + "<" + r.qualify(e.Name))
	if root {
		r.declarations()
	}
	for _, a := range e.Attr {
		r.writeString(" " + r.qualify(a.Name) + `="`)
		r.escape(a.Value)
		r.writeString(`"`)
	}
	switch {
	case len(e.Children) > 0:
		r.writeString(">\n")
		for _, c := range e.Children {
			r.element(c, depth+1, false)
		}
		r.writeString(indent + "</" + r.qualify(e.Name) + ">\n")
	case e.Text != "":
		r.writeString(">")
		r.escape(e.Text)
		r.writeString("</" + r.qualify(e.Name) + ">\n")
	default:
		r.writeString("/>\n")
	}
}

func (r *renderer) declarations() {
	type decl struct{ prefix, ns string }
	var decls []decl
	for ns, p := range r.prefixes {
		if ns == NamespaceXML {
			continue
		}
		decls = append(decls, decl{p, ns})
	}
	sort.Slice(decls, func(i, j int) bool { return decls[i].prefix < decls[j].prefix })
	for _, d := range decls {
		r.writeString(" xmlns:" + d.prefix + `="`)
		r.escape(d.ns)
		r.writeString(`"`)
	}
}
