package iso

import (
	"encoding/xml"
	"strings"
)

// Element is a node of the document tree. Character data is only kept for
// elements without children.
type Element struct {
	Name     xml.Name
	Attr     []xml.Attr
	Children []*Element
	Text     string
}

// NewElement returns a new element with the given children.
func NewElement(name xml.Name, children ...*Element) *Element {
	e := &Element{Name: name}
	for _, c := range children {
		if c != nil {
			e.Children = append(e.Children, c)
		}
	}
	return e
}

// NewText returns a new leaf element carrying text.
func NewText(name xml.Name, text string) *Element {
	return &Element{Name: name, Text: text}
}

// Is reports whether the element is non-nil and has the given name.
func (e *Element) Is(name xml.Name) bool {
	return e != nil && e.Name == name
}

// Child returns the first child with the given name or nil.
func (e *Element) Child(name xml.Name) *Element {
	if e == nil {
		return nil
	}
	for _, c := range e.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ChildrenNamed returns all the children with the given name in document
// order.
func (e *Element) ChildrenNamed(name xml.Name) []*Element {
	if e == nil {
		return nil
	}
	var res []*Element
	for _, c := range e.Children {
		if c.Name == name {
			res = append(res, c)
		}
	}
	return res
}

// FirstChild returns the first child element or nil.
func (e *Element) FirstChild() *Element {
	if e == nil || len(e.Children) == 0 {
		return nil
	}
	return e.Children[0]
}

// Find descends through the first child matching each name of the path. It
// returns nil as soon as a step is missing.
func (e *Element) Find(path ...xml.Name) *Element {
	cur := e
	for _, name := range path {
		cur = cur.Child(name)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// Ensure is like Find but creates the missing steps of the path.
func (e *Element) Ensure(path ...xml.Name) *Element {
	cur := e
	for _, name := range path {
		next := cur.Child(name)
		if next == nil {
			next = NewElement(name)
			cur.Insert(next)
		}
		cur = next
	}
	return cur
}

// Append adds children at the end, ignoring schema order.
func (e *Element) Append(children ...*Element) {
	for _, c := range children {
		if c != nil {
			e.Children = append(e.Children, c)
		}
	}
	e.Text = ""
}

// Insert adds a child at the position mandated by the schema of the parent,
// i.e. after its existing siblings of the same name and before any sibling
// that must come later. Unknown parents or children are appended.
func (e *Element) Insert(c *Element) *Element {
	e.Text = ""
	pos := insertPosition(e, c.Name)
	e.Children = append(e.Children, nil)
	copy(e.Children[pos+1:], e.Children[pos:])
	e.Children[pos] = c
	return c
}

func (e *Element) indexOf(c *Element) int {
	for i, ch := range e.Children {
		if ch == c {
			return i
		}
	}
	return -1
}

// Remove detaches a child. It reports whether the child was found.
func (e *Element) Remove(c *Element) bool {
	if e == nil {
		return false
	}
	i := e.indexOf(c)
	if i < 0 {
		return false
	}
	e.Children = append(e.Children[:i], e.Children[i+1:]...)
	return true
}

// RemoveAll detaches every child with the given name and returns the index
// where the first of them was found, or -1.
func (e *Element) RemoveAll(name xml.Name) int {
	if e == nil {
		return -1
	}
	first := -1
	kept := e.Children[:0]
	for i, c := range e.Children {
		if c.Name == name {
			if first < 0 {
				first = i
			}
			continue
		}
		kept = append(kept, c)
	}
	for i := len(kept); i < len(e.Children); i++ {
		e.Children[i] = nil
	}
	e.Children = kept
	return first
}

// Replace swaps every child with the given name for elems. The new elements
// take the position of the first replaced child, or their schema position
// when there was none.
func (e *Element) Replace(name xml.Name, elems []*Element) {
	pos := e.RemoveAll(name)
	if pos < 0 {
		for _, c := range elems {
			e.Insert(c)
		}
		return
	}
	tail := append([]*Element{}, e.Children[pos:]...)
	e.Children = append(append(e.Children[:pos], elems...), tail...)
}

// ReplaceChild swaps old for c in place. When old is not a child, c is
// inserted.
func (e *Element) ReplaceChild(old, c *Element) {
	if i := e.indexOf(old); i >= 0 {
		e.Children[i] = c
		return
	}
	e.Insert(c)
}

// AttrValue returns the value of an attribute or the empty string.
func (e *Element) AttrValue(name xml.Name) string {
	if e == nil {
		return ""
	}
	for _, a := range e.Attr {
		if a.Name == name {
			return a.Value
		}
	}
	return ""
}

// HasAttr reports whether the attribute is present.
func (e *Element) HasAttr(name xml.Name) bool {
	if e == nil {
		return false
	}
	for _, a := range e.Attr {
		if a.Name == name {
			return true
		}
	}
	return false
}

// SetAttr sets or adds an attribute.
func (e *Element) SetAttr(name xml.Name, value string) {
	for i := range e.Attr {
		if e.Attr[i].Name == name {
			e.Attr[i].Value = value
			return
		}
	}
	e.Attr = append(e.Attr, xml.Attr{Name: name, Value: value})
}

// RemoveAttr removes an attribute if present.
func (e *Element) RemoveAttr(name xml.Name) {
	for i := range e.Attr {
		if e.Attr[i].Name == name {
			e.Attr = append(e.Attr[:i], e.Attr[i+1:]...)
			return
		}
	}
}

// Value returns the trimmed text of the element.
func (e *Element) Value() string {
	if e == nil {
		return ""
	}
	return strings.TrimSpace(e.Text)
}

// SetValue turns the element into a leaf carrying the given text.
func (e *Element) SetValue(v string) {
	e.Children = nil
	e.Text = v
}

// Clone returns a deep copy of the element.
func (e *Element) Clone() *Element {
	if e == nil {
		return nil
	}
	c := &Element{Name: e.Name, Text: e.Text}
	if len(e.Attr) > 0 {
		c.Attr = append([]xml.Attr{}, e.Attr...)
	}
	for _, ch := range e.Children {
		c.Children = append(c.Children, ch.Clone())
	}
	return c
}

// Walk calls fn for the element and all its descendants in document order
// until fn returns false.
func (e *Element) Walk(fn func(*Element) bool) bool {
	if e == nil {
		return true
	}
	if !fn(e) {
		return false
	}
	for _, c := range e.Children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}
