package metadata

import (
	"encoding/xml"

	"github.com/JiscSD/csw-simple-metadata/iso"
)

// locateChild returns the first child of container tagged as kind, appending
// a new one when there is none. Existing children are never removed or
// reordered.
func locateChild(container *iso.Element, kind xml.Name) *iso.Element {
	if c := container.Child(kind); c != nil {
		return c
	}
	return container.Insert(iso.NewElement(kind))
}

// variants returns the elements of the given kind held by the property
// wrappers of parent, e.g. every gmd:MD_LegalConstraints found under the
// gmd:resourceConstraints of an identification.
func variants(parent *iso.Element, wrapper, kind xml.Name) []*iso.Element {
	var res []*iso.Element
	for _, w := range parent.ChildrenNamed(wrapper) {
		if v := w.Child(kind); v != nil {
			res = append(res, v)
		}
	}
	return res
}

// locateVariant returns the first element of the given kind held by a
// property wrapper of parent. When no wrapper carries that kind, a new wrapper
// is inserted next to the existing ones, which are left untouched.
func locateVariant(parent *iso.Element, wrapper, kind xml.Name) *iso.Element {
	if vs := variants(parent, wrapper, kind); len(vs) > 0 {
		return vs[0]
	}
	v := iso.NewElement(kind)
	parent.Insert(iso.NewElement(wrapper, v))
	return v
}
