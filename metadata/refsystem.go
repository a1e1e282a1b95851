package metadata

import (
	"github.com/JiscSD/csw-simple-metadata/iso"
)

// ReferenceSystem is a coordinate reference system identified by a code in a
// namespace, e.g. EPSG:25833.
type ReferenceSystem struct {
	CoordinateSystem     string `yaml:"coordinate_system"`
	CoordinateSystemLink string `yaml:"coordinate_system_link,omitempty"`
	Namespace            string `yaml:"namespace,omitempty"`
}

func readReferenceSystem(rs *iso.Element) ReferenceSystem {
	id := rs.Find(gmd("referenceSystemIdentifier"), gmd("RS_Identifier"))
	code := id.Child(gmd("code"))
	return ReferenceSystem{
		CoordinateSystem:     Primary(code),
		CoordinateSystemLink: anchorLink(code),
		Namespace:            Primary(id.Child(gmd("codeSpace"))),
	}
}

// writeReferenceSystem overwrites the identifier of rs, keeping its
// authority and version.
func writeReferenceSystem(rs *iso.Element, r ReferenceSystem) {
	id := rs.Ensure(gmd("referenceSystemIdentifier"), gmd("RS_Identifier"))
	id.ReplaceChild(id.Child(gmd("code")), anchorOrString(gmd("code"), r.CoordinateSystem, r.CoordinateSystemLink))
	if r.Namespace == "" {
		id.RemoveAll(gmd("codeSpace"))
		return
	}
	id.ReplaceChild(id.Child(gmd("codeSpace")), characterString(gmd("codeSpace"), r.Namespace))
}

// ResourceReferenceSystem returns the first reference system of the record,
// or nil.
func ResourceReferenceSystem(doc *iso.Document) (*ReferenceSystem, error) {
	rss, err := referenceSystems(doc)
	if err != nil || len(rss) == 0 {
		return nil, err
	}
	r := readReferenceSystem(rss[0])
	return &r, nil
}

// SetResourceReferenceSystem overwrites the first reference system of the
// record.
func SetResourceReferenceSystem(doc *iso.Document, r ReferenceSystem) error {
	rss, err := ensureReferenceSystems(doc)
	if err != nil {
		return err
	}
	writeReferenceSystem(rss[0], r)
	return nil
}

// ReferenceSystems returns every reference system of the record.
func ReferenceSystems(doc *iso.Document) ([]ReferenceSystem, error) {
	rss, err := referenceSystems(doc)
	if err != nil {
		return nil, err
	}
	res := make([]ReferenceSystem, 0, len(rss))
	for _, rs := range rss {
		res = append(res, readReferenceSystem(rs))
	}
	return res, nil
}

// SetReferenceSystems replaces the reference systems of the record.
func SetReferenceSystems(doc *iso.Document, rs []ReferenceSystem) error {
	root, err := metadataRoot(doc)
	if err != nil {
		return err
	}
	elems := make([]*iso.Element, 0, len(rs))
	for _, r := range rs {
		e := iso.NewElement(gmd("MD_ReferenceSystem"))
		writeReferenceSystem(e, r)
		elems = append(elems, iso.NewElement(gmd("referenceSystemInfo"), e))
	}
	root.Replace(gmd("referenceSystemInfo"), elems)
	return nil
}
