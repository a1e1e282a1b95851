package metadata

import (
	"github.com/JiscSD/csw-simple-metadata/iso"
)

// AssociationCrossReference is the association type of cross references.
const AssociationCrossReference = "crossReference"

// ResourceReference identifies the resource within a namespace.
type ResourceReference struct {
	Code      string `yaml:"code"`
	Codespace string `yaml:"codespace,omitempty"`
}

// OperatesOn returns the identifiers of the datasets a service operates on.
func OperatesOn(doc *iso.Document) ([]string, error) {
	ident, err := identification(doc)
	if err != nil {
		return nil, err
	}
	var res []string
	for _, o := range ident.ChildrenNamed(srv("operatesOn")) {
		ref := o.AttrValue(local("uuidref"))
		if ref == "" {
			ref = o.AttrValue(attrHref)
		}
		if ref != "" {
			res = append(res, ref)
		}
	}
	return res, nil
}

// SetOperatesOn replaces the dataset references of a service.
func SetOperatesOn(doc *iso.Document, refs []string) error {
	ident, err := identification(doc)
	if err != nil {
		return err
	}
	elems := make([]*iso.Element, 0, len(refs))
	for _, ref := range refs {
		o := iso.NewElement(srv("operatesOn"))
		o.SetAttr(local("uuidref"), ref)
		elems = append(elems, o)
	}
	ident.Replace(srv("operatesOn"), elems)
	return nil
}

func crossReferences(ident *iso.Element) []*iso.Element {
	var res []*iso.Element
	for _, a := range ident.ChildrenNamed(gmd("aggregationInfo")) {
		info := a.Child(gmd("MD_AggregateInformation"))
		if firstCode(info.Child(gmd("associationType"))) == AssociationCrossReference {
			res = append(res, a)
		}
	}
	return res
}

// CrossReference returns the identifiers of the resources the resource is
// cross referenced with.
func CrossReference(doc *iso.Document) ([]string, error) {
	ident, err := identification(doc)
	if err != nil {
		return nil, err
	}
	var res []string
	for _, a := range crossReferences(ident) {
		code := a.Find(gmd("MD_AggregateInformation"), gmd("aggregateDataSetIdentifier"),
			gmd("MD_Identifier"), gmd("code"))
		if v := Primary(code); v != "" {
			res = append(res, v)
		}
	}
	return res, nil
}

// SetCrossReference replaces the cross references of the resource. Other
// aggregation information is kept.
func SetCrossReference(doc *iso.Document, refs []string) error {
	ident, err := identification(doc)
	if err != nil {
		return err
	}
	for _, a := range crossReferences(ident) {
		ident.Remove(a)
	}
	for _, ref := range refs {
		ident.Insert(iso.NewElement(gmd("aggregationInfo"),
			iso.NewElement(gmd("MD_AggregateInformation"),
				iso.NewElement(gmd("aggregateDataSetIdentifier"),
					iso.NewElement(gmd("MD_Identifier"), characterString(gmd("code"), ref))),
				iso.NewElement(gmd("associationType"),
					codeElement("DS_AssociationTypeCode", AssociationCrossReference)),
			)))
	}
	return nil
}

// ResourceIdentifier returns the first identifier of the resource citation,
// or nil.
func ResourceIdentifier(doc *iso.Document) (*ResourceReference, error) {
	ident, err := identification(doc)
	if err != nil {
		return nil, err
	}
	id := ident.Find(gmd("citation"), gmd("CI_Citation"), gmd("identifier")).FirstChild()
	if id == nil {
		return nil, nil
	}
	return &ResourceReference{
		Code:      Primary(id.Child(gmd("code"))),
		Codespace: Primary(id.Child(gmd("codeSpace"))),
	}, nil
}

// SetResourceIdentifier overwrites the first identifier of the resource
// citation.
func SetResourceIdentifier(doc *iso.Document, ref ResourceReference) error {
	ident, err := identification(doc)
	if err != nil {
		return err
	}
	citation := ident.Ensure(gmd("citation"), gmd("CI_Citation"))
	id := iso.NewElement(gmd("RS_Identifier"), characterString(gmd("code"), ref.Code))
	if ref.Codespace != "" {
		id.Insert(characterString(gmd("codeSpace"), ref.Codespace))
	}
	citation.ReplaceChild(citation.Child(gmd("identifier")), iso.NewElement(gmd("identifier"), id))
	return nil
}
