package metadata

import (
	"github.com/JiscSD/csw-simple-metadata/iso"
)

// Operation is an operation offered by a service.
type Operation struct {
	Name     string `yaml:"name"`
	Platform string `yaml:"platform,omitempty"`
	URL      string `yaml:"url,omitempty"`
}

// Operations returns the operations of a service.
func Operations(doc *iso.Document) ([]Operation, error) {
	ident, err := identification(doc)
	if err != nil {
		return nil, err
	}
	var res []Operation
	for _, op := range variants(ident, srv("containsOperations"), srv("SV_OperationMetadata")) {
		res = append(res, Operation{
			Name:     Primary(op.Child(srv("operationName"))),
			Platform: codeValue(op.Find(srv("DCP"), srv("DCPList"))),
			URL:      op.Find(srv("connectPoint"), gmd("CI_OnlineResource"), gmd("linkage"), gmd("URL")).Value(),
		})
	}
	return res, nil
}

// SetOperations replaces the operations of a service.
func SetOperations(doc *iso.Document, ops []Operation) error {
	ident, err := identification(doc)
	if err != nil {
		return err
	}
	elems := make([]*iso.Element, 0, len(ops))
	for _, op := range ops {
		dcp := iso.NewText(srv("DCPList"), op.Platform)
		dcp.SetAttr(attrCodeList, codeListBase+"DCPList")
		dcp.SetAttr(attrCodeListValue, op.Platform)
		meta := iso.NewElement(srv("SV_OperationMetadata"),
			characterString(srv("operationName"), op.Name),
			iso.NewElement(srv("DCP"), dcp),
			iso.NewElement(srv("connectPoint"), iso.NewElement(gmd("CI_OnlineResource"),
				iso.NewElement(gmd("linkage"), iso.NewText(gmd("URL"), op.URL)))),
		)
		elems = append(elems, iso.NewElement(srv("containsOperations"), meta))
	}
	ident.Replace(srv("containsOperations"), elems)
	return nil
}
