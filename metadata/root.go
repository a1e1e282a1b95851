package metadata

import (
	"github.com/JiscSD/csw-simple-metadata/iso"
)

// Hierarchy level codes with a special meaning.
const (
	HierarchyLevelDataset = "dataset"
	HierarchyLevelService = "service"
	HierarchyLevelSeries  = "series"
)

// metadataRoot returns the gmd:MD_Metadata element of the document.
func metadataRoot(doc *iso.Document) (*iso.Element, error) {
	root := doc.Metadata()
	if root == nil {
		return nil, structureMissing("MD_Metadata")
	}
	return root, nil
}

// IsService reports whether the record describes a service.
func IsService(doc *iso.Document) bool {
	return firstCode(doc.Metadata().Child(gmd("hierarchyLevel"))) == HierarchyLevelService
}

// IsDataset reports whether the record describes anything but a service.
func IsDataset(doc *iso.Document) bool {
	return !IsService(doc)
}

// identification returns the identification element of the record: the
// first one matching the kind of resource (service or data identification),
// or the first one found otherwise. Records without identification
// information fail with ErrStructureMissing.
func identification(doc *iso.Document) (*iso.Element, error) {
	root, err := metadataRoot(doc)
	if err != nil {
		return nil, err
	}
	want := gmd("MD_DataIdentification")
	if IsService(doc) {
		want = srv("SV_ServiceIdentification")
	}
	var first *iso.Element
	for _, info := range root.ChildrenNamed(gmd("identificationInfo")) {
		payload := info.FirstChild()
		if payload == nil {
			continue
		}
		if payload.Name == want {
			return payload, nil
		}
		if first == nil {
			first = payload
		}
	}
	if first == nil {
		return nil, structureMissing("identificationInfo")
	}
	return first, nil
}

func isServiceIdentification(ident *iso.Element) bool {
	return ident.Is(srv("SV_ServiceIdentification"))
}

// distribution returns the gmd:MD_Distribution of the record, creating it
// when create is set.
func distribution(doc *iso.Document, create bool) (*iso.Element, error) {
	root, err := metadataRoot(doc)
	if err != nil {
		return nil, err
	}
	return lookup(root, create, gmd("distributionInfo"), gmd("MD_Distribution")), nil
}

func ensureDistribution(doc *iso.Document) (*iso.Element, error) {
	return distribution(doc, true)
}

// dataQuality returns the first gmd:DQ_DataQuality of the record, creating it
// when create is set.
func dataQuality(doc *iso.Document, create bool) (*iso.Element, error) {
	root, err := metadataRoot(doc)
	if err != nil {
		return nil, err
	}
	return lookup(root, create, gmd("dataQualityInfo"), gmd("DQ_DataQuality")), nil
}

func ensureDataQuality(doc *iso.Document) (*iso.Element, error) {
	return dataQuality(doc, true)
}

// referenceSystems returns the gmd:MD_ReferenceSystem elements of the
// record.
func referenceSystems(doc *iso.Document) ([]*iso.Element, error) {
	root, err := metadataRoot(doc)
	if err != nil {
		return nil, err
	}
	return variants(root, gmd("referenceSystemInfo"), gmd("MD_ReferenceSystem")), nil
}

// applicationSchemas returns the gmd:MD_ApplicationSchemaInformation elements
// of the record.
func applicationSchemas(doc *iso.Document) ([]*iso.Element, error) {
	root, err := metadataRoot(doc)
	if err != nil {
		return nil, err
	}
	return variants(root, gmd("applicationSchemaInfo"), gmd("MD_ApplicationSchemaInformation")), nil
}

// ensureReferenceSystems returns the reference systems of the record,
// creating an empty one when there is none.
func ensureReferenceSystems(doc *iso.Document) ([]*iso.Element, error) {
	rs, err := referenceSystems(doc)
	if err != nil || len(rs) > 0 {
		return rs, err
	}
	root, _ := metadataRoot(doc)
	return []*iso.Element{locateVariant(root, gmd("referenceSystemInfo"), gmd("MD_ReferenceSystem"))}, nil
}

// ensureApplicationSchemas returns the application schema information of
// the record, creating an empty one when there is none.
func ensureApplicationSchemas(doc *iso.Document) ([]*iso.Element, error) {
	as, err := applicationSchemas(doc)
	if err != nil || len(as) > 0 {
		return as, err
	}
	root, _ := metadataRoot(doc)
	return []*iso.Element{
		locateVariant(root, gmd("applicationSchemaInfo"), gmd("MD_ApplicationSchemaInformation")),
	}, nil
}
