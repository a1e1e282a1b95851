package metadata

import (
	"encoding/xml"

	"github.com/JiscSD/csw-simple-metadata/iso"
)

// property locates a text property of the record. Missing steps below the
// owning container are created when create is set, otherwise a nil element
// may be returned.
type property func(doc *iso.Document, create bool) (*iso.Element, error)

func identificationProperty(path ...xml.Name) property {
	return func(doc *iso.Document, create bool) (*iso.Element, error) {
		ident, err := identification(doc)
		if err != nil {
			return nil, err
		}
		return lookup(ident, create, path...), nil
	}
}

var (
	titleProperty          = identificationProperty(gmd("citation"), gmd("CI_Citation"), gmd("title"))
	abstractProperty       = identificationProperty(gmd("abstract"))
	purposeProperty        = identificationProperty(gmd("purpose"))
	supplementalProperty   = identificationProperty(gmd("supplementalInformation"))
	specificUsageProperty  = identificationProperty(gmd("resourceSpecificUsage"), gmd("MD_Usage"), gmd("specificUsage"))
	processHistoryProperty = dataQualityProperty(gmd("lineage"), gmd("LI_Lineage"), gmd("statement"))
	hierarchyLevelNameProp = rootProperty(gmd("hierarchyLevelName"))
	metadataUUIDProperty   = rootProperty(gmd("fileIdentifier"))
)

func dataQualityProperty(path ...xml.Name) property {
	return func(doc *iso.Document, create bool) (*iso.Element, error) {
		dq, err := dataQuality(doc, create)
		if err != nil {
			return nil, err
		}
		return lookup(dq, create, path...), nil
	}
}

func rootProperty(path ...xml.Name) property {
	return func(doc *iso.Document, create bool) (*iso.Element, error) {
		root, err := metadataRoot(doc)
		if err != nil {
			return nil, err
		}
		return lookup(root, create, path...), nil
	}
}

func (p property) get(doc *iso.Document) (string, error) {
	prop, err := p(doc, false)
	if err != nil {
		return "", err
	}
	return Primary(prop), nil
}

func (p property) set(doc *iso.Document, value string) error {
	prop, err := p(doc, true)
	if err != nil {
		return err
	}
	SetPrimary(prop, value)
	return nil
}

func (p property) getEnglish(doc *iso.Document) (string, error) {
	prop, err := p(doc, false)
	if err != nil {
		return "", err
	}
	return Alternate(prop, LocaleLinkEng), nil
}

func (p property) setEnglish(doc *iso.Document, value string) error {
	prop, err := p(doc, true)
	if err != nil {
		return err
	}
	SetAlternate(prop, LocaleLinkEng, value)
	return nil
}

// Title returns the title of the resource.
func Title(doc *iso.Document) (string, error) {
	return titleProperty.get(doc)
}

// SetTitle sets the title of the resource.
func SetTitle(doc *iso.Document, v string) error {
	return titleProperty.set(doc, v)
}

// EnglishTitle returns the English title of the resource.
func EnglishTitle(doc *iso.Document) (string, error) {
	return titleProperty.getEnglish(doc)
}

// SetEnglishTitle sets the English title of the resource.
func SetEnglishTitle(doc *iso.Document, v string) error {
	return titleProperty.setEnglish(doc, v)
}

// Abstract returns the abstract of the resource.
func Abstract(doc *iso.Document) (string, error) {
	return abstractProperty.get(doc)
}

// SetAbstract sets the abstract of the resource.
func SetAbstract(doc *iso.Document, v string) error {
	return abstractProperty.set(doc, v)
}

// EnglishAbstract returns the English abstract of the resource.
func EnglishAbstract(doc *iso.Document) (string, error) {
	return abstractProperty.getEnglish(doc)
}

// SetEnglishAbstract sets the English abstract of the resource.
func SetEnglishAbstract(doc *iso.Document, v string) error {
	return abstractProperty.setEnglish(doc, v)
}

// Purpose returns the purpose of the resource.
func Purpose(doc *iso.Document) (string, error) {
	return purposeProperty.get(doc)
}

// SetPurpose sets the purpose of the resource.
func SetPurpose(doc *iso.Document, v string) error {
	return purposeProperty.set(doc, v)
}

// EnglishPurpose returns the English purpose of the resource.
func EnglishPurpose(doc *iso.Document) (string, error) {
	return purposeProperty.getEnglish(doc)
}

// SetEnglishPurpose sets the English purpose of the resource.
func SetEnglishPurpose(doc *iso.Document, v string) error {
	return purposeProperty.setEnglish(doc, v)
}

// SupplementalDescription returns the supplemental information of the resource.
func SupplementalDescription(doc *iso.Document) (string, error) {
	return supplementalProperty.get(doc)
}

// SetSupplementalDescription sets the supplemental information of the resource.
func SetSupplementalDescription(doc *iso.Document, v string) error {
	return supplementalProperty.set(doc, v)
}

// EnglishSupplementalDescription returns the English supplemental information.
func EnglishSupplementalDescription(doc *iso.Document) (string, error) {
	return supplementalProperty.getEnglish(doc)
}

// SetEnglishSupplementalDescription sets the English supplemental information.
func SetEnglishSupplementalDescription(doc *iso.Document, v string) error {
	return supplementalProperty.setEnglish(doc, v)
}

// SpecificUsage returns the first specific usage of the resource.
func SpecificUsage(doc *iso.Document) (string, error) {
	return specificUsageProperty.get(doc)
}

// SetSpecificUsage sets the first specific usage of the resource.
func SetSpecificUsage(doc *iso.Document, v string) error {
	return specificUsageProperty.set(doc, v)
}

// EnglishSpecificUsage returns the English text of the first specific usage.
func EnglishSpecificUsage(doc *iso.Document) (string, error) {
	return specificUsageProperty.getEnglish(doc)
}

// SetEnglishSpecificUsage sets the English text of the first specific usage.
func SetEnglishSpecificUsage(doc *iso.Document, v string) error {
	return specificUsageProperty.setEnglish(doc, v)
}

// ProcessHistory returns the lineage statement of the data quality information.
// It does not require identification information.
func ProcessHistory(doc *iso.Document) (string, error) {
	return processHistoryProperty.get(doc)
}

// SetProcessHistory sets the lineage statement of the data quality information.
func SetProcessHistory(doc *iso.Document, v string) error {
	return processHistoryProperty.set(doc, v)
}

// EnglishProcessHistory returns the English lineage statement.
func EnglishProcessHistory(doc *iso.Document) (string, error) {
	return processHistoryProperty.getEnglish(doc)
}

// SetEnglishProcessHistory sets the English lineage statement.
func SetEnglishProcessHistory(doc *iso.Document, v string) error {
	return processHistoryProperty.setEnglish(doc, v)
}

// MetadataUUID returns the file identifier of the record.
func MetadataUUID(doc *iso.Document) (string, error) {
	return metadataUUIDProperty.get(doc)
}

// SetMetadataUUID sets the file identifier of the record.
func SetMetadataUUID(doc *iso.Document, v string) error {
	return metadataUUIDProperty.set(doc, v)
}

// HierarchyLevel returns the scope code of the record, e.g. "dataset" or
// "service". It is empty when absent.
func HierarchyLevel(doc *iso.Document) (string, error) {
	root, err := metadataRoot(doc)
	if err != nil {
		return "", err
	}
	return firstCode(root.Child(gmd("hierarchyLevel"))), nil
}

// SetHierarchyLevel overwrites the first scope code of the record, creating
// it when absent.
func SetHierarchyLevel(doc *iso.Document, v string) error {
	root, err := metadataRoot(doc)
	if err != nil {
		return err
	}
	prop := root.Child(gmd("hierarchyLevel"))
	if prop == nil {
		prop = root.Insert(iso.NewElement(gmd("hierarchyLevel")))
	}
	if code := prop.Child(gmd("MD_ScopeCode")); code != nil {
		code.SetAttr(attrCodeListValue, v)
		code.SetValue(v)
		return nil
	}
	setCode(prop, "MD_ScopeCode", v)
	return nil
}

// HierarchyLevelName returns the first hierarchy level name of the record.
func HierarchyLevelName(doc *iso.Document) (string, error) {
	return hierarchyLevelNameProp.get(doc)
}

// SetHierarchyLevelName sets the first hierarchy level name of the record.
func SetHierarchyLevelName(doc *iso.Document, v string) error {
	return hierarchyLevelNameProp.set(doc, v)
}
