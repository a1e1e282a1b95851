package metadata

import (
	"github.com/google/uuid"

	"github.com/JiscSD/csw-simple-metadata/iso"
)

// DefaultLanguage is the language of new records.
const DefaultLanguage = "nor"

// New returns a skeleton record for a resource of the given hierarchy level:
// a fresh file identifier, language, date stamp and an identification with an
// empty citation. Services get a service identification, anything else a
// data identification.
func New(hierarchyLevel string) *iso.Document {
	if hierarchyLevel == "" {
		hierarchyLevel = HierarchyLevelDataset
	}
	payload := iso.NewElement(gmd("MD_DataIdentification"))
	if hierarchyLevel == HierarchyLevelService {
		payload = iso.NewElement(srv("SV_ServiceIdentification"))
	}
	payload.Insert(iso.NewElement(gmd("citation"), iso.NewElement(gmd("CI_Citation"),
		characterString(gmd("title"), ""),
	)))
	payload.Insert(characterString(gmd("abstract"), ""))

	root := iso.NewElement(gmd("MD_Metadata"),
		characterString(gmd("fileIdentifier"), uuid.New().String()),
		iso.NewElement(gmd("hierarchyLevel"), codeElement("MD_ScopeCode", hierarchyLevel)),
		iso.NewElement(gmd("identificationInfo"), payload),
	)
	doc := iso.NewDocument(root)
	// Neither call can fail once the root exists.
	_ = SetLanguage(doc, DefaultLanguage)
	_ = SetDateMetadataUpdated(doc, nil)
	return doc
}
