package metadata

import (
	"github.com/JiscSD/csw-simple-metadata/iso"
)

// Languages written into new application schema information.
const (
	SchemaLanguageUML     = "UML"
	ConstraintLanguageOCL = "OCL"
)

// ApplicationSchema returns the name of the application schema of the
// record.
func ApplicationSchema(doc *iso.Document) (string, error) {
	as, err := applicationSchemas(doc)
	if err != nil || len(as) == 0 {
		return "", err
	}
	return Primary(as[0].Find(gmd("name"), gmd("CI_Citation"), gmd("title"))), nil
}

// SetApplicationSchema replaces the application schema information of the
// record with a schema of the given name, published today. The empty name
// removes the information altogether.
func SetApplicationSchema(doc *iso.Document, name string) error {
	root, err := metadataRoot(doc)
	if err != nil {
		return err
	}
	root.RemoveAll(gmd("applicationSchemaInfo"))
	if name == "" {
		return nil
	}
	as, err := ensureApplicationSchemas(doc)
	if err != nil {
		return err
	}
	info := as[0]
	info.Insert(iso.NewElement(gmd("name"), iso.NewElement(gmd("CI_Citation"),
		characterString(gmd("title"), name),
		iso.NewElement(gmd("date"), iso.NewElement(gmd("CI_Date"),
			dateProperty(now()),
			iso.NewElement(gmd("dateType"), codeElement("CI_DateTypeCode", DateTypePublication)),
		)),
	)))
	info.Insert(characterString(gmd("schemaLanguage"), SchemaLanguageUML))
	info.Insert(characterString(gmd("constraintLanguage"), ConstraintLanguageOCL))
	return nil
}
