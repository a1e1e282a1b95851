package metadata

import (
	"time"

	"github.com/JiscSD/csw-simple-metadata/iso"
)

// Citation date types.
const (
	DateTypeCreation    = "creation"
	DateTypePublication = "publication"
	DateTypeRevision    = "revision"
)

const dateLayout = "2006-01-02"

var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
}

// now is replaced by tests.
var now = time.Now

// dateValue returns the raw text of a date property, whether it holds a
// gco:Date or a gco:DateTime.
func dateValue(prop *iso.Element) string {
	if d := prop.Child(gco("Date")); d != nil {
		return d.Value()
	}
	return prop.Child(gco("DateTime")).Value()
}

// parseDateProperty parses a gco:DateTime as a point in time and a gco:Date
// as a calendar date. Unparseable values yield nil.
func parseDateProperty(prop *iso.Element) *time.Time {
	if d := prop.Child(gco("Date")); d != nil {
		t, err := time.Parse(dateLayout, d.Value())
		if err != nil {
			return nil
		}
		return &t
	}
	dt := prop.Child(gco("DateTime"))
	if dt == nil {
		return nil
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, dt.Value()); err == nil {
			return &t
		}
	}
	return nil
}

func dateProperty(t time.Time) *iso.Element {
	return iso.NewElement(gmd("date"), iso.NewText(gco("Date"), t.Format(dateLayout)))
}

// citationDates returns the gmd:date properties of the resource citation
// whose date type is typ.
func citationDates(citation *iso.Element, typ string) []*iso.Element {
	var res []*iso.Element
	for _, d := range citation.ChildrenNamed(gmd("date")) {
		if firstCode(d.Find(gmd("CI_Date"), gmd("dateType"))) == typ {
			res = append(res, d)
		}
	}
	return res
}

func citationDate(doc *iso.Document, typ string) (*time.Time, error) {
	ident, err := identification(doc)
	if err != nil {
		return nil, err
	}
	ds := citationDates(ident.Find(gmd("citation"), gmd("CI_Citation")), typ)
	if len(ds) == 0 {
		return nil, nil
	}
	return parseDateProperty(ds[0].Find(gmd("CI_Date"), gmd("date"))), nil
}

// setCitationDate writes the date of the given type as a calendar date. A nil
// date removes the entries of that type.
func setCitationDate(doc *iso.Document, typ string, t *time.Time) error {
	ident, err := identification(doc)
	if err != nil {
		return err
	}
	citation := ident.Ensure(gmd("citation"), gmd("CI_Citation"))
	existing := citationDates(citation, typ)
	if t == nil {
		for _, d := range existing {
			citation.Remove(d)
		}
		return nil
	}
	if len(existing) > 0 {
		ciDate := existing[0].Child(gmd("CI_Date"))
		ciDate.ReplaceChild(ciDate.Child(gmd("date")), dateProperty(*t))
		return nil
	}
	citation.Insert(iso.NewElement(gmd("date"), iso.NewElement(gmd("CI_Date"),
		dateProperty(*t),
		iso.NewElement(gmd("dateType"), codeElement("CI_DateTypeCode", typ)),
	)))
	return nil
}

// DateCreated returns the creation date of the resource, or nil.
func DateCreated(doc *iso.Document) (*time.Time, error) {
	return citationDate(doc, DateTypeCreation)
}

// SetDateCreated sets the creation date of the resource. A nil date removes it.
func SetDateCreated(doc *iso.Document, t *time.Time) error {
	return setCitationDate(doc, DateTypeCreation, t)
}

// DatePublished returns the publication date of the resource, or nil.
func DatePublished(doc *iso.Document) (*time.Time, error) {
	return citationDate(doc, DateTypePublication)
}

// SetDatePublished sets the publication date of the resource. A nil date removes it.
func SetDatePublished(doc *iso.Document, t *time.Time) error {
	return setCitationDate(doc, DateTypePublication, t)
}

// DateUpdated returns the revision date of the resource, or nil.
func DateUpdated(doc *iso.Document) (*time.Time, error) {
	return citationDate(doc, DateTypeRevision)
}

// SetDateUpdated sets the revision date of the resource. A nil date removes it.
func SetDateUpdated(doc *iso.Document, t *time.Time) error {
	return setCitationDate(doc, DateTypeRevision, t)
}

// DateMetadataUpdated returns the date stamp of the record, or nil.
func DateMetadataUpdated(doc *iso.Document) (*time.Time, error) {
	root, err := metadataRoot(doc)
	if err != nil {
		return nil, err
	}
	return parseDateProperty(root.Child(gmd("dateStamp"))), nil
}

// SetDateMetadataUpdated sets the date stamp of the record. The schema
// requires one, so a nil date stamps the current date.
func SetDateMetadataUpdated(doc *iso.Document, t *time.Time) error {
	root, err := metadataRoot(doc)
	if err != nil {
		return err
	}
	if t == nil {
		n := now()
		t = &n
	}
	stamp := root.Ensure(gmd("dateStamp"))
	stamp.SetValue("")
	stamp.Append(iso.NewText(gco("Date"), t.Format(dateLayout)))
	return nil
}
