package metadata

import (
	"encoding/xml"
	"strconv"

	"github.com/JiscSD/csw-simple-metadata/iso"
)

// codeProperty is a single code list value held by an identification
// property, e.g. gmd:status/gmd:MD_ProgressCode.
type codeProperty struct {
	path []xml.Name
	kind string
}

var maintenancePath = []xml.Name{
	gmd("resourceMaintenance"), gmd("MD_MaintenanceInformation"), gmd("maintenanceAndUpdateFrequency"),
}

var (
	statusCode      = codeProperty{[]xml.Name{gmd("status")}, "MD_ProgressCode"}
	spatialReprCode = codeProperty{[]xml.Name{gmd("spatialRepresentationType")}, "MD_SpatialRepresentationTypeCode"}
	maintenanceCode = codeProperty{maintenancePath, "MD_MaintenanceFrequencyCode"}
)

func (p codeProperty) get(doc *iso.Document) (string, error) {
	ident, err := identification(doc)
	if err != nil {
		return "", err
	}
	return codeValue(ident.Find(p.path...).Child(gmd(p.kind))), nil
}

func (p codeProperty) set(doc *iso.Document, v string) error {
	ident, err := identification(doc)
	if err != nil {
		return err
	}
	setCode(ident.Ensure(p.path...), p.kind, v)
	return nil
}

// Status returns the progress code of the resource, e.g. "onGoing".
func Status(doc *iso.Document) (string, error) { return statusCode.get(doc) }

// SetStatus sets the progress code of the resource.
func SetStatus(doc *iso.Document, v string) error { return statusCode.set(doc, v) }

// SpatialRepresentation returns the spatial representation type of the
// resource, e.g. "vector".
func SpatialRepresentation(doc *iso.Document) (string, error) { return spatialReprCode.get(doc) }

// SetSpatialRepresentation sets the spatial representation type of the resource.
func SetSpatialRepresentation(doc *iso.Document, v string) error { return spatialReprCode.set(doc, v) }

// MaintenanceFrequency returns the maintenance and update frequency of the
// resource.
func MaintenanceFrequency(doc *iso.Document) (string, error) { return maintenanceCode.get(doc) }

// SetMaintenanceFrequency sets the maintenance frequency code of the resource.
func SetMaintenanceFrequency(doc *iso.Document, v string) error { return maintenanceCode.set(doc, v) }

// Language returns the language of the record, e.g. "nor".
func Language(doc *iso.Document) (string, error) {
	root, err := metadataRoot(doc)
	if err != nil {
		return "", err
	}
	lang := root.Child(gmd("language"))
	if code := lang.Child(gmd("LanguageCode")); code != nil {
		return codeValue(code), nil
	}
	return Primary(lang), nil
}

// SetLanguage sets the language code of the record.
func SetLanguage(doc *iso.Document, v string) error {
	root, err := metadataRoot(doc)
	if err != nil {
		return err
	}
	code := iso.NewText(gmd("LanguageCode"), v)
	code.SetAttr(attrCodeList, "http://www.loc.gov/standards/iso639-2/")
	code.SetAttr(attrCodeListValue, v)
	root.Replace(gmd("language"), []*iso.Element{iso.NewElement(gmd("language"), code)})
	return nil
}

// TopicCategories returns the ISO topic categories of the resource.
func TopicCategories(doc *iso.Document) ([]string, error) {
	ident, err := identification(doc)
	if err != nil {
		return nil, err
	}
	var res []string
	for _, t := range ident.ChildrenNamed(gmd("topicCategory")) {
		if v := t.Child(gmd("MD_TopicCategoryCode")).Value(); v != "" {
			res = append(res, v)
		}
	}
	return res, nil
}

// SetTopicCategories replaces the topic categories of the resource.
func SetTopicCategories(doc *iso.Document, categories []string) error {
	ident, err := identification(doc)
	if err != nil {
		return err
	}
	elems := make([]*iso.Element, 0, len(categories))
	for _, c := range categories {
		elems = append(elems, iso.NewElement(gmd("topicCategory"), iso.NewText(gmd("MD_TopicCategoryCode"), c)))
	}
	ident.Replace(gmd("topicCategory"), elems)
	return nil
}

// ServiceType returns the generic name of the service type, e.g. "view".
func ServiceType(doc *iso.Document) (string, error) {
	ident, err := identification(doc)
	if err != nil {
		return "", err
	}
	return ident.Find(srv("serviceType"), gco("LocalName")).Value(), nil
}

// SetServiceType sets the service type of a service resource.
func SetServiceType(doc *iso.Document, v string) error {
	ident, err := identification(doc)
	if err != nil {
		return err
	}
	ident.Ensure(srv("serviceType"), gco("LocalName")).SetValue(v)
	return nil
}

// ResolutionScale returns the denominator of the equivalent scale of the
// resource. Resources whose resolution is given as a distance yield the empty
// string.
func ResolutionScale(doc *iso.Document) (string, error) {
	ident, err := identification(doc)
	if err != nil {
		return "", err
	}
	for _, r := range variants(ident, gmd("spatialResolution"), gmd("MD_Resolution")) {
		d := r.Find(gmd("equivalentScale"), gmd("MD_RepresentativeFraction"), gmd("denominator"), gco("Integer"))
		if d != nil {
			return d.Value(), nil
		}
	}
	return "", nil
}

// SetResolutionScale replaces the spatial resolution of the resource with an
// equivalent scale. The denominator must be an integer.
func SetResolutionScale(doc *iso.Document, denominator string) error {
	ident, err := identification(doc)
	if err != nil {
		return err
	}
	if _, err := strconv.Atoi(denominator); err != nil {
		return invalidValue("resolution scale", denominator)
	}
	ident.Replace(gmd("spatialResolution"), []*iso.Element{
		iso.NewElement(gmd("spatialResolution"), iso.NewElement(gmd("MD_Resolution"),
			iso.NewElement(gmd("equivalentScale"), iso.NewElement(gmd("MD_RepresentativeFraction"),
				iso.NewElement(gmd("denominator"), iso.NewText(gco("Integer"), denominator)))))),
	})
	return nil
}
