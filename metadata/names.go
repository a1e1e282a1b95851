package metadata

import (
	"encoding/xml"

	"github.com/JiscSD/csw-simple-metadata/iso"
)

var (
	gmd   = iso.GMD
	gco   = iso.GCO
	gmx   = iso.GMX
	srv   = iso.SRV
	gml   = iso.GML
	xlink = iso.XLink
	local = iso.Local
)

var (
	attrCodeList      = local("codeList")
	attrCodeListValue = local("codeListValue")
	attrNilReason     = gco("nilReason")
	attrHref          = xlink("href")
	attrType          = iso.XSI("type")
)

const codeListBase = "http://standards.iso.org/iso/19139/resources/gmxCodelists.xml#"

// codeElement returns a code list value element, e.g. gmd:MD_ScopeCode.
func codeElement(kind, value string) *iso.Element {
	e := iso.NewText(gmd(kind), value)
	e.SetAttr(attrCodeList, codeListBase+kind)
	e.SetAttr(attrCodeListValue, value)
	return e
}

// codeValue returns the value of a code list element. Some producers only
// fill in the element text.
func codeValue(e *iso.Element) string {
	if e == nil {
		return ""
	}
	if v := e.AttrValue(attrCodeListValue); v != "" {
		return v
	}
	return e.Value()
}

// firstCode returns the value of the code held by a property element.
func firstCode(prop *iso.Element) string {
	return codeValue(prop.FirstChild())
}

// setCode replaces the content of a property element with a code.
func setCode(prop *iso.Element, kind, value string) {
	prop.RemoveAttr(attrNilReason)
	prop.SetValue("")
	prop.Append(codeElement(kind, value))
}

// lookup navigates a path, creating the missing steps when create is set.
func lookup(e *iso.Element, create bool, path ...xml.Name) *iso.Element {
	if create {
		return e.Ensure(path...)
	}
	return e.Find(path...)
}

// characterString returns a property element holding a plain string.
func characterString(name xml.Name, value string) *iso.Element {
	return iso.NewElement(name, iso.NewText(gco("CharacterString"), value))
}

// anchorOrString returns a property element holding a gmx:Anchor when a link
// is given and a plain string otherwise.
func anchorOrString(name xml.Name, value, link string) *iso.Element {
	if link == "" {
		return characterString(name, value)
	}
	a := iso.NewText(gmx("Anchor"), value)
	a.SetAttr(attrHref, link)
	return iso.NewElement(name, a)
}

// anchorLink returns the link of a gmx:Anchor held by a property.
func anchorLink(prop *iso.Element) string {
	return prop.Child(gmx("Anchor")).AttrValue(attrHref)
}

// nilProperty returns an empty property element flagged with a nil reason.
func nilProperty(name xml.Name, reason string) *iso.Element {
	e := iso.NewElement(name)
	e.SetAttr(attrNilReason, reason)
	return e
}
