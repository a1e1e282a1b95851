package iso

import "encoding/xml"

// Namespaces used by ISO19139 catalogue records.
const (
	NamespaceGMD   = "http://www.isotc211.org/2005/gmd"
	NamespaceGCO   = "http://www.isotc211.org/2005/gco"
	NamespaceGMX   = "http://www.isotc211.org/2005/gmx"
	NamespaceSRV   = "http://www.isotc211.org/2005/srv"
	NamespaceGML   = "http://www.opengis.net/gml/3.2"
	NamespaceXLink = "http://www.w3.org/1999/xlink"
	NamespaceXSI   = "http://www.w3.org/2001/XMLSchema-instance"
	NamespaceCSW   = "http://www.opengis.net/cat/csw/2.0.2"
	NamespaceXML   = "http://www.w3.org/XML/1998/namespace"
)

// DefaultPrefixes maps namespaces to the prefixes used when rendering a
// document that did not declare them itself.
var DefaultPrefixes = map[string]string{
	NamespaceGMD:   "gmd",
	NamespaceGCO:   "gco",
	NamespaceGMX:   "gmx",
	NamespaceSRV:   "srv",
	NamespaceGML:   "gml",
	NamespaceXLink: "xlink",
	NamespaceXSI:   "xsi",
	NamespaceCSW:   "csw",
	NamespaceXML:   "xml",
}

// GMD and the helpers below qualify a local name with an ISO19139 namespace.
func GMD(local string) xml.Name   { return xml.Name{Space: NamespaceGMD, Local: local} }
func GCO(local string) xml.Name   { return xml.Name{Space: NamespaceGCO, Local: local} }
func GMX(local string) xml.Name   { return xml.Name{Space: NamespaceGMX, Local: local} }
func SRV(local string) xml.Name   { return xml.Name{Space: NamespaceSRV, Local: local} }
func GML(local string) xml.Name   { return xml.Name{Space: NamespaceGML, Local: local} }
func XLink(local string) xml.Name { return xml.Name{Space: NamespaceXLink, Local: local} }
func XSI(local string) xml.Name   { return xml.Name{Space: NamespaceXSI, Local: local} }
func CSW(local string) xml.Name   { return xml.Name{Space: NamespaceCSW, Local: local} }

// Local returns a name without namespace, as used by most ISO19139
// attributes, e.g. codeListValue or uuidref.
func Local(local string) xml.Name { return xml.Name{Local: local} }
