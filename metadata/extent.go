package metadata

import (
	"encoding/xml"
	"strings"

	"github.com/google/uuid"

	"github.com/JiscSD/csw-simple-metadata/iso"
)

// BoundingBox is a geographic bounding box in decimal degrees.
type BoundingBox struct {
	WestBoundLongitude float64 `yaml:"west"`
	EastBoundLongitude float64 `yaml:"east"`
	SouthBoundLatitude float64 `yaml:"south"`
	NorthBoundLatitude float64 `yaml:"north"`
}

// TimePeriod is the temporal validity of a resource. Positions are either
// literal dates or "now"; an empty position is unknown.
type TimePeriod struct {
	From string `yaml:"from,omitempty"`
	To   string `yaml:"to,omitempty"`
}

// PositionNow is the indeterminate position meaning the present time.
const PositionNow = "now"

var (
	exExtent    = gmd("EX_Extent")
	geographic  = gmd("geographicElement")
	geoBBox     = gmd("EX_GeographicBoundingBox")
	description = gmd("description")
	timePeriod  = gml("TimePeriod")
)

// extentName returns the name of the extent property of an identification:
// services carry their own srv:extent.
func extentName(ident *iso.Element) xml.Name {
	if isServiceIdentification(ident) {
		return srv("extent")
	}
	return gmd("extent")
}

func extents(ident *iso.Element) []*iso.Element {
	return variants(ident, extentName(ident), exExtent)
}

func boundingBoxOf(ext *iso.Element) *iso.Element {
	for _, g := range ext.ChildrenNamed(geographic) {
		if b := g.Child(geoBBox); b != nil {
			return b
		}
	}
	return nil
}

// consolidateExtent merges all the extents of the resource into one and
// returns it. The first extent holding a geographic element hosts the
// result. Other extents give up their content except for bounding boxes.
// Their descriptions are appended to the description of the host since an
// extent holds only one.
func consolidateExtent(ident *iso.Element) *iso.Element {
	name := extentName(ident)
	props := ident.ChildrenNamed(name)
	if len(props) == 0 {
		ext := iso.NewElement(exExtent)
		ident.Insert(iso.NewElement(name, ext))
		return ext
	}
	host := props[0]
	for _, p := range props {
		if p.Find(exExtent, geographic) != nil {
			host = p
			break
		}
	}
	ext := host.Ensure(exExtent)
	for _, p := range props {
		if p == host {
			continue
		}
		var moved []*iso.Element
		if pe := p.Child(exExtent); pe != nil {
			moved = pe.Children
		}
		for _, c := range moved {
			switch {
			case c.Name == geographic && c.Child(geoBBox) != nil:
				continue
			case c.Name == description && ext.Child(description) != nil:
				mergeDescription(ext.Child(description), c)
				continue
			}
			ext.Insert(c)
		}
		ident.Remove(p)
	}
	return ext
}

// mergeDescription appends the texts of src to dst, one per line, unless dst
// already holds them.
func mergeDescription(dst, src *iso.Element) {
	if v := Primary(src); v != "" {
		if cur := Primary(dst); !strings.Contains(cur, v) {
			SetPrimary(dst, joinLines(cur, v))
		}
	}
	if v := Alternate(src, LocaleLinkEng); v != "" {
		if cur := Alternate(dst, LocaleLinkEng); !strings.Contains(cur, v) {
			SetAlternate(dst, LocaleLinkEng, joinLines(cur, v))
		}
	}
}

func joinLines(a, b string) string {
	if a == "" {
		return b
	}
	return a + "\n" + b
}

func decimalChild(e *iso.Element, name string) float64 {
	f, err := ParseDecimal(e.Find(gmd(name), gco("Decimal")).Value())
	if err != nil {
		return 0
	}
	return f
}

// ResourceBoundingBox returns the bounding box of the first extent holding
// one, or nil.
func ResourceBoundingBox(doc *iso.Document) (*BoundingBox, error) {
	ident, err := identification(doc)
	if err != nil {
		return nil, err
	}
	for _, ext := range extents(ident) {
		if b := boundingBoxOf(ext); b != nil {
			return &BoundingBox{
				WestBoundLongitude: decimalChild(b, "westBoundLongitude"),
				EastBoundLongitude: decimalChild(b, "eastBoundLongitude"),
				SouthBoundLatitude: decimalChild(b, "southBoundLatitude"),
				NorthBoundLatitude: decimalChild(b, "northBoundLatitude"),
			}, nil
		}
	}
	return nil, nil
}

// SetResourceBoundingBox consolidates the extents of the resource and sets
// the edges of its bounding box.
func SetResourceBoundingBox(doc *iso.Document, bb BoundingBox) error {
	ident, err := identification(doc)
	if err != nil {
		return err
	}
	ext := consolidateExtent(ident)
	b := boundingBoxOf(ext)
	if b == nil {
		b = iso.NewElement(geoBBox)
		ext.Insert(iso.NewElement(geographic, b))
	}
	edges := []struct {
		name  string
		value float64
	}{
		{"westBoundLongitude", bb.WestBoundLongitude},
		{"eastBoundLongitude", bb.EastBoundLongitude},
		{"southBoundLatitude", bb.SouthBoundLatitude},
		{"northBoundLatitude", bb.NorthBoundLatitude},
	}
	for _, edge := range edges {
		prop := b.Ensure(gmd(edge.name))
		prop.SetValue("")
		prop.Append(iso.NewText(gco("Decimal"), FormatDecimal(edge.value)))
	}
	return nil
}

func timePeriodOf(ext *iso.Element) *iso.Element {
	for _, t := range ext.ChildrenNamed(gmd("temporalElement")) {
		if tp := t.Find(gmd("EX_TemporalExtent"), gmd("extent"), timePeriod); tp != nil {
			return tp
		}
	}
	return nil
}

func readPosition(e *iso.Element) string {
	if v := e.Value(); v != "" {
		return v
	}
	if e.AttrValue(local("indeterminatePosition")) == PositionNow {
		return PositionNow
	}
	return ""
}

func writePosition(e *iso.Element, v string) {
	e.RemoveAttr(local("indeterminatePosition"))
	switch v {
	case "":
		e.SetValue("")
		e.SetAttr(local("indeterminatePosition"), "unknown")
	case PositionNow:
		e.SetValue("")
		e.SetAttr(local("indeterminatePosition"), PositionNow)
	default:
		e.SetValue(v)
	}
}

// ValidTimePeriod returns the temporal validity of the resource. It is nil
// when the resource has no extent at all and empty when its extents have no
// time period.
func ValidTimePeriod(doc *iso.Document) (*TimePeriod, error) {
	ident, err := identification(doc)
	if err != nil {
		return nil, err
	}
	exts := extents(ident)
	if len(exts) == 0 {
		return nil, nil
	}
	for _, ext := range exts {
		if tp := timePeriodOf(ext); tp != nil {
			return &TimePeriod{
				From: readPosition(tp.Child(gml("beginPosition"))),
				To:   readPosition(tp.Child(gml("endPosition"))),
			}, nil
		}
	}
	return &TimePeriod{}, nil
}

// SetValidTimePeriod writes the time period into the consolidated extent of
// the resource.
func SetValidTimePeriod(doc *iso.Document, p TimePeriod) error {
	ident, err := identification(doc)
	if err != nil {
		return err
	}
	ext := consolidateExtent(ident)
	tp := timePeriodOf(ext)
	if tp == nil {
		tp = iso.NewElement(timePeriod)
		tp.SetAttr(gml("id"), "tp-"+uuid.New().String())
		ext.Insert(iso.NewElement(gmd("temporalElement"),
			iso.NewElement(gmd("EX_TemporalExtent"), iso.NewElement(gmd("extent"), tp))))
	}
	writePosition(tp.Ensure(gml("beginPosition")), p.From)
	writePosition(tp.Ensure(gml("endPosition")), p.To)
	return nil
}

// ExtentDescription returns the description of the first extent carrying
// one.
func ExtentDescription(doc *iso.Document) (string, error) {
	ident, err := identification(doc)
	if err != nil {
		return "", err
	}
	for _, ext := range extents(ident) {
		if d := ext.Child(description); d != nil {
			return Primary(d), nil
		}
	}
	return "", nil
}

// EnglishExtentDescription returns the English description of the first
// extent carrying one.
func EnglishExtentDescription(doc *iso.Document) (string, error) {
	ident, err := identification(doc)
	if err != nil {
		return "", err
	}
	for _, ext := range extents(ident) {
		if d := ext.Child(description); d != nil {
			return Alternate(d, LocaleLinkEng), nil
		}
	}
	return "", nil
}

// SetExtentDescription sets the description of the consolidated extent.
func SetExtentDescription(doc *iso.Document, v string) error {
	ident, err := identification(doc)
	if err != nil {
		return err
	}
	SetPrimary(consolidateExtent(ident).Ensure(description), v)
	return nil
}

// SetEnglishExtentDescription sets the English description of the
// consolidated extent.
func SetEnglishExtentDescription(doc *iso.Document, v string) error {
	ident, err := identification(doc)
	if err != nil {
		return err
	}
	SetAlternate(consolidateExtent(ident).Ensure(description), LocaleLinkEng, v)
	return nil
}
