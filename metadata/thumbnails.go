package metadata

import (
	"github.com/JiscSD/csw-simple-metadata/iso"
)

// Thumbnail is a graphic overview of the resource.
type Thumbnail struct {
	URL  string `yaml:"url"`
	Name string `yaml:"name,omitempty"`
	Type string `yaml:"type,omitempty"`
}

// Thumbnails returns the graphic overviews of the resource.
func Thumbnails(doc *iso.Document) ([]Thumbnail, error) {
	ident, err := identification(doc)
	if err != nil {
		return nil, err
	}
	var res []Thumbnail
	for _, g := range variants(ident, gmd("graphicOverview"), gmd("MD_BrowseGraphic")) {
		res = append(res, Thumbnail{
			URL:  Primary(g.Child(gmd("fileName"))),
			Name: Primary(g.Child(gmd("fileDescription"))),
			Type: Primary(g.Child(gmd("fileType"))),
		})
	}
	return res, nil
}

// SetThumbnails replaces the graphic overviews of the resource.
func SetThumbnails(doc *iso.Document, thumbnails []Thumbnail) error {
	ident, err := identification(doc)
	if err != nil {
		return err
	}
	elems := make([]*iso.Element, 0, len(thumbnails))
	for _, t := range thumbnails {
		g := iso.NewElement(gmd("MD_BrowseGraphic"), characterString(gmd("fileName"), t.URL))
		if t.Name != "" {
			g.Insert(characterString(gmd("fileDescription"), t.Name))
		}
		if t.Type != "" {
			g.Insert(characterString(gmd("fileType"), t.Type))
		}
		elems = append(elems, iso.NewElement(gmd("graphicOverview"), g))
	}
	ident.Replace(gmd("graphicOverview"), elems)
	return nil
}
