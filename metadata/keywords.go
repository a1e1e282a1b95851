package metadata

import (
	"github.com/JiscSD/csw-simple-metadata/iso"
)

// Keyword type codes found in the gmd:MD_KeywordTypeCode code list, plus the
// extensions in common use among Norwegian catalogues.
const (
	KeywordTypePlace        = "place"
	KeywordTypeTheme        = "theme"
	KeywordTypeDiscipline   = "discipline"
	KeywordTypeStratum      = "stratum"
	KeywordTypeTemporal     = "temporal"
	KeywordTypeConcept      = "concept"
	KeywordTypeServiceType  = "serviceType"
	KeywordTypeSpatialScope = "spatialScope"
)

// Keyword is a single descriptive keyword together with the classification
// of the group it belongs to.
type Keyword struct {
	Keyword        string `yaml:"keyword"`
	EnglishKeyword string `yaml:"english_keyword,omitempty"`
	KeywordLink    string `yaml:"keyword_link,omitempty"`
	Type           string `yaml:"type,omitempty"`
	Thesaurus      string `yaml:"thesaurus,omitempty"`
	ThesaurusLink  string `yaml:"thesaurus_link,omitempty"`
}

// KeywordGroup is the content of one gmd:MD_Keywords container.
type KeywordGroup struct {
	Keywords      []Keyword
	Type          string
	Thesaurus     string
	ThesaurusLink string
}

func (g *KeywordGroup) hasThesaurus() bool {
	return g.Thesaurus != "" || g.ThesaurusLink != ""
}

// accepts reports whether k belongs to the group. Keywords with a thesaurus
// are grouped by thesaurus title or link, the others by type.
func (g *KeywordGroup) accepts(k Keyword) bool {
	if k.Thesaurus != "" || k.ThesaurusLink != "" {
		if !g.hasThesaurus() {
			return false
		}
		return (k.Thesaurus != "" && k.Thesaurus == g.Thesaurus) ||
			(k.ThesaurusLink != "" && k.ThesaurusLink == g.ThesaurusLink)
	}
	return !g.hasThesaurus() && g.Type == k.Type
}

// GroupKeywords sorts keywords into groups in order of first appearance.
func GroupKeywords(keywords []Keyword) []*KeywordGroup {
	var groups []*KeywordGroup
next:
	for _, k := range keywords {
		for _, g := range groups {
			if g.accepts(k) {
				g.Keywords = append(g.Keywords, k)
				if g.Type == "" {
					g.Type = k.Type
				}
				continue next
			}
		}
		groups = append(groups, &KeywordGroup{
			Keywords:      []Keyword{k},
			Type:          k.Type,
			Thesaurus:     k.Thesaurus,
			ThesaurusLink: k.ThesaurusLink,
		})
	}
	return groups
}

func keywordContainers(ident *iso.Element) []*iso.Element {
	return variants(ident, gmd("descriptiveKeywords"), gmd("MD_Keywords"))
}

func readKeywordGroup(mk *iso.Element) *KeywordGroup {
	title := mk.Find(gmd("thesaurusName"), gmd("CI_Citation"), gmd("title"))
	g := &KeywordGroup{
		Type:          firstCode(mk.Child(gmd("type"))),
		Thesaurus:     Primary(title),
		ThesaurusLink: anchorLink(title),
	}
	for _, kw := range mk.ChildrenNamed(gmd("keyword")) {
		g.Keywords = append(g.Keywords, Keyword{
			Keyword:        Primary(kw),
			EnglishKeyword: Alternate(kw, LocaleLinkEng),
			KeywordLink:    anchorLink(kw),
			Type:           g.Type,
			Thesaurus:      g.Thesaurus,
			ThesaurusLink:  g.ThesaurusLink,
		})
	}
	return g
}

// KeywordGroups returns the keyword containers of the resource as they are
// stored.
func KeywordGroups(doc *iso.Document) ([]*KeywordGroup, error) {
	ident, err := identification(doc)
	if err != nil {
		return nil, err
	}
	var groups []*KeywordGroup
	for _, mk := range keywordContainers(ident) {
		groups = append(groups, readKeywordGroup(mk))
	}
	return groups, nil
}

// Keywords returns every descriptive keyword of the resource.
func Keywords(doc *iso.Document) ([]Keyword, error) {
	groups, err := KeywordGroups(doc)
	if err != nil {
		return nil, err
	}
	var res []Keyword
	for _, g := range groups {
		res = append(res, g.Keywords...)
	}
	return res, nil
}

// SetKeywords replaces all the keyword containers of the resource with the
// groups computed from keywords. Duplicates are stored as given. The citation
// of a known thesaurus is carried over so its dates are kept.
func SetKeywords(doc *iso.Document, keywords []Keyword) error {
	ident, err := identification(doc)
	if err != nil {
		return err
	}
	old := keywordContainers(ident)
	var elems []*iso.Element
	for _, g := range GroupKeywords(keywords) {
		elems = append(elems, iso.NewElement(gmd("descriptiveKeywords"), keywordContainer(g, old)))
	}
	ident.Replace(gmd("descriptiveKeywords"), elems)
	return nil
}

func keywordContainer(g *KeywordGroup, old []*iso.Element) *iso.Element {
	mk := iso.NewElement(gmd("MD_Keywords"))
	for _, k := range g.Keywords {
		kw := anchorOrString(gmd("keyword"), k.Keyword, k.KeywordLink)
		if k.EnglishKeyword != "" {
			SetAlternate(kw, LocaleLinkEng, k.EnglishKeyword)
		}
		mk.Append(kw)
	}
	if g.Type != "" {
		mk.Append(iso.NewElement(gmd("type"), codeElement("MD_KeywordTypeCode", g.Type)))
	}
	if g.hasThesaurus() {
		mk.Append(iso.NewElement(gmd("thesaurusName"), thesaurusCitation(g, old)))
	}
	return mk
}

func thesaurusCitation(g *KeywordGroup, old []*iso.Element) *iso.Element {
	for _, mk := range old {
		prev := readKeywordGroup(mk)
		if !prev.hasThesaurus() || !g.accepts(Keyword{Thesaurus: prev.Thesaurus, ThesaurusLink: prev.ThesaurusLink}) {
			continue
		}
		c := mk.Find(gmd("thesaurusName"), gmd("CI_Citation")).Clone()
		c.ReplaceChild(c.Child(gmd("title")), anchorOrString(gmd("title"), g.Thesaurus, g.ThesaurusLink))
		return c
	}
	return iso.NewElement(gmd("CI_Citation"),
		anchorOrString(gmd("title"), g.Thesaurus, g.ThesaurusLink),
		nilProperty(gmd("date"), "unknown"),
	)
}
