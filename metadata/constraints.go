package metadata

import (
	"encoding/xml"

	"github.com/JiscSD/csw-simple-metadata/iso"
)

// Constraints is the merged view over the security, legal and usage
// constraints of a resource.
type Constraints struct {
	// Legal constraints (gmd:MD_RestrictionCode values).
	AccessConstraints string `yaml:"access_constraints,omitempty"`
	UseConstraints    string `yaml:"use_constraints,omitempty"`

	// The other constraints of the legal constraints are positional: the
	// first entry is free text, the second a link with a label and the
	// third the access restriction, optionally linked.
	OtherConstraints           string `yaml:"other_constraints,omitempty"`
	EnglishOtherConstraints    string `yaml:"english_other_constraints,omitempty"`
	OtherConstraintsLink       string `yaml:"other_constraints_link,omitempty"`
	OtherConstraintsLinkText   string `yaml:"other_constraints_link_text,omitempty"`
	OtherConstraintsAccess     string `yaml:"other_constraints_access,omitempty"`
	OtherConstraintsAccessLink string `yaml:"other_constraints_access_link,omitempty"`

	// Security constraints.
	SecurityConstraints     string `yaml:"security_constraints,omitempty"`
	SecurityConstraintsNote string `yaml:"security_constraints_note,omitempty"`

	// Usage limitations.
	UseLimitations        string `yaml:"use_limitations,omitempty"`
	EnglishUseLimitations string `yaml:"english_use_limitations,omitempty"`
}

var (
	constraintWrapper   = gmd("resourceConstraints")
	securityConstraints = gmd("MD_SecurityConstraints")
	legalConstraints    = gmd("MD_LegalConstraints")
	usageConstraints    = gmd("MD_Constraints")
)

const (
	otherConstraintsText = iota
	otherConstraintsLink
	otherConstraintsAccess
	otherConstraintsSlots
)

func firstNonEmpty(dst *string, v string) {
	if *dst == "" {
		*dst = v
	}
}

// ResourceConstraints scans every constraint of the resource and merges
// them. The first non-empty value of each field wins.
func ResourceConstraints(doc *iso.Document) (*Constraints, error) {
	ident, err := identification(doc)
	if err != nil {
		return nil, err
	}
	c := &Constraints{}
	for _, w := range ident.ChildrenNamed(constraintWrapper) {
		v := w.FirstChild()
		if v == nil {
			continue
		}
		if lim := v.Child(gmd("useLimitation")); lim != nil {
			firstNonEmpty(&c.UseLimitations, Primary(lim))
			firstNonEmpty(&c.EnglishUseLimitations, Alternate(lim, LocaleLinkEng))
		}
		switch v.Name {
		case securityConstraints:
			firstNonEmpty(&c.SecurityConstraints, firstCode(v.Child(gmd("classification"))))
			firstNonEmpty(&c.SecurityConstraintsNote, Primary(v.Child(gmd("userNote"))))
		case legalConstraints:
			firstNonEmpty(&c.AccessConstraints, firstCode(v.Child(gmd("accessConstraints"))))
			firstNonEmpty(&c.UseConstraints, firstCode(v.Child(gmd("useConstraints"))))
			readOtherConstraints(c, v.ChildrenNamed(gmd("otherConstraints")))
		}
	}
	return c, nil
}

func readOtherConstraints(c *Constraints, others []*iso.Element) {
	for i, o := range others {
		switch i {
		case otherConstraintsText:
			firstNonEmpty(&c.OtherConstraints, Primary(o))
			firstNonEmpty(&c.EnglishOtherConstraints, Alternate(o, LocaleLinkEng))
		case otherConstraintsLink:
			firstNonEmpty(&c.OtherConstraintsLink, anchorLink(o))
			firstNonEmpty(&c.OtherConstraintsLinkText, Primary(o))
		case otherConstraintsAccess:
			firstNonEmpty(&c.OtherConstraintsAccess, Primary(o))
			firstNonEmpty(&c.OtherConstraintsAccessLink, anchorLink(o))
		}
	}
}

func (c *Constraints) hasSecurity() bool {
	return c.SecurityConstraints != "" || c.SecurityConstraintsNote != ""
}

func (c *Constraints) hasLegal() bool {
	return c.AccessConstraints != "" || c.UseConstraints != "" || c.otherConstraintsCount() > 0
}

func (c *Constraints) hasUsage() bool {
	return c.UseLimitations != "" || c.EnglishUseLimitations != ""
}

// otherConstraintsCount returns the number of positional entries needed to
// hold the other constraints.
func (c *Constraints) otherConstraintsCount() int {
	switch {
	case c.OtherConstraintsAccess != "" || c.OtherConstraintsAccessLink != "":
		return otherConstraintsAccess + 1
	case c.OtherConstraintsLink != "" || c.OtherConstraintsLinkText != "":
		return otherConstraintsLink + 1
	case c.OtherConstraints != "" || c.EnglishOtherConstraints != "":
		return otherConstraintsText + 1
	}
	return 0
}

// SetResourceConstraints writes the non-empty parts of c. Each kind of
// constraint is located on its own, so writing a security classification
// leaves existing legal constraints alone and vice versa.
func SetResourceConstraints(doc *iso.Document, c Constraints) error {
	ident, err := identification(doc)
	if err != nil {
		return err
	}
	if c.hasSecurity() {
		sec := locateVariant(ident, constraintWrapper, securityConstraints)
		if c.SecurityConstraints != "" {
			setCode(sec.Ensure(gmd("classification")), "MD_ClassificationCode", c.SecurityConstraints)
		}
		if c.SecurityConstraintsNote != "" {
			SetPrimary(sec.Ensure(gmd("userNote")), c.SecurityConstraintsNote)
		}
	}
	if c.hasLegal() {
		legal := locateVariant(ident, constraintWrapper, legalConstraints)
		if c.AccessConstraints != "" {
			legal.Replace(gmd("accessConstraints"), []*iso.Element{
				iso.NewElement(gmd("accessConstraints"), codeElement("MD_RestrictionCode", c.AccessConstraints)),
			})
		}
		if c.UseConstraints != "" {
			legal.Replace(gmd("useConstraints"), []*iso.Element{
				iso.NewElement(gmd("useConstraints"), codeElement("MD_RestrictionCode", c.UseConstraints)),
			})
		}
		if n := c.otherConstraintsCount(); n > 0 {
			writeOtherConstraints(legal, c, n)
		}
	}
	if c.hasUsage() {
		usage := locateVariant(ident, constraintWrapper, usageConstraints)
		lim := usage.Child(gmd("useLimitation"))
		if lim == nil {
			lim = usage.Insert(characterString(gmd("useLimitation"), c.UseLimitations))
		} else if c.UseLimitations != "" {
			SetPrimary(lim, c.UseLimitations)
		}
		if c.EnglishUseLimitations != "" {
			SetAlternate(lim, LocaleLinkEng, c.EnglishUseLimitations)
		}
	}
	return nil
}

// writeOtherConstraints updates the first n positional entries and keeps the
// entries after them. A slot without values keeps its existing entry and is
// only filled with a placeholder when the record has none.
func writeOtherConstraints(legal *iso.Element, c Constraints, n int) {
	name := gmd("otherConstraints")
	existing := legal.ChildrenNamed(name)
	entries := make([]*iso.Element, 0, otherConstraintsSlots)
	for i := 0; i < n; i++ {
		var old *iso.Element
		if i < len(existing) {
			old = existing[i]
		}
		var e *iso.Element
		switch i {
		case otherConstraintsText:
			if c.OtherConstraints != "" || c.EnglishOtherConstraints != "" {
				e = otherConstraintsTextEntry(name, old, c)
			}
		case otherConstraintsLink:
			if c.OtherConstraintsLink != "" || c.OtherConstraintsLinkText != "" {
				e = anchorOrString(name, c.OtherConstraintsLinkText, c.OtherConstraintsLink)
			}
		case otherConstraintsAccess:
			e = anchorOrString(name, c.OtherConstraintsAccess, c.OtherConstraintsAccessLink)
		}
		switch {
		case e != nil:
		case old != nil:
			e = old
		default:
			e = nilProperty(name, "missing")
		}
		entries = append(entries, e)
	}
	if len(existing) > n {
		entries = append(entries, existing[n:]...)
	}
	legal.Replace(name, entries)
}

// otherConstraintsTextEntry updates the localized text entry in place so that
// setting one language keeps the other.
func otherConstraintsTextEntry(name xml.Name, old *iso.Element, c Constraints) *iso.Element {
	if old == nil || old.HasAttr(attrNilReason) || old.Child(gmx("Anchor")) != nil {
		return localizedString(name, c.OtherConstraints, c.EnglishOtherConstraints)
	}
	if c.OtherConstraints != "" {
		SetPrimary(old, c.OtherConstraints)
	}
	if c.EnglishOtherConstraints != "" {
		SetAlternate(old, LocaleLinkEng, c.EnglishOtherConstraints)
	}
	return old
}
