package metadata

import (
	"encoding/xml"
	"strings"

	"github.com/JiscSD/csw-simple-metadata/iso"
)

// Locale tags referring to the English translation of a text property. Both
// spellings are accepted on lookup, LocaleLinkEng is written.
const (
	LocaleEng     = "ENG"
	LocaleLinkEng = "#ENG"
)

const freeTextType = "gmd:PT_FreeText_PropertyType"

// canonicalLocale maps the accepted spellings of a locale tag to the one we
// write, e.g. "ENG" and "#ENG" both become "#ENG".
func canonicalLocale(tag string) string {
	return "#" + strings.TrimPrefix(tag, "#")
}

// Primary returns the primary string of a text property, i.e. the
// gco:CharacterString or gmx:Anchor it holds. It returns the empty string
// when the property is nil or empty.
func Primary(prop *iso.Element) string {
	if prop == nil {
		return ""
	}
	if cs := prop.Child(gco("CharacterString")); cs != nil {
		return cs.Value()
	}
	return prop.Child(gmx("Anchor")).Value()
}

// Alternate returns the translation of a text property for the given locale.
// Plain text properties have no translations and yield the empty string.
func Alternate(prop *iso.Element, locale string) string {
	if lcs := alternateEntry(prop, locale); lcs != nil {
		return lcs.Value()
	}
	return ""
}

func alternateEntry(prop *iso.Element, locale string) *iso.Element {
	ft := prop.Child(gmd("PT_FreeText"))
	if ft == nil {
		return nil
	}
	want := canonicalLocale(locale)
	for _, group := range ft.ChildrenNamed(gmd("textGroup")) {
		lcs := group.Child(gmd("LocalisedCharacterString"))
		if lcs != nil && canonicalLocale(lcs.AttrValue(local("locale"))) == want {
			return lcs
		}
	}
	return nil
}

// SetPrimary replaces the primary string of a text property. Existing
// translations are kept, and a plain property stays plain.
func SetPrimary(prop *iso.Element, value string) {
	prop.RemoveAttr(attrNilReason)
	if cs := prop.Child(gco("CharacterString")); cs != nil {
		cs.SetValue(value)
		return
	}
	if a := prop.Child(gmx("Anchor")); a != nil {
		a.SetValue(value)
		return
	}
	prop.Text = ""
	prop.Children = append([]*iso.Element{iso.NewText(gco("CharacterString"), value)}, prop.Children...)
}

// SetAlternate sets the translation of a text property for the given locale.
// The property is turned into a free text property if needed; its primary
// string is never modified.
func SetAlternate(prop *iso.Element, locale, value string) {
	if lcs := alternateEntry(prop, locale); lcs != nil {
		lcs.SetValue(value)
		return
	}
	ft := prop.Child(gmd("PT_FreeText"))
	if ft == nil {
		if prop.Child(gco("CharacterString")) == nil && prop.Child(gmx("Anchor")) == nil {
			SetPrimary(prop, "")
		}
		prop.RemoveAttr(attrNilReason)
		prop.SetAttr(attrType, freeTextType)
		ft = iso.NewElement(gmd("PT_FreeText"))
		prop.Append(ft)
	}
	lcs := iso.NewText(gmd("LocalisedCharacterString"), value)
	lcs.SetAttr(local("locale"), canonicalLocale(locale))
	ft.Append(iso.NewElement(gmd("textGroup"), lcs))
}

// localizedString returns a new free text property with an English
// translation, or a plain one when the translation is empty.
func localizedString(name xml.Name, value, english string) *iso.Element {
	prop := characterString(name, value)
	if english != "" {
		SetAlternate(prop, LocaleLinkEng, english)
	}
	return prop
}
