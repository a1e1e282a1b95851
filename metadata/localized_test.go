package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JiscSD/csw-simple-metadata/iso"
)

func TestLocalizedText_Read(t *testing.T) {
	doc := loadDocument(t, "dataset.xml")
	ident := mustIdentification(t, doc)

	title := ident.Find(gmd("citation"), gmd("CI_Citation"), gmd("title"))
	assert.Equal(t, "Administrative enheter", Primary(title))
	assert.Equal(t, "Administrative units", Alternate(title, LocaleLinkEng))
	assert.Equal(t, "Administrative units", Alternate(title, LocaleEng))

	// The abstract uses the other spelling of the locale.
	abstract := ident.Child(gmd("abstract"))
	assert.Equal(t, "Municipalities and counties of Norway.", Alternate(abstract, LocaleLinkEng))
	assert.Equal(t, "Municipalities and counties of Norway.", Alternate(abstract, LocaleEng))

	purpose := ident.Child(gmd("purpose"))
	assert.Equal(t, "Grunnlag for forvaltning.", Primary(purpose))
	assert.Equal(t, "", Alternate(purpose, LocaleLinkEng))

	assert.Equal(t, "", Primary(nil))
	assert.Equal(t, "", Alternate(nil, LocaleEng))
	assert.Equal(t, "", Alternate(title, "#DEU"))
}

func TestLocalizedText_SetAlternate(t *testing.T) {
	tests := map[string]struct {
		prop    *iso.Element
		primary string
	}{
		"plain": {
			prop:    characterString(gmd("purpose"), "Formål"),
			primary: "Formål",
		},
		"empty": {
			prop:    iso.NewElement(gmd("purpose")),
			primary: "",
		},
		"anchor": {
			prop:    anchorOrString(gmd("keyword"), "Adresser", "http://inspire.ec.europa.eu/theme/ad"),
			primary: "Adresser",
		},
		"free text": {
			prop:    localizedString(gmd("purpose"), "Formål", "Purpose"),
			primary: "Formål",
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			SetAlternate(tc.prop, LocaleEng, "Translated")

			assert.Equal(t, "Translated", Alternate(tc.prop, LocaleLinkEng))
			assert.Equal(t, tc.primary, Primary(tc.prop))
			assert.Equal(t, freeTextType, tc.prop.AttrValue(attrType))
			groups := tc.prop.Child(gmd("PT_FreeText")).ChildrenNamed(gmd("textGroup"))
			require.Len(t, groups, 1)
			lcs := groups[0].Child(gmd("LocalisedCharacterString"))
			assert.Equal(t, LocaleLinkEng, lcs.AttrValue(local("locale")))
		})
	}
}

func TestLocalizedText_SetAlternateAppends(t *testing.T) {
	prop := localizedString(gmd("abstract"), "Sammendrag", "Abstract")

	SetAlternate(prop, "#DEU", "Zusammenfassung")

	assert.Equal(t, "Abstract", Alternate(prop, LocaleEng))
	assert.Equal(t, "Zusammenfassung", Alternate(prop, "DEU"))
	assert.Len(t, prop.Child(gmd("PT_FreeText")).ChildrenNamed(gmd("textGroup")), 2)
}

func TestLocalizedText_SetPrimary(t *testing.T) {
	prop := localizedString(gmd("title"), "Tittel", "Title")

	SetPrimary(prop, "Ny tittel")

	assert.Equal(t, "Ny tittel", Primary(prop))
	assert.Equal(t, "Title", Alternate(prop, LocaleLinkEng))

	plain := characterString(gmd("title"), "Tittel")
	SetPrimary(plain, "Ny tittel")
	assert.Equal(t, "Ny tittel", Primary(plain))
	assert.Nil(t, plain.Child(gmd("PT_FreeText")))
	assert.False(t, plain.HasAttr(attrType))

	missing := nilProperty(gmd("title"), "missing")
	SetPrimary(missing, "Tittel")
	assert.Equal(t, "Tittel", Primary(missing))
	assert.False(t, missing.HasAttr(attrNilReason))
}

func TestLocalizedText_SurvivesRendering(t *testing.T) {
	doc := loadDocument(t, "dataset.xml")
	require.NoError(t, SetEnglishPurpose(doc, "Basis for administration."))

	doc = reparse(t, doc)

	purpose, err := Purpose(doc)
	require.NoError(t, err)
	english, err := EnglishPurpose(doc)
	require.NoError(t, err)
	assert.Equal(t, "Grunnlag for forvaltning.", purpose)
	assert.Equal(t, "Basis for administration.", english)
}
