package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var datasetConstraints = &Constraints{
	AccessConstraints:          "otherRestrictions",
	UseConstraints:             "license",
	OtherConstraints:           "Åpne data",
	EnglishOtherConstraints:    "Open data",
	OtherConstraintsLink:       "http://creativecommons.org/licenses/by/4.0/",
	OtherConstraintsLinkText:   "CC BY 4.0",
	OtherConstraintsAccess:     "no restrictions",
	OtherConstraintsAccessLink: "http://inspire.ec.europa.eu/metadata-codelist/LimitationsOnPublicAccess/noLimitations",
	SecurityConstraints:        "unclassified",
	SecurityConstraintsNote:    "Ugradert",
	UseLimitations:             "Ingen begrensninger",
	EnglishUseLimitations:      "No limitations",
}

func TestResourceConstraints(t *testing.T) {
	doc := loadDocument(t, "dataset.xml")

	c, err := ResourceConstraints(doc)

	require.NoError(t, err)
	assert.Equal(t, datasetConstraints, c)
}

func TestSetResourceConstraints_RoundTrip(t *testing.T) {
	doc := New(HierarchyLevelDataset)

	require.NoError(t, SetResourceConstraints(doc, *datasetConstraints))
	doc = reparse(t, doc)

	c, err := ResourceConstraints(doc)
	require.NoError(t, err)
	assert.Equal(t, datasetConstraints, c)
	assert.Len(t, mustIdentification(t, doc).ChildrenNamed(constraintWrapper), 3)
}

func TestSetResourceConstraints_VariantsAreIndependent(t *testing.T) {
	doc := loadDocument(t, "dataset.xml")

	require.NoError(t, SetResourceConstraints(doc, Constraints{SecurityConstraints: "restricted"}))

	c, err := ResourceConstraints(doc)
	require.NoError(t, err)
	want := *datasetConstraints
	want.SecurityConstraints = "restricted"
	assert.Equal(t, &want, c)
	assert.Len(t, mustIdentification(t, doc).ChildrenNamed(constraintWrapper), 3)

	// A record without security constraints gets a new variant next to the
	// legal one.
	doc = New(HierarchyLevelDataset)
	require.NoError(t, SetResourceConstraints(doc, Constraints{AccessConstraints: "restricted"}))
	require.NoError(t, SetResourceConstraints(doc, Constraints{SecurityConstraints: "confidential"}))
	ident := mustIdentification(t, doc)
	assert.Len(t, variants(ident, constraintWrapper, legalConstraints), 1)
	assert.Len(t, variants(ident, constraintWrapper, securityConstraints), 1)
	c, err = ResourceConstraints(doc)
	require.NoError(t, err)
	assert.Equal(t, "restricted", c.AccessConstraints)
	assert.Equal(t, "confidential", c.SecurityConstraints)
}

func TestSetResourceConstraints_OtherConstraintsArePositional(t *testing.T) {
	doc := New(HierarchyLevelDataset)

	require.NoError(t, SetResourceConstraints(doc, Constraints{
		OtherConstraintsLink:     "http://data.norge.no/nlod/no/2.0",
		OtherConstraintsLinkText: "NLOD",
	}))

	legal := variants(mustIdentification(t, doc), constraintWrapper, legalConstraints)[0]
	others := legal.ChildrenNamed(gmd("otherConstraints"))
	require.Len(t, others, 2)
	assert.Equal(t, "missing", others[0].AttrValue(attrNilReason))
	assert.Equal(t, "http://data.norge.no/nlod/no/2.0", anchorLink(others[1]))

	c, err := ResourceConstraints(doc)
	require.NoError(t, err)
	assert.Equal(t, &Constraints{
		OtherConstraintsLink:     "http://data.norge.no/nlod/no/2.0",
		OtherConstraintsLinkText: "NLOD",
	}, c)
}

func TestSetResourceConstraints_KeepsTrailingOtherConstraints(t *testing.T) {
	doc := loadDocument(t, "dataset.xml")

	require.NoError(t, SetResourceConstraints(doc, Constraints{OtherConstraints: "Lukkede data"}))

	c, err := ResourceConstraints(doc)
	require.NoError(t, err)
	assert.Equal(t, "Lukkede data", c.OtherConstraints)
	assert.Equal(t, "Open data", c.EnglishOtherConstraints)
	assert.Equal(t, datasetConstraints.OtherConstraintsLink, c.OtherConstraintsLink)
	assert.Equal(t, datasetConstraints.OtherConstraintsAccess, c.OtherConstraintsAccess)
	assert.Equal(t, datasetConstraints.AccessConstraints, c.AccessConstraints)
}

func TestSetResourceConstraints_KeepsEarlierOtherConstraints(t *testing.T) {
	doc := loadDocument(t, "dataset.xml")

	require.NoError(t, SetResourceConstraints(doc, Constraints{OtherConstraintsAccess: "restricted"}))
	doc = reparse(t, doc)

	c, err := ResourceConstraints(doc)
	require.NoError(t, err)
	want := *datasetConstraints
	want.OtherConstraintsAccess = "restricted"
	want.OtherConstraintsAccessLink = ""
	assert.Equal(t, &want, c)

	legal := variants(mustIdentification(t, doc), constraintWrapper, legalConstraints)[0]
	for _, o := range legal.ChildrenNamed(gmd("otherConstraints")) {
		assert.False(t, o.HasAttr(attrNilReason))
	}
}

func TestSetResourceConstraints_EnglishOnly(t *testing.T) {
	doc := loadDocument(t, "dataset.xml")

	require.NoError(t, SetResourceConstraints(doc, Constraints{
		EnglishUseLimitations:   "None",
		EnglishOtherConstraints: "Free data",
	}))

	c, err := ResourceConstraints(doc)
	require.NoError(t, err)
	assert.Equal(t, "Ingen begrensninger", c.UseLimitations)
	assert.Equal(t, "None", c.EnglishUseLimitations)
	assert.Equal(t, "Åpne data", c.OtherConstraints)
	assert.Equal(t, "Free data", c.EnglishOtherConstraints)
	assert.Equal(t, datasetConstraints.OtherConstraintsLink, c.OtherConstraintsLink)
}

func TestSetResourceConstraints_NewUseLimitation(t *testing.T) {
	doc := New(HierarchyLevelDataset)

	require.NoError(t, SetResourceConstraints(doc, Constraints{EnglishUseLimitations: "None"}))

	c, err := ResourceConstraints(doc)
	require.NoError(t, err)
	assert.Equal(t, &Constraints{EnglishUseLimitations: "None"}, c)
}
