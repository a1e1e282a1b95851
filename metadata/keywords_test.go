package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	gemet       = "GEMET - INSPIRE themes, version 1.0"
	dok         = "Nasjonal tematisk inndeling (DOK-kategori)"
	scopeLink   = "http://inspire.ec.europa.eu/metadata-codelist/SpatialScope"
	samferdsel  = "Samferdselsdata"
	inspireAddr = "http://inspire.ec.europa.eu/theme/ad"
)

// mixedKeywords spans thesaurus keyed, type keyed and unclassified
// keywords, deliberately out of group order.
var mixedKeywords = []Keyword{
	{Keyword: "Adresser", EnglishKeyword: "Addresses", KeywordLink: inspireAddr, Thesaurus: gemet},
	{Keyword: "Norge", Type: KeywordTypePlace},
	{Keyword: "Basis geodata", Thesaurus: dok},
	{Keyword: "Bygninger", Thesaurus: gemet},
	{Keyword: "Forvaltning", Type: KeywordTypeTheme},
	{Keyword: "Nasjonal", Thesaurus: "Spatial scope", ThesaurusLink: scopeLink},
	{Keyword: "infoMapAccessService", Type: KeywordTypeServiceType},
	{Keyword: "Kartlegging", Type: KeywordTypeTheme},
	{Keyword: "Matrikkel", Type: KeywordTypeConcept},
	{Keyword: "Veg", Thesaurus: samferdsel},
	{Keyword: "Eiendom"},
	{Keyword: "Grenser"},
}

func TestGroupKeywords(t *testing.T) {
	groups := GroupKeywords(mixedKeywords)

	var counts []int
	for _, g := range groups {
		counts = append(counts, len(g.Keywords))
	}
	assert.Equal(t, []int{2, 1, 1, 2, 1, 1, 1, 1, 2}, counts)
	assert.Equal(t, gemet, groups[0].Thesaurus)
	assert.Equal(t, KeywordTypePlace, groups[1].Type)
	assert.Equal(t, dok, groups[2].Thesaurus)
	assert.Equal(t, KeywordTypeTheme, groups[3].Type)
	assert.Equal(t, scopeLink, groups[4].ThesaurusLink)
	assert.Equal(t, KeywordTypeServiceType, groups[5].Type)
	assert.Equal(t, KeywordTypeConcept, groups[6].Type)
	assert.Equal(t, samferdsel, groups[7].Thesaurus)
	assert.Equal(t, "", groups[8].Type)
	assert.False(t, groups[8].hasThesaurus())
}

func TestGroupKeywords_ThesaurusLink(t *testing.T) {
	groups := GroupKeywords([]Keyword{
		{Keyword: "Regional", Thesaurus: "Spatial scope", ThesaurusLink: scopeLink},
		{Keyword: "Lokal", Thesaurus: "Romlig omfang", ThesaurusLink: scopeLink},
		{Keyword: "Annet", Thesaurus: "Romlig omfang"},
	})

	require.Len(t, groups, 2)
	assert.Len(t, groups[0].Keywords, 2)
	assert.Len(t, groups[1].Keywords, 1)
}

func TestKeywords_Read(t *testing.T) {
	doc := loadDocument(t, "dataset.xml")

	keywords, err := Keywords(doc)
	require.NoError(t, err)

	assert.Equal(t, []Keyword{
		{Keyword: "Forvaltning", Type: KeywordTypeTheme},
		{Keyword: "Administrative enheter", KeywordLink: "http://inspire.ec.europa.eu/theme/au", Thesaurus: gemet},
	}, keywords)
}

func TestSetKeywords_RoundTrip(t *testing.T) {
	doc := New(HierarchyLevelDataset)

	require.NoError(t, SetKeywords(doc, mixedKeywords))
	doc = reparse(t, doc)

	groups, err := KeywordGroups(doc)
	require.NoError(t, err)
	var counts []int
	for _, g := range groups {
		counts = append(counts, len(g.Keywords))
	}
	assert.Equal(t, []int{2, 1, 1, 2, 1, 1, 1, 1, 2}, counts)
	assert.Equal(t, gemet, groups[0].Thesaurus)
	assert.Equal(t, KeywordTypePlace, groups[1].Type)
	assert.Equal(t, scopeLink, groups[4].ThesaurusLink)

	keywords, err := Keywords(doc)
	require.NoError(t, err)
	assert.ElementsMatch(t, mixedKeywords, keywords)
	assert.Equal(t, "Addresses", keywords[0].EnglishKeyword)
	assert.Equal(t, inspireAddr, keywords[0].KeywordLink)

	// Writing back what was read regroups to the same containers.
	require.NoError(t, SetKeywords(doc, keywords))
	again, err := KeywordGroups(doc)
	require.NoError(t, err)
	assert.Len(t, again, 9)
}

func TestSetKeywords_KeepsThesaurusCitation(t *testing.T) {
	doc := loadDocument(t, "dataset.xml")

	require.NoError(t, SetKeywords(doc, []Keyword{
		{Keyword: "Administrative enheter", Thesaurus: gemet},
		{Keyword: "Kommuner", Thesaurus: gemet},
	}))

	ident := mustIdentification(t, doc)
	containers := keywordContainers(ident)
	require.Len(t, containers, 1)
	citation := containers[0].Find(gmd("thesaurusName"), gmd("CI_Citation"))
	assert.Equal(t, "2008-06-01", citation.Find(gmd("date"), gmd("CI_Date"), gmd("date"), gco("Date")).Value())
	assert.Equal(t, gemet, Primary(citation.Child(gmd("title"))))
}

func TestSetKeywords_StoresDuplicates(t *testing.T) {
	doc := New(HierarchyLevelDataset)
	keywords := []Keyword{
		{Keyword: "Forvaltning", Type: KeywordTypeTheme},
		{Keyword: "Forvaltning", Type: KeywordTypeTheme},
	}

	require.NoError(t, SetKeywords(doc, keywords))

	read, err := Keywords(doc)
	require.NoError(t, err)
	assert.Len(t, read, 2)
}

func TestSetKeywords_PreservesPosition(t *testing.T) {
	doc := loadDocument(t, "dataset.xml")
	ident := mustIdentification(t, doc)
	before := childNames(ident)

	require.NoError(t, SetKeywords(doc, []Keyword{{Keyword: "Grenser"}}))

	after := childNames(ident)
	assert.Len(t, after, len(before)-1)
	assert.Equal(t, "graphicOverview", after[6])
	assert.Equal(t, "descriptiveKeywords", after[7])
	assert.Equal(t, "resourceSpecificUsage", after[8])
}
