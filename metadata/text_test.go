package metadata

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JiscSD/csw-simple-metadata/iso"
)

type textField struct {
	get func(*iso.Document) (string, error)
	set func(*iso.Document, string) error
}

var localizedFields = map[string]struct {
	primary textField
	english textField
}{
	"Title": {
		textField{Title, SetTitle},
		textField{EnglishTitle, SetEnglishTitle},
	},
	"Abstract": {
		textField{Abstract, SetAbstract},
		textField{EnglishAbstract, SetEnglishAbstract},
	},
	"Purpose": {
		textField{Purpose, SetPurpose},
		textField{EnglishPurpose, SetEnglishPurpose},
	},
	"SupplementalDescription": {
		textField{SupplementalDescription, SetSupplementalDescription},
		textField{EnglishSupplementalDescription, SetEnglishSupplementalDescription},
	},
	"SpecificUsage": {
		textField{SpecificUsage, SetSpecificUsage},
		textField{EnglishSpecificUsage, SetEnglishSpecificUsage},
	},
	"ProcessHistory": {
		textField{ProcessHistory, SetProcessHistory},
		textField{EnglishProcessHistory, SetEnglishProcessHistory},
	},
}

func TestTextFields_Read(t *testing.T) {
	doc := loadDocument(t, "dataset.xml")

	want := map[string][2]string{
		"Title":                   {"Administrative enheter", "Administrative units"},
		"Abstract":                {"Kommuner og fylker i Norge.", "Municipalities and counties of Norway."},
		"Purpose":                 {"Grunnlag for forvaltning.", ""},
		"SupplementalDescription": {"Se produktspesifikasjonen.", ""},
		"SpecificUsage":           {"Brukes i kartløsninger.", ""},
		"ProcessHistory":          {"Digitalisert fra økonomisk kartverk.", ""},
	}
	for name, field := range localizedFields {
		t.Run(name, func(t *testing.T) {
			primary, err := field.primary.get(doc)
			require.NoError(t, err)
			english, err := field.english.get(doc)
			require.NoError(t, err)
			assert.Equal(t, want[name][0], primary)
			assert.Equal(t, want[name][1], english)
		})
	}
}

func TestTextFields_LanguagesDoNotOverwriteEachOther(t *testing.T) {
	for name, field := range localizedFields {
		t.Run(name, func(t *testing.T) {
			doc := New(HierarchyLevelDataset)

			require.NoError(t, field.primary.set(doc, "Norsk tekst"))
			require.NoError(t, field.english.set(doc, "English text"))
			require.NoError(t, field.primary.set(doc, "Ny norsk tekst"))

			doc = reparse(t, doc)
			primary, err := field.primary.get(doc)
			require.NoError(t, err)
			english, err := field.english.get(doc)
			require.NoError(t, err)
			assert.Equal(t, "Ny norsk tekst", primary)
			assert.Equal(t, "English text", english)
		})
	}
}

func TestTextFields_StructureMissing(t *testing.T) {
	doc := loadDocument(t, "minimal.xml")

	for name, get := range map[string]func(*iso.Document) (string, error){
		"Title":    Title,
		"Abstract": Abstract,
		"Purpose":  Purpose,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := get(doc)
			require.Error(t, err)
			assert.Equal(t, ErrStructureMissing, errors.Cause(err))
		})
	}

	err := SetTitle(doc, "Tittel")
	assert.Equal(t, ErrStructureMissing, errors.Cause(err))

	// Process history lives outside of the identification.
	history, err := ProcessHistory(doc)
	assert.NoError(t, err)
	assert.Equal(t, "", history)
}

func TestTextFields_NoMetadata(t *testing.T) {
	doc := iso.NewDocument(iso.NewElement(iso.CSW("GetRecordByIdResponse")))

	_, err := MetadataUUID(doc)
	assert.Equal(t, ErrStructureMissing, errors.Cause(err))
}

func TestSetSpecificUsage_CreatesUsage(t *testing.T) {
	doc := New(HierarchyLevelDataset)

	require.NoError(t, SetSpecificUsage(doc, "Planlegging"))

	usage := mustIdentification(t, doc).Find(gmd("resourceSpecificUsage"), gmd("MD_Usage"), gmd("specificUsage"))
	assert.Equal(t, "Planlegging", Primary(usage))
}

func TestHierarchyLevel(t *testing.T) {
	doc := loadDocument(t, "dataset.xml")

	level, err := HierarchyLevel(doc)
	require.NoError(t, err)
	assert.Equal(t, HierarchyLevelDataset, level)
	name, err := HierarchyLevelName(doc)
	require.NoError(t, err)
	assert.Equal(t, "Datasett", name)

	require.NoError(t, SetHierarchyLevel(doc, HierarchyLevelSeries))
	level, err = HierarchyLevel(doc)
	require.NoError(t, err)
	assert.Equal(t, HierarchyLevelSeries, level)
	assert.Len(t, doc.Metadata().ChildrenNamed(gmd("hierarchyLevel")), 1)
}

func TestHierarchyLevel_Absent(t *testing.T) {
	doc := iso.NewDocument(iso.NewElement(gmd("MD_Metadata"),
		characterString(gmd("fileIdentifier"), "id"),
		iso.NewElement(gmd("contact")),
	))

	level, err := HierarchyLevel(doc)
	require.NoError(t, err)
	assert.Equal(t, "", level)
	name, err := HierarchyLevelName(doc)
	require.NoError(t, err)
	assert.Equal(t, "", name)

	require.NoError(t, SetHierarchyLevel(doc, HierarchyLevelService))
	require.NoError(t, SetHierarchyLevelName(doc, "Tjeneste"))

	root := doc.Metadata()
	assert.Equal(t, []string{"fileIdentifier", "hierarchyLevel", "hierarchyLevelName", "contact"}, childNames(root))
	assert.True(t, IsService(doc))
	name, err = HierarchyLevelName(doc)
	require.NoError(t, err)
	assert.Equal(t, "Tjeneste", name)
}

func TestMetadataUUID(t *testing.T) {
	doc := loadDocument(t, "dataset.xml")

	id, err := MetadataUUID(doc)
	require.NoError(t, err)
	assert.Equal(t, "9f6a8f3e-2b1c-4e0e-9d6b-3c0a2f5e7b11", id)

	require.NoError(t, SetMetadataUUID(doc, "other"))
	id, err = MetadataUUID(doc)
	require.NoError(t, err)
	assert.Equal(t, "other", id)
}

func childNames(e *iso.Element) []string {
	var names []string
	for _, c := range e.Children {
		names = append(names, c.Name.Local)
	}
	return names
}
