package metadata

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/JiscSD/csw-simple-metadata/iso"
)

func TestSnapshot_Dataset(t *testing.T) {
	rec, err := Snapshot(loadDocument(t, "dataset.xml"))
	require.NoError(t, err)

	assert.Equal(t, "9f6a8f3e-2b1c-4e0e-9d6b-3c0a2f5e7b11", rec.MetadataUUID)
	assert.Equal(t, "nor", rec.Language)
	assert.Equal(t, HierarchyLevelDataset, rec.HierarchyLevel)
	assert.Equal(t, "Datasett", rec.HierarchyLevelName)
	assert.Equal(t, "Kari Nordmann", rec.ContactMetadata.Name)
	assert.Equal(t, "Digitalisert fra økonomisk kartverk.", rec.ProcessHistory)
	assert.Len(t, rec.QualitySpecifications, 2)
	assert.Equal(t, datasetReferenceSystems, rec.ReferenceSystems)
	assert.Equal(t, "Administrative enheter 4.1", rec.ApplicationSchema)
	assert.Equal(t, datasetDistributions, rec.Distributions)
	assert.Equal(t, "OGC:WMS", rec.DistributionDetails.Protocol)

	res := rec.Resource
	require.NotNil(t, res)
	assert.Equal(t, "Administrative enheter", res.Title)
	assert.Equal(t, "Administrative units", res.EnglishTitle)
	assert.Equal(t, "Municipalities and counties of Norway.", res.EnglishAbstract)
	assert.Equal(t, "Brukes i kartløsninger.", res.SpecificUsage)
	assert.Equal(t, "Se produktspesifikasjonen.", res.SupplementalDescription)
	assert.Equal(t, "a2f5b9c8-1d3e-4f6a-8b7c-9d0e1f2a3b4c", res.Identifier.Code)
	assert.True(t, res.DateCreated.Equal(time.Date(2010, 1, 15, 0, 0, 0, 0, time.UTC)))
	assert.Nil(t, res.DateUpdated)
	assert.Equal(t, "onGoing", res.Status)
	assert.Equal(t, "50000", res.ResolutionScale)
	assert.Equal(t, []string{"boundaries", "planningCadastre"}, res.TopicCategories)
	assert.Nil(t, res.ContactPublisher)
	assert.Equal(t, "Kartverket", res.ContactOwner.Organization)
	assert.Len(t, res.Keywords, 2)
	assert.Equal(t, datasetConstraints, res.Constraints)
	assert.Equal(t, &BoundingBox{-20, 38, 56, 84}, res.BoundingBox)
	assert.Equal(t, &TimePeriod{From: "2010-01-01", To: PositionNow}, res.ValidTimePeriod)
	assert.Equal(t, "Norge", res.ExtentDescription)
	assert.Len(t, res.Thumbnails, 1)
	assert.Equal(t, []string{"6d3c4b2a-1f0e-4d9c-8b7a-5e4d3c2b1a09"}, res.CrossReference)
	assert.Empty(t, res.OperatesOn)
	assert.Empty(t, res.Operations)
}

func TestSnapshot_Service(t *testing.T) {
	rec, err := Snapshot(loadDocument(t, "service.xml"))
	require.NoError(t, err)

	require.NotNil(t, rec.Resource)
	assert.Equal(t, HierarchyLevelService, rec.HierarchyLevel)
	assert.Equal(t, "WMS Administrative enheter", rec.Resource.Title)
	assert.Equal(t, "view", rec.Resource.ServiceType)
	assert.Len(t, rec.Resource.OperatesOn, 2)
	assert.Len(t, rec.Resource.Operations, 1)
	assert.Equal(t, &BoundingBox{4.5, 31.2, 57.9, 71.2}, rec.Resource.BoundingBox)
}

func TestSnapshot_WithoutIdentification(t *testing.T) {
	rec, err := Snapshot(loadDocument(t, "minimal.xml"))

	require.NoError(t, err)
	assert.Equal(t, "5b1e9c4d-7a2f-4c3b-9e8d-0f1a2b3c4d5e", rec.MetadataUUID)
	assert.Nil(t, rec.Resource)
}

func TestSnapshot_NoRecord(t *testing.T) {
	doc := iso.NewDocument(iso.NewElement(iso.CSW("GetRecordByIdResponse")))

	_, err := Snapshot(doc)

	assert.Equal(t, ErrStructureMissing, errors.Cause(err))
}

func TestSnapshot_YAML(t *testing.T) {
	rec, err := Snapshot(loadDocument(t, "dataset.xml"))
	require.NoError(t, err)

	out, err := yaml.Marshal(rec)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, "nor", decoded["language"])
	resource, ok := decoded["resource"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Administrative enheter", resource["title"])
	quality := decoded["quality_specifications"].([]interface{})
	assert.Equal(t, "conformance", quality[0].(map[string]interface{})["kind"])
}
