package metadata

import (
	"time"

	"github.com/pkg/errors"

	"github.com/JiscSD/csw-simple-metadata/iso"
)

// Record is the whole flat view of a catalogue record.
type Record struct {
	MetadataUUID       string     `yaml:"metadata_uuid,omitempty"`
	Language           string     `yaml:"language,omitempty"`
	HierarchyLevel     string     `yaml:"hierarchy_level,omitempty"`
	HierarchyLevelName string     `yaml:"hierarchy_level_name,omitempty"`
	DateMetadataUpdate *time.Time `yaml:"date_metadata_updated,omitempty"`
	ContactMetadata    *Contact   `yaml:"contact_metadata,omitempty"`

	ProcessHistory        string                 `yaml:"process_history,omitempty"`
	EnglishProcessHistory string                 `yaml:"english_process_history,omitempty"`
	QualitySpecifications []QualitySpecification `yaml:"quality_specifications,omitempty"`

	ReferenceSystems    []ReferenceSystem    `yaml:"reference_systems,omitempty"`
	ApplicationSchema   string               `yaml:"application_schema,omitempty"`
	Distributions       []Distribution       `yaml:"distributions,omitempty"`
	DistributionDetails *DistributionDetails `yaml:"distribution_details,omitempty"`

	Resource *Resource `yaml:"resource,omitempty"`
}

// Resource is the part of the flat view found in the identification of the
// record.
type Resource struct {
	Title                          string `yaml:"title,omitempty"`
	EnglishTitle                   string `yaml:"english_title,omitempty"`
	Abstract                       string `yaml:"abstract,omitempty"`
	EnglishAbstract                string `yaml:"english_abstract,omitempty"`
	Purpose                        string `yaml:"purpose,omitempty"`
	EnglishPurpose                 string `yaml:"english_purpose,omitempty"`
	SupplementalDescription        string `yaml:"supplemental_description,omitempty"`
	EnglishSupplementalDescription string `yaml:"english_supplemental_description,omitempty"`
	SpecificUsage                  string `yaml:"specific_usage,omitempty"`
	EnglishSpecificUsage           string `yaml:"english_specific_usage,omitempty"`

	Identifier *ResourceReference `yaml:"identifier,omitempty"`

	DateCreated   *time.Time `yaml:"date_created,omitempty"`
	DatePublished *time.Time `yaml:"date_published,omitempty"`
	DateUpdated   *time.Time `yaml:"date_updated,omitempty"`

	Status                string   `yaml:"status,omitempty"`
	MaintenanceFrequency  string   `yaml:"maintenance_frequency,omitempty"`
	SpatialRepresentation string   `yaml:"spatial_representation,omitempty"`
	ResolutionScale       string   `yaml:"resolution_scale,omitempty"`
	TopicCategories       []string `yaml:"topic_categories,omitempty"`
	ServiceType           string   `yaml:"service_type,omitempty"`

	ContactPublisher *Contact `yaml:"contact_publisher,omitempty"`
	ContactOwner     *Contact `yaml:"contact_owner,omitempty"`

	Keywords    []Keyword    `yaml:"keywords,omitempty"`
	Constraints *Constraints `yaml:"constraints,omitempty"`

	BoundingBox       *BoundingBox `yaml:"bounding_box,omitempty"`
	ValidTimePeriod   *TimePeriod  `yaml:"valid_time_period,omitempty"`
	ExtentDescription string       `yaml:"extent_description,omitempty"`

	Thumbnails     []Thumbnail `yaml:"thumbnails,omitempty"`
	OperatesOn     []string    `yaml:"operates_on,omitempty"`
	CrossReference []string    `yaml:"cross_reference,omitempty"`
	Operations     []Operation `yaml:"operations,omitempty"`
}

// snapshotter runs accessors in sequence and keeps the first error.
type snapshotter struct {
	doc *iso.Document
	err error
}

func (s *snapshotter) text(dst *string, get func(*iso.Document) (string, error)) {
	if s.err != nil {
		return
	}
	*dst, s.err = get(s.doc)
}

func (s *snapshotter) date(dst **time.Time, get func(*iso.Document) (*time.Time, error)) {
	if s.err != nil {
		return
	}
	*dst, s.err = get(s.doc)
}

func (s *snapshotter) strings(dst *[]string, get func(*iso.Document) ([]string, error)) {
	if s.err != nil {
		return
	}
	*dst, s.err = get(s.doc)
}

// Snapshot reads every field of the record at once. Records without
// identification information have a nil Resource.
func Snapshot(doc *iso.Document) (*Record, error) {
	s := &snapshotter{doc: doc}
	rec := &Record{}
	s.text(&rec.MetadataUUID, MetadataUUID)
	s.text(&rec.Language, Language)
	s.text(&rec.HierarchyLevel, HierarchyLevel)
	s.text(&rec.HierarchyLevelName, HierarchyLevelName)
	s.date(&rec.DateMetadataUpdate, DateMetadataUpdated)
	s.text(&rec.ProcessHistory, ProcessHistory)
	s.text(&rec.EnglishProcessHistory, EnglishProcessHistory)
	s.text(&rec.ApplicationSchema, ApplicationSchema)
	if s.err != nil {
		return nil, s.err
	}
	var err error
	if rec.ContactMetadata, err = ContactMetadata(doc); err != nil {
		return nil, err
	}
	if rec.QualitySpecifications, err = QualitySpecifications(doc); err != nil {
		return nil, err
	}
	if rec.ReferenceSystems, err = ReferenceSystems(doc); err != nil {
		return nil, err
	}
	if rec.Distributions, err = Distributions(doc); err != nil {
		return nil, err
	}
	if rec.DistributionDetails, err = ResourceDistributionDetails(doc); err != nil {
		return nil, err
	}

	if _, err := identification(doc); err != nil {
		if errors.Cause(err) == ErrStructureMissing {
			return rec, nil
		}
		return nil, err
	}
	res, err := snapshotResource(doc)
	if err != nil {
		return nil, err
	}
	rec.Resource = res
	return rec, nil
}

func snapshotResource(doc *iso.Document) (*Resource, error) {
	s := &snapshotter{doc: doc}
	res := &Resource{}
	s.text(&res.Title, Title)
	s.text(&res.EnglishTitle, EnglishTitle)
	s.text(&res.Abstract, Abstract)
	s.text(&res.EnglishAbstract, EnglishAbstract)
	s.text(&res.Purpose, Purpose)
	s.text(&res.EnglishPurpose, EnglishPurpose)
	s.text(&res.SupplementalDescription, SupplementalDescription)
	s.text(&res.EnglishSupplementalDescription, EnglishSupplementalDescription)
	s.text(&res.SpecificUsage, SpecificUsage)
	s.text(&res.EnglishSpecificUsage, EnglishSpecificUsage)
	s.date(&res.DateCreated, DateCreated)
	s.date(&res.DatePublished, DatePublished)
	s.date(&res.DateUpdated, DateUpdated)
	s.text(&res.Status, Status)
	s.text(&res.MaintenanceFrequency, MaintenanceFrequency)
	s.text(&res.SpatialRepresentation, SpatialRepresentation)
	s.text(&res.ResolutionScale, ResolutionScale)
	s.strings(&res.TopicCategories, TopicCategories)
	s.text(&res.ServiceType, ServiceType)
	s.text(&res.ExtentDescription, ExtentDescription)
	s.strings(&res.OperatesOn, OperatesOn)
	s.strings(&res.CrossReference, CrossReference)
	if s.err != nil {
		return nil, s.err
	}
	var err error
	if res.Identifier, err = ResourceIdentifier(doc); err != nil {
		return nil, err
	}
	if res.ContactPublisher, err = ContactPublisher(doc); err != nil {
		return nil, err
	}
	if res.ContactOwner, err = ContactOwner(doc); err != nil {
		return nil, err
	}
	if res.Keywords, err = Keywords(doc); err != nil {
		return nil, err
	}
	if res.Constraints, err = ResourceConstraints(doc); err != nil {
		return nil, err
	}
	if res.BoundingBox, err = ResourceBoundingBox(doc); err != nil {
		return nil, err
	}
	if res.ValidTimePeriod, err = ValidTimePeriod(doc); err != nil {
		return nil, err
	}
	if res.Thumbnails, err = Thumbnails(doc); err != nil {
		return nil, err
	}
	if res.Operations, err = Operations(doc); err != nil {
		return nil, err
	}
	return res, nil
}
