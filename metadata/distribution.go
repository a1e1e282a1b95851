package metadata

import (
	"github.com/JiscSD/csw-simple-metadata/iso"
)

// DistributionFormat is the name and version of a distribution format.
type DistributionFormat struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version,omitempty"`
}

// Distribution is a distribution format merged with its distributor's
// contact and transfer options.
type Distribution struct {
	FormatName                 string `yaml:"format_name,omitempty"`
	FormatVersion              string `yaml:"format_version,omitempty"`
	Organization               string `yaml:"organization,omitempty"`
	Protocol                   string `yaml:"protocol,omitempty"`
	URL                        string `yaml:"url,omitempty"`
	Name                       string `yaml:"name,omitempty"`
	UnitsOfDistribution        string `yaml:"units_of_distribution,omitempty"`
	EnglishUnitsOfDistribution string `yaml:"english_units_of_distribution,omitempty"`
}

// DistributionDetails describes the first transfer option of the record.
type DistributionDetails struct {
	Name                       string `yaml:"name,omitempty"`
	Protocol                   string `yaml:"protocol,omitempty"`
	URL                        string `yaml:"url,omitempty"`
	UnitsOfDistribution        string `yaml:"units_of_distribution,omitempty"`
	EnglishUnitsOfDistribution string `yaml:"english_units_of_distribution,omitempty"`
}

var (
	distributionFormat = gmd("distributionFormat")
	mdFormat           = gmd("MD_Format")
)

func formats(doc *iso.Document) ([]*iso.Element, error) {
	dist, err := distribution(doc, false)
	if err != nil {
		return nil, err
	}
	return variants(dist, distributionFormat, mdFormat), nil
}

func readFormat(f *iso.Element) DistributionFormat {
	return DistributionFormat{
		Name:    Primary(f.Child(gmd("name"))),
		Version: Primary(f.Child(gmd("version"))),
	}
}

// writeFormat sets the name and version of f. An unknown version is flagged
// with a nil reason since the schema requires the element.
func writeFormat(f *iso.Element, df DistributionFormat) {
	SetPrimary(f.Ensure(gmd("name")), df.Name)
	version := f.Ensure(gmd("version"))
	if df.Version == "" {
		version.SetValue("")
		version.SetAttr(attrNilReason, "unknown")
		return
	}
	SetPrimary(version, df.Version)
}

// ResourceDistributionFormat returns the first distribution format of the
// record, or nil.
func ResourceDistributionFormat(doc *iso.Document) (*DistributionFormat, error) {
	fs, err := formats(doc)
	if err != nil || len(fs) == 0 {
		return nil, err
	}
	df := readFormat(fs[0])
	return &df, nil
}

// SetResourceDistributionFormat overwrites the first distribution format,
// keeping its distributors.
func SetResourceDistributionFormat(doc *iso.Document, df DistributionFormat) error {
	dist, err := ensureDistribution(doc)
	if err != nil {
		return err
	}
	writeFormat(locateVariant(dist, distributionFormat, mdFormat), df)
	return nil
}

// DistributionFormats returns every distribution format of the record.
func DistributionFormats(doc *iso.Document) ([]DistributionFormat, error) {
	fs, err := formats(doc)
	if err != nil {
		return nil, err
	}
	res := make([]DistributionFormat, 0, len(fs))
	for _, f := range fs {
		res = append(res, readFormat(f))
	}
	return res, nil
}

// SetDistributionFormats replaces the distribution formats of the record.
// The formats are matched by position with the existing ones so that their
// distributors survive.
func SetDistributionFormats(doc *iso.Document, dfs []DistributionFormat) error {
	dist, err := ensureDistribution(doc)
	if err != nil {
		return err
	}
	old := variants(dist, distributionFormat, mdFormat)
	elems := make([]*iso.Element, 0, len(dfs))
	for i, df := range dfs {
		f := iso.NewElement(mdFormat)
		if i < len(old) {
			f = old[i]
		}
		writeFormat(f, df)
		elems = append(elems, iso.NewElement(distributionFormat, f))
	}
	dist.Replace(distributionFormat, elems)
	return nil
}

func readTransferOptions(to *iso.Element) DistributionDetails {
	units := to.Child(gmd("unitsOfDistribution"))
	online := to.Find(gmd("onLine"), gmd("CI_OnlineResource"))
	return DistributionDetails{
		Name:                       Primary(online.Child(gmd("name"))),
		Protocol:                   Primary(online.Child(gmd("protocol"))),
		URL:                        online.Find(gmd("linkage"), gmd("URL")).Value(),
		UnitsOfDistribution:        Primary(units),
		EnglishUnitsOfDistribution: Alternate(units, LocaleLinkEng),
	}
}

// writeTransferOptions writes the non-empty parts of d. A new online resource
// always gets a linkage since the schema requires one.
func writeTransferOptions(to *iso.Element, d DistributionDetails) {
	if d.UnitsOfDistribution != "" || d.EnglishUnitsOfDistribution != "" {
		units := to.Child(gmd("unitsOfDistribution"))
		if units == nil {
			units = to.Insert(characterString(gmd("unitsOfDistribution"), d.UnitsOfDistribution))
		} else if d.UnitsOfDistribution != "" {
			SetPrimary(units, d.UnitsOfDistribution)
		}
		if d.EnglishUnitsOfDistribution != "" {
			SetAlternate(units, LocaleLinkEng, d.EnglishUnitsOfDistribution)
		}
	}
	online := to.Ensure(gmd("onLine"), gmd("CI_OnlineResource"))
	if d.URL != "" || online.Find(gmd("linkage"), gmd("URL")) == nil {
		online.Ensure(gmd("linkage"), gmd("URL")).SetValue(d.URL)
	}
	if d.Protocol != "" {
		SetPrimary(online.Ensure(gmd("protocol")), d.Protocol)
	}
	if d.Name != "" {
		SetPrimary(online.Ensure(gmd("name")), d.Name)
	}
}

// ResourceDistributionDetails returns the first transfer option of the
// record, or nil.
func ResourceDistributionDetails(doc *iso.Document) (*DistributionDetails, error) {
	dist, err := distribution(doc, false)
	if err != nil {
		return nil, err
	}
	tos := variants(dist, gmd("transferOptions"), gmd("MD_DigitalTransferOptions"))
	if len(tos) == 0 {
		return nil, nil
	}
	d := readTransferOptions(tos[0])
	return &d, nil
}

// SetResourceDistributionDetails overwrites the first transfer option of the
// record.
func SetResourceDistributionDetails(doc *iso.Document, d DistributionDetails) error {
	dist, err := ensureDistribution(doc)
	if err != nil {
		return err
	}
	writeTransferOptions(locateVariant(dist, gmd("transferOptions"), gmd("MD_DigitalTransferOptions")), d)
	return nil
}

// Distributions returns one entry per distributor of every distribution
// format. Formats without distributor yield a single entry.
func Distributions(doc *iso.Document) ([]Distribution, error) {
	fs, err := formats(doc)
	if err != nil {
		return nil, err
	}
	var res []Distribution
	for _, f := range fs {
		df := readFormat(f)
		distributors := variants(f, gmd("formatDistributor"), gmd("MD_Distributor"))
		if len(distributors) == 0 {
			res = append(res, Distribution{FormatName: df.Name, FormatVersion: df.Version})
			continue
		}
		for _, d := range distributors {
			to := readTransferOptions(d.Find(gmd("distributorTransferOptions"), gmd("MD_DigitalTransferOptions")))
			org := d.Find(gmd("distributorContact"), gmd("CI_ResponsibleParty"), gmd("organisationName"))
			res = append(res, Distribution{
				FormatName:                 df.Name,
				FormatVersion:              df.Version,
				Organization:               Primary(org),
				Protocol:                   to.Protocol,
				URL:                        to.URL,
				Name:                       to.Name,
				UnitsOfDistribution:        to.UnitsOfDistribution,
				EnglishUnitsOfDistribution: to.EnglishUnitsOfDistribution,
			})
		}
	}
	return res, nil
}

func (d Distribution) hasDistributor() bool {
	return d.Organization != "" || d.URL != "" || d.Protocol != "" || d.Name != "" ||
		d.UnitsOfDistribution != "" || d.EnglishUnitsOfDistribution != ""
}

// SetDistributions replaces the distribution formats of the record with one
// format per entry.
func SetDistributions(doc *iso.Document, ds []Distribution) error {
	dist, err := ensureDistribution(doc)
	if err != nil {
		return err
	}
	elems := make([]*iso.Element, 0, len(ds))
	for _, d := range ds {
		f := iso.NewElement(mdFormat)
		writeFormat(f, DistributionFormat{Name: d.FormatName, Version: d.FormatVersion})
		if d.hasDistributor() {
			distributor := iso.NewElement(gmd("MD_Distributor"))
			if d.Organization != "" {
				party := distributor.Ensure(gmd("distributorContact"), gmd("CI_ResponsibleParty"))
				party.Insert(characterString(gmd("organisationName"), d.Organization))
				party.Insert(iso.NewElement(gmd("role"), codeElement("CI_RoleCode", RoleDistributor)))
			}
			to := distributor.Ensure(gmd("distributorTransferOptions"), gmd("MD_DigitalTransferOptions"))
			writeTransferOptions(to, DistributionDetails{
				Name:                       d.Name,
				Protocol:                   d.Protocol,
				URL:                        d.URL,
				UnitsOfDistribution:        d.UnitsOfDistribution,
				EnglishUnitsOfDistribution: d.EnglishUnitsOfDistribution,
			})
			f.Insert(iso.NewElement(gmd("formatDistributor"), distributor))
		}
		elems = append(elems, iso.NewElement(distributionFormat, f))
	}
	dist.Replace(distributionFormat, elems)
	return nil
}
