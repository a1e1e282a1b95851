package metadata

import (
	"encoding/xml"

	"github.com/JiscSD/csw-simple-metadata/iso"
)

// QualityKind tells which kind of result a quality specification holds.
type QualityKind int

const (
	QualityConformance QualityKind = iota + 1
	QualityQuantitative
)

// String returns the name of the kind.
func (k QualityKind) String() string {
	switch k {
	case QualityConformance:
		return "conformance"
	case QualityQuantitative:
		return "quantitative"
	}
	return "unknown"
}

// MarshalYAML renders the kind by name.
func (k QualityKind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

// QualitySpecification is a single data quality result together with the
// report it belongs to. Conformance results fill in the specification fields,
// quantitative results the value.
type QualitySpecification struct {
	Kind        QualityKind `yaml:"kind"`
	Responsible string      `yaml:"responsible,omitempty"`

	Title              string `yaml:"title,omitempty"`
	TitleLink          string `yaml:"title_link,omitempty"`
	Date               string `yaml:"date,omitempty"`
	DateType           string `yaml:"date_type,omitempty"`
	Explanation        string `yaml:"explanation,omitempty"`
	EnglishExplanation string `yaml:"english_explanation,omitempty"`
	Result             *bool  `yaml:"result,omitempty"`

	QuantitativeResult *float64 `yaml:"quantitative_result,omitempty"`
}

func (q QualitySpecification) kind() QualityKind {
	if q.Kind != 0 {
		return q.Kind
	}
	if q.QuantitativeResult != nil {
		return QualityQuantitative
	}
	return QualityConformance
}

var (
	dqReport      = gmd("report")
	dqResult      = gmd("result")
	conformance   = gmd("DQ_ConformanceResult")
	quantitative  = gmd("DQ_QuantitativeResult")
	domainConsist = gmd("DQ_DomainConsistency")
)

// measureAuthority leads from a report to the title of the authority of its
// measure, which names who is responsible for the result.
var measureAuthority = []xml.Name{
	gmd("measureIdentification"), gmd("MD_Identifier"), gmd("authority"), gmd("CI_Citation"), gmd("title"),
}

func readReport(report *iso.Element) []QualitySpecification {
	elem := report.FirstChild()
	responsible := Primary(elem.Find(measureAuthority...))
	var res []QualitySpecification
	for _, r := range elem.ChildrenNamed(dqResult) {
		result := r.FirstChild()
		switch {
		case result.Is(conformance):
			citation := result.Find(gmd("specification"), gmd("CI_Citation"))
			title := citation.Child(gmd("title"))
			date := citation.Find(gmd("date"), gmd("CI_Date"))
			explanation := result.Child(gmd("explanation"))
			q := QualitySpecification{
				Kind:               QualityConformance,
				Responsible:        responsible,
				Title:              Primary(title),
				TitleLink:          anchorLink(title),
				Date:               dateValue(date.Child(gmd("date"))),
				DateType:           firstCode(date.Child(gmd("dateType"))),
				Explanation:        Primary(explanation),
				EnglishExplanation: Alternate(explanation, LocaleLinkEng),
			}
			if pass := result.Find(gmd("pass"), gco("Boolean")); pass != nil {
				b := pass.Value() == "true" || pass.Value() == "1"
				q.Result = &b
			}
			res = append(res, q)
		case result.Is(quantitative):
			q := QualitySpecification{
				Kind:        QualityQuantitative,
				Responsible: responsible,
			}
			if v, err := ParseDecimal(result.Find(gmd("value"), gco("Record")).Value()); err == nil {
				q.QuantitativeResult = &v
			}
			res = append(res, q)
		}
	}
	return res
}

func newReport(q QualitySpecification) *iso.Element {
	elem := iso.NewElement(domainConsist)
	if q.Responsible != "" {
		elem.Insert(iso.NewElement(gmd("measureIdentification"),
			iso.NewElement(gmd("MD_Identifier"),
				iso.NewElement(gmd("authority"),
					iso.NewElement(gmd("CI_Citation"),
						characterString(gmd("title"), q.Responsible),
						nilProperty(gmd("date"), "unknown"),
					)),
				nilProperty(gmd("code"), "unknown"),
			)))
	}
	var result *iso.Element
	switch q.kind() {
	case QualityQuantitative:
		result = iso.NewElement(quantitative, nilProperty(gmd("valueUnit"), "inapplicable"))
		value := iso.NewElement(gmd("value"))
		if q.QuantitativeResult != nil {
			value.Append(iso.NewText(gco("Record"), FormatRecord(*q.QuantitativeResult)))
		} else {
			value.SetAttr(attrNilReason, "unknown")
		}
		result.Insert(value)
	default:
		citation := iso.NewElement(gmd("CI_Citation"), anchorOrString(gmd("title"), q.Title, q.TitleLink))
		date := iso.NewElement(gmd("date"))
		if q.Date != "" || q.DateType != "" {
			date.Append(iso.NewElement(gmd("CI_Date"),
				iso.NewElement(gmd("date"), iso.NewText(gco("Date"), q.Date)),
				iso.NewElement(gmd("dateType"), codeElement("CI_DateTypeCode", q.DateType)),
			))
		} else {
			date.SetAttr(attrNilReason, "unknown")
		}
		citation.Insert(date)
		result = iso.NewElement(conformance,
			iso.NewElement(gmd("specification"), citation),
			localizedString(gmd("explanation"), q.Explanation, q.EnglishExplanation),
		)
		pass := iso.NewElement(gmd("pass"))
		if q.Result != nil {
			v := "false"
			if *q.Result {
				v = "true"
			}
			pass.Append(iso.NewText(gco("Boolean"), v))
		} else {
			pass.SetAttr(attrNilReason, "unknown")
		}
		result.Insert(pass)
	}
	elem.Insert(iso.NewElement(dqResult, result))
	return iso.NewElement(dqReport, elem)
}

// QualitySpecifications returns every result of every quality report of the
// record in document order.
func QualitySpecifications(doc *iso.Document) ([]QualitySpecification, error) {
	dq, err := dataQuality(doc, false)
	if err != nil {
		return nil, err
	}
	var res []QualitySpecification
	for _, report := range dq.ChildrenNamed(dqReport) {
		res = append(res, readReport(report)...)
	}
	return res, nil
}

// SetQualitySpecifications replaces the quality reports of the record with
// one report per specification, in order.
func SetQualitySpecifications(doc *iso.Document, qs []QualitySpecification) error {
	dq, err := ensureDataQuality(doc)
	if err != nil {
		return err
	}
	ensureQualityScope(doc, dq)
	reports := make([]*iso.Element, 0, len(qs))
	for _, q := range qs {
		reports = append(reports, newReport(q))
	}
	dq.Replace(dqReport, reports)
	return nil
}

// ResourceQualitySpecification returns the first quality result of the
// record, or nil.
func ResourceQualitySpecification(doc *iso.Document) (*QualitySpecification, error) {
	qs, err := QualitySpecifications(doc)
	if err != nil || len(qs) == 0 {
		return nil, err
	}
	return &qs[0], nil
}

// SetResourceQualitySpecification overwrites the first quality report of the
// record, leaving the other reports alone.
func SetResourceQualitySpecification(doc *iso.Document, q QualitySpecification) error {
	dq, err := ensureDataQuality(doc)
	if err != nil {
		return err
	}
	ensureQualityScope(doc, dq)
	dq.ReplaceChild(dq.Child(dqReport), newReport(q))
	return nil
}

// ensureQualityScope adds the mandatory scope of a data quality element,
// using the hierarchy level of the record.
func ensureQualityScope(doc *iso.Document, dq *iso.Element) {
	if dq.Child(gmd("scope")) != nil {
		return
	}
	level := firstCode(doc.Metadata().Child(gmd("hierarchyLevel")))
	if level == "" {
		level = HierarchyLevelDataset
	}
	dq.Insert(iso.NewElement(gmd("scope"),
		iso.NewElement(gmd("DQ_Scope"),
			iso.NewElement(gmd("level"), codeElement("MD_ScopeCode", level)))))
}
