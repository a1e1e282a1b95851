package app

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/JiscSD/csw-simple-metadata/iso"
	"github.com/JiscSD/csw-simple-metadata/metadata"
	"github.com/JiscSD/csw-simple-metadata/source"
)

type setOptions struct {
	title           string
	englishTitle    string
	abstract        string
	englishAbstract string
	purpose         string
	hierarchyLevel  string
	bbox            string
	validFrom       string
	validTo         string
	datePublished   string
	keywords        []string
	output          string
}

func NewCmdSet(logger logrus.FieldLogger, config *Config) *cobra.Command {
	opts := &setOptions{}
	cmd := &cobra.Command{
		Use:   "set LOCATION",
		Short: "Update fields of a catalogue record",
		Long: `Update fields of a catalogue record.

Only the fields given as flags are written, every other element of the
record is kept as it is. The record is saved back to LOCATION unless
--output is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := newSource(logger, config)
			if err != nil {
				return err
			}
			ctx, cancel := withInterrupt(context.Background())
			defer cancel()
			return doSet(ctx, logger, src, cmd.Flags(), opts, args[0])
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.title, "title", "", "Title of the resource")
	flags.StringVar(&opts.englishTitle, "english-title", "", "English title of the resource")
	flags.StringVar(&opts.abstract, "abstract", "", "Abstract of the resource")
	flags.StringVar(&opts.englishAbstract, "english-abstract", "", "English abstract of the resource")
	flags.StringVar(&opts.purpose, "purpose", "", "Purpose of the resource")
	flags.StringVar(&opts.hierarchyLevel, "hierarchy-level", "", "Hierarchy level (dataset, series or service)")
	flags.StringVar(&opts.bbox, "bbox", "", "Bounding box as west,east,south,north")
	flags.StringVar(&opts.validFrom, "valid-from", "", "Start of the validity, a date or \"now\"")
	flags.StringVar(&opts.validTo, "valid-to", "", "End of the validity, a date or \"now\"")
	flags.StringVar(&opts.datePublished, "date-published", "", "Publication date, empty to remove it")
	flags.StringArrayVar(&opts.keywords, "keyword", nil, "Keyword as TEXT or TEXT|THESAURUS, replaces every keyword (repeatable)")
	flags.StringVarP(&opts.output, "output", "o", "", "Location of the updated record")

	return cmd
}

type setter func(doc *iso.Document) error

func textSetter(fn func(*iso.Document, string) error, v string) setter {
	return func(doc *iso.Document) error { return fn(doc, v) }
}

// setters returns the updates requested by the flags that were given.
func setters(flags *pflag.FlagSet, opts *setOptions) ([]setter, error) {
	var res []setter
	changed := flags.Changed

	if changed("hierarchy-level") {
		res = append(res, textSetter(metadata.SetHierarchyLevel, opts.hierarchyLevel))
	}
	if changed("title") {
		res = append(res, textSetter(metadata.SetTitle, opts.title))
	}
	if changed("english-title") {
		res = append(res, textSetter(metadata.SetEnglishTitle, opts.englishTitle))
	}
	if changed("abstract") {
		res = append(res, textSetter(metadata.SetAbstract, opts.abstract))
	}
	if changed("english-abstract") {
		res = append(res, textSetter(metadata.SetEnglishAbstract, opts.englishAbstract))
	}
	if changed("purpose") {
		res = append(res, textSetter(metadata.SetPurpose, opts.purpose))
	}
	if changed("bbox") {
		bb, err := parseBoundingBox(opts.bbox)
		if err != nil {
			return nil, err
		}
		res = append(res, func(doc *iso.Document) error {
			return metadata.SetResourceBoundingBox(doc, bb)
		})
	}
	if changed("valid-from") || changed("valid-to") {
		from, err := parsePosition(opts.validFrom)
		if err != nil {
			return nil, errors.Wrap(err, "invalid --valid-from")
		}
		to, err := parsePosition(opts.validTo)
		if err != nil {
			return nil, errors.Wrap(err, "invalid --valid-to")
		}
		res = append(res, func(doc *iso.Document) error {
			p, err := metadata.ValidTimePeriod(doc)
			if err != nil {
				return err
			}
			if p == nil {
				p = &metadata.TimePeriod{}
			}
			if changed("valid-from") {
				p.From = from
			}
			if changed("valid-to") {
				p.To = to
			}
			return metadata.SetValidTimePeriod(doc, *p)
		})
	}
	if changed("date-published") {
		var published *time.Time
		if opts.datePublished != "" {
			t, err := cast.ToTimeE(opts.datePublished)
			if err != nil {
				return nil, errors.Wrap(err, "invalid --date-published")
			}
			published = &t
		}
		res = append(res, func(doc *iso.Document) error {
			return metadata.SetDatePublished(doc, published)
		})
	}
	if changed("keyword") {
		keywords := parseKeywords(opts.keywords)
		res = append(res, func(doc *iso.Document) error {
			return metadata.SetKeywords(doc, keywords)
		})
	}
	return res, nil
}

func doSet(ctx context.Context, logger logrus.FieldLogger, src *source.Source, flags *pflag.FlagSet, opts *setOptions, location string) error {
	updates, err := setters(flags, opts)
	if err != nil {
		return err
	}
	if len(updates) == 0 {
		return errors.New("nothing to update")
	}
	doc, err := src.Load(ctx, location)
	if err != nil {
		return err
	}
	for _, update := range updates {
		if err := update(doc); err != nil {
			return err
		}
	}
	if err := metadata.SetDateMetadataUpdated(doc, nil); err != nil {
		return err
	}
	output := opts.output
	if output == "" {
		output = location
	}
	if err := src.Save(ctx, doc, output); err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{"location": output, "fields": len(updates)}).Info("Record updated")
	return nil
}

func parseBoundingBox(s string) (metadata.BoundingBox, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return metadata.BoundingBox{}, errors.Errorf("invalid bounding box %q: four edges expected", s)
	}
	var edges [4]float64
	for i, p := range parts {
		f, err := cast.ToFloat64E(strings.TrimSpace(p))
		if err != nil {
			return metadata.BoundingBox{}, errors.Wrapf(err, "invalid bounding box %q", s)
		}
		edges[i] = f
	}
	return metadata.BoundingBox{
		WestBoundLongitude: edges[0],
		EastBoundLongitude: edges[1],
		SouthBoundLatitude: edges[2],
		NorthBoundLatitude: edges[3],
	}, nil
}

// parsePosition accepts an empty position, "now" or anything that reads as a
// date.
func parsePosition(s string) (string, error) {
	if s == "" || s == metadata.PositionNow {
		return s, nil
	}
	t, err := cast.ToTimeE(s)
	if err != nil {
		return "", err
	}
	return t.Format("2006-01-02"), nil
}

func parseKeywords(values []string) []metadata.Keyword {
	res := make([]metadata.Keyword, 0, len(values))
	for _, v := range values {
		k := metadata.Keyword{Keyword: v}
		if i := strings.Index(v, "|"); i >= 0 {
			k.Keyword, k.Thesaurus = v[:i], v[i+1:]
		}
		res = append(res, k)
	}
	return res
}
