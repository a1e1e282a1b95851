package app

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/JiscSD/csw-simple-metadata/iso"
	"github.com/JiscSD/csw-simple-metadata/metadata"
	"github.com/JiscSD/csw-simple-metadata/source"
)

// ErrInvalidRecord is returned when a record misses mandatory fields.
var ErrInvalidRecord = errors.New("the record is invalid")

func NewCmdValidate(out io.Writer, logger logrus.FieldLogger, config *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "validate LOCATION",
		Short: "Check that a catalogue record has its mandatory fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := newSource(logger, config)
			if err != nil {
				return err
			}
			ctx, cancel := withInterrupt(context.Background())
			defer cancel()
			return doValidate(ctx, out, src, args[0])
		},
	}
}

func doValidate(ctx context.Context, out io.Writer, src *source.Source, location string) error {
	doc, err := src.Load(ctx, location)
	if err != nil {
		return err
	}
	issues := validateRecord(doc)
	if len(issues) == 0 {
		fmt.Fprintln(out, "The record is valid.")
		return nil
	}
	for _, issue := range issues {
		fmt.Fprintln(out, "-", issue)
	}
	return ErrInvalidRecord
}

// validateRecord lists the mandatory fields missing from doc.
func validateRecord(doc *iso.Document) []string {
	rec, err := metadata.Snapshot(doc)
	if err != nil {
		return []string{err.Error()}
	}
	var issues []string
	if rec.MetadataUUID == "" {
		issues = append(issues, "missing metadata identifier")
	}
	if rec.DateMetadataUpdate == nil {
		issues = append(issues, "missing date stamp")
	}
	if rec.Resource == nil {
		return append(issues, "missing identification")
	}
	if rec.Resource.Title == "" {
		issues = append(issues, "missing title")
	}
	if rec.Resource.Abstract == "" {
		issues = append(issues, "missing abstract")
	}
	if metadata.IsService(doc) && rec.Resource.ServiceType == "" {
		issues = append(issues, "missing service type")
	}
	return issues
}
