package app

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/JiscSD/csw-simple-metadata/metadata"
	"github.com/JiscSD/csw-simple-metadata/source"
)

type newOptions struct {
	kind   string
	title  string
	output string
}

func NewCmdNew(logger logrus.FieldLogger, config *Config) *cobra.Command {
	opts := &newOptions{}
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create an empty catalogue record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := newSource(logger, config)
			if err != nil {
				return err
			}
			ctx, cancel := withInterrupt(context.Background())
			defer cancel()
			return doNew(ctx, logger, src, opts)
		},
	}

	cmd.Flags().StringVar(&opts.kind, "kind", metadata.HierarchyLevelDataset, "Kind of resource (dataset, series or service)")
	cmd.Flags().StringVar(&opts.title, "title", "", "Title of the resource")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Location of the new record")

	return cmd
}

func doNew(ctx context.Context, logger logrus.FieldLogger, src *source.Source, opts *newOptions) error {
	if opts.output == "" {
		return errors.New("output location is required")
	}
	switch opts.kind {
	case metadata.HierarchyLevelDataset, metadata.HierarchyLevelSeries, metadata.HierarchyLevelService:
	default:
		return errors.Errorf("unsupported kind %q", opts.kind)
	}
	doc := metadata.New(opts.kind)
	if opts.title != "" {
		if err := metadata.SetTitle(doc, opts.title); err != nil {
			return err
		}
	}
	if err := src.Save(ctx, doc, opts.output); err != nil {
		return err
	}
	id, _ := metadata.MetadataUUID(doc)
	logger.WithFields(logrus.Fields{"uuid": id, "location": opts.output}).Info("Record created")
	return nil
}
