package app

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/JiscSD/csw-simple-metadata/metadata"
	"github.com/JiscSD/csw-simple-metadata/source"
)

func NewCmdShow(out io.Writer, logger logrus.FieldLogger, config *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "show LOCATION",
		Short: "Print the fields of a catalogue record",
		Long: `Print the fields of a catalogue record as YAML.

LOCATION is a local path, an http(s) URL, e.g. a CSW GetRecordById request,
or an s3:// URI.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := newSource(logger, config)
			if err != nil {
				return err
			}
			ctx, cancel := withInterrupt(context.Background())
			defer cancel()
			return doShow(ctx, out, src, args[0])
		},
	}
}

func doShow(ctx context.Context, out io.Writer, src *source.Source, location string) error {
	doc, err := src.Load(ctx, location)
	if err != nil {
		return err
	}
	rec, err := metadata.Snapshot(doc)
	if err != nil {
		return errors.Wrap(err, "cannot read record")
	}
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(rec); err != nil {
		return err
	}
	return enc.Close()
}
