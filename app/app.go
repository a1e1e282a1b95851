package app

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const defaultLogLevel = logrus.WarnLevel

var (
	configFile     string
	verbosityLevel string
)

func Run(out, stderr io.Writer) error {
	c := RootCommand(out, stderr)
	return c.Execute()
}

func RootCommand(out, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "csw-simple-metadata",
		Short:         "Read and edit ISO19139 catalogue records",
		SilenceErrors: true,
	}

	cmd.SetOutput(out)
	cmd.Root().SilenceUsage = true

	config := &Config{}
	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(config); err != nil {
			return err
		}

		level := verbosityLevel
		if level == "" {
			level = config.Logging.Level
		}
		// Records may be written to out, so logs go to stderr.
		if err := setUpLogger(stderr, level); err != nil {
			return err
		}

		return nil
	}

	cmd.AddCommand(NewCmdShow(out, logrus.WithField("cmd", "show"), config))
	cmd.AddCommand(NewCmdSet(logrus.WithField("cmd", "set"), config))
	cmd.AddCommand(NewCmdNew(logrus.WithField("cmd", "new"), config))
	cmd.AddCommand(NewCmdValidate(out, logrus.WithField("cmd", "validate"), config))
	cmd.AddCommand(NewCmdConfig(out, config))
	cmd.AddCommand(NewCmdVersion(out))

	cmd.PersistentFlags().StringVarP(&verbosityLevel, "verbosity", "v", "", "Log level (debug, info, warn, error, fatal, panic)")
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Configuration file")

	return cmd
}

func setUpLogger(out io.Writer, level string) error {
	if level == "" {
		level = defaultLogLevel.String()
	}
	logrus.SetOutput(out)
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return errors.Wrap(err, "parsing log level")
	}
	logrus.SetLevel(lvl)
	return nil
}
