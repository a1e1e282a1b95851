package app

import (
	"io/ioutil"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const defaultConfig = `# CSW Simple Metadata

################################## LOGGING ####################################

[logging]

#
# Logging verbosity level.
# Supported values: "DEBUG", "INFO", "WARN", "ERROR", "FATAL" or "PANIC".
#
level = "WARN"

################################## FETCH ######################################

[fetch]

#
# Maximum duration of loading or saving a single record.
#
timeout = "1m"

#
# Records loaded over HTTP are retried with an exponential back-off until
# this much time has passed. Client errors (4xx) are never retried.
#
max_elapsed_time = "2m"

################################## AWS ########################################

[aws]

#
# Used for s3:// locations.
#
s3_profile = ""
s3_endpoint = ""
`

type Config struct {
	v *viper.Viper

	Logging struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"logging"`

	Fetch struct {
		Timeout        time.Duration `mapstructure:"timeout"`
		MaxElapsedTime time.Duration `mapstructure:"max_elapsed_time"`
	} `mapstructure:"fetch"`

	AWS struct {
		S3Profile  string `mapstructure:"s3_profile"`
		S3Endpoint string `mapstructure:"s3_endpoint"`
	} `mapstructure:"aws"`
}

func (c Config) Validate() error {
	if _, err := logrus.ParseLevel(c.Logging.Level); err != nil {
		return errors.Wrap(err, "logging.level")
	}
	if c.Fetch.Timeout <= 0 {
		return errors.New("fetch.timeout must be positive")
	}
	if c.Fetch.MaxElapsedTime < 0 {
		return errors.New("fetch.max_elapsed_time cannot be negative")
	}
	return nil
}

func (c Config) String() string {
	tmpfile, err := ioutil.TempFile("", "config.*.toml")
	if err != nil {
		return err.Error()
	}
	defer os.Remove(tmpfile.Name())
	defer tmpfile.Close()
	err = c.v.WriteConfigAs(tmpfile.Name())
	if err != nil {
		return err.Error()
	}
	blob, err := ioutil.ReadAll(tmpfile)
	if err != nil {
		return err.Error()
	}
	return string(blob)
}

func loadConfig(c *Config) error {
	v := viper.New()

	v.SetEnvPrefix("CSW_SIMPLE_METADATA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("csw-simple-metadata")
	v.SetConfigType("toml")
	v.AddConfigPath("$HOME/.config/")
	v.AddConfigPath("/etc/csw-simple-metadata/")

	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	// Read our default configuration.
	if err := v.ReadConfig(strings.NewReader(defaultConfig)); err != nil {
		panic(err) // Not in the user path.
	}

	// Include configuration file provided by the user.
	if err := v.MergeInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return errors.Wrap(err, "configuration unmarshaling failed")
	}

	if err := c.Validate(); err != nil {
		return errors.Wrap(err, "config did not pass validation")
	}

	c.v = v

	return nil
}
