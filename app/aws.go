package app

import (
	"os"
	"strconv"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/JiscSD/csw-simple-metadata/s3"
	"github.com/JiscSD/csw-simple-metadata/source"
)

type logrusProxy struct {
	logger logrus.FieldLogger
}

func (l logrusProxy) Log(args ...interface{}) {
	l.logger.WithField("client", "aws").Debug(args...)
}

// awsSession returns a session using NewSessionWithOptions meaning that it
// relies on the SDK defaults but also the user config files and environment.
//
// AWS_S3_FORCE_PATH_STYLE is a made-up environment string that the SDK does
// not look up. It is needed by most S3-compatible servers, e.g. MinIO.
func awsSession(logger logrus.FieldLogger, profile, endpoint string) (*session.Session, error) {
	options := session.Options{}
	if profile != "" {
		options.Profile = profile
	}
	if endpoint != "" {
		options.Config.WithEndpoint(endpoint)
	}
	if res, ok := os.LookupEnv("AWS_S3_FORCE_PATH_STYLE"); ok {
		enabled, _ := strconv.ParseBool(res)
		options.Config.WithS3ForcePathStyle(enabled)
	}
	if logrus.GetLevel() == logrus.DebugLevel {
		options.Config.WithCredentialsChainVerboseErrors(true)
	}
	options.Config.WithLogger(logrusProxy{logger: logger})
	return session.NewSessionWithOptions(options)
}

// newSource wires the record source used by the commands.
func newSource(logger logrus.FieldLogger, config *Config) (*source.Source, error) {
	sess, err := awsSession(logger, config.AWS.S3Profile, config.AWS.S3Endpoint)
	if err != nil {
		return nil, err
	}
	opts := []source.Option{
		source.WithObjectStorage(s3.New(sess)),
		source.WithTimeout(config.Fetch.Timeout),
	}
	if config.Fetch.MaxElapsedTime > 0 {
		opts = append(opts, source.WithMaxElapsedTime(config.Fetch.MaxElapsedTime))
	}
	return source.New(logger, afero.NewOsFs(), opts...), nil
}
