// Package source loads and stores catalogue records. A location is either a
// local path, an http(s) URL or an s3:// URI.
package source

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/cenkalti/backoff/v3"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/JiscSD/csw-simple-metadata/iso"
	"github.com/JiscSD/csw-simple-metadata/s3"
)

// ErrUnsupportedLocation is returned for locations that cannot be read or
// written, e.g. saving to a web server.
var ErrUnsupportedLocation = errors.New("unsupported location")

const defaultTimeout = time.Minute

// Source reads and writes catalogue records.
type Source struct {
	logger     logrus.FieldLogger
	fs         afero.Fs
	httpClient *http.Client
	storage    s3.ObjectStorage

	// timeout bounds a single load or save.
	timeout time.Duration

	// retry returns the back-off policy used between HTTP attempts.
	retry func() backoff.BackOff
}

// Option configures a Source.
type Option func(*Source)

// WithHTTPClient sets the client used for http(s) locations.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Source) { s.httpClient = c }
}

// WithObjectStorage enables s3:// locations.
func WithObjectStorage(storage s3.ObjectStorage) Option {
	return func(s *Source) { s.storage = storage }
}

// WithTimeout bounds the duration of a load or save.
func WithTimeout(d time.Duration) Option {
	return func(s *Source) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithBackOff sets the back-off policy between HTTP attempts.
func WithBackOff(fn func() backoff.BackOff) Option {
	return func(s *Source) { s.retry = fn }
}

// WithMaxElapsedTime uses an exponential back-off that gives up after d.
func WithMaxElapsedTime(d time.Duration) Option {
	return WithBackOff(func() backoff.BackOff {
		b := backoff.NewExponentialBackOff()
		b.MaxElapsedTime = d
		return b
	})
}

// New returns a Source using fs for local paths.
func New(logger logrus.FieldLogger, fs afero.Fs, opts ...Option) *Source {
	s := &Source{
		logger:     logger,
		fs:         fs,
		httpClient: http.DefaultClient,
		timeout:    defaultTimeout,
		retry: func() backoff.BackOff {
			return backoff.NewExponentialBackOff()
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func scheme(location string) string {
	u, err := url.Parse(location)
	if err != nil || len(u.Scheme) < 2 {
		// Windows drive letters parse as one letter schemes.
		return ""
	}
	return u.Scheme
}

// Load reads and parses the record found at location.
func (s *Source) Load(ctx context.Context, location string) (*iso.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	logger := s.logger.WithField("location", location)
	logger.Debug("Loading record")

	var (
		blob []byte
		err  error
	)
	switch scheme(location) {
	case "", "file":
		blob, err = afero.ReadFile(s.fs, localPath(location))
	case "http", "https":
		blob, err = s.fetchHTTP(ctx, logger, location)
	case "s3":
		blob, err = s.fetchS3(ctx, location)
	default:
		err = errors.Wrap(ErrUnsupportedLocation, location)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "error loading %s", location)
	}
	logger.WithField("bytes", len(blob)).Debug("Record loaded")

	doc, err := iso.ParseBytes(blob)
	if err != nil {
		return nil, errors.Wrapf(err, "error parsing %s", location)
	}
	return doc, nil
}

// Save renders doc and stores it at location. Local files are replaced
// atomically.
func (s *Source) Save(ctx context.Context, doc *iso.Document, location string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	blob, err := doc.Bytes()
	if err != nil {
		return err
	}
	logger := s.logger.WithFields(logrus.Fields{"location": location, "bytes": len(blob)})
	logger.Debug("Saving record")

	switch scheme(location) {
	case "", "file":
		err = s.writeFile(localPath(location), blob)
	case "s3":
		if s.storage == nil {
			return errors.Wrap(ErrUnsupportedLocation, location)
		}
		err = s.storage.Upload(ctx, bytes.NewReader(blob), location)
	default:
		return errors.Wrap(ErrUnsupportedLocation, location)
	}
	return errors.Wrapf(err, "error saving %s", location)
}

func localPath(location string) string {
	if u, err := url.Parse(location); err == nil && u.Scheme == "file" {
		return u.Path
	}
	return location
}

func (s *Source) writeFile(path string, blob []byte) error {
	dir := filepath.Dir(path)
	if err := s.fs.MkdirAll(dir, 0755); err != nil {
		return err
	}
	tmp, err := afero.TempFile(s.fs, dir, filepath.Base(path)+".tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(blob); err != nil {
		tmp.Close()
		s.fs.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		s.fs.Remove(tmp.Name())
		return err
	}
	return s.fs.Rename(tmp.Name(), path)
}

func (s *Source) fetchS3(ctx context.Context, location string) ([]byte, error) {
	if s.storage == nil {
		return nil, errors.Wrap(ErrUnsupportedLocation, location)
	}
	buf := aws.NewWriteAtBuffer([]byte{})
	if _, err := s.storage.Download(ctx, buf, location); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// fetchHTTP retries transient failures. Client errors (4xx) are permanent.
func (s *Source) fetchHTTP(ctx context.Context, logger logrus.FieldLogger, location string) ([]byte, error) {
	req, err := http.NewRequest("GET", location, nil)
	if err != nil {
		return nil, err
	}
	req = req.WithContext(ctx)
	req.Header.Set("Accept", "application/xml")

	var (
		buf     bytes.Buffer
		attempt int
	)
	op := func() error {
		attempt++
		logger.WithField("attempt", attempt).Debug("Fetching record")
		resp, err := s.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			err := fmt.Errorf("unexpected status code: %d (%s)", resp.StatusCode, resp.Status)
			if resp.StatusCode >= 400 && resp.StatusCode < 500 {
				return backoff.Permanent(err)
			}
			return err
		}
		buf.Reset()
		_, err = io.Copy(&buf, resp.Body)
		return err
	}

	// Stop retrying as soon as the context is done.
	cb := backoff.WithContext(s.retry(), ctx)
	if err := backoff.Retry(op, cb); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
