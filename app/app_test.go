package app

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JiscSD/csw-simple-metadata/internal/testutil"
	"github.com/JiscSD/csw-simple-metadata/metadata"
)

func TestMainHelp(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"csw-simple-metadata", "help"}

	var (
		output    bytes.Buffer
		errOutput bytes.Buffer
	)
	err := Run(&output, &errOutput)

	if err != nil {
		t.Error(err)
	}
	if have, want := output.String(), "Available Commands"; !strings.Contains(have, want) {
		t.Errorf("expected output %s not found in output: %s", want, have)
	}
	if errOutput.String() != "" {
		t.Errorf("error output is not empty")
	}
}

func TestMainUnknownCommand(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"csw-simple-metadata", "unknown"}

	err := Run(ioutil.Discard, ioutil.Discard)

	if err == nil {
		t.Error("error expected")
	}
}

// execute runs the root command with args and returns what it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var output bytes.Buffer
	cmd := RootCommand(&output, ioutil.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return output.String(), err
}

func TestShow(t *testing.T) {
	out, err := execute(t, "show", testutil.FixturePath(t, "dataset.xml"))
	require.NoError(t, err)

	assert.Contains(t, out, "title: Administrative enheter")
	assert.Contains(t, out, "english_title: Administrative units")
	assert.Contains(t, out, "hierarchy_level: dataset")
}

func TestShow_MissingFile(t *testing.T) {
	_, err := execute(t, "show", filepath.Join(t.TempDir(), "missing.xml"))
	assert.Error(t, err)
}

func TestNewSetValidate(t *testing.T) {
	location := filepath.Join(t.TempDir(), "records", "new.xml")

	_, err := execute(t, "new", "--kind", "dataset", "--title", "Stedsnavn", "-o", location)
	require.NoError(t, err)

	out, err := execute(t, "validate", location)
	assert.Equal(t, ErrInvalidRecord, errors.Cause(err))
	assert.Contains(t, out, "missing abstract")
	assert.NotContains(t, out, "missing title")

	_, err = execute(t, "set", location,
		"--abstract", "Stedsnavn fra sentralt stedsnavnregister.",
		"--english-title", "Place names",
		"--bbox", "4.5, 31.2, 57.9, 71.2",
		"--valid-from", "2019-05-01",
		"--valid-to", "now",
		"--date-published", "2019-06-15",
		"--keyword", "Stedsnavn|GEMET",
		"--keyword", "Norge",
	)
	require.NoError(t, err)

	out, err = execute(t, "validate", location)
	require.NoError(t, err)
	assert.Contains(t, out, "The record is valid.")

	out, err = execute(t, "show", location)
	require.NoError(t, err)
	assert.Contains(t, out, "title: Stedsnavn")
	assert.Contains(t, out, "english_title: Place names")
	assert.Contains(t, out, "west: 4.5")
	assert.Contains(t, out, "north: 71.2")
	assert.Contains(t, out, "2019-05-01")
	assert.Contains(t, out, "to: now")
	assert.Contains(t, out, "thesaurus: GEMET")
	assert.Contains(t, out, "keyword: Norge")
}

func TestSet_Output(t *testing.T) {
	output := filepath.Join(t.TempDir(), "copy.xml")

	_, err := execute(t, "set", testutil.FixturePath(t, "dataset.xml"), "--purpose", "Testing", "-o", output)
	require.NoError(t, err)

	out, err := execute(t, "show", output)
	require.NoError(t, err)
	assert.Contains(t, out, "purpose: Testing")
	assert.Contains(t, out, "title: Administrative enheter")
}

func TestSet_NothingToUpdate(t *testing.T) {
	_, err := execute(t, "set", testutil.FixturePath(t, "dataset.xml"))
	assert.EqualError(t, err, "nothing to update")
}

func TestSet_InvalidBoundingBox(t *testing.T) {
	_, err := execute(t, "set", testutil.FixturePath(t, "dataset.xml"), "--bbox", "1,2,3")
	assert.Error(t, err)
}

func TestNew_UnsupportedKind(t *testing.T) {
	_, err := execute(t, "new", "--kind", "feature", "-o", filepath.Join(t.TempDir(), "x.xml"))
	assert.EqualError(t, err, `unsupported kind "feature"`)
}

func TestNew_RequiresOutput(t *testing.T) {
	_, err := execute(t, "new")
	assert.EqualError(t, err, "output location is required")
}

func TestValidate_WithoutIdentification(t *testing.T) {
	out, err := execute(t, "validate", testutil.FixturePath(t, "minimal.xml"))
	assert.Equal(t, ErrInvalidRecord, errors.Cause(err))
	assert.Contains(t, out, "missing identification")
}

func TestValidate_Service(t *testing.T) {
	out, err := execute(t, "validate", testutil.FixturePath(t, "service.xml"))
	require.NoError(t, err)
	assert.Contains(t, out, "valid")
}

func TestValidateRecord_ServiceType(t *testing.T) {
	doc := metadata.New(metadata.HierarchyLevelService)
	require.NoError(t, metadata.SetTitle(doc, "WMS"))
	require.NoError(t, metadata.SetAbstract(doc, "Visning"))

	assert.Equal(t, []string{"missing service type"}, validateRecord(doc))

	require.NoError(t, metadata.SetServiceType(doc, "view"))
	assert.Empty(t, validateRecord(doc))
}

func TestConfig(t *testing.T) {
	out, err := execute(t, "config")
	require.NoError(t, err)

	assert.Contains(t, out, "[fetch]")
	assert.Contains(t, out, "timeout")
}

func TestConfig_InvalidLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, ioutil.WriteFile(path, []byte("[logging]\nlevel = \"LOUD\"\n"), 0600))

	_, err := execute(t, "-c", path, "config")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.NotEmpty(t, strings.TrimSpace(out))
}

func TestParseBoundingBox(t *testing.T) {
	bb, err := parseBoundingBox("4.5,31.2,57.9,71.2")
	require.NoError(t, err)
	assert.Equal(t, metadata.BoundingBox{
		WestBoundLongitude: 4.5,
		EastBoundLongitude: 31.2,
		SouthBoundLatitude: 57.9,
		NorthBoundLatitude: 71.2,
	}, bb)

	_, err = parseBoundingBox("4.5,31.2,north,71.2")
	assert.Error(t, err)
}

func TestParsePosition(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"", "", false},
		{"now", "now", false},
		{"2019-05-01", "2019-05-01", false},
		{"2019-05-01T10:00:00Z", "2019-05-01", false},
		{"yesterday", "", true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			have, err := parsePosition(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, have)
		})
	}
}

func TestParseKeywords(t *testing.T) {
	assert.Equal(t, []metadata.Keyword{
		{Keyword: "Stedsnavn", Thesaurus: "GEMET"},
		{Keyword: "Norge"},
	}, parseKeywords([]string{"Stedsnavn|GEMET", "Norge"}))
}
