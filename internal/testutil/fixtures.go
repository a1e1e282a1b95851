package testutil

import (
	"fmt"
	"io/ioutil"
	"path"
	"runtime"
	"testing"
)

// MustFixture reads a file or panics, for use outside of tests.
func MustFixture(absPath string) []byte {
	bytes, err := ioutil.ReadFile(absPath)
	if err != nil {
		panic(fmt.Sprintf("error loading fixture %s: %v", absPath, err))
	}

	return bytes
}

// FixturePath returns the absolute path of a file kept in the testdata
// directory of the repository.
func FixturePath(t *testing.T, relPath string) string {
	t.Helper()

	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("error loading caller")
	}

	return path.Join(path.Dir(filename), "../../", "testdata", relPath)
}

// Fixture returns the contents of a file kept in the testdata directory of
// the repository, e.g. "dataset.xml".
func Fixture(t *testing.T, relPath string) []byte {
	t.Helper()

	p := FixturePath(t, relPath)
	bytes, err := ioutil.ReadFile(p)
	if err != nil {
		t.Fatalf("error loading fixture %s: %v", p, err)
	}

	return bytes
}
