package metadata

import (
	"github.com/pkg/errors"
)

// ErrStructureMissing is returned when the record lacks a container that the
// caller was responsible for, e.g. the identification information. Use
// errors.Cause to compare.
var ErrStructureMissing = errors.New("metadata structure missing")

func structureMissing(what string) error {
	return errors.Wrap(ErrStructureMissing, what)
}

func invalidValue(what, value string) error {
	return errors.Errorf("invalid %s %q", what, value)
}
