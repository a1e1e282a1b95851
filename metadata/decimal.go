package metadata

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseDecimal parses a decimal number written with either a comma or a dot
// as decimal separator, optionally in scientific notation.
func ParseDecimal(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid decimal %q", s)
	}
	return f, nil
}

// FormatDecimal renders a number as a gco:Decimal: dot separated, as short
// as possible and never in exponent form.
func FormatDecimal(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// FormatRecord renders a number held in a gco:Record, where scientific
// notation is allowed for very small or large values.
func FormatRecord(f float64) string {
	return strconv.FormatFloat(f, 'G', -1, 64)
}
