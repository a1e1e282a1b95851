package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecimal(t *testing.T) {
	tests := map[string]float64{
		"56,0":           56,
		"-20.0":          -20,
		" 84 ":           84,
		"99,5":           99.5,
		"1.41125505E-8":  1.41125505e-8,
		"1,41125505E-08": 1.41125505e-8,
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			got, err := ParseDecimal(in)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}

	_, err := ParseDecimal("1,000.5,2")
	assert.Error(t, err)
	_, err = ParseDecimal("")
	assert.Error(t, err)
}

func TestFormatDecimal(t *testing.T) {
	tests := map[float64]string{
		-20:      "-20",
		59.5:     "59.5",
		-0.00005: "-0.00005",
		1000000:  "1000000",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatDecimal(in))
		got, err := ParseDecimal(want)
		require.NoError(t, err)
		assert.Equal(t, in, got)
	}
}

func TestFormatRecord(t *testing.T) {
	tests := map[float64]string{
		59.5:          "59.5",
		1.41125505e-8: "1.41125505E-08",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatRecord(in))
		got, err := ParseDecimal(want)
		require.NoError(t, err)
		assert.Equal(t, in, got)
	}
}
