package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseToCents(t *testing.T) {
	tests := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{"150", 15000, false},
		{"150.5", 15050, false},
		{"150.50", 15050, false},
		{"-42.50", -4250, false},
		{"0", 0, false},
		{" 12.34 ", 1234, false},
		{"", 0, true},
		{"abc", 0, true},
		{"1.234", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseToCents(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		assert.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestFormatFromCents(t *testing.T) {
	assert.Equal(t, "42.50", FormatFromCents(4250))
	assert.Equal(t, "-42.50", FormatFromCents(-4250))
	assert.Equal(t, "0.00", FormatFromCents(0))
	assert.Equal(t, "150.05", FormatFromCents(15005))
}
