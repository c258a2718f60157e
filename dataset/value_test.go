package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNumeric(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", false},
		{"   ", false},
		{"42", true},
		{"3.14", true},
		{"-7", true},
		{"+8", true},
		{".5", true},
		{"-.5", true},
		{"1e5", true},
		{"1E-3", true},
		{" 42 ", true},
		{"12abc", true}, // numeric prefix is accepted
		{"2023-01-02", true},
		{"5%", true},
		{"abc", false},
		{"abc12", false},
		{"-", false},
		{".", false},
		{"e5", false},
		{"NaN", false},
		{"Inf", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsNumeric(tt.value), "IsNumeric(%q)", tt.value)
	}
}

func TestToNumber(t *testing.T) {
	tests := []struct {
		value string
		want  float64
	}{
		{"42", 42},
		{"3.14", 3.14},
		{"-7", -7},
		{"12abc", 12},
		{"5%", 5},
		{"1e2ms", 100},
		{"", 0},
		{"abc", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ToNumber(tt.value), "ToNumber(%q)", tt.value)
	}
}
