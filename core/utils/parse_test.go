package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFloat(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"3.5", 3.5},
		{" 82.74 ", 82.74},
		{"1,234.5", 1234.5},
		{"", 0},
		{"garbage", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseFloat(tt.in), "input %q", tt.in)
	}
}

func TestParseOptionalFloat(t *testing.T) {
	assert.Nil(t, ParseOptionalFloat(""))
	assert.Nil(t, ParseOptionalFloat("N/A"))
	assert.Nil(t, ParseOptionalFloat("NaN"))
	assert.Nil(t, ParseOptionalFloat("not a number"))

	v := ParseOptionalFloat("4.2")
	if assert.NotNil(t, v) {
		assert.Equal(t, 4.2, *v)
	}
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"3.8K", 3800},
		{"1.2M", 1200000},
		{"17k", 17000},
		{"542", 542},
		{"", 0},
		{"??", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseCount(tt.in), "input %q", tt.in)
	}
}

func TestParseDate(t *testing.T) {
	d := ParseDate("Feb 25, 2022")
	if assert.NotNil(t, d) {
		assert.Equal(t, 2022, d.Year())
	}

	d = ParseDate("2017-03-03")
	if assert.NotNil(t, d) {
		assert.Equal(t, 2017, d.Year())
	}

	assert.Nil(t, ParseDate(""))
	assert.Nil(t, ParseDate("soon"))
}
