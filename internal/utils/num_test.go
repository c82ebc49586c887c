package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseQuantity(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"400", 400, true},
		{"1 234,50", 1234.5, true},
		{"1 000", 1000, true},
		// запятая как разделитель тысяч (англоязычные выгрузки)
		{"1,234", 1234, true},
		{"1,234.50", 1234.5, true},
		{"1,234,567", 1234567, true},
		{"1,234 yds", 1234, true},
		// а здесь запятая десятичная
		{"3,5", 3.5, true},
		{"250m", 250, true},
		{"400 yds", 400, true},
		{"3.5", 3.5, true},
		{"-10", -10, true},
		{"", 0, false},
		{"n/a", 0, false},
		{"-", 0, false},
		{"free", 0, false},
	}
	for _, c := range cases {
		got, ok := ParseQuantity(c.in)
		assert.Equal(t, c.ok, ok, "ParseQuantity(%q) ok", c.in)
		if c.ok {
			assert.Equal(t, c.want, got, "ParseQuantity(%q)", c.in)
		}
	}
}
