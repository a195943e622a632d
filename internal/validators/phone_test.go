package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in    string
		want  string
		valid bool
	}{
		{"(11) 98765-4321", "11987654321", true},
		{"+55 11 98765-4321", "5511987654321", true},
		{"11987654321", "11987654321", true},
		{"98765432", "98765432", true},
		{"123", "", false},
		{"", "", false},
		{"abc-def", "", false},
		{"+55 11 98765-4321 ramal 1234", "", false},
	}

	for _, tc := range cases {
		got, ok := NormalizePhone(tc.in)
		assert.Equal(t, tc.valid, ok, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}
