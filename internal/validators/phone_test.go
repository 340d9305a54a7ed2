package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"0917 123 4567", "09171234567", true},
		{"+63 (917) 123-4567", "+639171234567", true},
		{"123", "", false},
		{"0917-abc-4567", "", false},
		{"", "", false},
		{"12+34567890", "", false},
	}

	for _, tc := range cases {
		got, ok := NormalizePhone(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}
