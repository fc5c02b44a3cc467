package parse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/skymap/pkg/parse"
)

func TestField(t *testing.T) {
	line := "1234  Alp Tau   +12.5"

	assert.Equal(t, "1234", parse.Field(line, 0, 4))
	assert.Equal(t, "Alp Tau", parse.Field(line, 6, 13))
	assert.Equal(t, "+12.5", parse.Field(line, 16, 21))

	t.Run("short line clipping", func(t *testing.T) {
		assert.Equal(t, "ab", parse.Field("ab", 0, 10))
		assert.Equal(t, "", parse.Field("ab", 5, 10))
	})
}

func TestInt(t *testing.T) {
	cases := []struct {
		name       string
		line       string
		start, end int
		want       int
	}{
		{"plain", " 907", 0, 4, 907},
		{"negative", "-12", 0, 3, -12},
		{"empty absorbs to zero", "    ", 0, 4, 0},
		{"garbage absorbs to zero", "12ab", 0, 4, 0},
		{"past end of line", "12", 5, 9, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, parse.Int(tc.line, tc.start, tc.end))
		})
	}
}

func TestFloat(t *testing.T) {
	assert.InDelta(t, 2.97, parse.Float(" 2.97", 0, 5), 1e-9)
	assert.InDelta(t, -0.05, parse.Float("-0.05", 0, 5), 1e-9)
	assert.InDelta(t, 1.25, parse.Float("+1.25", 0, 5), 1e-9, "leading plus accepted")
	assert.Zero(t, parse.Float("     ", 0, 5))

	t.Run("fallback for absent magnitude", func(t *testing.T) {
		assert.Equal(t, 1000.0, parse.FloatOr("     ", 0, 5, 1000.0))
		assert.Equal(t, 1000.0, parse.FloatOr("x.y", 0, 3, 1000.0))
		assert.InDelta(t, 6.4, parse.FloatOr(" 6.4", 0, 4, 1000.0), 1e-9)
	})
}

func TestRAHours(t *testing.T) {
	assert.InDelta(t, 5.5, parse.RAHours(5, 30, 0), 1e-9)
	assert.InDelta(t, 2.529750, parse.RAHours(2, 31, 47.1), 1e-6)
}

func TestDecDegrees(t *testing.T) {
	assert.InDelta(t, 89.264167, parse.DecDegrees("+", 89, 15, 51), 1e-6)
	assert.InDelta(t, -16.716111, parse.DecDegrees("-", 16, 42, 58), 1e-6)
	assert.InDelta(t, 7.5, parse.DecDegrees(" ", 7, 30, 0), 1e-9, "blank sign is positive")
}
