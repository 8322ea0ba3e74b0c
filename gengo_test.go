package jahis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGengoYearRoundTrip(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		wantEra Era
		wantYr  int
		code    string
		display string
	}{
		{"kanji year 2", "令和2年", Reiwa, 2, "R02", "令和2年"},
		{"kanji gannen", "令和元年", Reiwa, 1, "R01", "令和元年"},
		{"latin letter lowercase", "h31年", Heisei, 31, "H31", "平成31年"},
		{"era square", "㍼64年", Showa, 64, "S64", "昭和64年"},
		{"no trailing nen", "T5", Taisho, 5, "T05", "大正5年"},
		{"meiji", "明治45年", Meiji, 45, "M45", "明治45年"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := ParseGengoYear(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.wantEra, g.Era)
			assert.Equal(t, tc.wantYr, g.Year)
			assert.Equal(t, tc.code, g.ToCode())
			assert.Equal(t, tc.display, g.Display())
		})
	}
}

func TestGengoYearInvalid(t *testing.T) {
	for _, s := range []string{"", "Z01", "令和", "令和-1年", "Q5年"} {
		_, err := ParseGengoYear(s)
		assert.Error(t, err, s)
		assert.True(t, IsKind(err, InvalidArgument), s)
	}
}
