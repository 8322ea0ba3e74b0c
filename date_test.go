package jahis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateEraBoundaries(t *testing.T) {
	cases := []struct {
		gregorian string
		era7      string
	}{
		{"19890107", "S640107"},
		{"19890108", "H010108"},
		{"20190430", "H310430"},
		{"20190501", "R010501"},
		{"19261225", "S011225"},
		{"19261224", "T151224"},
		{"19120730", "T010730"},
		{"19120729", "M450729"},
		{"18730101", "M060101"},
	}
	for _, tc := range cases {
		t.Run(tc.gregorian, func(t *testing.T) {
			d, err := ParseDate(tc.gregorian)
			require.NoError(t, err)
			got, err := d.TryToEra7()
			require.NoError(t, err)
			assert.Equal(t, tc.era7, got)

			back, err := ParseDate(got)
			require.NoError(t, err)
			assert.Equal(t, d.ToGregorian8(), back.ToGregorian8())
		})
	}
}

func TestDateBeforeMeijiEraFails(t *testing.T) {
	_, err := NewGregorianDate(1872, 12, 31)
	require.NoError(t, err)
	d, _ := NewGregorianDate(1872, 12, 31)
	_, err = d.TryToEra7()
	require.Error(t, err)
	assert.True(t, IsKind(err, InvalidArgument))
}

func TestDatePreservesConstructedForm(t *testing.T) {
	eraDate, err := NewEraDate(GengoYear{Era: Reiwa, Year: 1}, 5, 1)
	require.NoError(t, err)
	assert.Equal(t, "R010501", eraDate.ToCode())
	assert.Equal(t, "20190501", eraDate.ToGregorian8())

	gregDate, err := NewGregorianDate(2019, 5, 1)
	require.NoError(t, err)
	assert.Equal(t, "20190501", gregDate.ToCode())
}

func TestDateInvalidCalendarDates(t *testing.T) {
	_, err := NewGregorianDate(2021, 2, 29)
	require.Error(t, err)
	_, err = NewGregorianDate(2020, 2, 30)
	require.Error(t, err)
	_, err = NewGregorianDate(2020, 13, 1)
	require.Error(t, err)
}

func TestParseDateRejectsMalformed(t *testing.T) {
	for _, s := range []string{"", "2020010", "20200101X", "X200101"} {
		_, err := ParseDate(s)
		assert.Error(t, err, s)
	}
}
