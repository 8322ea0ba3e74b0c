package jahis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefectureAliases(t *testing.T) {
	for _, s := range []string{"13", "JP-13", "東京", "東京都", "Tokyo", "tokyo"} {
		p, err := ParsePrefecture(s)
		require.NoError(t, err, s)
		assert.Equal(t, Prefecture(13), p)
		assert.Equal(t, "13", p.ToCode())
	}
}

func TestPrefectureInvalid(t *testing.T) {
	_, err := ParsePrefecture("Nowhere")
	require.Error(t, err)
	assert.True(t, IsKind(err, InvalidArgument))

	_, err = TryPrefectureFromInt(48)
	require.Error(t, err)
}

func TestEnumRoundTripsViaCodeAndDisplay(t *testing.T) {
	t.Run("FeeTable", func(t *testing.T) {
		for _, v := range []FeeTable{Medicine, Dentistry, Pharmacy} {
			parsed, err := ParseFeeTable(v.ToCode())
			require.NoError(t, err)
			assert.Equal(t, v, parsed)
			parsed2, err := ParseFeeTable(v.Display())
			require.NoError(t, err)
			assert.Equal(t, v, parsed2)
			n, err := TryFeeTableFromInt(int(v))
			require.NoError(t, err)
			assert.Equal(t, v, n)
		}
		_, err := TryFeeTableFromInt(2)
		assert.Error(t, err, "2 is the documented gap")
	})

	t.Run("DosageForm", func(t *testing.T) {
		for _, v := range []DosageForm{OralAdministration, Drop, Potion, Injection, ExternalUse, Infusodecoction, Decoction, Material, OtherDosageForm} {
			parsed, err := ParseDosageForm(v.ToCode())
			require.NoError(t, err)
			assert.Equal(t, v, parsed)
		}
		_, err := TryDosageFormFromInt(8)
		assert.Error(t, err, "8 is the documented gap")
	})

	t.Run("DrugCodeType", func(t *testing.T) {
		for _, v := range []DrugCodeType{DrugCodeNone, DrugCodeReceipt, DrugCodeMhlw, DrugCodeYj, DrugCodeHot} {
			parsed, err := ParseDrugCodeType(v.ToCode())
			require.NoError(t, err)
			assert.Equal(t, v, parsed)
		}
		_, err := TryDrugCodeTypeFromInt(5)
		assert.Error(t, err, "5 is the documented gap")
	})

	t.Run("OutputCategory", func(t *testing.T) {
		for _, v := range []OutputCategory{ToPatient, FromPatient} {
			parsed, err := ParseOutputCategory(v.ToCode())
			require.NoError(t, err)
			assert.Equal(t, v, parsed)
		}
	})

	t.Run("Gender", func(t *testing.T) {
		m, err := ParseGender("Male")
		require.NoError(t, err)
		assert.Equal(t, Male, m)
		f, err := ParseGender("女性")
		require.NoError(t, err)
		assert.Equal(t, Female, f)
	})
}
