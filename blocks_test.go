package jahis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinimalNotebookRoundTrip(t *testing.T) {
	text := "JAHISTC06,1\r\n1,山田太郎,1,19800101,,,,,,,\r\n"
	n, err := ParseMedicineNotebook(text)
	require.NoError(t, err)
	assert.Equal(t, uint32(6), n.Version.Number)
	assert.Equal(t, ToPatient, n.Version.Output)
	assert.Equal(t, "山田太郎", n.Patient.Name)
	assert.Equal(t, Male, n.Patient.GenderValue)
	assert.Equal(t, "19800101", n.Patient.DayOfBirth.ToGregorian8())
	assert.Empty(t, n.Dispensing)

	assert.Equal(t, "JAHISTC06,1\r\n1,山田太郎,1,19800101,,,,,,,", n.Serialize())
}

func TestFullDispensingBlockRoundTrip(t *testing.T) {
	text := "5,R010501,1\r\n" +
		"11,薬局A,13,4,,,,,1\r\n" +
		"201,1,薬X,1,錠,1,,1\r\n" +
		"301,1,1日1回,1,回,1,,,1"

	b, err := ParseDispensingInformationBlockFromText(text)
	require.NoError(t, err)
	require.Len(t, b.Prescriptions, 1)
	require.Len(t, b.Prescriptions[0].RpBlocks, 1)
	rp := b.Prescriptions[0].RpBlocks[0]
	require.Len(t, rp.Drugs, 1)
	assert.Equal(t, "薬X", rp.Drugs[0].Drug.Name)
	assert.Equal(t, "1日1回", rp.Usage.Name)

	assert.Equal(t, text, b.Serialize())
}

func TestDispensingBlockOrderingViolationFails(t *testing.T) {
	// Pharmacy before Date.
	_, err := ParseDispensingInformationBlockFromText("11,薬局A,13,4,,,,,1\r\n5,R010501,1")
	require.Error(t, err)
	assert.True(t, IsKind(err, GotUnexpectedRecordLine))

	// Two Pharmacy lines.
	_, err = ParseDispensingInformationBlockFromText(
		"5,R010501,1\r\n11,薬局A,13,4,,,,,1\r\n11,薬局B,13,4,,,,,1")
	require.Error(t, err)
	assert.True(t, IsKind(err, GotUnexpectedRecordLine))
}

func TestDispensingBlockMissingPharmacyFails(t *testing.T) {
	_, err := ParseDispensingInformationBlockFromText("5,R010501,1")
	require.Error(t, err)
	assert.True(t, IsKind(err, MissingRequiredRecord))
}

func TestDispensingBlockMissingDateFails(t *testing.T) {
	// A block with only a Pharmacy(11) line and no Date(5) at all must
	// fail with MissingRequiredRecord, not GotUnexpectedRecordLine.
	_, err := ParseDispensingInformationBlockFromText("11,薬局A,13,4,,,,,1")
	require.Error(t, err)
	assert.True(t, IsKind(err, MissingRequiredRecord))
}

func TestNotebookMissingPatientFails(t *testing.T) {
	_, err := ParseMedicineNotebook("JAHISTC06,1")
	require.Error(t, err)
	assert.True(t, IsKind(err, MissingRequiredRecord))
}

func TestNotebookMissingPatientWithTrailingRecordsFails(t *testing.T) {
	// A notebook that jumps from the version line straight to a
	// SpecialPatientNote(2), with no Patient(1) anywhere, must still fail
	// with MissingRequiredRecord rather than GotUnexpectedRecordLine.
	_, err := ParseMedicineNotebook("JAHISTC06,1\r\n2,1,アレルギーあり,1")
	require.Error(t, err)
	assert.True(t, IsKind(err, MissingRequiredRecord))
}

func TestNotebookWithFullDispensingAndFamilyPharmacist(t *testing.T) {
	text := "JAHISTC06,1\r\n" +
		"1,山田太郎,1,19800101,,,,,,,\r\n" +
		"5,R010501,1\r\n" +
		"11,薬局A,13,4,,,,,1\r\n" +
		"201,1,薬X,1,錠,1,,1\r\n" +
		"301,1,1日1回,1,回,1,,,1\r\n" +
		"701,佐藤,薬局B,03-0000-0000,,,1"

	n, err := ParseMedicineNotebook(text)
	require.NoError(t, err)
	require.Len(t, n.Dispensing, 1)
	require.Len(t, n.FamilyPharmacists, 1)
	assert.Equal(t, "佐藤", n.FamilyPharmacists[0].Name)
	assert.Equal(t, text, n.Serialize())
}

func TestDrugBlockRequiresDrugFirst(t *testing.T) {
	_, err := ParseDrugBlockFromText("281,1,備考,1")
	require.Error(t, err)
	assert.True(t, IsKind(err, GotUnexpectedRecordLine))
}

func TestRpBlockRequiresUsageAfterDrugs(t *testing.T) {
	_, err := ParseRpBlockFromText("201,1,薬X,1,錠,1,,1")
	require.Error(t, err)
	assert.True(t, IsKind(err, MissingRequiredRecord))
}

func TestUnrecognizedLinePrefixFails(t *testing.T) {
	_, err := ParseMedicineNotebook("JAHISTC06,1\r\n1,山田太郎,1,19800101,,,,,,,\r\n999,bogus")
	require.Error(t, err)
	assert.True(t, IsKind(err, GotUnexpectedRecordLine))
}
