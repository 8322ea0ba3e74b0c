package jahis

import "regexp"

var (
	versionPattern = regexp.MustCompile(`^JAHISTC([0-9]{2}),([0-9]+)$`)
	patientPattern = recordPattern("1", 10)
)

// VersionRecord is the document's leading "JAHISTC" line: an opaque
// two-digit version number and the output category.
type VersionRecord struct {
	Number uint32
	Output OutputCategory
}

// NewVersion builds a VersionRecord. Number is treated as an opaque
// uint32 in 0-99 with no semantic validation (spec.md §9): any two-digit
// value round-trips, so no error is returned here.
func NewVersion(number uint32, output OutputCategory) VersionRecord {
	return VersionRecord{Number: number, Output: output}
}

// DefaultVersion returns a harmless default VersionRecord; the choice of
// 6 carries no meaning beyond matching a commonly seen wire value.
func DefaultVersion() VersionRecord {
	return VersionRecord{Number: 6, Output: ToPatient}
}

func (v VersionRecord) RecordNumber() int { return 0 }
func (v VersionRecord) FieldCount() int   { return 2 }

func (v VersionRecord) Serialize() string {
	return "JAHISTC" + padTwoDigits(v.Number) + "," + v.Output.ToCode()
}

// ParseVersionRecord parses a "JAHISTC" line.
func ParseVersionRecord(line string) (VersionRecord, error) {
	m := versionPattern.FindStringSubmatch(line)
	if m == nil {
		return VersionRecord{}, errInvalidRecordLine("JAHISTC", line)
	}
	n, err := reqUint32(m[1], "version_number")
	if err != nil {
		return VersionRecord{}, err
	}
	out, err := TryOutputCategoryFromInt(atoiMust(m[2]))
	if err != nil {
		return VersionRecord{}, err
	}
	return VersionRecord{Number: n, Output: out}, nil
}

// PatientRecord (tag 1) describes the notebook's subject patient.
type PatientRecord struct {
	Name            string
	GenderValue     Gender
	DayOfBirth      Date
	Zip             *string
	Address         *string
	Tel             *string
	EmergencyContact *string
	BloodType       *string
	BodyWeight      *float32
	NameKana        *string
}

func (r PatientRecord) RecordNumber() int { return 1 }
func (r PatientRecord) FieldCount() int   { return 10 }

func (r PatientRecord) Serialize() string {
	return serializeFields("1",
		r.Name,
		r.GenderValue.ToCode(),
		r.DayOfBirth.ToCode(),
		optOrEmpty(r.Zip),
		optOrEmpty(r.Address),
		optOrEmpty(r.Tel),
		optOrEmpty(r.EmergencyContact),
		optOrEmpty(r.BloodType),
		optFloat32ToStr(r.BodyWeight),
		optOrEmpty(r.NameKana),
	)
}

// ParsePatientRecord parses a Patient(1) line.
func ParsePatientRecord(line string) (PatientRecord, error) {
	f, err := matchRecordLine(patientPattern, "1", line)
	if err != nil {
		return PatientRecord{}, err
	}
	gender, err := TryGenderFromInt(atoiMust(f[1]))
	if err != nil {
		return PatientRecord{}, err
	}
	dob, err := reqDate(f[2], "day_of_birth")
	if err != nil {
		return PatientRecord{}, err
	}
	bw, err := optFloat32(f[8], "body_weight")
	if err != nil {
		return PatientRecord{}, err
	}
	return PatientRecord{
		Name:             f[0],
		GenderValue:      gender,
		DayOfBirth:       dob,
		Zip:              optString(f[3]),
		Address:          optString(f[4]),
		Tel:              optString(f[5]),
		EmergencyContact: optString(f[6]),
		BloodType:        optString(f[7]),
		BodyWeight:       bw,
		NameKana:         optString(f[9]),
	}, nil
}

var specialPatientNotePattern = recordPattern("2", 3)

// SpecialPatientNoteRecord (tag 2).
type SpecialPatientNoteRecord struct {
	Category  SpecialPatientNoteCategory
	Content   string
	CreatedBy RecordCreator
}

func (r SpecialPatientNoteRecord) RecordNumber() int { return 2 }
func (r SpecialPatientNoteRecord) FieldCount() int   { return 3 }

func (r SpecialPatientNoteRecord) Serialize() string {
	return serializeFields("2", r.Category.ToCode(), r.Content, r.CreatedBy.ToCode())
}

func ParseSpecialPatientNoteRecord(line string) (SpecialPatientNoteRecord, error) {
	f, err := matchRecordLine(specialPatientNotePattern, "2", line)
	if err != nil {
		return SpecialPatientNoteRecord{}, err
	}
	cat, err := TrySpecialPatientNoteCategoryFromInt(atoiMust(f[0]))
	if err != nil {
		return SpecialPatientNoteRecord{}, err
	}
	cb, err := TryRecordCreatorFromInt(atoiMust(f[2]))
	if err != nil {
		return SpecialPatientNoteRecord{}, err
	}
	return SpecialPatientNoteRecord{Category: cat, Content: f[1], CreatedBy: cb}, nil
}

var otcDrugPattern = recordPattern("3", 4)

// OtcDrugRecord (tag 3).
type OtcDrugRecord struct {
	DrugName  string
	StartDate *Date
	EndDate   *Date
	CreatedBy RecordCreator
}

func (r OtcDrugRecord) RecordNumber() int { return 3 }
func (r OtcDrugRecord) FieldCount() int   { return 4 }

func (r OtcDrugRecord) Serialize() string {
	return serializeFields("3", r.DrugName, optDateToStr(r.StartDate), optDateToStr(r.EndDate), r.CreatedBy.ToCode())
}

func ParseOtcDrugRecord(line string) (OtcDrugRecord, error) {
	f, err := matchRecordLine(otcDrugPattern, "3", line)
	if err != nil {
		return OtcDrugRecord{}, err
	}
	start, err := optDate(f[1], "start_date")
	if err != nil {
		return OtcDrugRecord{}, err
	}
	end, err := optDate(f[2], "end_date")
	if err != nil {
		return OtcDrugRecord{}, err
	}
	cb, err := TryRecordCreatorFromInt(atoiMust(f[3]))
	if err != nil {
		return OtcDrugRecord{}, err
	}
	return OtcDrugRecord{DrugName: f[0], StartDate: start, EndDate: end, CreatedBy: cb}, nil
}

var memoPattern = recordPattern("4", 3)

// MemoRecord (tag 4).
type MemoRecord struct {
	Content   string
	CreatedAt *Date
	CreatedBy RecordCreator
}

func (r MemoRecord) RecordNumber() int { return 4 }
func (r MemoRecord) FieldCount() int   { return 3 }

func (r MemoRecord) Serialize() string {
	return serializeFields("4", r.Content, optDateToStr(r.CreatedAt), r.CreatedBy.ToCode())
}

func ParseMemoRecord(line string) (MemoRecord, error) {
	f, err := matchRecordLine(memoPattern, "4", line)
	if err != nil {
		return MemoRecord{}, err
	}
	at, err := optDate(f[1], "created_at")
	if err != nil {
		return MemoRecord{}, err
	}
	cb, err := TryRecordCreatorFromInt(atoiMust(f[2]))
	if err != nil {
		return MemoRecord{}, err
	}
	return MemoRecord{Content: f[0], CreatedAt: at, CreatedBy: cb}, nil
}
