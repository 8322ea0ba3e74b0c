package jahis

var dateRecordPattern = recordPattern("5", 2)

// DateRecord (tag 5) opens a DispensingInformationBlock.
type DateRecord struct {
	CreatedAt Date
	CreatedBy RecordCreator
}

func (r DateRecord) RecordNumber() int { return 5 }
func (r DateRecord) FieldCount() int   { return 2 }

func (r DateRecord) Serialize() string {
	return serializeFields("5", r.CreatedAt.ToCode(), r.CreatedBy.ToCode())
}

func ParseDateRecord(line string) (DateRecord, error) {
	f, err := matchRecordLine(dateRecordPattern, "5", line)
	if err != nil {
		return DateRecord{}, err
	}
	at, err := reqDate(f[0], "created_at")
	if err != nil {
		return DateRecord{}, err
	}
	cb, err := TryRecordCreatorFromInt(atoiMust(f[1]))
	if err != nil {
		return DateRecord{}, err
	}
	return DateRecord{CreatedAt: at, CreatedBy: cb}, nil
}

var pharmacyPattern = recordPattern("11", 8)

// PharmacyRecord (tag 11).
type PharmacyRecord struct {
	Name            string
	PrefectureValue *Prefecture
	FeeTableValue   *FeeTable
	InstitutionCode *string
	Zip             *string
	Address         *string
	Tel             *string
	CreatedBy       RecordCreator
}

func (r PharmacyRecord) RecordNumber() int { return 11 }
func (r PharmacyRecord) FieldCount() int   { return 8 }

func (r PharmacyRecord) Serialize() string {
	return serializeFields("11",
		r.Name,
		optPrefectureToStr(r.PrefectureValue),
		optFeeTableToStr(r.FeeTableValue),
		optOrEmpty(r.InstitutionCode),
		optOrEmpty(r.Zip),
		optOrEmpty(r.Address),
		optOrEmpty(r.Tel),
		r.CreatedBy.ToCode(),
	)
}

func ParsePharmacyRecord(line string) (PharmacyRecord, error) {
	f, err := matchRecordLine(pharmacyPattern, "11", line)
	if err != nil {
		return PharmacyRecord{}, err
	}
	pref, err := optPrefecture(f[1])
	if err != nil {
		return PharmacyRecord{}, err
	}
	ft, err := optFeeTable(f[2])
	if err != nil {
		return PharmacyRecord{}, err
	}
	cb, err := TryRecordCreatorFromInt(atoiMust(f[7]))
	if err != nil {
		return PharmacyRecord{}, err
	}
	return PharmacyRecord{
		Name:            f[0],
		PrefectureValue: pref,
		FeeTableValue:   ft,
		InstitutionCode: optString(f[3]),
		Zip:             optString(f[4]),
		Address:         optString(f[5]),
		Tel:             optString(f[6]),
		CreatedBy:       cb,
	}, nil
}

func optPrefecture(s string) (*Prefecture, error) {
	if s == "" {
		return nil, nil
	}
	p, err := TryPrefectureFromInt(atoiMust(s))
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func optPrefectureToStr(p *Prefecture) string {
	if p == nil {
		return ""
	}
	return p.ToCode()
}

func optFeeTable(s string) (*FeeTable, error) {
	if s == "" {
		return nil, nil
	}
	f, err := TryFeeTableFromInt(atoiMust(s))
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func optFeeTableToStr(f *FeeTable) string {
	if f == nil {
		return ""
	}
	return f.ToCode()
}

var pharmacistPattern = recordPattern("15", 3)

// PharmacistRecord (tag 15).
type PharmacistRecord struct {
	Name      string
	Contact   *string
	CreatedBy RecordCreator
}

func (r PharmacistRecord) RecordNumber() int { return 15 }
func (r PharmacistRecord) FieldCount() int   { return 3 }

func (r PharmacistRecord) Serialize() string {
	return serializeFields("15", r.Name, optOrEmpty(r.Contact), r.CreatedBy.ToCode())
}

func ParsePharmacistRecord(line string) (PharmacistRecord, error) {
	f, err := matchRecordLine(pharmacistPattern, "15", line)
	if err != nil {
		return PharmacistRecord{}, err
	}
	cb, err := TryRecordCreatorFromInt(atoiMust(f[2]))
	if err != nil {
		return PharmacistRecord{}, err
	}
	return PharmacistRecord{Name: f[0], Contact: optString(f[1]), CreatedBy: cb}, nil
}

var medicalInstitutionPattern = recordPattern("51", 5)

// MedicalInstitutionRecord (tag 51).
type MedicalInstitutionRecord struct {
	Name            string
	PrefectureValue *Prefecture
	FeeTableValue   *FeeTable
	InstitutionCode *string
	CreatedBy       RecordCreator
}

func (r MedicalInstitutionRecord) RecordNumber() int { return 51 }
func (r MedicalInstitutionRecord) FieldCount() int   { return 5 }

func (r MedicalInstitutionRecord) Serialize() string {
	return serializeFields("51",
		r.Name,
		optPrefectureToStr(r.PrefectureValue),
		optFeeTableToStr(r.FeeTableValue),
		optOrEmpty(r.InstitutionCode),
		r.CreatedBy.ToCode(),
	)
}

func ParseMedicalInstitutionRecord(line string) (MedicalInstitutionRecord, error) {
	f, err := matchRecordLine(medicalInstitutionPattern, "51", line)
	if err != nil {
		return MedicalInstitutionRecord{}, err
	}
	pref, err := optPrefecture(f[1])
	if err != nil {
		return MedicalInstitutionRecord{}, err
	}
	ft, err := optFeeTable(f[2])
	if err != nil {
		return MedicalInstitutionRecord{}, err
	}
	cb, err := TryRecordCreatorFromInt(atoiMust(f[4]))
	if err != nil {
		return MedicalInstitutionRecord{}, err
	}
	return MedicalInstitutionRecord{
		Name:            f[0],
		PrefectureValue: pref,
		FeeTableValue:   ft,
		InstitutionCode: optString(f[3]),
		CreatedBy:       cb,
	}, nil
}

var physicianPattern = recordPattern("55", 3)

// PhysicianRecord (tag 55).
type PhysicianRecord struct {
	Name      string
	Specialty *string
	CreatedBy RecordCreator
}

func (r PhysicianRecord) RecordNumber() int { return 55 }
func (r PhysicianRecord) FieldCount() int   { return 3 }

func (r PhysicianRecord) Serialize() string {
	return serializeFields("55", r.Name, optOrEmpty(r.Specialty), r.CreatedBy.ToCode())
}

func ParsePhysicianRecord(line string) (PhysicianRecord, error) {
	f, err := matchRecordLine(physicianPattern, "55", line)
	if err != nil {
		return PhysicianRecord{}, err
	}
	cb, err := TryRecordCreatorFromInt(atoiMust(f[2]))
	if err != nil {
		return PhysicianRecord{}, err
	}
	return PhysicianRecord{Name: f[0], Specialty: optString(f[1]), CreatedBy: cb}, nil
}
