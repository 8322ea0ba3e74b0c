package jahis

var drugPattern = recordPattern("201", 7)

// DrugRecord (tag 201).
type DrugRecord struct {
	RpNumber     uint32
	Name         string
	Dosage       string
	Unit         string
	DrugCodeKind DrugCodeType
	DrugCode     *string
	CreatedBy    RecordCreator
}

func (r DrugRecord) RecordNumber() int { return 201 }
func (r DrugRecord) FieldCount() int   { return 7 }

func (r DrugRecord) Serialize() string {
	return serializeFields("201",
		uint32ToStr(r.RpNumber), r.Name, r.Dosage, r.Unit,
		r.DrugCodeKind.ToCode(), optOrEmpty(r.DrugCode), r.CreatedBy.ToCode(),
	)
}

func ParseDrugRecord(line string) (DrugRecord, error) {
	f, err := matchRecordLine(drugPattern, "201", line)
	if err != nil {
		return DrugRecord{}, err
	}
	rp, err := reqUint32(f[0], "rp_number")
	if err != nil {
		return DrugRecord{}, err
	}
	dct, err := TryDrugCodeTypeFromInt(atoiMust(f[4]))
	if err != nil {
		return DrugRecord{}, err
	}
	cb, err := TryRecordCreatorFromInt(atoiMust(f[6]))
	if err != nil {
		return DrugRecord{}, err
	}
	return DrugRecord{
		RpNumber: rp, Name: f[1], Dosage: f[2], Unit: f[3],
		DrugCodeKind: dct, DrugCode: optString(f[5]), CreatedBy: cb,
	}, nil
}

var drugSupplementaryPattern = recordPattern("281", 3)

// DrugSupplementaryRecord (tag 281).
type DrugSupplementaryRecord struct {
	RpNumber  uint32
	Content   string
	CreatedBy RecordCreator
}

func (r DrugSupplementaryRecord) RecordNumber() int { return 281 }
func (r DrugSupplementaryRecord) FieldCount() int   { return 3 }

func (r DrugSupplementaryRecord) Serialize() string {
	return serializeFields("281", uint32ToStr(r.RpNumber), r.Content, r.CreatedBy.ToCode())
}

func ParseDrugSupplementaryRecord(line string) (DrugSupplementaryRecord, error) {
	f, err := matchRecordLine(drugSupplementaryPattern, "281", line)
	if err != nil {
		return DrugSupplementaryRecord{}, err
	}
	rp, err := reqUint32(f[0], "rp_number")
	if err != nil {
		return DrugSupplementaryRecord{}, err
	}
	cb, err := TryRecordCreatorFromInt(atoiMust(f[2]))
	if err != nil {
		return DrugSupplementaryRecord{}, err
	}
	return DrugSupplementaryRecord{RpNumber: rp, Content: f[1], CreatedBy: cb}, nil
}

var drugNoticePattern = recordPattern("291", 3)

// DrugNoticeRecord (tag 291).
type DrugNoticeRecord struct {
	RpNumber  uint32
	Content   string
	CreatedBy RecordCreator
}

func (r DrugNoticeRecord) RecordNumber() int { return 291 }
func (r DrugNoticeRecord) FieldCount() int   { return 3 }

func (r DrugNoticeRecord) Serialize() string {
	return serializeFields("291", uint32ToStr(r.RpNumber), r.Content, r.CreatedBy.ToCode())
}

func ParseDrugNoticeRecord(line string) (DrugNoticeRecord, error) {
	f, err := matchRecordLine(drugNoticePattern, "291", line)
	if err != nil {
		return DrugNoticeRecord{}, err
	}
	rp, err := reqUint32(f[0], "rp_number")
	if err != nil {
		return DrugNoticeRecord{}, err
	}
	cb, err := TryRecordCreatorFromInt(atoiMust(f[2]))
	if err != nil {
		return DrugNoticeRecord{}, err
	}
	return DrugNoticeRecord{RpNumber: rp, Content: f[1], CreatedBy: cb}, nil
}

var usagePattern = recordPattern("301", 8)

// UsageRecord (tag 301).
type UsageRecord struct {
	RpNumber      uint32
	Name          string
	Quantity      *uint32
	Unit          *string
	DosageFormVal *DosageForm
	UsageCodeKind *UsageCodeType
	UsageCode     *string
	CreatedBy     RecordCreator
}

func (r UsageRecord) RecordNumber() int { return 301 }
func (r UsageRecord) FieldCount() int   { return 8 }

func (r UsageRecord) Serialize() string {
	return serializeFields("301",
		uint32ToStr(r.RpNumber), r.Name, optUint32ToStr(r.Quantity), optOrEmpty(r.Unit),
		optDosageFormToStr(r.DosageFormVal), optUsageCodeTypeToStr(r.UsageCodeKind),
		optOrEmpty(r.UsageCode), r.CreatedBy.ToCode(),
	)
}

func ParseUsageRecord(line string) (UsageRecord, error) {
	f, err := matchRecordLine(usagePattern, "301", line)
	if err != nil {
		return UsageRecord{}, err
	}
	rp, err := reqUint32(f[0], "rp_number")
	if err != nil {
		return UsageRecord{}, err
	}
	qty, err := optUint32(f[2], "quantity")
	if err != nil {
		return UsageRecord{}, err
	}
	df, err := optDosageForm(f[4])
	if err != nil {
		return UsageRecord{}, err
	}
	uct, err := optUsageCodeType(f[5])
	if err != nil {
		return UsageRecord{}, err
	}
	cb, err := TryRecordCreatorFromInt(atoiMust(f[7]))
	if err != nil {
		return UsageRecord{}, err
	}
	return UsageRecord{
		RpNumber: rp, Name: f[1], Quantity: qty, Unit: optString(f[3]),
		DosageFormVal: df, UsageCodeKind: uct, UsageCode: optString(f[6]), CreatedBy: cb,
	}, nil
}

func optDosageForm(s string) (*DosageForm, error) {
	if s == "" {
		return nil, nil
	}
	d, err := TryDosageFormFromInt(atoiMust(s))
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func optDosageFormToStr(d *DosageForm) string {
	if d == nil {
		return ""
	}
	return d.ToCode()
}

func optUsageCodeType(s string) (*UsageCodeType, error) {
	if s == "" {
		return nil, nil
	}
	u, err := TryUsageCodeTypeFromInt(atoiMust(s))
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func optUsageCodeTypeToStr(u *UsageCodeType) string {
	if u == nil {
		return ""
	}
	return u.ToCode()
}

var usageSupplementaryPattern = recordPattern("311", 3)

// UsageSupplementaryRecord (tag 311).
type UsageSupplementaryRecord struct {
	RpNumber  uint32
	Content   string
	CreatedBy RecordCreator
}

func (r UsageSupplementaryRecord) RecordNumber() int { return 311 }
func (r UsageSupplementaryRecord) FieldCount() int   { return 3 }

func (r UsageSupplementaryRecord) Serialize() string {
	return serializeFields("311", uint32ToStr(r.RpNumber), r.Content, r.CreatedBy.ToCode())
}

func ParseUsageSupplementaryRecord(line string) (UsageSupplementaryRecord, error) {
	f, err := matchRecordLine(usageSupplementaryPattern, "311", line)
	if err != nil {
		return UsageSupplementaryRecord{}, err
	}
	rp, err := reqUint32(f[0], "rp_number")
	if err != nil {
		return UsageSupplementaryRecord{}, err
	}
	cb, err := TryRecordCreatorFromInt(atoiMust(f[2]))
	if err != nil {
		return UsageSupplementaryRecord{}, err
	}
	return UsageSupplementaryRecord{RpNumber: rp, Content: f[1], CreatedBy: cb}, nil
}

var rpNoticePattern = recordPattern("391", 3)

// RpNoticeRecord (tag 391).
type RpNoticeRecord struct {
	RpNumber  uint32
	Content   string
	CreatedBy RecordCreator
}

func (r RpNoticeRecord) RecordNumber() int { return 391 }
func (r RpNoticeRecord) FieldCount() int   { return 3 }

func (r RpNoticeRecord) Serialize() string {
	return serializeFields("391", uint32ToStr(r.RpNumber), r.Content, r.CreatedBy.ToCode())
}

func ParseRpNoticeRecord(line string) (RpNoticeRecord, error) {
	f, err := matchRecordLine(rpNoticePattern, "391", line)
	if err != nil {
		return RpNoticeRecord{}, err
	}
	rp, err := reqUint32(f[0], "rp_number")
	if err != nil {
		return RpNoticeRecord{}, err
	}
	cb, err := TryRecordCreatorFromInt(atoiMust(f[2]))
	if err != nil {
		return RpNoticeRecord{}, err
	}
	return RpNoticeRecord{RpNumber: rp, Content: f[1], CreatedBy: cb}, nil
}
