package jahis

var noticePattern = recordPattern("401", 2)

// NoticeRecord (tag 401).
type NoticeRecord struct {
	Content   string
	CreatedBy RecordCreator
}

func (r NoticeRecord) RecordNumber() int { return 401 }
func (r NoticeRecord) FieldCount() int   { return 2 }

func (r NoticeRecord) Serialize() string {
	return serializeFields("401", r.Content, r.CreatedBy.ToCode())
}

func ParseNoticeRecord(line string) (NoticeRecord, error) {
	f, err := matchRecordLine(noticePattern, "401", line)
	if err != nil {
		return NoticeRecord{}, err
	}
	cb, err := TryRecordCreatorFromInt(atoiMust(f[1]))
	if err != nil {
		return NoticeRecord{}, err
	}
	return NoticeRecord{Content: f[0], CreatedBy: cb}, nil
}

var informationProvisionPattern = recordPattern("411", 3)

// InformationProvisionRecord (tag 411).
type InformationProvisionRecord struct {
	Content         string
	InformationType ProvidedInformationType
	CreatedBy       RecordCreator
}

func (r InformationProvisionRecord) RecordNumber() int { return 411 }
func (r InformationProvisionRecord) FieldCount() int   { return 3 }

func (r InformationProvisionRecord) Serialize() string {
	return serializeFields("411", r.Content, r.InformationType.ToCode(), r.CreatedBy.ToCode())
}

func ParseInformationProvisionRecord(line string) (InformationProvisionRecord, error) {
	f, err := matchRecordLine(informationProvisionPattern, "411", line)
	if err != nil {
		return InformationProvisionRecord{}, err
	}
	it, err := TryProvidedInformationTypeFromInt(atoiMust(f[1]))
	if err != nil {
		return InformationProvisionRecord{}, err
	}
	cb, err := TryRecordCreatorFromInt(atoiMust(f[2]))
	if err != nil {
		return InformationProvisionRecord{}, err
	}
	return InformationProvisionRecord{Content: f[0], InformationType: it, CreatedBy: cb}, nil
}

var notePattern = recordPattern("501", 2)

// NoteRecord (tag 501).
type NoteRecord struct {
	Content   string
	CreatedBy RecordCreator
}

func (r NoteRecord) RecordNumber() int { return 501 }
func (r NoteRecord) FieldCount() int   { return 2 }

func (r NoteRecord) Serialize() string {
	return serializeFields("501", r.Content, r.CreatedBy.ToCode())
}

func ParseNoteRecord(line string) (NoteRecord, error) {
	f, err := matchRecordLine(notePattern, "501", line)
	if err != nil {
		return NoteRecord{}, err
	}
	cb, err := TryRecordCreatorFromInt(atoiMust(f[1]))
	if err != nil {
		return NoteRecord{}, err
	}
	return NoteRecord{Content: f[0], CreatedBy: cb}, nil
}

var fromPatientPattern = recordPattern("601", 2)

// FromPatientRecord (tag 601). Exempt from created_by, per spec.md §3.2.
//
// The created_at guard here checks emptiness of the captured date field
// itself, not the content field — the reference implementation swapped
// these two, which spec.md documents as a bug (see DESIGN.md's Open
// Question log); using the date field directly sidesteps the bug rather
// than reproducing it.
type FromPatientRecord struct {
	Content   string
	CreatedAt *Date
}

func (r FromPatientRecord) RecordNumber() int { return 601 }
func (r FromPatientRecord) FieldCount() int   { return 2 }

func (r FromPatientRecord) Serialize() string {
	return serializeFields("601", r.Content, optDateToStr(r.CreatedAt))
}

func ParseFromPatientRecord(line string) (FromPatientRecord, error) {
	f, err := matchRecordLine(fromPatientPattern, "601", line)
	if err != nil {
		return FromPatientRecord{}, err
	}
	at, err := optDate(f[1], "created_at")
	if err != nil {
		return FromPatientRecord{}, err
	}
	return FromPatientRecord{Content: f[0], CreatedAt: at}, nil
}

var familyPharmacistPattern = recordPattern("701", 6)

// FamilyPharmacistRecord (tag 701).
type FamilyPharmacistRecord struct {
	Name         string
	PharmacyName string
	Contact      string
	StartDate    *Date
	EndDate      *Date
	CreatedBy    RecordCreator
}

func (r FamilyPharmacistRecord) RecordNumber() int { return 701 }
func (r FamilyPharmacistRecord) FieldCount() int   { return 6 }

func (r FamilyPharmacistRecord) Serialize() string {
	return serializeFields("701",
		r.Name, r.PharmacyName, r.Contact,
		optDateToStr(r.StartDate), optDateToStr(r.EndDate), r.CreatedBy.ToCode(),
	)
}

func ParseFamilyPharmacistRecord(line string) (FamilyPharmacistRecord, error) {
	f, err := matchRecordLine(familyPharmacistPattern, "701", line)
	if err != nil {
		return FamilyPharmacistRecord{}, err
	}
	start, err := optDate(f[3], "start_date")
	if err != nil {
		return FamilyPharmacistRecord{}, err
	}
	end, err := optDate(f[4], "end_date")
	if err != nil {
		return FamilyPharmacistRecord{}, err
	}
	cb, err := TryRecordCreatorFromInt(atoiMust(f[5]))
	if err != nil {
		return FamilyPharmacistRecord{}, err
	}
	return FamilyPharmacistRecord{
		Name: f[0], PharmacyName: f[1], Contact: f[2],
		StartDate: start, EndDate: end, CreatedBy: cb,
	}, nil
}
