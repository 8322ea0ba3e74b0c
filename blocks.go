package jahis

import "strings"

// splitLines splits raw input on any of "\n", "\r\n", "\r" and discards
// blank lines, per spec.md §6.1.
func splitLines(text string) []string {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")
	raw := strings.Split(normalized, "\n")
	out := make([]string, 0, len(raw))
	for _, l := range raw {
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}

// lineCursor is the single left-to-right pass shared by every block
// parser (spec.md §4.3/§5: one monotonic pass, no backtracking).
type lineCursor struct {
	lines []string
	pos   int
}

func (c *lineCursor) done() bool { return c.pos >= len(c.lines) }

// peekTag classifies the next line without consuming it. err is non-nil
// only when the line's prefix matches no recognized tag (spec.md §4.3.2).
func (c *lineCursor) peekTag() (tag int, isVersion bool, err error) {
	line := c.lines[c.pos]
	tag, isVersion, ok := classifyLine(line)
	if !ok {
		return 0, false, errUnexpected(line, "unrecognized record tag")
	}
	return tag, isVersion, nil
}

func (c *lineCursor) peekLine() string { return c.lines[c.pos] }

func (c *lineCursor) advance() string {
	l := c.lines[c.pos]
	c.pos++
	return l
}

// finishStandalone verifies a standalone block parse consumed every
// line; any leftover means the input contained a line this block type
// doesn't own at this position.
func finishStandalone(c *lineCursor) error {
	if !c.done() {
		return errUnexpected(c.peekLine(), "trailing content not part of this block")
	}
	return nil
}

// --- DrugBlock -----------------------------------------------------------

// DrugBlock = one Drug(201), then zero-or-more DrugSupplementary(281),
// then zero-or-more DrugNotice(291).
type DrugBlock struct {
	Drug          DrugRecord
	Supplementary []DrugSupplementaryRecord
	Notice        []DrugNoticeRecord
}

func (b DrugBlock) lines() []string {
	out := []string{b.Drug.Serialize()}
	for _, s := range b.Supplementary {
		out = append(out, s.Serialize())
	}
	for _, n := range b.Notice {
		out = append(out, n.Serialize())
	}
	return out
}

// Serialize renders this block's lines CRLF-joined.
func (b DrugBlock) Serialize() string { return strings.Join(b.lines(), "\r\n") }

// parseDrugBlock consumes exactly one DrugBlock, stopping at the first
// line it does not own (any tag other than 281/291 once started).
func parseDrugBlock(c *lineCursor) (DrugBlock, error) {
	if c.done() {
		return DrugBlock{}, errMissingRequired("Drug(201)")
	}
	tag, _, err := c.peekTag()
	if err != nil {
		return DrugBlock{}, err
	}
	if tag != 201 {
		return DrugBlock{}, errUnexpected(c.peekLine(), "DrugBlock must start with Drug(201)")
	}
	drug, err := ParseDrugRecord(c.advance())
	if err != nil {
		return DrugBlock{}, err
	}
	var supplementary []DrugSupplementaryRecord
	var notice []DrugNoticeRecord
	for !c.done() {
		tag, _, err := c.peekTag()
		if err != nil {
			return DrugBlock{}, err
		}
		switch tag {
		case 281:
			rec, err := ParseDrugSupplementaryRecord(c.advance())
			if err != nil {
				return DrugBlock{}, err
			}
			supplementary = append(supplementary, rec)
		case 291:
			rec, err := ParseDrugNoticeRecord(c.advance())
			if err != nil {
				return DrugBlock{}, err
			}
			notice = append(notice, rec)
		default:
			return DrugBlock{Drug: drug, Supplementary: supplementary, Notice: notice}, nil
		}
	}
	return DrugBlock{Drug: drug, Supplementary: supplementary, Notice: notice}, nil
}

// ParseDrugBlockFromText parses a standalone DrugBlock.
func ParseDrugBlockFromText(text string) (DrugBlock, error) {
	c := &lineCursor{lines: splitLines(text)}
	b, err := parseDrugBlock(c)
	if err != nil {
		return DrugBlock{}, err
	}
	if err := finishStandalone(c); err != nil {
		return DrugBlock{}, err
	}
	return b, nil
}

// --- RpBlock ---------------------------------------------------------------

// RpBlock (prescription group) = one-or-more DrugBlock, then one
// Usage(301), then zero-or-more UsageSupplementary(311), then
// zero-or-more RpNotice(391).
type RpBlock struct {
	Drugs         []DrugBlock
	Usage         UsageRecord
	Supplementary []UsageSupplementaryRecord
	Notice        []RpNoticeRecord
}

func (b RpBlock) lines() []string {
	var out []string
	for _, d := range b.Drugs {
		out = append(out, d.lines()...)
	}
	out = append(out, b.Usage.Serialize())
	for _, s := range b.Supplementary {
		out = append(out, s.Serialize())
	}
	for _, n := range b.Notice {
		out = append(out, n.Serialize())
	}
	return out
}

func (b RpBlock) Serialize() string { return strings.Join(b.lines(), "\r\n") }

func parseRpBlock(c *lineCursor) (RpBlock, error) {
	var drugs []DrugBlock
	for !c.done() {
		tag, _, err := c.peekTag()
		if err != nil {
			return RpBlock{}, err
		}
		if tag != 201 {
			break
		}
		db, err := parseDrugBlock(c)
		if err != nil {
			return RpBlock{}, err
		}
		drugs = append(drugs, db)
	}
	if len(drugs) == 0 {
		return RpBlock{}, errMissingRequired("Drug(201) (at least one DrugBlock)")
	}
	if c.done() {
		return RpBlock{}, errMissingRequired("Usage(301)")
	}
	tag, _, err := c.peekTag()
	if err != nil {
		return RpBlock{}, err
	}
	if tag != 301 {
		return RpBlock{}, errUnexpected(c.peekLine(), "RpBlock expects Usage(301) after its DrugBlocks")
	}
	usage, err := ParseUsageRecord(c.advance())
	if err != nil {
		return RpBlock{}, err
	}
	var supplementary []UsageSupplementaryRecord
	var notice []RpNoticeRecord
	for !c.done() {
		tag, _, err := c.peekTag()
		if err != nil {
			return RpBlock{}, err
		}
		switch tag {
		case 311:
			rec, err := ParseUsageSupplementaryRecord(c.advance())
			if err != nil {
				return RpBlock{}, err
			}
			supplementary = append(supplementary, rec)
		case 391:
			rec, err := ParseRpNoticeRecord(c.advance())
			if err != nil {
				return RpBlock{}, err
			}
			notice = append(notice, rec)
		default:
			return RpBlock{Drugs: drugs, Usage: usage, Supplementary: supplementary, Notice: notice}, nil
		}
	}
	return RpBlock{Drugs: drugs, Usage: usage, Supplementary: supplementary, Notice: notice}, nil
}

// ParseRpBlockFromText parses a standalone RpBlock.
func ParseRpBlockFromText(text string) (RpBlock, error) {
	c := &lineCursor{lines: splitLines(text)}
	b, err := parseRpBlock(c)
	if err != nil {
		return RpBlock{}, err
	}
	if err := finishStandalone(c); err != nil {
		return RpBlock{}, err
	}
	return b, nil
}

// --- PrescriptionBlock -----------------------------------------------------

// PrescriptionBlock = optional Physician(55), then zero-or-more RpBlock.
type PrescriptionBlock struct {
	Physician *PhysicianRecord
	RpBlocks  []RpBlock
}

func (b PrescriptionBlock) lines() []string {
	var out []string
	if b.Physician != nil {
		out = append(out, b.Physician.Serialize())
	}
	for _, rp := range b.RpBlocks {
		out = append(out, rp.lines()...)
	}
	return out
}

func (b PrescriptionBlock) Serialize() string { return strings.Join(b.lines(), "\r\n") }

func parsePrescriptionBlock(c *lineCursor) (PrescriptionBlock, error) {
	var physician *PhysicianRecord
	if !c.done() {
		tag, _, err := c.peekTag()
		if err != nil {
			return PrescriptionBlock{}, err
		}
		if tag == 55 {
			rec, err := ParsePhysicianRecord(c.advance())
			if err != nil {
				return PrescriptionBlock{}, err
			}
			physician = &rec
		}
	}
	var rpBlocks []RpBlock
	for !c.done() {
		tag, _, err := c.peekTag()
		if err != nil {
			return PrescriptionBlock{}, err
		}
		if tag != 201 {
			break
		}
		rp, err := parseRpBlock(c)
		if err != nil {
			return PrescriptionBlock{}, err
		}
		rpBlocks = append(rpBlocks, rp)
	}
	return PrescriptionBlock{Physician: physician, RpBlocks: rpBlocks}, nil
}

// ParsePrescriptionBlockFromText parses a standalone PrescriptionBlock.
func ParsePrescriptionBlockFromText(text string) (PrescriptionBlock, error) {
	c := &lineCursor{lines: splitLines(text)}
	b, err := parsePrescriptionBlock(c)
	if err != nil {
		return PrescriptionBlock{}, err
	}
	if err := finishStandalone(c); err != nil {
		return PrescriptionBlock{}, err
	}
	return b, nil
}

// --- DispensingInformationBlock ---------------------------------------------

// section indices for the DispensingInformationBlock ordering watermark,
// per spec.md §4.3.1: 5 < 11 < 15 < 51 < {55,201-391} < 401 < 411 < 501 < 601.
const (
	secDate = iota
	secPharmacy
	secPharmacist
	secMedicalInstitution
	secPrescription
	secNotice
	secInformationProvision
	secNote
	secFromPatient
)

func dispensingSection(tag int) (int, bool) {
	switch tag {
	case 5:
		return secDate, true
	case 11:
		return secPharmacy, true
	case 15:
		return secPharmacist, true
	case 51:
		return secMedicalInstitution, true
	case 55, 201, 281, 291, 301, 311, 391:
		return secPrescription, true
	case 401:
		return secNotice, true
	case 411:
		return secInformationProvision, true
	case 501:
		return secNote, true
	case 601:
		return secFromPatient, true
	default:
		return 0, false
	}
}

// DispensingInformationBlock = one Date(5), one Pharmacy(11), optional
// Pharmacist(15), optional MedicalInstitution(51), zero-or-more
// PrescriptionBlock, then at most one each of Notice(401),
// InformationProvision(411), Note(501), FromPatient(601).
type DispensingInformationBlock struct {
	Date                 DateRecord
	Pharmacy              PharmacyRecord
	Pharmacist            *PharmacistRecord
	MedicalInstitution    *MedicalInstitutionRecord
	Prescriptions         []PrescriptionBlock
	Notice                *NoticeRecord
	InformationProvision  *InformationProvisionRecord
	Note                  *NoteRecord
	FromPatient           *FromPatientRecord
}

func (b DispensingInformationBlock) lines() []string {
	out := []string{b.Date.Serialize(), b.Pharmacy.Serialize()}
	if b.Pharmacist != nil {
		out = append(out, b.Pharmacist.Serialize())
	}
	if b.MedicalInstitution != nil {
		out = append(out, b.MedicalInstitution.Serialize())
	}
	for _, p := range b.Prescriptions {
		out = append(out, p.lines()...)
	}
	if b.Notice != nil {
		out = append(out, b.Notice.Serialize())
	}
	if b.InformationProvision != nil {
		out = append(out, b.InformationProvision.Serialize())
	}
	if b.Note != nil {
		out = append(out, b.Note.Serialize())
	}
	if b.FromPatient != nil {
		out = append(out, b.FromPatient.Serialize())
	}
	return out
}

func (b DispensingInformationBlock) Serialize() string { return strings.Join(b.lines(), "\r\n") }

// parseDispensingInformationBlock consumes exactly one dispensing block,
// stopping at the first line belonging to a sibling block (a fresh
// Date(5) once this block already has one) or to the notebook's trailing
// FamilyPharmacist(701) run.
//
// Date(5) and Pharmacy(11) are accumulated through the same watermark
// loop as every other singleton instead of being gated on up front; their
// presence is checked only once the scan finishes. This mirrors the
// reference implementation, which tracks both as optionals and only
// raises MissingRequiredRecord at the end — so a block that never saw a
// Date(5) at all (e.g. it opens straight with Pharmacy(11)) reports
// "missing", not "unexpected", for the absent record.
func parseDispensingInformationBlock(c *lineCursor) (DispensingInformationBlock, error) {
	watermark := -1
	var dateRec *DateRecord
	var pharmacy *PharmacyRecord
	var pharmacist *PharmacistRecord
	var medInst *MedicalInstitutionRecord
	var prescriptions []PrescriptionBlock
	var notice *NoticeRecord
	var infoProv *InformationProvisionRecord
	var note *NoteRecord
	var fromPatient *FromPatientRecord

	for !c.done() {
		tag, _, err := c.peekTag()
		if err != nil {
			return DispensingInformationBlock{}, err
		}
		if tag == 701 {
			break
		}
		if tag == 5 && dateRec != nil {
			break
		}
		section, ok := dispensingSection(tag)
		if !ok {
			return DispensingInformationBlock{}, errUnexpected(c.peekLine(), "tag not valid inside a dispensing block")
		}
		if section < watermark {
			return DispensingInformationBlock{}, errUnexpected(c.peekLine(), "record out of order in dispensing block")
		}

		switch section {
		case secDate:
			rec, err := ParseDateRecord(c.advance())
			if err != nil {
				return DispensingInformationBlock{}, err
			}
			dateRec = &rec
		case secPharmacy:
			if pharmacy != nil {
				return DispensingInformationBlock{}, errUnexpected(c.peekLine(), "duplicate Pharmacy(11)")
			}
			rec, err := ParsePharmacyRecord(c.advance())
			if err != nil {
				return DispensingInformationBlock{}, err
			}
			pharmacy = &rec
		case secPharmacist:
			if pharmacist != nil {
				return DispensingInformationBlock{}, errUnexpected(c.peekLine(), "duplicate Pharmacist(15)")
			}
			rec, err := ParsePharmacistRecord(c.advance())
			if err != nil {
				return DispensingInformationBlock{}, err
			}
			pharmacist = &rec
		case secMedicalInstitution:
			if medInst != nil {
				return DispensingInformationBlock{}, errUnexpected(c.peekLine(), "duplicate MedicalInstitution(51)")
			}
			rec, err := ParseMedicalInstitutionRecord(c.advance())
			if err != nil {
				return DispensingInformationBlock{}, err
			}
			medInst = &rec
		case secPrescription:
			start := c.pos
			p, err := parsePrescriptionBlock(c)
			if err != nil {
				return DispensingInformationBlock{}, err
			}
			if c.pos == start {
				return DispensingInformationBlock{}, errUnexpected(c.peekLine(), "prescription line outside a Drug(201)-led RpBlock")
			}
			prescriptions = append(prescriptions, p)
		case secNotice:
			if notice != nil {
				return DispensingInformationBlock{}, errUnexpected(c.peekLine(), "duplicate Notice(401)")
			}
			rec, err := ParseNoticeRecord(c.advance())
			if err != nil {
				return DispensingInformationBlock{}, err
			}
			notice = &rec
		case secInformationProvision:
			if infoProv != nil {
				return DispensingInformationBlock{}, errUnexpected(c.peekLine(), "duplicate InformationProvision(411)")
			}
			rec, err := ParseInformationProvisionRecord(c.advance())
			if err != nil {
				return DispensingInformationBlock{}, err
			}
			infoProv = &rec
		case secNote:
			if note != nil {
				return DispensingInformationBlock{}, errUnexpected(c.peekLine(), "duplicate Note(501)")
			}
			rec, err := ParseNoteRecord(c.advance())
			if err != nil {
				return DispensingInformationBlock{}, err
			}
			note = &rec
		case secFromPatient:
			if fromPatient != nil {
				return DispensingInformationBlock{}, errUnexpected(c.peekLine(), "duplicate FromPatient(601)")
			}
			rec, err := ParseFromPatientRecord(c.advance())
			if err != nil {
				return DispensingInformationBlock{}, err
			}
			fromPatient = &rec
		default:
			return DispensingInformationBlock{}, errUnreachable("unhandled dispensing section %d", section)
		}
		if section > watermark {
			watermark = section
		}
	}

	if dateRec == nil {
		return DispensingInformationBlock{}, errMissingRequired("Date(5)")
	}
	if pharmacy == nil {
		return DispensingInformationBlock{}, errMissingRequired("Pharmacy(11)")
	}

	return DispensingInformationBlock{
		Date:                 *dateRec,
		Pharmacy:             *pharmacy,
		Pharmacist:           pharmacist,
		MedicalInstitution:   medInst,
		Prescriptions:        prescriptions,
		Notice:               notice,
		InformationProvision: infoProv,
		Note:                 note,
		FromPatient:          fromPatient,
	}, nil
}

// ParseDispensingInformationBlockFromText parses a standalone
// DispensingInformationBlock.
func ParseDispensingInformationBlockFromText(text string) (DispensingInformationBlock, error) {
	c := &lineCursor{lines: splitLines(text)}
	b, err := parseDispensingInformationBlock(c)
	if err != nil {
		return DispensingInformationBlock{}, err
	}
	if err := finishStandalone(c); err != nil {
		return DispensingInformationBlock{}, err
	}
	return b, nil
}

// --- MedicineNotebook --------------------------------------------------------

// MedicineNotebook = one Version, one Patient(1), zero-or-more
// SpecialPatientNote(2), zero-or-more OtcDrug(3), zero-or-more Memo(4),
// zero-or-more DispensingInformationBlock, zero-or-more
// FamilyPharmacist(701).
type MedicineNotebook struct {
	Version            VersionRecord
	Patient             PatientRecord
	SpecialPatientNotes []SpecialPatientNoteRecord
	OtcDrugs            []OtcDrugRecord
	Memos               []MemoRecord
	Dispensing          []DispensingInformationBlock
	FamilyPharmacists   []FamilyPharmacistRecord
}

func (n MedicineNotebook) lines() []string {
	out := []string{n.Version.Serialize(), n.Patient.Serialize()}
	for _, r := range n.SpecialPatientNotes {
		out = append(out, r.Serialize())
	}
	for _, r := range n.OtcDrugs {
		out = append(out, r.Serialize())
	}
	for _, r := range n.Memos {
		out = append(out, r.Serialize())
	}
	for _, d := range n.Dispensing {
		out = append(out, d.lines()...)
	}
	for _, r := range n.FamilyPharmacists {
		out = append(out, r.Serialize())
	}
	return out
}

// Serialize renders the whole notebook as CRLF-joined lines, per
// spec.md §6.1.
func (n MedicineNotebook) Serialize() string { return strings.Join(n.lines(), "\r\n") }

// notebook-level section indices for the ordering watermark, per spec.md
// §4.3/§6: JAHISTC < Patient(1) < SpecialPatientNote(2) < OtcDrug(3) <
// Memo(4) < DispensingInformationBlock < FamilyPharmacist(701).
const (
	nbVersion = iota
	nbPatient
	nbSpecialNote
	nbOtc
	nbMemo
	nbDispensing
	nbFamily
)

func notebookSection(tag int, isVersion bool) (int, bool) {
	switch {
	case isVersion:
		return nbVersion, true
	case tag == 1:
		return nbPatient, true
	case tag == 2:
		return nbSpecialNote, true
	case tag == 3:
		return nbOtc, true
	case tag == 4:
		return nbMemo, true
	case tag == 5:
		return nbDispensing, true
	case tag == 701:
		return nbFamily, true
	default:
		return 0, false
	}
}

// ParseMedicineNotebook parses a complete notebook document.
//
// Version and Patient(1) are accumulated through the same watermark loop
// as every other section instead of being gated on up front; their
// presence is checked only once the scan finishes. This mirrors the
// reference implementation, which tracks both as optionals and only
// raises MissingRequiredRecord at the end — so a notebook that jumps
// straight from the version line to, say, a SpecialPatientNote(2) with no
// Patient(1) at all reports "missing", not "unexpected", for Patient.
func ParseMedicineNotebook(text string) (MedicineNotebook, error) {
	c := &lineCursor{lines: splitLines(text)}

	watermark := -1
	var version *VersionRecord
	var patient *PatientRecord
	var notes []SpecialPatientNoteRecord
	var otc []OtcDrugRecord
	var memos []MemoRecord
	var dispensing []DispensingInformationBlock
	var family []FamilyPharmacistRecord

	for !c.done() {
		tag, isVersion, err := c.peekTag()
		if err != nil {
			return MedicineNotebook{}, err
		}
		section, ok := notebookSection(tag, isVersion)
		if !ok {
			return MedicineNotebook{}, errUnexpected(c.peekLine(), "tag not valid at notebook level")
		}
		if section < watermark {
			return MedicineNotebook{}, errUnexpected(c.peekLine(), "record out of order at notebook level")
		}
		if section == nbVersion && version != nil {
			return MedicineNotebook{}, errUnexpected(c.peekLine(), "duplicate version line")
		}
		if section == nbPatient && patient != nil {
			return MedicineNotebook{}, errUnexpected(c.peekLine(), "duplicate Patient(1)")
		}

		switch section {
		case nbVersion:
			rec, err := ParseVersionRecord(c.advance())
			if err != nil {
				return MedicineNotebook{}, err
			}
			version = &rec
		case nbPatient:
			rec, err := ParsePatientRecord(c.advance())
			if err != nil {
				return MedicineNotebook{}, err
			}
			patient = &rec
		case nbSpecialNote:
			rec, err := ParseSpecialPatientNoteRecord(c.advance())
			if err != nil {
				return MedicineNotebook{}, err
			}
			notes = append(notes, rec)
		case nbOtc:
			rec, err := ParseOtcDrugRecord(c.advance())
			if err != nil {
				return MedicineNotebook{}, err
			}
			otc = append(otc, rec)
		case nbMemo:
			rec, err := ParseMemoRecord(c.advance())
			if err != nil {
				return MedicineNotebook{}, err
			}
			memos = append(memos, rec)
		case nbDispensing:
			d, err := parseDispensingInformationBlock(c)
			if err != nil {
				return MedicineNotebook{}, err
			}
			dispensing = append(dispensing, d)
		case nbFamily:
			rec, err := ParseFamilyPharmacistRecord(c.advance())
			if err != nil {
				return MedicineNotebook{}, err
			}
			family = append(family, rec)
		default:
			return MedicineNotebook{}, errUnreachable("unhandled notebook section %d", section)
		}
		if section > watermark {
			watermark = section
		}
	}

	if version == nil {
		return MedicineNotebook{}, errMissingRequired("Version (JAHISTC)")
	}
	if patient == nil {
		return MedicineNotebook{}, errMissingRequired("Patient(1)")
	}

	return MedicineNotebook{
		Version:             *version,
		Patient:             *patient,
		SpecialPatientNotes: notes,
		OtcDrugs:            otc,
		Memos:               memos,
		Dispensing:          dispensing,
		FamilyPharmacists:   family,
	}, nil
}
