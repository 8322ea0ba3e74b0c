package jahis

import (
	"strconv"
	"strings"
)

// enumSpec is the shared table shape behind every small numeric
// enumeration in this file: a canonical numeric code, a display label,
// and the permissive set of input aliases accepted by its ParseXxx
// function (which always additionally accepts the numeric code and the display
// label themselves).
type enumSpec struct {
	code    int
	display string
	aliases []string
}

func matchEnum(specs []enumSpec, s string) (int, bool) {
	for _, sp := range specs {
		if s == strconv.Itoa(sp.code) || s == sp.display {
			return sp.code, true
		}
		for _, a := range sp.aliases {
			if s == a {
				return sp.code, true
			}
		}
	}
	return 0, false
}

func displayOf(specs []enumSpec, code int) (string, bool) {
	for _, sp := range specs {
		if sp.code == code {
			return sp.display, true
		}
	}
	return "", false
}

func codeValid(specs []enumSpec, code int) bool {
	for _, sp := range specs {
		if sp.code == code {
			return true
		}
	}
	return false
}

// --- Prefecture --------------------------------------------------------

// Prefecture is the closed 47-member enumeration of Japanese top-level
// administrative divisions, numbered 1-47 per JIS X 0401:1973 / ISO
// 3166-2:JP.
type Prefecture int

type prefectureSpec struct {
	code   int
	kanji  string
	romaji string
}

var prefectureTable = []prefectureSpec{
	{1, "北海道", "Hokkaido"}, {2, "青森県", "Aomori"}, {3, "岩手県", "Iwate"},
	{4, "宮城県", "Miyagi"}, {5, "秋田県", "Akita"}, {6, "山形県", "Yamagata"},
	{7, "福島県", "Fukushima"}, {8, "茨城県", "Ibaraki"}, {9, "栃木県", "Tochigi"},
	{10, "群馬県", "Gunma"}, {11, "埼玉県", "Saitama"}, {12, "千葉県", "Chiba"},
	{13, "東京都", "Tokyo"}, {14, "神奈川県", "Kanagawa"}, {15, "新潟県", "Niigata"},
	{16, "富山県", "Toyama"}, {17, "石川県", "Ishikawa"}, {18, "福井県", "Fukui"},
	{19, "山梨県", "Yamanashi"}, {20, "長野県", "Nagano"}, {21, "岐阜県", "Gifu"},
	{22, "静岡県", "Shizuoka"}, {23, "愛知県", "Aichi"}, {24, "三重県", "Mie"},
	{25, "滋賀県", "Shiga"}, {26, "京都府", "Kyoto"}, {27, "大阪府", "Osaka"},
	{28, "兵庫県", "Hyogo"}, {29, "奈良県", "Nara"}, {30, "和歌山県", "Wakayama"},
	{31, "鳥取県", "Tottori"}, {32, "島根県", "Shimane"}, {33, "岡山県", "Okayama"},
	{34, "広島県", "Hiroshima"}, {35, "山口県", "Yamaguchi"}, {36, "徳島県", "Tokushima"},
	{37, "香川県", "Kagawa"}, {38, "愛媛県", "Ehime"}, {39, "高知県", "Kochi"},
	{40, "福岡県", "Fukuoka"}, {41, "佐賀県", "Saga"}, {42, "長崎県", "Nagasaki"},
	{43, "熊本県", "Kumamoto"}, {44, "大分県", "Oita"}, {45, "宮崎県", "Miyazaki"},
	{46, "鹿児島県", "Kagoshima"}, {47, "沖縄県", "Okinawa"},
}

func prefectureByCode(code int) (prefectureSpec, bool) {
	for _, p := range prefectureTable {
		if p.code == code {
			return p, true
		}
	}
	return prefectureSpec{}, false
}

// prefectureShortKanji strips the trailing administrative-division
// suffix (都/道/府/県) to produce the short alias form, e.g. "東京" from
// "東京都".
func prefectureShortKanji(kanji string) string {
	suffixes := []string{"都", "道", "府", "県"}
	for _, suf := range suffixes {
		if strings.HasSuffix(kanji, suf) && len([]rune(kanji)) > len([]rune(suf)) {
			r := []rune(kanji)
			return string(r[:len(r)-len([]rune(suf))])
		}
	}
	return kanji
}

// ToCode returns the canonical decimal code, e.g. "13".
func (p Prefecture) ToCode() string {
	return strconv.Itoa(int(p))
}

// Display returns the full Japanese name, e.g. "東京都".
func (p Prefecture) Display() string {
	if sp, ok := prefectureByCode(int(p)); ok {
		return sp.kanji
	}
	return ""
}

// ParsePrefecture accepts the numeric code, "JP-<code>", the full or
// short Japanese name, or the romanized name.
func ParsePrefecture(s string) (Prefecture, error) {
	trimmed := strings.TrimPrefix(s, "JP-")
	for _, p := range prefectureTable {
		if trimmed == strconv.Itoa(p.code) ||
			s == p.kanji || s == prefectureShortKanji(p.kanji) ||
			strings.EqualFold(s, p.romaji) {
			return Prefecture(p.code), nil
		}
	}
	return 0, errInvalidArgument("prefecture", s)
}

// TryPrefectureFromInt accepts only the canonical numeric code.
func TryPrefectureFromInt(n int) (Prefecture, error) {
	if _, ok := prefectureByCode(n); ok {
		return Prefecture(n), nil
	}
	return 0, errInvalidArgument("prefecture code", strconv.Itoa(n))
}

// --- FeeTable ------------------------------------------------------------

// FeeTable identifies which medical fee schedule applies: Medicine,
// Dentistry, or Pharmacy (note the gap at 2).
type FeeTable int

const (
	Medicine  FeeTable = 1
	Dentistry FeeTable = 3
	Pharmacy  FeeTable = 4
)

var feeTableSpecs = []enumSpec{
	{1, "医科", []string{"Medicine"}},
	{3, "歯科", []string{"Dentistry"}},
	{4, "調剤", []string{"Pharmacy"}},
}

func (f FeeTable) ToCode() string  { return strconv.Itoa(int(f)) }
func (f FeeTable) Display() string { d, _ := displayOf(feeTableSpecs, int(f)); return d }

func ParseFeeTable(s string) (FeeTable, error) {
	if c, ok := matchEnum(feeTableSpecs, s); ok {
		return FeeTable(c), nil
	}
	return 0, errInvalidArgument("fee table", s)
}

func TryFeeTableFromInt(n int) (FeeTable, error) {
	if codeValid(feeTableSpecs, n) {
		return FeeTable(n), nil
	}
	return 0, errInvalidArgument("fee table code", strconv.Itoa(n))
}

// --- DosageForm ------------------------------------------------------------

// DosageForm is the pharmaceutical dosage-form category (note the gap
// at 8).
type DosageForm int

const (
	OralAdministration DosageForm = 1
	Drop               DosageForm = 2
	Potion             DosageForm = 3
	Injection          DosageForm = 4
	ExternalUse        DosageForm = 5
	Infusodecoction    DosageForm = 6
	Decoction          DosageForm = 7
	Material           DosageForm = 9
	OtherDosageForm    DosageForm = 10
)

var dosageFormSpecs = []enumSpec{
	{1, "内服", []string{"OralAdministration"}},
	{2, "内滴", []string{"Drop"}},
	{3, "頓服", []string{"Potion"}},
	{4, "注射", []string{"Injection"}},
	{5, "外用", []string{"ExternalUse"}},
	{6, "浸煎", []string{"Infusodecoction"}},
	{7, "湯", []string{"Decoction"}},
	{9, "材料", []string{"Material"}},
	{10, "その他", []string{"Other"}},
}

func (f DosageForm) ToCode() string  { return strconv.Itoa(int(f)) }
func (f DosageForm) Display() string { d, _ := displayOf(dosageFormSpecs, int(f)); return d }

func ParseDosageForm(s string) (DosageForm, error) {
	if c, ok := matchEnum(dosageFormSpecs, s); ok {
		return DosageForm(c), nil
	}
	return 0, errInvalidArgument("dosage form", s)
}

func TryDosageFormFromInt(n int) (DosageForm, error) {
	if codeValid(dosageFormSpecs, n) {
		return DosageForm(n), nil
	}
	return 0, errInvalidArgument("dosage form code", strconv.Itoa(n))
}

// --- RecordCreator -----------------------------------------------------

// RecordCreator identifies who authored a record.
type RecordCreator int

const (
	MedicalExpert       RecordCreator = 1
	Patient             RecordCreator = 2
	OtherRecordCreator  RecordCreator = 8
	UnknownRecordCreator RecordCreator = 9
)

var recordCreatorSpecs = []enumSpec{
	{1, "医療従事者", []string{"MedicalExpert"}},
	{2, "患者", []string{"Patient"}},
	{8, "その他", []string{"Other"}},
	{9, "不明", []string{"Unknown"}},
}

func (c RecordCreator) ToCode() string  { return strconv.Itoa(int(c)) }
func (c RecordCreator) Display() string { d, _ := displayOf(recordCreatorSpecs, int(c)); return d }

func ParseRecordCreator(s string) (RecordCreator, error) {
	if c, ok := matchEnum(recordCreatorSpecs, s); ok {
		return RecordCreator(c), nil
	}
	return 0, errInvalidArgument("record creator", s)
}

func TryRecordCreatorFromInt(n int) (RecordCreator, error) {
	if codeValid(recordCreatorSpecs, n) {
		return RecordCreator(n), nil
	}
	return 0, errInvalidArgument("record creator code", strconv.Itoa(n))
}

// --- OutputCategory ------------------------------------------------------

// OutputCategory distinguishes a notebook document produced for the
// patient from one produced by the patient.
type OutputCategory int

const (
	ToPatient   OutputCategory = 1
	FromPatient OutputCategory = 2
)

var outputCategorySpecs = []enumSpec{
	{1, "患者向け", []string{"ToPatient"}},
	{2, "患者から", []string{"FromPatient"}},
}

func (c OutputCategory) ToCode() string  { return strconv.Itoa(int(c)) }
func (c OutputCategory) Display() string { d, _ := displayOf(outputCategorySpecs, int(c)); return d }

func ParseOutputCategory(s string) (OutputCategory, error) {
	if c, ok := matchEnum(outputCategorySpecs, s); ok {
		return OutputCategory(c), nil
	}
	return 0, errInvalidArgument("output category", s)
}

func TryOutputCategoryFromInt(n int) (OutputCategory, error) {
	if codeValid(outputCategorySpecs, n) {
		return OutputCategory(n), nil
	}
	return 0, errInvalidArgument("output category code", strconv.Itoa(n))
}

// --- Gender ----------------------------------------------------------------

// Gender is the patient's recorded gender.
type Gender int

const (
	Male   Gender = 1
	Female Gender = 2
)

var genderSpecs = []enumSpec{
	{1, "男性", []string{"Male"}},
	{2, "女性", []string{"Female"}},
}

func (g Gender) ToCode() string  { return strconv.Itoa(int(g)) }
func (g Gender) Display() string { d, _ := displayOf(genderSpecs, int(g)); return d }

func ParseGender(s string) (Gender, error) {
	if c, ok := matchEnum(genderSpecs, s); ok {
		return Gender(c), nil
	}
	return 0, errInvalidArgument("gender", s)
}

func TryGenderFromInt(n int) (Gender, error) {
	if codeValid(genderSpecs, n) {
		return Gender(n), nil
	}
	return 0, errInvalidArgument("gender code", strconv.Itoa(n))
}

// --- SpecialPatientNoteCategory ------------------------------------------

// SpecialPatientNoteCategory classifies a SpecialPatientNote(2) record.
type SpecialPatientNoteCategory int

const (
	Allergy                        SpecialPatientNoteCategory = 1
	AdverseEvent                   SpecialPatientNoteCategory = 2
	PastHistory                    SpecialPatientNoteCategory = 3
	OtherSpecialPatientNoteCategory SpecialPatientNoteCategory = 9
)

var specialPatientNoteCategorySpecs = []enumSpec{
	{1, "アレルギー", []string{"Allergy"}},
	{2, "副作用歴", []string{"AdverseEvent"}},
	{3, "既往歴", []string{"PastHistory"}},
	{9, "その他", []string{"Other"}},
}

func (c SpecialPatientNoteCategory) ToCode() string { return strconv.Itoa(int(c)) }
func (c SpecialPatientNoteCategory) Display() string {
	d, _ := displayOf(specialPatientNoteCategorySpecs, int(c))
	return d
}

func ParseSpecialPatientNoteCategory(s string) (SpecialPatientNoteCategory, error) {
	if c, ok := matchEnum(specialPatientNoteCategorySpecs, s); ok {
		return SpecialPatientNoteCategory(c), nil
	}
	return 0, errInvalidArgument("special patient note category", s)
}

func TrySpecialPatientNoteCategoryFromInt(n int) (SpecialPatientNoteCategory, error) {
	if codeValid(specialPatientNoteCategorySpecs, n) {
		return SpecialPatientNoteCategory(n), nil
	}
	return 0, errInvalidArgument("special patient note category code", strconv.Itoa(n))
}

// --- DrugCodeType ----------------------------------------------------------

// DrugCodeType identifies the coding system used by a Drug(201) record's
// drug_code field (note the gap at 5).
type DrugCodeType int

const (
	DrugCodeNone    DrugCodeType = 1
	DrugCodeReceipt DrugCodeType = 2
	DrugCodeMhlw    DrugCodeType = 3
	DrugCodeYj      DrugCodeType = 4
	DrugCodeHot     DrugCodeType = 6
)

var drugCodeTypeSpecs = []enumSpec{
	{1, "なし", []string{"None"}},
	{2, "レセプト電算コード", []string{"Receipt"}},
	{3, "厚生労働省コード", []string{"Mhlw"}},
	{4, "YJコード", []string{"Yj"}},
	{6, "HOTコード", []string{"Hot"}},
}

func (c DrugCodeType) ToCode() string  { return strconv.Itoa(int(c)) }
func (c DrugCodeType) Display() string { d, _ := displayOf(drugCodeTypeSpecs, int(c)); return d }

func ParseDrugCodeType(s string) (DrugCodeType, error) {
	if c, ok := matchEnum(drugCodeTypeSpecs, s); ok {
		return DrugCodeType(c), nil
	}
	return 0, errInvalidArgument("drug code type", s)
}

func TryDrugCodeTypeFromInt(n int) (DrugCodeType, error) {
	if codeValid(drugCodeTypeSpecs, n) {
		return DrugCodeType(n), nil
	}
	return 0, errInvalidArgument("drug code type code", strconv.Itoa(n))
}

// --- UsageCodeType ---------------------------------------------------------

// UsageCodeType identifies the coding system used by a Usage(301)
// record's usage_code field.
type UsageCodeType int

const (
	UsageCodeNone UsageCodeType = 1
	UsageCodeJami UsageCodeType = 2
)

var usageCodeTypeSpecs = []enumSpec{
	{1, "なし", []string{"None"}},
	{2, "JAMIコード", []string{"Jami"}},
}

func (c UsageCodeType) ToCode() string  { return strconv.Itoa(int(c)) }
func (c UsageCodeType) Display() string { d, _ := displayOf(usageCodeTypeSpecs, int(c)); return d }

func ParseUsageCodeType(s string) (UsageCodeType, error) {
	if c, ok := matchEnum(usageCodeTypeSpecs, s); ok {
		return UsageCodeType(c), nil
	}
	return 0, errInvalidArgument("usage code type", s)
}

func TryUsageCodeTypeFromInt(n int) (UsageCodeType, error) {
	if codeValid(usageCodeTypeSpecs, n) {
		return UsageCodeType(n), nil
	}
	return 0, errInvalidArgument("usage code type code", strconv.Itoa(n))
}

// --- ProvidedInformationType ----------------------------------------------

// ProvidedInformationType classifies an InformationProvision(411)
// record's information_type field.
type ProvidedInformationType int

const (
	AdverseEventInHospital ProvidedInformationType = 30
	PostDischargeCare      ProvidedInformationType = 31
	OtherProvidedInformationType ProvidedInformationType = 99
)

var providedInformationTypeSpecs = []enumSpec{
	{30, "入院時副作用情報", []string{"AdverseEventInHospital"}},
	{31, "退院時ケア情報", []string{"PostDischargeCare"}},
	{99, "その他", []string{"Other"}},
}

func (c ProvidedInformationType) ToCode() string { return strconv.Itoa(int(c)) }
func (c ProvidedInformationType) Display() string {
	d, _ := displayOf(providedInformationTypeSpecs, int(c))
	return d
}

func ParseProvidedInformationType(s string) (ProvidedInformationType, error) {
	if c, ok := matchEnum(providedInformationTypeSpecs, s); ok {
		return ProvidedInformationType(c), nil
	}
	return 0, errInvalidArgument("provided information type", s)
}

func TryProvidedInformationTypeFromInt(n int) (ProvidedInformationType, error) {
	if codeValid(providedInformationTypeSpecs, n) {
		return ProvidedInformationType(n), nil
	}
	return 0, errInvalidArgument("provided information type code", strconv.Itoa(n))
}
