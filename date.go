package jahis

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
)

// Date is a tagged variant over a Gregorian date and a Japanese-era date.
// The original constructed form is preserved exactly; ToCode returns it
// unchanged, while ToGregorian8 and TryToEra7 convert on demand.
type Date struct {
	isEra bool
	// Gregorian form fields.
	year int
	// Era form field.
	gengo GengoYear
	// Shared.
	month, day int
}

// NewGregorianDate constructs a Gregorian-form Date, validating the
// calendar date.
func NewGregorianDate(year, month, day int) (Date, error) {
	if err := validateCalendarDate(year, month, day); err != nil {
		return Date{}, err
	}
	return Date{isEra: false, year: year, month: month, day: day}, nil
}

// NewEraDate constructs an Era-form Date, validating the calendar date
// after conversion to its Gregorian anchor.
func NewEraDate(g GengoYear, month, day int) (Date, error) {
	year := g.toGregorianYear()
	if err := validateCalendarDate(year, month, day); err != nil {
		return Date{}, err
	}
	return Date{isEra: true, gengo: g, month: month, day: day}, nil
}

var daysInMonth = [...]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func isLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

func validateCalendarDate(year, month, day int) error {
	if month < 1 || month > 12 {
		return errInvalidArgument("date month", strconv.Itoa(month))
	}
	max := daysInMonth[month-1]
	if month == 2 && isLeapYear(year) {
		max = 29
	}
	if day < 1 || day > max {
		return errInvalidArgument("date day", strconv.Itoa(day))
	}
	return nil
}

// gregorianAnchor returns the (year, month, day) Gregorian form of this
// Date regardless of how it was constructed.
func (d Date) gregorianAnchor() (int, int, int) {
	if d.isEra {
		return d.gengo.toGregorianYear(), d.month, d.day
	}
	return d.year, d.month, d.day
}

// ToCode emits the original constructed form: 8-digit Gregorian or
// 7-character era form.
func (d Date) ToCode() string {
	if d.isEra {
		return fmt.Sprintf("%s%02d%02d%02d", eraLetter[d.gengo.Era], d.gengo.Year, d.month, d.day)
	}
	return d.ToGregorian8()
}

// ToGregorian8 always emits the 8-digit Gregorian YYYYMMDD form.
func (d Date) ToGregorian8() string {
	y, m, day := d.gregorianAnchor()
	return fmt.Sprintf("%04d%02d%02d", y, m, day)
}

// TryToEra7 converts this Date to the 7-character era form GYYMMDD using
// the exact transition boundaries in spec.md §4.1.2.
func (d Date) TryToEra7() (string, error) {
	y, m, day := d.gregorianAnchor()
	g, err := gengoFromGregorian(y, m, day)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%02d%02d%02d", eraLetter[g.Era], g.Year, m, day), nil
}

// MarshalJSON emits the same constructed form as ToCode, so a notebook
// round-tripped through the JSON API (cmd/jahisconv, cmd/wasm) preserves
// whichever calendar its dates were written in.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.ToCode())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

var (
	gregorian8Pattern = regexp.MustCompile(`^([0-9]{4})([0-9]{2})([0-9]{2})$`)
	era7Pattern       = regexp.MustCompile(`^([RHSTMrhstm])([0-9]{2})([0-9]{2})([0-9]{2})$`)
)

// ParseDate accepts either the Gregorian-8 form (exactly 8 decimal
// digits) or the Era-7 form (one era letter followed by 6 decimal
// digits).
func ParseDate(s string) (Date, error) {
	if m := gregorian8Pattern.FindStringSubmatch(s); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		return NewGregorianDate(year, month, day)
	}
	if m := era7Pattern.FindStringSubmatch(s); m != nil {
		era, ok := eraFromLetter(m[1])
		if !ok {
			return Date{}, errInvalidArgument("era letter", m[1])
		}
		eraYear, _ := strconv.Atoi(m[2])
		month, _ := strconv.Atoi(m[3])
		day, _ := strconv.Atoi(m[4])
		if eraYear <= 0 {
			return Date{}, errInvalidArgument("era year", m[2])
		}
		return NewEraDate(GengoYear{Era: era, Year: eraYear}, month, day)
	}
	return Date{}, errInvalidArgument("date", s)
}
