package jahis

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Era identifies one of the five Japanese regnal eras this package
// supports, newest first.
type Era int

const (
	Reiwa Era = iota
	Heisei
	Showa
	Taisho
	Meiji
)

// gregorianOffset is the fixed offset such that gregorianYear =
// eraYear + offset, per spec.md §3.1.
var gregorianOffset = map[Era]int{
	Reiwa:  2018,
	Heisei: 1988,
	Showa:  1925,
	Taisho: 1911,
	Meiji:  1867,
}

var eraLetter = map[Era]string{
	Reiwa:  "R",
	Heisei: "H",
	Showa:  "S",
	Taisho: "T",
	Meiji:  "M",
}

var eraKanji = map[Era]string{
	Reiwa:  "令和",
	Heisei: "平成",
	Showa:  "昭和",
	Taisho: "大正",
	Meiji:  "明治",
}

var eraSquare = map[Era]string{
	Reiwa:  "㋿",
	Heisei: "㍻",
	Showa:  "㍼",
	Taisho: "㍽",
	Meiji:  "㍾",
}

func eraFromLetter(l string) (Era, bool) {
	switch strings.ToUpper(l) {
	case "R":
		return Reiwa, true
	case "H":
		return Heisei, true
	case "S":
		return Showa, true
	case "T":
		return Taisho, true
	case "M":
		return Meiji, true
	default:
		return 0, false
	}
}

// GengoYear is a tagged variant over the five supported eras, each
// carrying a positive era-year (era-1 is written "元" in human form).
type GengoYear struct {
	Era  Era
	Year int
}

// ToCode returns the canonical encoding: the Latin era letter followed
// by the zero-padded two-digit era-year, e.g. "R02".
func (g GengoYear) ToCode() string {
	return fmt.Sprintf("%s%02d", eraLetter[g.Era], g.Year)
}

// Display returns the Japanese human label, e.g. "令和2年" or, for
// era-year 1, "令和元年".
func (g GengoYear) Display() string {
	if g.Year == 1 {
		return eraKanji[g.Era] + "元年"
	}
	return fmt.Sprintf("%s%d年", eraKanji[g.Era], g.Year)
}

var gengoPattern = regexp.MustCompile(
	`^(令和|平成|昭和|大正|明治|㋿|㍻|㍼|㍽|㍾|[RHSTMrhstm])(元|[0-9]+)年?$`,
)

// ParseGengoYear accepts any of: the full kanji era name, the combined
// Unicode era square, or the single Latin letter (case-insensitive),
// followed by either a positive integer or the literal "元" (era-year 1),
// optionally followed by "年".
func ParseGengoYear(s string) (GengoYear, error) {
	m := gengoPattern.FindStringSubmatch(s)
	if m == nil {
		return GengoYear{}, errInvalidArgument("gengo year", s)
	}
	era, ok := eraFromToken(m[1])
	if !ok {
		return GengoYear{}, errInvalidArgument("gengo era", m[1])
	}
	var year int
	if m[2] == "元" {
		year = 1
	} else {
		n, err := strconv.Atoi(m[2])
		if err != nil {
			return GengoYear{}, wrapError(ParseIntError, err, "gengo year number %q", m[2])
		}
		if n <= 0 {
			return GengoYear{}, errInvalidArgument("gengo year number", m[2])
		}
		year = n
	}
	return GengoYear{Era: era, Year: year}, nil
}

func eraFromToken(tok string) (Era, bool) {
	for e, k := range eraKanji {
		if tok == k {
			return e, true
		}
	}
	for e, sq := range eraSquare {
		if tok == sq {
			return e, true
		}
	}
	return eraFromLetter(tok)
}

// toGregorianYear converts this era-year to a Gregorian calendar year
// using the fixed offset table in spec.md §3.1.
func (g GengoYear) toGregorianYear() int {
	return g.Year + gregorianOffset[g.Era]
}

// gengoFromGregorian resolves the era and era-year for a Gregorian
// calendar date, applying the exact transition boundaries in spec.md
// §4.1.2. Returns an error for dates before 1873-01-01.
func gengoFromGregorian(year, month, day int) (GengoYear, error) {
	v := year*10000 + month*100 + day
	switch {
	case v >= 20190501:
		return GengoYear{Era: Reiwa, Year: year - gregorianOffset[Reiwa]}, nil
	case v >= 19890108:
		return GengoYear{Era: Heisei, Year: year - gregorianOffset[Heisei]}, nil
	case v >= 19261225:
		return GengoYear{Era: Showa, Year: year - gregorianOffset[Showa]}, nil
	case v >= 19120730:
		return GengoYear{Era: Taisho, Year: year - gregorianOffset[Taisho]}, nil
	case v >= 18730101:
		return GengoYear{Era: Meiji, Year: year - gregorianOffset[Meiji]}, nil
	default:
		return GengoYear{}, errInvalidArgument("date (before earliest supported era)", fmt.Sprintf("%04d-%02d-%02d", year, month, day))
	}
}
