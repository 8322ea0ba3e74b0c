package jahis

import (
	"regexp"
	"strconv"
	"strings"
)

// Record is implemented by every one of the ~20 record kinds in the
// Record Layer. RecordNumber and FieldCount are constants per kind;
// Serialize is total; parsing is exposed as a free function per record
// type (ParseXxxRecord) rather than a method, since it must be able to
// fail before a value exists.
type Record interface {
	RecordNumber() int
	FieldCount() int
	Serialize() string
}

// tagPrefixes lists every literal tag-plus-comma prefix recognized by
// the tag recognition policy (spec.md §4.3.2), in the exact set named
// there. The Version line is identified separately by its 7-byte
// literal prefix "JAHISTC".
var tagPrefixes = []string{
	"1,", "2,", "3,", "4,", "5,",
	"11,", "15,", "51,", "55,",
	"201,", "281,", "291,", "301,", "311,", "391,",
	"401,", "411,", "501,", "601,", "701,",
}

const versionPrefix = "JAHISTC"

// classifyLine returns the numeric tag of a non-blank record line, or 0
// with isVersion=true for the Version line, or -1 with ok=false if the
// line matches no recognized prefix.
func classifyLine(line string) (tag int, isVersion bool, ok bool) {
	if strings.HasPrefix(line, versionPrefix) {
		return 0, true, true
	}
	// Longest-prefix-first so e.g. "201," isn't shadowed by a "2,"-alike
	// bug; tags are unambiguous here since each carries its own comma,
	// but sort defensively anyway.
	best := ""
	for _, p := range tagPrefixes {
		if strings.HasPrefix(line, p) && len(p) > len(best) {
			best = p
		}
	}
	if best == "" {
		return -1, false, false
	}
	n, err := strconv.Atoi(strings.TrimSuffix(best, ","))
	if err != nil {
		return -1, false, false
	}
	return n, false, true
}

// recordPattern compiles (and the caller should cache at package scope)
// a schema regex for a record kind: the tag followed by exactly
// fieldCount comma-separated groups, each matching any run of non-comma
// characters (including empty, for optional fields). Field-specific
// validation happens afterwards in the per-field parsers, in left-to-
// right order, matching spec.md §4.2.
func recordPattern(tag string, fieldCount int) *regexp.Regexp {
	var b strings.Builder
	b.WriteString("^")
	b.WriteString(regexp.QuoteMeta(tag))
	for i := 0; i < fieldCount; i++ {
		b.WriteString(",([^,]*)")
	}
	b.WriteString("$")
	return regexp.MustCompile(b.String())
}

// matchRecordLine validates line against re and returns the fieldCount
// captured field values (tag excluded), or an InvalidRecordLine error
// quoting the line and naming the record kind.
func matchRecordLine(re *regexp.Regexp, kindName, line string) ([]string, error) {
	m := re.FindStringSubmatch(line)
	if m == nil {
		return nil, errInvalidRecordLine(kindName, line)
	}
	return m[1:], nil
}

// serializeFields joins tag and fields with ",", encoding nil optional
// fields (represented by the empty string already) verbatim.
func serializeFields(tag string, fields ...string) string {
	parts := make([]string, 0, len(fields)+1)
	parts = append(parts, tag)
	parts = append(parts, fields...)
	return strings.Join(parts, ",")
}

// --- field-level parse helpers ------------------------------------------

func optOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	v := s
	return &v
}

func reqUint32(s, field string) (uint32, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, wrapError(ParseIntError, err, "field %s: %q", field, s)
	}
	return uint32(n), nil
}

func optUint32(s, field string) (*uint32, error) {
	if s == "" {
		return nil, nil
	}
	n, err := reqUint32(s, field)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func uint32ToStr(n uint32) string { return strconv.FormatUint(uint64(n), 10) }

// atoiMust parses an enum code field. The record schema regex captures
// any run of non-comma characters, so the field may be empty, non-numeric
// or out of range; every such failure yields -1, which callers convert to
// the standard enum "code not recognized" error via TryXxxFromInt rather
// than crashing here.
func atoiMust(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return -1
	}
	return n
}

// padTwoDigits formats n as a zero-padded two-digit decimal string, used
// for the opaque Version.Number field.
func padTwoDigits(n uint32) string {
	s := strconv.FormatUint(uint64(n), 10)
	if len(s) < 2 {
		return strings.Repeat("0", 2-len(s)) + s
	}
	return s
}

func optUint32ToStr(n *uint32) string {
	if n == nil {
		return ""
	}
	return uint32ToStr(*n)
}

var bodyWeightPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$|^\.[0-9]+$`)

// optFloat32 implements the body_weight field rule: a decimal integer, a
// decimal with fractional part, or a bare ".5"-style fraction. Empty
// input yields nil.
func optFloat32(s, field string) (*float32, error) {
	if s == "" {
		return nil, nil
	}
	if !bodyWeightPattern.MatchString(s) {
		return nil, newError(InvalidArgument, "field %s: not a valid decimal number: %q", field, s)
	}
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return nil, wrapError(ParseFloatError, err, "field %s: %q", field, s)
	}
	v := float32(f)
	return &v, nil
}

func optFloat32ToStr(f *float32) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(float64(*f), 'f', -1, 32)
}

func optDate(s, field string) (*Date, error) {
	if s == "" {
		return nil, nil
	}
	d, err := ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func optDateToStr(d *Date) string {
	if d == nil {
		return ""
	}
	return d.ToCode()
}

func reqDate(s, field string) (Date, error) {
	if s == "" {
		return Date{}, newError(InvalidArgument, "field %s: required date is empty", field)
	}
	return ParseDate(s)
}
