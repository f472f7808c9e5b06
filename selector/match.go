package selector

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Matchers maps attribute operators to string comparisons, applied after case
// and number normalization.
var Matchers = map[string]func(value, literal string) bool{
	"=":  func(v, l string) bool { return v == l },
	"~=": includeMatch,
	"|=": dashMatch,
	"^=": strings.HasPrefix,
	"$=": strings.HasSuffix,
	"*=": strings.Contains,
}

// matchAttribute compares a node property value against an attribute token
// with an operator. Comparison is case insensitive unless the token carries an
// s flag: strings are lowercased, numbers are matched against the literal
// parsed as an integer. Values that are neither string nor number never match;
// an operator outside Matchers is an error for the caller to report.
func matchAttribute(v any, t Token) (bool, error) {
	m := Matchers[t.Operator]
	if m == nil {
		return false, fmt.Errorf("unknown attribute operator %q", t.Operator)
	}
	value, literal := "", t.Value
	switch v := v.(type) {
	case string:
		value = v
		if insensitive(t.Case) {
			value, literal = strings.ToLower(value), strings.ToLower(literal)
		}
	case int, int64, float64:
		value = formatNumber(v)
		if insensitive(t.Case) {
			i, err := strconv.Atoi(strings.TrimSpace(literal))
			if err != nil {
				return false, nil
			}
			literal = strconv.Itoa(i)
		}
	default:
		return false, nil
	}
	return m(value, literal), nil
}

// truthy reports whether a property value passes a bare existence test.
func truthy(v any) bool {
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case int:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0
	default:
		return true
	}
}

func insensitive(flag string) bool { return flag != "s" && flag != "S" }

// includeMatch matches whole whitespace-delimited words only: [x~=foo] matches
// "foo bar" but not "foobar".
func includeMatch(value, literal string) bool {
	for _, field := range strings.Fields(value) {
		if field == literal {
			return true
		}
	}
	return false
}

// dashMatch matches the exact value or the part before its first hyphen:
// [lang|=en] matches "en" and "en-US" but not "english".
func dashMatch(value, literal string) bool {
	if value == literal {
		return true
	}
	head, _, cut := strings.Cut(value, "-")
	return cut && head == literal
}

func formatNumber(v any) string {
	switch v := v.(type) {
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		if v == math.Trunc(v) && !math.IsInf(v, 0) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		panic(fmt.Errorf("bad number: %#v", v))
	}
}
