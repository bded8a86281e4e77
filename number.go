package styler

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Null is the display string for absent and NaN values.
const Null = "None"

// DefaultPrecision is the number of decimals used by [Round] when none is given.
const DefaultPrecision = 2

// Float returns a pointer to x, for use with [PercentOrNull] and [RoundOrNull].
func Float(x float64) *float64 { return &x }

// PercentOrNull displays x as a percentage with two decimals ("4.55%").
// nil and NaN display as [Null].
func PercentOrNull(x *float64) string {
	if x == nil || math.IsNaN(*x) {
		return Null
	}
	if s, ok := infinity(*x); ok {
		return s + "%"
	}
	return strconv.FormatFloat(*x*100, 'f', 2, 64) + "%"
}

// RoundOrNull displays x in fixed-point with thousands separators and
// exactly precision decimals ("1,234.57"). Negative precision is treated as
// zero. nil and NaN display as [Null].
func RoundOrNull(x *float64, precision int) string {
	if x == nil || math.IsNaN(*x) {
		return Null
	}
	if s, ok := infinity(*x); ok {
		return s
	}
	precision = max(precision, 0)

	// Round on the binary value first so the decimal formatter below only
	// groups digits and never rounds a second time.
	fixed := strconv.FormatFloat(*x, 'f', precision, 64)
	digits, neg := strings.CutPrefix(fixed, "-")
	r, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return fixed
	}
	p := message.NewPrinter(language.English)
	out := p.Sprintf("%v", number.Decimal(r, number.Scale(precision)))
	if neg {
		out = "-" + out
	}
	return out
}

func infinity(x float64) (string, bool) {
	switch {
	case math.IsInf(x, 1):
		return "inf", true
	case math.IsInf(x, -1):
		return "-inf", true
	default:
		return "", false
	}
}

// Raw displays a value without formatting. nil displays as an empty string.
func Raw(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// Percent is a [Formatter] backed by [PercentOrNull]. Integers are scaled
// exactly, without a float64 conversion. Non-numeric values are displayed
// with [Raw].
func Percent(v any) string {
	if digits, ok := integerString(v); ok {
		if digits != "0" {
			digits += "00"
		}
		return digits + ".00%"
	}
	x, ok := toFloat(v)
	if !ok {
		return Raw(v)
	}
	return PercentOrNull(x)
}

// Round returns a [Formatter] backed by [RoundOrNull] with the given
// precision. Integers keep every digit, even beyond 2^53. Non-numeric values
// are displayed with [Raw].
func Round(precision int) Formatter {
	return func(v any) string {
		if _, ok := integerString(v); ok {
			p := message.NewPrinter(language.English)
			return p.Sprintf("%v", number.Decimal(v, number.Scale(max(precision, 0))))
		}
		x, ok := toFloat(v)
		if !ok {
			return Raw(v)
		}
		return RoundOrNull(x, precision)
	}
}

// toFloat converts numeric cell values to a nullable float. It reports false
// for values that are neither numeric nor nil.
func toFloat(v any) (*float64, bool) {
	switch n := v.(type) {
	case nil:
		return nil, true
	case *float64:
		return n, true
	case float64:
		return &n, true
	case float32:
		return Float(float64(n)), true
	case int:
		return Float(float64(n)), true
	case int8:
		return Float(float64(n)), true
	case int16:
		return Float(float64(n)), true
	case int32:
		return Float(float64(n)), true
	case int64:
		return Float(float64(n)), true
	case uint:
		return Float(float64(n)), true
	case uint8:
		return Float(float64(n)), true
	case uint16:
		return Float(float64(n)), true
	case uint32:
		return Float(float64(n)), true
	case uint64:
		return Float(float64(n)), true
	default:
		return nil, false
	}
}

// integerString returns the exact decimal digits of integer values.
func integerString(v any) (string, bool) {
	switch n := v.(type) {
	case int:
		return strconv.FormatInt(int64(n), 10), true
	case int8:
		return strconv.FormatInt(int64(n), 10), true
	case int16:
		return strconv.FormatInt(int64(n), 10), true
	case int32:
		return strconv.FormatInt(int64(n), 10), true
	case int64:
		return strconv.FormatInt(n, 10), true
	case uint:
		return strconv.FormatUint(uint64(n), 10), true
	case uint8:
		return strconv.FormatUint(uint64(n), 10), true
	case uint16:
		return strconv.FormatUint(uint64(n), 10), true
	case uint32:
		return strconv.FormatUint(uint64(n), 10), true
	case uint64:
		return strconv.FormatUint(n, 10), true
	default:
		return "", false
	}
}
