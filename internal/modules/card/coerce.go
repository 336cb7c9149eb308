package card

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Helpers in this file reproduce the browser's loose value semantics for
// props that arrive dynamically typed.

// truthy follows JavaScript truthiness: nil, false, "", 0 and NaN are falsy.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	}
	if f, ok := number(v); ok {
		return f != 0 && !math.IsNaN(f)
	}
	return true
}

// number reports whether v is a numeric value and returns it as float64.
func number(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case json.Number:
		return parseFloat(string(x)), true
	}
	return 0, false
}

// toNumber returns numbers as-is and parses everything else from its string form.
func toNumber(v any) float64 {
	if f, ok := number(v); ok {
		return f
	}
	return parseFloat(jsString(v))
}

// jsString is the string form a value takes when coerced in the browser.
func jsString(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case []any:
		parts := make([]string, len(x))
		for i, e := range x {
			if e != nil {
				parts[i] = jsString(e)
			}
		}
		return strings.Join(parts, ",")
	case map[string]any:
		return "[object Object]"
	}
	if f, ok := number(v); ok {
		return jsNumberString(f)
	}
	return fmt.Sprint(v)
}

var floatPrefix = regexp.MustCompile(`^[+-]?(?:Infinity|(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)(?:[eE][+-]?[0-9]+)?)`)

func isJSSpace(r rune) bool { return unicode.IsSpace(r) || r == '\ufeff' }

// parseFloat reads the longest numeric prefix after leading whitespace and
// returns NaN when there is none.
func parseFloat(s string) float64 {
	m := floatPrefix.FindString(strings.TrimLeftFunc(s, isJSSpace))
	if m == "" {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		// Out-of-range literals saturate to ±Inf or 0, like the browser.
		if errors.Is(err, strconv.ErrRange) {
			return f
		}
		return math.NaN()
	}
	return f
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

// jsNumberString formats f the way Number.prototype.toString does.
func jsNumberString(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	if abs := math.Abs(f); abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	mant, exp, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
	return mant + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
}

var (
	hundred = big.NewRat(100, 1)
	half    = big.NewRat(1, 2)
)

// toFixed2 matches Number.prototype.toFixed(2): exact-value rounding with
// ties going up, and the plain string form from 1e21 on.
func toFixed2(f float64) string {
	if !finite(f) || math.Abs(f) >= 1e21 {
		return jsNumberString(f)
	}
	neg := f < 0
	r := new(big.Rat).SetFloat64(math.Abs(f))
	r.Mul(r, hundred)
	r.Add(r, half)
	n := new(big.Int).Quo(r.Num(), r.Denom())
	whole, frac := new(big.Int).QuoRem(n, big.NewInt(100), new(big.Int))
	s := fmt.Sprintf("%s.%02d", whole.String(), frac.Int64())
	if neg {
		return "-" + s
	}
	return s
}

// FormatPrice is the displayed price: a dollar sign and two decimals.
func FormatPrice(f float64) string {
	return "$" + toFixed2(f)
}
