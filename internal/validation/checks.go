package validation

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	validate  = validator.New()
	intRegexp = regexp.MustCompile(`^[-+]?[0-9]+$`)
)

// Stringify renders a JSON value the way the rules compare it.
// Missing and null values become the empty string.
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

// ToNumber converts a JSON value to a number: JSON numbers as they are,
// booleans as 1 or 0, and decimal strings after trimming, with "" read as 0.
// ok is false for anything else, including hex literals and infinities.
func ToNumber(value any) (n float64, ok bool) {
	switch v := value.(type) {
	case float64:
		n = v
	case bool:
		if v {
			n = 1
		}
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, true
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		n = f
	default:
		return 0, false
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// ToBool reads a value accepted by IsBoolean.
func ToBool(value any) bool {
	switch Stringify(value) {
	case "true", "1":
		return true
	}
	return false
}

// GreaterThanZero reports whether value reads as a number above zero.
func GreaterThanZero(value any) bool {
	n, ok := ToNumber(value)
	if !ok {
		return false
	}
	return validate.Var(n, "gt=0") == nil
}

func isNotEmpty(value any) bool {
	return validate.Var(Stringify(value), "required") == nil
}

func isInt(value any) bool {
	return intRegexp.MatchString(Stringify(value))
}

func isBoolean(value any) bool {
	return validate.Var(Stringify(value), "required,oneof=true false 1 0") == nil
}
