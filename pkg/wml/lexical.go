package wml

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Lexical leaf parsers for the attribute value grammars shared by every
// concrete element decoder. All of them fail with a typed error from
// errors.go rather than a raw strconv error.

// ParseOnOff parses the four-token on/off convention. Tokens are
// case-sensitive: "true", "false", "1", "0".
func ParseOnOff(value string) (bool, error) {
	switch value {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	default:
		return false, NewParseBoolError(value)
	}
}

// ParseInt parses a signed decimal integer attribute value.
func ParseInt(value string) (int64, error) {
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, NewParseIntError(value, err)
	}
	return n, nil
}

// ParseUint parses an unsigned decimal integer attribute value.
func ParseUint(value string) (uint64, error) {
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, NewParseIntError(value, err)
	}
	return n, nil
}

// ParseEnum matches a token against a closed string set.
func ParseEnum(value string, allowed []string) (string, error) {
	if !lo.Contains(allowed, value) {
		return "", NewParseEnumError(value)
	}
	return value, nil
}

// MeasureUnit is the physical unit carried by a dimensional measure.
// The empty unit means the bare base unit of the measure's context
// (twentieths of a point for twips-like values, half-points for sizes).
type MeasureUnit string

const (
	UnitNone       MeasureUnit = ""
	UnitMillimeter MeasureUnit = "mm"
	UnitCentimeter MeasureUnit = "cm"
	UnitInch       MeasureUnit = "in"
	UnitPoint      MeasureUnit = "pt"
	UnitPica       MeasureUnit = "pc"
	UnitPi         MeasureUnit = "pi"
)

var measureUnits = []string{"mm", "cm", "in", "pt", "pc", "pi"}

// Measure is a dimensional value: either a bare integer in the context's
// base unit, or a decimal number with an explicit unit suffix.
type Measure struct {
	Value float64
	Unit  MeasureUnit
}

// ParseSignedMeasure parses a twips-like measure: a signed bare integer or
// a signed decimal with a unit suffix.
func ParseSignedMeasure(value string) (Measure, error) {
	return parseMeasure(value, true)
}

// ParseUnsignedMeasure parses a points-like measure, which differs from the
// signed variant only in rejecting negative magnitudes.
func ParseUnsignedMeasure(value string) (Measure, error) {
	return parseMeasure(value, false)
}

func parseMeasure(value string, signed bool) (Measure, error) {
	for _, unit := range measureUnits {
		if strings.HasSuffix(value, unit) {
			digits := strings.TrimSuffix(value, unit)
			f, err := strconv.ParseFloat(digits, 64)
			if err != nil {
				return Measure{}, NewParseIntError(value, err)
			}
			if !signed && f < 0 {
				return Measure{}, NewPatternError(value)
			}
			return Measure{Value: f, Unit: MeasureUnit(unit)}, nil
		}
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return Measure{}, NewParseIntError(value, err)
	}
	if !signed && n < 0 {
		return Measure{}, NewPatternError(value)
	}
	return Measure{Value: float64(n), Unit: UnitNone}, nil
}

// HexColor is either the automatic color or an explicit RRGGBB value,
// optionally qualified by a theme color with tint/shade adjustments.
type HexColor struct {
	Auto       bool
	RGB        string
	ThemeColor string
	ThemeTint  string
	ThemeShade string
}

var hexColorRE = regexp.MustCompile(`^[0-9a-fA-F]{6}$`)

// ParseHexColor parses 'auto' or a six-digit hex color token.
func ParseHexColor(value string) (HexColor, error) {
	if value == "auto" {
		return HexColor{Auto: true}, nil
	}
	if !hexColorRE.MatchString(value) {
		return HexColor{}, NewParseHexColorError(value)
	}
	return HexColor{RGB: strings.ToUpper(value)}, nil
}

// textScaleRE is the compiled text-scale percentage grammar. Built once at
// package initialization; the pattern itself carries no range restriction,
// the 0-600 bound is checked after the match.
var textScaleRE = regexp.MustCompile(`^([0-9]+(?:\.[0-9]+)?)%$`)

// ParseTextScale parses a horizontal text-scale percentage between "0%"
// and "600%" into a plain factor ("100%" becomes 1.0).
func ParseTextScale(value string) (float64, error) {
	m := textScaleRE.FindStringSubmatch(value)
	if m == nil {
		return 0, NewPatternError(value)
	}
	f, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, NewPatternError(value)
	}
	if f > 600 {
		return 0, NewPatternError(value)
	}
	return f / 100, nil
}
