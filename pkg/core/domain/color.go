package domain

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a CSS color string as entered by the user. Values are not
// normalized; malformed colors are carried through to rendering verbatim.
type Color string

var (
	hexColorPattern  = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	funcColorPattern = regexp.MustCompile(`^rgba?\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*(?:,\s*([0-9]*\.?[0-9]+)\s*)?\)$`)
)

// String returns the raw color text.
func (c Color) String() string {
	return string(c)
}

// IsZero reports whether the color is unset.
func (c Color) IsZero() bool {
	return strings.TrimSpace(string(c)) == ""
}

// WellFormed reports whether the color matches one of the accepted lexical
// forms: #RGB, #RRGGBB, #RRGGBBAA, rgb(...), rgba(...) or transparent.
func (c Color) WellFormed() bool {
	s := strings.TrimSpace(string(c))
	if strings.EqualFold(s, "transparent") {
		return true
	}
	if hexColorPattern.MatchString(s) {
		return true
	}
	m := funcColorPattern.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	for _, ch := range m[1:4] {
		if n, err := strconv.Atoi(ch); err != nil || n > 255 {
			return false
		}
	}
	if m[4] != "" {
		if a, err := strconv.ParseFloat(m[4], 64); err != nil || a > 1 {
			return false
		}
	}
	return true
}

// WithAlpha returns the color at the given opacity (0..1). Hex colors gain an
// alpha byte, rgb()/rgba() are rewritten as rgba(). Anything else is returned
// unchanged.
func (c Color) WithAlpha(alpha float64) string {
	alpha = math.Max(0, math.Min(1, alpha))
	s := strings.TrimSpace(string(c))

	if hexColorPattern.MatchString(s) {
		hex := s
		if len(s) == 9 {
			hex = s[:7]
		}
		parsed, err := colorful.Hex(hex)
		if err != nil {
			return string(c)
		}
		return fmt.Sprintf("%s%02x", parsed.Hex(), uint8(math.Round(alpha*255)))
	}

	if m := funcColorPattern.FindStringSubmatch(s); m != nil {
		return fmt.Sprintf("rgba(%s, %s, %s, %s)", m[1], m[2], m[3], strconv.FormatFloat(alpha, 'f', -1, 64))
	}

	return string(c)
}
