package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var thousandsDotRe = regexp.MustCompile(`^\d+\.\d{3}$`)

// normalizeAmount turns a receipt amount token into a float. Spaces are
// stripped and commas become dots; a single dot followed by exactly three
// digits is a thousands group in the local convention (150.000 is one
// hundred fifty thousand, not 150.0), and any token left with more than one
// dot (1.500.000) is an integer amount with all dots removed. ok is false
// when nothing parseable remains.
func normalizeAmount(token string) (float64, bool) {
	s := strings.ReplaceAll(token, " ", "")
	s = strings.ReplaceAll(s, ",", ".")
	if thousandsDotRe.MatchString(s) {
		s = strings.ReplaceAll(s, ".", "")
	}
	if strings.Count(s, ".") > 1 {
		s = strings.ReplaceAll(s, ".", "")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// cleanGroupedAmount strips digit grouping (commas and spaces) and keeps the
// dot as the decimal separator, the convention used by SMS alerts and
// statement cells ("3,500,000.00" or "45 000").
func cleanGroupedAmount(token string) (float64, bool) {
	s := strings.ReplaceAll(token, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

type datePattern struct {
	re     *regexp.Regexp
	layout string
}

// Receipt date patterns in strict precedence order. Slashes are normalized
// to dots before layout parsing, so dd/mm/yyyy rides on the first pattern.
var receiptDatePatterns = []datePattern{
	{regexp.MustCompile(`\d{2}[./]\d{2}[./]\d{4}`), "02.01.2006"},
	{regexp.MustCompile(`\d{2}[./]\d{2}[./]\d{2}\b`), "02.01.06"},
	{regexp.MustCompile(`\d{4}-\d{2}-\d{2}`), "2006-01-02"},
}

// findDate scans text against the patterns in precedence order and returns
// the first match that parses. Zero time when nothing matches.
func findDate(text string, patterns []datePattern) time.Time {
	for _, p := range patterns {
		m := p.re.FindString(text)
		if m == "" {
			continue
		}
		raw := strings.ReplaceAll(m, "/", ".")
		if t, err := time.Parse(p.layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Layouts tried per statement cell, first match wins.
var statementDateLayouts = []string{
	"2006-01-02",
	"02.01.2006",
	"02/01/2006",
	"01/02/2006",
	"02-01-2006",
}

func parseCellDate(s string) time.Time {
	for _, layout := range statementDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
