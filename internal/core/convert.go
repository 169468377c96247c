package core

// convert.go turns raw text fields into pgtype values.
//
// Each Parse* function distinguishes three outcomes:
//   - absent (empty or a null token such as NULL): Valid=false, nil error
//   - well formed: Valid=true, nil error
//   - malformed: error, which fails the whole parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// numericRegex validates that a string is a plain decimal after cleanup.
var numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)

// fieldSeparator splits a line on runs of two or more whitespace characters.
// Single spaces stay inside a field.
var fieldSeparator = regexp.MustCompile(`\s{2,}`)

// dateLayouts are tried in order. ISO first, then day-first forms, so
// "05/12/2018" is 5 December 2018.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2006/01/02",
}

// nullTokens are the values read as absent.
var nullTokens = map[string]bool{
	"":     true,
	"NULL": true,
	"null": true,
	"NA":   true,
	"N/A":  true,
	"n/a":  true,
	"NaN":  true,
	"nan":  true,
	"None": true,
}

// IsNull reports whether a raw field value means "no value".
func IsNull(s string) bool {
	return nullTokens[strings.TrimSpace(s)]
}

// SplitFields splits a trimmed line into positional fields.
func SplitFields(line string) []string {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	return fieldSeparator.Split(line, -1)
}

// ToPgText converts a string to pgtype.Text.
// Returns invalid for empty input and null tokens.
func ToPgText(s string) pgtype.Text {
	s = strings.TrimSpace(s)
	if IsNull(s) {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: s, Valid: true}
}

// ParseInt4 converts an integer field.
func ParseInt4(s string) (pgtype.Int4, error) {
	s = strings.TrimSpace(s)
	if IsNull(s) {
		return pgtype.Int4{Valid: false}, nil
	}
	i, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return pgtype.Int4{}, fmt.Errorf("invalid integer %q", s)
	}
	return pgtype.Int4{Int32: int32(i), Valid: true}, nil
}

// ParseDate converts a date field. Supports ISO and day-first layouts;
// month-first input is not recognized.
func ParseDate(s string) (pgtype.Date, error) {
	s = strings.TrimSpace(s)
	if IsNull(s) {
		return pgtype.Date{Valid: false}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return pgtype.Date{Time: t, Valid: true}, nil
		}
	}
	return pgtype.Date{}, fmt.Errorf("invalid date %q", s)
}

// ParseDecimal converts a decimal field that may use ',' as the fractional
// separator. The comma is replaced with '.', so "1.234,56" is rejected rather
// than guessed at.
func ParseDecimal(s string) (pgtype.Numeric, error) {
	s = strings.TrimSpace(s)
	if IsNull(s) {
		return pgtype.Numeric{Valid: false}, nil
	}

	normalized := strings.ReplaceAll(s, ",", ".")
	if !numericRegex.MatchString(normalized) {
		return pgtype.Numeric{}, fmt.Errorf("invalid number %q", s)
	}

	var n pgtype.Numeric
	if err := n.Scan(normalized); err != nil {
		return pgtype.Numeric{}, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return n, nil
}
