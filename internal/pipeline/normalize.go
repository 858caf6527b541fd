package pipeline

import (
	"strconv"
	"strings"

	"dlc-analytics/internal/model"
)

// Source column names as they appear in the spreadsheet exports.
const (
	colPensionerPincode = "PENSIONER_PINCODE"
	colBranchPincode    = "BRANCH_PINCODE"
	colBirthYear        = "YOB"
	colBankName         = "BANK_NAME"
	colBranchName       = "BRANCH_NAME"
	colPensionAmount    = "PENSION_AMOUNT"
)

// Normalize coerces one raw row into a PensionerRecord. Every field has a
// defined fallback, so normalization never rejects a row; malformed values
// become sentinels and the aggregation views decide inclusion themselves.
func Normalize(raw model.GenericRecord) model.PensionerRecord {
	return model.PensionerRecord{
		PensionerPincode: cleanPincode(raw[colPensionerPincode]),
		BranchPincode:    cleanPincode(raw[colBranchPincode]),
		BirthYear:        parseBirthYear(raw[colBirthYear]),
		BankName:         stringOr(raw[colBankName], model.UnknownBank),
		BranchName:       stringOr(raw[colBranchName], model.UnknownBranch),
		PensionAmount:    parseAmount(raw[colPensionAmount]),
		SourceFile:       stringOr(raw["SourceFile"], ""),
	}
}

// cleanPincode stringifies a pincode cell and strips the trailing ".0"
// artifact left by spreadsheets that store pincodes as floats.
func cleanPincode(v interface{}) string {
	s := cellString(v)
	s = strings.TrimSuffix(s, ".0")
	if s == "nan" {
		return ""
	}
	return s
}

// parseBirthYear tolerates "1960", "1960.0" and numeric cells; anything else
// falls back to the fixed fallback year.
func parseBirthYear(v interface{}) int {
	switch n := v.(type) {
	case int:
		return n
	case float64:
		return int(n)
	}
	s := cellString(v)
	if s == "" {
		return model.FallbackBirthYear
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return model.FallbackBirthYear
}

func parseAmount(v interface{}) float64 {
	switch n := v.(type) {
	case int:
		return float64(n)
	case float64:
		return n
	}
	if f, err := strconv.ParseFloat(cellString(v), 64); err == nil {
		return f
	}
	return 0
}

func stringOr(v interface{}, fallback string) string {
	if s := cellString(v); s != "" && s != "nan" {
		return s
	}
	return fallback
}

func cellString(v interface{}) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(s)
	case int:
		return strconv.Itoa(s)
	case float64:
		// Whole floats print without an exponent so pincodes survive intact.
		return strconv.FormatFloat(s, 'f', -1, 64)
	}
	return ""
}
