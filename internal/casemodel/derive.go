package casemodel

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// HighValueThreshold is the amount, in minor units, above which a claim needs
// stricter review.
const HighValueThreshold int64 = 1_000_000

// MinorUnitsPerLakh is the number of minor units in one display Lakh.
const MinorUnitsPerLakh = 100_000

// IsHighValue reports whether the claim amount strictly exceeds HighValueThreshold.
func IsHighValue(r CaseRecord) bool {
	return r.AmountMinor > HighValueThreshold
}

// DisplayAmount formats the claim amount in Lakhs with one decimal place,
// e.g. 1_200_000 -> "12.0" and 999_999 -> "10.0". Halves round away from zero.
func DisplayAmount(r CaseRecord) string {
	amount, sign := r.AmountMinor, ""
	if amount < 0 {
		amount, sign = -amount, "-"
	}
	const perTenth = MinorUnitsPerLakh / 10
	tenths := (amount + perTenth/2) / perTenth
	return fmt.Sprintf("%s%d.%d", sign, tenths/10, tenths%10)
}

// PrimaryLocationSegment returns the part of Location before the first comma,
// unmodified. Without a comma the whole location is returned.
func PrimaryLocationSegment(r CaseRecord) string {
	segment, _, _ := strings.Cut(r.Location, ",")
	return segment
}

// GroupedAmount renders the raw minor amount with the thousands separators of
// the given locale. An invalid tag falls back to English.
func GroupedAmount(r CaseRecord, tag string) string {
	lang, err := language.Parse(tag)
	if err != nil {
		lang = language.English
	}
	return message.NewPrinter(lang).Sprintf("%d", r.AmountMinor)
}
