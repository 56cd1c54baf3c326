package casemodel

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsHighValue(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		want   bool
	}{
		{name: "zero", amount: 0, want: false},
		{name: "well below", amount: 500_000, want: false},
		{name: "exactly at threshold", amount: 1_000_000, want: false},
		{name: "one above threshold", amount: 1_000_001, want: true},
		{name: "sample claim", amount: 1_200_000, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsHighValue(CaseRecord{AmountMinor: tt.amount}))
		})
	}
}

func TestIsHighValue_MatchesThresholdComparison(t *testing.T) {
	for amount := int64(0); amount <= 2_000_000; amount += 12_345 {
		r := CaseRecord{AmountMinor: amount}
		assert.Equal(t, amount > 1_000_000, IsHighValue(r), "amount %d", amount)
	}
}

func TestDisplayAmount(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{amount: 1_200_000, want: "12.0"},
		{amount: 999_999, want: "10.0"},
		{amount: 0, want: "0.0"},
		{amount: 150_000, want: "1.5"},
		{amount: 500_000, want: "5.0"},
		{amount: 123_456_789, want: "1234.6"},
		{amount: 125_000, want: "1.3"},
		{amount: 25_000, want: "0.3"},
		{amount: 625_000, want: "6.3"},
		{amount: 15_000, want: "0.2"},
		{amount: 4_999, want: "0.0"},
		{amount: 5_000, want: "0.1"},
		{amount: -125_000, want: "-1.3"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayAmount(CaseRecord{AmountMinor: tt.amount}))
		})
	}
}

func TestPrimaryLocationSegment(t *testing.T) {
	tests := []struct {
		location string
		want     string
	}{
		{location: "Kerala, India", want: "Kerala"},
		{location: "Singletown", want: "Singletown"},
		{location: " Kochi ,Kerala, India", want: " Kochi "},
		{location: "  Kerala,India", want: "  Kerala"},
		{location: "", want: ""},
		{location: ",India", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			r := CaseRecord{Location: tt.location}
			assert.Equal(t, tt.want, PrimaryLocationSegment(r))
			assert.Equal(t, tt.location, r.Location)
		})
	}
}

func TestDisplayAmount_HalvesRoundUp(t *testing.T) {
	for tenths := int64(0); tenths < 200; tenths++ {
		amount := tenths*10_000 + 5_000
		next := tenths + 1
		want := strconv.FormatInt(next/10, 10) + "." + strconv.FormatInt(next%10, 10)
		assert.Equal(t, want, DisplayAmount(CaseRecord{AmountMinor: amount}), "amount %d", amount)
	}
}

func TestGroupedAmount(t *testing.T) {
	r := CaseRecord{AmountMinor: 1_200_000}
	assert.Equal(t, "1,200,000", GroupedAmount(r, "en"))
	assert.Equal(t, "1,200,000", GroupedAmount(r, "not a tag!"))
}
