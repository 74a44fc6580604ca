package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain value", "R$ 100,00", "100"},
		{"grouped thousands", "R$ 1.234,56", "1234.56"},
		{"millions", "R$ 12.345.678,90", "12345678.9"},
		{"negative prefix is stripped", "- R$ 50,00", "50"},
		{"no symbol", "250,75", "250.75"},
		{"cents only", "R$ 0,09", "0.09"},
		{"plain decimal", "1234.56", "1234.56"},
		{"plain decimal short fraction", "0.5", "0.5"},
		{"plain integer", "250", "250"},
		{"dot grouping without comma", "1.234", "1234"},
		{"dot grouping millions without comma", "1.234.567", "1234567"},
		{"dot grouping with dot decimal", "1.234.56", "1234.56"},
		{"empty input defaults to zero", "", "0"},
		{"garbage defaults to zero", "abc", "0"},
		{"symbol only defaults to zero", "R$ ", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := decimal.RequireFromString(tt.want)
			got := Parse(tt.in)
			if !got.Equal(want) {
				t.Errorf("Parse(%q) = %s, want %s", tt.in, got, want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		negative bool
		want     string
	}{
		{"plain value", "100", false, "R$ 100,00"},
		{"grouped thousands", "1234.56", false, "R$ 1.234,56"},
		{"millions", "12345678.9", false, "R$ 12.345.678,90"},
		{"negative prefix", "50", true, "- R$ 50,00"},
		{"zero", "0", false, "R$ 0,00"},
		{"cents only", "0.09", false, "R$ 0,09"},
		{"exactly one group boundary", "1000", false, "R$ 1.000,00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(decimal.RequireFromString(tt.in), tt.negative)
			if got != tt.want {
				t.Errorf("Format(%s, %v) = %q, want %q", tt.in, tt.negative, got, tt.want)
			}
		})
	}
}

func TestParseRawAmountRoundTrip(t *testing.T) {
	// Clients echo the raw amount field back when editing a transaction,
	// so parse(x.String()) == x must hold alongside the localized form.
	values := []string{"0.09", "70", "150.5", "1234.56", "12345678.9"}

	for _, v := range values {
		amount := decimal.RequireFromString(v)
		if got := Parse(amount.String()); !got.Equal(amount) {
			t.Errorf("Parse(%q) = %s, want %s", amount.String(), got, amount)
		}
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	// parse(format(x, s)) == x for non-negative two-decimal x.
	values := []string{"0", "0.01", "0.99", "1", "999.99", "1000", "1234.56", "987654321.09"}

	for _, v := range values {
		amount := decimal.RequireFromString(v)
		for _, negative := range []bool{false, true} {
			got := Parse(Format(amount, negative))
			if !got.Equal(amount) {
				t.Errorf("round trip of %s (negative=%v) = %s", amount, negative, got)
			}
		}
	}
}
