package utils

import "testing"

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{name: "Hundreds", amount: 950.0, want: "950.00"},
		{name: "Thousands", amount: 950000.0, want: "950,000.00"},
		{name: "Millions", amount: 1500000.0, want: "1,500,000.00"},
		{name: "Cents preserved", amount: 1234.56, want: "1,234.56"},
		{name: "Zero", amount: 0, want: "0.00"},
		{name: "Negative", amount: -750000.0, want: "-750,000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatMoney(tt.amount); got != tt.want {
				t.Errorf("FormatMoney(%v) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}
