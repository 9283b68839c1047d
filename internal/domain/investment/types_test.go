package investment_test

import (
	"testing"

	"Carteira/internal/domain/investment"
)

func TestParseType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  investment.Type
		ok    bool
	}{
		{"STOCK", investment.TypeStock, true},
		{"stock", investment.TypeStock, true},
		{"Crypto", investment.TypeCrypto, true},
		{"fund", investment.TypeFund, true},
		{"fixed_income", investment.TypeFixedIncome, true},
		{" other ", investment.TypeOther, true},
		{"BOND", "", false},
		{"", "", false},
		{"FIXED INCOME", "", false},
	}

	for _, tt := range tests {
		got, ok := investment.ParseType(tt.input)
		if ok != tt.ok {
			t.Errorf("ParseType(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("ParseType(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestTypeIsValid(t *testing.T) {
	t.Parallel()

	for _, valid := range []investment.Type{
		investment.TypeStock,
		investment.TypeCrypto,
		investment.TypeFund,
		investment.TypeFixedIncome,
		investment.TypeOther,
	} {
		if !valid.IsValid() {
			t.Errorf("expected %s to be valid", valid)
		}
	}

	if investment.Type("stock").IsValid() {
		t.Errorf("lower-case token must not be valid without ParseType")
	}
}
