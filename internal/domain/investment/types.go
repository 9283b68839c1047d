package investment

import "strings"

type Type string

const (
	TypeStock       Type = "STOCK"
	TypeCrypto      Type = "CRYPTO"
	TypeFund        Type = "FUND"
	TypeFixedIncome Type = "FIXED_INCOME"
	TypeOther       Type = "OTHER"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeStock, TypeCrypto, TypeFund, TypeFixedIncome, TypeOther:
		return true
	}
	return false
}

// ParseType aceita o nome do tipo em qualquer caixa.
func ParseType(value string) (Type, bool) {
	t := Type(strings.ToUpper(strings.TrimSpace(value)))
	return t, t.IsValid()
}
