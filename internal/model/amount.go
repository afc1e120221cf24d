package model

import (
	"github.com/shopspring/decimal"
)

// Amount is a fixed-point value with two decimal places (prices, kilometers).
// It scans from NUMERIC columns and renders in JSON as a quoted string, e.g. "450.00".
type Amount struct {
	decimal.Decimal
}

func NewAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, err
	}
	return Amount{d.Round(2)}, nil
}

func MustAmount(s string) Amount {
	a, err := NewAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.StringFixed(2) + `"`), nil
}

func (a Amount) String() string {
	return a.StringFixed(2)
}
