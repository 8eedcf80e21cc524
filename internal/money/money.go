// Package money holds the storefront's monetary value type. Amounts
// are stored and summed as exact decimals; the locale formatting used
// by the edit forms ("R$ 1.234,56") exists only at the parse/format
// boundary and never leaks into storage.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type Money struct {
	decimal.Decimal
}

func Zero() Money {
	return Money{decimal.Zero}
}

func New(units int64, exp int32) Money {
	return Money{decimal.New(units, exp)}
}

// Parse reads a plain numeric amount, e.g. "25.50".
func Parse(s string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Money{}, fmt.Errorf("money: invalid amount %q: %w", s, err)
	}
	return Money{d}, nil
}

// ParseBRL reads a locale-formatted amount such as "R$ 1.234,56".
// The currency prefix and the thousands separators are optional, so a
// plain "1234,56" or "1234.56" is accepted too.
func ParseBRL(s string) (Money, error) {
	raw := strings.TrimSpace(s)
	raw = strings.TrimPrefix(raw, "R$")
	raw = strings.TrimSpace(raw)
	if strings.Contains(raw, ",") {
		raw = strings.ReplaceAll(raw, ".", "")
		raw = strings.ReplaceAll(raw, ",", ".")
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return Money{}, fmt.Errorf("money: invalid amount %q: %w", s, err)
	}
	return Money{d}, nil
}

// FormatBRL renders the amount the way the edit forms expect it,
// e.g. 1234.5 -> "R$ 1.234,50".
func (m Money) FormatBRL() string {
	fixed := m.StringFixed(2)

	neg := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	parts := strings.SplitN(fixed, ".", 2)
	intPart, fracPart := parts[0], parts[1]

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	sign := ""
	if neg {
		sign = "-"
	}
	return fmt.Sprintf("R$ %s%s,%s", sign, b.String(), fracPart)
}

func (m Money) Add(o Money) Money {
	return Money{m.Decimal.Add(o.Decimal)}
}

func (m Money) Equal(o Money) bool {
	return m.Decimal.Equal(o.Decimal)
}

func (m Money) IsNegative() bool {
	return m.Decimal.IsNegative()
}
