package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidMoney — сумма не число, бесконечность или отрицательная.
var ErrInvalidMoney = errors.New("invalid money amount")

// Money — денежная сумма в минимальных единицах (копейки/сентаво).
type Money int64

const (
	// MaxPrice — верхняя граница цены товара (100 000 000.00).
	MaxPrice Money = 100_000_000_00
	// MaxMoney — значение, в которое упирается арифметика при переполнении.
	MaxMoney Money = math.MaxInt64
)

// ParseMoney — разбирает десятичную строку ("10", "10.5", "5.50") в Money.
// Округление до двух знаков — математическое.
func ParseMoney(raw string) (Money, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidMoney)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMoney, raw)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 || f*100 > float64(MaxPrice) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMoney, raw)
	}
	return Money(math.Round(f * 100)), nil
}

// Times — сумма за quantity единиц; при переполнении int64 — MaxMoney.
// Отрицательные множители не используются: количество всегда >= 1.
func (m Money) Times(quantity int) Money {
	if m <= 0 || quantity <= 0 {
		return m * Money(quantity)
	}
	if int64(m) > math.MaxInt64/int64(quantity) {
		return MaxMoney
	}
	return m * Money(quantity)
}

// Plus — сложение неотрицательных сумм с насыщением на MaxMoney.
func (m Money) Plus(other Money) Money {
	if other > 0 && m > MaxMoney-other {
		return MaxMoney
	}
	return m + other
}

// String — формат с двумя знаками после точки, без валюты.
func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// MarshalJSON — число с двумя знаками: 25.50.
func (m Money) MarshalJSON() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalJSON — принимает JSON-число или строку с числом.
func (m *Money) UnmarshalJSON(data []byte) error {
	parsed, err := ParseMoney(strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
