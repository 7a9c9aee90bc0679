package validate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Gunvolt24/storefront/internal/domain"
)

// ParseQuantity — разбирает количество из поля ввода так же, как это делает браузерный parseInt:
// пробелы по краям, необязательный знак, ведущие цифры; хвост после цифр игнорируется ("3.7" → 3).
// Нет цифр, результат < 1 или > domain.MaxQuantity → domain.ErrInvalidQuantity.
func ParseQuantity(raw string) (int, error) {
	s := strings.TrimSpace(raw)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidQuantity, raw)
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// переполнение int
		return 0, fmt.Errorf("%w: %q", domain.ErrQuantityTooLarge, raw)
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: got %d", domain.ErrInvalidQuantity, n)
	}
	if n > domain.MaxQuantity {
		return 0, fmt.Errorf("%w: got %d", domain.ErrQuantityTooLarge, n)
	}
	return n, nil
}
