package validate

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Gunvolt24/storefront/internal/catalog"
	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
)

// Result — статистика проверки товаров.
type Result struct {
	ValidCount   int
	InvalidCount int
}

func (r Result) String() string {
	return fmt.Sprintf("%d valid / %d invalid", r.ValidCount, r.InvalidCount)
}

// ValidatePageStream — читает HTML-страницу витрины, валидирует каждый товар,
// валидные пишет в writer как JSONL (канонический JSON, одна строка на товар).
func ValidatePageStream(ctx context.Context, validator ports.ProductValidator, ir io.Reader, ow io.Writer) (Result, error) {
	var res Result

	products, err := catalog.ReadPage(ir)
	if err != nil {
		return res, fmt.Errorf("read page: %w", err)
	}
	for _, rp := range products {
		if rp.Err != nil {
			res.InvalidCount++
			continue
		}
		if err := validator.Validate(ctx, &rp.Product); err != nil {
			res.InvalidCount++
			continue
		}
		if err := writeLine(ow, &rp.Product); err != nil {
			return res, err
		}
		res.ValidCount++
	}
	return res, nil
}

// ValidateJSONLStream — читает JSONL из reader’а, валидирует каждую строку, валидные пишет в writer.
// Пустые строки пропускаются.
func ValidateJSONLStream(ctx context.Context, validator ports.ProductValidator, ir io.Reader, ow io.Writer) (Result, error) {
	var res Result

	scanner := bufio.NewScanner(ir)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		product, err := ValidateProductFromJSON(ctx, validator, line)
		if err != nil {
			res.InvalidCount++
			continue
		}
		if err := writeLine(ow, product); err != nil {
			return res, err
		}
		res.ValidCount++
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("scan: %w", err)
	}
	return res, nil
}

func writeLine(ow io.Writer, product *domain.Product) error {
	line, err := json.Marshal(product)
	if err != nil {
		return fmt.Errorf("marshal product: %w", err)
	}
	line = append(line, '\n')
	if _, err := ow.Write(line); err != nil {
		return fmt.Errorf("write valid line: %w", err)
	}
	return nil
}
