package validate

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Gunvolt24/storefront/internal/ports"
)

// InputFormat допустимые значения.
type InputFormat string

const (
	FormatAuto  InputFormat = "auto"
	FormatHTML  InputFormat = "html"
	FormatJSONL InputFormat = "jsonl"
)

// DetectFormat — формат по расширению файла; по умолчанию HTML.
func DetectFormat(path string) InputFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jsonl", ".ndjson":
		return FormatJSONL
	default:
		return FormatHTML
	}
}

// ValidateFile — валидирует страницу витрины или JSONL с товарами и пишет валидные товары в writer.
// Любой невалидный товар превращается в ошибку с итоговой сводкой.
func ValidateFile(ctx context.Context, validator ports.ProductValidator, filePath string, format InputFormat, ow io.Writer) (Result, error) {
	if format == FormatAuto {
		format = DetectFormat(filePath)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return Result{}, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	var res Result
	switch format {
	case FormatHTML:
		res, err = ValidatePageStream(ctx, validator, file, ow)
	case FormatJSONL:
		res, err = ValidateJSONLStream(ctx, validator, file, ow)
	default:
		return Result{}, fmt.Errorf("unsupported format: %s", format)
	}
	if err != nil {
		return res, err
	}
	if res.InvalidCount > 0 {
		return res, fmt.Errorf("%w: %d invalid product(s)", ErrInvalidProduct, res.InvalidCount)
	}
	return res, nil
}
