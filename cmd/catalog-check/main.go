package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Gunvolt24/storefront/pkg/validate"
)

// CLI для проверки товаров витрины: читает HTML-страницу (или JSONL с товарами),
// печатает валидные товары в JSONL, ошибки — в stderr.
func main() {
	inputPath := flag.String("in", "", "path to input (.html or .jsonl). If empty, reads from stdin.")
	formatStr := flag.String("format", "auto", "input format: auto|html|jsonl")
	flag.Parse()

	ctx := context.Background()
	productValidator := validate.NewProductValidator()

	format := validate.InputFormat(*formatStr)
	path := *inputPath

	// stdin вариант: считаем, что HTML
	if path == "" {
		if format == validate.FormatAuto {
			format = validate.FormatHTML
		}
		path = "/dev/stdin"
	}

	summary, err := validate.ValidateFile(ctx, productValidator, path, format, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "validation: %v (%s)\n", err, summary)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "validation ok (%s)\n", summary)
}
