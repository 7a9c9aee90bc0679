// Package catalog читает товары из разметки витрины.
//
// Товар — это элемент с атрибутами data-name и data-price и вложенной картинкой
// (img с alt="Product Image"). Кнопка «в корзину» относится к ближайшему
// такому элементу-предку.
package catalog

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Gunvolt24/storefront/internal/domain"
	"golang.org/x/net/html"
)

const (
	attrName     = "data-name"
	attrPrice    = "data-price"
	productImage = "Product Image"
)

var (
	// ErrNotProduct — у элемента нет data-name.
	ErrNotProduct = errors.New("element is not a product")
	// ErrMalformedProduct — элемент товара без цены или картинки, либо с нечисловой ценой.
	ErrMalformedProduct = errors.New("malformed product element")
)

// Entry — результат чтения одного элемента товара со страницы.
type Entry struct {
	Product domain.Product
	Err     error
}

// ReadProduct — извлекает имя, цену и ссылку на картинку из элемента товара.
func ReadProduct(n *html.Node) (domain.Product, error) {
	if n == nil || n.Type != html.ElementNode {
		return domain.Product{}, ErrNotProduct
	}
	name, ok := attr(n, attrName)
	if !ok {
		return domain.Product{}, ErrNotProduct
	}
	name = strings.TrimSpace(name)

	rawPrice, ok := attr(n, attrPrice)
	if !ok {
		return domain.Product{}, fmt.Errorf("%w: %q has no %s", ErrMalformedProduct, name, attrPrice)
	}
	price, err := domain.ParseMoney(rawPrice)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%w: %q: %w", ErrMalformedProduct, name, err)
	}

	img := findImage(n)
	if img == "" {
		return domain.Product{}, fmt.Errorf("%w: %q has no image", ErrMalformedProduct, name)
	}

	return domain.Product{Name: name, Price: price, ImageRef: img}, nil
}

// ReadPage — все элементы товаров страницы в порядке документа.
// Ошибка возвращается только если страницу не удалось разобрать;
// проблемы отдельных товаров лежат в Entry.Err.
func ReadPage(r io.Reader) ([]Entry, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if _, ok := attr(n, attrName); ok {
				p, err := ReadProduct(n)
				entries = append(entries, Entry{Product: p, Err: err})
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return entries, nil
}

// findImage — src первой картинки товара; если подписанной нет, то первой картинки вообще.
func findImage(root *html.Node) string {
	var first, labelled string
	var walk func(*html.Node) bool
	walk = func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == "img" {
			src, _ := attr(n, "src")
			if first == "" {
				first = src
			}
			if alt, _ := attr(n, "alt"); alt == productImage && src != "" {
				labelled = src
				return true
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if walk(c) {
				return true
			}
		}
		return false
	}
	walk(root)

	if labelled != "" {
		return labelled
	}
	return first
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
