package catalog_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Gunvolt24/storefront/internal/catalog"
	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports/mocks"
	"github.com/Gunvolt24/storefront/pkg/validate"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const page = `<!doctype html>
<html><body>
<section class="menu">
  <div class="product" data-name="Milk Tea" data-price="10.00">
    <img src="/static/img/logo.png" alt="Badge">
    <img src="/static/img/tea.png" alt="Product Image">
    <h3>Milk Tea</h3>
    <button class="add-to-cart-btn">Add to cart</button>
  </div>
  <div class="product" data-name=" Iced Coffee " data-price="5.5">
    <img src="/static/img/coffee.png">
    <button class="add-to-cart-btn">Add to cart</button>
  </div>
  <div class="product" data-name="Milk Tea" data-price="99">
    <img src="/static/img/tea-dup.png" alt="Product Image">
  </div>
</section>
</body></html>`

func productNode(t *testing.T, markup string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(markup))
	require.NoError(t, err)

	var found *html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if found != nil {
			return
		}
		if n.Type == html.ElementNode && n.Data == "div" {
			found = n
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	require.NotNil(t, found)
	return found
}

func TestReadProduct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		markup  string
		want    domain.Product
		wantErr error
	}{
		{
			name:   "labelled image wins",
			markup: `<div data-name="Cake" data-price="120"><img src="a.png"><img alt="Product Image" src="cake.png"></div>`,
			want:   domain.Product{Name: "Cake", Price: 12000, ImageRef: "cake.png"},
		},
		{
			name:   "falls back to first image",
			markup: `<div data-name="Cake" data-price="1.25"><span><img src="only.png"></span></div>`,
			want:   domain.Product{Name: "Cake", Price: 125, ImageRef: "only.png"},
		},
		{
			name:    "not a product",
			markup:  `<div class="x"><img src="a.png"></div>`,
			wantErr: catalog.ErrNotProduct,
		},
		{
			name:    "missing price",
			markup:  `<div data-name="Cake"><img src="a.png"></div>`,
			wantErr: catalog.ErrMalformedProduct,
		},
		{
			name:    "bad price",
			markup:  `<div data-name="Cake" data-price="free"><img src="a.png"></div>`,
			wantErr: catalog.ErrMalformedProduct,
		},
		{
			name:    "no image",
			markup:  `<div data-name="Cake" data-price="3"></div>`,
			wantErr: catalog.ErrMalformedProduct,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := catalog.ReadProduct(productNode(t, tt.markup))
			if tt.wantErr != nil {
				require.True(t, errors.Is(err, tt.wantErr), "want %v, got %v", tt.wantErr, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestReadPage_DocumentOrder(t *testing.T) {
	entries, err := catalog.ReadPage(strings.NewReader(page))
	require.NoError(t, err)
	require.Len(t, entries, 3)

	require.NoError(t, entries[0].Err)
	require.Equal(t, "Milk Tea", entries[0].Product.Name)
	require.Equal(t, "/static/img/tea.png", entries[0].Product.ImageRef)
	require.Equal(t, "Iced Coffee", entries[1].Product.Name)
	require.Equal(t, domain.Money(550), entries[1].Product.Price)
}

func TestLoad_IndexAndLookup(t *testing.T) {
	ctx := context.Background()
	c, err := catalog.Load(ctx, strings.NewReader(page), validate.NewProductValidator())
	require.NoError(t, err)

	// дубликат имени отбрасывается, остаётся первое вхождение
	require.Equal(t, 2, c.Len())

	p, ok := c.Lookup(ctx, "Milk Tea")
	require.True(t, ok)
	require.Equal(t, domain.Money(1000), p.Price)

	_, ok = c.Lookup(ctx, "Espresso")
	require.False(t, ok)

	names := []string{}
	for _, p := range c.Products() {
		names = append(names, p.Name)
	}
	require.Equal(t, []string{"Milk Tea", "Iced Coffee"}, names)
}

func TestLoad_BrokenProductFails(t *testing.T) {
	broken := `<div data-name="Cake" data-price="oops"><img src="a.png"></div>`
	_, err := catalog.Load(context.Background(), strings.NewReader(broken), validate.NewProductValidator())
	require.ErrorIs(t, err, catalog.ErrMalformedProduct)
}

func TestNew_ValidatorRejects(t *testing.T) {
	ctrl := gomock.NewController(t)
	v := mocks.NewMockProductValidator(ctrl)

	v.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(validate.ErrInvalidProduct)

	_, err := catalog.New(context.Background(), []domain.Product{{Name: "x"}}, v)
	require.ErrorIs(t, err, validate.ErrInvalidProduct)
}
