package view_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newView(t *testing.T) *view.View {
	t.Helper()
	v, err := view.New("")
	require.NoError(t, err)
	return v
}

func placeOrders(t *testing.T, names ...string) *domain.Ledger {
	t.Helper()
	ledger := domain.NewLedger()
	cart := domain.NewCart(nil)
	for _, n := range names {
		cart.Add(domain.Product{Name: n, Price: 1000, ImageRef: n + ".png"})
		_, err := ledger.Confirm(cart, true, time.Unix(0, 0))
		require.NoError(t, err)
	}
	return ledger
}

func TestBuildCart_Empty(t *testing.T) {
	v := newView(t)

	m := v.BuildCart(nil, true)
	assert.True(t, m.Empty)
	assert.Equal(t, view.MsgCartEmpty, m.Placeholder)
	assert.Empty(t, m.Lines)

	var buf bytes.Buffer
	require.NoError(t, v.RenderCart(&buf, &m))
	assert.Contains(t, buf.String(), "Your cart is empty.")
}

func TestBuildCart_Lines(t *testing.T) {
	v := newView(t)
	items := []domain.LineItem{
		{ID: "a", Name: "Tote", UnitPrice: 1275, ImageRef: "tote.png", Quantity: 2},
		{ID: "b", Name: "Cap", UnitPrice: 50000, ImageRef: "cap.png", Quantity: 1},
	}

	m := v.BuildCart(items, true)
	require.Len(t, m.Lines, 2)
	assert.Equal(t, "₱12.75", m.Lines[0].UnitPrice)
	assert.Equal(t, 2, m.Lines[0].Quantity)
	assert.Equal(t, "b", m.Lines[1].ID)

	var buf bytes.Buffer
	require.NoError(t, v.RenderCart(&buf, &m))
	out := buf.String()
	assert.Contains(t, out, `data-item-id="a"`)
	assert.Contains(t, out, `value="2"`)
	assert.Contains(t, out, "Price: ₱500.00")
	assert.NotContains(t, out, view.MsgCartEmpty)
	// порядок добавления сохраняется
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("Tote")), bytes.Index(buf.Bytes(), []byte("Cap")))
}

func TestBuildCart_EscapesMarkup(t *testing.T) {
	v := newView(t)
	m := v.BuildCart([]domain.LineItem{{ID: "x", Name: "<b>Bag</b>", ImageRef: "b.png", Quantity: 1}}, true)

	var buf bytes.Buffer
	require.NoError(t, v.RenderCart(&buf, &m))
	assert.NotContains(t, buf.String(), "<b>Bag</b>")
	assert.Contains(t, buf.String(), "&lt;b&gt;Bag&lt;/b&gt;")
}

func TestBuildOrders_Empty(t *testing.T) {
	v := newView(t)
	m := v.BuildOrders(nil, "", true)
	assert.True(t, m.Empty)
	assert.Equal(t, view.MsgNoOrders, m.Placeholder)
}

func TestBuildOrders_TotalAndDetails(t *testing.T) {
	v := newView(t)
	ledger := domain.NewLedger()
	cart := domain.NewCart(nil)
	cart.Add(domain.Product{Name: "Tote", Price: 1275, ImageRef: "tote.png"})
	cart.Add(domain.Product{Name: "Tote", Price: 1275, ImageRef: "tote.png"})
	_, err := ledger.Confirm(cart, true, time.Unix(0, 0))
	require.NoError(t, err)

	m := v.BuildOrders(ledger.Recent(), "ORDER-1", true)
	require.Len(t, m.Orders, 1)
	o := m.Orders[0]
	assert.Equal(t, "ORDER-1", o.ID)
	assert.Equal(t, "To be shipped", o.Status)
	assert.Equal(t, "₱25.50", o.Total)
	assert.True(t, o.DetailsOpen)
	require.Len(t, o.Items, 1)
	assert.Equal(t, 2, o.Items[0].Quantity)
	assert.Equal(t, "₱25.50", o.Items[0].Subtotal)

	var buf bytes.Buffer
	require.NoError(t, v.RenderOrders(&buf, &m))
	assert.Contains(t, buf.String(), "(₱25.50)")
	assert.Contains(t, buf.String(), `id="details-ORDER-1">`)
}

func TestBuildOrders_RecentFirstAndCollapsed(t *testing.T) {
	v := newView(t)
	ledger := placeOrders(t, "A", "B", "C")

	m := v.BuildOrders(ledger.Recent(), "", true)
	require.Len(t, m.Orders, 3)
	assert.Equal(t, "ORDER-3", m.Orders[0].ID)
	assert.Equal(t, "ORDER-2", m.Orders[1].ID)
	assert.Equal(t, "ORDER-1", m.Orders[2].ID)
	for _, o := range m.Orders {
		assert.False(t, o.DetailsOpen)
	}

	var buf bytes.Buffer
	require.NoError(t, v.RenderOrders(&buf, &m))
	assert.Contains(t, buf.String(), `id="details-ORDER-2" hidden`)
}

func TestNew_CustomCurrency(t *testing.T) {
	v, err := view.New("$")
	require.NoError(t, err)
	assert.Equal(t, "$3.05", v.Price(305))
}
