package session_test

import (
	"sync"
	"testing"
	"time"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/session"
	"github.com/stretchr/testify/require"
)

func TestDisclosure_AtMostOneOpen(t *testing.T) {
	var d session.Disclosure
	require.Equal(t, "", d.OpenID())

	d.Toggle("ORDER-1")
	require.True(t, d.IsOpen("ORDER-1"))

	// открытие второй карточки закрывает первую
	d.Toggle("ORDER-2")
	require.False(t, d.IsOpen("ORDER-1"))
	require.True(t, d.IsOpen("ORDER-2"))

	// повторный клик сворачивает
	d.Toggle("ORDER-2")
	require.Equal(t, "", d.OpenID())
	require.False(t, d.IsOpen(""))

	d.Toggle("ORDER-1")
	d.Reset()
	require.Equal(t, "", d.OpenID())
}

func TestSession_DoSerializes(t *testing.T) {
	s := session.New("sid", nil, time.Now())
	p := domain.Product{Name: "Milk Tea", Price: 1000, ImageRef: "tea.png"}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Do(func(s *session.Session) error {
				s.Cart.Add(p)
				return nil
			})
		}()
	}
	wg.Wait()

	require.Equal(t, 1, s.Cart.Len())
	require.Equal(t, 50, s.Cart.Items()[0].Quantity)
}
