package client

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	"storefront/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustProduct(t *testing.T, c *Client, id string) models.Product {
	t.Helper()
	p, err := c.Product(context.Background(), id)
	require.NoError(t, err)
	return *p
}

func TestCartMirrorShowsPendingChangeBeforeServerAnswers(t *testing.T) {
	ctx := context.Background()
	api := newAPI(t)

	var (
		current           atomic.Pointer[CartMirror]
		mu                sync.Mutex
		seenDuringRequest []models.CartItemWithProduct
		pendingHistory    []Mutation
	)
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cart := current.Load(); cart != nil && r.Method == http.MethodPost && r.URL.Path == "/api/cart" {
			mu.Lock()
			seenDuringRequest = cart.Items()
			pendingHistory = cart.Mutations()
			mu.Unlock()
		}
		api.ServeHTTP(w, r)
	}))
	cart := NewCartMirror(c)
	current.Store(cart)
	require.NoError(t, cart.Refresh(ctx))

	mut, err := cart.Add(ctx, mustProduct(t, c, "1"), 2)
	require.NoError(t, err)
	assert.Equal(t, MutationConfirmed, mut.State)
	assert.NoError(t, mut.Err)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, seenDuringRequest, 1)
	assert.Equal(t, "1", seenDuringRequest[0].ProductID)
	assert.Equal(t, 2, seenDuringRequest[0].Quantity)
	assert.Empty(t, seenDuringRequest[0].ID)

	require.Len(t, pendingHistory, 1)
	assert.Equal(t, MutationPending, pendingHistory[0].State)
	assert.Equal(t, MutationAddToCart, pendingHistory[0].Kind)

	history := cart.Mutations()
	require.Len(t, history, 1)
	assert.Equal(t, MutationConfirmed, history[0].State)

	items := cart.Items()
	require.Len(t, items, 1)
	assert.NotEmpty(t, items[0].ID)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestCartMirrorOperations(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t, newAPI(t))
	cart := NewCartMirror(c)
	require.NoError(t, cart.Refresh(ctx))

	headphones := mustProduct(t, c, "1")
	shirt := mustProduct(t, c, "9")

	_, err := cart.Add(ctx, headphones, 1)
	require.NoError(t, err)
	_, err = cart.Add(ctx, headphones, 1)
	require.NoError(t, err)
	_, err = cart.Add(ctx, shirt, 3)
	require.NoError(t, err)

	summary := cart.Summary()
	assert.Equal(t, 5, summary.ItemCount)
	assert.Equal(t, "254.95", summary.Subtotal.StringFixed(2))

	server, err := c.CartSummary(ctx)
	require.NoError(t, err)
	assert.True(t, server.Total.Equal(summary.Total))

	_, err = cart.UpdateQuantity(ctx, "9", 1)
	require.NoError(t, err)
	assert.Equal(t, 3, cart.Summary().ItemCount)

	_, err = cart.Remove(ctx, "1")
	require.NoError(t, err)
	require.Len(t, cart.Items(), 1)
	assert.Equal(t, "9", cart.Items()[0].ProductID)

	_, err = cart.Clear(ctx)
	require.NoError(t, err)
	assert.Empty(t, cart.Items())

	kinds := []MutationKind{}
	for _, m := range cart.Mutations() {
		assert.Equal(t, MutationConfirmed, m.State)
		kinds = append(kinds, m.Kind)
	}
	assert.Equal(t, []MutationKind{
		MutationAddToCart, MutationAddToCart, MutationAddToCart,
		MutationUpdateQuantity, MutationRemoveFromCart, MutationClearCart,
	}, kinds)
}

func TestCartMirrorRollsBackToServerState(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t, newAPI(t))
	cart := NewCartMirror(c)
	require.NoError(t, cart.Refresh(ctx))

	_, err := cart.Add(ctx, mustProduct(t, c, "1"), 1)
	require.NoError(t, err)

	mut, err := cart.UpdateQuantity(ctx, "2", 4)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, MutationRolledBack, mut.State)
	assert.Equal(t, err, mut.Err)

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "1", items[0].ProductID)
	assert.Equal(t, 1, items[0].Quantity)

	ghost := models.Product{ID: "999", Title: "Ghost"}
	mut, err = cart.Add(ctx, ghost, 1)
	require.Error(t, err)
	assert.Equal(t, MutationRolledBack, mut.State)
	assert.Len(t, cart.Items(), 1)
}

func TestCartMirrorRestoresSnapshotWhenServerIsDown(t *testing.T) {
	ctx := context.Background()
	api := newAPI(t)
	var down atomic.Bool
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if down.Load() {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		api.ServeHTTP(w, r)
	}))
	cart := NewCartMirror(c)
	require.NoError(t, cart.Refresh(ctx))

	headphones := mustProduct(t, c, "1")
	_, err := cart.Add(ctx, headphones, 2)
	require.NoError(t, err)
	before := cart.Items()

	down.Store(true)
	mut, err := cart.Add(ctx, headphones, 5)
	require.Error(t, err)
	assert.Equal(t, MutationRolledBack, mut.State)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	assert.Equal(t, before, cart.Items())
}

func TestCartMirrorConfirmedWithStaleRefresh(t *testing.T) {
	ctx := context.Background()
	api := newAPI(t)
	var failReads atomic.Bool
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if failReads.Load() && r.Method == http.MethodGet {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		api.ServeHTTP(w, r)
	}))
	cart := NewCartMirror(c)
	require.NoError(t, cart.Refresh(ctx))
	headphones := mustProduct(t, c, "1")

	failReads.Store(true)
	mut, err := cart.Add(ctx, headphones, 1)
	require.NoError(t, err)
	assert.Equal(t, MutationConfirmed, mut.State)
	assert.Error(t, mut.Err)

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestFavoritesMirror(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t, newAPI(t))
	favs := NewFavoritesMirror(c)
	require.NoError(t, favs.Refresh(ctx))

	bag := mustProduct(t, c, "5")
	assert.False(t, favs.Contains("5"))

	mut, err := favs.Add(ctx, bag)
	require.NoError(t, err)
	assert.Equal(t, MutationConfirmed, mut.State)
	assert.True(t, favs.Contains("5"))

	_, err = favs.Add(ctx, bag)
	require.NoError(t, err)
	assert.Len(t, favs.Items(), 1)

	mut, err = favs.Toggle(ctx, bag)
	require.NoError(t, err)
	assert.Equal(t, MutationRemoveFavorite, mut.Kind)
	assert.False(t, favs.Contains("5"))

	mut, err = favs.Toggle(ctx, bag)
	require.NoError(t, err)
	assert.Equal(t, MutationAddFavorite, mut.Kind)
	assert.True(t, favs.Contains("5"))

	mut, err = favs.Remove(ctx, "6")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, MutationRolledBack, mut.State)
	assert.Len(t, favs.Items(), 1)

	assert.Len(t, favs.Mutations(), 5)
}

func TestMutationStateString(t *testing.T) {
	assert.Equal(t, "pending", MutationPending.String())
	assert.Equal(t, "confirmed", MutationConfirmed.String())
	assert.Equal(t, "rolled-back", MutationRolledBack.String())
	assert.Equal(t, "unknown", MutationState(9).String())
}
