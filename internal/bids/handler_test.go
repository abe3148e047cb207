package bids

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nos-auction/backend/internal/middleware"
	"github.com/nos-auction/backend/internal/models"
	"github.com/nos-auction/backend/internal/session"
)

type fakeStore struct {
	mu   sync.Mutex
	rows []models.Bid
	err  error
}

func (f *fakeStore) AppendBid(_ context.Context, b models.Bid) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.rows = append(f.rows, b)
	return nil
}

func newTestRouter(store *fakeStore, sessions *session.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(store, nil)
	r := gin.New()
	authed := r.Group("")
	authed.Use(middleware.Session(sessions))
	authed.POST("/bids", h.Submit)
	return r
}

func issue(t *testing.T, sessions *session.Service, user models.SessionUser) *http.Cookie {
	t.Helper()
	token, err := sessions.Issue(user)
	require.NoError(t, err)
	return &http.Cookie{Name: session.CookieName, Value: token}
}

func submit(r *gin.Engine, body interface{}, cookie *http.Cookie) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/bids", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func bidder() models.SessionUser {
	return models.SessionUser{
		ParticipantID: "x7k2m9qw4tz8ab",
		FullName:      "Alex Carter",
		Email:         "alex@example.com",
	}
}

func TestSubmit_NoSession(t *testing.T) {
	store := &fakeStore{}
	sessions := session.NewService("test-secret", time.Hour, false)
	r := newTestRouter(store, sessions)

	w := submit(r, map[string]interface{}{"bundleSlug": "mixed", "bidAmount": 1500.0}, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, store.rows, "no append without a session")
}

func TestSubmit_Valid(t *testing.T) {
	store := &fakeStore{}
	sessions := session.NewService("test-secret", time.Hour, false)
	r := newTestRouter(store, sessions)

	w := submit(r, map[string]interface{}{
		"bundleSlug": "vrf-indoor",
		"bidAmount":  12500.50,
		"notes":      "Pallet pickup preferred",
	}, issue(t, sessions, bidder()))

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, store.rows, 1)
	row := store.rows[0]
	assert.Equal(t, "x7k2m9qw4tz8ab", row.ParticipantID)
	assert.Equal(t, "alex@example.com", row.Email)
	assert.Equal(t, "vrf-indoor", row.BundleSlug)
	require.NotNil(t, row.BidAmount)
	assert.Equal(t, 12500.50, *row.BidAmount)
	assert.Equal(t, "Pallet pickup preferred", row.Notes)
}

func TestSubmit_AmountOmitted(t *testing.T) {
	store := &fakeStore{}
	sessions := session.NewService("test-secret", time.Hour, false)
	r := newTestRouter(store, sessions)

	w := submit(r, map[string]interface{}{"bundleSlug": "spare"}, issue(t, sessions, bidder()))

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, store.rows, 1)
	assert.Nil(t, store.rows[0].BidAmount, "omitted amount is stored as absent")
}

func TestSubmit_NonPositiveAmount(t *testing.T) {
	store := &fakeStore{}
	sessions := session.NewService("test-secret", time.Hour, false)
	r := newTestRouter(store, sessions)
	cookie := issue(t, sessions, bidder())

	for _, amount := range []float64{0, -250} {
		w := submit(r, map[string]interface{}{"bundleSlug": "mixed", "bidAmount": amount}, cookie)
		assert.Equal(t, http.StatusBadRequest, w.Code, "amount %v must be rejected", amount)
	}
	assert.Empty(t, store.rows)
}

func TestSubmit_UnknownBundle(t *testing.T) {
	store := &fakeStore{}
	sessions := session.NewService("test-secret", time.Hour, false)
	r := newTestRouter(store, sessions)

	w := submit(r, map[string]interface{}{"bundleSlug": "indoor"}, issue(t, sessions, bidder()))

	assert.Equal(t, http.StatusBadRequest, w.Code, "catalogue slugs are not bundle slugs")
	assert.Empty(t, store.rows)
}

func TestSubmit_NotesTooLong(t *testing.T) {
	store := &fakeStore{}
	sessions := session.NewService("test-secret", time.Hour, false)
	r := newTestRouter(store, sessions)

	notes := make([]byte, 2001)
	for i := range notes {
		notes[i] = 'a'
	}
	w := submit(r, map[string]interface{}{"bundleSlug": "mixed", "notes": string(notes)}, issue(t, sessions, bidder()))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, store.rows)
}

func TestSubmit_ConcurrentBidders(t *testing.T) {
	store := &fakeStore{}
	sessions := session.NewService("test-secret", time.Hour, false)
	r := newTestRouter(store, sessions)

	const n = 100
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		user := models.SessionUser{
			ParticipantID: fmt.Sprintf("participant-%03d", i),
			FullName:      fmt.Sprintf("Bidder %d", i),
			Email:         fmt.Sprintf("bidder%d@example.com", i),
		}
		cookie := issue(t, sessions, user)
		go func(ck *http.Cookie, amount float64) {
			defer wg.Done()
			w := submit(r, map[string]interface{}{"bundleSlug": "mixed", "bidAmount": amount}, ck)
			assert.Equal(t, http.StatusOK, w.Code)
		}(cookie, float64(100+i))
	}
	wg.Wait()

	require.Len(t, store.rows, n)
	seen := make(map[string]bool, n)
	for _, row := range store.rows {
		require.False(t, seen[row.ParticipantID], "duplicate participant %s", row.ParticipantID)
		seen[row.ParticipantID] = true
		// Each row's fields must come from the same originating session.
		var idx int
		_, err := fmt.Sscanf(row.ParticipantID, "participant-%03d", &idx)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("bidder%d@example.com", idx), row.Email)
		require.NotNil(t, row.BidAmount)
		assert.Equal(t, float64(100+idx), *row.BidAmount)
	}
}
