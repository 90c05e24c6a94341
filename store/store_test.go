package store

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/projxchange/marketplace-client/client"
	"github.com/projxchange/marketplace-client/models"
)

// fakeBackend is an in-memory cart/wishlist service the containers sync
// against. Tests can make mutations fail, count requests, and gate fetch
// responses to simulate slow, overlapping traffic.
type fakeBackend struct {
	mu          sync.Mutex
	cart        []models.CartItem
	wishlist    []models.WishlistItem
	requests    int
	failMutate  bool
	failMessage string
	// releaseCartGet, when set, blocks GET /cart until the channel is closed.
	// The snapshot served is the one taken when the request arrived, and
	// gateEntered receives once the snapshot has been captured.
	releaseCartGet chan struct{}
	gateEntered    chan struct{}

	server *httptest.Server
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	fb := &fakeBackend{}

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if req.Header.Get("Authorization") == "" {
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"message": "unauthorized"})
				return
			}
			fb.mu.Lock()
			fb.requests++
			fb.mu.Unlock()
			next.ServeHTTP(w, req)
		})
	})

	r.Get("/cart", func(w http.ResponseWriter, _ *http.Request) {
		fb.mu.Lock()
		snapshot := make([]models.CartItem, len(fb.cart))
		copy(snapshot, fb.cart)
		gate := fb.releaseCartGet
		entered := fb.gateEntered
		fb.mu.Unlock()
		if gate != nil {
			entered <- struct{}{}
			<-gate
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"cart": snapshot})
	})
	r.Post("/cart", func(w http.ResponseWriter, req *http.Request) {
		if fb.rejectMutation(w) {
			return
		}
		var body struct {
			ProjectID string `json:"project_id"`
		}
		_ = json.NewDecoder(req.Body).Decode(&body)
		fb.mu.Lock()
		fb.cart = append(fb.cart, newCartItem(body.ProjectID))
		fb.mu.Unlock()
		w.WriteHeader(http.StatusCreated)
	})
	r.Delete("/cart/clear", func(w http.ResponseWriter, _ *http.Request) {
		if fb.rejectMutation(w) {
			return
		}
		fb.mu.Lock()
		fb.cart = nil
		fb.mu.Unlock()
		w.WriteHeader(http.StatusOK)
	})
	r.Delete("/cart/{projectID}", func(w http.ResponseWriter, req *http.Request) {
		if fb.rejectMutation(w) {
			return
		}
		projectID := chi.URLParam(req, "projectID")
		fb.mu.Lock()
		kept := fb.cart[:0]
		for _, item := range fb.cart {
			if item.ProjectID != projectID {
				kept = append(kept, item)
			}
		}
		fb.cart = kept
		fb.mu.Unlock()
		w.WriteHeader(http.StatusOK)
	})

	r.Get("/wishlist", func(w http.ResponseWriter, _ *http.Request) {
		fb.mu.Lock()
		snapshot := make([]models.WishlistItem, len(fb.wishlist))
		copy(snapshot, fb.wishlist)
		fb.mu.Unlock()
		_ = json.NewEncoder(w).Encode(map[string]any{"wishlist": snapshot})
	})
	r.Post("/wishlist", func(w http.ResponseWriter, req *http.Request) {
		if fb.rejectMutation(w) {
			return
		}
		var body struct {
			ProjectID string `json:"project_id"`
		}
		_ = json.NewDecoder(req.Body).Decode(&body)
		fb.mu.Lock()
		fb.wishlist = append(fb.wishlist, newWishlistItem(body.ProjectID))
		fb.mu.Unlock()
		w.WriteHeader(http.StatusCreated)
	})
	r.Delete("/wishlist/{projectID}", func(w http.ResponseWriter, req *http.Request) {
		if fb.rejectMutation(w) {
			return
		}
		projectID := chi.URLParam(req, "projectID")
		fb.mu.Lock()
		kept := fb.wishlist[:0]
		for _, item := range fb.wishlist {
			if item.ProjectID != projectID {
				kept = append(kept, item)
			}
		}
		fb.wishlist = kept
		fb.mu.Unlock()
		w.WriteHeader(http.StatusOK)
	})

	fb.server = httptest.NewServer(r)
	t.Cleanup(fb.server.Close)
	return fb
}

func (fb *fakeBackend) rejectMutation(w http.ResponseWriter) bool {
	fb.mu.Lock()
	fail, msg := fb.failMutate, fb.failMessage
	fb.mu.Unlock()
	if !fail {
		return false
	}
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": msg})
	return true
}

func (fb *fakeBackend) failMutations(message string) {
	fb.mu.Lock()
	fb.failMutate = true
	fb.failMessage = message
	fb.mu.Unlock()
}

// gateCartFetch arms the GET /cart gate. The returned release function lets
// the single gated request complete; gateEntered fires once the handler holds
// its snapshot.
func (fb *fakeBackend) gateCartFetch() (entered <-chan struct{}, release func()) {
	gate := make(chan struct{})
	enteredCh := make(chan struct{}, 1)
	fb.mu.Lock()
	fb.releaseCartGet = gate
	fb.gateEntered = enteredCh
	fb.mu.Unlock()
	return enteredCh, func() { close(gate) }
}

func (fb *fakeBackend) ungateCartFetch() {
	fb.mu.Lock()
	fb.releaseCartGet = nil
	fb.gateEntered = nil
	fb.mu.Unlock()
}

func (fb *fakeBackend) requestCount() int {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.requests
}

func (fb *fakeBackend) seedCart(projectIDs ...string) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	for _, id := range projectIDs {
		fb.cart = append(fb.cart, newCartItem(id))
	}
}

func (fb *fakeBackend) seedWishlist(projectIDs ...string) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	for _, id := range projectIDs {
		fb.wishlist = append(fb.wishlist, newWishlistItem(id))
	}
}

func newCartItem(projectID string) models.CartItem {
	return models.CartItem{
		ID:        uuid.NewString(),
		ProjectID: projectID,
		UserID:    "user-1",
		CreatedAt: time.Now().UTC(),
		Project: models.ProjectSummary{
			ID:       projectID,
			Title:    "Project " + projectID,
			Category: "React",
			Pricing:  models.Pricing{SalePrice: 29, OriginalPrice: 49, Currency: "USD"},
		},
	}
}

func newWishlistItem(projectID string) models.WishlistItem {
	return models.WishlistItem{
		ID:        uuid.NewString(),
		ProjectID: projectID,
		UserID:    "user-1",
		CreatedAt: time.Now().UTC(),
		Project: models.ProjectSummary{
			ID:      projectID,
			Title:   "Project " + projectID,
			Pricing: models.Pricing{SalePrice: 35, Currency: "USD"},
		},
	}
}

// recorderNotifier collects every toast the containers emit.
type recorderNotifier struct {
	mu        sync.Mutex
	successes []string
	failures  []string
}

func (n *recorderNotifier) Success(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, msg)
}

func (n *recorderNotifier) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.failures = append(n.failures, msg)
}

func (n *recorderNotifier) allSuccesses() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, len(n.successes))
	copy(out, n.successes)
	return out
}

func (n *recorderNotifier) allFailures() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, len(n.failures))
	copy(out, n.failures)
	return out
}

func newTestClient(fb *fakeBackend, authenticated bool) *client.Client {
	c := client.New(fb.server.URL)
	if authenticated {
		c.SetToken("session-token")
	}
	return c
}
