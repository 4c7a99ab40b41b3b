package web

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/techmart/storefront/internal/cart/app"
	"github.com/techmart/storefront/internal/cart/infra/storage"
	"github.com/techmart/storefront/internal/notify"
	"github.com/techmart/storefront/internal/render"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	router *gin.Engine
	repo   *storage.CartRepo
	region *notify.Region
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := storage.NewCartRepo(storage.NewMemoryKV(), log)
	region := notify.NewRegion(time.Minute)
	svc := app.NewService(repo, RequestConfirmer{}, region)

	renderer, err := render.New()
	if err != nil {
		t.Fatalf("renderer init failed: %v", err)
	}

	h := NewHandlers(svc, renderer, region, log)
	return &testServer{
		router: NewRouter(h, log, []string{"*"}),
		repo:   repo,
		region: region,
	}
}

func (s *testServer) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decodeCount(t *testing.T, body string) int {
	t.Helper()
	var resp struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("bad JSON %q: %v", body, err)
	}
	return resp.Count
}

func TestShowCart(t *testing.T) {
	s := newTestServer(t)

	w := s.get("/cart")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "cart-table") || !strings.Contains(body, "OnePlus Nord CE 2 5G") {
		t.Fatal("cart page missing seed content")
	}
}

func TestApplyActionIncrement(t *testing.T) {
	s := newTestServer(t)

	w := s.postForm("/cart/action", url.Values{"action": {"increment"}, "idx": {"1"}})
	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/cart" {
		t.Fatalf("expected redirect to /cart, got %q", loc)
	}

	if got := decodeCount(t, s.get("/cart/count").Body.String()); got != 5 {
		t.Fatalf("expected count 5, got %d", got)
	}
}

func TestApplyActionSetQuantityClamps(t *testing.T) {
	s := newTestServer(t)

	w := s.postForm("/cart/action", url.Values{"action": {"set"}, "idx": {"2"}, "value": {"abc"}})
	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", w.Code)
	}

	cart := s.repo.Load(context.Background())
	if cart[2].Quantity != 1 {
		t.Fatalf("expected clamped quantity 1, got %d", cart[2].Quantity)
	}
}

func TestApplyActionRemove(t *testing.T) {
	t.Run("without confirmation nothing changes", func(t *testing.T) {
		s := newTestServer(t)

		w := s.postForm("/cart/action", url.Values{"action": {"remove"}, "idx": {"1"}})
		if w.Code != http.StatusSeeOther {
			t.Fatalf("expected 303, got %d", w.Code)
		}
		if cart := s.repo.Load(context.Background()); len(cart) != 3 {
			t.Fatalf("unconfirmed remove must be a no-op, got %d items", len(cart))
		}
	})

	t.Run("confirmed removal deletes and notifies", func(t *testing.T) {
		s := newTestServer(t)

		w := s.postForm("/cart/action", url.Values{
			"action":    {"remove"},
			"idx":       {"1"},
			"confirmed": {"1"},
		})
		if w.Code != http.StatusSeeOther {
			t.Fatalf("expected 303, got %d", w.Code)
		}

		cart := s.repo.Load(context.Background())
		if len(cart) != 2 {
			t.Fatalf("expected 2 items, got %d", len(cart))
		}
		if cart[0].Name != "OnePlus Nord CE 2 5G" || cart[1].Name != "Redmi Note 11 Pro + 5G" {
			t.Fatalf("relative order lost: %+v", cart)
		}
		if msg := s.region.Current(); msg.Text != "Item removed from cart" {
			t.Fatalf("expected removal notification, got %+v", msg)
		}

		if !strings.Contains(s.get("/cart").Body.String(), "Item removed from cart") {
			t.Fatal("notification missing from the rendered page")
		}
	})
}

func TestApplyActionBadInput(t *testing.T) {
	s := newTestServer(t)

	if w := s.postForm("/cart/action", url.Values{"action": {"increment"}, "idx": {"x"}}); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad index, got %d", w.Code)
	}
	if w := s.postForm("/cart/action", url.Values{"action": {"explode"}, "idx": {"0"}}); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown action, got %d", w.Code)
	}

	// A stale index redirects; the fresh render re-derives every index.
	if w := s.postForm("/cart/action", url.Values{"action": {"increment"}, "idx": {"99"}}); w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 for stale index, got %d", w.Code)
	}
}

func TestAddItemFromProductCard(t *testing.T) {
	s := newTestServer(t)

	card := `<div class="product-card" data-category="Fashion">
		<div class="product-image"><img src="https://example.com/shirt.jpg"></div>
		<div class="product-info"><h4>Red Printed T-Shirt</h4><span class="current-price">₹50</span></div>
	</div>`

	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(card))
	req.Header.Set("Content-Type", "text/html")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	// Matches the seed T-Shirt, so the cart merges: 1 + 3 + 1.
	if got := decodeCount(t, w.Body.String()); got != 5 {
		t.Fatalf("expected count 5, got %d", got)
	}
	if cart := s.repo.Load(context.Background()); len(cart) != 3 {
		t.Fatalf("merge must not grow the cart, got %d items", len(cart))
	}
	if msg := s.region.Current(); msg.Text != "Product added to cart!" {
		t.Fatalf("expected add notification, got %+v", msg)
	}
}

func TestAddItemRejectsNamelessCard(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader("<div></div>"))
	req.Header.Set("Content-Type", "text/html")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestEmptyCartPage(t *testing.T) {
	s := newTestServer(t)

	// Remove everything.
	for i := 0; i < 3; i++ {
		s.postForm("/cart/action", url.Values{"action": {"remove"}, "idx": {"0"}, "confirmed": {"1"}})
	}

	body := s.get("/cart").Body.String()
	if !strings.Contains(body, `<p class="empty-cart-message">Your cart is empty.</p>`) {
		t.Fatal("empty message must be visible")
	}
	if !strings.Contains(body, `<span class="cart-count">0</span>`) {
		t.Fatal("badge must show zero")
	}

	if got := decodeCount(t, s.get("/cart/count").Body.String()); got != 0 {
		t.Fatalf("expected count 0, got %d", got)
	}
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t)
	if w := s.get("/healthz"); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
