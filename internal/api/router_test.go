package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/velas-starlight/storefront/internal/cart"
	"github.com/velas-starlight/storefront/internal/catalog"
	"github.com/velas-starlight/storefront/internal/checkout"
	"github.com/velas-starlight/storefront/internal/config"
	"github.com/velas-starlight/storefront/internal/discount"
	"github.com/velas-starlight/storefront/internal/notify"
	"github.com/velas-starlight/storefront/internal/pricing"
	"github.com/velas-starlight/storefront/internal/storage"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zap.NewNop()
	cfg := &config.Config{
		Port:        "8080",
		Environment: "test",
		Pricing: config.PricingConfig{
			StandardRate:          50,
			ExpressRate:           120,
			FreeShippingThreshold: 1200,
			FallbackUnitPrice:     75,
		},
		Discounts: map[string]float64{"NUEVOSITIO15": 15},
	}

	store := cart.NewStore(
		storage.NewFileStore(afero.NewMemMapFs(), "cart.json", logger),
		cfg.Pricing.FallbackUnitPrice,
		logger,
	)
	engine := pricing.NewEngine(cfg.Pricing)
	ledger := discount.NewLedger(cfg.Discounts, logger)
	form := checkout.NewContactForm()
	session := checkout.NewSession(store, engine, ledger, form, notify.NewLogNotifier(logger), nil, logger)

	return NewRouter(cfg, &Deps{
		Catalog: catalog.New(),
		Cart:    store,
		Session: session,
		Form:    form,
	}, logger)
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	decoded := make(map[string]any)
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("%s %s: invalid JSON response: %v", method, path, err)
		}
	}
	return w, decoded
}

func TestListProducts(t *testing.T) {
	router := newTestRouter(t)

	w, body := doJSON(t, router, http.MethodGet, "/v1/products?category=belleza", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body["count"].(float64) != 2 {
		t.Errorf("expected 2 belleza products, got %v", body["count"])
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	router := newTestRouter(t)

	w, _ := doJSON(t, router, http.MethodGet, "/v1/products/99", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestAddItem_UnknownProduct(t *testing.T) {
	router := newTestRouter(t)

	w, _ := doJSON(t, router, http.MethodPost, "/v1/cart/items", `{"product_id": 99}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestCheckoutFlow(t *testing.T) {
	router := newTestRouter(t)

	// Proceeding with an empty cart is rejected.
	w, _ := doJSON(t, router, http.MethodPost, "/v1/checkout/shipping", "")
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 for empty cart, got %d", w.Code)
	}

	// Add the same configuration twice; the lines merge.
	add := `{"product_id": 1, "type": "Soya", "size": "50 gr", "price": 75, "fragrance": "Vainilla", "quantity": 2}`
	if w, _ := doJSON(t, router, http.MethodPost, "/v1/cart/items", add); w.Code != http.StatusOK {
		t.Fatalf("add failed with %d", w.Code)
	}
	add = `{"product_id": 1, "type": "Soya", "size": "50 gr", "price": 75, "fragrance": "Vainilla", "quantity": 1}`
	doJSON(t, router, http.MethodPost, "/v1/cart/items", add)

	_, body := doJSON(t, router, http.MethodGet, "/v1/cart", "")
	if got := body["total_units"].(float64); got != 3 {
		t.Fatalf("expected 3 units after merge, got %v", got)
	}
	if items := body["items"].([]any); len(items) != 1 {
		t.Fatalf("expected 1 merged line, got %d", len(items))
	}

	// Apply the discount and check the recomputed summary.
	_, body = doJSON(t, router, http.MethodPost, "/v1/checkout/discount", `{"code": "nuevositio15"}`)
	summary := body["summary"].(map[string]any)
	if summary["discount"].(float64) != 33.75 {
		t.Errorf("expected discount 33.75, got %v", summary["discount"])
	}
	if summary["total"].(float64) != 241.25 {
		t.Errorf("expected total 241.25, got %v", summary["total"])
	}

	// Cart -> shipping.
	w, _ = doJSON(t, router, http.MethodPost, "/v1/checkout/shipping", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	// Payment is gated on the shipping details.
	w, _ = doJSON(t, router, http.MethodPost, "/v1/checkout/payment", "")
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 without shipping details, got %d", w.Code)
	}

	details := `{"full_name": "María López", "email": "maria@example.com", "street": "Av. Reforma 1", "city": "CDMX", "postal_code": "06600"}`
	doJSON(t, router, http.MethodPut, "/v1/checkout/shipping-details", details)

	w, body = doJSON(t, router, http.MethodPost, "/v1/checkout/payment", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body["step"].(string) != "payment" {
		t.Errorf("expected payment step, got %v", body["step"])
	}
	final := body["summary"].(map[string]any)
	if lines := final["items"].([]any); len(lines) != 1 {
		t.Errorf("expected 1 breakdown line, got %d", len(lines))
	}
}

func TestClearCart_RequiresConfirmation(t *testing.T) {
	router := newTestRouter(t)
	doJSON(t, router, http.MethodPost, "/v1/cart/items", `{"product_id": 1}`)

	w, _ := doJSON(t, router, http.MethodDelete, "/v1/cart", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without confirm, got %d", w.Code)
	}

	w, _ = doJSON(t, router, http.MethodDelete, "/v1/cart?confirm=true", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with confirm, got %d", w.Code)
	}

	_, body := doJSON(t, router, http.MethodGet, "/v1/cart", "")
	if got := body["total_units"].(float64); got != 0 {
		t.Errorf("expected empty cart, got %v units", got)
	}
}
