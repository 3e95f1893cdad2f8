package order

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

type recordingNotifier struct {
	placed chan Order
}

func (n *recordingNotifier) OrderPlaced(o Order) error {
	n.placed <- o
	return nil
}

func setupOrderRouter(t *testing.T, notifier Notifier) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo, err := NewInMemoryRepository("")
	if err != nil {
		t.Fatalf("repo init: %v", err)
	}
	h := NewHandler(NewService(repo, notifier))

	r := gin.New()
	r.POST("/api/order", h.Create)
	r.GET("/api/admin/orders", h.List)
	r.GET("/api/admin/customers", h.Customers)
	return r
}

func postOrder(r *gin.Engine, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/api/order", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateOrderSuccess(t *testing.T) {
	r := setupOrderRouter(t, nil)

	w := postOrder(r, gin.H{
		"customer": gin.H{"name": "An", "phone": "0901234567"},
		"items":    []gin.H{{"id": 1, "qty": 2}},
		"total":    50000,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var res struct {
		OK      bool   `json:"ok"`
		OrderID string `json:"orderId"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !res.OK || res.OrderID == "" {
		t.Errorf("unexpected response: %s", w.Body.String())
	}
}

func TestCreateOrderEmptyCart(t *testing.T) {
	r := setupOrderRouter(t, nil)

	w := postOrder(r, gin.H{
		"customer": gin.H{"name": "An", "phone": "0901234567"},
		"items":    []gin.H{},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreateOrderIncompleteCustomer(t *testing.T) {
	r := setupOrderRouter(t, nil)

	w := postOrder(r, gin.H{
		"customer": gin.H{"name": "An"},
		"items":    []gin.H{{"id": 1}},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreateOrderNotifies(t *testing.T) {
	notifier := &recordingNotifier{placed: make(chan Order, 1)}
	r := setupOrderRouter(t, notifier)

	w := postOrder(r, gin.H{
		"orderCode": "DH424242",
		"customer":  gin.H{"name": "An", "phone": "0901234567"},
		"items":     []gin.H{{"id": 1}},
		"total":     25000,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	select {
	case placed := <-notifier.placed:
		if placed.Code != "DH424242" {
			t.Errorf("notified code = %q, want DH424242", placed.Code)
		}
	case <-time.After(time.Second):
		t.Fatal("notifier was not called")
	}
}

func TestAdminListsStartEmpty(t *testing.T) {
	r := setupOrderRouter(t, nil)

	for path, key := range map[string]string{
		"/api/admin/orders":    "orders",
		"/api/admin/customers": "customers",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected status 200, got %d", path, w.Code)
		}
		var body map[string]json.RawMessage
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s: invalid body: %v", path, err)
		}
		if string(body[key]) != "[]" {
			t.Errorf("%s: %s = %s, want []", path, key, body[key])
		}
	}
}
