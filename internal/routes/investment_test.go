package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"Carteira/internal/domain/investment"
	appErrors "Carteira/internal/errors"
	"Carteira/internal/routes"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// memoryRepository guarda os ativos em memória, atribuindo ids sequenciais
// como o banco faria.
type memoryRepository struct {
	mu     sync.Mutex
	nextID uint
	items  map[uint]investment.Investment
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{items: make(map[uint]investment.Investment)}
}

var _ investment.Repository = (*memoryRepository)(nil)

func (m *memoryRepository) Create(ctx context.Context, inv *investment.Investment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	inv.Id = m.nextID
	m.items[inv.Id] = *inv
	return nil
}

func (m *memoryRepository) Update(ctx context.Context, inv *investment.Investment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[inv.Id] = *inv
	return nil
}

func (m *memoryRepository) Delete(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return appErrors.ErrInvestmentNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *memoryRepository) GetById(ctx context.Context, id uint) (*investment.Investment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	inv, ok := m.items[id]
	if !ok {
		return nil, appErrors.ErrInvestmentNotFound
	}
	return &inv, nil
}

func (m *memoryRepository) GetAll(ctx context.Context) ([]*investment.Investment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*investment.Investment, 0, len(m.items))
	for id := range m.items {
		inv := m.items[id]
		out = append(out, &inv)
	}
	return out, nil
}

func (m *memoryRepository) GetByType(ctx context.Context, investmentType investment.Type) ([]*investment.Investment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*investment.Investment, 0)
	for id := range m.items {
		if m.items[id].Type == investmentType {
			inv := m.items[id]
			out = append(out, &inv)
		}
	}
	return out, nil
}

func (m *memoryRepository) ExistsById(ctx context.Context, id uint) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.items[id]
	return ok, nil
}

type investmentResponse struct {
	Id            uint            `json:"id"`
	Type          string          `json:"type"`
	Symbol        string          `json:"symbol"`
	Quantity      int             `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	PurchaseDate  string          `json:"purchaseDate"`
	TotalValue    decimal.Decimal `json:"totalValue"`
}

type summaryResponse struct {
	TotalInvested decimal.Decimal            `json:"totalInvested"`
	TotalByType   map[string]decimal.Decimal `json:"totalByType"`
	AssetCount    int64                      `json:"assetCount"`
}

func setupRouter(repo investment.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := &routes.Handler{InvestmentService: *investment.NewService(repo)}

	r := gin.New()
	investments := r.Group("/investments")
	{
		investments.POST("", handler.CreateInvestment)
		investments.GET("", handler.ListInvestments)
		investments.GET("/summary", handler.GetPortfolioSummary)
		investments.GET("/:id", handler.GetInvestment)
		investments.PUT("/:id", handler.UpdateInvestment)
		investments.DELETE("/:id", handler.DeleteInvestment)
	}
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createInvestment(t *testing.T, r *gin.Engine, typeName, symbol string, quantity int, price, date string) investmentResponse {
	t.Helper()

	w := doRequest(t, r, http.MethodPost, "/investments", map[string]interface{}{
		"type":          typeName,
		"symbol":        symbol,
		"quantity":      quantity,
		"purchasePrice": price,
		"purchaseDate":  date,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body)
	}

	var resp investmentResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp
}

func TestCreateInvestmentEndpoint(t *testing.T) {
	r := setupRouter(newMemoryRepository())

	w := doRequest(t, r, http.MethodPost, "/investments", map[string]interface{}{
		"type":          "STOCK",
		"symbol":        "AAA",
		"quantity":      10,
		"purchasePrice": "5.00",
		"purchaseDate":  "2023-01-01",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body)
	}
	if loc := w.Header().Get("Location"); loc != "/investments/1" {
		t.Fatalf("expected Location /investments/1, got %q", loc)
	}

	var resp investmentResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Id != 1 || resp.Type != "STOCK" || resp.Symbol != "AAA" || resp.Quantity != 10 {
		t.Fatalf("unexpected body: %+v", resp)
	}
	if resp.PurchaseDate != "2023-01-01" {
		t.Fatalf("expected date 2023-01-01, got %s", resp.PurchaseDate)
	}
	if !resp.TotalValue.Equal(decimal.RequireFromString("50.00")) {
		t.Fatalf("expected totalValue 50.00, got %s", resp.TotalValue)
	}
}

func TestCreateInvestmentEndpointValidation(t *testing.T) {
	r := setupRouter(newMemoryRepository())

	w := doRequest(t, r, http.MethodPost, "/investments", map[string]interface{}{
		"type":     "STOCK",
		"quantity": 10,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body)
	}
}

func TestGetInvestmentEndpoint(t *testing.T) {
	r := setupRouter(newMemoryRepository())

	created := createInvestment(t, r, "FUND", "HGLG11", 3, "160.10", "2024-06-30")

	w := doRequest(t, r, http.MethodGet, "/investments/1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body)
	}

	var resp investmentResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Id != created.Id || resp.Type != created.Type || resp.Symbol != created.Symbol ||
		resp.Quantity != created.Quantity || resp.PurchaseDate != created.PurchaseDate ||
		!resp.PurchasePrice.Equal(created.PurchasePrice) || !resp.TotalValue.Equal(created.TotalValue) {
		t.Fatalf("round trip mismatch: created %+v, fetched %+v", created, resp)
	}

	w = doRequest(t, r, http.MethodGet, "/investments/99", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestListInvestmentsEndpoint(t *testing.T) {
	r := setupRouter(newMemoryRepository())

	createInvestment(t, r, "STOCK", "AAA", 10, "5.00", "2023-01-01")
	createInvestment(t, r, "CRYPTO", "BBB", 2, "100.00", "2023-02-01")

	w := doRequest(t, r, http.MethodGet, "/investments", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var all []investmentResponse
	if err := json.Unmarshal(w.Body.Bytes(), &all); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 investments, got %d", len(all))
	}

	w = doRequest(t, r, http.MethodGet, "/investments?type=crypto", nil)
	var filtered []investmentResponse
	if err := json.Unmarshal(w.Body.Bytes(), &filtered); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(filtered) != 1 || filtered[0].Symbol != "BBB" {
		t.Fatalf("unexpected filtered list: %+v", filtered)
	}

	w = doRequest(t, r, http.MethodGet, "/investments?type=BOND", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("unknown filter must not be an error, got %d", w.Code)
	}
	var empty []investmentResponse
	if err := json.Unmarshal(w.Body.Bytes(), &empty); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty list for unknown filter, got %+v", empty)
	}
}

func TestUpdateInvestmentEndpoint(t *testing.T) {
	r := setupRouter(newMemoryRepository())

	createInvestment(t, r, "STOCK", "AAA", 10, "5.00", "2023-01-01")

	w := doRequest(t, r, http.MethodPut, "/investments/1", map[string]interface{}{
		"type":          "OTHER",
		"symbol":        "ZZZ",
		"quantity":      1,
		"purchasePrice": "12.34",
		"purchaseDate":  "2024-01-01",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body)
	}

	var resp investmentResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Type != "OTHER" || resp.Symbol != "ZZZ" || resp.Quantity != 1 {
		t.Fatalf("fields not replaced: %+v", resp)
	}

	w = doRequest(t, r, http.MethodGet, "/investments/1", nil)
	var fetched investmentResponse
	if err := json.Unmarshal(w.Body.Bytes(), &fetched); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if fetched.Symbol != "ZZZ" {
		t.Fatalf("expected persisted update, got %+v", fetched)
	}

	w = doRequest(t, r, http.MethodPut, "/investments/99", map[string]interface{}{
		"type":          "OTHER",
		"symbol":        "ZZZ",
		"quantity":      1,
		"purchasePrice": "12.34",
		"purchaseDate":  "2024-01-01",
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestDeleteInvestmentEndpoint(t *testing.T) {
	r := setupRouter(newMemoryRepository())

	createInvestment(t, r, "STOCK", "AAA", 10, "5.00", "2023-01-01")

	w := doRequest(t, r, http.MethodDelete, "/investments/1", nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}

	w = doRequest(t, r, http.MethodDelete, "/investments/1", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing id, got %d", w.Code)
	}
}

func TestPortfolioSummaryEndpoint(t *testing.T) {
	r := setupRouter(newMemoryRepository())

	createInvestment(t, r, "STOCK", "AAA", 10, "5.00", "2023-01-01")
	createInvestment(t, r, "CRYPTO", "BBB", 2, "100.00", "2023-02-01")

	w := doRequest(t, r, http.MethodGet, "/investments/summary", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var summary summaryResponse
	if err := json.Unmarshal(w.Body.Bytes(), &summary); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !summary.TotalInvested.Equal(decimal.RequireFromString("250.00")) {
		t.Fatalf("expected total 250.00, got %s", summary.TotalInvested)
	}
	if summary.AssetCount != 2 {
		t.Fatalf("expected 2 assets, got %d", summary.AssetCount)
	}
	if !summary.TotalByType["STOCK"].Equal(decimal.RequireFromString("50.00")) {
		t.Fatalf("expected STOCK 50.00, got %s", summary.TotalByType["STOCK"])
	}
	if !summary.TotalByType["CRYPTO"].Equal(decimal.RequireFromString("200.00")) {
		t.Fatalf("expected CRYPTO 200.00, got %s", summary.TotalByType["CRYPTO"])
	}

	if w := doRequest(t, r, http.MethodDelete, "/investments/1", nil); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}

	w = doRequest(t, r, http.MethodGet, "/investments/summary", nil)
	summary = summaryResponse{}
	if err := json.Unmarshal(w.Body.Bytes(), &summary); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !summary.TotalInvested.Equal(decimal.RequireFromString("200.00")) {
		t.Fatalf("expected total 200.00, got %s", summary.TotalInvested)
	}
	if summary.AssetCount != 1 {
		t.Fatalf("expected 1 asset, got %d", summary.AssetCount)
	}
	if _, ok := summary.TotalByType["STOCK"]; ok {
		t.Fatalf("STOCK key must be absent after deletion")
	}
}
