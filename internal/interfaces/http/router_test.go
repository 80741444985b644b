package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/MissVentas-api/internal/application/analytics"
	"github.com/jhoicas/MissVentas-api/internal/application/circle"
	"github.com/jhoicas/MissVentas-api/internal/application/dto"
	"github.com/jhoicas/MissVentas-api/internal/application/events"
	"github.com/jhoicas/MissVentas-api/internal/application/ledger"
	"github.com/jhoicas/MissVentas-api/internal/application/usecase"
	"github.com/jhoicas/MissVentas-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/MissVentas-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp arma la API completa sobre el almacén en memoria.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	log := zerolog.Nop()
	store := memory.NewStore()
	tx := memory.NewTxRunner(store)
	bus := events.NewBus(log)
	t.Cleanup(bus.Close)

	reconciler := ledger.NewDebtReconciler(tx, store.Clients(), bus, log)
	app := fiber.New()
	app.Use(apphttp.RequestIDMiddleware())
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC:  usecase.NewProductUseCase(store.Products(), bus, 2),
		ClientUC:   usecase.NewClientUseCase(store.Clients(), bus),
		Sales:      ledger.NewSaleCoordinator(tx, reconciler, store.Sales(), store.Products(), store.Clients(), bus, log, ledger.SaleOptions{EnforceStock: true, ReconcileOnSale: true}),
		Payments:   ledger.NewPaymentUseCase(tx, store.Payments(), store.Clients(), bus, log),
		Statement:  ledger.NewStatementUseCase(store.Clients(), store.Sales(), store.Payments(), store.Products()),
		Reconciler: reconciler,
		Circles:    circle.NewScheduler(tx, store.Circles(), store.CirclePayments(), bus, log),
		Reports:    appanalytics.NewReportsUseCase(store.Sales(), store.Products(), store.Clients(), 2),
		Bus:        bus,
		Log:        log,
	})
	return app
}

// do ejecuta la petición y decodifica la respuesta JSON en out (si no es nil).
func do(t *testing.T, app *fiber.App, method, path, body string, out any) int {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, out), "cuerpo: %s", raw)
	}
	return resp.StatusCode
}

// ──────────────────────────────────────────────────────────────────────────────
// Casos
// ──────────────────────────────────────────────────────────────────────────────

func TestFlujoVentaAbono(t *testing.T) {
	app := buildTestApp(t)

	var product dto.ProductResponse
	status := do(t, app, http.MethodPost, "/api/products", `{"name":"Labial","cost":20,"suggested_price":50,"stock":3}`, &product)
	require.Equal(t, http.StatusCreated, status)

	var client dto.ClientResponse
	status = do(t, app, http.MethodPost, "/api/clients", `{"name":"Ana","nickname":"Anita"}`, &client)
	require.Equal(t, http.StatusCreated, status)

	var sale dto.SaleDetailResponse
	body := fmt.Sprintf(`{"product_id":%d,"client_id":%d,"sale_price":50}`, product.ID, client.ID)
	status = do(t, app, http.MethodPost, "/api/sales", body, &sale)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "30.00", sale.Sale.Profit.StringFixed(2))
	require.NotNil(t, sale.Product)
	assert.Equal(t, 2, sale.Product.Stock)
	require.NotNil(t, sale.Client)
	assert.Equal(t, "50.00", sale.Client.TotalDebt.StringFixed(2))

	var payment dto.PaymentResponse
	body = fmt.Sprintf(`{"client_id":%d,"amount":50,"verified":false}`, client.ID)
	status = do(t, app, http.MethodPost, "/api/payments", body, &payment)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "50.00", payment.ClientDebt.StringFixed(2))

	status = do(t, app, http.MethodPatch, fmt.Sprintf("/api/payments/%d/verified", payment.ID), `{"verified":true}`, &payment)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, payment.ClientDebt.IsZero())

	var statement dto.StatementResponse
	status = do(t, app, http.MethodGet, fmt.Sprintf("/api/clients/%d/statement", client.ID), "", &statement)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, statement.Sales, 1)
	assert.Equal(t, "50.00", statement.TotalVerified.StringFixed(2))

	var summary dto.ReportSummaryDTO
	status = do(t, app, http.MethodGet, "/api/reports/summary", "", &summary)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "50.00", summary.TotalSales.StringFixed(2))
	assert.Equal(t, 1, summary.LowStock)
}

func TestErrores(t *testing.T) {
	app := buildTestApp(t)

	var errResp dto.ErrorResponse
	status := do(t, app, http.MethodGet, "/api/products/77", "", &errResp)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", errResp.Code)

	status = do(t, app, http.MethodGet, "/api/clients/abc", "", &errResp)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_ID", errResp.Code)

	status = do(t, app, http.MethodPost, "/api/sales", `{"product_id":1,"client_id":1,"sale_price":10}`, &errResp)
	assert.Equal(t, http.StatusNotFound, status)

	status = do(t, app, http.MethodPost, "/api/payments", `{"client_id":1,"amount":0}`, &errResp)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", errResp.Code)

	status = do(t, app, http.MethodPost, "/api/debts/sync?policy=todo", "", &errResp)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_POLICY", errResp.Code)

	status = do(t, app, http.MethodPost, "/api/products", `{"name":`, &errResp)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestVerificacionRequiereCampo(t *testing.T) {
	app := buildTestApp(t)
	var product dto.ProductResponse
	do(t, app, http.MethodPost, "/api/products", `{"name":"Base","cost":10,"suggested_price":40,"stock":2}`, &product)
	var client dto.ClientResponse
	do(t, app, http.MethodPost, "/api/clients", `{"name":"Caro"}`, &client)
	do(t, app, http.MethodPost, "/api/sales", fmt.Sprintf(`{"product_id":%d,"client_id":%d,"sale_price":40}`, product.ID, client.ID), nil)

	var payment dto.PaymentResponse
	status := do(t, app, http.MethodPost, "/api/payments", fmt.Sprintf(`{"client_id":%d,"amount":40,"verified":true}`, client.ID), &payment)
	require.Equal(t, http.StatusCreated, status)
	require.True(t, payment.ClientDebt.IsZero())

	var errResp dto.ErrorResponse
	status = do(t, app, http.MethodPatch, fmt.Sprintf("/api/payments/%d/verified", payment.ID), `{}`, &errResp)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_BODY", errResp.Code)

	var got dto.PaymentResponse
	status = do(t, app, http.MethodGet, fmt.Sprintf("/api/payments/%d", payment.ID), "", &got)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, got.Verified)
	assert.True(t, got.ClientDebt.IsZero())
}

func TestStockAgotado(t *testing.T) {
	app := buildTestApp(t)
	var product dto.ProductResponse
	do(t, app, http.MethodPost, "/api/products", `{"name":"Rímel","cost":5,"suggested_price":9,"stock":0}`, &product)
	var client dto.ClientResponse
	do(t, app, http.MethodPost, "/api/clients", `{"name":"Bea"}`, &client)

	var errResp dto.ErrorResponse
	body := fmt.Sprintf(`{"product_id":%d,"client_id":%d,"sale_price":9}`, product.ID, client.ID)
	status := do(t, app, http.MethodPost, "/api/sales", body, &errResp)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "INSUFFICIENT_STOCK", errResp.Code)

	var critical []dto.ProductResponse
	status = do(t, app, http.MethodGet, "/api/products/critical", "", &critical)
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, critical, 1)
}

func TestTandas(t *testing.T) {
	app := buildTestApp(t)

	var detail dto.CircleDetailResponse
	body := `{"name":"Tanda","amount_per_slot":100,"participants":["A","B","C","D","E","F","G","H","I","J","K"]}`
	status := do(t, app, http.MethodPost, "/api/circles", body, &detail)
	require.Equal(t, http.StatusCreated, status)
	require.Len(t, detail.Payments, 11)

	var errResp dto.ErrorResponse
	status = do(t, app, http.MethodPost, fmt.Sprintf("/api/circle-payments/%d/paid", detail.Payments[0].ID), "", &errResp)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "BENEFICIARY_EXEMPT", errResp.Code)

	var paid dto.CirclePaymentResponse
	status = do(t, app, http.MethodPost, fmt.Sprintf("/api/circle-payments/%d/paid", detail.Payments[1].ID), "", &paid)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "PAID", paid.State)

	status = do(t, app, http.MethodPost, fmt.Sprintf("/api/circles/%d/advance", detail.Circle.ID), "", &errResp)
	assert.Equal(t, http.StatusNotImplemented, status)

	status = do(t, app, http.MethodPost, "/api/circles", `{"name":"Corta","amount_per_slot":10,"participants":["A"]}`, &errResp)
	assert.Equal(t, http.StatusBadRequest, status)

	var list []dto.CircleResponse
	status = do(t, app, http.MethodGet, "/api/circles", "", &list)
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, list, 1)
}

func TestBusquedaDeClientes(t *testing.T) {
	app := buildTestApp(t)
	do(t, app, http.MethodPost, "/api/clients", `{"name":"José Pérez","nickname":"Pepe"}`, nil)
	do(t, app, http.MethodPost, "/api/clients", `{"name":"Lupita"}`, nil)

	var list []dto.ClientResponse
	status := do(t, app, http.MethodGet, "/api/clients?q=jose", "", &list)
	assert.Equal(t, http.StatusOK, status)
	require.Len(t, list, 1)
	assert.Equal(t, "José Pérez", list[0].Name)
}

func TestRequestID(t *testing.T) {
	app := buildTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/circles", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", resp.Header.Get("X-Request-ID"))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/circles", nil), -1)
	require.NoError(t, err)
	assert.Len(t, resp.Header.Get("X-Request-ID"), 36)
}
