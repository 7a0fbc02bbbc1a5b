package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(router http.Handler, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestCreateOrderAndListIt(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := postJSON(router, "/pedidos", `{
		"name": "Ana",
		"phone": "555-1234",
		"product_id": 1,
		"product_name": "Gorro de Invierno Unicornio",
		"quantity": 2,
		"comments": ""
	}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		ID      uint   `json:"id"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, uint(1), created.ID)
	assert.Equal(t, "Pedido #1 registrado correctamente. Nos contactaremos pronto!", created.Message)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/pedidos", nil)
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var listed struct {
		Orders []struct {
			ID          uint   `json:"id"`
			Name        string `json:"name"`
			Phone       string `json:"phone"`
			ProductName string `json:"product_name"`
			Quantity    int    `json:"quantity"`
			Comments    string `json:"comments"`
			CreatedAt   string `json:"created_at"`
		} `json:"orders"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed.Orders, 1)
	o := listed.Orders[0]
	assert.Equal(t, uint(1), o.ID)
	assert.Equal(t, "Ana", o.Name)
	assert.Equal(t, "555-1234", o.Phone)
	assert.Equal(t, "Gorro de Invierno Unicornio", o.ProductName)
	assert.Equal(t, 2, o.Quantity)
	assert.Empty(t, o.Comments)
	assert.NotEmpty(t, o.CreatedAt)

	// La vista de revisión no expone product_id.
	assert.NotContains(t, rec.Body.String(), "product_id")
}

func TestListOrdersNewestFirst(t *testing.T) {
	router, _ := setupTestRouter(t)

	for _, name := range []string{"A", "B", "C"} {
		w := postJSON(router, "/pedidos", `{
			"name": "`+name+`",
			"phone": "555-0000",
			"product_id": 2,
			"product_name": "Gorro Polar Dinosaurio",
			"quantity": 1
		}`)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/pedidos", nil)
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var listed struct {
		Orders []struct {
			Name string `json:"name"`
		} `json:"orders"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed.Orders, 3)
	assert.Equal(t, "C", listed.Orders[0].Name)
	assert.Equal(t, "B", listed.Orders[1].Name)
	assert.Equal(t, "A", listed.Orders[2].Name)
}

func TestCreateOrderMissingFields(t *testing.T) {
	router, _ := setupTestRouter(t)

	cases := []struct {
		label string
		body  string
	}{
		{"sin phone", `{"name":"Ana","product_id":1,"product_name":"Gorro","quantity":1}`},
		{"sin name", `{"phone":"555-1234","product_id":1,"product_name":"Gorro","quantity":1}`},
		{"name en blanco", `{"name":"   ","phone":"555-1234","product_id":1,"product_name":"Gorro","quantity":1}`},
		{"json malformado", `{"name":`},
	}
	for _, tc := range cases {
		w := postJSON(router, "/pedidos", tc.body)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, tc.label)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), tc.label)
		assert.NotEmpty(t, body["detail"], tc.label)
	}

	// Ningún intento inválido debe haber creado filas.
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/pedidos", nil)
	router.ServeHTTP(rec, req)
	var listed struct {
		Orders []json.RawMessage `json:"orders"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	assert.Empty(t, listed.Orders)
}

func TestCreateOrderStorageFailure(t *testing.T) {
	router, db := setupTestRouter(t)
	closeDB(t, db)

	w := postJSON(router, "/pedidos", `{
		"name": "Ana",
		"phone": "555-1234",
		"product_id": 1,
		"product_name": "Gorro de Invierno Unicornio",
		"quantity": 2
	}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body["detail"])
}

func TestListOrdersStorageFailure(t *testing.T) {
	router, db := setupTestRouter(t)
	closeDB(t, db)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/pedidos", nil)
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["detail"])
}
