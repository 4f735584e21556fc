package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gbmahou1/boardcamp-backend/internal/validators"
)

// These tests only cover the paths that fail before any storage access,
// so the handlers get a nil db.

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, validators.Register())

	r := gin.New()

	customerHandler := NewCustomerHandler(nil, nil)
	r.POST("/customers", customerHandler.Create)
	r.PUT("/customers/:id", customerHandler.Update)

	rentalHandler := NewRentalHandler(nil, nil, nil, nil)
	r.POST("/rentals", rentalHandler.Create)
	r.POST("/rentals/:id/return", rentalHandler.Return)
	r.DELETE("/rentals/:id", rentalHandler.Delete)

	categoryHandler := NewCategoryHandler(nil, nil)
	r.POST("/categories", categoryHandler.Create)

	gameHandler := NewGameHandler(nil, nil)
	r.POST("/games", gameHandler.Create)

	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateCustomer_SchemaValidation(t *testing.T) {
	r := newTestRouter(t)

	cases := []struct {
		name string
		body string
	}{
		{"missing name", `{"phone":"21999887766","cpf":"01234567890","birthday":"1990-01-01"}`},
		{"cpf too short", `{"name":"João","phone":"21999887766","cpf":"0123456789","birthday":"1990-01-01"}`},
		{"cpf with letters", `{"name":"João","phone":"21999887766","cpf":"0123456789a","birthday":"1990-01-01"}`},
		{"phone too short", `{"name":"João","phone":"219998877","cpf":"01234567890","birthday":"1990-01-01"}`},
		{"phone too long", `{"name":"João","phone":"219998877665","cpf":"01234567890","birthday":"1990-01-01"}`},
		{"missing birthday", `{"name":"João","phone":"21999887766","cpf":"01234567890"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(r, http.MethodPost, "/customers", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestUpdateCustomer_SchemaValidation(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodPut, "/customers/1",
		`{"name":"João","phone":"21999887766","cpf":"123","birthday":"1990-01-01"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateCategory_MissingName(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/categories", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateGame_NumericFieldValidation(t *testing.T) {
	r := newTestRouter(t)

	cases := []struct {
		name string
		body string
	}{
		{"zero stock", `{"name":"Detetive","stockTotal":0,"categoryId":1,"pricePerDay":10}`},
		{"negative stock", `{"name":"Detetive","stockTotal":-1,"categoryId":1,"pricePerDay":10}`},
		{"zero price", `{"name":"Detetive","stockTotal":2,"categoryId":1,"pricePerDay":0}`},
		{"missing name", `{"stockTotal":2,"categoryId":1,"pricePerDay":10}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(r, http.MethodPost, "/games", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestCreateRental_MissingFields(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/rentals", `{"customerId":1,"gameId":2}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRentalIDParam_NotNumeric(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/rentals/abc/return", ``)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodDelete, "/rentals/abc", ``)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
