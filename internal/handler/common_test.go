package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"go-gin-checkout/config"
	"go-gin-checkout/internal/handler"
	"go-gin-checkout/internal/model"
	"go-gin-checkout/internal/service/mocks"
	"go-gin-checkout/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

var (
	InvalidJSON = `{"invalid": json}`
)

type testServices struct {
	cart     *mocks.MockCartService
	purchase *mocks.MockPurchaseService
	ticket   *mocks.MockTicketService
	product  *mocks.MockProductService
	user     *mocks.MockUserService
}

func setupTestRouter(t *testing.T) (*gin.Engine, *testServices) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := &testServices{
		cart:     mocks.NewMockCartService(t),
		purchase: mocks.NewMockPurchaseService(t),
		ticket:   mocks.NewMockTicketService(t),
		product:  mocks.NewMockProductService(t),
		user:     mocks.NewMockUserService(t),
	}
	router := handler.NewRouter(authConfig(), handler.Handlers{
		Cart:    handler.NewCartHandler(s.cart, s.purchase),
		Ticket:  handler.NewTicketHandler(s.ticket),
		Product: handler.NewProductHandler(s.product),
		User:    handler.NewUserHandler(s.user),
	}, nil)
	return router, s
}

func authConfig() config.AuthConfig {
	return config.LoadTestConfig().Auth
}

// tokenFor 簽發測試用 token
func tokenFor(t *testing.T, userID, cartID int, role model.UserRole) string {
	t.Helper()
	token, err := auth.MintAccessToken(authConfig(), time.Now(), &model.User{ID: userID, CartID: cartID, Role: role})
	require.NoError(t, err)
	return token
}

// create JSON request body
func createJSONRequest(data interface{}) *bytes.Buffer {
	if s, ok := data.(string); ok {
		return bytes.NewBufferString(s)
	}
	jsonData, err := json.Marshal(data)
	if err != nil {
		return bytes.NewBuffer([]byte(""))
	}
	return bytes.NewBuffer(jsonData)
}

// create HTTP request with JSON body
func createJSONHTTPRequest(method, url string, data interface{}) *http.Request {
	var req *http.Request
	var err error
	if data == nil {
		req, err = http.NewRequest(method, url, nil)
	} else {
		req, err = http.NewRequest(method, url, createJSONRequest(data))
	}
	if err != nil {
		return nil
	}
	req.Header.Set("Content-Type", "application/json")
	return req
}

func authorizedRequest(t *testing.T, method, url string, data interface{}, userID, cartID int, role model.UserRole) *http.Request {
	req := createJSONHTTPRequest(method, url, data)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, userID, cartID, role))
	return req
}

func decodeBody(t *testing.T, body *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(body.Bytes(), &out))
	return out
}
