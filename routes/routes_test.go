package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"singerx-backend/controllers"
	"singerx-backend/utils"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *mux.Router {
	router := mux.NewRouter()
	RegisterRoutes(router,
		controllers.NewTokenController(),
		&controllers.ClassController{},
		&controllers.InstructorController{},
		&controllers.CartController{},
		&controllers.UserController{},
	)
	return router
}

func TestRootRoute(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)

	newTestRouter().ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Server is running", rr.Body.String())
}

func TestTokenRouteIssuesVerifiableToken(t *testing.T) {
	utils.JwtKey = []byte("test-secret")

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/jwt", strings.NewReader(`{"email":"student@singerx.app"}`))

	newTestRouter().ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	claims, err := utils.VerifyJWT(resp["token"])
	require.NoError(t, err)
	assert.Equal(t, "student@singerx.app", claims["email"])
}

func TestProductRouteRejectsInvalidID(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/products/not-a-hex-id", nil)

	newTestRouter().ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/classes", nil)

	newTestRouter().ServeHTTP(rr, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
