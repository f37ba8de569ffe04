package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"singerx-backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTokenRoundTrip(t *testing.T) {
	utils.JwtKey = []byte("test-secret")
	tc := NewTokenController()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/jwt", strings.NewReader(`{"email":"student@singerx.app"}`))
	tc.Create(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotEmpty(t, resp["token"])

	claims, err := utils.VerifyJWT(resp["token"])
	require.NoError(t, err)
	assert.Equal(t, "student@singerx.app", claims["email"])
}

func TestCreateTokenRejectsMalformedBody(t *testing.T) {
	tc := NewTokenController()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/jwt", strings.NewReader("{not json"))
	tc.Create(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
