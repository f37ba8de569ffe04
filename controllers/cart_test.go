package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddCartItemRejectsMalformedBody(t *testing.T) {
	cc := &CartController{}

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/carts", strings.NewReader("{not json"))
	cc.AddCartItem(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
