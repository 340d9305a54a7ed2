package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func respond(t *testing.T, err error) (int, HTTPError) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	Respond(c, err)

	var body HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestRespond(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"SlotConflict", ErrBusiness(CodeSlotConflict), http.StatusConflict, CodeSlotConflict},
		{"Wrapped", fmt.Errorf("booking: %w", ErrBusiness(CodePastDateTime)), http.StatusUnprocessableEntity, CodePastDateTime},
		{"NotFound", ErrNotFound("vehicle"), http.StatusNotFound, CodeNotFound},
		{"Unauthorized", ErrBusiness(CodeUnauthorized), http.StatusForbidden, CodeUnauthorized},
		{"StorageFault", errors.New("connection reset"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := respond(t, tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, body.Code)
		})
	}

	_, body := respond(t, ErrNotFound("vehicle"))
	assert.Equal(t, "vehicle not found.", body.Message)
}

func TestMapNotFound(t *testing.T) {
	assert.True(t, IsBusiness(MapNotFound(gorm.ErrRecordNotFound, "service"), CodeNotFound))

	other := errors.New("timeout")
	assert.Equal(t, other, MapNotFound(other, "service"))
}
