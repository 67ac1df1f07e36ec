package types

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/speechmastery/coach-api/pkg/errors"
)

func TestSendAppError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{
			name:           "invalid input maps to 400",
			err:            apperrors.New(apperrors.ErrCodeInvalidInput, "empty transcript"),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "not found maps to 404",
			err:            apperrors.New(apperrors.ErrCodeNotFound, "missing"),
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "already analyzed maps to 409",
			err:            apperrors.New(apperrors.ErrCodeAlreadyAnalyzed, "duplicate"),
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "score range maps to 500",
			err:            apperrors.New(apperrors.ErrCodeScoreRange, "score out of range"),
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "plain error falls back to 500",
			err:            errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			SendAppError(c, tt.err)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, StatusError, response.Status)
			assert.NotEmpty(t, response.Error)
		})
	}
}

func TestBindJSONOrError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	type payload struct {
		Name string `json:"name" binding:"required"`
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)

	var p payload
	assert.False(t, BindJSONOrError(c, &p))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
