package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DOUNIAre/AgriTECH-PROJECT-BACKEND/internal/models"
	"github.com/DOUNIAre/AgriTECH-PROJECT-BACKEND/internal/utils"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.CreateSuccessResponse(gin.H{
			"userID": c.GetString("userID"),
		}))
	})
	return r
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	r := setupRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp utils.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "UNAUTHORIZED", resp.Error.Code)
	assert.Equal(t, "Authentication required", resp.Error.Message)
}

func TestRequireAuth_SetsUserID(t *testing.T) {
	r := setupRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("X-User-ID", "user-42")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-42")
}

func TestRespondError_MapsErrorKinds(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", models.NewValidationError("MISSING_FIELDS", "fields required"), http.StatusBadRequest, "MISSING_FIELDS"},
		{"not found", models.NewNotFoundError("SENSOR_NOT_FOUND", "Sensor not registered"), http.StatusNotFound, "SENSOR_NOT_FOUND"},
		{"forbidden", models.NewAuthorizationError("FORBIDDEN", "Not authorized to access this sensor"), http.StatusForbidden, "FORBIDDEN"},
		{"conflict", models.NewConflictError("SENSOR_EXISTS", "A sensor with this device ID already exists"), http.StatusBadRequest, "SENSOR_EXISTS"},
		{"unknown", assert.AnError, http.StatusInternalServerError, "SERVER_ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			respondError(c, tc.err)

			assert.Equal(t, tc.wantStatus, w.Code)

			var resp utils.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tc.wantCode, resp.Error.Code)
		})
	}
}
