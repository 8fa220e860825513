package helpers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name string `json:"name"`
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body.Error
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantOK  bool
		wantErr string
	}{
		{"valid", `{"name":"Asha"}`, true, ""},
		{"empty body", ``, false, "request body is required"},
		{"truncated", `{"name":`, false, "malformed JSON"},
		{"syntax error", `{"name" "x"}`, false, "malformed JSON at position"},
		{"wrong type", `{"name":5}`, false, `invalid value for field "name"`},
		{"trailing object", `{"name":"a"}{"name":"b"}`, false, "single JSON object"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			var dest sampleRequest

			ok := DecodeJSON(rr, req, &dest)
			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				assert.Equal(t, http.StatusBadRequest, rr.Code)
				assert.Contains(t, decodeError(t, rr), tt.wantErr)
			}
		})
	}
}

func TestDecodeJSON_TooLarge(t *testing.T) {
	body := `{"name":"` + strings.Repeat("a", MaxBodyBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(body))
	rr := httptest.NewRecorder()
	var dest sampleRequest

	require.False(t, DecodeJSON(rr, req, &dest))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, decodeError(t, rr), "must not exceed")
}

func TestWriteJSONMessage(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteJSONMessage(rr, http.StatusCreated, "ok", []int{1})
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"ok","data":[1]}`, rr.Body.String())
}
