package server

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func postForm(t *testing.T, s *Server, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/run", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	s.ServeHTTP(rr, req)
	return rr
}

func validForm() url.Values {
	return url.Values{
		"model":    {"HTB"},
		"steps":    {"50"},
		"conc0":    {"100"},
		"gradient": {"1"},
		"kdecay":   {"0.1"},
		"kd":       {"0.5"},
	}
}

func TestIndexPage(t *testing.T) {
	s := New(zap.NewNop())
	rr := httptest.NewRecorder()
	s.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "HTBCMG")
	assert.Contains(t, rr.Body.String(), "Run Simulation")
}

func TestRunAndArtifacts(t *testing.T) {
	s := New(zap.NewNop())
	rr := postForm(t, s, validForm())
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Simulation completed!")

	require.Len(t, s.store.order, 1)
	rn, ok := s.store.get(s.store.order[0])
	require.True(t, ok)
	require.Len(t, rn.Out.C, 50)

	// csv download reproduces the stored series exactly
	rr = httptest.NewRecorder()
	s.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/runs/"+rn.ID+"/results.csv", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, string(rn.Out.CSV()), rr.Body.String())
	assert.Equal(t, "text/csv", rr.Header().Get("Content-Type"))

	// chart renders a png
	rr = httptest.NewRecorder()
	s.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/runs/"+rn.ID+"/chart.png", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	require.Greater(t, rr.Body.Len(), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, rr.Body.Bytes()[:4])
}

func TestRunUnknownID(t *testing.T) {
	s := New(zap.NewNop())
	rr := httptest.NewRecorder()
	s.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/runs/nope/results.csv", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRunValidation(t *testing.T) {
	s := New(zap.NewNop())

	form := validForm()
	form.Set("steps", "5")
	rr := postForm(t, s, form)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "out of range")

	form = validForm()
	form.Set("model", "HTX")
	rr = postForm(t, s, form)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "unknown model type")
}

func TestMetricsEndpoint(t *testing.T) {
	s := New(zap.NewNop())
	postForm(t, s, validForm())

	rr := httptest.NewRecorder()
	s.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "soltrans_runs_total")
}
