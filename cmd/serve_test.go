package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsphweid/triadex/catalog"
	"github.com/jsphweid/triadex/fretboard"
	"github.com/jsphweid/triadex/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func postVoicing(t *testing.T, body model.VoicingRequestBody) *httptest.ResponseRecorder {
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/voicing", bytes.NewReader(data))
	w := httptest.NewRecorder()
	NewRouter().ServeHTTP(w, req)
	return w
}

func TestHandleVoicingPost(t *testing.T) {
	logger = zap.NewNop()
	w := postVoicing(t, model.VoicingRequestBody{Root: "F#", Quality: "Major", Shape: "A", Set: "II"})
	require.Equal(t, http.StatusOK, w.Code)

	var res model.VoicingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, [3]int{4, 3, 2}, res.Voicing.Frets())
	assert.Equal(t, 2, res.Span)
	assert.Equal(t, []uint8{54, 58, 61}, res.Keys)
	assert.Equal(t, model.MajorThird, res.Voicing.Positions[1].Interval)
}

func TestHandleVoicingGet(t *testing.T) {
	logger = zap.NewNop()
	req := httptest.NewRequest(http.MethodGet, "/voicing?root=E&quality=m&shape=E&set=I&allow_open=true", nil)
	w := httptest.NewRecorder()
	NewRouter().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var res model.VoicingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, [3]int{0, 0, 0}, res.Voicing.Frets())
}

func TestHandleVoicingErrors(t *testing.T) {
	logger = zap.NewNop()

	w := postVoicing(t, model.VoicingRequestBody{Root: "H", Quality: "Major", Shape: "A", Set: "II"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var res model.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Contains(t, res.Error, "invalid input")

	w = postVoicing(t, model.VoicingRequestBody{Root: "C", Quality: "dim", Shape: "A", Set: "IV"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = postVoicing(t, model.VoicingRequestBody{Root: "C", Quality: "dim", Shape: "A", Set: "IV", Stretch: true})
	assert.Equal(t, http.StatusOK, w.Code)

	req := httptest.NewRequest(http.MethodPost, "/voicing", bytes.NewReader([]byte("{")))
	rec := httptest.NewRecorder()
	NewRouter().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleCatalog(t *testing.T) {
	logger = zap.NewNop()
	useCatalog(fretboard.DefaultPolicy(), catalog.Build(fretboard.DefaultPolicy()))
	defer useCatalog(fretboard.Policy{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/catalog", nil)
	w := httptest.NewRecorder()
	NewRouter().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var res model.CatalogResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, 432, res.Total)
	assert.Len(t, res.Voicings, 408)
	assert.Len(t, res.Unsolvable, 24)
}

func getVoicing(t *testing.T, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/voicing?"+query, nil)
	w := httptest.NewRecorder()
	NewRouter().ServeHTTP(w, req)
	return w
}

func TestHandleVoicingUsesLoadedCatalog(t *testing.T) {
	logger = zap.NewNop()
	entries := catalog.Build(fretboard.DefaultPolicy())
	for i, e := range entries {
		if e.Key == "00-Major-D-I" {
			// an octave up, so a catalog hit is distinguishable from a fresh solve
			entries[i].Voicing = fretboard.Transpose(e.Voicing, 12)
		}
	}
	useCatalog(fretboard.DefaultPolicy(), entries)
	defer useCatalog(fretboard.Policy{}, nil)

	var res model.VoicingResponse
	w := getVoicing(t, "root=C&quality=Major&shape=D&set=I")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, [3]int{24, 25, 24}, res.Voicing.Frets())

	// a different policy misses the catalog and is solved
	w = getVoicing(t, "root=C&quality=Major&shape=D&set=I&allow_open=true")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, [3]int{0, 1, 0}, res.Voicing.Frets())

	// unsolvable entries still report why
	w = getVoicing(t, "root=C&quality=dim&shape=A&set=IV")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestHandleVoicingRejectsBadFlags(t *testing.T) {
	logger = zap.NewNop()
	for _, query := range []string{"allow_open=yes", "stretch=on"} {
		t.Run(query, func(t *testing.T) {
			w := getVoicing(t, "root=C&quality=Major&shape=D&set=I&"+query)
			require.Equal(t, http.StatusBadRequest, w.Code)
			var res model.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
			assert.Contains(t, res.Error, "invalid input")
		})
	}

	w := getVoicing(t, "root=C&quality=Major&shape=D&set=I&allow_open=1&stretch=false")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCORSHeaders(t *testing.T) {
	logger = zap.NewNop()
	req := httptest.NewRequest(http.MethodGet, "/voicing?root=C&quality=Major&shape=D&set=I", nil)
	req.Header.Set("Origin", "http://example.com")
	w := httptest.NewRecorder()
	NewRouter().ServeHTTP(w, req)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
