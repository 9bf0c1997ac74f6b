package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBodiesEqualNormalizesLegacyStatus(t *testing.T) {
	goBody := []byte(`[{"subjectname":"Maths","status":"Ongoing","count":2}]`)
	legacyBody := []byte(`[{"count":2.0,"status":"Persuing","subjectname":"Maths"}]`)
	assert.True(t, bodiesEqual(goBody, legacyBody))
	assert.False(t, bodiesEqual(goBody, []byte(`[{"subjectname":"Physics","status":"Ongoing","count":2}]`)))
}

func TestUnwrapEnvelope(t *testing.T) {
	assert.JSONEq(t, `[1,2]`, string(unwrapEnvelope([]byte(`{"data":[1,2],"meta":{"count":2}}`))))
	errBody := []byte(`{"error":{"code":"NOT_FOUND"}}`)
	assert.Equal(t, errBody, unwrapEnvelope(errBody))
	assert.Equal(t, []byte(`[1]`), unwrapEnvelope([]byte(`[1]`)))
}

func TestCompareTarget(t *testing.T) {
	goSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"status":"Ongoing"}],"meta":{"count":1}}`))
	}))
	defer goSrv.Close()
	legacySrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"status":"Persuing"}]`))
	}))
	defer legacySrv.Close()

	comp := compareTarget(resty.New().SetBaseURL(goSrv.URL), resty.New().SetBaseURL(legacySrv.URL), target{Method: "GET", Path: "get-batch?status=Ongoing"})

	require.NoError(t, comp.Error)
	assert.True(t, comp.StatusMatch)
	assert.True(t, comp.BodyMatch)
}

func TestLoadTargetsRejectsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "targets.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"targets":[]}`), 0o600))
	_, err := loadTargets(path)
	assert.Error(t, err)
}
