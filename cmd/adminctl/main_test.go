package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-admin-console/components/collection"
	"github.com/goliatone/go-admin-console/pkg/telemetry"
)

const customSeed = `products:
  - id: 7
    name: Lamp
    category: Home
    price: 12.5
    stock: 3
orders: []
users: []
`

func TestWorkspaceOptionsDefaults(t *testing.T) {
	g := Globals{IDPolicy: "length"}
	opts, err := g.workspaceOptions(nil)
	require.NoError(t, err)
	assert.Nil(t, opts.Seed)
	assert.Equal(t, collection.IDFromLength, opts.IDPolicy)
}

func TestWorkspaceOptionsLoadsSeedAndPolicy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(customSeed), 0o600))

	g := Globals{IDPolicy: "monotonic", SeedPath: path}
	opts, err := g.workspaceOptions(nil)
	require.NoError(t, err)
	require.NotNil(t, opts.Seed)
	require.Len(t, opts.Seed.Products, 1)
	assert.Equal(t, "Lamp", opts.Seed.Products[0].Name)
	assert.Equal(t, collection.IDMonotonic, opts.IDPolicy)
}

func TestWorkspaceOptionsRejectsUnknownPolicy(t *testing.T) {
	g := Globals{IDPolicy: "random"}
	_, err := g.workspaceOptions(nil)
	assert.ErrorContains(t, err, "unknown id policy")
}

func TestOutputWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	out, err := output(path)
	require.NoError(t, err)
	_, err = out.Write([]byte("ok"))
	require.NoError(t, err)
	require.NoError(t, out.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(data))
}

func TestReportWriteChart(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&reportCmd{Kind: "chart"}).write(&buf))
	assert.Contains(t, buf.String(), "Jul")
}

func TestReportWritePage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&reportCmd{Kind: "page", Start: "2024-01-01", End: "2024-06-30"}).write(&buf))
	assert.Contains(t, buf.String(), "2024-01-01")
}

func TestReportWriteUnknown(t *testing.T) {
	err := (&reportCmd{Kind: "pdf"}).write(&bytes.Buffer{})
	assert.ErrorContains(t, err, "unknown report")
}

func TestMetricsMuxServesRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	prom, err := telemetry.NewPrometheus(reg)
	require.NoError(t, err)
	prom.Record(t.Context(), "collection.commit", map[string]any{"collection": "orders"})

	rec := httptest.NewRecorder()
	metricsMux(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "admin_console_events_total"))
}
