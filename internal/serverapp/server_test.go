package serverapp

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"estimador/internal/catalog"
	"estimador/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalog_DefaultWhenEmpty(t *testing.T) {
	cat, err := LoadCatalog("  ")
	require.NoError(t, err)
	assert.Equal(t, catalog.Default().Len(), cat.Len())
}

func TestLoadCatalog_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
tasks:
  - id: landing
    name: Landing
    price: 100000
    hours: 10
    category: Principal
    mode: toggle
`), 0o644))

	cat, err := LoadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, 1, cat.Len())
}

func TestNewHandler_ServesCustomCatalogWithShowDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.Rules.Policy = "disable"
	cat := catalog.New([]catalog.Task{
		{ID: "base", Name: "Base", Category: catalog.CategoryMain, Mode: catalog.ModeToggle},
		{ID: "extra", Name: "Extra", Category: catalog.CategoryMain, Mode: catalog.ModeQuantity, VisibleWhen: []string{"base"}},
	})

	h, err := NewHandler(Options{Config: cfg, Catalog: cat})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `id="task-extra"`)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}
