package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	dom "github.com/egonzalezhe/techflow/internal/domain"
	"github.com/egonzalezhe/techflow/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIServices_ExportShape(t *testing.T) {
	repo := newFakeServiceRepo()
	_, err := repo.Create(context.Background(), dom.Service{
		Name: "Desarrollo Web", Description: "sitios", Price: 2500000, Stock: 15, OnPromotion: true, Icon: "💻",
	})
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), dom.Service{
		Name: "Apps Móviles", Price: 4500000, Stock: 8, Icon: "📱",
	})
	require.NoError(t, err)

	svc := service.NewCatalogService(repo, nil)
	r := newTestRouter(t)
	r.GET("/api/servicios", NewAPIHandler(svc).Services)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/servicios", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var records []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, len(list))

	for _, rec := range records {
		for _, key := range []string{"id", "nombre", "descripcion", "precio", "stock", "promocion", "icono"} {
			require.Contains(t, rec, key)
		}
		_, isBool := rec["promocion"].(bool)
		assert.True(t, isBool, "promocion must be a JSON boolean")
	}
	assert.Equal(t, "Desarrollo Web", records[0]["nombre"])
	assert.Equal(t, true, records[0]["promocion"])
	assert.Equal(t, false, records[1]["promocion"])
}

func TestAPIServices_EmptyCatalog(t *testing.T) {
	svc := service.NewCatalogService(newFakeServiceRepo(), nil)
	r := newTestRouter(t)
	r.GET("/api/servicios", NewAPIHandler(svc).Services)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/servicios", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}
