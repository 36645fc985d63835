package httpserver

import (
	"net/http"
	"testing"

	"github.com/Skotchmaster/shop_admin/internal/models"
	"github.com/stretchr/testify/require"
)

func TestProductCreateAndGet(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodPost, "/products/create", map[string]string{
		"name":        "Keyboard",
		"description": "Mechanical, blue switches",
	})
	require.NoError(t, env.P.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Product
	decodeBody(t, rec, &created)
	require.NotZero(t, created.ID)

	rec, c = env.doJSONRequest(http.MethodGet, "/products/1", nil)
	setID(c, created.ID)
	require.NoError(t, env.P.Get(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Product
	decodeBody(t, rec, &got)
	require.Equal(t, "Keyboard", got.Name)
	require.Equal(t, "Mechanical, blue switches", got.Description)
}

func TestProductCreateValidation(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodPost, "/products/create", map[string]string{
		"description": "no name",
	})
	require.NoError(t, env.P.Create(c))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	decodeBody(t, rec, &resp)
	require.Contains(t, resp.Errors, "name")
}

func TestProductPartialUpdate(t *testing.T) {
	env := newTestEnv(t)
	prod := env.seedProduct("Keyboard", "old description")

	rec, c := env.doJSONRequest(http.MethodPost, "/products/1/update", map[string]string{
		"description": "new description",
	})
	setID(c, prod.ID)
	require.NoError(t, env.P.Update(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var stored models.Product
	require.NoError(t, env.DB.First(&stored, prod.ID).Error)
	require.Equal(t, "Keyboard", stored.Name)
	require.Equal(t, "new description", stored.Description)
}

func TestProductUpdateNotFound(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodPost, "/products/42/update", map[string]string{
		"name": "Ghost",
	})
	setID(c, 42)
	require.NoError(t, env.P.Update(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProductDelete(t *testing.T) {
	env := newTestEnv(t)
	prod := env.seedProduct("Keyboard", "to be removed")

	rec, c := env.doJSONRequest(http.MethodPost, "/products/1/delete", nil)
	setID(c, prod.ID)
	require.NoError(t, env.P.Delete(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var count int64
	require.NoError(t, env.DB.Model(&models.Product{}).Count(&count).Error)
	require.EqualValues(t, 0, count)
}

func TestProductSearchUnconfigured(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodGet, "/products/search?q=keyboard", nil)
	require.NoError(t, env.P.Search(c))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
