package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/ThomasMo54/teaching-shop-example/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGetOne(t *testing.T) {
	h, _ := setupAdmin(t)

	rec := do(t, h, http.MethodPost, "/carrier", `{"Name":"UPS","DelayDays":2}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created models.Carrier
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotZero(t, created.ID)

	rec = do(t, h, http.MethodGet, fmt.Sprintf("/carrier/%d", created.ID), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched models.Carrier
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, "UPS", fetched.Name)
	assert.Equal(t, 2, fetched.DelayDays)
}

func TestGetOneNotFound(t *testing.T) {
	h, _ := setupAdmin(t)
	rec := do(t, h, http.MethodGet, "/carrier/999", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetOneInvalidKey(t *testing.T) {
	h, _ := setupAdmin(t)
	rec := do(t, h, http.MethodGet, "/carrier/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateBatch(t *testing.T) {
	h, _ := setupAdmin(t)

	body := `[{"Name":"Chair","Price":49.9,"Stock":10},{"Name":"Desk","Price":190,"Stock":3}]`
	rec := do(t, h, http.MethodPost, "/product", body, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/product", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2", rec.Header().Get("X-Total-Count"))
}

func TestCreateValidation(t *testing.T) {
	h, _ := setupAdmin(t)

	rec := do(t, h, http.MethodPost, "/carrier", `{"DelayDays":2}`, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Name")

	// batch errors name the offending row
	rec = do(t, h, http.MethodPost, "/carrier", `[{"Name":"UPS"},{"DelayDays":1}]`, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "row 2")
}

func TestCreateInvalidJSON(t *testing.T) {
	h, _ := setupAdmin(t)

	rec := do(t, h, http.MethodPost, "/carrier", `{`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/carrier", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateDuplicateConflict(t *testing.T) {
	h, _ := setupAdmin(t)

	rec := do(t, h, http.MethodPost, "/carrier", `{"Name":"UPS","DelayDays":2}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, h, http.MethodPost, "/carrier", `{"Name":"UPS","DelayDays":4}`, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestListPagination(t *testing.T) {
	h, _ := setupAdmin(t)

	for _, name := range []string{"A", "B", "C"} {
		rec := do(t, h, http.MethodPost, "/carrier", fmt.Sprintf(`{"Name":%q,"DelayDays":1}`, name), nil)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := do(t, h, http.MethodGet, "/carrier?pagStart=0&pagEnd=2", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "3", rec.Header().Get("X-Total-Count"))
	assert.Contains(t, rec.Header().Get("Link"), "pagStart=2")

	var page []models.Carrier
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Len(t, page, 2)
}

func TestListOrdering(t *testing.T) {
	h, _ := setupAdmin(t)

	for _, name := range []string{"Beta", "Alpha"} {
		rec := do(t, h, http.MethodPost, "/carrier", fmt.Sprintf(`{"Name":%q,"DelayDays":1}`, name), nil)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	// default order comes from the model: name ascending
	rec := do(t, h, http.MethodGet, "/carrier", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var carriers []models.Carrier
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &carriers))
	require.Len(t, carriers, 2)
	assert.Equal(t, "Alpha", carriers[0].Name)

	rec = do(t, h, http.MethodGet, "/carrier?ord=-Name", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &carriers))
	assert.Equal(t, "Beta", carriers[0].Name)

	rec = do(t, h, http.MethodGet, "/carrier?ord=bogus", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListDescriptorColumns(t *testing.T) {
	h, _ := setupAdmin(t)

	rec := do(t, h, http.MethodPost, "/carrier", `{"Name":"UPS","DelayDays":2}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, h, http.MethodGet, "/carrier?cols=1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var rows []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "UPS", rows[0]["name"])
	assert.EqualValues(t, 2, rows[0]["delay_days"])
	assert.NotContains(t, rows[0], "id")
}

func TestListCSV(t *testing.T) {
	h, _ := setupAdmin(t)

	rec := do(t, h, http.MethodPost, "/carrier", `{"Name":"UPS","DelayDays":2}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, h, http.MethodGet, "/carrier", "", map[string]string{"Accept": "text/csv"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "csv")

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "name,delay_days", lines[0])
	assert.Equal(t, "UPS,2", lines[1])
}

func TestPatchOne(t *testing.T) {
	h, _ := setupAdmin(t)

	rec := do(t, h, http.MethodPost, "/carrier", `{"Name":"UPS","DelayDays":2}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, h, http.MethodPatch, "/carrier/1", `{"DelayDays":5}`, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated models.Carrier
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, 5, updated.DelayDays)
	assert.Equal(t, "UPS", updated.Name)
}

func TestPatchOneNotFound(t *testing.T) {
	h, _ := setupAdmin(t)
	rec := do(t, h, http.MethodPatch, "/carrier/999", `{"DelayDays":5}`, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPatchOneValidatesValues(t *testing.T) {
	h, _ := setupAdmin(t)

	rec := do(t, h, http.MethodPost, "/carrier", `{"Name":"UPS","DelayDays":2}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	long := strings.Repeat("x", 90)
	rec = do(t, h, http.MethodPatch, "/carrier/1", fmt.Sprintf(`{"Name":%q}`, long), nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestPatchOneIgnoresUnknownAndPrimaryFields(t *testing.T) {
	h, _ := setupAdmin(t)

	rec := do(t, h, http.MethodPost, "/carrier", `{"Name":"UPS","DelayDays":2}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	// ID and bogus are dropped; with nothing left the patch is rejected
	rec = do(t, h, http.MethodPatch, "/carrier/1", `{"ID":7,"bogus":1}`, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(t, h, http.MethodGet, "/carrier/1", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDelete(t *testing.T) {
	h, _ := setupAdmin(t)

	rec := do(t, h, http.MethodPost, "/carrier", `{"Name":"UPS","DelayDays":2}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, h, http.MethodDelete, "/carrier/1", "", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodDelete, "/carrier/1", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodGet, "/carrier/1", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
