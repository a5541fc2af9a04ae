package docdbweb

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nori-stack/docdb/pkg/docdb"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	Routes(e.Group(""), docdb.NewRegistry())
	return e
}

func doRequest(e *echo.Echo, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestFreshDBShape(t *testing.T) {
	e := newTestServer()

	rec := doRequest(e, http.MethodPut, "/testdb", nil)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(e, http.MethodGet, "/testdb", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	info := decode(t, rec)
	assert.Equal(t, "testdb", info["name"])
	assert.Equal(t, float64(1), info["doc_count"])
	assert.Equal(t, float64(0), info["deleted_doc_count"])
	assert.Len(t, info["update_seq"].(string), 138)

	rec = doRequest(e, http.MethodGet, "/_cat/dbs", nil)
	assert.Contains(t, rec.Body.String(), "testdb")

	rec = doRequest(e, http.MethodGet, "/testdb/_design/_views", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestInvalidDBName(t *testing.T) {
	e := newTestServer()

	rec := doRequest(e, http.MethodPut, "/$3213324", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(e, http.MethodGet, "/$3213324", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(e, http.MethodGet, "/_cat/dbs", nil)
	assert.NotContains(t, rec.Body.String(), "$3213324")
}

func TestRevisionLadderOverHTTP(t *testing.T) {
	e := newTestServer()
	require.Equal(t, http.StatusCreated, doRequest(e, http.MethodPut, "/testdb", nil).Code)

	rec := doRequest(e, http.MethodPost, "/testdb", map[string]interface{}{"foo": "bar"})
	require.Equal(t, http.StatusOK, rec.Code)
	created := decode(t, rec)
	id := created["_id"].(string)
	rev1 := created["_rev"].(string)
	require.True(t, strings.HasPrefix(rev1, "1-"))

	rec = doRequest(e, http.MethodPost, "/testdb", map[string]interface{}{"foo": "bar", "_id": id, "_rev": rev1})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decode(t, rec)
	rev2 := updated["_rev"].(string)
	require.True(t, strings.HasPrefix(rev2, "2-"))

	rec = doRequest(e, http.MethodPut, "/testdb/"+id, map[string]interface{}{"_rev": rev2, "foo": "baz"})
	require.Equal(t, http.StatusOK, rec.Code)
	rev3 := decode(t, rec)["_rev"].(string)
	require.True(t, strings.HasPrefix(rev3, "3-"))

	rec = doRequest(e, http.MethodDelete, "/testdb/"+id+"?rev="+rev2, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doRequest(e, http.MethodDelete, "/testdb/"+id+"?rev="+rev3, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rev4 := decode(t, rec)["_rev"].(string)
	require.True(t, strings.HasPrefix(rev4, "4-"))

	rec = doRequest(e, http.MethodDelete, "/testdb/"+id+"?rev="+rev4, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doRequest(e, http.MethodPost, "/testdb", map[string]interface{}{"_id": id})
	require.Equal(t, http.StatusOK, rec.Code)
	rev5 := decode(t, rec)["_rev"].(string)
	assert.True(t, strings.HasPrefix(rev5, "5-"))
}

func TestBulkDocsOverHTTP(t *testing.T) {
	e := newTestServer()
	require.Equal(t, http.StatusCreated, doRequest(e, http.MethodPut, "/testdb", nil).Code)

	rec := doRequest(e, http.MethodPost, "/testdb/_bulk_docs", map[string]interface{}{
		"_docs": []map[string]interface{}{
			{"foo": "bar"},
			{"_id": "with_id"},
			{"_rev": "1"},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var results []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
	require.Len(t, results, 3)
	assert.True(t, strings.HasPrefix(results[0]["_rev"].(string), "1-"))
	assert.Equal(t, "with_id", results[1]["_id"])
	assert.Equal(t, "invalid_rev_id", results[2]["error"])
}

func TestAllDocsPaginationOverHTTP(t *testing.T) {
	e := newTestServer()
	require.Equal(t, http.StatusCreated, doRequest(e, http.MethodPut, "/testdb", nil).Code)

	for i := 0; i < 12; i++ {
		rec := doRequest(e, http.MethodPost, "/testdb", map[string]interface{}{"n": i})
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := doRequest(e, http.MethodGet, "/testdb/_all_docs", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	page1 := decode(t, rec)
	assert.Len(t, page1["rows"], 10)
	assert.Equal(t, float64(13), page1["total_rows"])
	assert.Equal(t, float64(1), page1["offset"])

	rec = doRequest(e, http.MethodGet, "/testdb/_all_docs?page=2", nil)
	page2 := decode(t, rec)
	assert.Len(t, page2["rows"], 3)
	assert.Equal(t, float64(11), page2["offset"])
}

func TestRootEndpoint(t *testing.T) {
	e := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
