package docdbweb

import (
	"io"
	"net/http"

	"github.com/nori-stack/docdb/pkg/docdb"
	"github.com/labstack/echo/v4"
)

func readBulkEnvelope(c echo.Context) ([]map[string]interface{}, error) {
	raw, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, err
	}
	return docdb.DecodeBulkEnvelope(raw)
}

// bulkDocsHandler implements POST /{db}/_bulk_docs per spec §6. Per-item
// failures never fail the request: the overall status is always 200 once
// the envelope itself is well-formed.
func bulkDocsHandler(c echo.Context) error {
	db, err := getDatabase(c)
	if err != nil {
		return wrapError(c, err)
	}
	items, err := readBulkEnvelope(c)
	if err != nil {
		return wrapError(c, err)
	}
	return c.JSON(http.StatusOK, db.BulkPut(items))
}

// bulkGetsHandler implements POST /{db}/_bulk_gets per spec §6.
func bulkGetsHandler(c echo.Context) error {
	db, err := getDatabase(c)
	if err != nil {
		return wrapError(c, err)
	}
	items, err := readBulkEnvelope(c)
	if err != nil {
		return wrapError(c, err)
	}

	results := db.BulkGet(items)
	out := make([]echo.Map, len(results))
	for i, r := range results {
		if r.Error != "" {
			out[i] = echo.Map{"error": r.Error}
			continue
		}
		out[i] = echo.Map(r.Doc)
	}
	return c.JSON(http.StatusOK, out)
}
