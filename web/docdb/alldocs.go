package docdbweb

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// allDocsHandler implements GET /{db}/_all_docs?page=P&limit=L per spec
// §4.C/§6. Missing or malformed page/limit fall back to the defaults
// (page 1, limit 10) rather than erroring.
func allDocsHandler(c echo.Context) error {
	db, err := getDatabase(c)
	if err != nil {
		return wrapError(c, err)
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	return c.JSON(http.StatusOK, db.AllDocs(page, limit))
}
