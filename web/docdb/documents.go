package docdbweb

import (
	"io"
	"net/http"

	"github.com/nori-stack/docdb/pkg/docdb"
	"github.com/labstack/echo/v4"
)

func readBody(c echo.Context) (map[string]interface{}, error) {
	raw, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, err
	}
	return docdb.DecodeBodyObject(raw)
}

// createDocHandler implements POST /{db} per spec §6.
func createDocHandler(c echo.Context) error {
	db, err := getDatabase(c)
	if err != nil {
		return wrapError(c, err)
	}
	body, err := readBody(c)
	if err != nil {
		return wrapError(c, err)
	}
	res, err := db.Put("", false, body)
	if err != nil {
		return wrapError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

// putDocHandler implements PUT /{db}/{id} per spec §6. The id may itself
// contain a slash (the reserved "_design/_views" slot), so it is taken
// from the wildcard remainder of the route rather than a single :id
// param.
func putDocHandler(c echo.Context) error {
	db, err := getDatabase(c)
	if err != nil {
		return wrapError(c, err)
	}
	id := c.Param("*")
	body, err := readBody(c)
	if err != nil {
		return wrapError(c, err)
	}
	res, err := db.Put(id, true, body)
	if err != nil {
		return wrapError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

// getDocHandler implements GET /{db}/{id} per spec §6, including the
// always-present "_design/_views" slot.
func getDocHandler(c echo.Context) error {
	db, err := getDatabase(c)
	if err != nil {
		return wrapError(c, err)
	}
	id := c.Param("*")
	doc, err := db.Get(id)
	if err != nil {
		return wrapError(c, err)
	}
	return c.JSON(http.StatusOK, doc)
}

// deleteDocHandler implements DELETE /{db}/{id}?rev={rev} per spec §6.
func deleteDocHandler(c echo.Context) error {
	db, err := getDatabase(c)
	if err != nil {
		return wrapError(c, err)
	}
	id := c.Param("*")
	rev := c.QueryParam("rev")
	res, err := db.Delete(id, rev)
	if err != nil {
		return wrapError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
