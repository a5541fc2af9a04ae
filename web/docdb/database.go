package docdbweb

import (
	"net/http"

	"github.com/nori-stack/docdb/pkg/docdb"
	"github.com/labstack/echo/v4"
)

// createDBHandler implements PUT /{db} per spec §6.
func createDBHandler(c echo.Context) error {
	name := c.Param("db")
	if err := registry().Create(name); err != nil {
		return wrapError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"ok": true, "name": name})
}

// infoDBHandler implements GET /{db} per spec §6.
func infoDBHandler(c echo.Context) error {
	db, err := registry().Get(c.Param("db"))
	if err != nil {
		return wrapError(c, err)
	}
	return c.JSON(http.StatusOK, db.Info())
}

// dropDBHandler implements DELETE /{db} per spec §6.
func dropDBHandler(c echo.Context) error {
	name := c.Param("db")
	if err := registry().Drop(name); err != nil {
		return wrapError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

// listDBsHandler implements GET /_cat/dbs per spec §6.
func listDBsHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, registry().List())
}

// rootHandler implements GET / per spec §6: presence-only test, arbitrary
// JSON body.
func rootHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"docdb":   true,
		"version": "1.0.0",
	})
}

func getDatabase(c echo.Context) (*docdb.Database, error) {
	return registry().Get(c.Param("db"))
}
