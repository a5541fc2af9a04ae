package docdbweb

import (
	"net/http"

	"github.com/nori-stack/docdb/pkg/docdb"
	"github.com/labstack/echo/v4"
)

// statusFor maps a core tag to its HTTP status per spec §7. Grounded on
// the teacher's wrapError switch in web/instances/instances.go, expanded
// from a handful of instance errors into the full tag table.
var statusFor = map[docdb.Tag]int{
	docdb.TagInvalidDBName: http.StatusBadRequest,
	docdb.TagDBExists:      http.StatusPreconditionFailed,
	docdb.TagDBNotFound:    http.StatusNotFound,
	docdb.TagInvalidBody:   http.StatusBadRequest,
	docdb.TagInvalidRevID:  http.StatusBadRequest,
	docdb.TagReservedField: http.StatusBadRequest,
	docdb.TagDocConflict:   http.StatusConflict,
	docdb.TagDocNotFound:   http.StatusNotFound,
	docdb.TagEmptyBulk:     http.StatusBadRequest,
}

// wrapError renders a core error as a JSON error envelope with the
// correct status. Errors the core never produces fall back to 500.
func wrapError(c echo.Context, err error) error {
	tag, ok := docdb.TagOf(err)
	if !ok {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	status, ok := statusFor[tag]
	if !ok {
		status = http.StatusInternalServerError
	}
	return c.JSON(status, echo.Map{"error": tag})
}
