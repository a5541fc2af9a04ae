// Package docdbweb is the Service component of spec §4.E: a thin façade
// binding HTTP verbs+paths to Registry/DocStore calls, with no logic
// beyond dispatch, status mapping, and JSON (de)serialization. Grounded
// on the teacher's web/instances/instances.go Routes(router *echo.Group)
// pattern.
package docdbweb

import (
	"github.com/nori-stack/docdb/pkg/docdb"
	"github.com/labstack/echo/v4"
)

var reg *docdb.Registry

func registry() *docdb.Registry {
	return reg
}

// Routes registers every endpoint from spec §6 on router. Routes must be
// called once, before the server starts serving.
func Routes(router *echo.Group, registry *docdb.Registry) {
	reg = registry

	router.GET("/", instrument("root", rootHandler))
	router.GET("/_cat/dbs", instrument("cat_dbs", listDBsHandler))

	router.PUT("/:db", instrument("create_db", createDBHandler))
	router.GET("/:db", instrument("info_db", infoDBHandler))
	router.DELETE("/:db", instrument("drop_db", dropDBHandler))

	router.POST("/:db", instrument("create_doc", createDocHandler))
	router.POST("/:db/_bulk_docs", instrument("bulk_docs", bulkDocsHandler))
	router.POST("/:db/_bulk_gets", instrument("bulk_gets", bulkGetsHandler))
	router.GET("/:db/_all_docs", instrument("all_docs", allDocsHandler))

	router.PUT("/:db/*", instrument("put_doc", putDocHandler))
	router.GET("/:db/*", instrument("get_doc", getDocHandler))
	router.DELETE("/:db/*", instrument("delete_doc", deleteDocHandler))
}
