package platform

import (
	"fmt"
	"os"

	"github.com/aretw0/notebook/pkg/adapters/jsondb"
	"github.com/aretw0/notebook/pkg/adapters/sqlite"
	"github.com/aretw0/notebook/pkg/core"
)

// Init opens the store selected by the options.
// The uri argument is backend-specific (a collection file for "json",
// a database file or ":memory:" for "sqlite").
func Init(uri string, opts ...Option) (core.Store, error) {
	o := applyOptions(opts)

	if o.store != nil {
		return o.store, nil
	}

	switch o.backend {
	case BackendJSON:
		return initJSON(uri, o)
	case BackendSQLite:
		return initSQLite(uri, o)
	default:
		return nil, fmt.Errorf("unknown backend: %s", o.backend)
	}
}

func initJSON(path string, o *options) (core.Store, error) {
	mustExist, _ := o.config["must_exist"].(bool)
	table, _ := o.config["table"].(string)

	return jsondb.Open(jsondb.Config{
		Path:      path,
		Table:     table,
		MustExist: mustExist,
		Logger:    o.logger,
	})
}

func initSQLite(path string, o *options) (core.Store, error) {
	mustExist, _ := o.config["must_exist"].(bool)
	if mustExist && path != ":memory:" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("%w: %v", core.ErrStorageUnavailable, err)
		}
	}

	return sqlite.Open(sqlite.Config{
		Path:   path,
		Logger: o.logger,
	})
}
