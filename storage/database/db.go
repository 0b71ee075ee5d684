package database

import (
	"fmt"
	"net/url"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core"
)

// Open opens (creating if needed) the sqlite database file with referential
// integrity enforcement on. sqlite only enforces the schema's ON DELETE
// clauses when foreign_keys is set on the connection.
func Open(conf *core.Config) (*sqlx.DB, error) {
	q := make(url.Values)
	q.Set("_foreign_keys", "on")

	dsn := fmt.Sprintf("file:%s?%s", conf.Database.Path, q.Encode())
	db, err := sqlx.Open("sqlite3", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}

	// a single writer; the file is only ever touched by this process
	db.SetMaxOpenConns(1)

	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "pinging database")
	}
	return db, nil
}
