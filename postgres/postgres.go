// Package postgres binds nanorm to PostgreSQL through github.com/lib/pq.
//
// PostgreSQL takes positional $1-style parameters only, so calls that use
// named parameters or ? placeholders should carry [Dialect]:
//
//	db, err := postgres.Open(dsn)
//	...
//	n, err := nanorm.Exec(ctx, db,
//	    `UPDATE widgets SET name = :name WHERE id = :id`,
//	    nanorm.Bind(func(p *nanorm.Params) {
//	        p.AddNamed("name", "gear")
//	        p.AddNamed("id", 7)
//	    }),
//	    postgres.Dialect(),
//	)
package postgres

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"

	nanorm "github.com/bugzyGeek/Nanorm"
)

// Open opens a database handle for the given connection string, using a
// pq connector so DSN errors surface here rather than at first use.
// The handle is caller-owned; nanorm never closes it.
func Open(dsn string) (*sql.DB, error) {
	c, err := pq.NewConnector(dsn)
	if err != nil {
		return nil, err
	}
	return sql.OpenDB(c), nil
}

// Dialect is the rebinding option for PostgreSQL: named tokens are resolved
// and placeholders rewritten to $1, $2, …
func Dialect() nanorm.Option {
	return nanorm.Dialect(nanorm.PlaceholderDollar)
}

// SQLSTATE codes this package classifies. Driver errors propagate
// unchanged; these helpers only inspect them.
const (
	codeUniqueViolation      = "23505"
	codeForeignKeyViolation  = "23503"
	codeSerializationFailure = "40001"
)

// IsUniqueViolation reports whether err is a PostgreSQL unique-constraint
// violation.
func IsUniqueViolation(err error) bool { return hasCode(err, codeUniqueViolation) }

// IsForeignKeyViolation reports whether err is a PostgreSQL foreign-key
// violation.
func IsForeignKeyViolation(err error) bool { return hasCode(err, codeForeignKeyViolation) }

// IsSerializationFailure reports whether err is a serialization failure,
// the signal to retry a serializable transaction.
func IsSerializationFailure(err error) bool { return hasCode(err, codeSerializationFailure) }

func hasCode(err error, code string) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == code
}
