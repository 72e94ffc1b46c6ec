// Package query wraps the mongo driver for the few document operations this service needs.
// See https://godoc.org/go.mongodb.org/mongo-driver/mongo for the underlying semantics.
package query

import (
	"fmt"

	"github.com/anft-xyz/goapi/base/ctx"
	"github.com/anft-xyz/goapi/domain"
)

var (
	// ErrNotFound is mongo document not found error
	ErrNotFound = fmt.Errorf("document not found")

	// ErrDuplicateKey is an error when violating unique index
	ErrDuplicateKey = fmt.Errorf("duplicate key")
)

// Mongo abstract the mongo layer.
type Mongo interface {
	// FindOne get data from the table
	FindOne(context ctx.Ctx, table domain.Table, query, result interface{}) error

	// Upsert replaces the document matching selector, inserting it when absent
	Upsert(context ctx.Ctx, table domain.Table, selector, update interface{}) error

	// Remove remove an entry from the table
	// Return ErrNotFound if selector does not match any documents
	Remove(context ctx.Ctx, table domain.Table, selector interface{}) error

	// Ping checks the primary is reachable
	Ping(context ctx.Ctx) error
}
