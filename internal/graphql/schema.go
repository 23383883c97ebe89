// Package graphql serves the public API: a hand-written schema resolved by
// graph-gophers/graphql-go.
package graphql

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"

	graphqlgo "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"go.uber.org/zap"
)

//go:embed schema.graphql
var schemaSDL string

// maxDepth bounds nested selections such as order.restaurant.menu.
const maxDepth = 8

// NewSchema parses the schema against r. A mismatch between the SDL and the
// resolver methods is reported here rather than at request time.
func NewSchema(r *Resolver) (*graphqlgo.Schema, error) {
	schema, err := graphqlgo.ParseSchema(schemaSDL, r,
		graphqlgo.MaxDepth(maxDepth),
		graphqlgo.Logger(panicLogger{log: r.log}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse graphql schema: %w", err)
	}
	return schema, nil
}

// Handler serves POST requests in the standard GraphQL-over-HTTP JSON shape.
func Handler(schema *graphqlgo.Schema) http.Handler {
	return &relay.Handler{Schema: schema}
}

type panicLogger struct {
	log *zap.Logger
}

func (l panicLogger) LogPanic(_ context.Context, value interface{}) {
	l.log.Error("graphql resolver panic", zap.Any("panic", value), zap.Stack("stack"))
}
