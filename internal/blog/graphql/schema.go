// Package graphql exposes the blog over a single GraphQL endpoint.
package graphql

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/quill/pkg/slogx"
	graphql "github.com/graph-gophers/graphql-go"
)

//go:embed schema.graphql
var schemaSDL string

// SchemaSDL returns the schema definition served by the endpoint.
func SchemaSDL() string { return schemaSDL }

// NewSchema parses the schema and binds it to r.
func NewSchema(r *Resolver) (*graphql.Schema, error) {
	return graphql.ParseSchema(schemaSDL, r,
		graphql.MaxDepth(10),
		graphql.MaxParallelism(10),
		graphql.Logger(panicLogger{}),
	)
}

// panicLogger reports resolver panics through the request logger.
type panicLogger struct{}

func (panicLogger) LogPanic(ctx context.Context, value any) {
	slogx.FromContext(ctx).Error("graphql resolver panic", slog.String("panic", fmt.Sprint(value)))
}
