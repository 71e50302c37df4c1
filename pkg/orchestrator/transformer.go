package orchestrator

import (
	"context"

	"github.com/goliatone/go-mapgen/pkg/mapdata"
)

// Transformer mutates a map definition after store lookup but before the
// widget is built. Typical uses filter markers per request or splice in
// records fetched elsewhere.
type Transformer interface {
	Transform(ctx context.Context, def *mapdata.Definition) error
}

// TransformerFunc adapts a function to the Transformer interface.
type TransformerFunc func(ctx context.Context, def *mapdata.Definition) error

// Transform implements Transformer.
func (f TransformerFunc) Transform(ctx context.Context, def *mapdata.Definition) error {
	return f(ctx, def)
}

// Chain runs transformers in order, stopping at the first error.
func Chain(transformers ...Transformer) Transformer {
	return TransformerFunc(func(ctx context.Context, def *mapdata.Definition) error {
		for _, transformer := range transformers {
			if transformer == nil {
				continue
			}
			if err := transformer.Transform(ctx, def); err != nil {
				return err
			}
		}
		return nil
	})
}
