package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/graphgen/pkg/errors"
	"github.com/matzehuels/graphgen/pkg/graph"
	"github.com/matzehuels/graphgen/pkg/observability"
	"github.com/matzehuels/graphgen/pkg/render/nodelink"
)

// Render encodes a generated graph in format. s and g must describe the
// same graph; g supplies the JSON form and its metadata.
func Render(ctx context.Context, s *graph.Store, g graph.Graph, format string, detailed bool) ([]byte, error) {
	start := time.Now()
	data, err := render(ctx, s, g, format, detailed)
	observability.Generator().OnRender(ctx, format, len(data), time.Since(start), err)
	return data, err
}

func render(ctx context.Context, s *graph.Store, g graph.Graph, format string, detailed bool) ([]byte, error) {
	dotOpts := nodelink.Options{Directed: g.Directed, Detailed: detailed}

	switch format {
	case graph.FormatMatrix:
		return []byte(graph.MatrixString(s)), nil
	case graph.FormatJSON:
		data, err := graph.MarshalGraph(g)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "render json")
		}
		return data, nil
	case graph.FormatDOT:
		return []byte(nodelink.ToDOT(s, dotOpts)), nil
	case graph.FormatSVG:
		svg, err := nodelink.RenderSVG(ctx, nodelink.ToDOT(s, dotOpts))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "render svg")
		}
		return svg, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
}
