package pipeline

import (
	"bytes"
	"context"
	"fmt"

	"github.com/matzehuels/levnet/pkg/render"
	"github.com/matzehuels/levnet/pkg/render/nodelink"
)

// RenderAll generates output artifacts in every format of opts.Formats.
// The DOT source is built once and shared by the dot, svg and png outputs.
func RenderAll(ctx context.Context, n render.Network, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	var dot string
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, name := range opts.Formats {
		format, _ := render.ParseFormat(name)
		if format == render.FormatDOT || format == render.FormatSVG || format == render.FormatPNG {
			if dot == "" {
				dot = nodelink.ToDOT(n, nodelink.Options{Detailed: opts.Detailed})
			}
		}

		data, err := Render(ctx, n, format, dot)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[string(format)] = data
	}
	return artifacts, nil
}

// Render encodes a network in one format. dot is the Graphviz source for the
// diagram formats and is ignored by text and json.
func Render(ctx context.Context, n render.Network, format render.Format, dot string) ([]byte, error) {
	switch format {
	case render.FormatText:
		var buf bytes.Buffer
		err := render.WriteText(&buf, n)
		return buf.Bytes(), err
	case render.FormatJSON:
		var buf bytes.Buffer
		err := render.WriteJSON(&buf, n)
		return buf.Bytes(), err
	case render.FormatDOT:
		return []byte(dot), nil
	case render.FormatSVG:
		return nodelink.RenderSVG(ctx, dot)
	case render.FormatPNG:
		return nodelink.RenderPNG(ctx, dot)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
