// Package nodelink renders word networks as node-link diagrams.
//
// # Overview
//
// The seed word sits alone on the top rank. Words discovered at hop N sit on
// rank N, and every pair of friends in the drawing is joined by an undirected
// edge, so edges within a rank and between adjacent ranks are both visible.
//
// # Usage
//
//	dot := nodelink.ToDOT(net, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot)
//
// # Options
//
//   - Detailed: node labels also show the hop at which the word was found
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process rendering;
// no Graphviz installation is required.
package nodelink
