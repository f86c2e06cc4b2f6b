// Package render turns word networks into output artifacts.
//
// # Overview
//
// A network is produced by [network.ExpandLevels] as a seed plus one set of
// newly discovered words per hop. This package provides:
//
//   - The output [Format] names accepted by the CLI and API
//   - Plain text and JSON encodings of a network (in this package)
//   - Node-link diagrams via Graphviz (in the [nodelink] subpackage)
//
// # Node-Link Diagrams
//
// The [nodelink] subpackage draws the seed at the top and each hop on its
// own rank, with an undirected edge between every pair of friends:
//
//	dot := nodelink.ToDOT(net, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// [network.ExpandLevels]: github.com/matzehuels/levnet/pkg/network.ExpandLevels
// [nodelink]: github.com/matzehuels/levnet/pkg/render/nodelink
package render
