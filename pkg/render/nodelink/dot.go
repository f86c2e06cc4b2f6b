package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/levnet/pkg/friends"
	"github.com/matzehuels/levnet/pkg/render"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds the discovery hop to each node label.
	// When false, only the word is shown.
	Detailed bool
}

// ToDOT converts a network to an undirected Graphviz graph. The seed is drawn
// with a bold outline on rank 0 even if a later hop rediscovers it.
func ToDOT(n render.Network, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	fmt.Fprintf(&buf, "  %q [%s];\n", n.Seed, strings.Join(seedAttrs(n.Seed, opts.Detailed), ", "))

	nodes := []string{n.Seed}
	for i, level := range n.Levels {
		words := withoutSeed(level, n.Seed)
		if len(words) == 0 {
			continue
		}
		fmt.Fprintf(&buf, "  subgraph hop%d {\n    rank=same;\n", i+1)
		for _, w := range words {
			fmt.Fprintf(&buf, "    %q [label=%q];\n", w, fmtLabel(w, i+1, opts.Detailed))
		}
		buf.WriteString("  }\n")
		nodes = append(nodes, words...)
	}

	buf.WriteString("\n")
	for _, e := range edges(nodes) {
		fmt.Fprintf(&buf, "  %q -- %q;\n", e[0], e[1])
	}

	buf.WriteString("}\n")
	return buf.String()
}

func seedAttrs(seed string, detailed bool) []string {
	return []string{
		fmt.Sprintf("label=%q", fmtLabel(seed, 0, detailed)),
		"penwidth=3",
		"fillcolor=lightyellow",
	}
}

func fmtLabel(word string, hop int, detailed bool) string {
	if !detailed {
		return word
	}
	if hop == 0 {
		return word + "\nseed"
	}
	return fmt.Sprintf("%s\nhop: %d", word, hop)
}

func withoutSeed(level friends.Set, seed string) []string {
	words := level.Sorted()
	out := words[:0]
	for _, w := range words {
		if w != seed {
			out = append(out, w)
		}
	}
	return out
}

// edges returns each friend pair among nodes once, in node order.
func edges(nodes []string) [][2]string {
	index := make(map[string]int, len(nodes))
	for i, w := range nodes {
		index[w] = i
	}

	var out [][2]string
	for i, w := range nodes {
		for _, f := range friends.Of(w, nodes).Sorted() {
			if index[f] > i {
				out = append(out, [2]string{w, f})
			}
		}
	}
	return out
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	out, err := renderDOT(ctx, dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(out), nil
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return renderDOT(ctx, dot, graphviz.PNG)
}

func renderDOT(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
