package network_test

import (
	"context"
	"fmt"

	"github.com/matzehuels/levnet/pkg/friends"
	"github.com/matzehuels/levnet/pkg/network"
)

func ExampleExpand() {
	words := []string{"word", "ward", "wore", "bore", "core"}

	net, err := network.Expand(context.Background(), "word", network.ComputedSource{Words: words}, 1, nil)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println(net.Sorted())
	// Output:
	// [ward wore]
}

func ExampleCachedSource() {
	words := []string{"word", "ward", "wore", "bore", "core"}
	src := network.CachedSource{Adjacency: friends.BuildAll(words)}

	opts := &network.Options{OnHop: func(h network.Hop) {
		fmt.Printf("hop %d: added %d, total %d\n", h.Index+1, h.Added, h.Total)
	}}
	net, err := network.Expand(context.Background(), "word", src, 3, opts)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println(net.Sorted())
	// Output:
	// hop 1: added 2, total 2
	// hop 2: added 3, total 5
	// hop 3: added 0, total 5
	// [bore core ward word wore]
}
