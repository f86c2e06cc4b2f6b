package friends_test

import (
	"fmt"
	"os"

	"github.com/matzehuels/levnet/pkg/friends"
)

func ExampleOf() {
	words := []string{"word", "ward", "wore", "bore", "core"}
	fmt.Println(friends.Of("word", words).Sorted())
	// Output:
	// [ward wore]
}

func ExampleWriteAdjacency() {
	adj := friends.BuildAll([]string{"bore", "core", "word"})
	if err := friends.WriteAdjacency(adj, os.Stdout); err != nil {
		fmt.Println("Error:", err)
	}
	// Output:
	// {
	//   "bore": [
	//     "core"
	//   ],
	//   "core": [
	//     "bore"
	//   ],
	//   "word": []
	// }
}
