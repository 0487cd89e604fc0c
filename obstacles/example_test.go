package obstacles_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/obstacles"
)

// ExampleDecode reads the string-encoded document shape.
func ExampleDecode() {
	doc := `{"data": "[[1, 0], [1, 1]]"}`
	points, err := obstacles.Decode(strings.NewReader(doc), obstacles.JSON)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, p := range points {
		fmt.Printf("(%d,%d)\n", p.X, p.Y)
	}

	// Output:
	// (1,0)
	// (1,1)
}
