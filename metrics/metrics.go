package metrics

import (
	"fmt"

	"github.com/npillmayer/forest"
)

// Height returns the height of the tree containing x: the number of
// edges on the longest downward path from the designated root.
func Height[K comparable](f *forest.Forest[K], x K) (int, error) {
	shape, err := walkTour(f, x)
	if err != nil {
		return -1, fmt.Errorf("metrics.Height could not be applied: %w", err)
	}
	return shape.height, nil
}

// Depth returns the number of edges between x and the designated root of
// its tree. The root itself has depth 0.
func Depth[K comparable](f *forest.Forest[K], x K) (int, error) {
	shape, err := walkTour(f, x)
	if err != nil {
		return -1, fmt.Errorf("metrics.Depth could not be applied: %w", err)
	}
	return shape.depths[x], nil
}

// LeafCount returns the number of elements in x's tree without children
// under the current orientation.
func LeafCount[K comparable](f *forest.Forest[K], x K) (int, error) {
	shape, err := walkTour(f, x)
	if err != nil {
		return -1, fmt.Errorf("metrics.LeafCount could not be applied: %w", err)
	}
	leaves := 0
	for el := range shape.depths {
		if shape.children[el] == 0 {
			leaves++
		}
	}
	return leaves, nil
}

// Branching returns the maximum number of children any element of x's
// tree has under the current orientation.
func Branching[K comparable](f *forest.Forest[K], x K) (int, error) {
	shape, err := walkTour(f, x)
	if err != nil {
		return -1, fmt.Errorf("metrics.Branching could not be applied: %w", err)
	}
	most := 0
	for _, c := range shape.children {
		if c > most {
			most = c
		}
	}
	return most, nil
}

// treeShape aggregates per-element data from one tour walk.
type treeShape[K comparable] struct {
	height   int
	depths   map[K]int
	children map[K]int
}

func walkTour[K comparable](f *forest.Forest[K], x K) (treeShape[K], error) {
	shape := treeShape[K]{
		depths:   make(map[K]int),
		children: make(map[K]int),
	}
	visits, err := f.Tour(x)
	if err != nil {
		return shape, err
	}
	var stack []K
	for v := range visits {
		if v.Entering {
			if len(stack) > 0 {
				shape.children[stack[len(stack)-1]]++
			}
			depth := len(stack)
			shape.depths[v.Element] = depth
			if depth > shape.height {
				shape.height = depth
			}
			stack = append(stack, v.Element)
			continue
		}
		stack = stack[:len(stack)-1]
	}
	tracer().Debugf("tree of %v: height %d over %d elements", x, shape.height, len(shape.depths))
	return shape, nil
}
