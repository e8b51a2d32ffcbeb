package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Point is a cell of the 3D integer grid, or a per-axis step between cells.
type Point struct {
	X int
	Y int
	Z int
}

// Add returns the component-wise sum of two points.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y, Z: p.Z + o.Z}
}

// Distance is the Euclidean distance between two cells.
// It ranks candidates only; the dispatcher never moves by it.
func (p Point) Distance(o Point) float64 {
	dx := float64(p.X - o.X)
	dy := float64(p.Y - o.Y)
	dz := float64(p.Z - o.Z)
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Direction returns the step from p toward o: each axis is the sign of the
// difference, so one step may cross several axes at once.
func Direction(from, to Point) Point {
	return Point{X: sign(to.X - from.X), Y: sign(to.Y - from.Y), Z: sign(to.Z - from.Z)}
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// Within reports whether every coordinate lies in [0, bound] on its axis.
func (p Point) Within(bound Point) bool {
	return p.X >= 0 && p.X <= bound.X &&
		p.Y >= 0 && p.Y <= bound.Y &&
		p.Z >= 0 && p.Z <= bound.Z
}

// IsUnit reports whether every component is -1, 0 or 1.
func (p Point) IsUnit() bool {
	return abs(p.X) <= 1 && abs(p.Y) <= 1 && abs(p.Z) <= 1
}

func (p Point) IsZero() bool { return p == Point{} }

func (p Point) String() string { return fmt.Sprintf("<%d, %d, %d>", p.X, p.Y, p.Z) }

// Array returns the point as [x, y, z] for wire formats.
func (p Point) Array() [3]int { return [3]int{p.X, p.Y, p.Z} }

// ParsePoint reads "x,y,z" (whitespace tolerated).
func ParsePoint(s string) (Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Point{}, fmt.Errorf("parse point %q: want 3 comma separated integers", s)
	}

	var v [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return Point{}, fmt.Errorf("parse point %q: component %d: %w", s, i+1, err)
		}
		v[i] = n
	}

	return Point{X: v[0], Y: v[1], Z: v[2]}, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
