package coord

import (
	"math"
)

type Point struct{ X, Y, Z float64 }

func (p Point) Equal(b Point) bool {
	return p.X == b.X && p.Y == b.Y && p.Z == b.Z
}

// Sub will subtract the target values from p.
func (p Point) Sub(target Point) Point {
	p.X -= target.X
	p.Y -= target.Y
	p.Z -= target.Z
	return p
}

// Min returns the per-axis minimum of p and b.
func (p Point) Min(b Point) Point {
	return Point{math.Min(p.X, b.X), math.Min(p.Y, b.Y), math.Min(p.Z, b.Z)}
}

// Max returns the per-axis maximum of p and b.
func (p Point) Max(b Point) Point {
	return Point{math.Max(p.X, b.X), math.Max(p.Y, b.Y), math.Max(p.Z, b.Z)}
}

// Length is the distance from the origin.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// DistanceXY will return the 2D distance to p from (x,y).
func (p Point) DistanceXY(x, y float64) float64 {
	return math.Sqrt(math.Pow(x-p.X, 2) + math.Pow(y-p.Y, 2))
}
