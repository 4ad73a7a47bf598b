package vmath

import "math"

// Vector2 is a float64 2D point or displacement
// Value type: every operation returns a new vector
type Vector2 struct {
	X, Y float64
}

// Zero is the origin
var Zero = Vector2{}

// V2 constructs a Vector2
func V2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{v.X + o.X, v.Y + o.Y}
}

func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{v.X - o.X, v.Y - o.Y}
}

// Scale multiplies both components by s
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{v.X * s, v.Y * s}
}

// Mul multiplies component-wise
func (v Vector2) Mul(o Vector2) Vector2 {
	return Vector2{v.X * o.X, v.Y * o.Y}
}

// DivScalar divides both components by s
// s must be non-zero; debug builds panic otherwise
func (v Vector2) DivScalar(s float64) Vector2 {
	Assert(s != 0, "vector divided by zero scalar")
	return Vector2{v.X / s, v.Y / s}
}

// Div divides component-wise
// Both components of o must be non-zero; debug builds panic otherwise
func (v Vector2) Div(o Vector2) Vector2 {
	Assert(o.X != 0 && o.Y != 0, "vector divided by vector with zero component")
	return Vector2{v.X / o.X, v.Y / o.Y}
}

// Magnitude returns the Euclidean norm sqrt(x² + y²)
func (v Vector2) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Distance returns the Euclidean distance between two points
func Distance(a, b Vector2) float64 {
	return a.Sub(b).Magnitude()
}
