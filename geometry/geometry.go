// Package geometry models simple two-dimensional shapes that can report
// their area and perimeter.
package geometry

import (
	"fmt"
	"math"
)

// Shape is anything with an area and a perimeter.
type Shape interface {
	Area() float64
	Perimeter() float64
}

type Circle struct {
	radius float64
}

// NewCircle stores radius as given. Zero and negative values are not rejected.
func NewCircle(radius float64) Circle {
	return Circle{radius: radius}
}

func (c Circle) Radius() float64 {
	return c.radius
}

func (c Circle) Area() float64 {
	return math.Pi * c.radius * c.radius
}

// Perimeter is the circumference.
func (c Circle) Perimeter() float64 {
	return 2 * math.Pi * c.radius
}

func (c Circle) String() string {
	return fmt.Sprintf("Circle(radius=%v)", c.radius)
}

type Rectangle struct {
	width, height float64
}

// NewRectangle stores width and height as given. Zero and negative values
// are not rejected.
func NewRectangle(width, height float64) Rectangle {
	return Rectangle{width: width, height: height}
}

func (r Rectangle) Width() float64 {
	return r.width
}

func (r Rectangle) Height() float64 {
	return r.height
}

func (r Rectangle) Area() float64 {
	return r.width * r.height
}

func (r Rectangle) Perimeter() float64 {
	return 2 * (r.width + r.height)
}

func (r Rectangle) String() string {
	return fmt.Sprintf("Rectangle(width=%v, height=%v)", r.width, r.height)
}
