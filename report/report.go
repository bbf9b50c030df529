// Package report turns named shapes into labeled measurement lines.
package report

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charlieparkes/shapes/geometry"
	"github.com/rs/zerolog/log"
)

// Entry is a shape together with the name used to label its lines.
type Entry struct {
	Name  string
	Shape geometry.Shape
}

type Line struct {
	Label string
	Value float64
}

func (l Line) String() string {
	return l.Label + ": " + FormatValue(l.Value)
}

// Default is the fixed scenario: a circle of radius 5, then a 4x7 rectangle.
func Default() []Entry {
	return []Entry{
		{Name: "Circle", Shape: geometry.NewCircle(5)},
		{Name: "Rectangle", Shape: geometry.NewRectangle(4, 7)},
	}
}

// Measure emits an area line then a perimeter line for every entry, keeping
// the entries' order.
func Measure(entries []Entry) []Line {
	lines := make([]Line, 0, 2*len(entries))
	for _, e := range entries {
		area, perim := e.Shape.Area(), e.Shape.Perimeter()
		log.Debug().
			Str("shape", e.Name).
			Str("value", fmt.Sprint(e.Shape)).
			Float64("area", area).
			Float64("perimeter", perim).
			Msg("measured")
		lines = append(lines,
			Line{Label: e.Name + " Area", Value: area},
			Line{Label: e.Name + " Perimeter", Value: perim},
		)
	}
	return lines
}

// FormatValue prints the shortest decimal that round-trips v. Whole numbers
// keep a trailing ".0".
func FormatValue(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if math.IsNaN(v) || math.IsInf(v, 0) || strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}

func Write(w io.Writer, lines []Line) error {
	bw := bufio.NewWriter(w)
	for _, l := range lines {
		if _, err := bw.WriteString(l.String() + "\n"); err != nil {
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	return nil
}
