// +build ignore

package main

import (
	"context"
	"fmt"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/vdobler/graphcalc"
)

var gallery = []struct {
	formulas, variables, ranges string
}{
	// Winding road.
	{"sin(x)+x^2/10-1; @dash cos(x)", "", "-10..10"},
	// Circle and disc.
	{"x^2+y^2==4^2; @lightblue x^2+y^2<3^2", "", "-6..6; -6..6"},
	// Heat map with contour lines.
	{"@black sin(x)*cos(y)*r", "r = sqrt(x^2+y^2)", "-8..8; -6..6"},
	// Implicit curves sharing a variable.
	{"@red y^2 = x^3 - a*x + 1; @blue @dot x*y = a", "a = 2", "-4..4; -4..4"},
	// Discontinuities and undefined regions.
	{"tan(x); @purple sqrt(x); 1/x", "", "-5..5; -5..5"},
}

func main() {
	ctx := context.Background()
	style := graphcalc.DefaultStyle(10)
	for i, g := range gallery {
		in, err := graphcalc.ParseInput(g.formulas, g.variables, g.ranges)
		if err != nil {
			panic(err)
		}
		o, err := graphcalc.Prepare(in, 600, 480, style)
		if err != nil {
			panic(err)
		}
		if err := o.Run(ctx); err != nil {
			panic(err)
		}
		if err := o.Render(ctx); err != nil {
			panic(err)
		}
		text, _ := graphcalc.ResultText(o.Calcs)
		fmt.Printf("%d: %s\n", i, text)
		write(o, fmt.Sprintf("testdata/gallery-%02d.png", i))
	}
}

func write(o *graphcalc.OutputState, name string) {
	if err := imgio.Save(name, o.Image, imgio.PNGEncoder()); err != nil {
		panic(err)
	}
}
