package graphcalc

import (
	"fmt"
	"strings"
)

// Probe describes the results under the pixel (px, py) of the frame, py
// counted from the top: the value and position for a single calculator,
// the values of all calculators at one X position otherwise. It returns ""
// where there is nothing to show.
func (o *OutputState) Probe(px, py int) string {
	if len(o.Calcs) == 0 {
		return ""
	}
	row := o.YRange.PxCount - 1 - py
	x := o.XRange.PxToValue(float64(px))

	if len(o.Calcs) == 1 {
		c := o.Calcs[0]
		v, ok := c.ValueAt(px, row)
		if !ok {
			return ""
		}
		if _, twoD := c.(*Function2D); twoD {
			y := o.YRange.PxToValue(float64(row))
			return fmt.Sprintf("%s @ (%s, %s)", formatG(v, -1), formatG(x, 4), formatG(y, 4))
		}
		return fmt.Sprintf("%s @ X = %s", formatG(v, -1), formatG(x, 8))
	}

	prec := 5
	if len(o.Calcs) == 2 {
		prec = 8
	}
	values := make([]string, len(o.Calcs))
	for i, c := range o.Calcs {
		v, ok := c.ValueAt(px, row)
		if !ok {
			values[i] = "NaN"
			continue
		}
		values[i] = formatG(v, prec)
	}
	return fmt.Sprintf("%s @ X = %s", strings.Join(values, "; "), formatG(x, 4))
}
