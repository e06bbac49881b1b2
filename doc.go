// Package graphcalc is the core of a graphing calculator: it samples
// formulas over a pixel grid and renders the results into an image.
//
// Calculators
//
// Every formula becomes a Calculator. NewCalculator looks at the formula
// and the variables it uses:
//   - Function1D    a function of x only, drawn as a curve.
//   - Function2D    a function of x and y or an equation. Depending on the
//                   Mode it is drawn as
//                     Scalar:   heat map and contour lines,
//                     Boolean:  the filled region where it is nonzero,
//                     Equation: the pixels where both sides are equal.
//
// Equations are found by sign changes of the difference of both sides on a
// grid shifted by half a pixel, so thin curves do not get lost between
// samples.
//
// Ranges
//
// A Range maps values to pixels. The GraphRanges of X, Y and Z add how
// the axis is drawn and whether its bounds come from the data. Grid lines
// and contour intervals are chosen by ChooseSpacing from the 1, 2.5, 5
// progression of nice numbers.
//
// Refreshing
//
// Prepare validates an Input and builds the OutputState of one frame; Run
// and Render fill it. A Refresher does the same on a background worker and
// publishes finished frames, collapsing requests that arrive while it is
// busy.
package graphcalc
