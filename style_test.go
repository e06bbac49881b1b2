package graphcalc

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vdobler/graphcalc/parse"
	"golang.org/x/image/colornames"
	"gonum.org/v1/plot/vg"
)

func TestColorByName(t *testing.T) {
	c, ok := ColorByName("DarkGreen")
	require.True(t, ok)
	require.Equal(t, colornames.Darkgreen, toRGBA(c))

	c, ok = ColorByName("transparent")
	require.True(t, ok)
	require.True(t, isTransparent(c))

	_, ok = ColorByName("dash")
	require.False(t, ok)
}

func TestDashesByName(t *testing.T) {
	d, ok := DashesByName("solid")
	require.True(t, ok)
	require.Empty(t, d)

	for _, name := range []string{"dash", "DOT", "dashdot", "dashdotdot"} {
		d, ok := DashesByName(name)
		require.True(t, ok, name)
		require.NotEmpty(t, d, name)
	}

	_, ok = DashesByName("red")
	require.False(t, ok)
}

var makePenTests = []struct {
	src   string
	index int
	color color.RGBA
	width vg.Length
	dash  bool
}{
	{"x", 0, colornames.Darkgreen, 2, false},
	{"x", 1, colornames.Teal, 3, false},
	{"x", 2, colornames.Mediumblue, 1, false},
	{"x", 15, colornames.Darkgreen, 2, false},
	{"@blue x", 0, colornames.Blue, 2, false},
	{"@Salmon @dot @4 x", 3, colornames.Salmon, 4, true},
	{`@"label" x`, 0, colornames.Darkgreen, 2, false},
	{"@red @7 x", -1, colornames.Red, 1, false},
	{"x", -1, colornames.Midnightblue, 1, false},
}

func TestMakePen(t *testing.T) {
	style := DefaultStyle(10)
	for _, tc := range makePenTests {
		t.Run(tc.src, func(t *testing.T) {
			e, err := parse.Expr(tc.src)
			require.NoError(t, err)
			pen := style.MakePen(e, tc.index)
			require.Equal(t, tc.color, toRGBA(pen.Color))
			require.Equal(t, tc.width, pen.Width)
			require.Equal(t, tc.dash, len(pen.Dashes) > 0)
		})
	}
}

func TestGridPen(t *testing.T) {
	axis := DefaultStyle(10).MakePen(nil, -1)
	grid := GridPen(axis)
	require.EqualValues(t, 1, grid.Width)
	_, _, _, a := grid.Color.RGBA()
	require.Equal(t, uint32(0x8080), a)
}

func TestLighten(t *testing.T) {
	require.Equal(t, color.RGBA{64, 64, 64, 0xff}, lighten(color.Black))
	require.Equal(t, color.RGBA{191, 64, 64, 0xff}, lighten(colornames.Red))
}
