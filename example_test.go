package valuecurve_test

import (
	"fmt"

	"honnef.co/go/valuecurve"
)

func ExampleValueCurve() {
	// An editor works on a curve normalized to the unit square.
	c := valuecurve.NewValueCurve(valuecurve.ModeStandard, valuecurve.Rect{0, 0, 1, 1})
	c.AddPoint(valuecurve.Pt(0, 0), valuecurve.Linear)
	c.AddPoint(valuecurve.Pt(1, 1), valuecurve.Linear)

	// Double-clicking the middle of the segment inserts a point there
	// without changing the traced shape.
	c.SplitSegment(0, 0.5, false)
	p, _ := c.PointAt(1)
	fmt.Println("midpoint:", p.Position)

	y, _ := c.ValueAt(0.25)
	fmt.Printf("y(0.25) = %.4f\n", y)

	// Baking resamples the curve into a table the consumer indexes
	// directly, without evaluating any Bézier math.
	tbl, err := valuecurve.NewSampleTable(64)
	if err != nil {
		panic(err)
	}
	if err := c.FillTable(tbl); err != nil {
		panic(err)
	}
	fmt.Printf("table: %.4f ... %.4f\n", tbl.Lookup(0), tbl.Lookup(1))

	// Output:
	// midpoint: (0.5, 0.5)
	// y(0.25) = 0.2500
	// table: 0.0000 ... 1.0000
}
