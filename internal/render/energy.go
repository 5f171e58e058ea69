package render

import (
	"fmt"
	"image"

	"github.com/Tiliavir/paperdash/internal/energy"
)

const (
	energyBarHeight = 18
	energyYStart    = 20
	// euroPixels is the bar length per unit of cost.
	euroPixels = 5
)

// Energy draws the monthly electricity summary.
func Energy(rep energy.Report) (*image.Paletted, error) {
	c, err := NewCanvas(Width, Height, fontSize, headerSize)
	if err != nil {
		return nil, err
	}

	y := energyYStart
	c.Text(xMargin, y, "Monthly Electricity Summary", true)
	y += lineHeight + 10

	if m := rep.ThisMonth; m != nil {
		y = costBar(c, fmt.Sprintf("This Month (%s)", m.Key), m.Cost, y, true)
	}
	if m := rep.LastMonth; m != nil {
		y = costBar(c, fmt.Sprintf("Last Month (%s)", m.Key), m.Cost, y, false)
	}
	if m := rep.BestMonth; m != nil {
		costBar(c, fmt.Sprintf("Best Month (%s)", m.Key), m.Cost, y, false)
	}
	return c.Image(), nil
}

// costBar draws the label with the bar and the amount on the line below.
func costBar(c *Canvas, label string, cost float64, y int, bold bool) int {
	c.Text(xMargin, y, label, bold)
	y += lineHeight + 4
	n := costBarLength(cost)
	if n > 0 {
		c.Fill(image.Rect(xMargin, y, xMargin+n, y+energyBarHeight))
	}
	c.Text(xMargin+n+10, y-3, fmt.Sprintf("€%.2f", cost), false)
	return y + energyBarHeight + lineSpacing
}

func costBarLength(cost float64) int {
	n := int(cost * euroPixels)
	if n > barWidth {
		return barWidth
	}
	if n < 0 {
		return 0
	}
	return n
}
