// Command gepard-demo renders a handful of shapes exercising the
// canvas-style façade and writes the result to a PNG file.
package main

import (
	"flag"
	"log"
	"math"
	"os"

	gepard "github.com/szledan/gepard-sub001"
	_ "github.com/szledan/gepard-sub001/backend/native"
	"github.com/szledan/gepard-sub001/stroke"
)

func main() {
	var (
		width  = flag.Int("width", 800, "image width")
		height = flag.Int("height", 600, "image height")
		output = flag.String("output", "demo.png", "output file")
	)
	flag.Parse()

	canvas, err := gepard.NewCanvas(*width, *height)
	if err != nil {
		log.Fatalf("gepard.NewCanvas: %v", err)
	}
	defer canvas.Close()

	if err := canvas.Clear(gepard.RGB(0x10, 0x12, 0x18)); err != nil {
		log.Fatalf("Clear: %v", err)
	}

	drawCircles(canvas)
	drawRoundedLookingPanel(canvas)
	drawCurve(canvas)
	drawStar(canvas, 600, 420, 90, 45)

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("os.Create: %v", err)
	}
	defer f.Close()

	if err := canvas.EncodePNG(f); err != nil {
		log.Fatalf("EncodePNG: %v", err)
	}
	log.Printf("wrote %s (%dx%d)", *output, *width, *height)
}

func drawCircles(c *gepard.Canvas) {
	colors := []gepard.Color{
		gepard.RGBA(255, 80, 80, 200),
		gepard.RGBA(80, 255, 80, 200),
		gepard.RGBA(80, 80, 255, 200),
	}
	centers := [][2]float64{{150, 150}, {200, 150}, {175, 200}}
	for i, center := range centers {
		c.BeginPath()
		c.Arc(center[0], center[1], 60, 0, 2*math.Pi, false)
		c.SetFillColor(colors[i])
		if err := c.Fill(); err != nil {
			log.Fatalf("Fill circle %d: %v", i, err)
		}
	}
}

func drawRoundedLookingPanel(c *gepard.Canvas) {
	c.SetFillColor(gepard.RGB(255, 204, 0))
	if err := c.FillRect(350, 100, 120, 80); err != nil {
		log.Fatalf("FillRect: %v", err)
	}

	c.BeginPath()
	c.Rect(350, 100, 120, 80)
	c.SetLineWidth(4)
	c.SetStrokeColor(gepard.White)
	if err := c.Stroke(); err != nil {
		log.Fatalf("Stroke panel border: %v", err)
	}
}

func drawCurve(c *gepard.Canvas) {
	c.BeginPath()
	c.MoveTo(150, 400)
	c.BezierCurveTo(200, 350, 250, 450, 300, 400)
	c.BezierCurveTo(350, 370, 400, 430, 450, 400)
	c.SetLineWidth(6)
	c.SetLineCap(stroke.RoundCap)
	c.SetStrokeColor(gepard.RGB(255, 128, 0))
	if err := c.Stroke(); err != nil {
		log.Fatalf("Stroke curve: %v", err)
	}
}

func drawStar(c *gepard.Canvas, cx, cy, outerR, innerR float64) {
	const points = 5
	c.BeginPath()
	for i := 0; i < points*2; i++ {
		angle := float64(i)*math.Pi/points - math.Pi/2
		r := outerR
		if i%2 == 1 {
			r = innerR
		}
		x := cx + r*math.Cos(angle)
		y := cy + r*math.Sin(angle)
		if i == 0 {
			c.MoveTo(x, y)
		} else {
			c.LineTo(x, y)
		}
	}
	c.ClosePath()
	c.SetFillColor(gepard.RGB(255, 255, 0))
	if err := c.Fill(); err != nil {
		log.Fatalf("Fill star: %v", err)
	}
}
