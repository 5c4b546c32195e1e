// Package chart renders the self-assessment radar chart and its fallbacks.
// The renderer is total in practice: empty input or a drawing failure
// produces a "No Data Available" placeholder image at the requested path,
// so the assembler always receives an artifact once rendering is invoked.
package chart

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/fogleman/gg"
)

const (
	radarSize   = 800
	radarRadius = 270
	scaleMax    = 10

	// DefaultTitle is used when the caller does not supply one.
	DefaultTitle = "Health & Fitness Assessment"
)

// Renderer produces chart images from scale-response data.
type Renderer interface {
	// Render writes a radar chart (or placeholder) PNG to outPath and
	// returns the path. An error is returned only when even the
	// placeholder cannot be written.
	Render(scales map[string]int, outPath, title string) (string, error)

	// RenderComparison writes a dual-polygon radar of current vs target
	// scores over the union of their categories.
	RenderComparison(current, target map[string]int, outPath, title string) (string, error)

	// RenderProgress writes a week-by-week line chart of tracked metrics.
	RenderProgress(series map[string][]float64, outPath, title string) (string, error)

	// RenderBreakdown writes a macronutrient pie chart; empty input uses a
	// default 25/50/25 split.
	RenderBreakdown(macros map[string]float64, outPath, title string) (string, error)
}

type ggRenderer struct{}

// NewRenderer returns the default image renderer.
func NewRenderer() Renderer {
	return ggRenderer{}
}

func (ggRenderer) Render(scales map[string]int, outPath, title string) (string, error) {
	if title == "" {
		title = DefaultTitle
	}
	if len(scales) == 0 {
		return renderPlaceholder(outPath, title)
	}
	if err := renderRadar(scales, outPath, title); err != nil {
		return renderPlaceholder(outPath, title)
	}
	return outPath, nil
}

func renderRadar(scales map[string]int, outPath, title string) error {
	// Deterministic category order regardless of map iteration.
	categories := make([]string, 0, len(scales))
	for k := range scales {
		categories = append(categories, k)
	}
	sort.Strings(categories)

	dc := gg.NewContext(radarSize, radarSize)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	cx := float64(radarSize) / 2
	cy := float64(radarSize)/2 + 20

	// Concentric grid rings every 2 points.
	dc.SetRGBA(0.5, 0.5, 0.5, 0.35)
	dc.SetLineWidth(1)
	for ring := 2; ring <= scaleMax; ring += 2 {
		dc.DrawCircle(cx, cy, radarRadius*float64(ring)/scaleMax)
		dc.Stroke()
	}

	n := len(categories)
	angle := func(i int) float64 {
		// Start at the top, proceed clockwise.
		return -math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
	}
	point := func(i, value int) (float64, float64) {
		r := radarRadius * float64(value) / scaleMax
		return cx + r*math.Cos(angle(i)), cy + r*math.Sin(angle(i))
	}

	// Spokes and category labels.
	for i, cat := range categories {
		ex := cx + radarRadius*math.Cos(angle(i))
		ey := cy + radarRadius*math.Sin(angle(i))
		dc.SetRGBA(0.5, 0.5, 0.5, 0.35)
		dc.DrawLine(cx, cy, ex, ey)
		dc.Stroke()

		lx := cx + (radarRadius+30)*math.Cos(angle(i))
		ly := cy + (radarRadius+30)*math.Sin(angle(i))
		dc.SetRGB(0.1, 0.1, 0.1)
		dc.DrawStringAnchored(FormatCategoryName(cat), lx, ly, 0.5, 0.5)
	}

	// Score polygon. Drawing clamps into [1,10]; validation happened at
	// extraction time, this only guards the geometry.
	for i, cat := range categories {
		x, y := point(i, clampScale(scales[cat]))
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.ClosePath()
	dc.SetRGBA(0.18, 0.53, 0.67, 0.25)
	dc.FillPreserve()
	dc.SetRGBA(0.18, 0.53, 0.67, 1)
	dc.SetLineWidth(2)
	dc.Stroke()

	// Vertex markers and score annotations.
	for i, cat := range categories {
		v := clampScale(scales[cat])
		x, y := point(i, v)
		dc.SetRGBA(0.18, 0.53, 0.67, 1)
		dc.DrawCircle(x, y, 4)
		dc.Fill()
		dc.SetRGB(0.1, 0.1, 0.1)
		dc.DrawStringAnchored(strconv.Itoa(v), x, y-12, 0.5, 0.5)
	}

	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored(title, cx, 28, 0.5, 0.5)

	return dc.SavePNG(outPath)
}

func (ggRenderer) RenderComparison(current, target map[string]int, outPath, title string) (string, error) {
	if title == "" {
		title = "Current vs Target Scores"
	}
	if len(current) == 0 && len(target) == 0 {
		return renderPlaceholder(outPath, title)
	}
	if err := renderComparison(current, target, outPath, title); err != nil {
		return renderPlaceholder(outPath, title)
	}
	return outPath, nil
}

func renderComparison(current, target map[string]int, outPath, title string) error {
	// Union of both key sets; a category missing from one side plots as 0.
	union := map[string]struct{}{}
	for k := range current {
		union[k] = struct{}{}
	}
	for k := range target {
		union[k] = struct{}{}
	}
	categories := make([]string, 0, len(union))
	for k := range union {
		categories = append(categories, k)
	}
	sort.Strings(categories)

	dc := gg.NewContext(radarSize, radarSize)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	cx := float64(radarSize) / 2
	cy := float64(radarSize)/2 + 20

	dc.SetRGBA(0.5, 0.5, 0.5, 0.35)
	dc.SetLineWidth(1)
	for ring := 2; ring <= scaleMax; ring += 2 {
		dc.DrawCircle(cx, cy, radarRadius*float64(ring)/scaleMax)
		dc.Stroke()
	}

	n := len(categories)
	angle := func(i int) float64 {
		return -math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
	}
	point := func(i, value int) (float64, float64) {
		if value < 0 {
			value = 0
		}
		if value > scaleMax {
			value = scaleMax
		}
		r := radarRadius * float64(value) / scaleMax
		return cx + r*math.Cos(angle(i)), cy + r*math.Sin(angle(i))
	}

	for i, cat := range categories {
		ex := cx + radarRadius*math.Cos(angle(i))
		ey := cy + radarRadius*math.Sin(angle(i))
		dc.SetRGBA(0.5, 0.5, 0.5, 0.35)
		dc.DrawLine(cx, cy, ex, ey)
		dc.Stroke()

		lx := cx + (radarRadius+30)*math.Cos(angle(i))
		ly := cy + (radarRadius+30)*math.Sin(angle(i))
		dc.SetRGB(0.1, 0.1, 0.1)
		dc.DrawStringAnchored(FormatCategoryName(cat), lx, ly, 0.5, 0.5)
	}

	polygon := func(scores map[string]int, r, g, b float64) {
		for i, cat := range categories {
			x, y := point(i, scores[cat])
			if i == 0 {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
		}
		dc.ClosePath()
		dc.SetRGBA(r, g, b, 0.15)
		dc.FillPreserve()
		dc.SetRGBA(r, g, b, 1)
		dc.SetLineWidth(2)
		dc.Stroke()
	}
	polygon(current, 0.18, 0.53, 0.67)
	polygon(target, 0.95, 0.56, 0.00)

	// Legend.
	legend := []struct {
		label   string
		r, g, b float64
	}{
		{"Current Scores", 0.18, 0.53, 0.67},
		{"Target Scores", 0.95, 0.56, 0.00},
	}
	for i, entry := range legend {
		ly := 56 + 18*float64(i)
		dc.SetRGB(entry.r, entry.g, entry.b)
		dc.DrawLine(float64(radarSize)-180, ly, float64(radarSize)-160, ly)
		dc.Stroke()
		dc.SetRGB(0.1, 0.1, 0.1)
		dc.DrawStringAnchored(entry.label, float64(radarSize)-154, ly, 0, 0.5)
	}

	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored(title, cx, 28, 0.5, 0.5)

	return dc.SavePNG(outPath)
}

func (ggRenderer) RenderProgress(series map[string][]float64, outPath, title string) (string, error) {
	if title == "" {
		title = "Progress Tracking"
	}
	if len(series) == 0 {
		return renderPlaceholder(outPath, title)
	}
	if err := renderProgress(series, outPath, title); err != nil {
		return renderPlaceholder(outPath, title)
	}
	return outPath, nil
}

var seriesColors = [][3]float64{
	{0.18, 0.53, 0.67},
	{0.64, 0.23, 0.45},
	{0.95, 0.56, 0.00},
	{0.78, 0.24, 0.11},
	{0.29, 0.56, 0.89},
}

func renderProgress(series map[string][]float64, outPath, title string) error {
	const w, h = 900, 600
	const marginL, marginR, marginT, marginB = 80.0, 40.0, 60.0, 60.0

	names := make([]string, 0, len(series))
	weeks := 0
	for name, vals := range series {
		names = append(names, name)
		if len(vals) > weeks {
			weeks = len(vals)
		}
	}
	sort.Strings(names)
	if weeks < 2 {
		return fmt.Errorf("progress chart needs at least two samples")
	}

	dc := gg.NewContext(w, h)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	plotW := float64(w) - marginL - marginR
	plotH := float64(h) - marginT - marginB
	xAt := func(i int) float64 { return marginL + plotW*float64(i)/float64(weeks-1) }
	yAt := func(v float64) float64 { return marginT + plotH*(1-v/scaleMax) }

	// Axes.
	dc.SetRGB(0.2, 0.2, 0.2)
	dc.SetLineWidth(1.5)
	dc.DrawLine(marginL, marginT, marginL, marginT+plotH)
	dc.DrawLine(marginL, marginT+plotH, marginL+plotW, marginT+plotH)
	dc.Stroke()
	for v := 0; v <= scaleMax; v += 2 {
		dc.DrawStringAnchored(strconv.Itoa(v), marginL-16, yAt(float64(v)), 0.5, 0.5)
	}
	for i := 0; i < weeks; i++ {
		dc.DrawStringAnchored("W"+strconv.Itoa(i+1), xAt(i), marginT+plotH+20, 0.5, 0.5)
	}

	for si, name := range names {
		c := seriesColors[si%len(seriesColors)]
		dc.SetRGB(c[0], c[1], c[2])
		dc.SetLineWidth(2)
		vals := series[name]
		for i, v := range vals {
			x, y := xAt(i), yAt(v)
			if i == 0 {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
		}
		dc.Stroke()
		// Legend entry.
		ly := marginT + 18*float64(si)
		dc.DrawLine(marginL+plotW-140, ly, marginL+plotW-120, ly)
		dc.Stroke()
		dc.DrawStringAnchored(FormatCategoryName(name), marginL+plotW-114, ly, 0, 0.5)
	}

	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored(title, float64(w)/2, 28, 0.5, 0.5)

	return dc.SavePNG(outPath)
}

func (ggRenderer) RenderBreakdown(macros map[string]float64, outPath, title string) (string, error) {
	if title == "" {
		title = "Daily Macronutrient Breakdown"
	}
	if len(macros) == 0 {
		macros = map[string]float64{"Protein": 25, "Carbs": 50, "Fats": 25}
	}
	if err := renderBreakdown(macros, outPath, title); err != nil {
		return renderPlaceholder(outPath, title)
	}
	return outPath, nil
}

func renderBreakdown(macros map[string]float64, outPath, title string) error {
	const w, h = 800, 640
	cx, cy, radius := float64(w)/2, float64(h)/2+20, 220.0

	labels := make([]string, 0, len(macros))
	total := 0.0
	for name, v := range macros {
		if v <= 0 {
			continue
		}
		labels = append(labels, name)
		total += v
	}
	sort.Strings(labels)
	if total <= 0 {
		return fmt.Errorf("breakdown chart needs positive shares")
	}

	dc := gg.NewContext(w, h)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	start := -math.Pi / 2
	for i, name := range labels {
		share := macros[name] / total
		end := start + share*2*math.Pi
		c := seriesColors[i%len(seriesColors)]

		dc.MoveTo(cx, cy)
		dc.DrawArc(cx, cy, radius, start, end)
		dc.ClosePath()
		dc.SetRGB(c[0], c[1], c[2])
		dc.Fill()

		mid := (start + end) / 2
		lx := cx + (radius+40)*math.Cos(mid)
		ly := cy + (radius+40)*math.Sin(mid)
		dc.SetRGB(0.1, 0.1, 0.1)
		dc.DrawStringAnchored(fmt.Sprintf("%s %.1f%%", name, share*100), lx, ly, 0.5, 0.5)

		start = end
	}

	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored(title, float64(w)/2, 28, 0.5, 0.5)

	return dc.SavePNG(outPath)
}

// renderPlaceholder writes the "no data" stand-in image. This is the last
// line of defense: if this write fails, the error propagates.
func renderPlaceholder(outPath, title string) (string, error) {
	const w, h = 800, 600

	dc := gg.NewContext(w, h)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	dc.SetRGBA(0.83, 0.83, 0.83, 0.8)
	dc.DrawRoundedRectangle(float64(w)/2-180, float64(h)/2-60, 360, 120, 12)
	dc.Fill()

	dc.SetRGB(0.15, 0.15, 0.15)
	dc.DrawStringAnchored("No Data Available", float64(w)/2, float64(h)/2-12, 0.5, 0.5)
	dc.DrawStringAnchored("for Chart Generation", float64(w)/2, float64(h)/2+12, 0.5, 0.5)

	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored(title, float64(w)/2, 28, 0.5, 0.5)

	if err := dc.SavePNG(outPath); err != nil {
		return "", fmt.Errorf("writing placeholder chart: %w", err)
	}
	return outPath, nil
}

func clampScale(v int) int {
	if v < 1 {
		return 1
	}
	if v > scaleMax {
		return scaleMax
	}
	return v
}
