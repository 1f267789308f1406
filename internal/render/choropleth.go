package render

import (
	"fmt"
	"html/template"
	"math"
	"os"

	"uptake/internal/geo"
)

// Tile geometry for the cartogram SVG, in pixels.
const (
	tileSize = 64
	tileGap  = 5
	mapPad   = 20
)

// yellow-to-red ramp endpoints (YlOrRd-style).
var (
	rampLow  = [3]int{255, 255, 204}
	rampHigh = [3]int{189, 0, 38}
)

type tileView struct {
	ID    string
	Name  string
	X     int
	Y     int
	Fill  template.CSS
	Value float64
}

type mapView struct {
	Title   string
	Caption string
	Width   int
	Height  int
	LowHex  template.CSS
	HighHex template.CSS
	Min     float64
	Max     float64
	Tiles   []tileView
	LegendX int
	LegendY int
}

var choroplethTmpl = template.Must(template.New("choropleth").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 2em; background: #fafafa; }
h1 { font-size: 1.2em; }
text.tile-label { font-size: 13px; text-anchor: middle; dominant-baseline: middle; fill: #222; }
text.legend { font-size: 12px; fill: #444; }
rect.tile:hover { stroke: #000; stroke-width: 2; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<svg width="{{.Width}}" height="{{.Height}}" role="img" aria-label="{{.Title}}">
<defs>
<linearGradient id="ramp" x1="0" y1="0" x2="1" y2="0">
<stop offset="0" stop-color="{{.LowHex}}"/>
<stop offset="1" stop-color="{{.HighHex}}"/>
</linearGradient>
</defs>
{{range .Tiles}}<g>
<rect class="tile" x="{{.X}}" y="{{.Y}}" width="64" height="64" rx="4" fill="{{.Fill}}" stroke="#999">
<title>{{.Name}}: {{printf "%.1f" .Value}}</title>
</rect>
<text class="tile-label" x="{{.X}}" y="{{.Y}}" dx="32" dy="32">{{.ID}}</text>
</g>
{{end}}
<rect x="{{.LegendX}}" y="{{.LegendY}}" width="240" height="14" fill="url(#ramp)" stroke="#999"/>
<text class="legend" x="{{.LegendX}}" y="{{.LegendY}}" dy="30">{{printf "%.1f" .Min}}</text>
<text class="legend" x="{{.LegendX}}" y="{{.LegendY}}" dx="240" dy="30" text-anchor="end">{{printf "%.1f" .Max}}</text>
<text class="legend" x="{{.LegendX}}" y="{{.LegendY}}" dy="-6">{{.Caption}}</text>
</svg>
</body>
</html>
`))

// ChoroplethMap writes a self-contained HTML document with an inline SVG
// tile cartogram of the given regions, colored by value, plus a legend. The
// document renders without any network access.
func ChoroplethMap(title, caption string, regions []geo.Region, path string) error {
	if len(regions) == 0 {
		return fmt.Errorf("choropleth needs at least one region")
	}

	min, max := regions[0].Value, regions[0].Value
	maxRow, maxCol := 0, 0
	for _, r := range regions {
		min = math.Min(min, r.Value)
		max = math.Max(max, r.Value)
		if r.Row > maxRow {
			maxRow = r.Row
		}
		if r.Col > maxCol {
			maxCol = r.Col
		}
	}

	tiles := make([]tileView, 0, len(regions))
	for _, r := range regions {
		tiles = append(tiles, tileView{
			ID:    r.ID,
			Name:  r.Name,
			X:     mapPad + r.Col*(tileSize+tileGap),
			Y:     mapPad + r.Row*(tileSize+tileGap),
			Fill:  template.CSS(rampColor(r.Value, min, max)),
			Value: r.Value,
		})
	}

	width := mapPad*2 + (maxCol+1)*(tileSize+tileGap)
	height := mapPad*2 + (maxRow+1)*(tileSize+tileGap) + 80

	view := mapView{
		Title:   title,
		Caption: caption,
		Width:   width,
		Height:  height,
		LowHex:  template.CSS(hex(rampLow)),
		HighHex: template.CSS(hex(rampHigh)),
		Min:     min,
		Max:     max,
		Tiles:   tiles,
		LegendX: mapPad,
		LegendY: height - 50,
	}

	if err := ensureDir(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if err := choroplethTmpl.Execute(f, view); err != nil {
		f.Close()
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}

// rampColor interpolates the yellow-to-red ramp for v in [min, max].
func rampColor(v, min, max float64) string {
	t := 0.0
	if max > min {
		t = (v - min) / (max - min)
	}
	var rgb [3]int
	for i := 0; i < 3; i++ {
		rgb[i] = rampLow[i] + int(t*float64(rampHigh[i]-rampLow[i]))
	}
	return hex(rgb)
}

func hex(rgb [3]int) string {
	return fmt.Sprintf("#%02x%02x%02x", rgb[0], rgb[1], rgb[2])
}
