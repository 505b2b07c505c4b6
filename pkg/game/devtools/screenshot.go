package devtools

import (
	"fmt"
	"html"
	"os"
	"strings"
	"time"

	"turtledepths/pkg/engine/world"
	"turtledepths/pkg/game/renderer"
	"turtledepths/pkg/game/state"
)

var styleClasses = map[renderer.TextStyle]string{
	renderer.StyleWall:      "wall",
	renderer.StyleFloor:     "floor",
	renderer.StyleWater:     "water",
	renderer.StyleDeepWater: "deep",
	renderer.StyleAirPocket: "air",
	renderer.StyleTreasure:  "treasure",
	renderer.StyleStairs:    "stairs",
	renderer.StyleMerchant:  "merchant",
	renderer.StylePlayer:    "player",
}

// ScreenshotHTML renders the dive's current floor as a standalone HTML page
func ScreenshotHTML(d *state.Dive) string {
	var b strings.Builder

	b.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Turtle Depths - Screenshot</title>
    <style>
        body { background-color: #081428; color: #eee; font-family: 'Courier New', monospace; padding: 20px; }
        .header { color: #bb86fc; font-size: 18px; margin-bottom: 10px; }
        .map-row { white-space: pre; line-height: 1.2; font-size: 16px; }
        .player { color: #28c878; font-weight: bold; }
        .wall { color: #666; }
        .floor { color: #968c6e; }
        .water { color: #2878c8; }
        .deep { color: #0f3282; font-weight: bold; }
        .air { color: #b4f0ff; font-weight: bold; }
        .treasure { color: #ffd23c; font-weight: bold; }
        .stairs { color: #64ff64; }
        .merchant { color: #dc78ff; font-weight: bold; }
        .vitals { margin-top: 20px; color: #888; }
        .message { color: #ccc; margin: 5px 0; }
    </style>
</head>
<body>
`)

	fmt.Fprintf(&b, `    <div class="header">Depth %d</div>`+"\n", d.Depth)

	player := d.Player
	for y := 0; y < d.Level.Height(); y++ {
		b.WriteString(`    <div class="map-row">`)
		for x := 0; x < d.Level.Width(); x++ {
			g, style := renderer.CellAt(d.Level, world.Pt(x, y), &player)
			fmt.Fprintf(&b, `<span class="%s">%s</span>`, styleClasses[style], html.EscapeString(string(g)))
		}
		b.WriteString("</div>\n")
	}

	fmt.Fprintf(&b, `    <div class="vitals">Oxygen %d/%d, Health %d/%d, Gold %d</div>`+"\n",
		d.Oxygen, d.MaxOxygen, d.Health, d.MaxHealth, d.Gold)
	for _, msg := range d.Messages {
		fmt.Fprintf(&b, `    <div class="message">%s</div>`+"\n", html.EscapeString(msg))
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

// SaveScreenshotHTML saves the current floor as a timestamped HTML file
// and returns its name.
func SaveScreenshotHTML(d *state.Dive) (string, error) {
	filename := fmt.Sprintf("screenshot-%s.html", time.Now().Format("20060102-150405"))
	if err := os.WriteFile(filename, []byte(ScreenshotHTML(d)), 0644); err != nil {
		return "", err
	}
	return filename, nil
}
