package tui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"turtledepths/pkg/engine/terminal"
	"turtledepths/pkg/engine/world"
	"turtledepths/pkg/game/depth"
	"turtledepths/pkg/game/renderer"
	"turtledepths/pkg/game/state"
	gameworld "turtledepths/pkg/game/world"
)

// Width of the oxygen and health gauges, in cells.
const gaugeWidth = 20

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	colorWall      color.Style
	colorFloor     color.Style
	colorWater     color.Style
	colorDeepWater color.Style
	colorAirPocket color.Style
	colorTreasure  color.Style
	colorStairs    color.Style
	colorMerchant  color.Style
	colorPlayer    color.Style
	colorSubtle    color.Style
	colorAction    color.Style
	colorDenied    color.Style

	// Plain disables ANSI styling, for dumps and non-interactive output.
	Plain bool
	Out   io.Writer
}

// New creates a new TUI renderer writing to stdout. Styling is off when
// stdout is not a terminal.
func New() *TUIRenderer {
	return &TUIRenderer{
		Plain: !terminal.IsInteractive(),
		Out:   os.Stdout,
	}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorWall = color.Style{color.FgGray}
	t.colorFloor = color.Style{color.FgWhite}
	t.colorWater = color.Style{color.FgCyan}
	t.colorDeepWater = color.Style{color.FgBlue, color.OpBold}
	t.colorAirPocket = color.Style{color.FgCyan, color.OpUnderscore}
	t.colorTreasure = color.Style{color.FgYellow, color.OpBold}
	t.colorStairs = color.Style{color.FgGreen}
	t.colorMerchant = color.Style{color.FgMagenta, color.OpBold}
	t.colorPlayer = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	if t.Plain {
		return
	}
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	if t.Plain {
		return text
	}

	switch style {
	case renderer.StyleWall:
		return t.colorWall.Sprint(text)
	case renderer.StyleFloor:
		return t.colorFloor.Sprint(text)
	case renderer.StyleWater:
		return t.colorWater.Sprint(text)
	case renderer.StyleDeepWater:
		return t.colorDeepWater.Sprint(text)
	case renderer.StyleAirPocket:
		return t.colorAirPocket.Sprint(text)
	case renderer.StyleTreasure:
		return t.colorTreasure.Sprint(text)
	case renderer.StyleStairs:
		return t.colorStairs.Sprint(text)
	case renderer.StyleMerchant:
		return t.colorMerchant.Sprint(text)
	case renderer.StylePlayer:
		return t.colorPlayer.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	default:
		return text
	}
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.Out, msg)
}

// RenderLevel draws the level one row per line. player may be nil.
// Rows wider than the terminal are clipped when styling is on.
func (t *TUIRenderer) RenderLevel(level *gameworld.Level, player *world.Point) string {
	var sb strings.Builder
	width := 0
	if !t.Plain {
		width = terminal.GetWidth()
	}

	for y := 0; y < level.Height(); y++ {
		var row strings.Builder
		cols := level.Width()
		if width > 0 && cols > width {
			cols = width
		}
		for x := 0; x < cols; x++ {
			g, style := renderer.CellAt(level, world.Pt(x, y), player)
			row.WriteString(t.StyleText(string(g), style))
		}
		sb.WriteString(row.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame(d *state.Dive) {
	// Depth indicator in top left
	fmt.Fprintln(t.Out, t.StyleText(fmt.Sprintf(gotext.Get("DEPTH_ENTERED"), d.Depth), renderer.StyleAction))
	fmt.Fprintln(t.Out, t.StyleText(depth.FlavourText(d.Depth), renderer.StyleSubtle))
	fmt.Fprintln(t.Out)

	player := d.Player
	fmt.Fprint(t.Out, t.RenderLevel(d.Level, &player))
	fmt.Fprintln(t.Out)

	t.printStatusBar(d)
	t.printMessagesPane(d)

	fmt.Fprint(t.Out, "\n> ")
}

func (t *TUIRenderer) printStatusBar(d *state.Dive) {
	oxygenStyle := renderer.StyleWater
	if d.Oxygen*4 <= d.MaxOxygen {
		oxygenStyle = renderer.StyleDenied
	}
	fmt.Fprintf(t.Out, "O2 %s %3d  HP %s %3d  Gold %d\n",
		t.StyleText(gauge(d.Oxygen, d.MaxOxygen), oxygenStyle), d.Oxygen,
		t.StyleText(gauge(d.Health, d.MaxHealth), renderer.StyleDenied), d.Health,
		d.Gold)
}

func (t *TUIRenderer) printMessagesPane(d *state.Dive) {
	if len(d.Messages) == 0 {
		return
	}
	fmt.Fprintln(t.Out, t.StyleText(strings.Repeat("─", gaugeWidth), renderer.StyleSubtle))
	for _, m := range d.Messages {
		fmt.Fprintln(t.Out, m)
	}
}

// gauge draws a fixed-width bar for value out of max
func gauge(value, max int) string {
	if max <= 0 {
		return strings.Repeat("░", gaugeWidth)
	}
	filled := value * gaugeWidth / max
	if filled < 0 {
		filled = 0
	}
	if filled > gaugeWidth {
		filled = gaugeWidth
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", gaugeWidth-filled)
}
