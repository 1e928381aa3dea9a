package terminal

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/KirkDiggler/eidetic/internal/numerals"
)

// Grid geometry in screen cells
const (
	gridX = 2
	gridY = 2
	cellW = 8
	cellH = 3
)

var (
	styleTitle  = tcell.StyleDefault.Bold(true)
	styleBox    = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleLabel  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleHidden = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleWin    = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleLose   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleHelp   = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// drawText writes text at (x, y) and returns the x after it
func (a *App) drawText(x, y int, style tcell.Style, text string) int {
	for _, r := range text {
		a.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	return x
}

func (a *App) draw() {
	a.screen.Clear()
	if a.board == nil {
		a.screen.Show()
		return
	}
	b := a.board

	mode := "Easy"
	if b.HardMode {
		mode = "Hard"
	}
	sound := "on"
	if !b.SoundsOn {
		sound = "off"
	}
	lang := ""
	if sys, ok := numerals.Lookup(b.LanguageID); ok {
		lang = sys.Name
	}
	a.drawText(gridX, 0, styleTitle, fmt.Sprintf("Eidetic  %s  stars:%s  streak:%d  %s  sound:%s",
		mode, strings.Repeat("*", b.StarsAvailable), b.Streak, lang, sound))

	for k, sv := range b.Slots {
		if sv.Cleared {
			continue
		}
		x, y := slotOrigin(sv.Slot)
		a.drawBox(x, y, k+1)

		style := styleLabel
		if sv.Hidden {
			style = styleHidden
		}
		w := runewidth.StringWidth(sv.Label)
		a.drawText(x+(cellW-1-w)/2, y+1, style, sv.Label)
	}

	y := gridY + b.Rows*cellH + 1
	a.drawText(gridX, y, styleStatus, a.status)
	y++
	if a.speech != "" {
		a.drawText(gridX, y, styleStatus, a.speech)
		y++
	}

	if a.result != nil {
		style := styleLose
		if a.result.Summary.Won {
			style = styleWin
		}
		for _, line := range splitLines(a.result.ResultTitle + "\n" + a.result.ResultMessage) {
			a.drawText(gridX, y, style, line)
			y++
		}
		actions := "[p] replay  [q] quit"
		if a.result.Summary.Won && b.SoundsOn {
			actions += "  [a] read aloud"
		}
		a.drawText(gridX, y, styleTitle, actions)
		y++
	}

	for _, line := range a.info {
		a.drawText(gridX, y, styleTitle, line)
		y++
	}

	_, h := a.screen.Size()
	a.drawText(gridX, h-1, styleHelp, "1-9/click tap  r reload  l numerals  s stats  m sound  d difficulty  q quit")

	a.screen.Show()
}

// drawBox outlines a slot; n is the key that taps it
func (a *App) drawBox(x, y, n int) {
	right := x + cellW - 2
	bottom := y + cellH - 1
	for i := x + 1; i < right; i++ {
		a.screen.SetContent(i, y, tcell.RuneHLine, nil, styleBox)
		a.screen.SetContent(i, bottom, tcell.RuneHLine, nil, styleBox)
	}
	a.screen.SetContent(x, y, tcell.RuneULCorner, nil, styleBox)
	a.screen.SetContent(right, y, tcell.RuneURCorner, nil, styleBox)
	a.screen.SetContent(x, bottom, tcell.RuneLLCorner, nil, styleBox)
	a.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, styleBox)
	for j := y + 1; j < bottom; j++ {
		a.screen.SetContent(x, j, tcell.RuneVLine, nil, styleBox)
		a.screen.SetContent(right, j, tcell.RuneVLine, nil, styleBox)
	}
	a.screen.SetContent(x+1, y, rune('0'+n), nil, styleHelp)
}

func splitLines(s string) []string {
	return strings.Split(strings.TrimSpace(s), "\n")
}
