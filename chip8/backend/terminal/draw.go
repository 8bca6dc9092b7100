package terminal

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/valerio/go-chip8/chip8/backend/terminal/render"
	"github.com/valerio/go-chip8/chip8/disasm"
	"github.com/valerio/go-chip8/chip8/video"
)

func (t *Backend) render(frame *video.FrameBuffer) {
	termWidth, termHeight := t.screen.Size()
	t.screen.Clear()

	if termWidth < minTermWidth || termHeight < minTermHeight {
		style := tcell.StyleDefault.Foreground(tcell.ColorRed)
		msg := fmt.Sprintf("Terminal too small! Need at least %dx%d", minTermWidth, minTermHeight)
		t.drawText(0, termHeight/2, termWidth, msg, style)
		return
	}

	dividerX := width + 1
	rightPanelX := dividerX + 2
	rightPanelWidth := termWidth - rightPanelX

	t.drawBorders(termWidth, termHeight, dividerX)
	if frame != nil {
		t.drawScreen(frame)
	}

	logsY := 1
	if t.config.ShowDebug && t.config.DebugProvider != nil {
		t.drawRegisters(rightPanelX, 1, rightPanelWidth, termHeight)
		t.drawDisassembly(rightPanelX, registerHeight+2, rightPanelWidth, termHeight)
		logsY = registerHeight + disasmHeight + 3
	}
	t.drawLogs(rightPanelX, logsY, rightPanelWidth, termHeight)
}

func (t *Backend) drawText(x, y, maxWidth int, text string, style tcell.Style) {
	for i, ch := range []rune(render.Truncate(text, maxWidth)) {
		t.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (t *Backend) drawBorders(termWidth, termHeight, dividerX int) {
	borderStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	titleStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)

	for y := 0; y < termHeight-1; y++ {
		t.screen.SetContent(dividerX, y, '│', nil, borderStyle)
	}

	title := " CHIP-8 "
	if t.config.Title != "" {
		title = fmt.Sprintf(" %s ", t.config.Title)
	}
	t.drawText(1, 0, dividerX-1, title, titleStyle)

	startX := dividerX + 2
	panelWidth := termWidth - startX

	if t.config.ShowDebug && t.config.DebugProvider != nil {
		registerEndY := registerHeight + 1
		disasmEndY := registerEndY + disasmHeight + 1

		for _, y := range []int{registerEndY, disasmEndY} {
			for x := dividerX + 1; x < termWidth; x++ {
				t.screen.SetContent(x, y, '─', nil, borderStyle)
			}
			t.screen.SetContent(dividerX, y, '├', nil, borderStyle)
		}

		t.drawText(startX, 0, panelWidth, " Registers ", titleStyle)
		t.drawText(startX, registerEndY, panelWidth, " Disassembly ", titleStyle)
		t.drawText(startX, disasmEndY, panelWidth, fmt.Sprintf(" Logs [%s] (-/+ filter) ", t.logLevel), titleStyle)
	} else {
		t.drawText(startX, 0, panelWidth, fmt.Sprintf(" Logs [%s] (-/+ filter) ", t.logLevel), titleStyle)
	}

	help := " SPACE=pause N=step F5=reset F9=snapshot F10=debug ESC=quit | keys 1234 QWER ASDF ZXCV "
	t.drawText(0, termHeight-1, termWidth, help, borderStyle)
}

// drawScreen packs two pixel rows per terminal cell using half blocks.
func (t *Backend) drawScreen(frame *video.FrameBuffer) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for y := 0; y < height; y += 2 {
		for x := 0; x < width; x++ {
			ch := render.GetHalfBlockChar(frame.GetPixel(x, y), frame.GetPixel(x, y+1))
			t.screen.SetContent(x, y/2+1, ch, nil, style)
		}
	}
}

func (t *Backend) drawRegisters(startX, startY, panelWidth, termHeight int) {
	data := t.config.DebugProvider.ExtractDebugData()
	if data == nil || data.CPU == nil || panelWidth <= 0 {
		return
	}
	cpu := data.CPU

	key := "none"
	if data.KeyPressed {
		key = fmt.Sprintf("%X", data.Key)
	}

	lines := []string{
		fmt.Sprintf("Status: %s", data.DebuggerState),
		fmt.Sprintf("PC: 0x%03X  I: 0x%03X  SP: %d", cpu.PC, cpu.I, cpu.SP),
		fmt.Sprintf("DT: %3d  ST: %3d  Key: %s", cpu.DelayTimer, cpu.SoundTimer, key),
	}
	for row := 0; row < 4; row++ {
		base := row * 4
		lines = append(lines, fmt.Sprintf("V%X:%02X V%X:%02X V%X:%02X V%X:%02X",
			base, cpu.V[base], base+1, cpu.V[base+1], base+2, cpu.V[base+2], base+3, cpu.V[base+3]))
	}
	lines = append(lines, fmt.Sprintf("Cycles: %d", cpu.Cycles))
	if data.Err != nil {
		lines = append(lines, fmt.Sprintf("Error: %v", data.Err))
	}

	style := tcell.StyleDefault.Foreground(tcell.ColorBlue)
	for i, line := range lines {
		y := startY + i
		if y >= termHeight-1 || i >= registerHeight {
			break
		}
		t.drawText(startX, y, panelWidth, line, style)
	}
}

func (t *Backend) drawDisassembly(startX, startY, panelWidth, termHeight int) {
	data := t.config.DebugProvider.ExtractDebugData()
	if data == nil || data.CPU == nil || data.Memory == nil || panelWidth <= 0 {
		return
	}

	pc := data.CPU.PC
	half := disasmHeight / 2
	lines := disasm.DisassembleAround(data.Memory.Bytes, pc, half, disasmHeight-half-1)

	style := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	currentStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)

	for i, line := range lines {
		y := startY + i
		if y >= termHeight-1 || i >= disasmHeight {
			break
		}
		useStyle := style
		if line.Address == pc {
			useStyle = currentStyle
		}
		t.drawText(startX, y, panelWidth, disasm.FormatLine(line, line.Address == pc), useStyle)
	}
}

func (t *Backend) drawLogs(startX, startY, panelWidth, termHeight int) {
	availableHeight := termHeight - startY - 1
	if panelWidth <= 0 || availableHeight <= 0 {
		return
	}

	logs := make([]render.LogEntry, 0, availableHeight)
	for _, entry := range t.logBuffer.GetRecent(0) {
		if entry.Level >= t.logLevel {
			logs = append(logs, entry)
			if len(logs) >= availableHeight {
				break
			}
		}
	}

	debugStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	infoStyle := tcell.StyleDefault.Foreground(tcell.ColorBlue)
	warnStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	errStyle := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)

	for i, entry := range logs {
		style := infoStyle
		switch {
		case entry.Level >= slog.LevelError:
			style = errStyle
		case entry.Level >= slog.LevelWarn:
			style = warnStyle
		case entry.Level < slog.LevelInfo:
			style = debugStyle
		}
		t.drawText(startX, startY+i, panelWidth, render.FormatLogEntry(entry), style)
	}
}
