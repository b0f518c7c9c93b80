package main

import (
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/texveil/internal/app"
	"github.com/dshills/texveil/internal/conceal"
	"github.com/dshills/texveil/internal/conceal/symbols"
	"github.com/dshills/texveil/internal/engine/buffer"
	"github.com/dshills/texveil/internal/engine/cursor"
	"github.com/dshills/texveil/internal/engine/tracking"
	"github.com/dshills/texveil/internal/renderer"
)

// editor is the interactive viewer: one document, one caret, one engine
// view. Every caret move or edit pushes an update to the engine and
// repaints from the returned state.
type editor struct {
	mu        sync.Mutex
	screen    tcell.Screen
	app       *app.App
	doc       *buffer.Document
	caret     buffer.ByteOffset
	viewID    conceal.ViewID
	state     *conceal.State
	fileName  string
	topLine   int
	mouseDown bool
	quitting  bool
}

// init creates the terminal screen and the engine view.
func (e *editor) init(application *app.App, fileName, text string) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	screen.EnableMouse()

	e.mu.Lock()
	e.screen = screen
	e.app = application
	e.doc = buffer.NewDocument(text)
	e.fileName = fileName
	e.viewID = application.Engine().CreateView()
	e.mu.Unlock()

	e.push(nil, false)
	e.draw()
	return nil
}

// shutdown destroys the engine view before finalizing the screen, so no
// delayed-reveal callback posts to a dead screen.
func (e *editor) shutdown() {
	e.mu.Lock()
	screen := e.screen
	e.screen = nil
	e.mu.Unlock()

	e.app.Engine().DestroyView(e.viewID)
	if screen != nil {
		screen.Fini()
	}
}

// quit requests a clean exit from any goroutine.
func (e *editor) quit() {
	e.mu.Lock()
	e.quitting = true
	screen := e.screen
	e.mu.Unlock()
	if screen != nil {
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
	}
}

// onEngineRefresh is the engine's delayed-reveal callback. It runs on the
// timer goroutine; the loop answers with a Refresh update and a repaint.
func (e *editor) onEngineRefresh(conceal.ViewID) {
	e.mu.Lock()
	screen := e.screen
	e.mu.Unlock()
	if screen != nil {
		_ = screen.PostEvent(tcell.NewEventInterrupt(refreshMarker{}))
	}
}

// refreshMarker tags interrupt events posted by the engine callback.
type refreshMarker struct{}

// loop is the main event loop. It returns when the user quits.
func (e *editor) loop() error {
	for {
		ev := e.screen.PollEvent()
		if ev == nil {
			return nil
		}

		e.mu.Lock()
		quitting := e.quitting
		e.mu.Unlock()
		if quitting {
			return nil
		}

		switch ev := ev.(type) {
		case *tcell.EventInterrupt:
			if _, ok := ev.Data().(refreshMarker); ok {
				e.pushRefresh()
			}
		case *tcell.EventResize:
			e.screen.Sync()
		case *tcell.EventMouse:
			e.handleMouse(ev)
		case *tcell.EventKey:
			if !e.handleKey(ev) {
				return nil
			}
		}
		e.draw()
	}
}

// handleKey processes one key event. Returns false to quit.
func (e *editor) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		e.moveCaret(e.prevRune())
	case tcell.KeyRight:
		e.moveCaret(e.nextRune())
	case tcell.KeyUp:
		e.moveVertical(-1)
	case tcell.KeyDown:
		e.moveVertical(1)
	case tcell.KeyHome:
		r, _ := e.doc.LineRange(int(e.doc.PointAt(e.caret).Line))
		e.moveCaret(r.Start)
	case tcell.KeyEnd:
		r, _ := e.doc.LineRange(int(e.doc.PointAt(e.caret).Line))
		e.moveCaret(r.End)
	case tcell.KeyEnter:
		e.applyEdit(buffer.NewInsert(e.caret, "\n"))
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if prev := e.prevRune(); prev < e.caret {
			e.applyEdit(buffer.NewDelete(prev, e.caret))
		}
	case tcell.KeyDelete:
		if next := e.nextRune(); next > e.caret {
			e.applyEdit(buffer.NewDelete(e.caret, next))
		}
	case tcell.KeyRune:
		e.applyEdit(buffer.NewInsert(e.caret, string(ev.Rune())))
	}
	return true
}

// handleMouse maps clicks to caret moves and tracks the held button.
func (e *editor) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	down := ev.Buttons()&tcell.ButtonMask(0xff) != 0

	line := e.topLine + y
	r, ok := e.doc.LineRange(line)
	if ok {
		// Display columns shift where glyphs conceal source; clamping to
		// the raw line is close enough for the demo.
		off := r.Start + buffer.ByteOffset(x)
		if off > r.End {
			off = r.End
		}
		e.caret = off
	}
	e.mouseDown = down
	e.push(nil, down)
}

// prevRune returns the offset of the rune before the caret.
func (e *editor) prevRune() buffer.ByteOffset {
	if e.caret == 0 {
		return 0
	}
	text := e.doc.Text()
	_, size := utf8.DecodeLastRuneInString(text[:e.caret])
	return e.caret - buffer.ByteOffset(size)
}

// nextRune returns the offset of the rune after the caret.
func (e *editor) nextRune() buffer.ByteOffset {
	text := e.doc.Text()
	if e.caret >= buffer.ByteOffset(len(text)) {
		return e.caret
	}
	_, size := utf8.DecodeRuneInString(text[e.caret:])
	return e.caret + buffer.ByteOffset(size)
}

// moveCaret sets the caret and pushes a selection update.
func (e *editor) moveCaret(off buffer.ByteOffset) {
	e.caret = off
	e.scrollToCaret()
	e.push(nil, e.mouseDown)
}

// moveVertical moves the caret by whole lines, clamping the column.
func (e *editor) moveVertical(delta int) {
	p := e.doc.PointAt(e.caret)
	line := int(p.Line) + delta
	if line < 0 || line >= e.doc.LineCount() {
		return
	}
	e.moveCaret(e.doc.OffsetAt(buffer.Point{Line: uint32(line), Column: p.Column}))
}

// applyEdit applies one edit, transforms the caret through it, and pushes
// a document update.
func (e *editor) applyEdit(edit buffer.Edit) {
	oldText, err := e.doc.Apply(edit)
	if err != nil {
		e.app.Logger().Error("edit rejected: %v", err)
		return
	}
	e.caret = cursor.TransformOffset(e.caret, edit, cursor.BiasRight)
	e.scrollToCaret()

	cs := tracking.NewChangeSet()
	cs.Add(tracking.FromEdit(edit, oldText))
	e.push(cs, e.mouseDown)
}

// push delivers one update to the engine and stores the new state.
func (e *editor) push(changes *tracking.ChangeSet, mouseDown bool) {
	st, err := e.app.Engine().HandleUpdate(e.viewID, conceal.Update{
		Doc:       e.doc.Text(),
		Visible:   e.visibleRange(),
		Selection: []buffer.Range{buffer.NewRange(e.caret, e.caret)},
		MouseDown: mouseDown,
		Changes:   changes,
	})
	if err != nil {
		e.app.Logger().Error("update rejected: %v", err)
		return
	}
	e.state = st
}

// pushRefresh answers a delayed reveal with a Refresh update.
func (e *editor) pushRefresh() {
	st, err := e.app.Engine().HandleUpdate(e.viewID, conceal.Update{Refresh: true})
	if err != nil {
		return
	}
	e.state = st
}

// visibleRange returns the document span the screen shows.
func (e *editor) visibleRange() buffer.Range {
	_, h := e.screen.Size()
	if h <= 1 {
		return buffer.NewRange(0, e.doc.Len())
	}
	start, ok := e.doc.LineRange(e.topLine)
	if !ok {
		return buffer.NewRange(0, e.doc.Len())
	}
	end := e.doc.Len()
	// Last row is the status line.
	if r, ok := e.doc.LineRange(e.topLine + h - 2); ok {
		end = r.End
	}
	return buffer.NewRange(start.Start, end)
}

// scrollToCaret keeps the caret's line on screen.
func (e *editor) scrollToCaret() {
	_, h := e.screen.Size()
	rows := h - 1
	if rows < 1 {
		rows = 1
	}
	line := int(e.doc.PointAt(e.caret).Line)
	if line < e.topLine {
		e.topLine = line
	}
	if line >= e.topLine+rows {
		e.topLine = line - rows + 1
	}
}

// draw repaints the screen from the current state.
func (e *editor) draw() {
	if e.state == nil {
		return
	}
	e.screen.Clear()
	w, h := e.screen.Size()
	paints := renderer.BuildPaints(e.state)

	rows := h - 1
	for row := 0; row < rows; row++ {
		lineNo := e.topLine + row
		r, ok := e.doc.LineRange(lineNo)
		if !ok {
			break
		}
		cells := renderer.ComposeLine(e.doc.Slice(r), r.Start, paints)
		e.drawCells(row, w, cells)
	}

	e.drawStatus(w, h-1)
	e.drawCaret(paints)
	e.screen.Show()
}

// drawCells writes one composed line to a screen row. Zero-width
// combining cells attach to the base cell before them.
func (e *editor) drawCells(row, width int, cells []renderer.Cell) {
	x := 0
	for i := 0; i < len(cells) && x < width; i++ {
		c := cells[i]
		if c.Width == 0 {
			continue
		}
		var combining []rune
		for j := i + 1; j < len(cells) && cells[j].Width == 0 && cells[j].Rune != 0; j++ {
			combining = append(combining, cells[j].Rune)
		}
		e.screen.SetContent(x, row, c.Rune, combining, classStyle(c.Class))
		x += c.Width
	}
}

// drawStatus renders the bottom status line.
func (e *editor) drawStatus(width, row int) {
	name := e.fileName
	if name == "" {
		name = "[scratch]"
	}
	p := e.doc.PointAt(e.caret)
	status := fmt.Sprintf("%s  %d:%d", name, p.Line+1, p.Column+1)
	style := tcell.StyleDefault.Reverse(true)
	x := 0
	for _, r := range status {
		if x >= width {
			break
		}
		e.screen.SetContent(x, row, r, nil, style)
		x++
	}
	for ; x < width; x++ {
		e.screen.SetContent(x, row, ' ', nil, style)
	}
}

// drawCaret positions the hardware cursor at the caret's display column.
func (e *editor) drawCaret(paints []renderer.Paint) {
	p := e.doc.PointAt(e.caret)
	line := int(p.Line)
	if line < e.topLine {
		e.screen.HideCursor()
		return
	}
	r, ok := e.doc.LineRange(line)
	if !ok {
		e.screen.HideCursor()
		return
	}
	// Compose the prefix up to the caret; concealed spans under the caret
	// are revealed, so the prefix composes cleanly.
	prefix := renderer.ComposeLine(e.doc.Slice(buffer.NewRange(r.Start, e.caret)), r.Start, paints)
	e.screen.ShowCursor(renderer.Width(prefix), line-e.topLine)
}

// classStyle maps presentation classes to terminal styles.
func classStyle(class symbols.StyleClass) tcell.Style {
	st := tcell.StyleDefault
	switch class {
	case symbols.ClassBold:
		return st.Bold(true)
	case symbols.ClassItalic:
		return st.Italic(true)
	case symbols.ClassUnderline:
		return st.Underline(true)
	case symbols.ClassStrike:
		return st.StrikeThrough(true)
	case symbols.ClassBracket:
		return st.Dim(true)
	default:
		return st
	}
}
