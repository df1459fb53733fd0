package emsh

// render.go holds the engine's output primitives: everything it writes
// is either a literal byte/string or one of a small set of ECMA-48 CSI
// sequences (EL, CUF, CUB) plus bare CR, per §6.2.

func (e *Engine) out(b byte) {
	_ = e.w.WriteByte(b)
}

func (e *Engine) outs(s string) {
	_ = e.w.WriteString(s)
}

func (e *Engine) writeCR() {
	e.out('\r')
}

func (e *Engine) writeNewline() {
	e.outs(e.cfg.Newline)
}

func (e *Engine) writePrompt() {
	e.outs(e.cfg.Prompt)
}

// writeEL emits erase-in-line with the default (0) parameter: from the
// cursor to the end of the line.
func (e *Engine) writeEL() {
	e.outs("\x1b[K")
}

// writeCUF emits cursor-forward, eliding the parameter when n == 1 and
// emitting nothing at all when n == 0.
func (e *Engine) writeCUF(n int) {
	e.writeCursorMove(n, 'C')
}

// writeCUB emits cursor-back with the same elision rules as writeCUF.
func (e *Engine) writeCUB(n int) {
	e.writeCursorMove(n, 'D')
}

func (e *Engine) writeCursorMove(n int, final byte) {
	switch {
	case n == 0:
		return
	case n == 1:
		e.out(0x1B)
		e.out('[')
		e.out(final)
	default:
		var buf [20]byte
		digits := FormatUint(buf[:], uint(n))
		e.out(0x1B)
		e.out('[')
		e.outs(string(buf[:digits]))
		e.out(final)
	}
}

// refreshFromCaretToEOL erases from the caret to the end of line,
// rewrites the tail, then backs the cursor up to the logical caret.
func (e *Engine) refreshFromCaretToEOL() {
	e.writeEL()
	tail := e.tailBytes()
	e.outs(string(tail))
	e.writeCUB(len(tail))
}

// refreshEntireLine fully repaints the prompt and buffer; used after
// history navigation where the new content bears no relation to what
// was on screen.
func (e *Engine) refreshEntireLine() {
	e.writeCR()
	e.writeEL()
	e.writePrompt()
	e.outs(string(e.line.block.line.bytes()))
}

// tailBytes returns the buffer content from the caret to the end.
func (e *Engine) tailBytes() []byte {
	full := e.line.block.line.bytes()
	return full[e.line.caret:]
}
