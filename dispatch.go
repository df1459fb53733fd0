package emsh

// Feed is the engine's single entry point (§4.8): it consumes exactly
// one byte, finishing all bookkeeping before it returns. The byte is
// first run through the ECMA-48 recognizer; whether the recognizer
// ended the step back in INIT (plain keystroke) or just completed a
// CSI sequence (FINAL) decides how it is routed. Bytes that only
// extend an in-progress sequence, and malformed sequences dropped back
// to INIT with ILSEQ, produce no editing action at all.
func (e *Engine) Feed(b byte) {
	ev, _ := e.cs.feed(b)

	switch {
	case e.cs.state == ctlseqInit && ev == ctlseqNone:
		e.feedPlain(b)
	case e.cs.state == ctlseqFinal:
		e.feedCSIFinal(b)
	}
}

// feedPlain dispatches a byte that arrived outside any control
// sequence, per the first table of §4.8.
func (e *Engine) feedPlain(b byte) {
	switch b {
	case 0x0D: // CR
		return
	case 0x0A: // LF
		e.commitLine()
	case 0x08, 0x7F: // BS, DEL
		e.backspace()
	case Ctrl('A'):
		e.line.caretHome()
		e.caretAbsoluteRefresh()
	case Ctrl('B'):
		if e.line.caretLeft() {
			e.writeCUB(1)
		}
	case Ctrl('D'):
		if e.line.eraseAt() {
			e.refreshFromCaretToEOL()
		}
	case Ctrl('E'):
		e.line.caretEnd()
		e.caretAbsoluteRefresh()
	case Ctrl('F'):
		if e.line.caretRight() {
			e.writeCUF(1)
		}
	case Ctrl('N'):
		e.hist.navigateForward()
		e.line.bind(e.hist.current())
		e.refreshEntireLine()
	case Ctrl('P'):
		e.hist.navigateBackward()
		e.line.bind(e.hist.current())
		e.refreshEntireLine()
	default:
		if IsPrint(b) {
			e.insertPrintable(b)
		}
		// other non-printable: ignore.
	}
}

func (e *Engine) backspace() {
	if !e.line.caretLeft() {
		return
	}
	e.writeCUB(1)
	e.line.eraseAt()
	e.refreshFromCaretToEOL()
}

func (e *Engine) insertPrintable(b byte) {
	atEnd := e.line.caret == e.line.length()
	if !e.line.insertAt(b) {
		if e.cfg.BellOnOverflow {
			e.out(0x07)
		}
		return
	}
	e.out(b)
	if !atEnd {
		e.refreshFromCaretToEOL()
	}
}

// caretAbsoluteRefresh repositions the real cursor to match a caret
// jump (home/end) that didn't move by one, per §4.7's "caret absolute
// set" primitive.
func (e *Engine) caretAbsoluteRefresh() {
	e.writeCR()
	e.writeCUF(len(e.cfg.Prompt) + e.line.caret)
}

// feedCSIFinal acts on a just-completed CSI sequence, per the second
// table of §4.8. final is the byte that produced the FINAL event.
func (e *Engine) feedCSIFinal(final byte) {
	if e.cs.intermCount > 0 {
		// A two-byte-intermediate sequence: reserved, no-op.
		return
	}
	switch final {
	case 'A': // CUU
		e.hist.navigateBackward()
		e.line.bind(e.hist.current())
		e.refreshEntireLine()
	case 'B': // CUD
		e.hist.navigateForward()
		e.line.bind(e.hist.current())
		e.refreshEntireLine()
	case 'C': // CUF
		if e.line.caretRight() {
			e.writeCUF(1)
		}
	case 'D': // CUB
		if e.line.caretLeft() {
			e.writeCUB(1)
		}
	case '~':
		switch e.cs.paramByte {
		case '1':
			e.line.caretHome()
			e.caretAbsoluteRefresh()
		case '2':
			// Reserved: overwrite-mode placeholder, deliberate no-op.
		case '3':
			if e.line.eraseAt() {
				e.refreshFromCaretToEOL()
			}
		case '4':
			e.line.caretEnd()
			e.caretAbsoluteRefresh()
		}
	}
}

// commitLine handles LF: echo the newline, tokenize, execute or report
// overflow, advance history, and re-prompt if still running (§4.8,
// §4.9).
func (e *Engine) commitLine() {
	e.writeNewline()
	argv, overflow := e.tokenize()
	switch {
	case overflow:
		e.outs("emsh: Argument list too long.\n")
	case len(argv) > 0:
		e.resetOptState(argv[0])
		e.ex.Exec(argv)
		e.hist.commit()
		e.line.bind(e.hist.current())
	}
	if e.running {
		e.writePrompt()
	}
}
