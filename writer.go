package emsh

// Writer is the engine's sole output collaborator (§6.1's
// write-char/write-strn pair). Every byte the engine emits — echoed
// keystrokes, CSI redraws, the prompt, diagnostics — goes through it in
// program order; implementations must preserve that order to the
// terminal.
type Writer interface {
	WriteByte(b byte) error
	WriteString(s string) error
}

// Executor is invoked once per committed, non-empty, non-overflowing
// line. argv elements are only valid until Exec returns. If a command
// needs cooperative continuation beyond Exec's return, it must call
// (*Engine).Stop before returning and arrange for the driver to step it
// and call (*Engine).Start again (§6.5).
type Executor interface {
	Exec(argv []string)
}
