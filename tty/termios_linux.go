package tty

// Termios mirrors the Linux struct termios layout used by TCGETS/TCSETS.
// Field tags follow termios(3); only the flag groups this package
// actually touches are given named bit constants below.
type Termios struct {
	Iflag IFlag    /* input mode flags */
	Oflag OFlag    /* output mode flags */
	Cflag CFlag    /* control mode flags */
	Lflag LFlag    /* local mode flags */
	Line  byte     /* line discipline */
	Cc    [19]byte /* control characters */
}

const (
	// VTIME is the Cc index for the noncanonical-read timeout, in
	// deciseconds.
	VTIME = 5

	// VMIN is the Cc index for the minimum character count for a
	// noncanonical read.
	VMIN = 6
)

type IFlag uint32

// Input mode flags (a trimmed set of termios(3)'s; the ones MakeRaw
// needs to clear).
const (
	// IGNBRK ignores a BREAK condition on input.
	IGNBRK = IFlag(0000001)

	// BRKINT, when IGNBRK is not set, causes a BREAK to flush the
	// input/output queues and raise SIGINT on the foreground process
	// group.
	BRKINT = IFlag(0000002)

	// ISTRIP strips the eighth bit off every input byte — must stay
	// clear, since argv bytes and CSI parameters here are 7-bit ASCII
	// but the line buffer is defined over the full byte range.
	ISTRIP = IFlag(0000040)

	// INLCR translates NL to CR on input.
	INLCR = IFlag(0000100)

	// IGNCR ignores carriage return on input.
	IGNCR = IFlag(0000200)

	// ICRNL translates CR to NL on input; must be clear so a bare CR
	// keystroke reaches Feed as 0x0D, not 0x0A.
	ICRNL = IFlag(0000400)

	// IXON enables XON/XOFF flow control on output.
	IXON = IFlag(0002000)

	// PARMRK marks parity/framing errors in the input stream with a
	// two-byte \377 \0 prefix.
	PARMRK = IFlag(0000010)
)

type OFlag uint32

// Output mode flags.
const (
	// OPOST enables implementation-defined output processing (e.g.
	// NL->CRNL translation). MakeRaw never changes it, since the engine's own
	// NEWLINE tunable already decides what a line ending looks like on
	// the wire, and most real terminals still expect OPOST for sane NL
	// handling on writes.
	OPOST = OFlag(0000001)

	// ONLCR maps NL to CR-NL on output.
	ONLCR = OFlag(0000004)
)

type CFlag uint32

// Control mode flags.
const (
	CS8    = CFlag(0000060)
	CSIZE  = CFlag(0000060)
	PARENB = CFlag(0000400)
)

type LFlag uint32

// Local mode flags.
const (
	// ISIG generates INTR/QUIT/SUSP signals from their control
	// characters.
	ISIG = LFlag(0000001)

	// ICANON enables canonical (line-buffered, erase/kill-processing)
	// input; must be clear for Feed to see one byte per keypress.
	ICANON = LFlag(0000002)

	// ECHO echoes input characters; must be clear since the engine
	// does its own echo through its Writer.
	ECHO = LFlag(0000010)

	// ECHONL echoes NL even when ECHO is off.
	ECHONL = LFlag(0000100)

	// IEXTEN enables implementation-defined input processing
	// (reprint/word-erase/literal-next).
	IEXTEN = LFlag(0100000)
)

// Action selects when a SetAttr change takes effect, mirroring
// tcsetattr(3)'s optional_actions.
type Action int

const (
	// TCSANOW applies the change immediately.
	TCSANOW = Action(iota)

	// TCSADRAIN applies the change after all queued output has drained.
	TCSADRAIN

	// TCSAFLUSH applies the change after output has drained and
	// discards unread input.
	TCSAFLUSH
)

// MakeRaw disables canonicalization, echo, signal generation, and input
// translation, exactly as the reference serial driver's Termios.MakeRaw
// does for a UART — except OPOST is left alone here, since a console
// tty's output side should keep NL translation unless the caller
// explicitly wants a fully raw link both ways.
func (t *Termios) MakeRaw() {
	t.Iflag &= ^(IGNBRK | BRKINT | PARMRK | ISTRIP | INLCR | IGNCR | ICRNL | IXON)
	t.Lflag &= ^(ECHO | ECHONL | ICANON | ISIG | IEXTEN)
	t.Cflag &= ^CSIZE
	t.Cflag |= CS8
	t.Cc[VMIN] = 1
	t.Cc[VTIME] = 0
}
