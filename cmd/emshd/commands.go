package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/merculeit/emsh-go"
	"github.com/merculeit/emsh-go/spidevice"
	"github.com/merculeit/emsh-go/tty"
)

// task is a long-running command's own step function, stepped once per
// driver iteration until it reports done — the cooperative-continuation
// contract of §6.5.
type task interface {
	step() bool
}

// command is one entry in the console's command table, modeled on
// console_command_t in the reference driver: a name, an entry point,
// and (for commands that need to keep running past Exec) a task
// constructor.
type command struct {
	name string
	run  func(c *console, argv []string) task
}

// commands is kept sorted by name, like the reference table, so
// findCommand can binary-search it.
var commands = []command{
	{name: "echo", run: cmdEcho},
	{name: "exit", run: cmdExit},
	{name: "greet", run: cmdGreet},
	{name: "sleep", run: cmdSleep},
	{name: "spi", run: cmdSPI},
}

func init() {
	sort.Slice(commands, func(i, j int) bool { return commands[i].name < commands[j].name })
}

func findCommand(name string) (command, bool) {
	i := sort.Search(len(commands), func(i int) bool { return commands[i].name >= name })
	if i < len(commands) && commands[i].name == name {
		return commands[i], true
	}
	return command{}, false
}

// console is the Executor the engine commits completed lines to; it
// owns the driver's notion of "a command is still running" via task.
type console struct {
	term   *tty.Terminal
	engine *emsh.Engine
	task   task
	quit   bool
}

func (c *console) Exec(argv []string) {
	cmd, ok := findCommand(argv[0])
	if !ok {
		c.writeLinef("%s: command not found", argv[0])
		return
	}
	if t := cmd.run(c, argv); t != nil {
		c.task = t
		c.engine.Stop()
	}
}

func (c *console) writeLinef(format string, args ...any) {
	_ = c.term.WriteString(fmt.Sprintf(format, args...))
	_ = c.term.WriteString("\r\n")
}

func cmdEcho(c *console, argv []string) task {
	for i, a := range argv[1:] {
		if i > 0 {
			_ = c.term.WriteString(" ")
		}
		_ = c.term.WriteString(a)
	}
	_ = c.term.WriteString("\r\n")
	return nil
}

func cmdExit(c *console, argv []string) task {
	c.writeLinef("bye")
	c.quit = true
	c.engine.Stop()
	return nil
}

func cmdGreet(c *console, argv []string) task {
	var male, anonymous, exclaim, noNewline bool
	var name string
	for {
		ch := c.engine.GetOpt(argv, "maenc:")
		if ch == -1 {
			break
		}
		switch rune(ch) {
		case 'm':
			male = true
		case 'a':
			anonymous = true
		case 'e':
			exclaim = true
		case 'n':
			noNewline = true
		case 'c':
			name = c.engine.OptArg()
		case '?', ':':
			return nil
		}
	}
	if name == "" && !anonymous {
		idx := c.engine.OptInd()
		if idx < len(argv) {
			name = argv[idx]
		}
	}
	if anonymous || name == "" {
		name = "stranger"
	}
	title := ""
	if male {
		title = "Mr. "
	}
	punct := "."
	if exclaim {
		punct = "!"
	}
	_ = c.term.WriteString(fmt.Sprintf("Hello, %s%s%s", title, name, punct))
	if !noNewline {
		_ = c.term.WriteString("\r\n")
	}
	return nil
}

func cmdSleep(c *console, argv []string) task {
	if len(argv) < 2 {
		c.writeLinef("sleep: missing duration")
		return nil
	}
	secs, consumed, err := emsh.ParseUint([]byte(argv[1]), 3600)
	if err != nil || consumed != len(argv[1]) {
		c.writeLinef("sleep: %s: not a valid duration", argv[1])
		return nil
	}
	return &sleepTask{term: c.term, deadline: time.Now().Add(time.Duration(secs) * time.Second)}
}

// sleepTask is the example of the driver's cooperative-continuation
// contract (§6.5): cmdSleep returns this task, console.Exec then calls
// Engine.Stop, and main's loop steps it once per iteration, polling for an abort
// keystroke in between, until either the deadline passes or the user
// aborts.
type sleepTask struct {
	term     *tty.Terminal
	deadline time.Time
	aborted  bool
}

func (t *sleepTask) step() bool {
	if time.Now().After(t.deadline) {
		return true
	}
	if err := t.term.WaitReadable(10 * time.Millisecond); err == nil {
		b, err := t.term.ReadByte()
		if err == nil && b == 0x03 { // Ctrl-C
			t.aborted = true
			return true
		}
	}
	return false
}

func cmdSPI(c *console, argv []string) task {
	if len(argv) < 2 {
		c.writeLinef("spi: usage: spi <device> [byte...]")
		return nil
	}
	tx := make([]byte, 0, len(argv)-2)
	for _, a := range argv[2:] {
		v, consumed, err := emsh.ParseUint([]byte(a), 0xFF)
		if err != nil || consumed != len(a) {
			c.writeLinef("spi: %s: not a byte value", a)
			return nil
		}
		tx = append(tx, byte(v))
	}
	if len(tx) == 0 {
		tx = []byte{0x00}
	}
	rx, err := spidevice.Probe(argv[1], spidevice.Config{Bits: 8, SpeedHz: 500000}, tx)
	if err != nil {
		c.writeLinef("spi: %v", err)
		return nil
	}
	c.writeLinef("spi: %x", rx)
	return nil
}
