// Command emshd drives an emsh.Engine against a real terminal: it is
// the out-of-scope "driver" of §6 and §9, modeled on the reference
// project's example/console.c. It owns the raw-mode tty, the command
// table, and the init/shell/command state loop that repeatedly feeds
// the engine one byte at a time and steps long-running commands
// between bytes.
package main

import (
	"fmt"
	"os"

	"github.com/merculeit/emsh-go"
	"github.com/merculeit/emsh-go/tty"
)

type driverState int

const (
	stateInit driverState = iota
	stateShell
	stateCommand
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "emshd:", err)
		os.Exit(1)
	}
}

func run() error {
	term, err := tty.Open("/dev/tty")
	if err != nil {
		return err
	}
	defer term.Close()
	if err := term.MakeRaw(); err != nil {
		return err
	}

	c := &console{term: term}
	cfg := emsh.NewConfig()
	e := emsh.New(cfg, term, c)
	c.engine = e

	state := stateInit
	for {
		switch state {
		case stateInit:
			e.Start()
			state = stateShell

		case stateShell:
			b, err := term.ReadByte()
			if err != nil {
				return err
			}
			e.Feed(b)
			if !e.Running() {
				state = stateCommand
			}

		case stateCommand:
			if c.quit {
				return nil
			}
			if c.task == nil || c.task.step() {
				c.task = nil
				state = stateInit
			}
		}
	}
}
