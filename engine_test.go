package emsh

import (
	"strings"
	"testing"
)

type bufWriter struct {
	sb strings.Builder
}

func (w *bufWriter) WriteByte(b byte) error {
	w.sb.WriteByte(b)
	return nil
}

func (w *bufWriter) WriteString(s string) error {
	w.sb.WriteString(s)
	return nil
}

type recordingExecutor struct {
	calls [][]string
}

func (r *recordingExecutor) Exec(argv []string) {
	cp := make([]string, len(argv))
	copy(cp, argv)
	r.calls = append(r.calls, cp)
}

func newTestEngine() (*Engine, *bufWriter, *recordingExecutor) {
	w := &bufWriter{}
	ex := &recordingExecutor{}
	e := New(NewConfig(), w, ex)
	e.Start()
	return e, w, ex
}

func feedString(e *Engine, s string) {
	for i := 0; i < len(s); i++ {
		e.Feed(s[i])
	}
}

// E1 — insert and commit.
func TestScenarioInsertAndCommit(t *testing.T) {
	e, w, ex := newTestEngine()
	feedString(e, "hi\n")

	if len(ex.calls) != 1 || len(ex.calls[0]) != 1 || ex.calls[0][0] != "hi" {
		t.Fatalf("exec calls = %v, want one call with argv=[hi]", ex.calls)
	}
	out := w.sb.String()
	if !strings.Contains(out, "h") || !strings.Contains(out, "i") || !strings.Contains(out, "\n") {
		t.Fatalf("missing echoed bytes in output %q", out)
	}
	if !strings.HasSuffix(out, "> ") {
		t.Fatalf("expected trailing prompt, got %q", out)
	}
	if e.hist.size != 2 {
		t.Fatalf("history active size = %d, want 2", e.hist.size)
	}
}

// E2 — backspace.
func TestScenarioBackspace(t *testing.T) {
	e, w, ex := newTestEngine()
	feedString(e, "ab\b\n")

	if len(ex.calls) != 1 || len(ex.calls[0]) != 1 || ex.calls[0][0] != "a" {
		t.Fatalf("exec calls = %v, want one call with argv=[a]", ex.calls)
	}
	if !strings.Contains(w.sb.String(), "\x1b[K") {
		t.Fatalf("expected an EL sequence during backspace redraw, got %q", w.sb.String())
	}
}

// E3 — left-arrow then insert.
func TestScenarioLeftArrowInsert(t *testing.T) {
	e, w, ex := newTestEngine()
	feedString(e, "ac\x1b[Db\n")

	if len(ex.calls) != 1 || len(ex.calls[0]) != 1 || ex.calls[0][0] != "abc" {
		t.Fatalf("exec calls = %v, want one call with argv=[abc]", ex.calls)
	}
	if !strings.Contains(w.sb.String(), "\x1b[K") {
		t.Fatalf("expected refresh-from-caret-to-eol during insert, got %q", w.sb.String())
	}
}

// E4 — history navigation.
func TestScenarioHistoryNavigation(t *testing.T) {
	e, _, ex := newTestEngine()
	feedString(e, "one\n")
	feedString(e, "two\n")
	feedString(e, "three\n")
	feedString(e, "\x1b[A\x1b[A")
	if got := string(e.line.block.line.bytes()); got != "two" {
		t.Fatalf("displayed buffer = %q, want %q", got, "two")
	}
	feedString(e, "\n")

	last := ex.calls[len(ex.calls)-1]
	if len(last) != 1 || last[0] != "two" {
		t.Fatalf("last exec argv = %v, want [two]", last)
	}

	var texts []string
	for n := e.hist.active.next; n != &e.hist.active; n = n.next {
		texts = append(texts, string(n.owner.line.bytes()))
	}
	want := []string{"", "two", "three", "one"}
	if len(texts) != len(want) {
		t.Fatalf("history order = %v, want %v", texts, want)
	}
	for i := range want {
		if texts[i] != want[i] {
			t.Fatalf("history order = %v, want %v", texts, want)
		}
	}
}

// E5 — getopt.
func TestScenarioGetopt(t *testing.T) {
	w := &bufWriter{}
	var gotOpts []string
	var optArg string
	var trailingIndex int
	opt := newExecutorFunc(func(e *Engine, argv []string) {
		for {
			c := e.GetOpt(argv, "maenc:")
			if c == -1 {
				trailingIndex = e.OptInd()
				break
			}
			gotOpts = append(gotOpts, string(rune(c)))
			if c == 'c' {
				optArg = e.OptArg()
			}
		}
	})
	e := New(NewConfig(), w, opt)
	opt.e = e
	e.Start()
	feedString(e, "greet -m -c Hello World\n")

	if strings.Join(gotOpts, ",") != "m,c" {
		t.Fatalf("option sequence = %v, want [m c]", gotOpts)
	}
	if optArg != "Hello" {
		t.Fatalf("optarg = %q, want Hello", optArg)
	}
	if trailingIndex != 4 {
		t.Fatalf("optind at end = %d, want 4 (argv[4]=World)", trailingIndex)
	}
}

// E6 — overflow.
func TestScenarioArgvOverflow(t *testing.T) {
	e, w, ex := newTestEngine()
	cfg := e.cfg
	words := make([]string, 0, cfg.ArgMax+1)
	for i := 0; i <= cfg.ArgMax; i++ {
		words = append(words, "w")
	}
	feedString(e, strings.Join(words, " ")+"\n")

	if len(ex.calls) != 0 {
		t.Fatalf("executor should not run on overflow, got %v", ex.calls)
	}
	if !strings.Contains(w.sb.String(), "emsh: Argument list too long.\n") {
		t.Fatalf("missing overflow diagnostic in %q", w.sb.String())
	}
	if e.hist.size != 1 {
		t.Fatalf("history should not advance on overflow, size = %d", e.hist.size)
	}
}

// executorFunc adapts a plain function, closing over the engine, to
// the Executor interface for tests that need to call back into GetOpt.
type executorFunc struct {
	fn func(e *Engine, argv []string)
	e  *Engine
}

func newExecutorFunc(fn func(e *Engine, argv []string)) *executorFunc {
	return &executorFunc{fn: fn}
}

func (f *executorFunc) Exec(argv []string) {
	f.fn(f.e, argv)
}
