package emsh

// Engine is the public façade (§4.11): construct with New, drive it
// with Start/Feed/Stop, and query Running to decide whether to keep
// reading bytes. An Engine is not safe for concurrent use by multiple
// goroutines — like the POSIX getopt state it re-implements, its
// per-command scratch (argv, optind, optarg, ...) is instance-wide but
// single-threaded by design; nothing about it expects concurrent
// feed-byte calls to interleave (§5).
type Engine struct {
	cfg *Config
	w   Writer
	ex  Executor

	hist *history
	line Line
	cs   ctlseq

	running bool
	progName string

	optind int
	optsub int
	optarg string
	opterr bool
	optopt byte
}

// New constructs an Engine with its own pool of cfg.HistMax history
// blocks, seeded with one empty draft, per §4.11's init step. cfg may
// be nil, in which case NewConfig's defaults apply.
func New(cfg *Config, w Writer, ex Executor) *Engine {
	if cfg == nil {
		cfg = NewConfig()
	}
	blocks := make([]historyBlock, cfg.HistMax)
	e := &Engine{
		cfg:    cfg,
		w:      w,
		ex:     ex,
		hist:   newHistory(blocks, cfg.LineMax),
		opterr: true,
	}
	e.line.bind(e.hist.current())
	return e
}

// Start transitions the engine to RUNNING and emits the initial
// prompt.
func (e *Engine) Start() {
	e.running = true
	e.writePrompt()
}

// Stop transitions the engine to STOPPED. Bytes fed afterward are still
// parsed in full, but no prompt is re-emitted after a commit; the
// driver is expected to stop reading input once it observes !Running()
// (§4.11, §6.5).
func (e *Engine) Stop() {
	e.running = false
}

// Running reports whether the engine is in the RUNNING state.
func (e *Engine) Running() bool {
	return e.running
}
