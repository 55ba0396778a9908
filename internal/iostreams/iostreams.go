package iostreams

import (
	"bytes"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/cli/safeexec"
	"github.com/google/shlex"
	"github.com/mattn/go-colorable"
)

const DefaultWidth = 80

// ErrClosedPagerPipe is the error returned when writing to a pager that has been closed.
type ErrClosedPagerPipe struct {
	error
}

type fileWriter interface {
	io.Writer
	Fd() uintptr
}

type fileReader interface {
	io.ReadCloser
	Fd() uintptr
}

type term interface {
	IsTerminalOutput() bool
	IsColorEnabled() bool
	Size() (int, int, error)
}

type IOStreams struct {
	term term

	In     fileReader
	Out    fileWriter
	ErrOut io.Writer

	colorEnabled bool

	progressIndicatorEnabled bool
	progressIndicator        *spinner.Spinner
	progressIndicatorMu      sync.Mutex

	stdinTTYOverride  bool
	stdinIsTTY        bool
	stdoutTTYOverride bool
	stdoutIsTTY       bool
	stderrTTYOverride bool
	stderrIsTTY       bool

	pagerCommand string
	pagerProcess *os.Process

	neverPrompt bool
}

func (ios *IOStreams) ColorEnabled() bool {
	return ios.colorEnabled
}

func (ios *IOStreams) SetColorEnabled(colorEnabled bool) {
	ios.colorEnabled = colorEnabled
}

func (ios *IOStreams) SetStdinTTY(isTTY bool) {
	ios.stdinTTYOverride = true
	ios.stdinIsTTY = isTTY
}

func (ios *IOStreams) IsStdinTTY() bool {
	if ios.stdinTTYOverride {
		return ios.stdinIsTTY
	}
	if stdin, ok := ios.In.(*os.File); ok {
		return isTerminal(stdin)
	}
	return false
}

func (ios *IOStreams) SetStdoutTTY(isTTY bool) {
	ios.stdoutTTYOverride = true
	ios.stdoutIsTTY = isTTY
}

func (ios *IOStreams) IsStdoutTTY() bool {
	if ios.stdoutTTYOverride {
		return ios.stdoutIsTTY
	}
	return ios.term.IsTerminalOutput()
}

func (ios *IOStreams) SetStderrTTY(isTTY bool) {
	ios.stderrTTYOverride = true
	ios.stderrIsTTY = isTTY
}

func (ios *IOStreams) IsStderrTTY() bool {
	if ios.stderrTTYOverride {
		return ios.stderrIsTTY
	}
	if stderr, ok := ios.ErrOut.(*os.File); ok {
		return isTerminal(stderr)
	}
	return false
}

func (ios *IOStreams) SetPager(cmd string) {
	ios.pagerCommand = cmd
}

func (ios *IOStreams) GetPager() string {
	return ios.pagerCommand
}

func (ios *IOStreams) StartPager() error {
	if ios.pagerCommand == "" || ios.pagerCommand == "cat" || !ios.IsStdoutTTY() {
		return nil
	}

	pagerArgs, err := shlex.Split(ios.pagerCommand)
	if err != nil {
		return err
	}
	if len(pagerArgs) == 0 {
		return nil
	}

	pagerEnv := os.Environ()
	for i := len(pagerEnv) - 1; i >= 0; i-- {
		if strings.HasPrefix(pagerEnv[i], "PAGER=") {
			pagerEnv = append(pagerEnv[0:i], pagerEnv[i+1:]...)
		}
	}
	if _, ok := os.LookupEnv("LESS"); !ok {
		pagerEnv = append(pagerEnv, "LESS=FRX")
	}
	if _, ok := os.LookupEnv("LV"); !ok {
		pagerEnv = append(pagerEnv, "LV=-c")
	}

	pagerExe, err := safeexec.LookPath(pagerArgs[0])
	if err != nil {
		return err
	}
	pagerCmd := exec.Command(pagerExe, pagerArgs[1:]...)
	pagerCmd.Env = pagerEnv
	pagerCmd.Stdout = ios.Out
	pagerCmd.Stderr = ios.ErrOut
	pagedOut, err := pagerCmd.StdinPipe()
	if err != nil {
		return err
	}
	ios.Out = &fdWriteCloser{
		fd:          ios.Out.Fd(),
		WriteCloser: &pagerWriter{pagedOut},
	}
	err = pagerCmd.Start()
	if err != nil {
		return err
	}
	ios.pagerProcess = pagerCmd.Process
	return nil
}

func (ios *IOStreams) StopPager() {
	if ios.pagerProcess == nil {
		return
	}

	// if a pager was started, we're guaranteed to have a WriteCloser
	_ = ios.Out.(io.WriteCloser).Close()
	_, _ = ios.pagerProcess.Wait()
	ios.pagerProcess = nil
}

func (ios *IOStreams) CanPrompt() bool {
	if ios.neverPrompt {
		return false
	}

	return ios.IsStdinTTY() && ios.IsStdoutTTY()
}

func (ios *IOStreams) GetNeverPrompt() bool {
	return ios.neverPrompt
}

func (ios *IOStreams) SetNeverPrompt(v bool) {
	ios.neverPrompt = v
}

// StartProgressIndicator shows a spinner with label on stderr. It is a no-op
// unless stderr is a terminal.
func (ios *IOStreams) StartProgressIndicator(label string) {
	if !ios.progressIndicatorEnabled {
		return
	}
	ios.progressIndicatorMu.Lock()
	defer ios.progressIndicatorMu.Unlock()

	if ios.progressIndicator != nil {
		ios.progressIndicator.Suffix = " " + label
		return
	}

	sp := spinner.New(spinner.CharSets[11], 120*time.Millisecond, spinner.WithWriter(ios.ErrOut), spinner.WithColor("fgCyan"))
	sp.Suffix = " " + label
	sp.Start()
	ios.progressIndicator = sp
}

func (ios *IOStreams) StopProgressIndicator() {
	ios.progressIndicatorMu.Lock()
	defer ios.progressIndicatorMu.Unlock()
	if ios.progressIndicator == nil {
		return
	}
	ios.progressIndicator.Stop()
	ios.progressIndicator = nil
}

func (ios *IOStreams) SetProgressIndicatorEnabled(enabled bool) {
	ios.progressIndicatorEnabled = enabled
}

// TerminalWidth returns the width of the terminal that controls the process
func (ios *IOStreams) TerminalWidth() int {
	w, _, err := ios.term.Size()
	if err == nil && w > 0 {
		return w
	}
	return DefaultWidth
}

func (ios *IOStreams) ColorScheme() *ColorScheme {
	return NewColorScheme(ios.ColorEnabled())
}

// ReadUserFile reads fn, or stdin when fn is "-".
func (ios *IOStreams) ReadUserFile(fn string) ([]byte, error) {
	var r io.ReadCloser
	if fn == "-" {
		r = ios.In
	} else {
		var err error
		r, err = os.Open(fn)
		if err != nil {
			return nil, err
		}
	}
	defer r.Close()
	return io.ReadAll(r)
}

func System() *IOStreams {
	terminal := fromEnv()

	var stdout fileWriter = os.Stdout
	// On Windows with no virtual terminal processing support, translate ANSI escape
	// sequences to console syscalls
	if colorableStdout := colorable.NewColorable(os.Stdout); colorableStdout != os.Stdout {
		// ensure that the file descriptor of the original stdout is preserved
		stdout = &fdWriter{
			fd:     os.Stdout.Fd(),
			Writer: colorableStdout,
		}
	}

	io := &IOStreams{
		In:           os.Stdin,
		Out:          stdout,
		ErrOut:       colorable.NewColorable(os.Stderr),
		pagerCommand: os.Getenv("PAGER"),
		term:         &terminal,
		colorEnabled: terminal.IsColorEnabled(),
	}

	if io.IsStdoutTTY() && io.IsStderrTTY() {
		io.progressIndicatorEnabled = true
	}

	return io
}

type fakeTerm struct{}

func (t fakeTerm) IsTerminalOutput() bool {
	return false
}

func (t fakeTerm) IsColorEnabled() bool {
	return false
}

func (t fakeTerm) Size() (int, int, error) {
	return 80, -1, nil
}

func Test() (*IOStreams, *bytes.Buffer, *bytes.Buffer, *bytes.Buffer) {
	in := &bytes.Buffer{}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	io := &IOStreams{
		In: &fdReader{
			fd:         0,
			ReadCloser: io.NopCloser(in),
		},
		Out:    &fdWriter{fd: 1, Writer: out},
		ErrOut: errOut,
		term:   &fakeTerm{},
	}
	io.SetStdinTTY(false)
	io.SetStdoutTTY(false)
	io.SetStderrTTY(false)
	return io, in, out, errOut
}

// pagerWriter implements a WriteCloser that wraps all EPIPE errors in an ErrClosedPagerPipe type.
type pagerWriter struct {
	io.WriteCloser
}

func (w *pagerWriter) Write(d []byte) (int, error) {
	n, err := w.WriteCloser.Write(d)
	if err != nil && (errors.Is(err, io.ErrClosedPipe) || isEpipeError(err)) {
		return n, &ErrClosedPagerPipe{err}
	}
	return n, err
}

// fdWriter represents a wrapped stdout Writer that preserves the original file descriptor
type fdWriter struct {
	io.Writer
	fd uintptr
}

func (w *fdWriter) Fd() uintptr {
	return w.fd
}

// fdWriteCloser represents a wrapped stdout Writer that preserves the original file descriptor
type fdWriteCloser struct {
	io.WriteCloser
	fd uintptr
}

func (w *fdWriteCloser) Fd() uintptr {
	return w.fd
}

// fdReader represents a wrapped stdin ReadCloser that preserves the original file descriptor
type fdReader struct {
	io.ReadCloser
	fd uintptr
}

func (r *fdReader) Fd() uintptr {
	return r.fd
}
