package iostreams

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	xterm "golang.org/x/term"
)

// Term describes the terminal the process writes its standard output to.
type Term struct {
	out          *os.File
	isTTY        bool
	colorEnabled bool
}

// fromEnv inspects stdout and the NO_COLOR and CLICOLOR_FORCE environment
// variables.
func fromEnv() Term {
	isTTY := isTerminal(os.Stdout)
	profile := termenv.NewOutput(os.Stdout).EnvColorProfile()
	return Term{
		out:          os.Stdout,
		isTTY:        isTTY,
		colorEnabled: profile != termenv.Ascii,
	}
}

func (t *Term) IsTerminalOutput() bool {
	return t.isTTY
}

func (t *Term) IsColorEnabled() bool {
	return t.colorEnabled
}

func (t *Term) Size() (int, int, error) {
	return xterm.GetSize(int(t.out.Fd()))
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
