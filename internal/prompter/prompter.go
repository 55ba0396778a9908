// Package prompter asks interactive questions on the terminal.
package prompter

import (
	"errors"
	"fmt"
	"io"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

type Prompter interface {
	// Password asks for a secret without echoing it.
	Password(prompt string) (string, error)
	Confirm(prompt string, defaultValue bool) (bool, error)
}

type fileWriter interface {
	io.Writer
	Fd() uintptr
}

type fileReader interface {
	io.Reader
	Fd() uintptr
}

func New(stdin fileReader, stdout fileWriter, stderr io.Writer) Prompter {
	return &surveyPrompter{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
}

type surveyPrompter struct {
	stdin  fileReader
	stdout fileWriter
	stderr io.Writer
}

func (p *surveyPrompter) ask(q survey.Prompt, response interface{}, opts ...survey.AskOpt) error {
	opts = append(opts, survey.WithStdio(p.stdin, p.stdout, p.stderr))
	err := survey.AskOne(q, response, opts...)
	if errors.Is(err, terminal.InterruptErr) {
		return err
	}
	if err != nil {
		return fmt.Errorf("could not prompt: %w", err)
	}
	return nil
}

func (p *surveyPrompter) Password(prompt string) (result string, err error) {
	err = p.ask(&survey.Password{
		Message: prompt,
	}, &result, survey.WithValidator(survey.Required))
	return
}

func (p *surveyPrompter) Confirm(prompt string, defaultValue bool) (result bool, err error) {
	err = p.ask(&survey.Confirm{
		Message: prompt,
		Default: defaultValue,
	}, &result)
	return
}
