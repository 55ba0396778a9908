package util

import (
	"context"
	"errors"
	"os"

	"github.com/tmeckel/tfsprops/internal/azdo"
	"github.com/tmeckel/tfsprops/internal/config"
	"github.com/tmeckel/tfsprops/internal/iostreams"
	"github.com/tmeckel/tfsprops/internal/prompter"
	"github.com/tmeckel/tfsprops/internal/util"
)

type CmdContext interface {
	util.ContextAware
	ClientFactory() azdo.ClientFactory
	Prompter() (prompter.Prompter, error)
	Config() (config.Config, error)
	IOStreams() (*iostreams.IOStreams, error)
}

type cmdContext struct {
	ioStreams     *iostreams.IOStreams
	prompter      prompter.Prompter
	ctx           context.Context
	cfg           config.Config
	clientFactory azdo.ClientFactory
}

func NewCmdContext() (ctx CmdContext, err error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return
	}

	connFactory, err := azdo.NewConnectionFactory(NewPatAuthenticator(cfg))
	if err != nil {
		return
	}
	clientFactory, err := azdo.NewClientFactory(connFactory)
	if err != nil {
		return
	}

	iostrms, err := newIOStreams(cfg)
	if err != nil {
		return
	}

	c := &cmdContext{
		ioStreams:     iostrms,
		prompter:      prompter.New(iostrms.In, iostrms.Out, iostrms.ErrOut),
		ctx:           context.Background(),
		cfg:           cfg,
		clientFactory: clientFactory,
	}
	ctx = c
	return
}

func (c *cmdContext) Prompter() (prompter.Prompter, error) {
	return c.prompter, nil
}

func (c *cmdContext) Context() context.Context {
	return c.ctx
}

func (c *cmdContext) ClientFactory() azdo.ClientFactory {
	return c.clientFactory
}

func (c *cmdContext) Config() (config.Config, error) {
	return c.cfg, nil
}

func (c *cmdContext) IOStreams() (*iostreams.IOStreams, error) {
	return c.ioStreams, nil
}

// patAuthenticator reads personal access tokens from the configuration.
type patAuthenticator struct {
	cfg config.Config
}

func NewPatAuthenticator(cfg config.Config) azdo.Authenticator {
	return &patAuthenticator{cfg: cfg}
}

func (p *patAuthenticator) GetPAT(collection string) (string, error) {
	pat, err := p.cfg.Authentication().GetToken(collection)
	if err != nil {
		if errors.Is(err, &config.KeyNotFoundError{}) {
			return "", &azdo.AuthError{Collection: collection, Err: azdo.ErrNoToken}
		}
		return "", err
	}
	return pat, nil
}

func newIOStreams(cfg config.Config) (*iostreams.IOStreams, error) {
	io := iostreams.System()

	if _, promptDisabled := os.LookupEnv("TFSPROPS_PROMPT_DISABLED"); promptDisabled {
		io.SetNeverPrompt(true)
	} else if prompt, _ := cfg.GetOrDefault([]string{"prompt"}); prompt == "disabled" {
		io.SetNeverPrompt(true)
	}

	// Pager precedence
	// 1. TFSPROPS_PAGER
	// 2. pager from config
	// 3. PAGER
	if pager, ok := os.LookupEnv("TFSPROPS_PAGER"); ok {
		io.SetPager(pager)
	} else if pager, _ := cfg.Get([]string{"pager"}); pager != "" {
		io.SetPager(pager)
	}

	return io, nil
}
