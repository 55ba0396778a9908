// Package test runs acceptance tests against a live team project collection.
package test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tmeckel/tfsprops/internal/azdo"
	"github.com/tmeckel/tfsprops/internal/cmd/util"
	"github.com/tmeckel/tfsprops/internal/config"
	"github.com/tmeckel/tfsprops/internal/iostreams"
	"github.com/tmeckel/tfsprops/internal/prompter"
)

const (
	accToggleEnv      = "TFSPROPS_ACC_TEST"
	accCollectionEnv  = "TFSPROPS_ACC_COLLECTION"
	accPATEnv         = "TFSPROPS_ACC_PAT"
	accProjectEnv     = "TFSPROPS_ACC_PROJECT"
	accTimeoutEnv     = "TFSPROPS_ACC_TIMEOUT"
	accTimeoutSeconds = 60
)

type TestCase struct {
	PreCheck func() error
	Steps    []Step
}

type TestContext interface {
	util.CmdContext
	// Collection returns the normalized collection key.
	Collection() string
	CollectionURL() string
	PAT() string
	Project() string
	Stdout() *bytes.Buffer
	Stderr() *bytes.Buffer
	SetValue(key, value any)
	Value(key any) (any, bool)
}

type acceptanceCmdContext struct {
	baseCtx       context.Context
	ios           *iostreams.IOStreams
	cfg           config.Config
	clientFactory azdo.ClientFactory
	prompter      prompter.Prompter
}

var _ util.CmdContext = (*acceptanceCmdContext)(nil)

func (a *acceptanceCmdContext) Context() context.Context          { return a.baseCtx }
func (a *acceptanceCmdContext) ClientFactory() azdo.ClientFactory { return a.clientFactory }
func (a *acceptanceCmdContext) Prompter() (prompter.Prompter, error) {
	if a.prompter == nil {
		a.prompter = &stubPrompter{}
	}
	return a.prompter, nil
}
func (a *acceptanceCmdContext) Config() (config.Config, error)           { return a.cfg, nil }
func (a *acceptanceCmdContext) IOStreams() (*iostreams.IOStreams, error) { return a.ios, nil }

type testContext struct {
	collection    string
	collectionURL string
	pat           string
	project       string
	stdout        *bytes.Buffer
	stderr        *bytes.Buffer
	data          sync.Map
	util.CmdContext
}

var _ util.CmdContext = (*testContext)(nil)

func (tc *testContext) Collection() string    { return tc.collection }
func (tc *testContext) CollectionURL() string { return tc.collectionURL }
func (tc *testContext) PAT() string           { return tc.pat }
func (tc *testContext) Project() string       { return tc.project }
func (tc *testContext) Stdout() *bytes.Buffer { return tc.stdout }
func (tc *testContext) Stderr() *bytes.Buffer { return tc.stderr }

func (tc *testContext) SetValue(key, value any) {
	if key == nil {
		return
	}
	tc.data.Store(key, value)
}

func (tc *testContext) Value(key any) (any, bool) {
	if key == nil {
		return nil, false
	}
	return tc.data.Load(key)
}

func newTestContext(t *testing.T) TestContext {
	collectionURL := strings.TrimSpace(os.Getenv(accCollectionEnv))
	pat := os.Getenv(accPATEnv)
	project := strings.TrimSpace(os.Getenv(accProjectEnv))

	if collectionURL == "" || pat == "" || project == "" {
		t.Fatalf("missing acceptance env variables: %q, %q, %q", accCollectionEnv, accPATEnv, accProjectEnv)
	}
	key, err := azdo.NormalizeCollection(collectionURL)
	if err != nil {
		t.Fatalf("invalid %s: %v", accCollectionEnv, err)
	}

	// marshal instead of interpolating so env values cannot break the YAML
	cfgBytes, err := yaml.Marshal(map[string]any{
		config.Collections: map[string]any{
			key: map[string]any{
				config.URL: collectionURL,
				config.Pat: pat,
			},
		},
	})
	if err != nil {
		t.Fatalf("failed to marshal config YAML: %v", err)
	}
	cfg := config.NewFromString(string(cfgBytes))

	connFactory, err := azdo.NewConnectionFactory(util.NewPatAuthenticator(cfg))
	if err != nil {
		t.Fatalf("failed to create connection factory: %v", err)
	}
	clientFactory, err := azdo.NewClientFactory(connFactory)
	if err != nil {
		t.Fatalf("failed to create client factory: %v", err)
	}
	ios, _, stdout, stderr := iostreams.Test()

	timeout, err := accTimeout(os.Getenv(accTimeoutEnv))
	if err != nil {
		t.Fatalf("%v", err)
	}
	var baseCtx context.Context
	var cancel context.CancelFunc
	if timeout > 0 {
		baseCtx, cancel = context.WithTimeout(context.Background(), timeout)
	} else {
		baseCtx, cancel = context.WithCancel(context.Background())
	}
	t.Cleanup(cancel)

	return &testContext{
		collection:    key,
		collectionURL: collectionURL,
		pat:           pat,
		project:       project,
		stdout:        stdout,
		stderr:        stderr,
		CmdContext: &acceptanceCmdContext{
			baseCtx:       baseCtx,
			ios:           ios,
			cfg:           cfg,
			clientFactory: clientFactory,
			prompter:      &stubPrompter{},
		},
	}
}

// accTimeout parses a duration like "30s" or a plain number of seconds.
// "-1" disables the timeout.
func accTimeout(val string) (time.Duration, error) {
	switch val {
	case "":
		return accTimeoutSeconds * time.Second, nil
	case "-1":
		return 0, nil
	}
	if d, err := time.ParseDuration(val); err == nil {
		if d <= 0 {
			return 0, fmt.Errorf("invalid %s value '%s': duration must be > 0", accTimeoutEnv, val)
		}
		return d, nil
	}
	var sec int
	if _, err := fmt.Sscanf(val, "%d", &sec); err == nil && sec > 0 {
		return time.Duration(sec) * time.Second, nil
	}
	return 0, fmt.Errorf("invalid %s value '%s': provide a duration (e.g. \"30s\") or a positive integer (seconds)", accTimeoutEnv, val)
}

type stubPrompter struct{}

func (stubPrompter) Password(string) (string, error) {
	return "", fmt.Errorf("interactive prompts are disabled in acceptance tests")
}

func (stubPrompter) Confirm(string, bool) (bool, error) {
	return true, nil
}

type Step struct {
	PreRun  func(TestContext) error
	Run     func(TestContext) error
	PostRun func(TestContext) error
	Verify  func(TestContext) error
}

// runStep executes a single Step and returns an aggregated error.
// PostRun is executed regardless of the Run or Verify outcome.
func runStep(ctx TestContext, s Step) error {
	var errs []error

	if s.PreRun != nil {
		if err := s.PreRun(ctx); err != nil {
			return fmt.Errorf("pre: %w", err)
		}
	}

	if s.Run != nil {
		if err := s.Run(ctx); err != nil {
			errs = append(errs, fmt.Errorf("run: %w", err))
		}
	}

	if s.Verify != nil && len(errs) == 0 {
		if err := s.Verify(ctx); err != nil {
			errs = append(errs, fmt.Errorf("verify: %w", err))
		}
	}

	if s.PostRun != nil {
		if err := s.PostRun(ctx); err != nil {
			errs = append(errs, fmt.Errorf("post: %w", err))
		}
	}

	return errors.Join(errs...)
}

func Test(t *testing.T, tc TestCase) {
	if os.Getenv(accToggleEnv) == "" {
		t.Skipf("Acceptance tests skipped unless env '%s' set", accToggleEnv)
		return
	}

	if tc.PreCheck != nil {
		if err := tc.PreCheck(); err != nil {
			t.Fatalf("test PreCheck failed: %v", err)
		}
	}
	ctx := newTestContext(t)
	for _, s := range tc.Steps {
		if err := runStep(ctx, s); err != nil {
			t.Fatalf("%v", err)
		}
	}
}
