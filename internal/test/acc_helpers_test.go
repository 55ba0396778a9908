package test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmeckel/tfsprops/internal/config"
)

func TestNewTestContext(t *testing.T) {
	t.Setenv("TFSPROPS_TOKEN", "")
	t.Setenv(accCollectionEnv, "https://TFS.example.com/tfs/DefaultCollection/")
	t.Setenv(accPATEnv, "secret-pat")
	t.Setenv(accProjectEnv, " Fabrikam ")
	t.Setenv(accTimeoutEnv, "")

	tc := newTestContext(t)

	assert.Equal(t, "https://tfs.example.com/tfs/defaultcollection", tc.Collection())
	assert.Equal(t, "https://TFS.example.com/tfs/DefaultCollection/", tc.CollectionURL())
	assert.Equal(t, "secret-pat", tc.PAT())
	assert.Equal(t, "Fabrikam", tc.Project())

	cfg, err := tc.Config()
	require.NoError(t, err)
	url, err := cfg.Get([]string{config.Collections, tc.Collection(), config.URL})
	require.NoError(t, err)
	assert.Equal(t, tc.CollectionURL(), url)

	token, source, err := cfg.Authentication().GetTokenWithSource(tc.Collection())
	require.NoError(t, err)
	assert.Equal(t, "secret-pat", token)
	assert.Equal(t, config.TokenSourceConfig, source)

	_, hasDeadline := tc.Context().Deadline()
	assert.True(t, hasDeadline)

	p, err := tc.Prompter()
	require.NoError(t, err)
	_, err = p.Password("token")
	assert.Error(t, err)
}

func TestAccTimeout(t *testing.T) {
	tests := []struct {
		val     string
		want    time.Duration
		wantErr bool
	}{
		{val: "", want: accTimeoutSeconds * time.Second},
		{val: "-1", want: 0},
		{val: "90s", want: 90 * time.Second},
		{val: "15", want: 15 * time.Second},
		{val: "0s", wantErr: true},
		{val: "soon", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.val, func(t *testing.T) {
			got, err := accTimeout(tt.val)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTestContextValueStore(t *testing.T) {
	tc := &testContext{}
	tc.SetValue("k", 42)
	tc.SetValue(nil, "ignored")

	v, ok := tc.Value("k")
	assert.True(t, ok)
	assert.Equal(t, 42, v)

	_, ok = tc.Value(nil)
	assert.False(t, ok)
}

func TestRunStep(t *testing.T) {
	boom := errors.New("boom")

	t.Run("post runs after failed run", func(t *testing.T) {
		var calls []string
		err := runStep(&testContext{}, Step{
			Run:     func(TestContext) error { calls = append(calls, "run"); return boom },
			Verify:  func(TestContext) error { calls = append(calls, "verify"); return nil },
			PostRun: func(TestContext) error { calls = append(calls, "post"); return nil },
		})
		require.ErrorIs(t, err, boom)
		assert.Equal(t, []string{"run", "post"}, calls)
	})

	t.Run("failed pre skips everything", func(t *testing.T) {
		ran := false
		err := runStep(&testContext{}, Step{
			PreRun: func(TestContext) error { return boom },
			Run:    func(TestContext) error { ran = true; return nil },
		})
		require.ErrorIs(t, err, boom)
		assert.False(t, ran)
	})

	t.Run("success", func(t *testing.T) {
		require.NoError(t, runStep(&testContext{}, Step{
			Run:    func(TestContext) error { return nil },
			Verify: func(TestContext) error { return nil },
		}))
	})
}
