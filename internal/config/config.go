package config

import (
	"go.uber.org/zap"
)

const (
	Collections = "collections"
	Pat         = "pat"
	URL         = "url"
)

// Config describes interacting with the persistent configuration of tfsprops.
type Config interface {
	Keys([]string) ([]string, error)
	Get([]string) (string, error)
	GetOrDefault([]string) (string, error)
	Set([]string, string)
	Remove([]string) error
	Write() error
	Authentication() AuthConfig
}

type ConfigReader interface {
	Read() (*configData, error)
}

type defaultConfigReader struct{}

func (cr *defaultConfigReader) Read() (*configData, error) {
	return Read()
}

var defCfgRdr = &defaultConfigReader{}

// Implements Config interface
type cfg struct {
	cfg     *configData
	authCfg *authConfig
}

func NewConfig() (Config, error) {
	return NewConfigWithReader(defCfgRdr)
}

func NewConfigWithReader(rd ConfigReader) (Config, error) {
	c, err := rd.Read()
	if err != nil {
		return nil, err
	}
	cfg := &cfg{
		cfg: c,
	}
	cfg.authCfg = &authConfig{
		cfg: cfg,
	}
	return cfg, nil
}

// NewFromString returns a Config backed by the given YAML document. Writing
// it stores the files in ConfigDir.
func NewFromString(str string) Config {
	c, _ := NewConfigWithReader(stringReader(str))
	return c
}

type stringReader string

func (s stringReader) Read() (*configData, error) {
	return ReadFromString(string(s)), nil
}

func (c *cfg) Keys(keys []string) (values []string, err error) {
	zap.L().Sugar().Debugf("Keys: %+v", keys)

	return c.cfg.Keys(keys)
}

func (c *cfg) Get(keys []string) (string, error) {
	zap.L().Sugar().Debugf("Get: %+v", keys)

	return c.cfg.Get(keys)
}

func (c *cfg) GetOrDefault(keys []string) (val string, err error) {
	zap.L().Sugar().Debugf("GetOrDefault: %+v", keys)

	return c.cfg.GetOrDefault(keys)
}

func (c *cfg) Set(keys []string, value string) {
	if len(keys) > 0 && keys[len(keys)-1] == Pat {
		zap.L().Sugar().Debugf("Set: %+v -> ***", keys)
	} else {
		zap.L().Sugar().Debugf("Set: %+v -> %q", keys, value)
	}

	c.cfg.Set(keys, value)
}

func (c *cfg) Remove(keys []string) error {
	zap.L().Sugar().Debugf("Remove: %+v", keys)

	return c.cfg.Remove(keys)
}

func (c *cfg) Write() error {
	return Write(c.cfg)
}

func (c *cfg) Authentication() AuthConfig {
	return c.authCfg
}
