// Package config is a set of types for interacting with the tfsprops configuration files.
package config

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

const (
	appData       = "AppData"
	configDirEnv  = "TFSPROPS_CONFIG_DIR"
	xdgConfigHome = "XDG_CONFIG_HOME"
)

var (
	instance *configData
	once     sync.Once
	loadErr  error
)

// configData is an in memory representation of the tfsprops configuration
// files. General settings live in config.yml, per collection entries in
// collections.yml; both are merged into one tree below the Collections key.
type configData struct {
	entries  *yamlMap
	mu       sync.RWMutex
	general  bool
	accounts bool
}

// Get a string value from a configData.
// Returns "", KeyNotFoundError if any of the keys can not be found.
func (c *configData) Get(keys []string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	m := c.entries
	for _, key := range keys {
		var err error
		m, err = m.findEntry(key)
		if err != nil {
			return "", &KeyNotFoundError{key}
		}
	}
	return m.Value, nil
}

func (c *configData) GetOrDefault(keys []string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	m := c.entries
	for _, key := range keys {
		var err error
		m, err = m.findEntry(key)
		if err != nil {
			return defaultFor(key), nil
		}
	}
	if m.Value == "" && len(keys) > 0 {
		return defaultFor(keys[len(keys)-1]), nil
	}
	return m.Value, nil
}

// Keys enumerates the keys of a nested map.
// Returns nil, KeyNotFoundError if any of the keys can not be found.
func (c *configData) Keys(keys []string) ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	m := c.entries
	for _, key := range keys {
		var err error
		m, err = m.findEntry(key)
		if err != nil {
			return nil, &KeyNotFoundError{key}
		}
	}
	return m.keys(), nil
}

// Remove an entry and everything nested below it.
// Returns KeyNotFoundError if any of the keys can not be found.
func (c *configData) Remove(keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	m := c.entries
	for i := 0; i < len(keys)-1; i++ {
		var err error
		key := keys[i]
		m, err = m.findEntry(key)
		if err != nil {
			return &KeyNotFoundError{key}
		}
	}
	err := m.removeEntry(keys[len(keys)-1])
	if err != nil {
		return &KeyNotFoundError{keys[len(keys)-1]}
	}
	c.touch(keys)
	return nil
}

// Set a string value. Missing intermediate maps are created.
func (c *configData) Set(keys []string, value string) {
	if len(keys) == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	m := c.entries
	for i := 0; i < len(keys)-1; i++ {
		key := keys[i]
		entry, err := m.findEntry(key)
		if err != nil || !entry.isMap() {
			entry = mapValue()
			m.setEntry(key, entry)
		}
		m = entry
	}
	m.setEntry(keys[len(keys)-1], stringValue(value))
	c.touch(keys)
}

func (c *configData) touch(keys []string) {
	if keys[0] == Collections {
		c.accounts = true
	} else {
		c.general = true
	}
}

// Read the configuration files from the local file system once.
var Read = func() (*configData, error) {
	once.Do(func() {
		instance, loadErr = load(generalConfigFile(), collectionsConfigFile())
	})
	return instance, loadErr
}

// ReadFromString takes a yaml string and returns a configData.
func ReadFromString(str string) *configData {
	m, _ := unmarshalMap([]byte(str))
	if m == nil {
		m = mapValue()
	}
	return &configData{entries: m}
}

// Write stores the configuration files that were modified since they were
// read.
func Write(c *configData) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accounts {
		content := ""
		if collections, err := c.entries.findEntry(Collections); err == nil {
			content = collections.String()
		}
		if err := writeFile(collectionsConfigFile(), []byte(content)); err != nil {
			return err
		}
		c.accounts = false
	}

	if c.general {
		if err := writeFile(generalConfigFile(), []byte(c.entries.without(Collections).String())); err != nil {
			return err
		}
		c.general = false
	}
	return nil
}

func load(generalFilePath, collectionsFilePath string) (*configData, error) {
	generalMap, err := mapFromFile(generalFilePath)
	if err != nil && !os.IsNotExist(err) {
		if errors.Is(err, ErrInvalidYaml) || errors.Is(err, ErrInvalidFormat) {
			return nil, &InvalidConfigFileError{Path: generalFilePath, Err: err}
		}
		return nil, err
	}
	if generalMap == nil || generalMap.empty() {
		generalMap, _ = unmarshalMap([]byte(defaultGeneralEntries))
	}

	collectionsMap, err := mapFromFile(collectionsFilePath)
	if err != nil && !os.IsNotExist(err) {
		if errors.Is(err, ErrInvalidYaml) || errors.Is(err, ErrInvalidFormat) {
			return nil, &InvalidConfigFileError{Path: collectionsFilePath, Err: err}
		}
		return nil, err
	}
	if collectionsMap != nil && !collectionsMap.empty() {
		generalMap.setEntry(Collections, collectionsMap)
	}

	return &configData{entries: generalMap}, nil
}

func generalConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yml")
}

func collectionsConfigFile() string {
	return filepath.Join(ConfigDir(), "collections.yml")
}

func mapFromFile(filename string) (*yamlMap, error) {
	data, err := readFile(filename)
	if err != nil {
		return nil, err
	}
	return unmarshalMap(data)
}

// ConfigDir path precedence: TFSPROPS_CONFIG_DIR, XDG_CONFIG_HOME, AppData (windows only), HOME.
func ConfigDir() string {
	var path string
	if a := os.Getenv(configDirEnv); a != "" {
		path = a
	} else if b := os.Getenv(xdgConfigHome); b != "" {
		path = filepath.Join(b, "tfsprops")
	} else if c := os.Getenv(appData); runtime.GOOS == "windows" && c != "" {
		path = filepath.Join(c, "tfsprops")
	} else {
		d, _ := os.UserHomeDir()
		path = filepath.Join(d, ".config", "tfsprops")
	}
	return path
}

func readFile(filename string) ([]byte, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func writeFile(filename string, data []byte) (writeErr error) {
	if writeErr = os.MkdirAll(filepath.Dir(filename), 0o771); writeErr != nil {
		return
	}
	var file *os.File
	if file, writeErr = os.OpenFile(filename, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600); writeErr != nil {
		return
	}
	defer func() {
		if err := file.Close(); writeErr == nil && err != nil {
			writeErr = err
		}
	}()
	_, writeErr = file.Write(data)
	return
}

var defaultGeneralEntries = `
# When to interactively prompt. Supported values: enabled, disabled
prompt: enabled
# A pager program to send command output to, e.g. "less". Set the value to "cat" to disable the pager.
pager:
`
