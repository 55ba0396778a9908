package config

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/zalando/go-keyring"
	"go.uber.org/zap"
)

const tfspropsToken = "TFSPROPS_TOKEN"

// TokenSource tells where a token was found.
type TokenSource string

const (
	TokenSourceEnv     TokenSource = tfspropsToken
	TokenSourceConfig  TokenSource = "collections.yml"
	TokenSourceKeyring TokenSource = "keyring"
)

type AuthConfig interface {
	GetURL(collection string) (string, error)
	GetCollections() []string
	GetToken(collection string) (string, error)
	GetTokenWithSource(collection string) (string, TokenSource, error)
	Login(collection, collectionURL, token string, secureStorage bool) (insecure bool, err error)
	Logout(collection string) error
}

// authConfig is used for interacting with the persistent configuration of
// collections, with knowledge on how to access the system keyring.
type authConfig struct {
	cfg Config
}

// GetToken retrieves the personal access token for a collection, searching
// the environment, the plain text config and lastly the system keyring.
func (c *authConfig) GetToken(collection string) (string, error) {
	token, _, err := c.GetTokenWithSource(collection)
	return token, err
}

func (c *authConfig) GetTokenWithSource(collection string) (string, TokenSource, error) {
	if token, ok := os.LookupEnv(tfspropsToken); ok && token != "" {
		return token, TokenSourceEnv, nil
	}
	token, err := c.cfg.Get([]string{Collections, collection, Pat})
	if err == nil && token != "" {
		return token, TokenSourceConfig, nil
	}
	if err != nil && !errors.Is(err, &KeyNotFoundError{}) {
		return "", "", err
	}
	token, err = keyring.Get(keyringServiceName(collection), "")
	if err != nil {
		// a host without a usable keyring simply has no stored token
		if !errors.Is(err, keyring.ErrNotFound) {
			zap.L().Debug("Keyring not available", zap.String("collection", collection), zap.Error(err))
		}
		return "", "", &KeyNotFoundError{Pat}
	}
	return token, TokenSourceKeyring, nil
}

// GetURL returns the collection URL the credentials were stored for.
func (c *authConfig) GetURL(collection string) (string, error) {
	return c.cfg.Get([]string{Collections, collection, URL})
}

func (c *authConfig) GetCollections() []string {
	collections := hashset.New()
	if c.cfg != nil {
		keys, err := c.cfg.Keys([]string{Collections})
		if err == nil {
			for _, v := range keys {
				collections.Add(v)
			}
		}
	}
	values := collections.Values()
	items := make([]string, len(values))
	for i, v := range values {
		items[i] = v.(string)
	}
	sort.Strings(items)
	return items
}

// Login stores the URL and token of a collection. With secureStorage the token
// goes to the system keyring first and falls back to the plain text config
// file; insecure reports whether that fallback was taken.
func (c *authConfig) Login(collection, collectionURL, token string, secureStorage bool) (insecure bool, err error) {
	var setErr error
	if secureStorage {
		if setErr = keyring.Set(keyringServiceName(collection), "", token); setErr == nil {
			_ = c.cfg.Remove([]string{Collections, collection, Pat})
		}
	}
	c.cfg.Set([]string{Collections, collection, URL}, collectionURL)
	if !secureStorage || setErr != nil {
		c.cfg.Set([]string{Collections, collection, Pat}, token)
		insecure = true
	}
	return insecure, c.cfg.Write()
}

// Logout removes the URL and token of a collection, including the token in
// the system keyring.
func (c *authConfig) Logout(collection string) error {
	if collection == "" {
		return nil
	}
	if err := c.cfg.Remove([]string{Collections, collection}); err != nil {
		return err
	}
	if err := keyring.Delete(keyringServiceName(collection), ""); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("failed to remove token from keyring: %w", err)
	}
	return c.cfg.Write()
}

func keyringServiceName(collection string) string {
	return "tfsprops:" + collection
}
