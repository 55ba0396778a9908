package azdo

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/purell"
)

// ParseCollectionURL validates the URL of a team project collection, e.g.
// https://tfs.example.com/tfs/DefaultCollection. Credentials, query and
// fragment are dropped.
func ParseCollectionURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, errors.New("collection URL must not be empty")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid collection URL %q: %w", raw, err)
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	default:
		return nil, fmt.Errorf("invalid collection URL %q: unsupported scheme %q", raw, u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid collection URL %q: missing host", raw)
	}
	u.User = nil
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}

// CollectionKey returns the normalized form of a collection URL used to look
// up stored credentials. Scheme, host and path are compared case-insensitively
// and default ports and trailing slashes are ignored.
func CollectionKey(u *url.URL) string {
	c := *u
	normalized := purell.NormalizeURL(&c, purell.FlagsUsuallySafeGreedy|purell.FlagRemoveDuplicateSlashes)
	return strings.ToLower(normalized)
}

// NormalizeCollection parses raw and returns its key.
func NormalizeCollection(raw string) (string, error) {
	u, err := ParseCollectionURL(raw)
	if err != nil {
		return "", err
	}
	return CollectionKey(u), nil
}
