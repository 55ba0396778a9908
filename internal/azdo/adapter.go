package azdo

import (
	"strings"

	"github.com/microsoft/azure-devops-go-api/azuredevops/v7"
)

type connectionAdapter struct {
	conn       *azuredevops.Connection
	collection string
}

var _ Connection = (*connectionAdapter)(nil)

// NewPatConnection creates a connection to collectionURL that authenticates
// with a personal access token.
func NewPatConnection(collectionURL string, personalAccessToken string) (Connection, error) {
	u, err := ParseCollectionURL(collectionURL)
	if err != nil {
		return nil, err
	}
	return &connectionAdapter{
		conn:       azuredevops.NewPatConnection(strings.TrimRight(u.String(), "/"), personalAccessToken),
		collection: CollectionKey(u),
	}, nil
}

func (c *connectionAdapter) Collection() string {
	return c.collection
}

func (c *connectionAdapter) BaseURL() string {
	return c.conn.BaseUrl
}
