package azdo

import (
	"context"
	"fmt"

	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/core"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/location"
	"github.com/tmeckel/tfsprops/internal/properties"
	"github.com/tmeckel/tfsprops/internal/types"
	"go.uber.org/zap"
)

type connectionFactory struct {
	auth Authenticator
}

func NewConnectionFactory(auth Authenticator) (ConnectionFactory, error) {
	return &connectionFactory{
		auth: auth,
	}, nil
}

func (c *connectionFactory) Connection(collection string) (Connection, error) {
	u, err := ParseCollectionURL(collection)
	if err != nil {
		return nil, err
	}
	key := CollectionKey(u)

	pat, err := c.auth.GetPAT(key)
	if err != nil {
		return nil, err
	}
	zap.L().Debug("Opening collection connection", zap.String("collection", key))
	return NewPatConnection(u.String(), pat)
}

type clientFactory struct {
	factory ConnectionFactory
}

func NewClientFactory(factory ConnectionFactory) (ClientFactory, error) {
	return &clientFactory{
		factory: factory,
	}, nil
}

func (c *clientFactory) Core(ctx context.Context, collection string) (core.Client, error) {
	conn, err := c.factory.Connection(collection)
	if err != nil {
		return nil, err
	}
	return core.NewClient(ctx, conn.(*connectionAdapter).conn)
}

func (c *clientFactory) Authenticate(ctx context.Context, collection string) (string, error) {
	conn, err := c.factory.Connection(collection)
	if err != nil {
		return "", err
	}
	client := location.NewClient(ctx, conn.(*connectionAdapter).conn)
	data, err := client.GetConnectionData(ctx, location.GetConnectionDataArgs{})
	if err != nil {
		if IsUnauthorized(err) {
			return "", &AuthError{Collection: conn.Collection(), Err: err}
		}
		return "", fmt.Errorf("failed to connect to %s: %w", conn.BaseURL(), err)
	}

	var user string
	if data != nil && data.AuthenticatedUser != nil {
		user = types.GetValue(data.AuthenticatedUser.ProviderDisplayName, "")
	}
	zap.L().Debug("Authenticated", zap.String("collection", conn.Collection()), zap.String("user", user))
	return user, nil
}

func (c *clientFactory) PropertyStore(ctx context.Context, collection string) (properties.Store, error) {
	client, err := c.Core(ctx, collection)
	if err != nil {
		return nil, fmt.Errorf("failed to create core client: %w", err)
	}
	return NewPropertyStore(client), nil
}
