package azdo

import (
	"context"

	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/core"
	"github.com/tmeckel/tfsprops/internal/properties"
)

// Connection is an authenticated connection to a team project collection.
type Connection interface {
	// Collection returns the normalized collection key.
	Collection() string
	BaseURL() string
}

// ConnectionFactory provides connections to team project collections.
type ConnectionFactory interface {
	Connection(collection string) (Connection, error)
}

// ClientFactory provides collection-scoped SDK clients.
type ClientFactory interface {
	Core(ctx context.Context, collection string) (core.Client, error)
	// Authenticate verifies the stored credentials against the collection and
	// returns the display name of the authenticated identity.
	Authenticate(ctx context.Context, collection string) (string, error)
	PropertyStore(ctx context.Context, collection string) (properties.Store, error)
}

// ProjectPropertiesClient is the part of core.Client the property store uses.
type ProjectPropertiesClient interface {
	GetProject(context.Context, core.GetProjectArgs) (*core.TeamProject, error)
	GetProjectProperties(context.Context, core.GetProjectPropertiesArgs) (*[]core.ProjectProperty, error)
	SetProjectProperties(context.Context, core.SetProjectPropertiesArgs) error
}
