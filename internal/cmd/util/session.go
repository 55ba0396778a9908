package util

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tmeckel/tfsprops/internal/azdo"
	"github.com/tmeckel/tfsprops/internal/iostreams"
	"github.com/tmeckel/tfsprops/internal/properties"
	"go.uber.org/zap"
)

// CollectionOptions are the flags every command talking to a team project
// collection shares.
type CollectionOptions struct {
	Collection string
	Project    string
}

func AddCollectionFlags(cmd *cobra.Command, opts *CollectionOptions) {
	cmd.Flags().StringVarP(&opts.Collection, "collection", "c", "", "URL of the team project collection, e.g. https://tfs.example.com/tfs/DefaultCollection")
	cmd.Flags().StringVarP(&opts.Project, "project", "p", "", "Name of the team project")
	_ = cmd.MarkFlagRequired("collection")
	_ = cmd.MarkFlagRequired("project")
}

// Validate checks the options before any remote call is made.
func (o *CollectionOptions) Validate() error {
	if strings.TrimSpace(o.Collection) == "" {
		return FlagErrorf("a collection URL is required")
	}
	if strings.TrimSpace(o.Project) == "" {
		return FlagErrorf("a project name is required")
	}
	if _, err := azdo.ParseCollectionURL(o.Collection); err != nil {
		return FlagErrorWrap(err)
	}
	return nil
}

// Session is an open connection to the property store of one team project.
type Session struct {
	Collection string
	Project    string
	// User is the display name of the authenticated identity.
	User  string
	Store properties.Store
}

// WithSession connects to the collection named by opts, runs fn with the
// open session and releases the session afterwards, whether fn fails or not.
func WithSession(ctx CmdContext, opts *CollectionOptions, fn func(*Session) error) (err error) {
	if err = opts.Validate(); err != nil {
		return err
	}
	ios, err := ctx.IOStreams()
	if err != nil {
		return err
	}

	collection := strings.TrimSpace(opts.Collection)
	err = ios.WithStyle(ios.ErrOut, iostreams.StyleYellow, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "Connecting to TFS '%s'", collection)
		return err
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(ios.ErrOut)

	session, err := openSession(ctx, ios, collection, strings.TrimSpace(opts.Project))
	if err != nil {
		return err
	}
	defer func() {
		zap.L().Debug("Session released",
			zap.String("collection", session.Collection),
			zap.String("project", session.Project),
			zap.Bool("failed", err != nil))
	}()

	return fn(session)
}

func openSession(ctx CmdContext, ios *iostreams.IOStreams, collection, project string) (*Session, error) {
	ios.StartProgressIndicator("Connecting")
	defer ios.StopProgressIndicator()

	factory := ctx.ClientFactory()
	user, err := factory.Authenticate(ctx.Context(), collection)
	if err != nil {
		return nil, err
	}
	store, err := factory.PropertyStore(ctx.Context(), collection)
	if err != nil {
		return nil, err
	}
	zap.L().Debug("Session opened",
		zap.String("collection", collection),
		zap.String("project", project),
		zap.String("user", user))

	return &Session{
		Collection: collection,
		Project:    project,
		User:       user,
		Store:      store,
	}, nil
}
