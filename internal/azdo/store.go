package azdo

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/core"
	"github.com/spewerspew/spew"
	"github.com/tmeckel/tfsprops/internal/properties"
	"github.com/tmeckel/tfsprops/internal/types"
	"go.uber.org/zap"
)

// ErrStateConflict is returned when the properties of a project changed
// between reading and writing them.
var ErrStateConflict = errors.New("project properties were modified since they were read")

type propertyStore struct {
	client   ProjectPropertiesClient
	projects map[string]uuid.UUID
}

var _ properties.Store = (*propertyStore)(nil)

// NewPropertyStore returns a properties.Store backed by the project
// properties REST API. The API has no version tag, so the state token it
// hands out is a fingerprint of the property set. SetProperties reads the set
// a second time to compare fingerprints before it patches: a read followed by
// a write costs two GetProjectProperties calls and one SetProjectProperties
// call. Project ids are resolved once per store.
func NewPropertyStore(client ProjectPropertiesClient) properties.Store {
	return &propertyStore{
		client:   client,
		projects: map[string]uuid.UUID{},
	}
}

func (s *propertyStore) GetProperties(ctx context.Context, project string) (*properties.Set, error) {
	id, err := s.projectID(ctx, project)
	if err != nil {
		return nil, err
	}
	props, err := s.read(ctx, id)
	if err != nil {
		return nil, err
	}
	return &properties.Set{
		State:      Fingerprint(props),
		Properties: props,
	}, nil
}

func (s *propertyStore) SetProperties(ctx context.Context, project string, state string, props []properties.Property) error {
	id, err := s.projectID(ctx, project)
	if err != nil {
		return err
	}
	current, err := s.read(ctx, id)
	if err != nil {
		return err
	}
	if Fingerprint(current) != state {
		return fmt.Errorf("project %q: %w", project, ErrStateConflict)
	}

	patch := PropertiesPatch(current, props)
	if len(patch) == 0 {
		zap.L().Debug("Project properties unchanged", zap.String("project", project))
		return nil
	}
	if ce := zap.L().Check(zap.DebugLevel, "Updating project properties"); ce != nil {
		ce.Write(zap.String("project", project), zap.String("patch", spew.Sdump(patch)))
	}

	err = s.client.SetProjectProperties(ctx, core.SetProjectPropertiesArgs{
		ProjectId:     &id,
		PatchDocument: &patch,
	})
	if err != nil {
		return fmt.Errorf("failed to set properties of project %q: %w", project, err)
	}
	return nil
}

func (s *propertyStore) projectID(ctx context.Context, project string) (uuid.UUID, error) {
	if id, ok := s.projects[project]; ok {
		return id, nil
	}
	prj, err := s.client.GetProject(ctx, core.GetProjectArgs{
		ProjectId: types.ToPtr(project),
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to get project %q: %w", project, err)
	}
	if prj == nil || prj.Id == nil {
		return uuid.Nil, fmt.Errorf("project %q not found", project)
	}
	s.projects[project] = *prj.Id
	return *prj.Id, nil
}

func (s *propertyStore) read(ctx context.Context, id uuid.UUID) ([]properties.Property, error) {
	res, err := s.client.GetProjectProperties(ctx, core.GetProjectPropertiesArgs{
		ProjectId: &id,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get project properties: %w", err)
	}
	props := []properties.Property{}
	if res == nil {
		return props, nil
	}
	for _, p := range *res {
		name := types.GetValue(p.Name, "")
		if name == "" {
			continue
		}
		props = append(props, properties.Property{
			Name:  name,
			Value: valueString(p.Value),
		})
	}
	return props, nil
}

func valueString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}

// Fingerprint returns a digest of a property list that does not depend on
// the order of the entries.
func Fingerprint(props []properties.Property) string {
	sorted := slices.Clone(props)
	slices.SortFunc(sorted, func(a, b properties.Property) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.Value, b.Value)
	})
	h := sha256.New()
	for _, p := range sorted {
		fmt.Fprintf(h, "%d:%s=%d:%s;", len(p.Name), p.Name, len(p.Value), p.Value)
	}
	return hex.EncodeToString(h.Sum(nil))
}
