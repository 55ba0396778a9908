package azdo

import (
	"strings"

	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/webapi"
	"github.com/tmeckel/tfsprops/internal/properties"
	"github.com/tmeckel/tfsprops/internal/types"
)

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// PropertyPath returns the JSON pointer addressing a project property.
func PropertyPath(name string) string {
	return "/" + pointerEscaper.Replace(name)
}

// PropertiesPatch returns the JSON patch document turning current into desired.
// Removals come first, followed by additions and replacements in the order of
// desired. Unchanged properties produce no operation.
func PropertiesPatch(current, desired []properties.Property) []webapi.JsonPatchOperation {
	existing := make(map[string]string, len(current))
	for _, p := range current {
		existing[p.Name] = p.Value
	}
	wanted := make(map[string]struct{}, len(desired))
	for _, p := range desired {
		wanted[p.Name] = struct{}{}
	}

	patch := []webapi.JsonPatchOperation{}
	for _, p := range current {
		if _, ok := wanted[p.Name]; ok {
			continue
		}
		patch = append(patch, webapi.JsonPatchOperation{
			Op:   &webapi.OperationValues.Remove,
			Path: types.ToPtr(PropertyPath(p.Name)),
		})
	}
	for _, p := range desired {
		old, ok := existing[p.Name]
		switch {
		case !ok:
			patch = append(patch, webapi.JsonPatchOperation{
				Op:    &webapi.OperationValues.Add,
				Path:  types.ToPtr(PropertyPath(p.Name)),
				Value: p.Value,
			})
		case old != p.Value:
			patch = append(patch, webapi.JsonPatchOperation{
				Op:    &webapi.OperationValues.Replace,
				Path:  types.ToPtr(PropertyPath(p.Name)),
				Value: p.Value,
			})
		}
		// a duplicate entry in desired must not produce a second add
		existing[p.Name] = p.Value
	}
	return patch
}
