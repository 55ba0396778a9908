package config

import (
	"errors"

	"gopkg.in/yaml.v3"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidYaml   = errors.New("invalid yaml")
	ErrInvalidFormat = errors.New("invalid format")
)

// yamlMap wraps a yaml.v3 node so comments in the configuration files survive
// a round trip.
type yamlMap struct {
	*yaml.Node
}

func stringValue(value string) *yamlMap {
	return &yamlMap{&yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   "!!str",
		Value: value,
	}}
}

func mapValue() *yamlMap {
	return &yamlMap{&yaml.Node{
		Kind: yaml.MappingNode,
		Tag:  "!!map",
	}}
}

func unmarshalMap(data []byte) (*yamlMap, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, ErrInvalidYaml
	}
	if len(root.Content) == 0 {
		return mapValue(), nil
	}
	if root.Content[0].Kind != yaml.MappingNode {
		return nil, ErrInvalidFormat
	}
	return &yamlMap{root.Content[0]}, nil
}

func (m *yamlMap) isMap() bool {
	return m.Kind == yaml.MappingNode
}

func (m *yamlMap) empty() bool {
	return m.isMap() && len(m.Content) == 0
}

func (m *yamlMap) findEntry(key string) (*yamlMap, error) {
	if !m.isMap() {
		return nil, ErrNotFound
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return &yamlMap{m.Content[i+1]}, nil
		}
	}
	return nil, ErrNotFound
}

func (m *yamlMap) keys() []string {
	keys := []string{}
	if !m.isMap() {
		return keys
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		keys = append(keys, m.Content[i].Value)
	}
	return keys
}

func (m *yamlMap) addEntry(key string, value *yamlMap) {
	m.Content = append(m.Content, &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   "!!str",
		Value: key,
	}, value.Node)
}

func (m *yamlMap) setEntry(key string, value *yamlMap) {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			m.Content[i+1] = value.Node
			return
		}
	}
	m.addEntry(key, value)
}

func (m *yamlMap) removeEntry(key string) error {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			m.Content = append(m.Content[:i], m.Content[i+2:]...)
			return nil
		}
	}
	return ErrNotFound
}

// without returns a shallow copy of the map lacking key.
func (m *yamlMap) without(key string) *yamlMap {
	c := *m.Node
	c.Content = nil
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			continue
		}
		c.Content = append(c.Content, m.Content[i], m.Content[i+1])
	}
	return &yamlMap{&c}
}

func (m *yamlMap) String() string {
	if m.empty() {
		return ""
	}
	data, err := yaml.Marshal(m.Node)
	if err != nil {
		return ""
	}
	return string(data)
}
