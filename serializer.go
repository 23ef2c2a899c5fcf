// File: appconf/serializer.go
package appconf

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

func init() {
	mustRegisterEngine(CategorySerializer, "json", newJSONSerializer)
	mustRegisterEngine(CategorySerializer, "yaml", newYAMLSerializer)
}

type jsonSerializer struct {
	name string
}

func newJSONSerializer(cfg EngineConfig) (Engine, error) {
	return &jsonSerializer{name: cfg.Name}, nil
}

func (s *jsonSerializer) EngineName() string {
	return s.name
}

func (s *jsonSerializer) Serialize(value any) ([]byte, error) {
	return json.Marshal(value)
}

func (s *jsonSerializer) Deserialize(data []byte, target any) error {
	return json.Unmarshal(data, target)
}

func (s *jsonSerializer) ContentType() string {
	return "application/json"
}

type yamlSerializer struct {
	name string
}

func newYAMLSerializer(cfg EngineConfig) (Engine, error) {
	return &yamlSerializer{name: cfg.Name}, nil
}

func (s *yamlSerializer) EngineName() string {
	return s.name
}

func (s *yamlSerializer) Serialize(value any) ([]byte, error) {
	return yaml.Marshal(value)
}

func (s *yamlSerializer) Deserialize(data []byte, target any) error {
	return yaml.Unmarshal(data, target)
}

func (s *yamlSerializer) ContentType() string {
	return "application/x-yaml"
}
