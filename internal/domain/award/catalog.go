package award

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

var (
	catalogOnce  sync.Once
	catalogTypes []Type
	catalogErr   error
)

// ParseCatalog decodes a YAML list of award types. SortOrder follows list position.
func ParseCatalog(raw []byte) ([]Type, error) {
	var types []Type
	if err := yaml.Unmarshal(raw, &types); err != nil {
		return nil, fmt.Errorf("decode award catalog: %w", err)
	}

	seen := make(map[ID]struct{}, len(types))
	for i := range types {
		if err := types[i].Validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[types[i].ID]; dup {
			return nil, fmt.Errorf("duplicate award type %s", types[i].ID)
		}
		seen[types[i].ID] = struct{}{}
		types[i].SortOrder = i + 1
	}
	return types, nil
}

// DefaultTypes returns the built-in award catalog. The embedded file is
// validated by tests, so a decode failure here is a build defect.
func DefaultTypes() []Type {
	catalogOnce.Do(func() {
		catalogTypes, catalogErr = ParseCatalog(catalogYAML)
	})
	if catalogErr != nil {
		panic(catalogErr)
	}
	return append([]Type(nil), catalogTypes...)
}

// DefaultConfigs is the catalog without any league customization.
func DefaultConfigs() map[ID]Config {
	return Configs(DefaultTypes(), nil)
}
