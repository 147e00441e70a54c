package catalog

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/impact-search/internal/model"
)

type fileTopic struct {
	Key          string `yaml:"key"`
	model.Bundle `yaml:",inline"`
}

type fileCatalog struct {
	Topics   []fileTopic `yaml:"topics"`
	Aliases  []Alias     `yaml:"aliases"`
	Trending []string    `yaml:"trending"`
}

// Load returns the catalog stored at path, or the built-in catalog when path
// is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads a YAML catalog from path.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "catalog: read file")
	}
	return Parse(data)
}

// Parse decodes a YAML catalog. When the document has no aliases, the
// built-in aliases for topics it does define are used. When it has no
// trending list, the topic keys are used.
func Parse(data []byte) (*Catalog, error) {
	var fc fileCatalog
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, eris.Wrap(err, "catalog: unmarshal")
	}

	topics := make([]Topic, 0, len(fc.Topics))
	keys := make(map[string]struct{}, len(fc.Topics))
	for _, ft := range fc.Topics {
		topics = append(topics, Topic{Key: ft.Key, Bundle: ft.Bundle})
		keys[ft.Key] = struct{}{}
	}

	aliases := fc.Aliases
	if aliases == nil {
		for _, a := range DefaultAliases {
			if _, ok := keys[a.Topic]; ok {
				aliases = append(aliases, a)
			}
		}
	}

	trending := fc.Trending
	if trending == nil {
		for _, t := range topics {
			trending = append(trending, t.Key)
		}
	}

	return New(topics, aliases, trending)
}
