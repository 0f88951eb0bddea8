package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/wanderkit/packlist/pkg/adapters/memory"
	"github.com/wanderkit/packlist/pkg/domain"
)

// LoadCatalog reads a catalog definition source and returns an immutable
// catalog. The format is chosen by extension:
//
//   - .txt: a flat list, one item full name per line, blank lines skipped.
//     Produces a single checklist named after the file.
//   - .yaml / .yml: a manifest with multiple checklists and per-item
//     short name, description and link.
func LoadCatalog(path string) (*memory.Catalog, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		return loadFlatCatalog(path)
	case ".yaml", ".yml":
		return loadManifestCatalog(path)
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", filepath.Ext(path))
	}
}

func loadFlatCatalog(path string) (*memory.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	id := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	def := checklistManifest{ID: id, Name: id}
	for _, line := range strings.Split(string(data), "\n") {
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}
		def.Items = append(def.Items, name)
	}

	return buildCatalog(catalogManifest{Checklists: []checklistManifest{def}})
}

// catalogManifest is the YAML shape of a rich catalog source.
type catalogManifest struct {
	Checklists []checklistManifest `mapstructure:"checklists"`
}

type checklistManifest struct {
	ID          string `mapstructure:"id"`
	Name        string `mapstructure:"name"`
	Description string `mapstructure:"description"`
	// Items are either plain strings (shorthand for a bare full name) or
	// maps with full_name/short_name/description/link keys.
	Items []any `mapstructure:"items"`
}

type itemManifest struct {
	FullName    string `mapstructure:"full_name"`
	ShortName   string `mapstructure:"short_name"`
	Description string `mapstructure:"description"`
	Link        string `mapstructure:"link"`
}

func loadManifestCatalog(path string) (*memory.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	// Parse loosely first, then decode: keeps the manifest forgiving about
	// key casing and lets items mix the string and map shorthands.
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse catalog manifest: %w", err)
	}

	var manifest catalogManifest
	if err := mapstructure.Decode(raw, &manifest); err != nil {
		return nil, fmt.Errorf("failed to decode catalog manifest: %w", err)
	}

	return buildCatalog(manifest)
}

func buildCatalog(manifest catalogManifest) (*memory.Catalog, error) {
	defs := make([]domain.ChecklistDefinition, 0, len(manifest.Checklists))
	for _, cm := range manifest.Checklists {
		def := domain.ChecklistDefinition{
			ID:          cm.ID,
			Name:        cm.Name,
			Description: cm.Description,
		}
		if def.Name == "" {
			def.Name = def.ID
		}
		for i, rawItem := range cm.Items {
			item, err := decodeItem(rawItem)
			if err != nil {
				return nil, fmt.Errorf("checklist %q: item %d: %w", cm.ID, i, err)
			}
			def.Items = append(def.Items, item)
		}
		defs = append(defs, def)
	}
	return memory.NewCatalog(defs...)
}

func decodeItem(raw any) (domain.ItemDefinition, error) {
	switch v := raw.(type) {
	case string:
		return domain.ItemDefinition{FullName: strings.TrimSpace(v)}, nil
	default:
		var im itemManifest
		if err := mapstructure.Decode(raw, &im); err != nil {
			return domain.ItemDefinition{}, fmt.Errorf("failed to decode item: %w", err)
		}
		return domain.ItemDefinition{
			FullName:    im.FullName,
			ShortName:   im.ShortName,
			Description: im.Description,
			Link:        im.Link,
		}, nil
	}
}
