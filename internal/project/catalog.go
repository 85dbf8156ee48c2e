package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cratestack/cratestack/internal/model"
)

// DefaultCatalogPath returns the default file path for the container
// catalog: ~/.cratestack/containers.json.
func DefaultCatalogPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cratestack", "containers.json"), nil
}

// SaveCatalog writes the container catalog to the specified JSON file.
// It creates parent directories if they do not exist.
func SaveCatalog(path string, catalog model.ContainerCatalog) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadCatalog reads the container catalog from the specified JSON file.
// If the file does not exist, it returns the default catalog and saves it.
func LoadCatalog(path string) (model.ContainerCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			catalog := model.DefaultContainerCatalog()
			if saveErr := SaveCatalog(path, catalog); saveErr != nil {
				return catalog, saveErr
			}
			return catalog, nil
		}
		return model.ContainerCatalog{}, err
	}
	var catalog model.ContainerCatalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return model.ContainerCatalog{}, err
	}
	return catalog, nil
}

// LoadOrCreateCatalog loads the catalog from the default path, creating it
// with default entries if it does not exist.
func LoadOrCreateCatalog() (model.ContainerCatalog, string, error) {
	path, err := DefaultCatalogPath()
	if err != nil {
		return model.DefaultContainerCatalog(), "", err
	}
	catalog, err := LoadCatalog(path)
	return catalog, path, err
}

// ImportCatalog imports a container catalog from a user-specified JSON
// file, merging it with the existing catalog. Duplicate IDs are skipped.
func ImportCatalog(path string, existing model.ContainerCatalog) (model.ContainerCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return existing, err
	}
	var imported model.ContainerCatalog
	if err := json.Unmarshal(data, &imported); err != nil {
		return existing, err
	}

	ids := make(map[string]bool, len(existing.Containers))
	for _, c := range existing.Containers {
		ids[c.ID] = true
	}
	for _, c := range imported.Containers {
		if !ids[c.ID] {
			existing.Containers = append(existing.Containers, c)
			ids[c.ID] = true
		}
	}
	return existing, nil
}
