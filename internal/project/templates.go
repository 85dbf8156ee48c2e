package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cratestack/cratestack/internal/model"
)

// DefaultTemplatePath returns the default file path for the templates store.
// This is located at ~/.cratestack/templates.json.
func DefaultTemplatePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".cratestack")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "templates.json"), nil
}

// SaveTemplates writes the template store to a JSON file.
func SaveTemplates(path string, store model.TemplateStore) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadTemplates reads a template store from a JSON file.
// If the file does not exist, returns an empty store.
func LoadTemplates(path string) (model.TemplateStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.NewTemplateStore(), nil
		}
		return model.TemplateStore{}, err
	}
	var store model.TemplateStore
	if err := json.Unmarshal(data, &store); err != nil {
		return model.TemplateStore{}, err
	}
	if store.Templates == nil {
		store.Templates = []model.RequestTemplate{}
	}
	for i := range store.Templates {
		sanitizeTemplate(&store.Templates[i])
	}
	return store, nil
}

// sanitizeTemplate repairs a RequestTemplate loaded from disk: its embedded
// SolveSettings gets the same mode/iteration/temperature defaulting
// sanitizeDefaults applies to AppConfig, and a strip-packing template is
// trimmed to its first container — ModeStrip solves against exactly one
// container, so a hand-edited template carrying more than one would
// otherwise only ever use the first and silently ignore the rest.
func sanitizeTemplate(t *model.RequestTemplate) {
	defaults := model.DefaultSettings()
	if t.Settings.Mode != model.ModeStrip && t.Settings.Mode != model.ModeBin {
		t.Settings.Mode = defaults.Mode
	}
	if t.Settings.MaxIter <= 0 {
		t.Settings.MaxIter = defaults.MaxIter
	}
	if t.Settings.Temperature < 0 {
		t.Settings.Temperature = defaults.Temperature
	}
	if t.Settings.Mode == model.ModeStrip && len(t.Containers) > 1 {
		t.Containers = t.Containers[:1]
	}
}

// LoadDefaultTemplates loads templates from the default path.
func LoadDefaultTemplates() (model.TemplateStore, error) {
	path, err := DefaultTemplatePath()
	if err != nil {
		return model.NewTemplateStore(), err
	}
	return LoadTemplates(path)
}

// SaveDefaultTemplates saves templates to the default path.
func SaveDefaultTemplates(store model.TemplateStore) error {
	path, err := DefaultTemplatePath()
	if err != nil {
		return err
	}
	return SaveTemplates(path, store)
}
