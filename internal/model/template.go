package model

import (
	"time"

	"github.com/google/uuid"
)

// RequestTemplate is a reusable bundle of blocks, containers, and settings
// that captures a repeatable benchmark request without a result.
type RequestTemplate struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	CreatedAt   string        `json:"created_at"`
	UpdatedAt   string        `json:"updated_at"`
	Blocks      []Block       `json:"blocks"`
	Containers  []Container   `json:"containers"`
	Settings    SolveSettings `json:"settings"`
}

// NewRequestTemplate creates a new template from the given request data.
func NewRequestTemplate(name, description string, blocks []Block, containers []Container, settings SolveSettings) RequestTemplate {
	now := time.Now().UTC().Format(time.RFC3339)
	return RequestTemplate{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Blocks:      copyBlocks(blocks),
		Containers:  copyContainers(containers),
		Settings:    settings,
	}
}

// ToRequest instantiates a fresh Request from this template. Blocks and
// containers get fresh IDs so they are independent of the template.
func (t RequestTemplate) ToRequest() Request {
	blocks := make([]Block, len(t.Blocks))
	for i, b := range t.Blocks {
		blocks[i] = NewBlock(b.Name, b.Shape, b.Weight, b.Stackable, b.RightSideUp)
	}
	containers := make([]Container, len(t.Containers))
	for i, c := range t.Containers {
		containers[i] = NewContainer(c.Name, c.Shape, c.WeightCapacity)
	}
	return Request{
		Blocks:     blocks,
		Containers: containers,
		Settings:   t.Settings,
	}
}

// TemplateStore holds a collection of request templates.
type TemplateStore struct {
	Templates []RequestTemplate `json:"templates"`
}

// NewTemplateStore creates an empty template store.
func NewTemplateStore() TemplateStore {
	return TemplateStore{Templates: []RequestTemplate{}}
}

// Add adds a template to the store.
func (ts *TemplateStore) Add(t RequestTemplate) {
	ts.Templates = append(ts.Templates, t)
}

// Remove removes a template by ID. Returns true if found and removed.
func (ts *TemplateStore) Remove(id string) bool {
	for i, t := range ts.Templates {
		if t.ID == id {
			ts.Templates = append(ts.Templates[:i], ts.Templates[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a pointer to the template with the given ID, or nil.
func (ts *TemplateStore) FindByID(id string) *RequestTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].ID == id {
			return &ts.Templates[i]
		}
	}
	return nil
}

// Names returns the template names, for listing/selection.
func (ts *TemplateStore) Names() []string {
	names := make([]string, len(ts.Templates))
	for i, t := range ts.Templates {
		names[i] = t.Name
	}
	return names
}

func copyBlocks(blocks []Block) []Block {
	if blocks == nil {
		return []Block{}
	}
	cp := make([]Block, len(blocks))
	copy(cp, blocks)
	return cp
}

func copyContainers(containers []Container) []Container {
	if containers == nil {
		return []Container{}
	}
	cp := make([]Container, len(containers))
	copy(cp, containers)
	return cp
}
