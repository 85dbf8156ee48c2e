package model

import "github.com/google/uuid"

// Container is a cuboid receptacle that blocks are packed into.
type Container struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Shape          Shape   `json:"shape"` // depth/width/height, fixed (containers never rotate)
	WeightCapacity float64 `json:"weight_capacity"`
}

// NewContainer constructs a Container with a generated ID.
func NewContainer(name string, shape Shape, weightCapacity float64) Container {
	return Container{
		ID:             uuid.New().String()[:8],
		Name:           name,
		Shape:          shape,
		WeightCapacity: weightCapacity,
	}
}

// Volume returns the container's interior volume.
func (c Container) Volume() float64 { return Volume(c.Shape) }

// BaseArea returns the container's floor footprint.
func (c Container) BaseArea() float64 { return BaseArea(c.Shape) }

// ContainerPreset is a named, reusable container definition kept in a catalog
// so BP3D requests can reference standard container sizes (e.g. ISO shipping
// containers) without re-specifying dimensions every run.
type ContainerPreset struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Depth          float64 `json:"depth"`
	Width          float64 `json:"width"`
	Height         float64 `json:"height"`
	WeightCapacity float64 `json:"weight_capacity"`
}

// NewContainerPreset creates a new ContainerPreset with a generated ID.
func NewContainerPreset(name string, depth, width, height, weightCapacity float64) ContainerPreset {
	return ContainerPreset{
		ID:             uuid.New().String()[:8],
		Name:           name,
		Depth:          depth,
		Width:          width,
		Height:         height,
		WeightCapacity: weightCapacity,
	}
}

// ToContainer instantiates a Container from this preset.
func (cp ContainerPreset) ToContainer() Container {
	return NewContainer(cp.Name, NewShape(cp.Depth, cp.Width, cp.Height), cp.WeightCapacity)
}

// ContainerCatalog holds a collection of saved container presets.
type ContainerCatalog struct {
	Containers []ContainerPreset `json:"containers"`
}

// DefaultContainerCatalog returns a catalog seeded with common ISO shipping
// container sizes (interior dimensions, mm; weight capacity, kg).
func DefaultContainerCatalog() ContainerCatalog {
	return ContainerCatalog{
		Containers: []ContainerPreset{
			NewContainerPreset("20ft Standard", 5898, 2352, 2393, 28180),
			NewContainerPreset("40ft Standard", 12032, 2352, 2393, 28750),
			NewContainerPreset("40ft High Cube", 12032, 2352, 2698, 28600),
			NewContainerPreset("45ft High Cube", 13556, 2352, 2698, 27800),
		},
	}
}

// FindByID returns a pointer to the preset with the given ID, or nil.
func (cc *ContainerCatalog) FindByID(id string) *ContainerPreset {
	for i := range cc.Containers {
		if cc.Containers[i].ID == id {
			return &cc.Containers[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the first preset with the given name, or nil.
func (cc *ContainerCatalog) FindByName(name string) *ContainerPreset {
	for i := range cc.Containers {
		if cc.Containers[i].Name == name {
			return &cc.Containers[i]
		}
	}
	return nil
}

// Names returns the preset names, for listing/selection.
func (cc *ContainerCatalog) Names() []string {
	names := make([]string, len(cc.Containers))
	for i, c := range cc.Containers {
		names[i] = c.Name
	}
	return names
}
