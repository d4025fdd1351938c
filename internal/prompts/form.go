// Package prompts assembles floor plan generation prompts from a structured
// design form. Build is pure and holds no HTTP or rendering state.
package prompts

import "slices"

// ProjectType is the kind of dwelling being designed.
type ProjectType string

const (
	ProjectApartment    ProjectType = "apartment"
	ProjectSingleFamily ProjectType = "single-family"
	ProjectTownhouse    ProjectType = "townhouse"
	ProjectVilla        ProjectType = "villa"
	ProjectBungalow     ProjectType = "bungalow"
	ProjectOther        ProjectType = "other"
)

// OverallSize is the coarse footprint of the design.
type OverallSize string

const (
	SizeSmall  OverallSize = "small"
	SizeMedium OverallSize = "medium"
	SizeLarge  OverallSize = "large"
)

// BathroomCount is a bathroom bucket. "4+" covers four or more.
type BathroomCount string

const (
	Bathrooms1     BathroomCount = "1"
	Bathrooms2     BathroomCount = "2"
	Bathrooms3     BathroomCount = "3"
	Bathrooms4Plus BathroomCount = "4+"
)

// KitchenSize is interpolated literally into the prompt.
type KitchenSize string

const (
	KitchenSmall KitchenSize = "small"
	KitchenLarge KitchenSize = "large"
)

// WindowLevel is the amount of glazing requested.
type WindowLevel string

const (
	WindowsFew  WindowLevel = "few"
	WindowsMany WindowLevel = "many"
)

// Bedroom and floor bounds accepted by Validate.
const (
	MinBedrooms = 1
	MaxBedrooms = 8
	MinFloors   = 1
	MaxFloors   = 3
)

var features = []string{
	"Garage",
	"Balcony/Terrace",
	"Home Office",
	"Laundry Room",
	"Open Concept Living",
	"Basement",
	"Pool/Outdoor Area",
	"Walk-in Closet",
	"Pantry",
	"Mudroom",
}

// Features returns the feature catalog in display order.
func Features() []string {
	return slices.Clone(features)
}

// IsFeature reports whether name is in the feature catalog.
func IsFeature(name string) bool {
	return slices.Contains(features, name)
}

// FormState is the design form as submitted. Enum fields are not checked on
// decode; Build accepts any value and Validate reports unknown ones.
//
// ProjectName, BuildingSize, and Floors are carried for callers but do not
// contribute to the prompt.
type FormState struct {
	ProjectType         ProjectType   `json:"project_type"`
	OverallSize         OverallSize   `json:"overall_size"`
	BedroomCount        int           `json:"bedroom_count"`
	BathroomCount       BathroomCount `json:"bathroom_count"`
	KitchenSize         KitchenSize   `json:"kitchen_size"`
	WindowLevel         WindowLevel   `json:"window_level"`
	SelectedFeatures    []string      `json:"selected_features"`
	SpecialRequirements string        `json:"special_requirements"`

	ProjectName  string `json:"project_name,omitempty"`
	BuildingSize *int   `json:"building_size,omitempty"`
	Floors       int    `json:"floors"`
}

// DefaultFormState returns the form as first presented.
func DefaultFormState() FormState {
	return FormState{
		ProjectType:      ProjectApartment,
		OverallSize:      SizeMedium,
		BedroomCount:     3,
		BathroomCount:    Bathrooms2,
		KitchenSize:      KitchenLarge,
		WindowLevel:      WindowsMany,
		SelectedFeatures: []string{},
		Floors:           1,
	}
}

// ToggleFeature returns a copy of selected with name appended when absent or
// removed when present. Order of the remaining entries is preserved.
func ToggleFeature(selected []string, name string) []string {
	if i := slices.Index(selected, name); i >= 0 {
		return slices.Delete(slices.Clone(selected), i, i+1)
	}
	return append(slices.Clone(selected), name)
}
