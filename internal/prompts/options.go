package prompts

import (
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"
)

// Option pairs a form value with its display label.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Range is an inclusive integer bound.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Options is everything a client needs to render the design form.
type Options struct {
	ProjectTypes []Option  `json:"project_types"`
	OverallSizes []Option  `json:"overall_sizes"`
	Bathrooms    []Option  `json:"bathrooms"`
	Kitchens     []Option  `json:"kitchens"`
	Windows      []Option  `json:"windows"`
	Floors       []Option  `json:"floors"`
	Bedrooms     Range     `json:"bedrooms"`
	Features     []string  `json:"features"`
	Defaults     FormState `json:"defaults"`
}

var (
	projectTypeOptions = []Option{
		{Value: string(ProjectApartment), Label: "Apartment"},
		{Value: string(ProjectSingleFamily), Label: "Single-Family House"},
		{Value: string(ProjectTownhouse), Label: "Townhouse"},
		{Value: string(ProjectVilla), Label: "Villa"},
		{Value: string(ProjectBungalow), Label: "Bungalow"},
		{Value: string(ProjectOther), Label: "Other"},
	}
	sizeOptions = []Option{
		{Value: string(SizeSmall), Label: "Small (<1000 sq ft)"},
		{Value: string(SizeMedium), Label: "Medium (1000-2000 sq ft)"},
		{Value: string(SizeLarge), Label: "Large (>2000 sq ft)"},
	}
	bathroomOptions = []Option{
		{Value: string(Bathrooms1), Label: "1 Bathroom"},
		{Value: string(Bathrooms2), Label: "2 Bathrooms"},
		{Value: string(Bathrooms3), Label: "3 Bathrooms"},
		{Value: string(Bathrooms4Plus), Label: "4+ Bathrooms"},
	}
	kitchenOptions = []Option{
		{Value: string(KitchenSmall), Label: "Small Kitchen"},
		{Value: string(KitchenLarge), Label: "Large Kitchen"},
	}
	windowOptions = []Option{
		{Value: string(WindowsFew), Label: "Few/Minimal Windows"},
		{Value: string(WindowsMany), Label: "Many/Lots of Windows"},
	}
	floorOptions = []Option{
		{Value: "1", Label: "1 Floor"},
		{Value: "2", Label: "2 Floors"},
		{Value: "3", Label: "3+ Floors"},
	}
)

// FormOptions returns the option catalog and form defaults.
func FormOptions() Options {
	return Options{
		ProjectTypes: slices.Clone(projectTypeOptions),
		OverallSizes: slices.Clone(sizeOptions),
		Bathrooms:    slices.Clone(bathroomOptions),
		Kitchens:     slices.Clone(kitchenOptions),
		Windows:      slices.Clone(windowOptions),
		Floors:       slices.Clone(floorOptions),
		Bedrooms:     Range{Min: MinBedrooms, Max: MaxBedrooms},
		Features:     Features(),
		Defaults:     DefaultFormState(),
	}
}

// Validate checks every field against the option catalog.
func (f FormState) Validate() error {
	if !hasValue(projectTypeOptions, string(f.ProjectType)) {
		return invalid("project_type", "unknown value %q", f.ProjectType)
	}
	if !hasValue(sizeOptions, string(f.OverallSize)) {
		return invalid("overall_size", "unknown value %q", f.OverallSize)
	}
	if f.BedroomCount < MinBedrooms || f.BedroomCount > MaxBedrooms {
		return invalid("bedroom_count", "must be between %d and %d", MinBedrooms, MaxBedrooms)
	}
	if !hasValue(bathroomOptions, string(f.BathroomCount)) {
		return invalid("bathroom_count", "unknown value %q", f.BathroomCount)
	}
	if !hasValue(kitchenOptions, string(f.KitchenSize)) {
		return invalid("kitchen_size", "unknown value %q", f.KitchenSize)
	}
	if !hasValue(windowOptions, string(f.WindowLevel)) {
		return invalid("window_level", "unknown value %q", f.WindowLevel)
	}
	for i, name := range f.SelectedFeatures {
		if !IsFeature(name) {
			return invalid("selected_features", "unknown feature %q", name)
		}
		if slices.Contains(f.SelectedFeatures[:i], name) {
			return invalid("selected_features", "duplicate feature %q", name)
		}
	}
	if f.Floors < MinFloors || f.Floors > MaxFloors {
		return invalid("floors", "must be between %d and %d", MinFloors, MaxFloors)
	}
	if f.BuildingSize != nil && *f.BuildingSize <= 0 {
		return invalid("building_size", "must be positive")
	}
	return nil
}

// FormStateFromQuery overlays URL query or form values onto the defaults.
// Unparseable numbers keep their defaults. "prompt" fills special
// requirements unless special_requirements is also present, and features
// arrive as repeated "features" values.
func FormStateFromQuery(values url.Values) FormState {
	f := DefaultFormState()

	if v := values.Get("project_type"); v != "" {
		f.ProjectType = ProjectType(v)
	}
	if v := values.Get("overall_size"); v != "" {
		f.OverallSize = OverallSize(v)
	}
	if n, ok := atoi(values.Get("bedroom_count")); ok {
		f.BedroomCount = n
	}
	if v := values.Get("bathroom_count"); v != "" {
		if v == "4" {
			v = string(Bathrooms4Plus)
		}
		f.BathroomCount = BathroomCount(v)
	}
	if v := values.Get("kitchen_size"); v != "" {
		f.KitchenSize = KitchenSize(v)
	}
	if v := values.Get("window_level"); v != "" {
		f.WindowLevel = WindowLevel(v)
	}
	if selected, ok := values["features"]; ok {
		f.SelectedFeatures = make([]string, 0, len(selected))
		for _, name := range selected {
			if name != "" && !slices.Contains(f.SelectedFeatures, name) {
				f.SelectedFeatures = append(f.SelectedFeatures, name)
			}
		}
	}

	f.SpecialRequirements = values.Get("prompt")
	if values.Has("special_requirements") {
		f.SpecialRequirements = values.Get("special_requirements")
	}

	f.ProjectName = strings.TrimSpace(values.Get("project_name"))
	if n, ok := atoi(values.Get("building_size")); ok {
		f.BuildingSize = &n
	}
	if n, ok := atoi(values.Get("floors")); ok {
		f.Floors = n
	}

	return f
}

func hasValue(opts []Option, v string) bool {
	return slices.ContainsFunc(opts, func(o Option) bool { return o.Value == v })
}

func invalid(field, format string, args ...any) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidForm, field, fmt.Sprintf(format, args...))
}

func atoi(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	return n, err == nil
}
