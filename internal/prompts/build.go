package prompts

import (
	"fmt"
	"strings"
)

// Build renders the form as a single comma-separated prompt. Fragments always
// appear in the same order; features are lower-cased and special requirements
// are appended verbatim. Build never fails and never validates.
func Build(f FormState) string {
	parts := make([]string, 0, 7)

	parts = append(parts, fmt.Sprintf("A %s %s floor plan", sizeWord(f.OverallSize), f.ProjectType))

	if f.BedroomCount <= 3 {
		parts = append(parts, "with few rooms")
	} else {
		parts = append(parts, "with many rooms")
	}

	if f.BathroomCount == Bathrooms1 {
		parts = append(parts, "one bathroom")
	} else {
		parts = append(parts, "multiple bathrooms")
	}

	parts = append(parts, string(f.KitchenSize)+" kitchen")

	if f.WindowLevel == WindowsMany {
		parts = append(parts, "many windows")
	} else {
		parts = append(parts, "few windows")
	}

	if len(f.SelectedFeatures) > 0 {
		parts = append(parts, "with "+strings.ToLower(strings.Join(f.SelectedFeatures, ", ")))
	}

	if f.SpecialRequirements != "" {
		parts = append(parts, f.SpecialRequirements)
	}

	return strings.Join(parts, ", ")
}

// Blank reports whether prompt is empty or whitespace only.
// Callers reject blank prompts before sending them anywhere.
func Blank(prompt string) bool {
	return strings.TrimSpace(prompt) == ""
}

func sizeWord(s OverallSize) string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeLarge:
		return "big"
	default:
		return "medium-sized"
	}
}
