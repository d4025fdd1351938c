package prompts_test

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/JaimeStill/stylarch/internal/prompts"
)

func TestDefaultFormState(t *testing.T) {
	want := prompts.FormState{
		ProjectType:      prompts.ProjectApartment,
		OverallSize:      prompts.SizeMedium,
		BedroomCount:     3,
		BathroomCount:    prompts.Bathrooms2,
		KitchenSize:      prompts.KitchenLarge,
		WindowLevel:      prompts.WindowsMany,
		SelectedFeatures: []string{},
		Floors:           1,
	}
	if diff := cmp.Diff(want, prompts.DefaultFormState()); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}
	if err := prompts.DefaultFormState().Validate(); err != nil {
		t.Errorf("defaults invalid: %v", err)
	}
}

func TestFeaturesCatalog(t *testing.T) {
	got := prompts.Features()
	if len(got) != 10 {
		t.Fatalf("catalog size: got %d, want 10", len(got))
	}
	if got[0] != "Garage" || got[9] != "Mudroom" {
		t.Errorf("catalog order: got %v", got)
	}

	got[0] = "Moat"
	if prompts.Features()[0] != "Garage" {
		t.Error("Features exposes internal slice")
	}
}

func TestValidate(t *testing.T) {
	size := 0
	tests := []struct {
		name   string
		mutate func(*prompts.FormState)
		field  string
	}{
		{"project type", func(f *prompts.FormState) { f.ProjectType = "castle" }, "project_type"},
		{"overall size", func(f *prompts.FormState) { f.OverallSize = "huge" }, "overall_size"},
		{"bedrooms low", func(f *prompts.FormState) { f.BedroomCount = 0 }, "bedroom_count"},
		{"bedrooms high", func(f *prompts.FormState) { f.BedroomCount = 9 }, "bedroom_count"},
		{"bathrooms", func(f *prompts.FormState) { f.BathroomCount = "4" }, "bathroom_count"},
		{"kitchen", func(f *prompts.FormState) { f.KitchenSize = "medium" }, "kitchen_size"},
		{"windows", func(f *prompts.FormState) { f.WindowLevel = "none" }, "window_level"},
		{"unknown feature", func(f *prompts.FormState) { f.SelectedFeatures = []string{"Moat"} }, "selected_features"},
		{"duplicate feature", func(f *prompts.FormState) { f.SelectedFeatures = []string{"Garage", "Garage"} }, "selected_features"},
		{"floors", func(f *prompts.FormState) { f.Floors = 4 }, "floors"},
		{"building size", func(f *prompts.FormState) { f.BuildingSize = &size }, "building_size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := form(tt.mutate).Validate()
			if !errors.Is(err, prompts.ErrInvalidForm) {
				t.Fatalf("error: got %v, want ErrInvalidForm", err)
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q does not name field %q", err, tt.field)
			}
		})
	}

	t.Run("bounds accepted", func(t *testing.T) {
		for _, n := range []int{prompts.MinBedrooms, prompts.MaxBedrooms} {
			if err := form(func(f *prompts.FormState) { f.BedroomCount = n }).Validate(); err != nil {
				t.Errorf("bedrooms %d: %v", n, err)
			}
		}
	})
}

func TestFormStateFromQuery(t *testing.T) {
	t.Run("empty uses defaults", func(t *testing.T) {
		if diff := cmp.Diff(prompts.DefaultFormState(), prompts.FormStateFromQuery(url.Values{})); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("style link prompt", func(t *testing.T) {
		values, _ := url.ParseQuery("prompt=" + url.QueryEscape("ranch style floor plan single-story"))
		got := prompts.FormStateFromQuery(values)
		if got.SpecialRequirements != "ranch style floor plan single-story" {
			t.Errorf("special requirements: got %q", got.SpecialRequirements)
		}
	})

	t.Run("all fields", func(t *testing.T) {
		values := url.Values{
			"project_type":         {"villa"},
			"overall_size":         {"large"},
			"bedroom_count":        {"5"},
			"bathroom_count":       {"4"},
			"kitchen_size":         {"small"},
			"window_level":         {"few"},
			"features":             {"Garage", "Pantry", "Garage"},
			"prompt":               {"ignored"},
			"special_requirements": {"modern style"},
			"project_name":         {"  Lake House "},
			"building_size":        {"2400"},
			"floors":               {"2"},
		}
		size := 2400
		want := prompts.FormState{
			ProjectType:         prompts.ProjectVilla,
			OverallSize:         prompts.SizeLarge,
			BedroomCount:        5,
			BathroomCount:       prompts.Bathrooms4Plus,
			KitchenSize:         prompts.KitchenSmall,
			WindowLevel:         prompts.WindowsFew,
			SelectedFeatures:    []string{"Garage", "Pantry"},
			SpecialRequirements: "modern style",
			ProjectName:         "Lake House",
			BuildingSize:        &size,
			Floors:              2,
		}
		if diff := cmp.Diff(want, prompts.FormStateFromQuery(values)); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("bad numbers keep defaults", func(t *testing.T) {
		got := prompts.FormStateFromQuery(url.Values{"bedroom_count": {"lots"}, "floors": {"x"}})
		if got.BedroomCount != 3 || got.Floors != 1 {
			t.Errorf("got bedrooms %d floors %d", got.BedroomCount, got.Floors)
		}
	})
}

func TestToggleFeature(t *testing.T) {
	selected := []string{"Garage", "Pantry"}

	added := prompts.ToggleFeature(selected, "Mudroom")
	if diff := cmp.Diff([]string{"Garage", "Pantry", "Mudroom"}, added); diff != "" {
		t.Errorf("add mismatch (-want +got):\n%s", diff)
	}

	removed := prompts.ToggleFeature(added, "Garage")
	if diff := cmp.Diff([]string{"Pantry", "Mudroom"}, removed); diff != "" {
		t.Errorf("remove mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{"Garage", "Pantry"}, selected); diff != "" {
		t.Errorf("input mutated (-want +got):\n%s", diff)
	}
}

func TestFormOptions(t *testing.T) {
	opts := prompts.FormOptions()

	if len(opts.ProjectTypes) != 6 {
		t.Errorf("project types: got %d, want 6", len(opts.ProjectTypes))
	}
	if last := opts.Bathrooms[len(opts.Bathrooms)-1]; last.Value != "4+" || last.Label != "4+ Bathrooms" {
		t.Errorf("last bathroom option: got %+v", last)
	}
	if last := opts.Floors[len(opts.Floors)-1]; last.Label != "3+ Floors" {
		t.Errorf("last floor option: got %+v", last)
	}
	if opts.Bedrooms != (prompts.Range{Min: 1, Max: 8}) {
		t.Errorf("bedrooms: got %+v", opts.Bedrooms)
	}
}
