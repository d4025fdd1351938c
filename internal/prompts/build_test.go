package prompts_test

import (
	"strings"
	"testing"

	"github.com/JaimeStill/stylarch/internal/prompts"
)

func form(mutate func(*prompts.FormState)) prompts.FormState {
	f := prompts.DefaultFormState()
	if mutate != nil {
		mutate(&f)
	}
	return f
}

func TestBuildDefaults(t *testing.T) {
	got := prompts.Build(prompts.DefaultFormState())
	want := "A medium-sized apartment floor plan, with few rooms, multiple bathrooms, large kitchen, many windows"
	if got != want {
		t.Errorf("Build(defaults):\n got %q\nwant %q", got, want)
	}
}

func TestBuildReference(t *testing.T) {
	f := prompts.FormState{
		ProjectType:         prompts.ProjectVilla,
		OverallSize:         prompts.SizeLarge,
		BedroomCount:        5,
		BathroomCount:       prompts.Bathrooms2,
		KitchenSize:         prompts.KitchenLarge,
		WindowLevel:         prompts.WindowsMany,
		SelectedFeatures:    []string{"Pool/Outdoor Area"},
		SpecialRequirements: "modern style",
	}

	want := "A big villa floor plan, with many rooms, multiple bathrooms, large kitchen, many windows, with pool/outdoor area, modern style"
	if got := prompts.Build(f); got != want {
		t.Errorf("Build:\n got %q\nwant %q", got, want)
	}
}

func TestBuildSize(t *testing.T) {
	tests := []struct {
		size prompts.OverallSize
		want string
	}{
		{prompts.SizeSmall, "A small townhouse floor plan"},
		{prompts.SizeLarge, "A big townhouse floor plan"},
		{prompts.SizeMedium, "A medium-sized townhouse floor plan"},
		{"", "A medium-sized townhouse floor plan"},
		{"huge", "A medium-sized townhouse floor plan"},
	}

	for _, tt := range tests {
		t.Run(string(tt.size), func(t *testing.T) {
			got := prompts.Build(form(func(f *prompts.FormState) {
				f.ProjectType = prompts.ProjectTownhouse
				f.OverallSize = tt.size
			}))
			if !strings.HasPrefix(got, tt.want+", ") {
				t.Errorf("got %q, want prefix %q", got, tt.want)
			}
		})
	}
}

func TestBuildRooms(t *testing.T) {
	tests := []struct {
		bedrooms int
		want     string
	}{
		{1, "with few rooms"},
		{3, "with few rooms"},
		{4, "with many rooms"},
		{8, "with many rooms"},
	}

	for _, tt := range tests {
		got := prompts.Build(form(func(f *prompts.FormState) { f.BedroomCount = tt.bedrooms }))
		if !strings.Contains(got, ", "+tt.want+", ") {
			t.Errorf("bedrooms %d: got %q, want %q", tt.bedrooms, got, tt.want)
		}
	}
}

func TestBuildBathrooms(t *testing.T) {
	tests := []struct {
		count prompts.BathroomCount
		want  string
	}{
		{prompts.Bathrooms1, "one bathroom"},
		{prompts.Bathrooms2, "multiple bathrooms"},
		{prompts.Bathrooms3, "multiple bathrooms"},
		{prompts.Bathrooms4Plus, "multiple bathrooms"},
		{"7", "multiple bathrooms"},
	}

	for _, tt := range tests {
		got := prompts.Build(form(func(f *prompts.FormState) { f.BathroomCount = tt.count }))
		if !strings.Contains(got, ", "+tt.want+", ") {
			t.Errorf("bathrooms %q: got %q, want %q", tt.count, got, tt.want)
		}
	}
}

func TestBuildKitchenAndWindows(t *testing.T) {
	got := prompts.Build(form(func(f *prompts.FormState) {
		f.KitchenSize = prompts.KitchenSmall
		f.WindowLevel = prompts.WindowsFew
	}))
	if !strings.HasSuffix(got, ", small kitchen, few windows") {
		t.Errorf("got %q", got)
	}

	got = prompts.Build(form(func(f *prompts.FormState) { f.WindowLevel = "" }))
	if !strings.HasSuffix(got, ", few windows") {
		t.Errorf("unknown window level: got %q, want few windows", got)
	}
}

func TestBuildFeatures(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		got := prompts.Build(form(nil))
		if strings.Contains(got, "with garage") || strings.Count(got, "with ") != 1 {
			t.Errorf("unexpected features clause: %q", got)
		}
	})

	t.Run("order preserved and lower-cased", func(t *testing.T) {
		got := prompts.Build(form(func(f *prompts.FormState) {
			f.SelectedFeatures = []string{"Garage", "Balcony/Terrace"}
		}))
		if !strings.Contains(got, "with garage, balcony/terrace") {
			t.Errorf("got %q", got)
		}
	})

	t.Run("no de-duplication", func(t *testing.T) {
		got := prompts.Build(form(func(f *prompts.FormState) {
			f.SelectedFeatures = []string{"Pantry", "Pantry"}
		}))
		if !strings.HasSuffix(got, ", with pantry, pantry") {
			t.Errorf("got %q", got)
		}
	})
}

func TestBuildSpecialRequirements(t *testing.T) {
	got := prompts.Build(form(func(f *prompts.FormState) {
		f.SelectedFeatures = []string{"Home Office"}
		f.SpecialRequirements = "eco-friendly"
	}))
	if !strings.HasSuffix(got, ", with home office, eco-friendly") {
		t.Errorf("got %q", got)
	}

	got = prompts.Build(form(func(f *prompts.FormState) {
		f.SpecialRequirements = "South-Facing <Courtyard>"
	}))
	if !strings.HasSuffix(got, ", South-Facing <Courtyard>") {
		t.Errorf("case or characters altered: %q", got)
	}
}

func TestBuildIgnoresSupplementalFields(t *testing.T) {
	size := 1800
	base := prompts.DefaultFormState()
	extended := base
	extended.ProjectName = "Lake House"
	extended.BuildingSize = &size
	extended.Floors = 3

	if prompts.Build(base) != prompts.Build(extended) {
		t.Errorf("project name, building size, or floors changed the prompt")
	}
}

func TestBuildDeterministic(t *testing.T) {
	f := form(func(f *prompts.FormState) {
		f.SelectedFeatures = prompts.Features()
		f.SpecialRequirements = "quiet bedrooms"
	})

	first := prompts.Build(f)
	for range 10 {
		if got := prompts.Build(f); got != first {
			t.Fatalf("non-deterministic output: %q vs %q", got, first)
		}
	}
	if prompts.Blank(first) {
		t.Error("Build returned a blank prompt")
	}
}

func TestBlank(t *testing.T) {
	tests := map[string]bool{
		"":             true,
		"   ":          true,
		"\t\n":         true,
		"A floor plan": false,
		"  x  ":        false,
	}
	for in, want := range tests {
		if got := prompts.Blank(in); got != want {
			t.Errorf("Blank(%q): got %v, want %v", in, got, want)
		}
	}
}
