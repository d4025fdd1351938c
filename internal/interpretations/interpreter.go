package interpretations

import (
	"context"
	"time"
)

// Interpreter produces a markdown analysis of a floor plan image.
type Interpreter interface {
	// Name identifies the backend in reports and logs.
	Name() string
	Interpret(ctx context.Context, img Image) (string, error)
}

// Static returns sampleReport after a fixed delay, standing in for a vision model.
type Static struct {
	delay time.Duration
}

// NewStatic creates a Static interpreter. A non-positive delay answers immediately.
func NewStatic(delay time.Duration) *Static {
	return &Static{delay: delay}
}

func (s *Static) Name() string { return "static" }

func (s *Static) Interpret(ctx context.Context, _ Image) (string, error) {
	if s.delay <= 0 {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		return sampleReport, nil
	}

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-timer.C:
		return sampleReport, nil
	}
}

const sampleReport = `## Floor Plan Analysis Report

### Overview
This floor plan represents a **modern residential layout** with an estimated area of approximately **1,800 sq ft**.

### Room Identification
- **Living Room**: Large open-concept space (~400 sq ft)
- **Kitchen**: Modern layout with island (~200 sq ft)
- **Master Bedroom**: Primary suite with en-suite bathroom (~300 sq ft)
- **Bedroom 2**: Secondary bedroom (~180 sq ft)
- **Bedroom 3**: Third bedroom/office space (~150 sq ft)
- **Bathrooms**: 2 full bathrooms, 1 half bath
- **Garage**: 2-car attached garage

### Design Characteristics
- **Style**: Contemporary with open-concept living
- **Flow**: Excellent traffic flow between common areas
- **Natural Light**: Large windows facing south for optimal lighting
- **Privacy**: Good separation between public and private spaces

### Recommendations
1. Consider adding a mudroom between garage and kitchen
2. Master closet could be expanded for additional storage
3. Kitchen island placement allows for good workflow

### Measurements (Approximate)
- Total Living Area: 1,800 sq ft
- Garage: 400 sq ft
- Outdoor covered area: 200 sq ft
`
