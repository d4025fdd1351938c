package interpretations

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"github.com/JaimeStill/stylarch/pkg/formatting"
)

const systemInstruction = `You are an experienced architect reviewing residential and commercial floor plans.
Answer in GitHub-flavored markdown only. Do not wrap the answer in a code fence.`

const analysisPrompt = `Analyze the attached floor plan and write a report titled "## Floor Plan Analysis Report" with these sections:
### Overview: building type, layout style, and estimated total area in square feet.
### Room Identification: a bullet per room with its name in bold and approximate area.
### Design Characteristics: style, circulation flow, natural light, and privacy.
### Recommendations: a numbered list of practical improvements.
### Measurements (Approximate): total living area and any garage or outdoor areas.
If the image is not a floor plan, say so in the Overview and omit the other sections.`

var errEmptyAnalysis = errors.New("model returned no text")

// Gemini interprets floor plans with a Gemini vision model.
type Gemini struct {
	client      *genai.Client
	model       string
	temperature float32
	maxTokens   int32
}

// NewGemini creates a Gemini interpreter using client and model.
func NewGemini(client *genai.Client, model string, temperature float32, maxTokens int32) *Gemini {
	return &Gemini{
		client:      client,
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
	}
}

func (g *Gemini) Name() string { return "genai:" + g.model }

func (g *Gemini) Interpret(ctx context.Context, img Image) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(img.Data, img.ContentType),
			genai.NewPartFromText(analysisPrompt),
		}, genai.RoleUser),
	}

	temperature := g.temperature
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		Temperature:       &temperature,
		MaxOutputTokens:   g.maxTokens,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := formatting.Unfence(resp.Text())
	if text == "" {
		return "", errEmptyAnalysis
	}
	return text, nil
}
