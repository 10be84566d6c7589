/*
Package advice generates personalized health content from a stored profile
through an LLM: food and exercise recommendations, a daily routine table
derived from them, and a list of key facts.

The pipeline owns no process-wide model state; it is constructed around an
injected llms.Model so tests substitute a stub provider.
*/
package advice

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/prompts"

	"wellnav/internal/profile"
)

// Pipeline runs the recommendation prompts against one language model.
type Pipeline struct {
	llm            llms.Model
	foodExercisePT prompts.PromptTemplate
	routinePT      prompts.PromptTemplate
	keyFactsPT     prompts.PromptTemplate
}

// New builds a Pipeline over an already-constructed model.
func New(llm llms.Model) *Pipeline {
	return &Pipeline{
		llm:            llm,
		foodExercisePT: prompts.NewPromptTemplate(foodExerciseTemplate, []string{"information"}),
		routinePT:      prompts.NewPromptTemplate(routineTemplate, []string{"recommendations"}),
		keyFactsPT:     prompts.NewPromptTemplate(keyFactsTemplate, []string{"information"}),
	}
}

// NewGoogleAI constructs the production pipeline backed by the Gemini API.
func NewGoogleAI(ctx context.Context, apiKey, model string) (*Pipeline, error) {
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("initialize LLM client: %w", err)
	}
	return New(llm), nil
}

// FormatProfile serializes a profile into the single natural-language
// sentence every prompt substitutes.
func FormatProfile(p profile.Profile) string {
	return fmt.Sprintf("Diseases: %s; Weight: %skg; Age: %d; Height: %scm; Sex: %s; Race: %s",
		strings.Join(p.Diseases, ", "),
		strconv.FormatFloat(p.Weight, 'f', -1, 64),
		p.Age,
		strconv.FormatFloat(p.Height, 'f', -1, 64),
		p.Sex,
		p.Race,
	)
}

// FoodExercise produces the <section> fragment with food and exercise
// recommendations for the formatted profile sentence.
func (pl *Pipeline) FoodExercise(ctx context.Context, information string) (string, error) {
	prompt, err := pl.foodExercisePT.Format(map[string]any{"information": information})
	if err != nil {
		return "", fmt.Errorf("format food/exercise prompt: %w", err)
	}

	fragment, err := pl.generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	if err := ValidateFoodExercise(fragment); err != nil {
		return "", fmt.Errorf("food/exercise fragment rejected: %w", err)
	}
	return fragment, nil
}

// Routine is the two-stage chain: it first generates the food/exercise
// fragment, then feeds that entire fragment into the routine prompt so the
// schedule stays consistent with the recommendations. The two calls are
// strictly sequential; the fragment is the typed intermediate between them.
func (pl *Pipeline) Routine(ctx context.Context, information string) (string, error) {
	recommendations, err := pl.FoodExercise(ctx, information)
	if err != nil {
		return "", err
	}

	prompt, err := pl.routinePT.Format(map[string]any{"recommendations": recommendations})
	if err != nil {
		return "", fmt.Errorf("format routine prompt: %w", err)
	}

	fragment, err := pl.generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	if err := ValidateRoutine(fragment); err != nil {
		return "", fmt.Errorf("routine fragment rejected: %w", err)
	}
	return fragment, nil
}

// KeyFacts produces the ten-item <ul> fragment of essentials to watch for.
func (pl *Pipeline) KeyFacts(ctx context.Context, information string) (string, error) {
	prompt, err := pl.keyFactsPT.Format(map[string]any{"information": information})
	if err != nil {
		return "", fmt.Errorf("format key facts prompt: %w", err)
	}

	fragment, err := pl.generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	if err := ValidateKeyFacts(fragment); err != nil {
		return "", fmt.Errorf("key facts fragment rejected: %w", err)
	}
	return fragment, nil
}

// generate issues one model call and returns the cleaned first choice.
// Every invocation is a fresh call: no retry, no cross-request caching.
func (pl *Pipeline) generate(ctx context.Context, prompt string) (string, error) {
	content := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeHuman, prompt),
	}

	resp, err := pl.llm.GenerateContent(ctx, content)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", fmt.Errorf("model returned no choices")
	}

	fragment := CleanFragment(resp.Choices[0].Content)
	log.Info().Int("bytes", len(fragment)).Msg("fragment generated")
	return fragment, nil
}
