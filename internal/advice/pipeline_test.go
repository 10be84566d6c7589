package advice

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"

	"wellnav/internal/profile"
)

const foodFragment = `<section class="recommendation-section">
  <div class="recommendation-card">
    <h3 class="category-title">Food</h3>
    <ul class="recommendation-list">
      <li>Grilled salmon with vegetables</li>
      <li>Steel-cut oatmeal with berries</li>
      <li>Lentil soup</li>
      <li>Greek yogurt with walnuts</li>
      <li>Steamed broccoli and quinoa</li>
    </ul>
  </div>
  <div class="recommendation-card">
    <h3 class="category-title">Exercise</h3>
    <ul class="recommendation-list">
      <li>Brisk walking 30 min</li>
      <li>Morning yoga stretches</li>
      <li>Stationary cycling 20 min</li>
      <li>Light resistance bands</li>
      <li>Evening swim 20 min</li>
    </ul>
  </div>
</section>`

const routineFragment = `<table class="routine-table">
  <caption>Daily Routine</caption>
  <thead>
    <tr><th>Time</th><th>Activity</th></tr>
  </thead>
  <tbody>
    <tr><td>5:00 AM - 6:00 AM</td><td>Morning jog and stretching</td></tr>
    <tr class="highlight-row"><td>12:00 PM - 1:00 PM</td><td>Lunch and rest</td></tr>
    <tr><td>10:00 PM - 11:00 PM</td><td>Wind down and sleep</td></tr>
  </tbody>
</table>`

func keyFactsFragment(items int) string {
	var b strings.Builder
	b.WriteString("<ul>\n")
	for i := 0; i < items; i++ {
		fmt.Fprintf(&b, "<li>Point with a <strong>key phrase %d</strong>.</li>\n", i+1)
	}
	b.WriteString("</ul>")
	return b.String()
}

// fakeModel queues canned responses and records every prompt it receives.
type fakeModel struct {
	responses []string
	prompts   []string
	err       error
}

func (f *fakeModel) GenerateContent(_ context.Context, messages []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	var prompt strings.Builder
	for _, m := range messages {
		for _, part := range m.Parts {
			if text, ok := part.(llms.TextContent); ok {
				prompt.WriteString(text.Text)
			}
		}
	}
	f.prompts = append(f.prompts, prompt.String())

	if f.err != nil {
		return nil, f.err
	}
	if len(f.responses) == 0 {
		return &llms.ContentResponse{}, nil
	}
	next := f.responses[0]
	f.responses = f.responses[1:]
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: next}},
	}, nil
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	resp, err := f.GenerateContent(ctx, []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeHuman, prompt),
	}, options...)
	if err != nil {
		return "", err
	}
	return resp.Choices[0].Content, nil
}

func TestFormatProfile(t *testing.T) {
	p := profile.Profile{
		Name: "A", Age: 30, Weight: 70, Height: 170, Sex: "F", Race: "X",
		Diseases: []string{"Diabetes", "Hypertension"},
	}
	assert.Equal(t,
		"Diseases: Diabetes, Hypertension; Weight: 70kg; Age: 30; Height: 170cm; Sex: F; Race: X",
		FormatProfile(p))
}

func TestFoodExerciseReturnsValidatedFragment(t *testing.T) {
	model := &fakeModel{responses: []string{foodFragment}}
	pl := New(model)

	got, err := pl.FoodExercise(context.Background(), "Diseases: Diabetes; Weight: 70kg")
	require.NoError(t, err)
	assert.Equal(t, foodFragment, got)

	require.Len(t, model.prompts, 1)
	assert.Contains(t, model.prompts[0], "Diseases: Diabetes; Weight: 70kg")
	assert.Contains(t, model.prompts[0], "nutrition expert")
}

func TestFoodExerciseStripsCodeFences(t *testing.T) {
	model := &fakeModel{responses: []string{"```html\n" + foodFragment + "\n```"}}
	pl := New(model)

	got, err := pl.FoodExercise(context.Background(), "info")
	require.NoError(t, err)
	assert.Equal(t, foodFragment, got)
}

func TestFoodExerciseRejectsWrongItemCount(t *testing.T) {
	short := `<section><h3>Food</h3><ul><li>a</li><li>b</li></ul><h3>Exercise</h3><ul><li>c</li><li>d</li><li>e</li><li>f</li><li>g</li></ul></section>`
	model := &fakeModel{responses: []string{short}}
	pl := New(model)

	_, err := pl.FoodExercise(context.Background(), "info")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rejected")
}

func TestRoutineChainsTwoSequentialCalls(t *testing.T) {
	model := &fakeModel{responses: []string{foodFragment, routineFragment}}
	pl := New(model)

	got, err := pl.Routine(context.Background(), "Diseases: Asthma")
	require.NoError(t, err)
	assert.Equal(t, routineFragment, got)

	require.Len(t, model.prompts, 2)
	assert.Contains(t, model.prompts[0], "Diseases: Asthma")
	// The second prompt must carry the first stage's entire output.
	assert.Contains(t, model.prompts[1], foodFragment)
	assert.Contains(t, model.prompts[1], "daily routine table")
}

func TestRoutineStopsWhenFirstStageFails(t *testing.T) {
	model := &fakeModel{responses: []string{"<p>not a section</p>"}}
	pl := New(model)

	_, err := pl.Routine(context.Background(), "info")
	require.Error(t, err)
	assert.Len(t, model.prompts, 1)
}

func TestKeyFactsReturnsTenItems(t *testing.T) {
	model := &fakeModel{responses: []string{keyFactsFragment(10)}}
	pl := New(model)

	got, err := pl.KeyFacts(context.Background(), "info")
	require.NoError(t, err)
	assert.Equal(t, 10, strings.Count(got, "<li>"))
}

func TestKeyFactsRejectsWrongCount(t *testing.T) {
	model := &fakeModel{responses: []string{keyFactsFragment(9)}}
	pl := New(model)

	_, err := pl.KeyFacts(context.Background(), "info")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rejected")
}

func TestGenerateErrorsOnEmptyResponse(t *testing.T) {
	model := &fakeModel{}
	pl := New(model)

	_, err := pl.FoodExercise(context.Background(), "info")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestGeneratePropagatesModelError(t *testing.T) {
	model := &fakeModel{err: fmt.Errorf("quota exceeded")}
	pl := New(model)

	_, err := pl.KeyFacts(context.Background(), "info")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}
