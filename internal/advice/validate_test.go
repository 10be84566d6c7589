package advice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanFragment(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "<ul></ul>", "<ul></ul>"},
		{"whitespace", "  \n<ul></ul>\n ", "<ul></ul>"},
		{"fenced", "```html\n<ul></ul>\n```", "<ul></ul>"},
		{"fenced no language", "```\n<ul></ul>\n```", "<ul></ul>"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CleanFragment(tc.in))
		})
	}
}

func TestValidateFoodExercise(t *testing.T) {
	assert.NoError(t, ValidateFoodExercise(foodFragment))

	assert.Error(t, ValidateFoodExercise("<div>wrapped</div>"), "wrong container")
	assert.Error(t, ValidateFoodExercise("<section><h3>Food</h3></section>"), "missing lists")

	oneList := `<section><h3>Food</h3><ul><li>a</li><li>b</li><li>c</li><li>d</li><li>e</li></ul></section>`
	assert.Error(t, ValidateFoodExercise(oneList), "only one sub-section")
}

func TestValidateRoutine(t *testing.T) {
	assert.NoError(t, ValidateRoutine(routineFragment))

	assert.Error(t, ValidateRoutine("<div></div>"), "not a table")

	noCaption := `<table><thead><tr><th>Time</th><th>Activity</th></tr></thead><tbody><tr><td>a</td><td>b</td></tr></tbody></table>`
	assert.Error(t, ValidateRoutine(noCaption), "missing caption")

	threeCols := `<table><caption>r</caption><thead><tr><th>a</th><th>b</th><th>c</th></tr></thead><tbody><tr><td>x</td><td>y</td><td>z</td></tr></tbody></table>`
	assert.Error(t, ValidateRoutine(threeCols), "wrong column count")

	empty := `<table><caption>r</caption><thead><tr><th>a</th><th>b</th></tr></thead><tbody></tbody></table>`
	assert.Error(t, ValidateRoutine(empty), "no rows")
}

func TestValidateKeyFacts(t *testing.T) {
	assert.NoError(t, ValidateKeyFacts(keyFactsFragment(10)))

	assert.Error(t, ValidateKeyFacts(keyFactsFragment(9)), "too few items")
	assert.Error(t, ValidateKeyFacts("<ol></ol>"), "not an unordered list")

	twoStrong := `<ul><li><strong>a</strong> and <strong>b</strong></li><li><strong>c</strong></li><li><strong>d</strong></li><li><strong>e</strong></li><li><strong>f</strong></li><li><strong>g</strong></li><li><strong>h</strong></li><li><strong>i</strong></li><li><strong>j</strong></li><li><strong>k</strong></li></ul>`
	assert.Error(t, ValidateKeyFacts(twoStrong), "item with two emphasized phrases")
}
