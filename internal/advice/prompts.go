package advice

/* =================================================================================
						PROMPT TEMPLATES
	Each template is a complete prompt; the patient information sentence is
	the only substitution variable. The contracts below (fragment shape,
	item counts) are enforced after generation in validate.go.
=================================================================================*/

// foodExerciseTemplate asks for a self-contained <section> fragment with two
// headed lists of five concrete items each.
const foodExerciseTemplate = `You are a certified medical nutrition expert.
Generate a concise HTML fragment (not a full page) with Food and Exercise recommendations based on: {{.information}}.

Rules:
- Output must start with <section> and end with </section>.
- Do NOT include <html>, <head>, <body>, styles, comments, or any text outside the fragment.
- Two parts: a Food heading and an Exercise heading, each followed by an unordered list.
- Each list contains exactly 5 specific, concrete items (e.g. "Grilled salmon with vegetables", "Brisk walking 30 min"), not general categories.

Format:
<section class="recommendation-section">
  <div class="recommendation-card">
    <h3 class="category-title">Food</h3>
    <ul class="recommendation-list">
      <li>Food 1</li>
      <li>Food 2</li>
      <li>Food 3</li>
      <li>Food 4</li>
      <li>Food 5</li>
    </ul>
  </div>
  <div class="recommendation-card">
    <h3 class="category-title">Exercise</h3>
    <ul class="recommendation-list">
      <li>Exercise 1</li>
      <li>Exercise 2</li>
      <li>Exercise 3</li>
      <li>Exercise 4</li>
      <li>Exercise 5</li>
    </ul>
  </div>
</section>

Now fill the same structure with realistic, specific recommendations derived from {{.information}}.`

// routineTemplate turns the food/exercise fragment into a daily schedule
// table. It receives the first stage's entire output as its input variable
// so the routine stays consistent with the recommendations.
const routineTemplate = `You are a medical nutrition and fitness expert.
Generate a clean HTML fragment (not a full page) showing a daily routine table from 5-6 AM to 10-11 PM based on: {{.recommendations}}.

Rules:
- Start directly with <table>, end directly with </table>.
- Two columns: "Time" and "Activity".
- Include <caption> at the top.
- Use <table class="routine-table"> with <thead> and <tbody>, and optional <tr class="highlight-row"> for key activities.
- No inline CSS, comments, or extra paragraphs.

Format:
<table class="routine-table">
  <caption>Daily Routine</caption>
  <thead>
    <tr><th>Time</th><th>Activity</th></tr>
  </thead>
  <tbody>
    <tr><td>5:00 AM - 6:00 AM</td><td>Morning jog and stretching</td></tr>
    <tr class="highlight-row"><td>12:00 PM - 1:00 PM</td><td>Lunch and rest</td></tr>
  </tbody>
</table>

Now generate your table using the same format based on {{.recommendations}}.`

// keyFactsTemplate asks for exactly ten list items with one emphasized key
// phrase each, as a bare unordered list.
const keyFactsTemplate = `You are a medical nutrition expert. The characteristics of the person: {{.information}}
List exactly 10 essential things to notice for the disease(s). In each list item, highlight the single most important key phrase using <strong> tags.
ONLY return a clean HTML unordered list (<ul>). Do not include <html> or <body> tags. No explanations, just the list.
IMPORTANT: do NOT include markdown code fences. Your response must start directly with the <ul> tag and end directly with the </ul> tag.
Format exactly as follows:
<ul>
<li>This is the <strong>first key point</strong>.</li>
<li>This is the <strong>second key point</strong>.</li>
<li>What things you must <strong>always carry with you</strong>.</li>
<li>What you should do to <strong>protect yourself</strong>.</li>
<li>Any other key ways to <strong>support that person</strong>.</li>
<li>This is the <strong>sixth key point</strong>.</li>
<li>This is the <strong>seventh key point</strong>.</li>
<li>This is the <strong>eighth key point</strong>.</li>
<li>This is the <strong>ninth key point</strong>.</li>
<li>This is the <strong>tenth key point</strong>.</li>
</ul>`
