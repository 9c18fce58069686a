// Package prompt builds the instruction sent to the generative model.
package prompt

import "fmt"

// Metrics carries the six raw form values. They are treated as opaque
// strings: no coercion, bounds checking, or escaping happens here.
type Metrics struct {
	Age      string
	Weight   string
	Height   string
	Gender   string
	Activity string
	Goal     string
}

// FormatInstruction is the fixed trailing directive mandating HTML-tag-only
// output so the report can be rendered directly in a page.
const FormatInstruction = "IMPORTANT: Format your response using HTML tags (like <h3> for headings, <ul> for lists, <b> for bold) so I can display it directly on a website. Do not use markdown (like ** or #), use HTML tags only."

const planTemplate = `Act as a professional expert nutritionist and personal trainer.
I am a %s year old %s.
My stats: Height: %scm, Weight: %skg.
Activity Level: %s.
My Goal: %s.

Based on this, please generate:
1. A calculation of my BMR and TDEE (calories).
2. A strictly structured weekly diet plan (Breakfast, Lunch, Snack, Dinner).
3. A specific workout recommendation.

` + FormatInstruction

// Build renders the metrics into the plan instruction template. Each value
// appears verbatim in its slot; the result always ends with
// FormatInstruction. Pure function, cannot fail.
func Build(m Metrics) string {
	return fmt.Sprintf(planTemplate, m.Age, m.Gender, m.Height, m.Weight, m.Activity, m.Goal)
}
