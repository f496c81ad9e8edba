package interview

import (
	"slices"

	"github.com/pathwise/pathwise/internal/domain"
	"github.com/pathwise/pathwise/internal/quiz"
)

var questions = map[domain.Key][]string{
	domain.FullStack: {
		"Walk me through what happens between typing a URL in the browser and the page rendering.",
		"How would you design the REST API and database tables for a simple to-do app with user accounts?",
		"What are the trade-offs between server-side rendering and a single-page application?",
	},
	domain.AIML: {
		"Explain the bias-variance trade-off and how you would detect overfitting.",
		"How would you handle a heavily imbalanced classification dataset?",
		"Describe how gradient descent trains a neural network.",
	},
	domain.UIUX: {
		"Describe your process for turning user research findings into a wireframe.",
		"How would you run a usability test for a new checkout flow?",
		"What makes a design accessible, and how do you verify it?",
	},
	domain.Data: {
		"Write, in words, a SQL query that finds the top three customers by revenue per month.",
		"How would you explain a p-value to a non-technical stakeholder?",
		"Describe how you would clean a dataset with missing and inconsistent values.",
	},
	domain.Cyber: {
		"Explain the difference between symmetric and asymmetric encryption with an example of each.",
		"How would you respond in the first hour after detecting a compromised server?",
		"What is SQL injection and how do you prevent it?",
	},
}

// Questions returns the interview prompts for k.
func Questions(k domain.Key) []string {
	return slices.Clone(questions[k])
}

// PickQuestion draws one prompt for k. It returns "" for unknown keys.
func PickQuestion(k domain.Key, rng quiz.Rand) string {
	qs := questions[k]
	if len(qs) == 0 {
		return ""
	}
	return qs[rng.IntN(len(qs))]
}
