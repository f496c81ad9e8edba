package interview

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an experienced technical interviewer running a practice interview for someone starting a career in tech. Grade fairly but kindly. Reward clear structure and correct reasoning; do not penalize brevity if the answer is complete.`

func buildUserMessage(domainName, question, answer string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Track: %s\n", domainName)
	fmt.Fprintf(&b, "Question: %s\n", question)
	fmt.Fprintf(&b, "\nCandidate answer:\n%s\n", answer)
	b.WriteString(`
Instructions:
1. Score the answer from 0 to 100. 85 and above is interview-ready, 70-84 is good with gaps, below 70 needs more practice.
2. Write 2-4 sentences of overall feedback addressed to the candidate.
3. List specific strengths and concrete improvements.
4. Use plain text. No markdown.`)
	return b.String()
}
