package services

import (
	"fmt"
	"strings"

	types "github.com/yungbote/bacprep-backend/internal/domain"
)

const (
	QuizSystemRole    = "You are an expert BAC exam question generator. Always return valid JSON only."
	SummarySystemRole = "You are an expert BAC exam tutor who creates excellent study summaries and guides for students."
)

// BuildQuizPrompt asks for exactly count four-option questions as one JSON
// object with no surrounding prose.
func BuildQuizPrompt(subjectName, chapter string, difficulty types.Difficulty, count int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate %d BAC-style multiple choice questions for the subject %q on the chapter %q with %s difficulty level.\n\n",
		count, subjectName, chapter, difficulty)
	b.WriteString(`Instructions:
- Focus on BAC exam style questions
- Generate exactly `)
	fmt.Fprintf(&b, "%d", count)
	b.WriteString(` questions
- Each question must have exactly 4 options labelled A, B, C and D
- correct_answer must be the single letter of the correct option
- Include a detailed explanation for each correct answer
- Ensure questions test understanding, not just memorization
- Use appropriate academic language in French or Arabic when relevant

Return ONLY a valid JSON object with this exact structure and no other text:
{
  "questions": [
    {
      "question": "Question text here",
      "options": ["A) Option 1", "B) Option 2", "C) Option 3", "D) Option 4"],
      "correct_answer": "A",
      "explanation": "Detailed explanation of why this is correct"
    }
  ]
}`)
	return b.String()
}

// BuildSummaryPrompt asks for an 800-1200 word study guide, narrowed to topic
// when one is given.
func BuildSummaryPrompt(subjectName, chapter, topic string) string {
	topicInfo := ""
	if t := strings.TrimSpace(topic); t != "" {
		topicInfo = fmt.Sprintf(" focusing specifically on %q", t)
	}
	return fmt.Sprintf(`Create a comprehensive study summary for BAC students studying %q on the chapter %q%s.

Instructions:
- Write in clear, academic language appropriate for BAC level
- Include key concepts, definitions, and important formulas/theories
- Provide study tips and exam strategies
- Add memory aids and mnemonics where helpful
- Structure with clear headings and bullet points
- Focus on what's most likely to appear in BAC exams
- Keep it concise but thorough (800-1200 words)

Format the response as a well-structured study guide that students can use for revision.`, subjectName, chapter, topicInfo)
}
