// Package prompt builds generation requests for the quiz model.
package prompt

import (
	"fmt"

	"quizcraft/internal/domain"
)

// Build constructs the generation prompt for a request. batchSize is how many
// items the model is asked for in one call; it is deliberately larger than the
// number of novel questions a caller needs, to absorb duplicate and parse loss.
// The prompt pins the output language; translation happens afterward as a
// separate step and is never part of the generation call.
func Build(req domain.QuizRequest, batchSize int) string {
	switch {
	case req.Type == domain.QuestionTypeTrueFalse:
		return fmt.Sprintf(
			"Design a (true false) type quiz for %s %s studying %s. "+
				"The quiz should focus on %s. "+
				"Questions should be %s level to understand and written in %s. "+
				"Convert into json format under heading question,answer. "+
				"Give answer as correct answer not as option. Give %d questions.",
			req.CourseName, req.ClassName, req.SubSectionName,
			req.SectionName, req.Difficulty, req.Language, batchSize)
	case req.Type.IsFreeform():
		return fmt.Sprintf(
			"Design a %s answer type quiz for %s %s studying %s. "+
				"The quiz should focus on %s. "+
				"Questions should be %s level to understand and written in %s. "+
				"Format every item on its own lines exactly as:\n"+
				"**Question:** <question text>\n**Answer:** <answer text>\n"+
				"Give the answer as the correct value, not a letter. Give %d questions.",
			string(req.Type), req.CourseName, req.ClassName, req.SubSectionName,
			req.SectionName, req.Difficulty, req.Language, batchSize)
	default:
		return fmt.Sprintf(
			"Design a mcq type quiz for %s %s studying %s. "+
				"The quiz should focus on %s. "+
				"Questions should be %s level to understand and written in %s. "+
				"Convert into json format under heading question,option1,option2,option3,option4,answer. "+
				"Give answer as correct answer not as option. Give %d questions.",
			req.CourseName, req.ClassName, req.SubSectionName,
			req.SectionName, req.Difficulty, req.Language, batchSize)
	}
}
