package model

// Asker abstracts the interactive prompt capability. Implementations block
// until the operator has answered every question.
type Asker interface {
	// Ask runs the questions in order and returns the collected answers,
	// keyed by question name.
	Ask(questions []QuestionSpec) (AnswerMap, error)
}
