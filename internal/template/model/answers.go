package model

// AnswerMap maps question names to answer values (string, bool, or a
// selected choice). Keys are unique; insertion order is irrelevant.
type AnswerMap map[string]interface{}

// MergeAnswers combines two answer maps into a new map. Keys from overlay
// win on conflict; neither input is mutated.
func MergeAnswers(base, overlay AnswerMap) AnswerMap {
	merged := make(AnswerMap, len(base)+len(overlay))
	for name, value := range base {
		merged[name] = value
	}
	for name, value := range overlay {
		merged[name] = value
	}
	return merged
}

// Clone returns a shallow copy of the answer map. Cloning nil yields an
// empty, non-nil map.
func (m AnswerMap) Clone() AnswerMap {
	clone := make(AnswerMap, len(m))
	for name, value := range m {
		clone[name] = value
	}
	return clone
}
