package model

// Question is an immutable catalog entry. The correct index travels with the
// question; the client is trusted not to surface it before the answer is
// submitted (see DESIGN.md).
type Question struct {
	Text             string   `json:"question_text"`
	Options          []string `json:"options"`
	CorrectIndex     int      `json:"correct_index"`
	ConceptTags      []string `json:"concept_tags"`
	DifficultyRating float64  `json:"difficulty_rating"`
}
