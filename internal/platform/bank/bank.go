package bank

import (
	"sort"

	"solarquiz/internal/domain/model"

	"github.com/gosimple/slug"
)

// Bank is the static question catalog. It is built once at startup and
// read-only afterwards, so lookups need no locking. Section keys are slugs of
// the human-readable section titles.
type Bank struct {
	sections map[string][]model.Question
	keys     []string
}

func New(defs map[string][]model.Question) *Bank {
	b := &Bank{sections: make(map[string][]model.Question, len(defs))}
	for title, questions := range defs {
		key := slug.Make(title)
		b.sections[key] = append([]model.Question(nil), questions...)
		b.keys = append(b.keys, key)
	}
	sort.Strings(b.keys)
	return b
}

// Sections returns the fixed set of section keys.
func (b *Bank) Sections() []string {
	return append([]string(nil), b.keys...)
}

// QuestionsFor returns a copy of the section's question list. An unknown
// section yields an empty list, never an error.
func (b *Bank) QuestionsFor(section string) []model.Question {
	return append([]model.Question(nil), b.sections[section]...)
}

// Default is the solar-energy catalog served in production.
func Default() *Bank {
	return New(map[string][]model.Question{
		"Fundamentals": {
			{Text: "What is a typical panel efficiency?", Options: []string{"5-10%", "15-20%", "18-22%", "40-50%"}, CorrectIndex: 2, ConceptTags: []string{"panel_efficiency"}, DifficultyRating: 4.0},
			{Text: "PV stands for?", Options: []string{"Potential Voltage", "Photovoltaic", "Phase Variation", "Power Vector"}, CorrectIndex: 1, ConceptTags: []string{"pv"}, DifficultyRating: 3.0},
			{Text: "Main components of a grid-tied system?", Options: []string{"Panels + Inverter + Meter", "Panels + Battery + Turbine", "Panels only", "Inverter only"}, CorrectIndex: 0, ConceptTags: []string{"components"}, DifficultyRating: 3.4},
			{Text: "What does kWh measure?", Options: []string{"Power", "Energy", "Voltage", "Current"}, CorrectIndex: 1, ConceptTags: []string{"kwh"}, DifficultyRating: 3.2},
			{Text: "Typical panel DC output is?", Options: []string{"12V DC", "120V AC", "230V AC", "5V USB"}, CorrectIndex: 0, ConceptTags: []string{"dc"}, DifficultyRating: 3.5},
		},
		"Economics": {
			{Text: "What reduces payback time most?", Options: []string{"Lower tariffs", "Higher consumption offset", "Cloudy climate", "Smaller system"}, CorrectIndex: 1, ConceptTags: []string{"payback"}, DifficultyRating: 4.2},
			{Text: "Which is an incentive?", Options: []string{"Net metering", "Peak shaving", "Voltage drop", "Harmonics"}, CorrectIndex: 0, ConceptTags: []string{"incentive"}, DifficultyRating: 3.8},
			{Text: "LCOE stands for?", Options: []string{"Levelized Cost of Energy", "Local Cost of Electricity", "Load Curve of Energy", "Least Cost of Equipment"}, CorrectIndex: 0, ConceptTags: []string{"lcoe"}, DifficultyRating: 4.0},
		},
		"Technology": {
			{Text: "Device that converts DC to AC?", Options: []string{"Transformer", "Inverter", "Rectifier", "Converter"}, CorrectIndex: 1, ConceptTags: []string{"inverter"}, DifficultyRating: 3.0},
			{Text: "Which panel type is common in rooftops?", Options: []string{"Monocrystalline", "Amorphous selenium", "Thin-film CdTe", "Concentrated PV"}, CorrectIndex: 0, ConceptTags: []string{"panel_type"}, DifficultyRating: 3.6},
			{Text: "MPPT is used for?", Options: []string{"Tracking sun position", "Maximizing power point", "Measuring power", "Mounting panels"}, CorrectIndex: 1, ConceptTags: []string{"mppt"}, DifficultyRating: 4.1},
		},
	})
}
