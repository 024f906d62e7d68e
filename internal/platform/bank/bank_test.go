package bank

import (
	"reflect"
	"sort"
	"testing"

	"solarquiz/internal/domain/model"
)

func TestDefaultSections(t *testing.T) {
	b := Default()

	got := b.Sections()
	want := []string{"economics", "fundamentals", "technology"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sections() = %v, want %v", got, want)
	}

	for _, section := range want {
		if len(b.QuestionsFor(section)) == 0 {
			t.Errorf("QuestionsFor(%q) is empty", section)
		}
	}
}

func TestSectionKeysAreSlugged(t *testing.T) {
	b := New(map[string][]model.Question{
		"Solar Economics 101": {{Text: "q"}},
	})
	if got := b.Sections(); !reflect.DeepEqual(got, []string{"solar-economics-101"}) {
		t.Errorf("Sections() = %v, want slugged key", got)
	}
}

func TestQuestionsForUnknownSection(t *testing.T) {
	b := Default()
	if got := b.QuestionsFor("astrology"); len(got) != 0 {
		t.Errorf("QuestionsFor(unknown) returned %d questions, want 0", len(got))
	}
}

func TestQuestionsForReturnsCopy(t *testing.T) {
	b := Default()
	first := b.QuestionsFor("fundamentals")
	first[0].Text = "tampered"

	again := b.QuestionsFor("fundamentals")
	if again[0].Text == "tampered" {
		t.Error("mutating a returned slice changed the catalog")
	}
}

func TestSectionsReturnsCopy(t *testing.T) {
	b := Default()
	keys := b.Sections()
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	if reflect.DeepEqual(keys, b.Sections()) {
		t.Error("mutating a returned key slice changed the catalog order")
	}
}
