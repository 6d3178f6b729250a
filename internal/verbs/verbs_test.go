package verbs

import (
	"sort"
	"testing"
)

func TestTable(t *testing.T) {
	table, err := Table()
	if err != nil {
		t.Fatalf("Table: %v", err)
	}
	if len(table) != 30 {
		t.Fatalf("table has %d verbs; want 30", len(table))
	}

	first := table[0]
	if first.Infinitive != "go" || first.SimplePast.Form != "went" || first.PastParticiple.Form != "gone" {
		t.Errorf("first verb = %+v; want go/went/gone", first)
	}

	for _, v := range table {
		if v.Infinitive == "" || v.SimplePast.Form == "" || v.PastParticiple.Form == "" {
			t.Errorf("verb %q has missing forms: %+v", v.Infinitive, v)
		}
		if v.SimplePast.Hint == "" || v.SimplePast.Sentence == "" {
			t.Errorf("verb %q missing simple past hint data", v.Infinitive)
		}
		if v.PastParticiple.Hint == "" || v.PastParticiple.Sentence == "" {
			t.Errorf("verb %q missing past participle hint data", v.Infinitive)
		}
	}
}

func TestAllForms(t *testing.T) {
	table, err := Table()
	if err != nil {
		t.Fatal(err)
	}

	forms := AllForms(table)

	if !sort.StringsAreSorted(forms) {
		t.Error("forms not sorted")
	}

	seen := make(map[string]int)
	for _, f := range forms {
		seen[f]++
	}
	// "come" and "run" share infinitive and participle; "made", "brought",
	// etc. share both tested forms. Each must appear exactly once.
	for form, n := range seen {
		if n != 1 {
			t.Errorf("form %q appears %d times", form, n)
		}
	}
	for _, must := range []string{"go", "went", "gone", "come", "made", "forgotten"} {
		if seen[must] != 1 {
			t.Errorf("expected form %q in list", must)
		}
	}
}
