// Package verbs carries the curated irregular-verb table and the
// operations that stamp it onto the irregular-verbs learning path.
package verbs

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
)

//go:embed irregular_verbs.json
var rawTable []byte

// Form is one conjugated verb form with its learner-facing hint and a
// contextual fill-in sentence ("She ___ a blue dress").
type Form struct {
	Form     string `json:"form"`
	Hint     string `json:"hint"`
	Sentence string `json:"sentence"`
}

// Verb is one irregular verb with its two tested forms.
type Verb struct {
	Infinitive     string `json:"infinitive"`
	SimplePast     Form   `json:"simplePast"`
	PastParticiple Form   `json:"pastParticiple"`
}

// Table returns the embedded irregular-verb table in curated order. The
// order matters: the irregular-verbs learning path's tasks alternate
// simple past and past participle per verb in this same order.
func Table() ([]Verb, error) {
	var table []Verb
	if err := json.Unmarshal(rawTable, &table); err != nil {
		return nil, fmt.Errorf("decode embedded verb table: %w", err)
	}
	return table, nil
}

// AllForms returns every distinct verb form needing audio, sorted. Forms
// shared between tenses (made/made) or with the infinitive (come/come)
// appear once.
func AllForms(table []Verb) []string {
	seen := make(map[string]struct{})
	for _, v := range table {
		for _, form := range []string{v.Infinitive, v.SimplePast.Form, v.PastParticiple.Form} {
			seen[form] = struct{}{}
		}
	}

	forms := make([]string, 0, len(seen))
	for form := range seen {
		forms = append(forms, form)
	}
	sort.Strings(forms)
	return forms
}
