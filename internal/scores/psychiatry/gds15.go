// Package psychiatry registers mental health screening calculators.
package psychiatry

import (
	"fmt"

	"github.com/clinscore/clinscore/internal/registry"
)

// Questions where "yes" scores a point, and questions where "no" does.
var gdsYesScoring = []string{
	"q2_dropped_activities",
	"q3_life_empty",
	"q4_often_bored",
	"q6_afraid_bad_happen",
	"q8_feel_helpless",
	"q9_prefer_stay_home",
	"q10_memory_problems",
	"q12_feel_worthless",
	"q14_situation_hopeless",
	"q15_others_better_off",
}

var gdsNoScoring = []string{
	"q1_satisfied_with_life",
	"q5_good_spirits",
	"q7_happy_most_time",
	"q11_wonderful_to_be_alive",
	"q13_full_of_energy",
}

func init() {
	params := make([]registry.ParamSpec, 0, 15)
	for _, q := range append(append([]string{}, gdsYesScoring...), gdsNoScoring...) {
		params = append(params, registry.ParamSpec{
			Name: q, Type: "string", Required: true, Allowed: []string{"yes", "no"},
		})
	}
	registry.MustRegister(registry.Definition{
		ID:          "gds_15",
		Title:       "Geriatric Depression Scale (GDS-15)",
		Category:    "psychiatry",
		Description: "Screens for depression in older adults using fifteen yes/no questions.",
		Params:      params,
	}, calculateGDS15)
}

func calculateGDS15(p registry.Params) (*registry.Result, error) {
	b := registry.Bind(p)
	answers := make(map[string]string, 15)
	for _, q := range gdsYesScoring {
		answers[q] = b.Enum(q, "yes", "no")
	}
	for _, q := range gdsNoScoring {
		answers[q] = b.Enum(q, "yes", "no")
	}
	if err := b.Err(); err != nil {
		return nil, err
	}

	score := 0
	for _, q := range gdsYesScoring {
		if answers[q] == "yes" {
			score++
		}
	}
	for _, q := range gdsNoScoring {
		if answers[q] == "no" {
			score++
		}
	}

	var stage, desc, advice string
	switch {
	case score <= 4:
		stage, desc = "Normal", "Absence of clinically significant depressive symptoms"
		advice = "No clinically significant depressive symptoms. Continue routine screening at regular intervals."
	case score <= 7:
		stage, desc = "Mild Depression", "Suggests mild depression"
		advice = "Suggests mild depression. A comprehensive clinical evaluation is recommended, with consideration of psychotherapy and follow-up within 2-4 weeks."
	case score <= 9:
		stage, desc = "Moderate Depression", "Suggests moderate depression"
		advice = "Suggests moderate depression. Clinical evaluation is warranted with consideration of pharmacotherapy and psychotherapy, and closer follow-up."
	default:
		stage, desc = "Severe Depression", "Suggests severe depression"
		advice = "Suggests severe depression. Prompt clinical evaluation is required, including assessment of suicide risk and initiation of treatment."
	}

	return &registry.Result{
		Result:           score,
		Unit:             "points",
		Interpretation:   fmt.Sprintf("GDS-15 score: %d/15. %s", score, advice),
		Stage:            stage,
		StageDescription: desc,
	}, nil
}
