package cardiology

import (
	"fmt"

	"github.com/clinscore/clinscore/internal/registry"
)

// Annual stroke risk by CHADS₂ score (Gage BF et al., JAMA 2001).
var chads2Risk = []struct {
	rate     float64
	rateRange string
	category string
}{
	{1.9, "1.2-3.0", "Low"},
	{2.8, "2.0-3.8", "Low-Intermediate"},
	{4.0, "3.1-5.1", "Intermediate"},
	{5.9, "4.6-7.3", "High"},
	{8.5, "6.3-11.1", "High"},
	{12.5, "8.2-17.5", "Very High"},
	{18.2, "10.5-27.4", "Very High"},
}

func init() {
	registry.MustRegister(registry.Definition{
		ID:          "chads2_score",
		Title:       "CHADS₂ Score for Atrial Fibrillation Stroke Risk",
		Category:    "cardiology",
		Description: "Estimates annual stroke risk in patients with non-valvular atrial fibrillation.",
		Params: []registry.ParamSpec{
			{Name: "congestive_heart_failure", Type: "string", Required: true, Allowed: []string{"yes", "no"}},
			{Name: "hypertension", Type: "string", Required: true, Allowed: []string{"yes", "no"}},
			{Name: "age_75_or_older", Type: "string", Required: true, Allowed: []string{"yes", "no"}},
			{Name: "diabetes_mellitus", Type: "string", Required: true, Allowed: []string{"yes", "no"}},
			{Name: "stroke_tia_thromboembolism", Type: "string", Required: true, Allowed: []string{"yes", "no"}},
		},
	}, calculateCHADS2)
}

func calculateCHADS2(p registry.Params) (*registry.Result, error) {
	b := registry.Bind(p)
	chf := b.Enum("congestive_heart_failure", "yes", "no")
	htn := b.Enum("hypertension", "yes", "no")
	age75 := b.Enum("age_75_or_older", "yes", "no")
	dm := b.Enum("diabetes_mellitus", "yes", "no")
	stroke := b.Enum("stroke_tia_thromboembolism", "yes", "no")
	if err := b.Err(); err != nil {
		return nil, err
	}

	score := 0
	for _, v := range []string{chf, htn, age75, dm} {
		if v == "yes" {
			score++
		}
	}
	if stroke == "yes" {
		score += 2
	}

	risk := chads2Risk[score]
	recommendation := "Anticoagulation generally recommended: warfarin or direct oral anticoagulants (DOACs) unless contraindicated."
	if score == 0 {
		recommendation = "Consider further risk stratification with the CHA₂DS₂-VASc score, or aspirin based on bleeding risk."
	} else if score == 1 {
		recommendation = "Consider anticoagulation or further risk stratification based on bleeding risk assessment."
	}

	return &registry.Result{
		Result: map[string]interface{}{
			"total_score":               score,
			"annual_stroke_risk_percent": risk.rate,
			"stroke_risk_range":         risk.rateRange,
			"risk_category":             risk.category,
		},
		Unit: "points",
		Interpretation: fmt.Sprintf("CHADS₂ Score %d: %.1f%% annual stroke risk (range %s%%). %s",
			score, risk.rate, risk.rateRange, recommendation),
		Stage:            risk.category + " Risk",
		StageDescription: fmt.Sprintf("%.1f%% annual stroke risk", risk.rate),
	}, nil
}
