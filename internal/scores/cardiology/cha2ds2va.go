package cardiology

import (
	"fmt"

	"github.com/clinscore/clinscore/internal/registry"
)

// Annual stroke rates per 100 patient-years by CHA₂DS₂-VA score (2024 ESC
// atrial fibrillation guidelines, sexless revision of CHA₂DS₂-VASc).
var cha2ds2vaRates = []float64{0.5, 1.5, 2.9, 4.6, 6.7, 9.2, 11.9, 15.2, 19.5}

func init() {
	registry.MustRegister(registry.Definition{
		ID:          "cha2ds2_va_score",
		Title:       "CHA₂DS₂-VA Score for Atrial Fibrillation Stroke Risk",
		Category:    "cardiology",
		Description: "Estimates stroke risk in atrial fibrillation without the sex category.",
		Params: []registry.ParamSpec{
			{Name: "age", Type: "integer", Required: true, Unit: "years"},
			{Name: "congestive_heart_failure", Type: "string", Required: true, Allowed: []string{"yes", "no"}},
			{Name: "hypertension", Type: "string", Required: true, Allowed: []string{"yes", "no"}},
			{Name: "diabetes_mellitus", Type: "string", Required: true, Allowed: []string{"yes", "no"}},
			{Name: "stroke_tia_thromboembolism", Type: "string", Required: true, Allowed: []string{"yes", "no"}},
			{Name: "vascular_disease", Type: "string", Required: true, Allowed: []string{"yes", "no"}},
		},
	}, calculateCHA2DS2VA)
}

func calculateCHA2DS2VA(p registry.Params) (*registry.Result, error) {
	b := registry.Bind(p)
	age := b.Int("age", 18, 120)
	chf := b.Enum("congestive_heart_failure", "yes", "no")
	htn := b.Enum("hypertension", "yes", "no")
	dm := b.Enum("diabetes_mellitus", "yes", "no")
	stroke := b.Enum("stroke_tia_thromboembolism", "yes", "no")
	vascular := b.Enum("vascular_disease", "yes", "no")
	if err := b.Err(); err != nil {
		return nil, err
	}

	score := 0
	switch {
	case age >= 75:
		score += 2
	case age >= 65:
		score++
	}
	for _, v := range []string{chf, htn, dm, vascular} {
		if v == "yes" {
			score++
		}
	}
	if stroke == "yes" {
		score += 2
	}

	rate := cha2ds2vaRates[len(cha2ds2vaRates)-1]
	if score < len(cha2ds2vaRates) {
		rate = cha2ds2vaRates[score]
	}

	var stage, desc, advice string
	switch {
	case score == 0:
		stage, desc = "Low Risk", "Very low stroke risk"
		advice = "Anticoagulation is not recommended. Consider bleeding risk assessment."
	case score == 1:
		stage, desc = "Moderate Risk", "Low-moderate stroke risk"
		advice = "Use clinical judgment to weigh risks and benefits of anticoagulation."
	default:
		stage, desc = "High Risk", "High stroke risk"
		advice = "Oral anticoagulation is recommended unless contraindicated."
	}

	return &registry.Result{
		Result: map[string]interface{}{
			"total_score":                score,
			"annual_stroke_risk_percent": rate,
			"stroke_incidence":           fmt.Sprintf("%.1f per 100 patient-years", rate),
		},
		Unit: "points",
		Interpretation: fmt.Sprintf("CHA₂DS₂-VA Score %d: %s (%.1f strokes per 100 patient-years). %s",
			score, desc, rate, advice),
		Stage:            stage,
		StageDescription: desc,
	}, nil
}
