package gastroenterology

import (
	"fmt"

	"github.com/clinscore/clinscore/internal/registry"
)

func init() {
	registry.MustRegister(registry.Definition{
		ID:          "glasgow_blatchford_bleeding_score",
		Title:       "Glasgow-Blatchford Bleeding Score",
		Category:    "gastroenterology",
		Description: "Stratifies upper GI bleeding patients by their likelihood of needing transfusion or endoscopic intervention.",
		Params: []registry.ParamSpec{
			{Name: "bun", Type: "number", Required: true, Unit: "mg/dL", Description: "Blood urea nitrogen"},
			{Name: "hemoglobin", Type: "number", Required: true, Unit: "g/dL"},
			{Name: "gender", Type: "string", Required: true, Allowed: []string{"male", "female"}},
			{Name: "systolic_bp", Type: "integer", Required: true, Unit: "mmHg"},
			{Name: "heart_rate", Type: "integer", Required: true, Unit: "bpm"},
			{Name: "melena", Type: "string", Required: true, Allowed: []string{"yes", "no"}},
			{Name: "syncope", Type: "string", Required: true, Allowed: []string{"yes", "no"}},
			{Name: "liver_disease", Type: "string", Required: true, Allowed: []string{"yes", "no"}},
			{Name: "heart_failure", Type: "string", Required: true, Allowed: []string{"yes", "no"}},
		},
	}, calculateBlatchford)
}

func calculateBlatchford(p registry.Params) (*registry.Result, error) {
	b := registry.Bind(p)
	bun := b.Float("bun", 5, 200)
	hemoglobin := b.Float("hemoglobin", 3.0, 20.0)
	gender := b.Enum("gender", "male", "female")
	systolicBP := b.Int("systolic_bp", 50, 250)
	heartRate := b.Int("heart_rate", 30, 200)
	melena := b.Enum("melena", "yes", "no") == "yes"
	syncope := b.Enum("syncope", "yes", "no") == "yes"
	liverDisease := b.Enum("liver_disease", "yes", "no") == "yes"
	heartFailure := b.Enum("heart_failure", "yes", "no") == "yes"
	if err := b.Err(); err != nil {
		return nil, err
	}

	bunScore := blatchfordBUNScore(bun)
	hbScore := blatchfordHemoglobinScore(hemoglobin, gender)
	bpScore := blatchfordBPScore(systolicBP)
	hrScore := 0
	if heartRate >= 100 {
		hrScore = 1
	}
	melenaScore := boolPoints(melena, 1)
	syncopeScore := boolPoints(syncope, 2)
	liverScore := boolPoints(liverDisease, 2)
	heartScore := boolPoints(heartFailure, 2)

	total := bunScore + hbScore + bpScore + hrScore +
		melenaScore + syncopeScore + liverScore + heartScore

	var stage, desc, advice string
	switch {
	case total == 0:
		stage, desc = "Low Risk", "Very low risk - Safe for outpatient management"
		advice = "Very low risk for needing medical intervention. Patient can be safely managed as an outpatient with gastroenterology follow-up within 7-14 days and clear return precautions."
	case total <= 5:
		stage, desc = "Low-Moderate Risk", "Low to moderate risk requiring clinical assessment"
		advice = "Low to moderate risk for intervention. Consider admission for observation, monitor vital signs and hemoglobin closely, initiate proton pump inhibitor therapy and type and screen blood products."
	case total <= 11:
		stage, desc = "Moderate Risk", "Moderate risk requiring hospital admission"
		advice = "Moderate risk for needing medical intervention. Hospital admission recommended with prompt gastroenterology consultation, crossmatched blood products and early endoscopy within 24 hours."
	default:
		stage, desc = "High Risk", "High risk requiring immediate intervention"
		advice = "High risk for needing immediate intervention. Urgent admission with intensive monitoring, immediate resuscitation, and urgent endoscopy within 12-24 hours or emergently if unstable."
	}

	return &registry.Result{
		Result:           total,
		Unit:             "points",
		Interpretation:   fmt.Sprintf("Glasgow-Blatchford Bleeding Score: %d/23. %s", total, advice),
		Stage:            stage,
		StageDescription: desc,
		Details: map[string]interface{}{
			"bun_score":           bunScore,
			"hemoglobin_score":    hbScore,
			"systolic_bp_score":   bpScore,
			"heart_rate_score":    hrScore,
			"melena_score":        melenaScore,
			"syncope_score":       syncopeScore,
			"liver_disease_score": liverScore,
			"heart_failure_score": heartScore,
		},
	}, nil
}

func blatchfordBUNScore(bun float64) int {
	switch {
	case bun < 18.2:
		return 0
	case bun <= 22.3:
		return 2
	case bun <= 28.0:
		return 3
	case bun <= 70.0:
		return 4
	default:
		return 6
	}
}

func blatchfordHemoglobinScore(hb float64, gender string) int {
	if gender == "male" {
		switch {
		case hb > 13.0:
			return 0
		case hb >= 12.0:
			return 1
		case hb >= 10.0:
			return 3
		default:
			return 6
		}
	}
	switch {
	case hb > 12.0:
		return 0
	case hb >= 10.0:
		return 1
	default:
		return 6
	}
}

func blatchfordBPScore(sbp int) int {
	switch {
	case sbp >= 110:
		return 0
	case sbp >= 100:
		return 1
	case sbp >= 90:
		return 2
	default:
		return 3
	}
}

func boolPoints(present bool, pts int) int {
	if present {
		return pts
	}
	return 0
}
