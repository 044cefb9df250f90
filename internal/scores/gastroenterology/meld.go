package gastroenterology

import (
	"fmt"
	"math"

	"github.com/clinscore/clinscore/internal/registry"
)

func init() {
	registry.MustRegister(registry.Definition{
		ID:          "meld_combined",
		Title:       "MELD, MELD-Na and MELD 3.0 for End-Stage Liver Disease",
		Category:    "gastroenterology",
		Description: "Estimates 90-day mortality in end-stage liver disease using the original MELD, the sodium-adjusted MELD-Na and the MELD 3.0 revision.",
		Params: []registry.ParamSpec{
			{Name: "creatinine", Type: "number", Required: true, Unit: "mg/dL"},
			{Name: "bilirubin", Type: "number", Required: true, Unit: "mg/dL"},
			{Name: "inr", Type: "number", Required: true},
			{Name: "sodium", Type: "number", Required: true, Unit: "mEq/L"},
			{Name: "albumin", Type: "number", Required: true, Unit: "g/dL"},
			{Name: "sex", Type: "string", Required: true, Allowed: []string{"male", "female"}},
			{Name: "on_dialysis", Type: "boolean", Required: false, Description: "Two or more dialysis sessions in the prior week"},
		},
	}, calculateMELD)
}

func calculateMELD(p registry.Params) (*registry.Result, error) {
	b := registry.Bind(p)
	creatinine := b.Float("creatinine", 0.1, 15)
	bilirubin := b.Float("bilirubin", 0.1, 50)
	inr := b.Float("inr", 0.8, 10)
	sodium := b.Float("sodium", 110, 160)
	albumin := b.Float("albumin", 0.5, 6.0)
	sex := b.Enum("sex", "male", "female")
	onDialysis := b.BoolOpt("on_dialysis")
	if err := b.Err(); err != nil {
		return nil, err
	}

	// Lab floors from the original UNOS policy. Dialysis fixes the
	// creatinine at 4.0 regardless of the measured value.
	cr := math.Max(creatinine, 1.0)
	if onDialysis || cr > 4.0 {
		cr = 4.0
	}
	bili := math.Max(bilirubin, 1.0)
	rInr := math.Max(inr, 1.0)

	meld := 9.57*math.Log(cr) + 3.78*math.Log(bili) + 11.2*math.Log(rInr) + 6.43
	meld = clampScore(math.Round(meld))

	na := math.Min(math.Max(sodium, 125), 137)
	meldNa := meld
	if meld > 11 {
		meldNa = meld + 1.32*(137-na) - 0.033*meld*(137-na)
		meldNa = clampScore(math.Round(meldNa))
	}

	alb := math.Min(math.Max(albumin, 1.5), 3.5)
	sexCoeff := 1.0
	if sex == "female" {
		sexCoeff = 1.33
	}
	meld3 := sexCoeff * (4.56*math.Log(bili) +
		0.82*(137-na) -
		0.24*(137-na)*math.Log(bili) +
		9.09*math.Log(rInr) +
		11.14*math.Log(cr) +
		1.85*(3.5-alb) -
		1.83*(3.5-alb)*math.Log(cr) +
		6.0)
	meld3 = clampScore(math.Round(meld3))

	mortality := meldMortality(int(meld3))
	stage, desc := meldStage(int(meld3))

	return &registry.Result{
		Result: map[string]interface{}{
			"meld":    int(meld),
			"meld_na": int(meldNa),
			"meld_3":  int(meld3),
		},
		Unit: "points",
		Interpretation: fmt.Sprintf(
			"MELD %d, MELD-Na %d, MELD 3.0 %d. Estimated 90-day mortality %s (by MELD 3.0). Transplant allocation uses MELD 3.0.",
			int(meld), int(meldNa), int(meld3), mortality),
		Stage:            stage,
		StageDescription: desc,
		Details: map[string]interface{}{
			"estimated_90_day_mortality": mortality,
			"dialysis_adjusted":          onDialysis,
		},
	}, nil
}

func clampScore(v float64) float64 {
	return math.Min(math.Max(v, 6), 40)
}

func meldMortality(score int) string {
	switch {
	case score <= 9:
		return "1.9%"
	case score <= 19:
		return "6.0%"
	case score <= 29:
		return "19.6%"
	case score <= 39:
		return "52.6%"
	default:
		return "71.3%"
	}
}

func meldStage(score int) (string, string) {
	switch {
	case score <= 9:
		return "Low Risk", "Low short-term mortality"
	case score <= 19:
		return "Moderate Risk", "Moderate short-term mortality"
	case score <= 29:
		return "High Risk", "High short-term mortality; transplant evaluation warranted"
	default:
		return "Very High Risk", "Very high short-term mortality; urgent transplant consideration"
	}
}
