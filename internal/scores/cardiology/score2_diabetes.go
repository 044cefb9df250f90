package cardiology

import (
	"fmt"
	"math"

	"github.com/clinscore/clinscore/internal/registry"
)

// score2DiabCoef holds the diabetes-specific terms of the SCORE2-Diabetes
// model (SCORE2-Diabetes working group, Eur Heart J 2023;44:2544-2556),
// added on top of the shared SCORE2 risk factors.
type score2DiabCoef struct {
	diabetes     float64
	cageDiabetes float64
	ageDiag      float64
	hba1c        float64
	lnEGFR       float64
	lnEGFRSq     float64
	cageHbA1c    float64
	cageLnEGFR   float64
}

var score2DiabCoefs = map[string]score2DiabCoef{
	"male":   {0.6457, -0.0983, -0.0998, 0.0955, -0.0591, 0.0058, -0.0134, 0.0115},
	"female": {0.8096, -0.1272, -0.1180, 0.1173, -0.0640, 0.0062, -0.0196, 0.0169},
}

func init() {
	registry.MustRegister(registry.Definition{
		ID:          "score2_diabetes",
		Title:       "SCORE2-Diabetes 10-Year Cardiovascular Risk",
		Category:    "cardiology",
		Description: "Predicts 10-year cardiovascular risk in patients aged 40-69 with type 2 diabetes and without prior CVD.",
		Params: []registry.ParamSpec{
			{Name: "sex", Type: "string", Required: true, Allowed: []string{"male", "female"}},
			{Name: "age", Type: "integer", Required: true, Unit: "years", Description: "40-69"},
			{Name: "smoking", Type: "string", Required: true, Allowed: []string{"current", "other"}},
			{Name: "systolic_bp", Type: "number", Required: true, Unit: "mmHg"},
			{Name: "total_cholesterol", Type: "number", Required: true, Unit: "mmol/L"},
			{Name: "hdl_cholesterol", Type: "number", Required: true, Unit: "mmol/L"},
			{Name: "age_diabetes_diagnosis", Type: "integer", Required: true, Unit: "years"},
			{Name: "hba1c", Type: "number", Required: true, Unit: "mmol/mol"},
			{Name: "egfr", Type: "number", Required: true, Unit: "mL/min/1.73m²"},
			{Name: "risk_region", Type: "string", Required: true, Allowed: []string{"low", "moderate", "high", "very_high"}},
		},
	}, calculateSCORE2Diabetes)
}

func calculateSCORE2Diabetes(p registry.Params) (*registry.Result, error) {
	b := registry.Bind(p)
	in := bindSCORE2Inputs(b)
	ageDiag := b.Int("age_diabetes_diagnosis", 1, 69)
	hba1c := b.Float("hba1c", 20, 130)
	egfr := b.Float("egfr", 15, 150)
	if b.Err() == nil && ageDiag > in.age {
		b.Failf("age_diabetes_diagnosis", "cannot be greater than current age")
	}
	if err := b.Err(); err != nil {
		return nil, err
	}

	// Centered diabetes-specific transforms per the published model.
	cageDiag := (float64(ageDiag) - 50) / 5
	chba1c := (hba1c - 31) / 9.34
	cegfr := (math.Log(egfr) - 4.5) / 0.15

	c := score2DiabCoefs[in.sex]
	x := in.linearPredictor() +
		c.diabetes +
		c.cageDiabetes*in.cage +
		c.ageDiag*cageDiag +
		c.hba1c*chba1c +
		c.lnEGFR*cegfr +
		c.lnEGFRSq*cegfr*cegfr +
		c.cageHbA1c*in.cage*chba1c +
		c.cageLnEGFR*in.cage*cegfr

	risk := riskFromPredictor(in.sex, in.region, x)
	stage, advice := score2Stage(in.age, risk)

	return &registry.Result{
		Result:           round1(risk),
		Unit:             "%",
		Interpretation:   advice,
		Stage:            stage,
		StageDescription: fmt.Sprintf("%.1f%% 10-year risk", risk),
	}, nil
}
