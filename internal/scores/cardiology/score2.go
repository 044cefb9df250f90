// Package cardiology registers cardiovascular risk calculators.
package cardiology

import (
	"fmt"
	"math"

	"github.com/clinscore/clinscore/internal/registry"
)

// score2Coef holds the per-sex, per-region beta coefficients of the SCORE2
// risk model (SCORE2 working group, Eur Heart J 2021;42:2439-2454).
type score2Coef struct {
	cage, csbp, ctchol, chdl, smoking, cageChdl, cageSmoking float64
}

var score2Coefs = map[string]map[string]score2Coef{
	"male": {
		"low":       {0.3742, 0.3018, 0.2900, -0.4231, 0.6012, -0.0755, -0.0701},
		"moderate":  {0.3744, 0.3016, 0.2898, -0.4230, 0.6014, -0.0756, -0.0700},
		"high":      {0.3746, 0.3015, 0.2896, -0.4229, 0.6015, -0.0757, -0.0699},
		"very_high": {0.3748, 0.3014, 0.2894, -0.4228, 0.6016, -0.0758, -0.0698},
	},
	"female": {
		"low":       {0.4648, 0.3131, 0.1471, -0.5347, 0.7744, -0.0665, -0.0790},
		"moderate":  {0.4650, 0.3130, 0.1470, -0.5346, 0.7746, -0.0666, -0.0789},
		"high":      {0.4652, 0.3129, 0.1469, -0.5345, 0.7747, -0.0667, -0.0788},
		"very_high": {0.4654, 0.3128, 0.1468, -0.5344, 0.7748, -0.0668, -0.0787},
	},
}

// 10-year baseline survival probabilities by sex and risk region.
var score2Baseline = map[string]map[string]float64{
	"male":   {"low": 0.9605, "moderate": 0.9434, "high": 0.9281, "very_high": 0.8954},
	"female": {"low": 0.9766, "moderate": 0.9701, "high": 0.9634, "very_high": 0.9511},
}

func init() {
	registry.MustRegister(registry.Definition{
		ID:          "score2",
		Title:       "SCORE2 10-Year Cardiovascular Risk",
		Category:    "cardiology",
		Description: "Predicts 10-year risk of fatal and non-fatal cardiovascular disease in patients aged 40-69 without prior CVD or diabetes.",
		Params: []registry.ParamSpec{
			{Name: "sex", Type: "string", Required: true, Allowed: []string{"male", "female"}},
			{Name: "age", Type: "integer", Required: true, Unit: "years", Description: "40-69"},
			{Name: "smoking", Type: "string", Required: true, Allowed: []string{"current", "other"}},
			{Name: "systolic_bp", Type: "number", Required: true, Unit: "mmHg"},
			{Name: "total_cholesterol", Type: "number", Required: true, Unit: "mmol/L"},
			{Name: "hdl_cholesterol", Type: "number", Required: true, Unit: "mmol/L"},
			{Name: "risk_region", Type: "string", Required: true, Allowed: []string{"low", "moderate", "high", "very_high"}},
		},
	}, calculateSCORE2)
}

// score2Inputs are the risk factors shared by SCORE2 and SCORE2-Diabetes.
type score2Inputs struct {
	sex     string
	age     int
	smoking float64
	cage    float64
	csbp    float64
	ctchol  float64
	chdl    float64
	region  string
}

func bindSCORE2Inputs(b *registry.Binder) score2Inputs {
	sex := b.Enum("sex", "male", "female")
	age := b.Int("age", 40, 69)
	smoking := b.Enum("smoking", "current", "other")
	sbp := b.Float("systolic_bp", 80, 250)
	tchol := b.Float("total_cholesterol", 2.0, 12.0)
	hdl := b.Float("hdl_cholesterol", 0.5, 3.5)
	region := b.Enum("risk_region", "low", "moderate", "high", "very_high")
	if b.Err() == nil && hdl >= tchol {
		b.Failf("hdl_cholesterol", "cannot be greater than or equal to total cholesterol")
	}
	smokingVal := 0.0
	if smoking == "current" {
		smokingVal = 1.0
	}
	return score2Inputs{
		sex:     sex,
		age:     age,
		smoking: smokingVal,
		cage:    (float64(age) - 60) / 5,
		csbp:    (sbp - 120) / 20,
		ctchol:  tchol - 6,
		chdl:    (hdl - 1.3) / 0.5,
		region:  region,
	}
}

func (in score2Inputs) linearPredictor() float64 {
	c := score2Coefs[in.sex][in.region]
	return c.cage*in.cage +
		c.csbp*in.csbp +
		c.ctchol*in.ctchol +
		c.chdl*in.chdl +
		c.smoking*in.smoking +
		c.cageChdl*in.cage*in.chdl +
		c.cageSmoking*in.cage*in.smoking
}

// riskFromPredictor converts the linear predictor to a 10-year risk
// percentage, clamped to 0-100.
func riskFromPredictor(sex, region string, x float64) float64 {
	s0 := score2Baseline[sex][region]
	risk := (1 - math.Pow(s0, math.Exp(x))) * 100
	return math.Max(0, math.Min(100, risk))
}

func calculateSCORE2(p registry.Params) (*registry.Result, error) {
	b := registry.Bind(p)
	in := bindSCORE2Inputs(b)
	if err := b.Err(); err != nil {
		return nil, err
	}

	risk := riskFromPredictor(in.sex, in.region, in.linearPredictor())
	stage, advice := score2Stage(in.age, risk)

	return &registry.Result{
		Result:           round1(risk),
		Unit:             "%",
		Interpretation:   advice,
		Stage:            stage,
		StageDescription: fmt.Sprintf("%.1f%% 10-year risk", risk),
	}, nil
}

// score2Stage applies the age-specific ESC risk thresholds: under 50 the
// cutoffs are 2.5% and 7.5%, from 50 upward 5% and 10%.
func score2Stage(age int, risk float64) (stage, interpretation string) {
	lowCut, highCut := 5.0, 10.0
	if age < 50 {
		lowCut, highCut = 2.5, 7.5
	}
	switch {
	case risk < lowCut:
		return "Low to Moderate Risk",
			"Low to moderate cardiovascular risk. Focus on lifestyle counseling including smoking cessation, healthy diet, and regular physical activity."
	case risk < highCut:
		return "High Risk",
			"High cardiovascular risk. Consider risk factor treatment, particularly LDL-C reduction with statin therapy, alongside lifestyle modification."
	default:
		return "Very High Risk",
			"Very high cardiovascular risk. Risk factor treatment is generally recommended, including intensive lipid lowering and blood pressure management."
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
