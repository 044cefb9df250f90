package cardiology

import (
	"fmt"

	"github.com/clinscore/clinscore/internal/registry"
)

func init() {
	registry.MustRegister(registry.Definition{
		ID:          "ldl_calculated",
		Title:       "LDL Cholesterol (Friedewald Formula)",
		Category:    "cardiology",
		Description: "Estimates LDL cholesterol from a standard lipid panel.",
		Params: []registry.ParamSpec{
			{Name: "total_cholesterol", Type: "number", Required: true, Unit: "mg/dL"},
			{Name: "hdl_cholesterol", Type: "number", Required: true, Unit: "mg/dL"},
			{Name: "triglycerides", Type: "number", Required: true, Unit: "mg/dL"},
		},
	}, calculateLDL)
}

func calculateLDL(p registry.Params) (*registry.Result, error) {
	b := registry.Bind(p)
	tc := b.Float("total_cholesterol", 50, 1000)
	hdl := b.Float("hdl_cholesterol", 10, 200)
	tg := b.Float("triglycerides", 30, 5000)
	if b.Err() == nil && hdl >= tc {
		b.Failf("hdl_cholesterol", "cannot be greater than or equal to total cholesterol")
	}
	if err := b.Err(); err != nil {
		return nil, err
	}

	ldl := round1(tc - hdl - tg/5)

	var stage, desc string
	switch {
	case ldl < 100:
		stage, desc = "Optimal", "Optimal LDL cholesterol"
	case ldl < 130:
		stage, desc = "Near Optimal", "Near optimal/above optimal LDL cholesterol"
	case ldl < 160:
		stage, desc = "Borderline High", "Borderline high LDL cholesterol"
	case ldl < 190:
		stage, desc = "High", "High LDL cholesterol"
	default:
		stage, desc = "Very High", "Very high LDL cholesterol"
	}

	interpretation := fmt.Sprintf(
		"Calculated LDL cholesterol: %.1f mg/dL using the Friedewald formula (total cholesterol %.0f - HDL %.0f - triglycerides/5). %s.",
		ldl, tc, hdl, desc)
	if tg > 400 {
		interpretation += " Triglycerides >400 mg/dL make the formula inaccurate; direct LDL measurement is recommended."
	}

	return &registry.Result{
		Result:           ldl,
		Unit:             "mg/dL",
		Interpretation:   interpretation,
		Stage:            stage,
		StageDescription: desc,
	}, nil
}
