// Package endocrinology registers metabolic and endocrine calculators.
package endocrinology

import (
	"fmt"
	"math"

	"github.com/clinscore/clinscore/internal/registry"
)

func init() {
	registry.MustRegister(registry.Definition{
		ID:          "glucose_infusion_rate",
		Title:       "Glucose Infusion Rate",
		Category:    "endocrinology",
		Description: "Calculates the glucose infusion rate from IV fluid parameters, primarily for neonatal and pediatric dextrose management.",
		Params: []registry.ParamSpec{
			{Name: "infusion_rate", Type: "number", Required: true, Unit: "mL/hr"},
			{Name: "dextrose_concentration", Type: "number", Required: true, Unit: "%"},
			{Name: "weight", Type: "number", Required: true, Unit: "kg"},
		},
	}, calculateGIR)
}

func calculateGIR(p registry.Params) (*registry.Result, error) {
	b := registry.Bind(p)
	infusionRate := b.Float("infusion_rate", 0.1, 1000)
	dextrose := b.Float("dextrose_concentration", 1, 50)
	weight := b.Float("weight", 0.5, 200)
	if err := b.Err(); err != nil {
		return nil, err
	}

	// GIR (mg/kg/min) = rate (mL/hr) x dextrose (%) x 10 / (weight (kg) x 60)
	gir := infusionRate * dextrose * 10 / (weight * 60)

	summary := fmt.Sprintf(
		"Calculated GIR: %.2f mg/kg/min from %g mL/hr of D%g%% dextrose in a %g kg patient.",
		gir, infusionRate, dextrose, weight)

	var stage, desc, advice string
	switch {
	case gir < 4.0:
		stage, desc = "Below Normal Range", "Insufficient glucose delivery"
		advice = "GIR below 4 mg/kg/min may be insufficient to meet basal metabolic demands, risking hypoglycemia. Increase the dextrose concentration or infusion rate and monitor blood glucose every 2-4 hours."
	case gir <= 8.0:
		stage, desc = "Normal/Physiologic Range", "Appropriate glucose delivery"
		advice = "GIR 4-8 mg/kg/min matches physiologic hepatic glucose production and is appropriate for maintenance therapy. Continue routine glucose monitoring."
	case gir <= 12.0:
		stage, desc = "Moderate/Therapeutic Range", "Enhanced glucose delivery"
		advice = "GIR 8.1-12 mg/kg/min provides enhanced glucose delivery for patients with increased metabolic demands or partial parenteral nutrition. Monitor blood glucose every 4-6 hours."
	case gir <= 18.0:
		stage, desc = "High Therapeutic Range", "High glucose delivery for nutrition"
		advice = "GIR 12.1-18 mg/kg/min represents high glucose delivery typically used in full parenteral nutrition. Frequent glucose monitoring is required and insulin co-administration may be needed. Consider central line access for high-concentration dextrose."
	default:
		stage, desc = "Excessive Range", "Risk of metabolic complications"
		advice = "GIR >18 mg/kg/min is excessive and increases risk of hyperglycemia, lipogenesis, fatty liver deposits, and increased CO2 production. Reduce the glucose load immediately and implement insulin therapy if blood glucose exceeds 180 mg/dL."
	}

	return &registry.Result{
		Result:           math.Round(gir*100) / 100,
		Unit:             "mg/kg/min",
		Interpretation:   summary + " " + advice,
		Stage:            stage,
		StageDescription: desc,
	}, nil
}
