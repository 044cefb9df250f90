// Package nephrology registers renal and acid-base calculators.
package nephrology

import (
	"fmt"
	"strings"

	"github.com/clinscore/clinscore/internal/registry"
)

func init() {
	registry.MustRegister(registry.Definition{
		ID:          "akin",
		Title:       "AKIN Classification for Acute Kidney Injury",
		Category:    "nephrology",
		Description: "Stages acute kidney injury from serum creatinine and urine output changes within 48 hours.",
		Params: []registry.ParamSpec{
			{Name: "current_creatinine", Type: "number", Required: true, Unit: "mg/dL"},
			{Name: "baseline_creatinine", Type: "number", Required: false, Unit: "mg/dL"},
			{Name: "creatinine_increase", Type: "number", Required: false, Unit: "mg/dL", Description: "Absolute increase within 48 hours"},
			{Name: "urine_output_6h", Type: "number", Required: false, Unit: "mL/kg"},
			{Name: "urine_output_12h", Type: "number", Required: false, Unit: "mL/kg"},
			{Name: "urine_output_24h", Type: "number", Required: false, Unit: "mL/kg"},
			{Name: "anuria_12h", Type: "boolean", Required: false},
			{Name: "on_rrt", Type: "boolean", Required: false, Description: "On renal replacement therapy"},
		},
	}, calculateAKIN)
}

var akinStageNames = [4]string{"No AKI", "Stage 1", "Stage 2", "Stage 3"}
var akinStageDescriptions = [4]string{
	"No acute kidney injury",
	"Mild AKI",
	"Moderate AKI",
	"Severe AKI",
}

func calculateAKIN(p registry.Params) (*registry.Result, error) {
	b := registry.Bind(p)
	current := b.Float("current_creatinine", 0.1, 15.0)
	baseline := b.FloatOpt("baseline_creatinine", 0.1, 15.0)
	increase := b.FloatOpt("creatinine_increase", 0.0, 10.0)
	uo6 := b.FloatOpt("urine_output_6h", 0.0, 50.0)
	uo12 := b.FloatOpt("urine_output_12h", 0.0, 100.0)
	uo24 := b.FloatOpt("urine_output_24h", 0.0, 200.0)
	anuria := b.BoolOpt("anuria_12h")
	onRRT := b.BoolOpt("on_rrt")
	if err := b.Err(); err != nil {
		return nil, err
	}

	if onRRT {
		return akinResult(3, []string{"On renal replacement therapy"}, current, baseline, true), nil
	}

	stage := 0
	var criteria []string

	if baseline != nil && *baseline > 0 {
		fold := current / *baseline
		switch {
		case fold >= 3.0:
			stage = maxStage(stage, 3)
			criteria = append(criteria, fmt.Sprintf("Creatinine >=3x baseline (%.1fx)", fold))
		case fold >= 2.0:
			stage = maxStage(stage, 2)
			criteria = append(criteria, fmt.Sprintf("Creatinine 2-3x baseline (%.1fx)", fold))
		case fold >= 1.5:
			stage = maxStage(stage, 1)
			criteria = append(criteria, fmt.Sprintf("Creatinine 1.5-2x baseline (%.1fx)", fold))
		}
	}
	if increase != nil && *increase >= 0.3 {
		stage = maxStage(stage, 1)
		criteria = append(criteria, fmt.Sprintf("Absolute creatinine increase >=0.3 mg/dL (%.1f mg/dL)", *increase))
	}
	if current >= 4.0 && increase != nil && *increase >= 0.5 {
		stage = maxStage(stage, 3)
		criteria = append(criteria, "Creatinine >=4.0 mg/dL with acute increase >=0.5 mg/dL")
	}

	if anuria {
		stage = maxStage(stage, 3)
		criteria = append(criteria, "Anuria for 12 hours")
	} else {
		if uo24 != nil {
			if rate := *uo24 / 24; rate < 0.3 {
				stage = maxStage(stage, 3)
				criteria = append(criteria, fmt.Sprintf("Urine output <0.3 mL/kg/hr for >=24 hours (%.2f mL/kg/hr)", rate))
			}
		}
		if uo12 != nil {
			if rate := *uo12 / 12; rate < 0.5 {
				stage = maxStage(stage, 2)
				criteria = append(criteria, fmt.Sprintf("Urine output <0.5 mL/kg/hr for >12 hours (%.2f mL/kg/hr)", rate))
			}
		}
		if uo6 != nil {
			if rate := *uo6 / 6; rate < 0.5 {
				stage = maxStage(stage, 1)
				criteria = append(criteria, fmt.Sprintf("Urine output <0.5 mL/kg/hr for >6 hours (%.2f mL/kg/hr)", rate))
			}
		}
	}

	if len(criteria) == 0 {
		criteria = []string{"No AKI criteria met"}
	}
	return akinResult(stage, criteria, current, baseline, false), nil
}

func akinResult(stage int, criteria []string, current float64, baseline *float64, onRRT bool) *registry.Result {
	var parts []string
	if stage == 0 {
		parts = append(parts, "No acute kidney injury by AKIN criteria.")
	} else {
		parts = append(parts, fmt.Sprintf("AKIN %s: %s.", akinStageNames[stage], akinStageDescriptions[stage]))
	}
	parts = append(parts, fmt.Sprintf("Current creatinine: %.1f mg/dL.", current))
	if baseline != nil {
		parts = append(parts, fmt.Sprintf("Baseline creatinine: %.1f mg/dL.", *baseline))
	}
	if stage > 0 {
		parts = append(parts, "Criteria met: "+strings.Join(criteria, "; ")+".")
	} else {
		parts = append(parts, "No AKIN criteria met.")
	}
	parts = append(parts, akinManagement(stage, onRRT))
	parts = append(parts, "AKIN classification requires changes within 48 hours, adequate hydration, and exclusion of urinary obstruction.")

	return &registry.Result{
		Result:           akinStageNames[stage],
		Unit:             "stage",
		Interpretation:   strings.Join(parts, " "),
		Stage:            akinStageNames[stage],
		StageDescription: akinStageDescriptions[stage],
		Details: map[string]interface{}{
			"akin_stage":   stage,
			"criteria_met": criteria,
		},
	}
}

func akinManagement(stage int, onRRT bool) string {
	switch stage {
	case 1:
		return "Close monitoring required. Consider nephrology consultation, review medications and monitor creatinine daily."
	case 2:
		return "Intensive monitoring required. Nephrology consultation recommended with daily creatinine monitoring."
	case 3:
		if onRRT {
			return "Patient on renal replacement therapy. Continue RRT as indicated under nephrology management."
		}
		return "Urgent nephrology consultation required. Consider renal replacement therapy and address underlying causes aggressively."
	default:
		return "Continue routine monitoring. Ensure adequate hydration and avoid nephrotoxic medications."
	}
}

func maxStage(a, b int) int {
	if a > b {
		return a
	}
	return b
}
