// Package hematology registers blood and bone marrow calculators.
package hematology

import (
	"fmt"
	"math"
	"strings"

	"github.com/clinscore/clinscore/internal/registry"
)

func init() {
	registry.MustRegister(registry.Definition{
		ID:          "reticulocyte_production_index",
		Title:       "Reticulocyte Production Index",
		Category:    "hematology",
		Description: "Assesses bone marrow response to anemia by correcting the reticulocyte count for anemia severity and maturation time.",
		Params: []registry.ParamSpec{
			{Name: "reticulocyte_percentage", Type: "number", Required: true, Unit: "%"},
			{Name: "measured_hematocrit", Type: "number", Required: true, Unit: "%"},
			{Name: "normal_hematocrit", Type: "number", Required: true, Unit: "%", Description: "Reference hematocrit, typically 45"},
			{Name: "rbc_count", Type: "number", Required: false, Unit: "x10^6/uL"},
		},
	}, calculateRPI)
}

func calculateRPI(p registry.Params) (*registry.Result, error) {
	b := registry.Bind(p)
	reticPct := b.Float("reticulocyte_percentage", 0, 50)
	measuredHct := b.Float("measured_hematocrit", 5, 65)
	normalHct := b.Float("normal_hematocrit", 35, 50)
	rbcCount := b.FloatOpt("rbc_count", 1.0, 8.0)
	if err := b.Err(); err != nil {
		return nil, err
	}

	corrected := reticPct * (measuredHct / normalHct)
	factor, level := rpiMaturationFactor(measuredHct)
	rpi := corrected / factor

	var stage, desc, advice string
	switch {
	case rpi < 0.5:
		stage, desc = "Very Low Response", "Very decreased reticulocyte production"
		advice = fmt.Sprintf("RPI of %.2f is <0.5, indicating very decreased reticulocyte production. This suggests bone marrow failure, severe nutritional deficiency, or other causes of impaired erythropoiesis requiring immediate evaluation.", rpi)
	case rpi < 2.0:
		stage, desc = "Inadequate Response", "Inadequate bone marrow response"
		advice = fmt.Sprintf("RPI of %.2f is <2.0, indicating inadequate bone marrow response to anemia. This suggests hypoproliferative anemia due to bone marrow dysfunction, nutritional deficiencies, chronic disease, or renal failure.", rpi)
	case rpi < 3.0:
		stage, desc = "Borderline Response", "Borderline bone marrow response"
		advice = fmt.Sprintf("RPI of %.2f is borderline (2.0-3.0), indicating a marginal bone marrow response. This may suggest early recovery from bone marrow suppression, mild nutritional deficiency, or a transition phase in treatment.", rpi)
	default:
		stage, desc = "Appropriate Response", "Appropriate bone marrow response"
		advice = fmt.Sprintf("RPI of %.2f is >3.0, indicating appropriate bone marrow response to anemia. This suggests hemolytic anemia, acute blood loss, or other causes of increased red cell destruction with compensatory reticulocytosis.", rpi)
	}
	severity := anemiaSeverity(measuredHct)

	details := map[string]interface{}{
		"corrected_reticulocyte_percentage": math.Round(corrected*100) / 100,
		"maturation_factor":                 factor,
		"maturation_level":                  level,
		"hematocrit_severity":               severity,
	}
	if rbcCount != nil {
		details["absolute_reticulocyte_count"] = math.Round((reticPct / 100) * *rbcCount * 1e6)
	}

	return &registry.Result{
		Result:           math.Round(rpi*100) / 100,
		Unit:             "index",
		Interpretation:   fmt.Sprintf("%s Patient has %s (Hct %g%%).", advice, lowerFirst(severity), measuredHct),
		Stage:            stage,
		StageDescription: desc,
		Details:          details,
	}, nil
}

func rpiMaturationFactor(hct float64) (float64, string) {
	switch {
	case hct < 20:
		return 2.5, "severe"
	case hct < 25:
		return 2.0, "moderate"
	case hct < 35:
		return 1.5, "mild"
	default:
		return 1.0, "normal"
	}
}

func anemiaSeverity(hct float64) string {
	switch {
	case hct >= 35:
		return "No anemia or mild anemia"
	case hct >= 25:
		return "Mild to moderate anemia"
	case hct >= 20:
		return "Moderate anemia"
	default:
		return "Severe anemia"
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
