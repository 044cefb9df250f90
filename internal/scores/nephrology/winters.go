package nephrology

import (
	"fmt"
	"math"

	"github.com/clinscore/clinscore/internal/registry"
)

// Winters' formula tolerance band, mmHg.
const wintersTolerance = 2.0

func init() {
	registry.MustRegister(registry.Definition{
		ID:          "winters_formula_metabolic_acidosis",
		Title:       "Winters' Formula for Metabolic Acidosis Compensation",
		Category:    "nephrology",
		Description: "Calculates the expected arterial pCO2 compensation in pure metabolic acidosis and grades compensation adequacy.",
		Params: []registry.ParamSpec{
			{Name: "bicarbonate", Type: "number", Required: true, Unit: "mEq/L"},
			{Name: "measured_pco2", Type: "number", Required: false, Unit: "mmHg"},
		},
	}, calculateWinters)
}

func calculateWinters(p registry.Params) (*registry.Result, error) {
	b := registry.Bind(p)
	bicarbonate := b.Float("bicarbonate", 5, 35)
	measured := b.FloatOpt("measured_pco2", 10, 80)
	if err := b.Err(); err != nil {
		return nil, err
	}

	expected := 1.5*bicarbonate + 8
	lower := expected - wintersTolerance
	upper := expected + wintersTolerance

	details := map[string]interface{}{
		"expected_range_lower": round1(lower),
		"expected_range_upper": round1(upper),
	}

	res := &registry.Result{
		Result:  round1(expected),
		Unit:    "mmHg",
		Details: details,
	}

	if measured == nil {
		res.Stage = "Expected Compensation"
		res.StageDescription = "Calculated expected respiratory compensation"
		res.Interpretation = fmt.Sprintf(
			"For a serum bicarbonate of %g mEq/L, the expected arterial pCO2 should be %.1f mmHg (range: %.1f-%.1f mmHg) if respiratory compensation is appropriate. Obtain an arterial blood gas to measure the actual pCO2. Ensure this represents pure metabolic acidosis before applying Winters' Formula.",
			bicarbonate, expected, lower, upper)
		details["compensation_status"] = "not_assessed"
		return res, nil
	}

	diff := *measured - expected
	details["measured_pco2"] = *measured
	details["difference"] = round1(diff)
	details["within_expected_range"] = math.Abs(diff) <= wintersTolerance

	switch {
	case diff < -wintersTolerance:
		res.Stage = "Overcompensation"
		res.StageDescription = "Respiratory overcompensation"
		res.Interpretation = fmt.Sprintf(
			"The measured pCO2 (%g mmHg) is %.1f mmHg lower than expected (%.1f mmHg), suggesting respiratory overcompensation. This may indicate a concurrent primary respiratory alkalosis or a mixed acid-base disorder. Review the arterial pH to confirm acid-base status.",
			*measured, math.Abs(diff), expected)
		details["compensation_status"] = "overcompensation"
	case diff > wintersTolerance:
		res.Stage = "Undercompensation"
		res.StageDescription = "Inadequate respiratory compensation"
		res.Interpretation = fmt.Sprintf(
			"The measured pCO2 (%g mmHg) is %.1f mmHg higher than expected (%.1f mmHg), suggesting inadequate respiratory compensation. This may indicate respiratory impairment, fatigue, or a concurrent primary respiratory acidosis. Evaluate respiratory function and assess for a mixed disorder.",
			*measured, diff, expected)
		details["compensation_status"] = "undercompensation"
	default:
		res.Stage = "Appropriate Compensation"
		res.StageDescription = "Expected respiratory compensation"
		res.Interpretation = fmt.Sprintf(
			"The measured pCO2 (%g mmHg) is within the expected range (%.1f-%.1f mmHg) for metabolic acidosis, indicating appropriate respiratory compensation. Focus on identifying and treating the underlying cause.",
			*measured, lower, upper)
		details["compensation_status"] = "appropriate"
	}
	return res, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
