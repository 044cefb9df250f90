package emergency

import (
	"fmt"

	"github.com/clinscore/clinscore/internal/registry"
)

func init() {
	registry.MustRegister(registry.Definition{
		ID:          "cincinnati_prehospital_stroke_severity_scale",
		Title:       "Cincinnati Prehospital Stroke Severity Scale (CP-SSS)",
		Category:    "emergency",
		Description: "Identifies severe stroke and large vessel occlusion (LVO) in the field.",
		Params: []registry.ParamSpec{
			{Name: "conjugate_gaze_deviation", Type: "string", Required: true, Allowed: []string{"yes", "no"}},
			{Name: "level_of_consciousness_questions", Type: "string", Required: true, Allowed: []string{"both_correct", "one_correct", "neither_correct"}},
			{Name: "following_commands", Type: "string", Required: true, Allowed: []string{"both_commands", "one_command", "neither_command"}},
			{Name: "arm_holding_ability", Type: "string", Required: true, Allowed: []string{"can_hold", "cannot_hold"}},
		},
	}, calculateCPSSS)
}

func calculateCPSSS(p registry.Params) (*registry.Result, error) {
	b := registry.Bind(p)
	gaze := b.Enum("conjugate_gaze_deviation", "yes", "no")
	locQuestions := b.Enum("level_of_consciousness_questions", "both_correct", "one_correct", "neither_correct")
	commands := b.Enum("following_commands", "both_commands", "one_command", "neither_command")
	arm := b.Enum("arm_holding_ability", "can_hold", "cannot_hold")
	if err := b.Err(); err != nil {
		return nil, err
	}

	score := 0
	if gaze == "yes" {
		score += 2
	}
	switch locQuestions {
	case "one_correct":
		score++
	case "neither_correct":
		score += 2
	}
	switch commands {
	case "one_command":
		score++
	case "neither_command":
		score += 2
	}
	if arm == "cannot_hold" {
		score++
	}

	// Validated cutpoint is 2 for both severe stroke (NIHSS >=15) and LVO.
	if score < 2 {
		return &registry.Result{
			Result: score,
			Unit:   "points",
			Interpretation: fmt.Sprintf("CP-SSS Score %d: Low probability of large vessel occlusion and severe stroke (NIHSS <15). "+
				"Standard stroke protocol with transport to the nearest stroke-capable facility.", score),
			Stage:            "Low Risk",
			StageDescription: "LVO and severe stroke less likely",
		}, nil
	}
	return &registry.Result{
		Result: score,
		Unit:   "points",
		Interpretation: fmt.Sprintf("CP-SSS Score %d: High probability of large vessel occlusion and severe stroke (NIHSS ≥15). "+
			"Strong consideration for direct transport to a comprehensive stroke center capable of endovascular thrombectomy.", score),
		Stage:            "High Risk",
		StageDescription: "LVO and severe stroke likely",
	}, nil
}
