package emergency

import (
	"fmt"
	"math"

	"github.com/clinscore/clinscore/internal/registry"
)

type bodyRegion struct {
	param string
	adult float64
	child float64
}

// Rule of nines surface fractions. Children and infants share the same
// table: proportionally larger head, smaller legs.
var bodyRegions = []bodyRegion{
	{"head_neck_percentage", 9, 18},
	{"anterior_torso_percentage", 18, 18},
	{"posterior_torso_percentage", 18, 18},
	{"right_arm_percentage", 9, 9},
	{"left_arm_percentage", 9, 9},
	{"right_leg_percentage", 18, 13.5},
	{"left_leg_percentage", 18, 13.5},
	{"genitalia_percentage", 1, 1},
}

func init() {
	params := []registry.ParamSpec{
		{Name: "patient_age_group", Type: "string", Required: true, Allowed: []string{"adult", "child", "infant"}},
	}
	for _, r := range bodyRegions {
		params = append(params, registry.ParamSpec{
			Name: r.param, Type: "number", Required: true, Unit: "%",
			Description: "portion of the region burned, 0-100",
		})
	}
	registry.MustRegister(registry.Definition{
		ID:          "rule_of_nines",
		Title:       "Rule of Nines for Burn Surface Area",
		Category:    "emergency",
		Description: "Estimates total body surface area (TBSA) burned for fluid resuscitation planning.",
		Params:      params,
	}, calculateRuleOfNines)
}

func calculateRuleOfNines(p registry.Params) (*registry.Result, error) {
	b := registry.Bind(p)
	ageGroup := b.Enum("patient_age_group", "adult", "child", "infant")
	burned := make(map[string]float64, len(bodyRegions))
	for _, r := range bodyRegions {
		burned[r.param] = b.Float(r.param, 0, 100)
	}
	if err := b.Err(); err != nil {
		return nil, err
	}

	tbsa := 0.0
	for _, r := range bodyRegions {
		regionShare := r.adult
		if ageGroup != "adult" {
			regionShare = r.child
		}
		tbsa += burned[r.param] / 100 * regionShare
	}
	tbsa = math.Round(tbsa*10) / 10

	var stage, desc string
	switch {
	case tbsa < 10:
		stage, desc = "Minor Burn", "Minor burn injury"
	case tbsa < 20:
		stage, desc = "Moderate Burn", "Moderate burn injury"
	case tbsa < 30:
		stage, desc = "Major Burn", "Major burn injury"
	default:
		stage, desc = "Severe Burn", "Severe burn injury"
	}

	fluidThreshold := 10.0
	if ageGroup != "adult" {
		fluidThreshold = 5.0
	}
	advice := fmt.Sprintf("Total body surface area burned: %.1f%%. %s.", tbsa, desc)
	if tbsa >= fluidThreshold {
		advice += " Formal fluid resuscitation is indicated (Parkland formula); transfer to a burn center should be considered."
	} else {
		advice += " Below the threshold for formal fluid resuscitation; manage with local wound care and reassessment."
	}

	return &registry.Result{
		Result:           tbsa,
		Unit:             "%",
		Interpretation:   advice,
		Stage:            stage,
		StageDescription: desc,
	}, nil
}
