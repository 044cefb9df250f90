package emergency

import (
	"errors"
	"testing"

	"github.com/clinscore/clinscore/internal/registry"
)

func news2Params() registry.Params {
	return registry.Params{
		"respiratory_rate":                "12_to_20",
		"hypercapnic_respiratory_failure": "no",
		"oxygen_saturation":               "96_or_more",
		"supplemental_oxygen":             "no",
		"temperature":                     "36_1_to_38",
		"systolic_bp":                     "111_to_219",
		"heart_rate":                      "51_to_90",
		"consciousness":                   "alert",
	}
}

func TestNEWS2AllNormal(t *testing.T) {
	res, err := calculateNEWS2(news2Params())
	if err != nil {
		t.Fatalf("calculateNEWS2: %v", err)
	}
	if res.Result.(int) != 0 {
		t.Errorf("score = %v, want 0", res.Result)
	}
	if res.Stage != "Low Risk" {
		t.Errorf("stage = %q, want Low Risk", res.Stage)
	}
}

func TestNEWS2RedScoreEscalates(t *testing.T) {
	// A single parameter at 3 triggers the RED response even though the
	// aggregate score is below 5.
	p := news2Params()
	p["systolic_bp"] = "90_or_less"
	res, err := calculateNEWS2(p)
	if err != nil {
		t.Fatalf("calculateNEWS2: %v", err)
	}
	if res.Result.(int) != 3 {
		t.Errorf("score = %v, want 3", res.Result)
	}
	if res.Stage != "Low-Medium Risk" {
		t.Errorf("stage = %q, want Low-Medium Risk", res.Stage)
	}
}

func TestNEWS2HypercapnicTargetRange(t *testing.T) {
	// 88-92% is the target saturation for hypercapnic respiratory failure
	// and scores 0, where the standard scale would give 2-3.
	p := news2Params()
	p["hypercapnic_respiratory_failure"] = "yes"
	p["oxygen_saturation"] = "88_to_92"
	res, err := calculateNEWS2(p)
	if err != nil {
		t.Fatalf("calculateNEWS2: %v", err)
	}
	if res.Result.(int) != 0 {
		t.Errorf("score = %v, want 0", res.Result)
	}

	// On the standard scale the same band maps to 92-93% territory.
	p = news2Params()
	p["oxygen_saturation"] = "88_to_92"
	res, err = calculateNEWS2(p)
	if err != nil {
		t.Fatalf("calculateNEWS2: %v", err)
	}
	if res.Result.(int) != 2 {
		t.Errorf("score = %v, want 2", res.Result)
	}
}

func TestNEWS2HighRisk(t *testing.T) {
	p := news2Params()
	p["respiratory_rate"] = "25_or_more"
	p["oxygen_saturation"] = "91_or_less"
	p["supplemental_oxygen"] = "yes"
	p["consciousness"] = "altered"
	res, err := calculateNEWS2(p)
	if err != nil {
		t.Fatalf("calculateNEWS2: %v", err)
	}
	if res.Result.(int) != 11 {
		t.Errorf("score = %v, want 11", res.Result)
	}
	if res.Stage != "High Risk" {
		t.Errorf("stage = %q, want High Risk", res.Stage)
	}
}

func TestNEWS2RejectsUnknownBand(t *testing.T) {
	p := news2Params()
	p["respiratory_rate"] = "fast"
	_, err := calculateNEWS2(p)
	var verr *registry.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestREMSComponents(t *testing.T) {
	res, err := calculateREMS(registry.Params{
		"age":                    80.0,
		"body_temperature":       37.0,
		"mean_arterial_pressure": 90.0,
		"heart_rate":             80.0,
		"respiratory_rate":       16.0,
		"oxygen_saturation":      98.0,
		"glasgow_coma_scale":     15.0,
	})
	if err != nil {
		t.Fatalf("calculateREMS: %v", err)
	}
	// Only the age component scores: >74 years = 6 points.
	if res.Result.(int) != 6 {
		t.Errorf("score = %v, want 6", res.Result)
	}
	if res.Stage != "Moderate Risk" {
		t.Errorf("stage = %q, want Moderate Risk", res.Stage)
	}
	if res.Details["age_score"].(int) != 6 {
		t.Errorf("age_score = %v, want 6", res.Details["age_score"])
	}
}

func TestREMSVeryLowRisk(t *testing.T) {
	res, err := calculateREMS(registry.Params{
		"age":                    30.0,
		"body_temperature":       37.0,
		"mean_arterial_pressure": 90.0,
		"heart_rate":             80.0,
		"respiratory_rate":       16.0,
		"oxygen_saturation":      98.0,
		"glasgow_coma_scale":     15.0,
	})
	if err != nil {
		t.Fatalf("calculateREMS: %v", err)
	}
	if res.Result.(int) != 0 {
		t.Errorf("score = %v, want 0", res.Result)
	}
	if res.Stage != "Very Low Risk" {
		t.Errorf("stage = %q, want Very Low Risk", res.Stage)
	}
}

func TestRuleOfNinesAdultFullLeg(t *testing.T) {
	p := registry.Params{"patient_age_group": "adult"}
	for _, r := range bodyRegions {
		p[r.param] = 0.0
	}
	p["right_leg_percentage"] = 100.0
	res, err := calculateRuleOfNines(p)
	if err != nil {
		t.Fatalf("calculateRuleOfNines: %v", err)
	}
	if res.Result.(float64) != 18.0 {
		t.Errorf("tbsa = %v, want 18.0", res.Result)
	}
	if res.Stage != "Moderate Burn" {
		t.Errorf("stage = %q, want Moderate Burn", res.Stage)
	}
}

func TestRuleOfNinesChildHead(t *testing.T) {
	// Pediatric table allocates 18% to the head versus 9% for adults.
	p := registry.Params{"patient_age_group": "child"}
	for _, r := range bodyRegions {
		p[r.param] = 0.0
	}
	p["head_neck_percentage"] = 100.0
	res, err := calculateRuleOfNines(p)
	if err != nil {
		t.Fatalf("calculateRuleOfNines: %v", err)
	}
	if res.Result.(float64) != 18.0 {
		t.Errorf("child head tbsa = %v, want 18.0", res.Result)
	}

	p["patient_age_group"] = "adult"
	res, err = calculateRuleOfNines(p)
	if err != nil {
		t.Fatalf("calculateRuleOfNines: %v", err)
	}
	if res.Result.(float64) != 9.0 {
		t.Errorf("adult head tbsa = %v, want 9.0", res.Result)
	}
}

func TestCPSSSCutpoint(t *testing.T) {
	low := registry.Params{
		"conjugate_gaze_deviation":         "no",
		"level_of_consciousness_questions": "one_correct",
		"following_commands":               "both_commands",
		"arm_holding_ability":              "can_hold",
	}
	res, err := calculateCPSSS(low)
	if err != nil {
		t.Fatalf("calculateCPSSS: %v", err)
	}
	if res.Result.(int) != 1 || res.Stage != "Low Risk" {
		t.Errorf("got score %v stage %q, want 1 / Low Risk", res.Result, res.Stage)
	}

	high := registry.Params{
		"conjugate_gaze_deviation":         "yes",
		"level_of_consciousness_questions": "both_correct",
		"following_commands":               "both_commands",
		"arm_holding_ability":              "can_hold",
	}
	res, err = calculateCPSSS(high)
	if err != nil {
		t.Fatalf("calculateCPSSS: %v", err)
	}
	if res.Result.(int) != 2 || res.Stage != "High Risk" {
		t.Errorf("got score %v stage %q, want 2 / High Risk", res.Result, res.Stage)
	}
}

func TestCPSSSMaximum(t *testing.T) {
	res, err := calculateCPSSS(registry.Params{
		"conjugate_gaze_deviation":         "yes",
		"level_of_consciousness_questions": "neither_correct",
		"following_commands":               "neither_command",
		"arm_holding_ability":              "cannot_hold",
	})
	if err != nil {
		t.Fatalf("calculateCPSSS: %v", err)
	}
	if res.Result.(int) != 7 {
		t.Errorf("score = %v, want 7", res.Result)
	}
}
