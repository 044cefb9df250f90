package gastroenterology

import (
	"errors"
	"testing"

	"github.com/clinscore/clinscore/internal/registry"
)

func TestChildPughGradeA(t *testing.T) {
	res, err := registry.Calculate("child_pugh_score", registry.Params{
		"total_bilirubin": 1.0,
		"serum_albumin":   4.0,
		"inr":             1.1,
		"ascites":         "absent",
		"encephalopathy":  "none",
	})
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	out := res.Result.(map[string]interface{})
	if out["total_score"] != 5 {
		t.Errorf("total_score = %v, want 5", out["total_score"])
	}
	if out["grade"] != "A" {
		t.Errorf("grade = %v, want A", out["grade"])
	}
	if res.Stage != "Child-Pugh A" {
		t.Errorf("stage = %q", res.Stage)
	}
}

func TestChildPughGradeBoundaries(t *testing.T) {
	cases := []struct {
		bilirubin, albumin, inr   float64
		ascites, encephalopathy   string
		wantScore                 int
		wantGrade                 string
	}{
		// 2.0 mg/dL bilirubin is 2 points, 3.5 g/dL albumin is 2 points.
		{2.0, 3.5, 1.7, "absent", "none", 8, "B"},
		{3.5, 2.5, 2.5, "slight", "grade_1_2", 13, "C"},
		{5.0, 2.0, 3.0, "moderate", "grade_3_4", 15, "C"},
	}
	for _, tc := range cases {
		res, err := registry.Calculate("child_pugh_score", registry.Params{
			"total_bilirubin": tc.bilirubin,
			"serum_albumin":   tc.albumin,
			"inr":             tc.inr,
			"ascites":         tc.ascites,
			"encephalopathy":  tc.encephalopathy,
		})
		if err != nil {
			t.Fatalf("calculate: %v", err)
		}
		out := res.Result.(map[string]interface{})
		if out["total_score"] != tc.wantScore || out["grade"] != tc.wantGrade {
			t.Errorf("bilirubin=%.1f: got %v/%v, want %d/%s",
				tc.bilirubin, out["total_score"], out["grade"], tc.wantScore, tc.wantGrade)
		}
	}
}

func TestChildPughValidation(t *testing.T) {
	_, err := registry.Calculate("child_pugh_score", registry.Params{
		"total_bilirubin": 1.0,
		"serum_albumin":   4.0,
		"inr":             1.1,
		"ascites":         "massive",
		"encephalopathy":  "none",
	})
	var verr *registry.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
	if verr.Param != "ascites" {
		t.Errorf("param = %q, want ascites", verr.Param)
	}
}

func TestMELDFloorsAndClamp(t *testing.T) {
	// All labs at or below the floors reduce every log term to zero,
	// so MELD comes out at the 6.43 intercept, rounded then floored to 6.
	res, err := registry.Calculate("meld_combined", registry.Params{
		"creatinine": 0.8,
		"bilirubin":  0.7,
		"inr":        0.9,
		"sodium":     140.0,
		"albumin":    4.2,
		"sex":        "male",
	})
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	out := res.Result.(map[string]interface{})
	if out["meld"] != 6 {
		t.Errorf("meld = %v, want 6", out["meld"])
	}
	// MELD at the floor never gets the sodium adjustment.
	if out["meld_na"] != 6 {
		t.Errorf("meld_na = %v, want 6", out["meld_na"])
	}
	if res.Stage != "Low Risk" {
		t.Errorf("stage = %q", res.Stage)
	}
}

func TestMELDDialysisFixesCreatinine(t *testing.T) {
	base := registry.Params{
		"creatinine": 1.2,
		"bilirubin":  3.0,
		"inr":        1.8,
		"sodium":     132.0,
		"albumin":    2.9,
		"sex":        "male",
	}
	resNo, err := registry.Calculate("meld_combined", base)
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	withDialysis := registry.Params{}
	for k, v := range base {
		withDialysis[k] = v
	}
	withDialysis["on_dialysis"] = true
	resYes, err := registry.Calculate("meld_combined", withDialysis)
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	m0 := resNo.Result.(map[string]interface{})["meld"].(int)
	m1 := resYes.Result.(map[string]interface{})["meld"].(int)
	if m1 <= m0 {
		t.Errorf("dialysis meld %d should exceed non-dialysis %d", m1, m0)
	}
	if resYes.Details["dialysis_adjusted"] != true {
		t.Errorf("dialysis_adjusted not reported")
	}
}

func TestMELD3FemaleCoefficient(t *testing.T) {
	params := func(sex string) registry.Params {
		return registry.Params{
			"creatinine": 2.0,
			"bilirubin":  4.0,
			"inr":        2.0,
			"sodium":     130.0,
			"albumin":    2.8,
			"sex":        sex,
		}
	}
	resM, err := registry.Calculate("meld_combined", params("male"))
	if err != nil {
		t.Fatalf("male: %v", err)
	}
	resF, err := registry.Calculate("meld_combined", params("female"))
	if err != nil {
		t.Fatalf("female: %v", err)
	}
	m := resM.Result.(map[string]interface{})["meld_3"].(int)
	f := resF.Result.(map[string]interface{})["meld_3"].(int)
	if f <= m {
		t.Errorf("female meld_3 %d should exceed male %d", f, m)
	}
}

func TestBlatchfordZeroIsLowRisk(t *testing.T) {
	res, err := registry.Calculate("glasgow_blatchford_bleeding_score", registry.Params{
		"bun":           14.0,
		"hemoglobin":    14.5,
		"gender":        "male",
		"systolic_bp":   120,
		"heart_rate":    80,
		"melena":        "no",
		"syncope":       "no",
		"liver_disease": "no",
		"heart_failure": "no",
	})
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if res.Result != 0 {
		t.Errorf("score = %v, want 0", res.Result)
	}
	if res.Stage != "Low Risk" {
		t.Errorf("stage = %q", res.Stage)
	}
}

func TestBlatchfordComponentScoring(t *testing.T) {
	// BUN 25 -> 3, female Hgb 11 -> 1, SBP 95 -> 2, HR 105 -> 1,
	// melena 1 + syncope 2 = total 10.
	res, err := registry.Calculate("glasgow_blatchford_bleeding_score", registry.Params{
		"bun":           25.0,
		"hemoglobin":    11.0,
		"gender":        "female",
		"systolic_bp":   95,
		"heart_rate":    105,
		"melena":        "yes",
		"syncope":       "yes",
		"liver_disease": "no",
		"heart_failure": "no",
	})
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if res.Result != 10 {
		t.Errorf("score = %v, want 10", res.Result)
	}
	if res.Stage != "Moderate Risk" {
		t.Errorf("stage = %q", res.Stage)
	}
	if res.Details["bun_score"] != 3 || res.Details["hemoglobin_score"] != 1 {
		t.Errorf("component scores wrong: %v", res.Details)
	}
}

func TestBlatchfordGenderSpecificHemoglobin(t *testing.T) {
	// Hgb 12.5 scores 1 for males but 0 for females.
	base := registry.Params{
		"bun":           14.0,
		"hemoglobin":    12.5,
		"systolic_bp":   120,
		"heart_rate":    80,
		"melena":        "no",
		"syncope":       "no",
		"liver_disease": "no",
		"heart_failure": "no",
	}
	for gender, want := range map[string]int{"male": 1, "female": 0} {
		p := registry.Params{}
		for k, v := range base {
			p[k] = v
		}
		p["gender"] = gender
		res, err := registry.Calculate("glasgow_blatchford_bleeding_score", p)
		if err != nil {
			t.Fatalf("%s: %v", gender, err)
		}
		if res.Result != want {
			t.Errorf("%s: score = %v, want %d", gender, res.Result, want)
		}
	}
}

func TestBlatchfordHighRisk(t *testing.T) {
	res, err := registry.Calculate("glasgow_blatchford_bleeding_score", registry.Params{
		"bun":           80.0,
		"hemoglobin":    8.0,
		"gender":        "male",
		"systolic_bp":   85,
		"heart_rate":    120,
		"melena":        "yes",
		"syncope":       "yes",
		"liver_disease": "yes",
		"heart_failure": "yes",
	})
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if res.Result != 23 {
		t.Errorf("score = %v, want 23", res.Result)
	}
	if res.Stage != "High Risk" {
		t.Errorf("stage = %q", res.Stage)
	}
}
