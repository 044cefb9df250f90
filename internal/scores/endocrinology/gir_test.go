package endocrinology

import (
	"errors"
	"testing"

	"github.com/clinscore/clinscore/internal/registry"
)

func TestGIRNeonatalMaintenance(t *testing.T) {
	// 12 mL/hr of D10W in a 3.3 kg neonate: 12*10*10/(3.3*60) = 6.06.
	res, err := registry.Calculate("glucose_infusion_rate", registry.Params{
		"infusion_rate":          12.0,
		"dextrose_concentration": 10.0,
		"weight":                 3.3,
	})
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if res.Result != 6.06 {
		t.Errorf("gir = %v, want 6.06", res.Result)
	}
	if res.Stage != "Normal/Physiologic Range" {
		t.Errorf("stage = %q", res.Stage)
	}
	if res.Unit != "mg/kg/min" {
		t.Errorf("unit = %q", res.Unit)
	}
}

func TestGIRRangeBoundaries(t *testing.T) {
	// Weight 1 kg, D10W: gir = rate*10*10/60 = rate/0.6.
	cases := []struct {
		rate      float64
		wantStage string
	}{
		{2.0, "Below Normal Range"},      // 3.33
		{4.8, "Normal/Physiologic Range"}, // 8.0
		{6.0, "Moderate/Therapeutic Range"}, // 10.0
		{9.0, "High Therapeutic Range"},   // 15.0
		{12.0, "Excessive Range"},         // 20.0
	}
	for _, tc := range cases {
		res, err := registry.Calculate("glucose_infusion_rate", registry.Params{
			"infusion_rate":          tc.rate,
			"dextrose_concentration": 10.0,
			"weight":                 1.0,
		})
		if err != nil {
			t.Fatalf("rate %.1f: %v", tc.rate, err)
		}
		if res.Stage != tc.wantStage {
			t.Errorf("rate %.1f: stage = %q, want %q", tc.rate, res.Stage, tc.wantStage)
		}
	}
}

func TestGIRValidation(t *testing.T) {
	for param, params := range map[string]registry.Params{
		"infusion_rate":          {"infusion_rate": 0.0, "dextrose_concentration": 10.0, "weight": 3.0},
		"dextrose_concentration": {"infusion_rate": 10.0, "dextrose_concentration": 60.0, "weight": 3.0},
		"weight":                 {"infusion_rate": 10.0, "dextrose_concentration": 10.0, "weight": 0.2},
	} {
		_, err := registry.Calculate("glucose_infusion_rate", params)
		var verr *registry.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("%s: want ValidationError, got %v", param, err)
		}
		if verr.Param != param {
			t.Errorf("param = %q, want %q", verr.Param, param)
		}
	}
}
