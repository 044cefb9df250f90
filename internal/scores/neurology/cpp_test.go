package neurology

import (
	"errors"
	"testing"

	"github.com/clinscore/clinscore/internal/registry"
)

func TestCPPCalculation(t *testing.T) {
	cases := []struct {
		mapV, icp float64
		want      float64
		stage     string
	}{
		{90, 20, 70, "Optimal"},
		{90, 10, 80, "Adequate"},
		{70, 45, 25, "Critical"},
		{80, 35, 45, "Severely Low"},
		{75, 20, 55, "Low"},
		{130, 10, 120, "High"},
	}
	for _, tc := range cases {
		res, err := calculateCPP(registry.Params{
			"mean_arterial_pressure": tc.mapV,
			"intracranial_pressure":  tc.icp,
		})
		if err != nil {
			t.Fatalf("MAP %v ICP %v: %v", tc.mapV, tc.icp, err)
		}
		if res.Result.(float64) != tc.want {
			t.Errorf("MAP %v ICP %v: cpp = %v, want %v", tc.mapV, tc.icp, res.Result, tc.want)
		}
		if res.Stage != tc.stage {
			t.Errorf("MAP %v ICP %v: stage = %q, want %q", tc.mapV, tc.icp, res.Stage, tc.stage)
		}
	}
}

func TestCPPRejectsICPAboveMAP(t *testing.T) {
	_, err := calculateCPP(registry.Params{
		"mean_arterial_pressure": 60.0,
		"intracranial_pressure":  60.0,
	})
	var verr *registry.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Param != "intracranial_pressure" {
		t.Errorf("Param = %q, want intracranial_pressure", verr.Param)
	}
}

func TestCPPRangeValidation(t *testing.T) {
	for _, p := range []registry.Params{
		{"mean_arterial_pressure": 250.0, "intracranial_pressure": 10.0},
		{"mean_arterial_pressure": 90.0, "intracranial_pressure": -5.0},
		{"mean_arterial_pressure": 90.0},
	} {
		_, err := calculateCPP(p)
		var verr *registry.ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("params %v: expected ValidationError, got %v", p, err)
		}
	}
}
