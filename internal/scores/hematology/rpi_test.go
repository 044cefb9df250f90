package hematology

import (
	"errors"
	"testing"

	"github.com/clinscore/clinscore/internal/registry"
)

func TestRPIHypoproliferative(t *testing.T) {
	// Corrected = 2.5 * (25/45) = 1.389, factor 2.0 -> RPI 0.69.
	res, err := registry.Calculate("reticulocyte_production_index", registry.Params{
		"reticulocyte_percentage": 2.5,
		"measured_hematocrit":     25.0,
		"normal_hematocrit":       45.0,
	})
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if res.Result != 0.69 {
		t.Errorf("rpi = %v, want 0.69", res.Result)
	}
	if res.Stage != "Inadequate Response" {
		t.Errorf("stage = %q", res.Stage)
	}
	if res.Details["maturation_factor"] != 2.0 {
		t.Errorf("maturation_factor = %v, want 2.0", res.Details["maturation_factor"])
	}
}

func TestRPIMaturationBoundaries(t *testing.T) {
	cases := []struct {
		hct  float64
		want float64
	}{
		{15, 2.5},
		{20, 2.0},
		{25, 1.5},
		{35, 1.0},
		{45, 1.0},
	}
	for _, tc := range cases {
		res, err := registry.Calculate("reticulocyte_production_index", registry.Params{
			"reticulocyte_percentage": 2.0,
			"measured_hematocrit":     tc.hct,
			"normal_hematocrit":       45.0,
		})
		if err != nil {
			t.Fatalf("hct %.0f: %v", tc.hct, err)
		}
		if res.Details["maturation_factor"] != tc.want {
			t.Errorf("hct %.0f: factor = %v, want %v", tc.hct, res.Details["maturation_factor"], tc.want)
		}
	}
}

func TestRPIAppropriateResponse(t *testing.T) {
	// Corrected = 12 * (30/45) = 8.0, factor 1.5 -> RPI 5.33.
	res, err := registry.Calculate("reticulocyte_production_index", registry.Params{
		"reticulocyte_percentage": 12.0,
		"measured_hematocrit":     30.0,
		"normal_hematocrit":       45.0,
	})
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if res.Result != 5.33 {
		t.Errorf("rpi = %v, want 5.33", res.Result)
	}
	if res.Stage != "Appropriate Response" {
		t.Errorf("stage = %q", res.Stage)
	}
}

func TestRPIAbsoluteCount(t *testing.T) {
	res, err := registry.Calculate("reticulocyte_production_index", registry.Params{
		"reticulocyte_percentage": 2.0,
		"measured_hematocrit":     30.0,
		"normal_hematocrit":       45.0,
		"rbc_count":               3.5,
	})
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if res.Details["absolute_reticulocyte_count"] != 70000.0 {
		t.Errorf("absolute count = %v, want 70000", res.Details["absolute_reticulocyte_count"])
	}
}

func TestRPIValidation(t *testing.T) {
	_, err := registry.Calculate("reticulocyte_production_index", registry.Params{
		"reticulocyte_percentage": 2.0,
		"measured_hematocrit":     30.0,
		"normal_hematocrit":       60.0,
	})
	var verr *registry.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
	if verr.Param != "normal_hematocrit" {
		t.Errorf("param = %q", verr.Param)
	}
}
