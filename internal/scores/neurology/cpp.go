// Package neurology registers neurology and neurocritical care calculators.
package neurology

import (
	"fmt"
	"math"

	"github.com/clinscore/clinscore/internal/registry"
)

func init() {
	registry.MustRegister(registry.Definition{
		ID:          "cerebral_perfusion_pressure",
		Title:       "Cerebral Perfusion Pressure (CPP)",
		Category:    "neurology",
		Description: "Net pressure gradient driving cerebral blood flow: MAP minus ICP.",
		Params: []registry.ParamSpec{
			{Name: "mean_arterial_pressure", Type: "number", Required: true, Unit: "mmHg"},
			{Name: "intracranial_pressure", Type: "number", Required: true, Unit: "mmHg"},
		},
	}, calculateCPP)
}

func calculateCPP(p registry.Params) (*registry.Result, error) {
	b := registry.Bind(p)
	mapPressure := b.Float("mean_arterial_pressure", 30, 200)
	icp := b.Float("intracranial_pressure", 0, 80)
	if b.Err() == nil && icp >= mapPressure {
		b.Failf("intracranial_pressure", "cannot be greater than or equal to mean arterial pressure")
	}
	if err := b.Err(); err != nil {
		return nil, err
	}

	cpp := math.Round((mapPressure-icp)*10) / 10

	var stage, desc, advice string
	switch {
	case cpp < 30:
		stage, desc = "Critical", "Critically low cerebral perfusion"
		advice = "Critical risk of cerebral ischemia and brain death. Immediate aggressive intervention required to increase MAP and/or reduce ICP; consider emergency neurosurgical consultation."
	case cpp < 50:
		stage, desc = "Severely Low", "High risk of cerebral ischemia"
		advice = "High risk of cerebral ischemia and secondary brain injury. Urgent intervention needed: consider vasopressor support, ICP-lowering measures, and close neurological monitoring."
	case cpp < 60:
		stage, desc = "Low", "Below optimal range"
		advice = "Below optimal range; risk of ischemia in patients with impaired autoregulation. Consider interventions to improve cerebral perfusion while monitoring neurological status."
	case cpp < 80:
		stage, desc = "Optimal", "Target range for cerebral perfusion"
		advice = "Optimal range for cerebral perfusion in most patients. Maintain current management; this is the target range for TBI management."
	case cpp < 100:
		stage, desc = "Adequate", "Adequate cerebral perfusion"
		advice = "Adequate cerebral perfusion. Continue monitoring for complications of elevated pressures while maintaining cerebral blood flow."
	default:
		stage, desc = "High", "Elevated cerebral perfusion pressure"
		advice = "Elevated cerebral perfusion pressure. Consider complications of high pressures including cerebral edema; balance perfusion needs with pressure management."
	}

	return &registry.Result{
		Result:           cpp,
		Unit:             "mmHg",
		Interpretation:   fmt.Sprintf("CPP %.1f mmHg: %s", cpp, advice),
		Stage:            stage,
		StageDescription: desc,
		Details: map[string]interface{}{
			"map_value":   mapPressure,
			"icp_value":   icp,
			"is_adequate": cpp >= 60,
			"is_critical": cpp < 50,
		},
	}, nil
}
