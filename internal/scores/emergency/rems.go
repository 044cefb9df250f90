package emergency

import (
	"fmt"

	"github.com/clinscore/clinscore/internal/registry"
)

func init() {
	registry.MustRegister(registry.Definition{
		ID:          "rems_score",
		Title:       "Rapid Emergency Medicine Score (REMS)",
		Category:    "emergency",
		Description: "Predicts in-hospital mortality for nonsurgical emergency department patients.",
		Params: []registry.ParamSpec{
			{Name: "age", Type: "integer", Required: true, Unit: "years"},
			{Name: "body_temperature", Type: "number", Required: true, Unit: "°C"},
			{Name: "mean_arterial_pressure", Type: "integer", Required: true, Unit: "mmHg"},
			{Name: "heart_rate", Type: "integer", Required: true, Unit: "bpm"},
			{Name: "respiratory_rate", Type: "integer", Required: true, Unit: "breaths/min"},
			{Name: "oxygen_saturation", Type: "integer", Required: true, Unit: "%"},
			{Name: "glasgow_coma_scale", Type: "integer", Required: true},
		},
	}, calculateREMS)
}

func calculateREMS(p registry.Params) (*registry.Result, error) {
	b := registry.Bind(p)
	age := b.Int("age", 0, 120)
	temp := b.Float("body_temperature", 25, 45)
	mapPressure := b.Int("mean_arterial_pressure", 20, 250)
	hr := b.Int("heart_rate", 20, 250)
	rr := b.Int("respiratory_rate", 1, 80)
	spo2 := b.Int("oxygen_saturation", 50, 100)
	gcs := b.Int("glasgow_coma_scale", 3, 15)
	if err := b.Err(); err != nil {
		return nil, err
	}

	ageScore := remsAgeScore(age)
	tempScore := remsTempScore(temp)
	mapScore := remsMAPScore(mapPressure)
	hrScore := remsHRScore(hr)
	rrScore := remsRRScore(rr)
	satScore := remsSatScore(spo2)
	gcsScore := remsGCSScore(gcs)

	total := ageScore + tempScore + mapScore + hrScore + rrScore + satScore + gcsScore

	var stage, desc, mortality string
	switch {
	case total <= 2:
		stage, desc, mortality = "Very Low Risk", "Very low mortality risk", "0.3%"
	case total <= 5:
		stage, desc, mortality = "Low Risk", "Low mortality risk", "2%"
	case total <= 9:
		stage, desc, mortality = "Moderate Risk", "Moderate mortality risk", "5-10%"
	case total <= 11:
		stage, desc, mortality = "High Risk", "High mortality risk", "20%"
	case total <= 21:
		stage, desc, mortality = "Very High Risk", "Very high mortality risk", "40-60%"
	default:
		stage, desc, mortality = "Extremely High Risk", "Extremely high mortality risk", ">90%"
	}

	return &registry.Result{
		Result: total,
		Unit:   "points",
		Interpretation: fmt.Sprintf("REMS Score: %d points. %s of in-hospital mortality (%s).",
			total, desc, mortality),
		Stage:            stage,
		StageDescription: desc,
		Details: map[string]interface{}{
			"age_score":                ageScore,
			"temperature_score":        tempScore,
			"map_score":                mapScore,
			"heart_rate_score":         hrScore,
			"respiratory_rate_score":   rrScore,
			"oxygen_saturation_score":  satScore,
			"glasgow_coma_scale_score": gcsScore,
		},
	}, nil
}

func remsAgeScore(age int) int {
	switch {
	case age < 45:
		return 0
	case age < 55:
		return 2
	case age < 65:
		return 3
	case age < 75:
		return 5
	default:
		return 6
	}
}

func remsTempScore(t float64) int {
	switch {
	case t < 30:
		return 4
	case t < 32:
		return 3
	case t < 34:
		return 2
	case t < 36:
		return 1
	case t <= 38.4:
		return 0
	case t < 38.9:
		return 1
	case t <= 40.9:
		return 3
	default:
		return 4
	}
}

func remsMAPScore(m int) int {
	switch {
	case m < 50:
		return 2
	case m < 70:
		return 1
	case m <= 109:
		return 0
	case m < 130:
		return 2
	case m < 160:
		return 3
	default:
		return 4
	}
}

func remsHRScore(hr int) int {
	switch {
	case hr < 40:
		return 3
	case hr < 55:
		return 2
	case hr < 70:
		return 1
	case hr <= 109:
		return 0
	case hr < 140:
		return 2
	case hr < 180:
		return 3
	default:
		return 4
	}
}

func remsRRScore(rr int) int {
	switch {
	case rr < 6:
		return 3
	case rr < 10:
		return 2
	case rr < 12:
		return 1
	case rr <= 24:
		return 0
	case rr < 35:
		return 2
	case rr <= 49:
		return 3
	default:
		return 4
	}
}

func remsSatScore(s int) int {
	switch {
	case s < 75:
		return 4
	case s <= 85:
		return 3
	case s <= 89:
		return 2
	default:
		return 0
	}
}

func remsGCSScore(g int) int {
	switch {
	case g < 5:
		return 4
	case g <= 7:
		return 3
	case g <= 10:
		return 2
	case g <= 13:
		return 1
	default:
		return 0
	}
}
