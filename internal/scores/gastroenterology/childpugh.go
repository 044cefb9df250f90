// Package gastroenterology registers hepatology and GI calculators.
package gastroenterology

import (
	"fmt"

	"github.com/clinscore/clinscore/internal/registry"
)

func init() {
	registry.MustRegister(registry.Definition{
		ID:          "child_pugh_score",
		Title:       "Child-Pugh Score for Cirrhosis Severity",
		Category:    "gastroenterology",
		Description: "Grades cirrhosis severity and operative risk from five clinical and laboratory findings.",
		Params: []registry.ParamSpec{
			{Name: "total_bilirubin", Type: "number", Required: true, Unit: "mg/dL"},
			{Name: "serum_albumin", Type: "number", Required: true, Unit: "g/dL"},
			{Name: "inr", Type: "number", Required: true},
			{Name: "ascites", Type: "string", Required: true, Allowed: []string{"absent", "slight", "moderate"}},
			{Name: "encephalopathy", Type: "string", Required: true, Allowed: []string{"none", "grade_1_2", "grade_3_4"}},
		},
	}, calculateChildPugh)
}

func calculateChildPugh(p registry.Params) (*registry.Result, error) {
	b := registry.Bind(p)
	bilirubin := b.Float("total_bilirubin", 0.1, 50)
	albumin := b.Float("serum_albumin", 1.0, 5.0)
	inr := b.Float("inr", 0.8, 10)
	ascites := b.Enum("ascites", "absent", "slight", "moderate")
	encephalopathy := b.Enum("encephalopathy", "none", "grade_1_2", "grade_3_4")
	if err := b.Err(); err != nil {
		return nil, err
	}

	score := scoreLowMidHigh(bilirubin, 2.0, 3.0, false) +
		scoreLowMidHigh(albumin, 2.8, 3.5, true) +
		scoreLowMidHigh(inr, 1.7, 2.3, false)
	switch ascites {
	case "absent":
		score++
	case "slight":
		score += 2
	case "moderate":
		score += 3
	}
	switch encephalopathy {
	case "none":
		score++
	case "grade_1_2":
		score += 2
	case "grade_3_4":
		score += 3
	}

	var grade, desc, advice string
	switch {
	case score <= 6:
		grade, desc = "A", "Well-compensated disease"
		advice = "Well-compensated cirrhosis. Excellent operative risk with one-year survival ~100% and two-year survival ~85%. Suitable for major surgery and liver resection."
	case score <= 9:
		grade, desc = "B", "Significant functional compromise"
		advice = "Significant functional compromise. Good operative risk with one-year survival ~80% and two-year survival ~60%. Consider surgery with caution; may require liver transplant evaluation."
	default:
		grade, desc = "C", "Decompensated disease"
		advice = "Decompensated cirrhosis. Poor operative risk with one-year survival ~45% and two-year survival ~35%. High surgical mortality; priority candidate for liver transplantation."
	}

	return &registry.Result{
		Result: map[string]interface{}{
			"total_score": score,
			"grade":       grade,
		},
		Unit:             "points",
		Interpretation:   fmt.Sprintf("Child-Pugh Grade %s (Score %d): %s", grade, score, advice),
		Stage:            "Child-Pugh " + grade,
		StageDescription: desc,
	}, nil
}

// scoreLowMidHigh maps a lab value to 1-3 points across two cutoffs. When
// inverted, lower values score higher (albumin).
func scoreLowMidHigh(v, lowCut, highCut float64, inverted bool) int {
	if inverted {
		switch {
		case v > highCut:
			return 1
		case v >= lowCut:
			return 2
		default:
			return 3
		}
	}
	switch {
	case v < lowCut:
		return 1
	case v <= highCut:
		return 2
	default:
		return 3
	}
}
