// Package emergency registers emergency medicine and triage calculators.
package emergency

import (
	"sort"

	"github.com/clinscore/clinscore/internal/registry"
)

var (
	news2RespScores = map[string]int{
		"8_or_less": 3, "9_to_11": 1, "12_to_20": 0, "21_to_24": 2, "25_or_more": 3,
	}
	news2TempScores = map[string]int{
		"35_or_less": 3, "35_1_to_36": 1, "36_1_to_38": 0, "38_1_to_39": 1, "39_1_or_more": 2,
	}
	news2BPScores = map[string]int{
		"90_or_less": 3, "91_to_100": 2, "101_to_110": 1, "111_to_219": 0, "220_or_more": 3,
	}
	news2HRScores = map[string]int{
		"40_or_less": 3, "41_to_50": 1, "51_to_90": 0, "91_to_110": 1, "111_to_130": 2, "131_or_more": 3,
	}
)

func init() {
	registry.MustRegister(registry.Definition{
		ID:          "news_2",
		Title:       "National Early Warning Score 2 (NEWS2)",
		Category:    "emergency",
		Description: "Detects clinical deterioration from routine vital sign observations.",
		Params: []registry.ParamSpec{
			{Name: "respiratory_rate", Type: "string", Required: true, Allowed: keys(news2RespScores)},
			{Name: "hypercapnic_respiratory_failure", Type: "string", Required: true, Allowed: []string{"yes", "no"}},
			{Name: "oxygen_saturation", Type: "string", Required: true},
			{Name: "supplemental_oxygen", Type: "string", Required: true, Allowed: []string{"yes", "no"}},
			{Name: "temperature", Type: "string", Required: true, Allowed: keys(news2TempScores)},
			{Name: "systolic_bp", Type: "string", Required: true, Allowed: keys(news2BPScores)},
			{Name: "heart_rate", Type: "string", Required: true, Allowed: keys(news2HRScores)},
			{Name: "consciousness", Type: "string", Required: true, Allowed: []string{"alert", "altered"}},
		},
	}, calculateNEWS2)
}

func calculateNEWS2(p registry.Params) (*registry.Result, error) {
	b := registry.Bind(p)
	resp := b.Enum("respiratory_rate", "8_or_less", "9_to_11", "12_to_20", "21_to_24", "25_or_more")
	hypercapnic := b.Enum("hypercapnic_respiratory_failure", "yes", "no")
	spo2 := b.Enum("oxygen_saturation",
		"91_or_less", "92_to_93", "94_to_95", "96_or_more",
		"83_or_less", "84_to_85", "86_to_87", "88_to_92", "93_to_94", "95_to_96", "97_or_more")
	supplO2 := b.Enum("supplemental_oxygen", "yes", "no")
	temp := b.Enum("temperature", "35_or_less", "35_1_to_36", "36_1_to_38", "38_1_to_39", "39_1_or_more")
	sbp := b.Enum("systolic_bp", "90_or_less", "91_to_100", "101_to_110", "111_to_219", "220_or_more")
	hr := b.Enum("heart_rate", "40_or_less", "41_to_50", "51_to_90", "91_to_110", "111_to_130", "131_or_more")
	consciousness := b.Enum("consciousness", "alert", "altered")
	if err := b.Err(); err != nil {
		return nil, err
	}

	respScore := news2RespScores[resp]
	tempScore := news2TempScores[temp]
	bpScore := news2BPScores[sbp]
	hrScore := news2HRScores[hr]
	spo2Score := news2SpO2Score(spo2, hypercapnic == "yes", supplO2 == "yes")

	consciousnessScore := 0
	if consciousness == "altered" {
		consciousnessScore = 3
	}
	o2Score := 0
	if supplO2 == "yes" {
		o2Score = 2
	}

	total := respScore + spo2Score + o2Score + tempScore + bpScore + hrScore + consciousnessScore

	// Any single parameter at 3 is a RED score and escalates monitoring
	// even when the aggregate stays low.
	redScore := respScore == 3 || spo2Score == 3 || tempScore == 3 ||
		bpScore == 3 || hrScore == 3 || consciousnessScore == 3

	var stage, desc, advice string
	switch {
	case redScore && total < 5:
		stage = "Low-Medium Risk"
		desc = "RED score - individual parameter scoring 3"
		advice = "Urgent review by ward-based doctor required. Minimum monitoring frequency every hour."
	case total == 0:
		stage = "Low Risk"
		desc = "Very low early warning score"
		advice = "Continue routine monitoring. Minimum monitoring frequency every 12 hours."
	case total <= 4:
		stage = "Low Risk"
		desc = "Low early warning score"
		advice = "Assessment by competent registered nurse. Minimum monitoring frequency every 4-6 hours."
	case total <= 6:
		stage = "Medium Risk"
		desc = "Medium early warning score"
		advice = "Urgent review by ward-based doctor or acute team nurse to decide if critical care assessment is needed."
	default:
		stage = "High Risk"
		desc = "High early warning score"
		advice = "Emergency assessment by critical care team. Continuous monitoring of vital signs; consider transfer to higher level of care."
	}

	return &registry.Result{
		Result:           total,
		Unit:             "points",
		Interpretation:   advice,
		Stage:            stage,
		StageDescription: desc,
	}, nil
}

// news2SpO2Score scores oxygen saturation on scale 2 for patients with
// hypercapnic respiratory failure and the standard scale otherwise,
// remapping bands reported on the other scale.
func news2SpO2Score(band string, hypercapnic, onOxygen bool) int {
	if hypercapnic {
		switch band {
		case "83_or_less":
			return 3
		case "84_to_85":
			return 2
		case "86_to_87":
			return 1
		case "88_to_92":
			return 0
		case "93_to_94":
			if onOxygen {
				return 1
			}
			return 0
		case "95_to_96":
			if onOxygen {
				return 2
			}
			return 0
		case "97_or_more":
			if onOxygen {
				return 3
			}
			return 0
		case "91_or_less":
			return 3
		case "92_to_93":
			return 0
		default:
			return 0
		}
	}
	switch band {
	case "91_or_less", "83_or_less", "84_to_85", "86_to_87":
		return 3
	case "92_to_93", "88_to_92":
		return 2
	case "94_to_95", "93_to_94":
		return 1
	default:
		return 0
	}
}

func keys(m map[string]int) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
