package all

import (
	"testing"

	"github.com/clinscore/clinscore/internal/registry"
)

var wantScores = map[string]string{
	"score2":                          "cardiology",
	"score2_diabetes":                 "cardiology",
	"chads2_score":                    "cardiology",
	"cha2ds2_va_score":                "cardiology",
	"ldl_calculated":                  "cardiology",
	"news_2":                          "emergency",
	"rems_score":                      "emergency",
	"rule_of_nines":                   "emergency",
	"cincinnati_prehospital_stroke_severity_scale": "emergency",
	"cerebral_perfusion_pressure":       "neurology",
	"child_pugh_score":                  "gastroenterology",
	"meld_combined":                     "gastroenterology",
	"glasgow_blatchford_bleeding_score": "gastroenterology",
	"akin":                              "nephrology",
	"winters_formula_metabolic_acidosis": "nephrology",
	"reticulocyte_production_index":      "hematology",
	"glucose_infusion_rate":              "endocrinology",
	"gds_15":                             "psychiatry",
}

func TestCatalogComplete(t *testing.T) {
	if got := registry.Default.Len(); got != len(wantScores) {
		t.Errorf("registered %d scores, want %d", got, len(wantScores))
	}
	for id, category := range wantScores {
		def, ok := registry.Default.Lookup(id)
		if !ok {
			t.Errorf("score %q not registered", id)
			continue
		}
		if def.Category != category {
			t.Errorf("%s: category = %q, want %q", id, def.Category, category)
		}
		if def.Title == "" || def.Description == "" {
			t.Errorf("%s: missing title or description", id)
		}
		if len(def.Params) == 0 {
			t.Errorf("%s: no parameter specs", id)
		}
	}
}

func TestCategoriesCoverAllSpecialties(t *testing.T) {
	cats := registry.Default.Categories()
	want := map[string]int{
		"cardiology":       5,
		"emergency":        4,
		"neurology":        1,
		"gastroenterology": 3,
		"nephrology":       2,
		"hematology":       1,
		"endocrinology":    1,
		"psychiatry":       1,
	}
	for cat, n := range want {
		if cats[cat] != n {
			t.Errorf("category %s: %d scores, want %d", cat, cats[cat], n)
		}
	}
}

func TestEveryDefinitionHasRequiredParams(t *testing.T) {
	for _, def := range registry.Default.Definitions() {
		required := 0
		for _, ps := range def.Params {
			if ps.Name == "" || ps.Type == "" {
				t.Errorf("%s: parameter spec missing name or type", def.ID)
			}
			if ps.Required {
				required++
			}
		}
		if required == 0 {
			t.Errorf("%s: no required parameters", def.ID)
		}
	}
}
