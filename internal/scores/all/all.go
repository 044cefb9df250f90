// Package all registers every clinical score calculator with the default
// registry. Importing it for side effects is the single switch that
// populates the score catalog:
//
//	import _ "github.com/clinscore/clinscore/internal/scores/all"
package all

import (
	_ "github.com/clinscore/clinscore/internal/scores/cardiology"
	_ "github.com/clinscore/clinscore/internal/scores/emergency"
	_ "github.com/clinscore/clinscore/internal/scores/endocrinology"
	_ "github.com/clinscore/clinscore/internal/scores/gastroenterology"
	_ "github.com/clinscore/clinscore/internal/scores/hematology"
	_ "github.com/clinscore/clinscore/internal/scores/nephrology"
	_ "github.com/clinscore/clinscore/internal/scores/neurology"
	_ "github.com/clinscore/clinscore/internal/scores/psychiatry"
)
