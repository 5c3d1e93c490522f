// Package scoring computes CRP-evidence percentages from observation
// responses. All functions are pure.
package scoring

import (
	"math"

	"github.com/nyuchitech/EducatorEval/internal/model"
)

// evidenceFloor is the minimum rating that counts as observed evidence
// ("clearly/possibly observed" on the 4-point scale).
const evidenceFloor = 3

// EvidencePercent maps a set of responses to an integer percentage in [0,100].
// Not-observed responses and responses without a numeric value are discarded;
// of the remaining valid responses, those rated >= 3 count as evidence. The
// ratio is rounded half-up. Zero valid responses yield 0, not an error.
func EvidencePercent(responses map[model.QuestionID]model.ObservationResponse) int {
	valid, evidence := 0, 0
	for _, r := range responses {
		n, ok := r.Value.Numeric()
		if !ok {
			continue
		}
		valid++
		if n >= evidenceFloor {
			evidence++
		}
	}
	if valid == 0 {
		return 0
	}
	return int(math.Round(100 * float64(evidence) / float64(valid)))
}

// TotalLookFors counts every recorded response, valid or not
func TotalLookFors(responses map[model.QuestionID]model.ObservationResponse) int {
	return len(responses)
}

// Score stamps the derived evidence fields onto an observation
func Score(obs *model.Observation) {
	pct := EvidencePercent(obs.Responses)
	obs.CRPEvidenceRate = &pct
	obs.TotalLookFors = TotalLookFors(obs.Responses)
}
