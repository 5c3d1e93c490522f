package scoring

import (
	"testing"
	"time"

	"github.com/nyuchitech/EducatorEval/internal/model"
)

func resp(id string, v model.ResponseValue) model.ObservationResponse {
	return model.ObservationResponse{
		QuestionID: model.QuestionID(id),
		Value:      v,
		Timestamp:  time.Now(),
	}
}

func TestEvidencePercent(t *testing.T) {
	tests := []struct {
		name      string
		responses map[model.QuestionID]model.ObservationResponse
		want      int
	}{
		{name: "nil responses", responses: nil, want: 0},
		{name: "empty responses", responses: map[model.QuestionID]model.ObservationResponse{}, want: 0},
		{
			name: "all not-observed",
			responses: map[model.QuestionID]model.ObservationResponse{
				"q1": resp("q1", model.ResponseValue{NotObserved: true}),
				"q2": resp("q2", model.ResponseValue{Text: model.NotObservedSentinel}),
			},
			want: 0,
		},
		{
			name: "non-numeric text discarded",
			responses: map[model.QuestionID]model.ObservationResponse{
				"q1": resp("q1", model.ResponseValue{Text: "strong questioning"}),
			},
			want: 0,
		},
		{
			name: "all valid at or above threshold",
			responses: map[model.QuestionID]model.ObservationResponse{
				"q1": resp("q1", model.ResponseValue{Rating: 3}),
				"q2": resp("q2", model.ResponseValue{Rating: 4}),
				"q3": resp("q3", model.ResponseValue{Text: "3"}),
			},
			want: 100,
		},
		{
			name: "mixed ratings with sentinel",
			responses: map[model.QuestionID]model.ObservationResponse{
				"q1": resp("q1", model.ResponseValue{Text: "4"}),
				"q2": resp("q2", model.ResponseValue{Text: "2"}),
				"q3": resp("q3", model.ResponseValue{Text: model.NotObservedSentinel}),
				"q4": resp("q4", model.ResponseValue{Text: "3"}),
			},
			want: 67, // valid [4,2,3], evidence 2 of 3
		},
		{
			name: "all below threshold",
			responses: map[model.QuestionID]model.ObservationResponse{
				"q1": resp("q1", model.ResponseValue{Rating: 1}),
				"q2": resp("q2", model.ResponseValue{Rating: 2}),
			},
			want: 0,
		},
		{
			name: "rounds half up",
			responses: map[model.QuestionID]model.ObservationResponse{
				"q1": resp("q1", model.ResponseValue{Rating: 4}),
				"q2": resp("q2", model.ResponseValue{Rating: 1}),
			},
			want: 50,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EvidencePercent(tt.responses); got != tt.want {
				t.Errorf("EvidencePercent() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScore(t *testing.T) {
	obs := &model.Observation{
		Responses: map[model.QuestionID]model.ObservationResponse{
			"q1": resp("q1", model.ResponseValue{Rating: 4}),
			"q2": resp("q2", model.ResponseValue{NotObserved: true}),
			"q3": resp("q3", model.ResponseValue{Rating: 2}),
		},
	}
	Score(obs)

	if obs.CRPEvidenceRate == nil {
		t.Fatal("Score() left CRPEvidenceRate unset")
	}
	if *obs.CRPEvidenceRate != 50 {
		t.Errorf("CRPEvidenceRate = %d, want 50", *obs.CRPEvidenceRate)
	}
	if obs.TotalLookFors != 3 {
		t.Errorf("TotalLookFors = %d, want 3", obs.TotalLookFors)
	}
}
