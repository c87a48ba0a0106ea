// Package riskmodel holds the weighted screening model. It is a pure
// function over the fixed question set: no I/O, no clock, no hidden state,
// so the client preview and the authoritative server path share one ruleset.
package riskmodel

import (
	"github.com/NITHINKR06/wellness/src/models"
)

// ModelVersion tags every result with the ruleset that produced it, so
// historical records stay interpretable when weights or threshold change.
const ModelVersion = "weighted-v1"

// Threshold score at or above which the label is LabelPossibleRisk.
// Roughly half of the weighted maximum (10).
const Threshold = 5

const (
	LabelPossibleRisk = "Possible Risk"
	LabelLowRisk      = "Low Risk"
)

// Question one entry of the fixed screening set.
type Question struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Weight   int    `json:"weight"`
	Inverted bool   `json:"inverted"` // true = answering "false" is the risk signal
}

// Questions the closed, ordered question set for ModelVersion. q8 is weighted
// higher to reflect clinical severity; q9 is phrased positively (adequate
// support), so only an explicit "false" counts as a risk factor.
var Questions = []Question{
	{ID: "q1", Text: "I have been feeling sad, anxious, or empty", Weight: 1},
	{ID: "q2", Text: "I have lost interest in activities I used to enjoy", Weight: 1},
	{ID: "q3", Text: "I have been sleeping too much or too little", Weight: 1},
	{ID: "q4", Text: "I have had changes in my appetite", Weight: 1},
	{ID: "q5", Text: "I have been feeling irritable or angry", Weight: 1},
	{ID: "q6", Text: "I have had difficulty concentrating or making decisions", Weight: 1},
	{ID: "q7", Text: "I have been feeling guilty or worthless", Weight: 1},
	{ID: "q8", Text: "I have had thoughts of harming myself or my baby", Weight: 2},
	{ID: "q9", Text: "Do you feel you have adequate support from your family/partner?", Weight: 1, Inverted: true},
}

// MaxScore sum of all weights. Constant for a given model version.
func MaxScore() int {
	total := 0
	for _, q := range Questions {
		total += q.Weight
	}
	return total
}

// QuestionIDs ids in set order.
func QuestionIDs() []string {
	ids := make([]string, 0, len(Questions))
	for _, q := range Questions {
		ids = append(ids, q.ID)
	}
	return ids
}

// Missing returns the question ids absent from responses, in set order.
// Used by the store to enforce totality before acceptance.
func Missing(responses models.ResponseSet) []string {
	var missing []string
	for _, q := range Questions {
		if _, ok := responses[q.ID]; !ok {
			missing = append(missing, q.ID)
		}
	}
	return missing
}

// Score computes the weighted result. Input need not be total: an absent id
// contributes 0 regardless of polarity - it is never synthesized as false.
// An empty response set is valid and yields score 0 / LabelLowRisk.
func Score(responses models.ResponseSet) models.ScoredResult {
	breakdown := make(map[string]int, len(Questions))
	riskFactors := []string{}
	score := 0

	for _, q := range Questions {
		answer, answered := responses[q.ID]

		contribution := 0
		if answered {
			if q.Inverted {
				if !answer {
					contribution = q.Weight
				}
			} else if answer {
				contribution = q.Weight
			}
		}

		breakdown[q.ID] = contribution
		score += contribution
		if contribution > 0 {
			riskFactors = append(riskFactors, q.ID)
		}
	}

	label := LabelLowRisk
	if score >= Threshold {
		label = LabelPossibleRisk
	}

	return models.ScoredResult{
		Score:        score,
		MaxScore:     MaxScore(),
		Threshold:    Threshold,
		Label:        label,
		RiskFactors:  riskFactors,
		Breakdown:    breakdown,
		ModelVersion: ModelVersion,
	}
}
