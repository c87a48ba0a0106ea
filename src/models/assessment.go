package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Stage ช่วงของการตั้งครรภ์ / หลังคลอด
type Stage string

const (
	StageFirstTrimester  Stage = "First Trimester"
	StageSecondTrimester Stage = "Second Trimester"
	StageThirdTrimester  Stage = "Third Trimester"
	StagePostpartum      Stage = "Postpartum"
)

// Stages ลำดับคงที่ ใช้ตรวจสอบค่า stage ที่ส่งเข้ามา
var Stages = []Stage{
	StageFirstTrimester,
	StageSecondTrimester,
	StageThirdTrimester,
	StagePostpartum,
}

func (s Stage) Valid() bool {
	for _, v := range Stages {
		if s == v {
			return true
		}
	}
	return false
}

// RegionMiddleEast is the only region that carries a country sub-field.
const RegionMiddleEast = "Middle East"

// ResponseSet maps question id -> answer. A missing id means "not answered";
// it is never treated as false.
type ResponseSet map[string]bool

// --- AssessmentSubmission ---
// The unit sent to the scoring boundary. Responses must be total (all question
// ids present) before the server accepts it.
type AssessmentSubmission struct {
	Stage             Stage       `bson:"stage" json:"stage" validate:"required"`
	Region            string      `bson:"region" json:"region" validate:"required"`
	MiddleEastCountry string      `bson:"middleEastCountry,omitempty" json:"middleEastCountry,omitempty"`
	SleepHours        float64     `bson:"sleepHours" json:"sleepHours" validate:"gte=0,lte=24"`
	Responses         ResponseSet `bson:"responses" json:"responses"`
}

// Normalize trims free-form fields and blanks the country for every region
// except Middle East, so the invariant "country iff Middle East" holds
// structurally in everything we persist.
func (a *AssessmentSubmission) Normalize() {
	a.Region = strings.TrimSpace(a.Region)
	a.MiddleEastCountry = strings.TrimSpace(a.MiddleEastCountry)
	if a.Region != RegionMiddleEast {
		a.MiddleEastCountry = ""
	}
}

// --- ScoredResult ---
// Derived by the risk model, immutable once computed.
type ScoredResult struct {
	Score        int            `bson:"score" json:"score"`
	MaxScore     int            `bson:"maxScore" json:"maxScore"`
	Threshold    int            `bson:"threshold" json:"threshold"`
	Label        string         `bson:"label" json:"label"`
	RiskFactors  []string       `bson:"riskFactors" json:"riskFactors"`
	Breakdown    map[string]int `bson:"breakdown" json:"breakdown"`
	ModelVersion string         `bson:"modelVersion" json:"modelVersion"`
}

// --- StoredAssessment ---
// Owned by the assessment store. Created on successful scored submission,
// mutated only by soft delete, never physically removed.
type StoredAssessment struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerID              primitive.ObjectID `bson:"ownerId" json:"-"`
	AssessmentSubmission `bson:",inline"`
	ScoredResult         `bson:",inline"`
	Deleted              bool      `bson:"deleted" json:"-"`
	CreatedAt            time.Time `bson:"createdAt" json:"createdAt"`
}

// AssessmentStats simple per-owner aggregates (nothing fancier by design).
type AssessmentStats struct {
	Total        int64   `bson:"total" json:"total"`
	PossibleRisk int64   `bson:"possibleRisk" json:"possibleRisk"`
	LowRisk      int64   `bson:"lowRisk" json:"lowRisk"`
	AverageScore float64 `bson:"averageScore" json:"averageScore"`
}
