package domain

import (
	"errors"
	"time"
)

// ErrNotFound is returned when no project exists for the requested id.
var ErrNotFound = errors.New("project not found")

// Project is one construction engagement. Rows are entered by the
// back office and are read-only from this service's point of view;
// optional fields stay nil and render as "undisclosed" client-side.
//
// JSON names follow the frontend's existing contract.
type Project struct {
	ID             int        `json:"id"`
	Title          string     `json:"title"`
	Category       Category   `json:"category"`
	SubCategory    *string    `json:"subCategory,omitempty"`
	Description    string     `json:"description"`
	ImageURL       string     `json:"imageUrl"`
	BeforeImageURL *string    `json:"beforeImageUrl,omitempty"`
	AfterImageURL  *string    `json:"afterImageUrl,omitempty"`
	CompletionDate time.Time  `json:"completionDate"`
	StartDate      *time.Time `json:"startDate,omitempty"`
	Location       string     `json:"location"`
	Region         *Region    `json:"region,omitempty"`
	Budget         *float64   `json:"budget,omitempty"`
	Area           *float64   `json:"area,omitempty"`

	EnvironmentalMeasures *string `json:"environmentalMeasures,omitempty"`
	SafetyMeasures        *string `json:"safetyMeasures,omitempty"`
	Awards                *string `json:"awards,omitempty"`
	MediaLinks            *string `json:"mediaLinks,omitempty"`
	TechnicalHighlights   *string `json:"technicalHighlights,omitempty"`
	ChallengesSolutions   *string `json:"challengesSolutions,omitempty"`
	ContractorComment     *string `json:"contractorComment,omitempty"`

	Featured  bool `json:"featured"`
	Completed bool `json:"completed"`
}
