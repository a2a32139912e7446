// Package form turns a submitted BMI form into the text shown to the user.
package form

import (
	"log/slog"
	"math"

	"bmi-calculator/internal/bmi"
	"bmi-calculator/internal/types"
)

// MessagePrefix starts every result message.
const MessagePrefix = "Your BMI is "

// Submission outcomes reported to a Recorder.
const (
	OutcomeFinite   = "finite"
	OutcomeNaN      = "nan"
	OutcomeInfinite = "infinite"
)

// Submission holds the raw text of the three form fields.
type Submission struct {
	HeightFt string `form:"height_ft" json:"height_ft"`
	HeightIn string `form:"height_in" json:"height_in"`
	Weight   string `form:"weight" json:"weight"`
}

// Result is built fresh for every submission.
type Result struct {
	Height  types.Height
	Weight  types.Weight
	BMI     float64
	Message string
}

// Service handles form submissions
type Service interface {
	// Submit computes the BMI for a submission. It never fails: unusable
	// input shows up as NaN or Infinity in the message.
	Submit(sub Submission) Result
}

// Recorder observes the outcome of each submission
type Recorder interface {
	ObserveSubmission(outcome string, value float64)
}

// formService implements the Service interface
type formService struct {
	logger   *slog.Logger
	recorder Recorder
}

// NewFormService creates a new form service. recorder may be nil.
func NewFormService(logger *slog.Logger, recorder Recorder) Service {
	return &formService{
		logger:   logger.With("component", "form-service"),
		recorder: recorder,
	}
}

func (s *formService) Submit(sub Submission) Result {
	feet := s.parse("height_ft", sub.HeightFt)
	inches := s.parse("height_in", sub.HeightIn)
	pounds := s.parse("weight", sub.Weight)

	height := types.NewHeight(feet, inches)
	weight := types.NewWeightFromPounds(pounds)
	value := bmi.Calculate(height.TotalInches, weight.Pounds)

	outcome := Outcome(value)
	s.logger.Debug("computed BMI",
		"height_in", height.TotalInches,
		"weight_lb", weight.Pounds,
		"bmi", FormatNumber(value),
		"outcome", outcome,
	)
	if s.recorder != nil {
		s.recorder.ObserveSubmission(outcome, value)
	}

	return Result{
		Height:  height,
		Weight:  weight,
		BMI:     value,
		Message: FormatMessage(value),
	}
}

// parse propagates NaN for unparseable fields and only logs the failure.
func (s *formService) parse(field, raw string) float64 {
	value, err := ParseField(raw)
	if err != nil {
		s.logger.Debug("form field is not a number",
			"field", field,
			"error", err,
		)
	}
	return value
}

// FormatMessage builds the text written to the result area.
func FormatMessage(value float64) string {
	return MessagePrefix + FormatNumber(value)
}

// Outcome classifies a BMI value for metrics.
func Outcome(value float64) string {
	switch {
	case math.IsNaN(value):
		return OutcomeNaN
	case math.IsInf(value, 0):
		return OutcomeInfinite
	default:
		return OutcomeFinite
	}
}
