package dto

import (
	"github.com/wealth-tracker/backend/internal/application/usecase/prediction"
	"github.com/wealth-tracker/backend/internal/domain/valueobject"
)

// PredictionResponse represents a single predicted transaction in API responses.
type PredictionResponse struct {
	Date          string               `json:"date"`
	Amount        string               `json:"amount"`
	Currency      string               `json:"currency"`
	Type          string               `json:"type"`
	Recipient     string               `json:"recipient"`
	Description   string               `json:"description"`
	Category      string               `json:"category"`
	Account       string               `json:"account"`
	IsPredicted   bool                 `json:"is_predicted"`
	PredictionKey string               `json:"prediction_key"`
	Confidence    float64              `json:"confidence"`
	Recurrence    string               `json:"recurrence"`
	BasedOn       []OccurrenceResponse `json:"based_on"`
}

// OccurrenceResponse represents one historical payment backing a prediction.
type OccurrenceResponse struct {
	Date   string `json:"date"`
	Amount string `json:"amount"`
}

// PredictionListResponse represents the response for listing predictions.
type PredictionListResponse struct {
	Month       string               `json:"month"`
	Predictions []PredictionResponse `json:"predictions"`
}

// PatternResponse represents a detected recurring pattern in API responses.
type PatternResponse struct {
	Recipient       string  `json:"recipient"`
	Category        string  `json:"category"`
	Type            string  `json:"type"`
	Recurrence      string  `json:"recurrence"`
	AverageAmount   string  `json:"average_amount"`
	TypicalDay      int     `json:"typical_day"`
	Currency        string  `json:"currency"`
	Confidence      float64 `json:"confidence"`
	OccurrenceCount int     `json:"occurrence_count"`
	LastDate        string  `json:"last_date"`
	PredictionKey   string  `json:"prediction_key"`
}

// PatternListResponse represents the response for listing detected patterns.
type PatternListResponse struct {
	Patterns []PatternResponse `json:"patterns"`
}

// DismissPredictionRequest represents the request body for dismissing a prediction.
type DismissPredictionRequest struct {
	PredictionKey  string `json:"prediction_key" binding:"required"`
	RecurrenceType string `json:"recurrence_type,omitempty"`
}

// DismissPredictionResponse represents the response for dismissing a prediction.
type DismissPredictionResponse struct {
	PredictionKey string `json:"prediction_key"`
	ExpiresAt     string `json:"expires_at"`
}

// AverageEssentialResponse represents the response for the essential spending average.
type AverageEssentialResponse struct {
	Average    string   `json:"average"`
	MonthsUsed []string `json:"months_used"`
	MonthCount int      `json:"month_count"`
}

// ToPredictionResponse converts a Prediction value object to its response DTO.
func ToPredictionResponse(p valueobject.Prediction) PredictionResponse {
	basedOn := make([]OccurrenceResponse, len(p.BasedOn))
	for i, occ := range p.BasedOn {
		basedOn[i] = OccurrenceResponse{
			Date:   occ.Date.Format("2006-01-02"),
			Amount: occ.Amount.String(),
		}
	}

	return PredictionResponse{
		Date:          p.Date.Format("2006-01-02"),
		Amount:        p.Amount.String(),
		Currency:      p.Currency,
		Type:          string(p.Type),
		Recipient:     p.Recipient,
		Description:   p.Description,
		Category:      p.Category,
		Account:       p.Account,
		IsPredicted:   p.IsPredicted,
		PredictionKey: p.PredictionKey,
		Confidence:    p.Confidence,
		Recurrence:    string(p.Recurrence),
		BasedOn:       basedOn,
	}
}

// ToPredictionListResponse converts prediction generation output to its response DTO.
func ToPredictionListResponse(month string, output *prediction.GeneratePredictionsOutput) PredictionListResponse {
	predictions := make([]PredictionResponse, len(output.Predictions))
	for i, p := range output.Predictions {
		predictions[i] = ToPredictionResponse(p)
	}

	return PredictionListResponse{
		Month:       month,
		Predictions: predictions,
	}
}

// ToPatternListResponse converts pattern detection output to its response DTO.
func ToPatternListResponse(output *prediction.DetectPatternsOutput) PatternListResponse {
	patterns := make([]PatternResponse, len(output.Patterns))
	for i, p := range output.Patterns {
		patterns[i] = PatternResponse{
			Recipient:       p.Recipient,
			Category:        p.Category,
			Type:            string(p.Type),
			Recurrence:      string(p.Recurrence),
			AverageAmount:   p.AverageAmount.String(),
			TypicalDay:      p.TypicalDay,
			Currency:        p.Currency,
			Confidence:      p.Confidence,
			OccurrenceCount: p.OccurrenceCount,
			LastDate:        p.LastDate.Format("2006-01-02"),
			PredictionKey:   p.PredictionKey,
		}
	}

	return PatternListResponse{Patterns: patterns}
}

// ToAverageEssentialResponse converts average essential output to its response DTO.
func ToAverageEssentialResponse(output *prediction.AverageEssentialOutput) AverageEssentialResponse {
	return AverageEssentialResponse{
		Average:    output.Average.String(),
		MonthsUsed: output.MonthsUsed,
		MonthCount: output.MonthCount,
	}
}
