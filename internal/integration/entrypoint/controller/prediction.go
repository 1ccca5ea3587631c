package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wealth-tracker/backend/internal/application/usecase/prediction"
	domainerror "github.com/wealth-tracker/backend/internal/domain/error"
	"github.com/wealth-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/wealth-tracker/backend/internal/integration/entrypoint/middleware"
)

// PredictionController handles prediction endpoints.
type PredictionController struct {
	generatePredictionsUseCase *prediction.GeneratePredictionsUseCase
	detectPatternsUseCase      *prediction.DetectPatternsUseCase
	dismissPredictionUseCase   *prediction.DismissPredictionUseCase
	averageEssentialUseCase    *prediction.AverageEssentialUseCase
}

// NewPredictionController creates a new prediction controller instance.
func NewPredictionController(
	generatePredictionsUseCase *prediction.GeneratePredictionsUseCase,
	detectPatternsUseCase *prediction.DetectPatternsUseCase,
	dismissPredictionUseCase *prediction.DismissPredictionUseCase,
	averageEssentialUseCase *prediction.AverageEssentialUseCase,
) *PredictionController {
	return &PredictionController{
		generatePredictionsUseCase: generatePredictionsUseCase,
		detectPatternsUseCase:      detectPatternsUseCase,
		dismissPredictionUseCase:   dismissPredictionUseCase,
		averageEssentialUseCase:    averageEssentialUseCase,
	}
}

// GetPredictions handles GET /predictions/:month requests.
func (c *PredictionController) GetPredictions(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	month := ctx.Param("month")

	output, err := c.generatePredictionsUseCase.Execute(ctx.Request.Context(), prediction.GeneratePredictionsInput{
		UserID:      userID,
		TargetMonth: month,
	})
	if err != nil {
		c.handlePredictionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPredictionListResponse(month, output))
}

// GetPatterns handles GET /predictions/:month/patterns requests.
// Patterns are month-independent; the month segment keeps the route family together.
func (c *PredictionController) GetPatterns(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.detectPatternsUseCase.Execute(ctx.Request.Context(), prediction.DetectPatternsInput{
		UserID: userID,
	})
	if err != nil {
		c.handlePredictionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPatternListResponse(output))
}

// DismissPrediction handles POST /predictions/dismiss requests.
func (c *PredictionController) DismissPrediction(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var request dto.DismissPredictionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "prediction_key is required",
			Code:  string(domainerror.ErrCodeMissingPredictionKey),
		})
		return
	}

	output, err := c.dismissPredictionUseCase.Execute(ctx.Request.Context(), prediction.DismissPredictionInput{
		UserID:        userID,
		PredictionKey: request.PredictionKey,
		Recurrence:    request.RecurrenceType,
	})
	if err != nil {
		c.handlePredictionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DismissPredictionResponse{
		PredictionKey: output.PredictionKey,
		ExpiresAt:     output.ExpiresAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	})
}

// GetAverageEssential handles GET /predictions/:month/average-essential requests.
func (c *PredictionController) GetAverageEssential(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.averageEssentialUseCase.Execute(ctx.Request.Context(), prediction.AverageEssentialInput{
		UserID:      userID,
		TargetMonth: ctx.Param("month"),
	})
	if err != nil {
		c.handlePredictionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAverageEssentialResponse(output))
}

// handlePredictionError handles prediction errors and returns appropriate HTTP responses.
func (c *PredictionController) handlePredictionError(ctx *gin.Context, err error) {
	var predErr *domainerror.PredictionError
	if errors.As(err, &predErr) {
		ctx.JSON(c.statusCodeForPredictionError(predErr.Code), dto.ErrorResponse{
			Error: predErr.Message,
			Code:  string(predErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Internal server error",
	})
}

// statusCodeForPredictionError maps prediction error codes to HTTP status codes.
func (c *PredictionController) statusCodeForPredictionError(code domainerror.PredictionErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidTargetMonth,
		domainerror.ErrCodeMissingPredictionKey,
		domainerror.ErrCodeInvalidRecurrenceType:
		return http.StatusBadRequest
	case domainerror.ErrCodeDismissalPersistence:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
