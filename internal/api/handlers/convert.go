package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"microwave-converter/internal/api/models"
	"microwave-converter/internal/convert"
	"microwave-converter/internal/model"
)

// Batch conversions are capped to keep responses bounded.
const maxBatchTargets = 25

const fieldTargetWattages = "target_wattages"

// @Summary      Convert a cooking time
// @Description  Scales a recipe's cooking time from one microwave wattage to another so the delivered energy stays the same.
// @Tags         convert
// @Accept       json
// @Produce      json
// @Param        body  body      models.ConvertRequest  true  "Conversion payload"
// @Success      200   {object}  models.ConvertResponse
// @Failure      400   {object}  models.ErrorResponse
// @Router       /api/v1/convert [post]
func (h *Handler) convert(c *gin.Context) {
	var req models.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	convReq, verr := resolveConvertRequest(req)
	if verr != nil {
		respondValidationError(c, verr)
		return
	}

	result, err := h.engine.Convert(convReq)
	if err != nil {
		h.respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, newConvertResponse(result))
}

// @Summary      Convert against several wattages
// @Description  Converts one recipe time for each target wattage in the list.
// @Tags         convert
// @Accept       json
// @Produce      json
// @Param        body  body      models.BatchConvertRequest  true  "Batch payload"
// @Success      200   {object}  models.BatchConvertResponse
// @Failure      400   {object}  models.ErrorResponse
// @Router       /api/v1/convert/batch [post]
func (h *Handler) convertBatch(c *gin.Context) {
	var req models.BatchConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	base, verr := resolveBatchRequest(req)
	if verr != nil {
		respondValidationError(c, verr)
		return
	}

	comparisons := make([]models.BatchComparison, 0, len(req.TargetWattages))
	for _, w := range req.TargetWattages {
		r := base
		r.TargetWattage = w
		result, err := h.engine.Convert(r)
		if err != nil {
			h.respondEngineError(c, err)
			return
		}
		comparisons = append(comparisons, models.BatchComparison{
			TargetWattage:       w,
			ConvertedTime:       result.ConvertedTime,
			Wattages:            result.Wattages,
			PowerRecommendation: result.Recommendation,
		})
	}

	c.JSON(http.StatusOK, models.BatchConvertResponse{
		OriginalTime: model.DurationFromSeconds(base.TotalSeconds()),
		Comparisons:  comparisons,
		Count:        len(comparisons),
	})
}

// Helper methods

// resolveConvertRequest checks required fields are present and maps the
// payload onto the engine's request type. original_seconds defaults to 0.
func resolveConvertRequest(req models.ConvertRequest) (model.ConversionRequest, *model.ValidationError) {
	if req.OriginalWattage == nil {
		return model.ConversionRequest{}, model.MissingFieldError(model.FieldOriginalWattage, "original_wattage is required")
	}
	if req.TargetWattage == nil {
		return model.ConversionRequest{}, model.MissingFieldError(model.FieldTargetWattage, "target_wattage is required")
	}
	if req.OriginalMinutes == nil {
		return model.ConversionRequest{}, model.MissingFieldError(model.FieldOriginalMinutes, "original_minutes is required")
	}
	out := model.ConversionRequest{
		OriginalWattage: *req.OriginalWattage,
		TargetWattage:   *req.TargetWattage,
		OriginalMinutes: *req.OriginalMinutes,
	}
	if req.OriginalSeconds != nil {
		out.OriginalSeconds = *req.OriginalSeconds
	}
	return out, nil
}

// resolveBatchRequest validates presence and the target list, returning
// the shared request fields. The caller fills in each target wattage.
func resolveBatchRequest(req models.BatchConvertRequest) (model.ConversionRequest, *model.ValidationError) {
	if req.OriginalWattage == nil {
		return model.ConversionRequest{}, model.MissingFieldError(model.FieldOriginalWattage, "original_wattage is required")
	}
	if len(req.TargetWattages) == 0 {
		return model.ConversionRequest{}, model.MissingFieldError(fieldTargetWattages, "target_wattages is required")
	}
	if len(req.TargetWattages) > maxBatchTargets {
		return model.ConversionRequest{}, &model.ValidationError{
			Kind:    model.KindOutOfRange,
			Field:   fieldTargetWattages,
			Message: "At most 25 target wattages are allowed per request",
		}
	}
	if req.OriginalMinutes == nil {
		return model.ConversionRequest{}, model.MissingFieldError(model.FieldOriginalMinutes, "original_minutes is required")
	}
	out := model.ConversionRequest{
		OriginalWattage: *req.OriginalWattage,
		OriginalMinutes: *req.OriginalMinutes,
	}
	if req.OriginalSeconds != nil {
		out.OriginalSeconds = *req.OriginalSeconds
	}
	return out, nil
}

func newConvertResponse(res *convert.Result) models.ConvertResponse {
	return models.ConvertResponse{
		ConvertedTime:       res.ConvertedTime,
		OriginalTime:        res.OriginalTime,
		Wattages:            res.Wattages,
		PowerRecommendation: res.Recommendation,
		Explanation:         res.Explanation,
	}
}

// respondBindError reports malformed or uncoercible request bodies.
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    string(model.KindMissingField),
			Message: "invalid request body: " + err.Error(),
		},
	})
}

func respondValidationError(c *gin.Context, verr *model.ValidationError) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    string(verr.Kind),
			Message: verr.Message,
			Details: map[string]interface{}{"field": verr.Field},
		},
	})
}

func (h *Handler) respondEngineError(c *gin.Context, err error) {
	var verr *model.ValidationError
	if errors.As(err, &verr) {
		respondValidationError(c, verr)
		return
	}
	if h.log != nil {
		h.log.Errorw("conversion failed", "err", err)
	}
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "CONVERSION_ERROR",
			Message: err.Error(),
		},
	})
}
