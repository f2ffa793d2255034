package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"microwave-converter/internal/api/models"
	"microwave-converter/internal/model"
)

// formView is the data rendered into index.html.
type formView struct {
	Wattages  []int
	Durations []model.Duration
	Values    map[string]string
	Errors    map[string]string
	Result    *models.ConvertResponse
}

func (h *Handler) newFormView() formView {
	return formView{
		Wattages:  h.presets.Wattages,
		Durations: h.presets.Durations,
		Values:    map[string]string{},
		Errors:    map[string]string{},
	}
}

// formIndex handles GET /
func (h *Handler) formIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", h.newFormView())
}

// formConvert handles POST /convert. It re-renders the form with
// field-level errors and echoed values, or with the result on success.
func (h *Handler) formConvert(c *gin.Context) {
	view := h.newFormView()
	view.Values = map[string]string{
		model.FieldOriginalWattage: strings.TrimSpace(c.PostForm(model.FieldOriginalWattage)),
		model.FieldTargetWattage:   strings.TrimSpace(c.PostForm(model.FieldTargetWattage)),
		model.FieldOriginalMinutes: strings.TrimSpace(c.PostForm(model.FieldOriginalMinutes)),
		model.FieldOriginalSeconds: strings.TrimSpace(c.PostForm(model.FieldOriginalSeconds)),
	}

	var req model.ConversionRequest
	fields := []struct {
		name     string
		optional bool
		dst      *int
	}{
		{model.FieldOriginalWattage, false, &req.OriginalWattage},
		{model.FieldTargetWattage, false, &req.TargetWattage},
		{model.FieldOriginalMinutes, false, &req.OriginalMinutes},
		{model.FieldOriginalSeconds, true, &req.OriginalSeconds},
	}
	for _, f := range fields {
		raw := view.Values[f.name]
		if raw == "" {
			if !f.optional {
				view.Errors[f.name] = f.name + " is required"
			}
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			view.Errors[f.name] = f.name + " must be a whole number"
			continue
		}
		*f.dst = n
	}
	if len(view.Errors) > 0 {
		c.HTML(http.StatusBadRequest, "index.html", view)
		return
	}

	result, err := h.engine.Convert(req)
	if err != nil {
		var verr *model.ValidationError
		if errors.As(err, &verr) {
			view.Errors[verr.Field] = verr.Message
			c.HTML(http.StatusBadRequest, "index.html", view)
			return
		}
		if h.log != nil {
			h.log.Errorw("form conversion failed", "err", err)
		}
		view.Errors[model.FieldOriginalTime] = "Conversion failed. Please try again."
		c.HTML(http.StatusInternalServerError, "index.html", view)
		return
	}

	resp := newConvertResponse(result)
	view.Result = &resp
	c.HTML(http.StatusOK, "index.html", view)
}
