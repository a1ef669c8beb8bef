package apimodels

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	apperrors "tpo-portal-backend/lib/utils/app-errors"
)

type Response struct {
	Status  string      `json:"status"`            // fail/success
	Message string      `json:"message,omitempty"` // error message
	Data    interface{} `json:"data,omitempty"`
}

type ScrollerResponse struct {
	Response
	RowCount int64       `json:"row_count,omitempty"` // total rows matching the filter
	Stats    interface{} `json:"stats,omitempty"`     // aggregates over the filtered set
}

func NewError(message string) Response {
	return Response{
		Status:  "fail",
		Message: message,
	}
}

func NewResponse(data interface{}) Response {
	return Response{
		Status: "success",
		Data:   data,
	}
}

type Pagination struct {
	Limit int `json:"limit" validate:"gte=0"` // rows per page
	Page  int `json:"page" validate:"gte=0"`  // page number (1,2,3..)
}

func (r Pagination) Validate() error {
	return ValidateStruct(r)
}

func (r Pagination) GetPage() (page, limit int) {
	page = 1
	limit = 10
	if r.Page > 0 {
		page = r.Page
	}
	if r.Limit > 0 {
		limit = r.Limit
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

// Bounds returns the slice window of a page over total rows
func (r Pagination) Bounds(total int) (from, to int) {
	page, limit := r.GetPage()
	from = (page - 1) * limit
	if from > total {
		from = total
	}
	to = from + limit
	if to > total {
		to = total
	}
	return from, to
}

func NewScrollerResponse(data interface{}, rowCount int64) ScrollerResponse {
	return ScrollerResponse{
		Response: Response{
			Status: "success",
			Data:   data,
		},
		RowCount: rowCount,
	}
}

func NewStatsScrollerResponse(data interface{}, rowCount int64, stats interface{}) ScrollerResponse {
	result := NewScrollerResponse(data, rowCount)
	result.Stats = stats
	return result
}

var validate = validator.New()

// ValidateStruct runs the validate tags and reports the first broken rule as a validation error
func ValidateStruct(value interface{}) error {
	err := validate.Struct(value)
	if err == nil {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return apperrors.Validation(err.Error())
	}
	fieldErr := validationErrors[0]
	field := strings.ToLower(fieldErr.Field())
	if fieldErr.Param() != "" {
		return apperrors.Validation(fmt.Sprintf("field %s failed rule %s=%s", field, fieldErr.Tag(), fieldErr.Param()))
	}
	return apperrors.Validation(fmt.Sprintf("field %s failed rule %s", field, fieldErr.Tag()))
}
