package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	apperrors "tpo-portal-backend/lib/utils/app-errors"
	"tpo-portal-backend/middleware"
	apimodels "tpo-portal-backend/models/api"
)

type BaseAPIController struct{}

// BodyParser leaves out untouched for an empty body
func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if len(ctx.Body()) == 0 {
		return nil
	}
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("failed to parse request body")
		return errors.New("failed to read data from request")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	return c.GetIDByKey(ctx, "id")
}

func (c *BaseAPIController) GetIDByKey(ctx *fiber.Ctx, key string) (string, error) {
	id := ctx.Params(key)
	if id == "" {
		return "", errors.Errorf("%s is not set", key)
	}
	if _, err := uuid.Parse(id); err != nil {
		return "", errors.Errorf("%s is not a valid uuid", key)
	}
	return id, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	return log.
		WithField("user_id", middleware.GetUserID(ctx)).
		WithField("user_role", middleware.GetUserRole(ctx)).
		WithField("method", ctx.Method()).
		WithField("path", ctx.Path())
}

// SendError answers with the status of the error kind; faults without a kind are logged as 500
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, msg string) error {
	status := ErrorStatus(err)
	if status == fiber.StatusInternalServerError {
		logger.WithError(err).Error(msg)
		return ctx.Status(status).JSON(apimodels.NewError(msg))
	}
	return ctx.Status(status).JSON(apimodels.NewError(err.Error()))
}

func ErrorStatus(err error) int {
	switch apperrors.KindOf(err) {
	case apperrors.KindNotFound:
		return fiber.StatusNotFound
	case apperrors.KindPermissionDenied:
		return fiber.StatusForbidden
	case apperrors.KindValidation:
		return fiber.StatusBadRequest
	case apperrors.KindPreconditionFailed:
		return fiber.StatusPreconditionFailed
	}
	return fiber.StatusInternalServerError
}
