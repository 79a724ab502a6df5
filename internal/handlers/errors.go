package handlers

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"

	"flux/internal/errors"
	"flux/internal/utils/response"
)

// domainError maps a business error kind to its transport status. This is
// the only place that mapping exists.
func domainError(c *fiber.Ctx, err error) error {
	switch {
	case stderrors.Is(err, errors.ErrUserNotFound),
		stderrors.Is(err, errors.ErrWalletMissing):
		return response.Error(c, fiber.StatusNotFound, err.Error())
	case stderrors.Is(err, errors.ErrAuthorizationDenied):
		return response.Error(c, fiber.StatusForbidden, err.Error())
	case stderrors.Is(err, errors.ErrInvalidCredentials):
		return response.Error(c, fiber.StatusUnauthorized, err.Error())
	case stderrors.Is(err, errors.ErrEmailTaken),
		stderrors.Is(err, errors.ErrDocumentTaken):
		return response.Error(c, fiber.StatusConflict, err.Error())
	case stderrors.Is(err, errors.ErrPersistenceFailure):
		return response.ServerError(c, errors.ErrPersistenceFailure.Message)
	}

	var domain *errors.DomainError
	if stderrors.As(err, &domain) {
		return response.Error(c, fiber.StatusUnprocessableEntity, domain.Message)
	}
	var insufficient *errors.InsufficientBalanceError
	if stderrors.As(err, &insufficient) {
		return response.Error(c, fiber.StatusUnprocessableEntity, insufficient.Error())
	}
	return response.ServerError(c, "internal server error")
}
