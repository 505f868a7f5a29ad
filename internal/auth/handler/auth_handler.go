package handler

import (
	"errors"
	"log"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lumenchat/auth-service/internal/auth/dto"
	"github.com/lumenchat/auth-service/internal/auth/service"
	errs "github.com/lumenchat/auth-service/internal/errors"
)

var personNameRe = regexp.MustCompile(`^[a-zA-Z\s\-']+$`)

type AuthHandler struct {
	userService  *service.UserService
	tokenService service.TokenGenerator
	validate     *validator.Validate
}

func NewAuthHandler(userService *service.UserService, tokenService service.TokenGenerator) *AuthHandler {
	v := validator.New()
	// Name fields: letters, spaces, hyphens and apostrophes only.
	_ = v.RegisterValidation("person_name", func(fl validator.FieldLevel) bool {
		return personNameRe.MatchString(fl.Field().String())
	})

	return &AuthHandler{
		userService:  userService,
		tokenService: tokenService,
		validate:     v,
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid input")
	}
	if err := h.validate.Struct(input); err != nil {
		return validationFailed(c, validationFields(err))
	}

	user, err := h.userService.Register(c.Context(), input)
	if err != nil {
		var vErr *errs.ValidationError
		switch {
		case errors.As(err, &vErr):
			return validationFailed(c, vErr.Fields)
		case errors.Is(err, errs.ErrEmailAlreadyInUse):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		default:
			return internalError(c, "register", err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewUserOutput(user))
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid input")
	}
	if err := h.validate.Struct(input); err != nil {
		return validationFailed(c, validationFields(err))
	}

	input.IPAddress = c.IP()
	input.UserAgent = string(c.Request().Header.UserAgent())

	pair, err := h.userService.Login(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrAccountLocked):
			return c.Status(fiber.StatusLocked).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, errs.ErrInvalidCredentials), errors.Is(err, errs.ErrAccountDisabled):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		default:
			return internalError(c, "login", err)
		}
	}

	return c.Status(fiber.StatusOK).JSON(pair)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var input dto.RefreshInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid input")
	}
	if err := h.validate.Struct(input); err != nil {
		return validationFailed(c, validationFields(err))
	}

	input.IPAddress = c.IP()
	input.UserAgent = string(c.Request().Header.UserAgent())

	pair, err := h.userService.Refresh(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidToken), errors.Is(err, errs.ErrAccountDisabled):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		default:
			return internalError(c, "refresh", err)
		}
	}

	return c.Status(fiber.StatusOK).JSON(pair)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var input dto.LogoutInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid input")
	}
	if err := h.validate.Struct(input); err != nil {
		return validationFailed(c, validationFields(err))
	}

	if err := h.userService.Logout(c.Context(), input.RefreshToken); err != nil {
		if errors.Is(err, errs.ErrRefreshTokenNotFound) {
			return badRequest(c, "invalid refresh token")
		}
		return internalError(c, "logout", err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "successfully logged out"})
}

// ForgotPassword always acknowledges with the same body, whether or not the
// email exists. Internal failures are logged, never surfaced.
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var input dto.ForgotPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid input")
	}
	if err := h.validate.Struct(input); err != nil {
		return validationFailed(c, validationFields(err))
	}

	if err := h.userService.ForgotPassword(c.Context(), input.Email); err != nil {
		log.Printf("error: forgot-password: %v", err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "If your email is registered, you will receive a password reset link",
	})
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var input dto.ResetPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid input")
	}
	if err := h.validate.Struct(input); err != nil {
		return validationFailed(c, validationFields(err))
	}

	if err := h.userService.ResetPassword(c.Context(), input); err != nil {
		var vErr *errs.ValidationError
		switch {
		case errors.As(err, &vErr):
			return validationFailed(c, vErr.Fields)
		case errors.Is(err, errs.ErrInvalidToken), errors.Is(err, errs.ErrPasswordReused):
			return badRequest(c, err.Error())
		default:
			return internalError(c, "reset-password", err)
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "password reset successfully"})
}

func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	userID, ok := c.Locals(userIDKey).(int64)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "could not validate credentials"})
	}

	var input dto.ChangePasswordInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid input")
	}
	if err := h.validate.Struct(input); err != nil {
		return validationFailed(c, validationFields(err))
	}

	if err := h.userService.ChangePassword(c.Context(), userID, input); err != nil {
		var vErr *errs.ValidationError
		switch {
		case errors.As(err, &vErr):
			return validationFailed(c, vErr.Fields)
		case errors.Is(err, errs.ErrWrongPassword),
			errors.Is(err, errs.ErrSamePassword),
			errors.Is(err, errs.ErrPasswordReused):
			return badRequest(c, err.Error())
		default:
			return internalError(c, "change-password", err)
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "password changed successfully"})
}

func (h *AuthHandler) VerifyEmail(c *fiber.Ctx) error {
	var input dto.VerifyEmailInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid input")
	}
	if err := h.validate.Struct(input); err != nil {
		return validationFailed(c, validationFields(err))
	}

	if err := h.userService.VerifyEmail(c.Context(), input.Token); err != nil {
		if errors.Is(err, errs.ErrInvalidToken) {
			return badRequest(c, err.Error())
		}
		return internalError(c, "verify-email", err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "email verified successfully"})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, ok := c.Locals(userIDKey).(int64)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "could not validate credentials"})
	}

	user, err := h.userService.GetByID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidToken) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "could not validate credentials"})
		}
		return internalError(c, "me", err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewUserOutput(user))
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}

func validationFailed(c *fiber.Ctx, fields map[string][]string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"error":  "validation failed",
		"fields": fields,
	})
}

// internalError logs the full error and returns an opaque failure to the
// caller.
func internalError(c *fiber.Ctx, op string, err error) error {
	log.Printf("error: %s: %v", op, err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
}

// validationFields converts validator violations into field-scoped messages.
func validationFields(err error) map[string][]string {
	fields := make(map[string][]string)

	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		fields["body"] = []string{"invalid input"}
		return fields
	}
	for _, fe := range vErrs {
		field := strings.ToLower(fe.Field())
		fields[field] = append(fields[field], "failed on the '"+fe.Tag()+"' rule")
	}
	return fields
}
