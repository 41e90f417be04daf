package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Abhay12911/collaborative-draw-app/domain"
)

var (
	ErrMissingTokenStr          = "missing-token"
	ErrExpiredTokenStr          = "expired-token"
	ErrServerTimeoutStr         = "server-timeout"
	ErrInvalidRequestFormatStr  = "bad-request-format"
	ErrInvalidCredentialsStr    = "invalid-credentials"
	ErrUnknownStr               = "unknown-error"
	ErrUsernameAlreadyExistsStr = "username-already-exists"
	ErrWeakPasswordStr          = "weak-password"
	ErrPasswordTooLongStr       = "password-too-long"
	ErrInvalidUsernameFormatStr = "invalid-username-format"
)

type Handler struct {
	authService *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// RequireAuthMiddleware reads a bearer token from the Authorization header
// and stores the authenticated user id under "userId" in the gin context.
func (ah *Handler) RequireAuthMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if token == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrMissingTokenStr})
			return
		}

		id, err := ah.authService.VerifyToken(token)
		if err != nil {
			log.Warn().Err(err).Str("ip", ctx.ClientIP()).Msg("rejected token")
			switch {
			case errors.Is(err, domain.ErrExpiredToken):
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrExpiredTokenStr})
			default:
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrInvalidCredentialsStr})
			}
			return
		}

		ctx.Set("userId", id)
		ctx.Next()
	}
}

func (ah *Handler) SignupHandler(ctx *gin.Context) {
	var signupCredentials struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := ctx.ShouldBindJSON(&signupCredentials); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": ErrInvalidRequestFormatStr})
		return
	}

	reqCtx := ctx.Request.Context()

	token, err := ah.authService.Signup(reqCtx, signupCredentials.Username, signupCredentials.Password)

	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateUsername):
			ctx.JSON(http.StatusConflict, gin.H{"error": ErrUsernameAlreadyExistsStr})

		case errors.Is(err, ErrWeakPassword):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": ErrWeakPasswordStr})

		case errors.Is(err, ErrPasswordTooLong):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": ErrPasswordTooLongStr})

		case errors.Is(err, ErrInvalidUsernameFormat):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": ErrInvalidUsernameFormatStr})

		case errors.Is(err, context.DeadlineExceeded):
			ctx.JSON(http.StatusGatewayTimeout, gin.H{"error": ErrServerTimeoutStr})

		case errors.Is(err, context.Canceled):
			ctx.Status(499) // http code for "Client Closed Request"

		default:
			log.Error().Err(err).Msg("signup failed")
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": ErrUnknownStr})
		}
		ctx.Abort()
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"token": token})
}

func (ah *Handler) LoginHandler(ctx *gin.Context) {
	var loginCredentials struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := ctx.ShouldBindJSON(&loginCredentials); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": ErrInvalidRequestFormatStr})
		return
	}

	reqCtx := ctx.Request.Context()

	token, err := ah.authService.Login(reqCtx, loginCredentials.Username, loginCredentials.Password)

	if err != nil {
		switch {
		case errors.Is(err, ErrIncorrectPassword), errors.Is(err, domain.ErrUserNotFound):
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": ErrInvalidCredentialsStr})

		case errors.Is(err, context.DeadlineExceeded):
			ctx.JSON(http.StatusGatewayTimeout, gin.H{"error": ErrServerTimeoutStr})

		case errors.Is(err, context.Canceled):
			ctx.Status(499)

		default:
			log.Error().Err(err).Msg("login failed")
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": ErrUnknownStr})
		}
		ctx.Abort()
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"token": token})
}
