package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/staffdb/internal/employees/service"
	"github.com/aussiebroadwan/staffdb/pkg/httpx"
	"github.com/aussiebroadwan/staffdb/pkg/slogx"
	"github.com/aussiebroadwan/staffdb/pkg/staffsdk"
)

// TokenHandler serves POST /token.
type TokenHandler struct {
	TokenService *service.TokenService
}

// ServeHTTP godoc
//
//	@Summary		Log In
//	@Description	Exchanges the operator credentials for a bearer access token.
//	@Tags			Auth
//	@Accept			application/x-www-form-urlencoded
//	@Produce		json
//	@Param			username	formData	string					true	"Operator username"
//	@Param			password	formData	string					true	"Operator password"
//	@Success		200			{object}	staffsdk.TokenResponse	"access_token, token_type, expires_in"
//	@Failure		400			{object}	staffsdk.ErrorResponse	"error, error_description"
//	@Failure		401			{object}	staffsdk.ErrorResponse	"error, error_description"
//	@Failure		429			{object}	staffsdk.ErrorResponse	"error, error_description"
//	@Failure		500			{object}	staffsdk.ErrorResponse	"error, error_description"
//	@Header			200			{string}	Cache-Control			"no-store"
//	@Router			/token [post].
func (h *TokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if ct := r.Header.Get("Content-Type"); ct != "" &&
		!strings.HasPrefix(ct, "application/x-www-form-urlencoded") &&
		!strings.HasPrefix(ct, "multipart/form-data") {
		staffsdk.NewAPIError(http.StatusBadRequest, staffsdk.ErrorCodeInvalidRequest,
			"content-type must be application/x-www-form-urlencoded").WriteError(w)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		staffsdk.NewAPIError(http.StatusBadRequest, staffsdk.ErrorCodeInvalidRequest,
			"invalid form body").WriteError(w)
		return
	}

	username := r.PostForm.Get("username")
	password := r.PostForm.Get("password")
	if username == "" || password == "" {
		writeError(w, r, fieldError("username", "required", "username and password are required"))
		return
	}

	token, err := h.TokenService.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			w.Header().Set("WWW-Authenticate", "Bearer")
			staffsdk.ErrInvalidCredentials.WriteError(w)
			return
		}
		log.Error("login failed", "err", err)
		staffsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, staffsdk.TokenResponse{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
		ExpiresIn:   int(token.ExpiresIn),
	})
}
