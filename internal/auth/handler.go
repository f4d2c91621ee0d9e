package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/eventgallery/service/internal/response"
)

// Handler holds HTTP handlers for auth endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new auth Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type loginRequest struct {
	Username string `json:"username" example:"admin"`
	Password string `json:"password" example:"hunter2"`
}

type changePasswordRequest struct {
	OldPassword     string `json:"oldPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// VerifyLogin godoc
//
//	@Summary		Verify admin credentials
//	@Description	Compares the submitted username and password against the configured admin credentials. Accepts JSON or form-encoded bodies. Stateless: no session or token is issued.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		loginRequest	true	"Credentials"
//	@Success		200		{object}	response.Verdict
//	@Failure		401		{object}	response.Verdict
//	@Router			/login/verify [post]
func (h *Handler) VerifyLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.JSON(w, http.StatusUnauthorized, response.Verdict{Success: false, Message: "Invalid username or password"})
			return
		}
	} else {
		req.Username = r.PostFormValue("username")
		req.Password = r.PostFormValue("password")
	}

	if !h.svc.VerifyCredentials(req.Username, req.Password) {
		response.JSON(w, http.StatusUnauthorized, response.Verdict{Success: false, Message: "Invalid username or password"})
		return
	}

	response.JSON(w, http.StatusOK, response.Verdict{Success: true, Message: "Login successful"})
}

// ChangePassword godoc
//
//	@Summary		Change admin password
//	@Description	Validates a password-change request. The configured password is never mutated, so a subsequent login still requires the old password.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		changePasswordRequest	true	"Old, new and confirmation passwords"
//	@Success		200		{object}	response.Message
//	@Failure		400		{object}	response.ErrorBody
//	@Router			/change-password [post]
func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	err := h.svc.ValidatePasswordChange(req.OldPassword, req.NewPassword, req.ConfirmPassword)
	switch {
	case errors.Is(err, ErrOldPasswordIncorrect):
		response.BadRequest(w, "Old password is incorrect")
	case errors.Is(err, ErrConfirmationMismatch):
		response.BadRequest(w, "Password confirmation does not match")
	case errors.Is(err, ErrPasswordTooShort):
		response.BadRequest(w, "New password must be at least 6 characters")
	case err != nil:
		response.BadRequest(w, "Invalid request")
	default:
		response.OK(w, "Password changed successfully")
	}
}
