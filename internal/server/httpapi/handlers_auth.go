package httpapi

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/server/otp"
)

// otpCode accepts the verification code as either a JSON string or a JSON
// number; the SPA's input field submits a number, which would otherwise
// lose leading zeros.
type otpCode string

func (c *otpCode) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		*c = otpCode(bytes.Trim(b, `"`))
		return nil
	}
	n, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid otp value")
	}
	*c = otpCode(fmt.Sprintf("%0*d", otp.CodeLength, n))
	return nil
}

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Gender   string `json:"gender"`
}

func (s *HTTPServer) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, "Missing required fields.", nil)
		return
	}

	err := s.users.Signup(r.Context(), req.Username, req.Email, req.Password, req.Gender)
	switch {
	case err == nil:
		writeJSON(w, http.StatusCreated, "User created", nil)
	case errors.Is(err, common.ErrorValidation):
		writeJSON(w, http.StatusBadRequest, "Missing required fields.", nil)
	case errors.Is(err, common.ErrorAlreadyExists):
		// generic on purpose: the response must not confirm which emails exist
		writeJSON(w, http.StatusBadRequest, "User already exist!", nil)
	default:
		s.logger.Error(r.Context(), "signup failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, "Internal server error", nil)
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *HTTPServer) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, "Invalid credentials", nil)
		return
	}

	result, err := s.users.Login(r.Context(), req.Email, req.Password)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, "Login Successful", result)
	case errors.Is(err, common.ErrInvalidCredentials):
		writeJSON(w, http.StatusBadRequest, "Invalid credentials", nil)
	default:
		s.logger.Error(r.Context(), "login failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, "Internal server error", nil)
	}
}

type verifyOtpRequest struct {
	Email string  `json:"email"`
	Otp   otpCode `json:"otp"`
}

func (s *HTTPServer) handleVerifyOtp(w http.ResponseWriter, r *http.Request) {
	var req verifyOtpRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, "Missing required fields.", nil)
		return
	}
	if req.Email == "" || req.Otp == "" {
		writeJSON(w, http.StatusBadRequest, "Missing required fields.", nil)
		return
	}

	err := s.users.VerifyOtp(r.Context(), req.Email, string(req.Otp))
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, "Account verified successfully", nil)
	case errors.Is(err, common.ErrorNotFound):
		writeJSON(w, http.StatusNotFound, "User not found!", nil)
	case errors.Is(err, common.ErrOtpInvalidOrExpired):
		writeJSON(w, http.StatusBadRequest, "Invalid or expired OTP!", nil)
	default:
		s.logger.Error(r.Context(), "otp verification failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, "Internal Server error", nil)
	}
}

type resendOtpRequest struct {
	Email string `json:"email"`
}

func (s *HTTPServer) handleResendOtp(w http.ResponseWriter, r *http.Request) {
	var req resendOtpRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, "Missing required fields.", nil)
		return
	}

	err := s.users.ResendOtp(r.Context(), req.Email)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, "New OTP sent", nil)
	case errors.Is(err, common.ErrorNotFound):
		writeJSON(w, http.StatusNotFound, "User not found", nil)
	default:
		s.logger.Error(r.Context(), "otp resend failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, "Server error", nil)
	}
}
