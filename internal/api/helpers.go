package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/entity"
)

const (
	errMsgInternal     = "Internal error"
	errMsgUnauthorized = "Unauthorized"
	errMsgForbidden    = "Insufficient permissions"
	errMsgBadBody      = "Incorrect request body"
	errMsgNotFound     = "Not found"
)

type ResponseError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func SendErr(ctx context.Context, w http.ResponseWriter, code int, err error, msg string) {
	slog.ErrorContext(ctx, "api error", "error", err, "code", code)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err = json.NewEncoder(w).Encode(ResponseError{Message: msg, Error: err.Error()})
	if err != nil {
		slog.ErrorContext(ctx, "api error", "error", err, "code", http.StatusInternalServerError)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func SendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "")
		return
	}
}

//nolint:funlen
func handleServiceErr(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		SendErr(ctx, w, http.StatusNotFound, err, errMsgNotFound)
	case errors.Is(err, entity.ErrForbidden):
		SendErr(ctx, w, http.StatusForbidden, err, errMsgForbidden)
	case errors.Is(err, entity.ErrUnauthorizedDomain):
		SendErr(ctx, w, http.StatusForbidden, err, "Email domain is not allowed")
	case errors.Is(err, entity.ErrUnauthorized),
		errors.Is(err, entity.ErrInvalidToken),
		errors.Is(err, entity.ErrTokenExpired),
		errors.Is(err, entity.ErrInvalidCredentials):
		SendErr(ctx, w, http.StatusUnauthorized, err, errMsgUnauthorized)
	case errors.Is(err, entity.ErrAlreadyExists):
		SendErr(ctx, w, http.StatusConflict, err, "Already exists")
	case errors.Is(err, entity.ErrDraftSubmitted):
		SendErr(ctx, w, http.StatusConflict, err, "Application already submitted")
	case errors.Is(err, entity.ErrRoleAlreadySet):
		SendErr(ctx, w, http.StatusConflict, err, "Role already assigned")
	case errors.Is(err, entity.ErrStatusImmutable):
		SendErr(ctx, w, http.StatusConflict, err, "Status can no longer be changed")
	case errors.Is(err, entity.ErrStepIncomplete),
		errors.Is(err, entity.ErrNotLastStep),
		errors.Is(err, entity.ErrMissingRequiredField),
		errors.Is(err, entity.ErrInvalidEmail),
		errors.Is(err, entity.ErrInvalidNIN),
		errors.Is(err, entity.ErrInvalidCAC),
		errors.Is(err, entity.ErrInvalidTIN),
		errors.Is(err, entity.ErrIncorrectRequestBody):
		SendErr(ctx, w, http.StatusUnprocessableEntity, err, err.Error())
	default:
		SendErr(ctx, w, http.StatusInternalServerError, err, errMsgInternal)
	}
}

func extractTokenFromHeader(r *http.Request) string {
	const bearerParts = 2

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", bearerParts)
	if len(parts) != bearerParts || strings.ToLower(parts[0]) != "bearer" {
		return ""
	}

	return parts[1]
}

func parsePageParams(r *http.Request) (page, limit uint64) {
	q := r.URL.Query()

	page, _ = strconv.ParseUint(q.Get("page"), 10, 64)
	limit, _ = strconv.ParseUint(q.Get("limit"), 10, 64)

	return page, limit
}
