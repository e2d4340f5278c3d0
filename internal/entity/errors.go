package entity

import "errors"

var (
	ErrIncorrectRequestBody = errors.New("incorrect request body")
	ErrAlreadyExists        = errors.New("already exists")
	ErrNotFound             = errors.New("not found")
	ErrForbidden            = errors.New("forbidden")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrUnauthorizedDomain   = errors.New("email domain is not authorized")
	ErrInvalidToken         = errors.New("invalid token")
	ErrTokenExpired         = errors.New("token expired")
	ErrInvalidCredentials   = errors.New("invalid credentials")

	ErrMissingRequiredField = errors.New("missing required field")
	ErrInvalidEmail         = errors.New("invalid email")
	ErrInvalidNIN           = errors.New("invalid national identification number")
	ErrInvalidCAC           = errors.New("invalid CAC number")
	ErrInvalidTIN           = errors.New("invalid TIN")

	ErrStepIncomplete  = errors.New("step requirements are not met")
	ErrNotLastStep     = errors.New("submit is only available from the last step")
	ErrDraftSubmitted  = errors.New("draft already submitted")
	ErrUploadFailed    = errors.New("attachment upload failed")
	ErrRoleAlreadySet  = errors.New("role already assigned")
	ErrStatusImmutable = errors.New("status can no longer be changed")
)
