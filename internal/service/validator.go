package service

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/entity"
)

const (
	EmailMaxLen = 255
	NINLen      = 11
	CACMinLen   = 4
	TINMinLen   = 8
)

var (
	emailRegexp  = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	digitsRegexp = regexp.MustCompile(`^[0-9]+$`)
)

func ValidateEmail(email string) error {
	if len(email) > EmailMaxLen {
		return entity.ErrInvalidEmail
	}

	if !emailRegexp.MatchString(email) {
		return entity.ErrInvalidEmail
	}

	if strings.Contains(email, "..") {
		return entity.ErrInvalidEmail
	}

	return nil
}

// ValidateNIN accepts exactly eleven digits, the NIMC format.
func ValidateNIN(nin string) error {
	if len(nin) != NINLen || !digitsRegexp.MatchString(nin) {
		return entity.ErrInvalidNIN
	}

	return nil
}

func ValidateCAC(cac string) error {
	if len(strings.TrimSpace(cac)) < CACMinLen {
		return entity.ErrInvalidCAC
	}

	return nil
}

func ValidateTIN(tin string) error {
	if len(strings.TrimSpace(tin)) < TINMinLen {
		return entity.ErrInvalidTIN
	}

	return nil
}

func NormalizeEmail(email string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))

	err := ValidateEmail(normalized)
	if err != nil {
		return "", err
	}

	return normalized, nil
}

func requireFields(fields map[string]string) error {
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: %s", entity.ErrMissingRequiredField, name)
		}
	}

	return nil
}
