package service_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/entity"
	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/service"
)

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name  string
		email string
		ok    bool
	}{
		{name: "plain", email: "ada@example.com", ok: true},
		{name: "subdomain", email: "ada@mail.example.co", ok: true},
		{name: "plus tag", email: "ada+jobs@example.com", ok: true},
		{name: "missing at", email: "ada.example.com", ok: false},
		{name: "missing tld", email: "ada@example", ok: false},
		{name: "double dot", email: "ada..lovelace@example.com", ok: false},
		{name: "empty", email: "", ok: false},
		{name: "too long", email: strings.Repeat("a", 250) + "@example.com", ok: false},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := service.ValidateEmail(tt.email)
			if tt.ok {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, entity.ErrInvalidEmail)
			}
		})
	}
}

func TestValidateNIN(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name string
		nin  string
		ok   bool
	}{
		{name: "eleven digits", nin: "12345678901", ok: true},
		{name: "ten digits", nin: "1234567890", ok: false},
		{name: "twelve digits", nin: "123456789012", ok: false},
		{name: "letters", nin: "1234567890a", ok: false},
		{name: "empty", nin: "", ok: false},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := service.ValidateNIN(tt.nin)
			if tt.ok {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, entity.ErrInvalidNIN)
			}
		})
	}
}

func TestValidateCAC(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	r.NoError(service.ValidateCAC("RC123456"))
	r.NoError(service.ValidateCAC("1234"))
	r.ErrorIs(service.ValidateCAC("RC"), entity.ErrInvalidCAC)
	r.ErrorIs(service.ValidateCAC("   "), entity.ErrInvalidCAC)
}

func TestValidateTIN(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	r.NoError(service.ValidateTIN("12345678"))
	r.NoError(service.ValidateTIN("12345678-0001"))
	r.ErrorIs(service.ValidateTIN("1234567"), entity.ErrInvalidTIN)
}

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	got, err := service.NormalizeEmail("  Ada@Example.COM ")
	r.NoError(err)
	r.Equal("ada@example.com", got)

	_, err = service.NormalizeEmail("not-an-email")
	r.ErrorIs(err, entity.ErrInvalidEmail)
}
