package validators

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsClinicEmail(t *testing.T) {
	validate := validator.New()
	require.NoError(t, Register(validate))

	valid := []string{
		"abc@gmail.com",
		"first.last+tag@mail.example.org",
		"a_b%c-d@sub-domain.co.uk",
		"UPPER@EXAMPLE.IO",
	}
	for _, email := range valid {
		assert.NoError(t, validate.Var(email, "clinicemail"), email)
	}

	invalid := []string{
		"",
		"abc",
		"abc@gmail",
		"abc@gmail.c",
		"abc@gmail.c0m",
		"a b@gmail.com",
		"abc@@gmail.com",
		"ábc@gmail.com",
	}
	for _, email := range invalid {
		assert.Error(t, validate.Var(email, "clinicemail"), email)
	}
}
