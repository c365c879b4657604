package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("john@example.com"))
	assert.True(t, ValidateEmail("a.b+c@sub.domain.vn"))

	assert.False(t, ValidateEmail("john"))
	assert.False(t, ValidateEmail("john@example"))
	assert.False(t, ValidateEmail("john doe@example.com"))
	assert.False(t, ValidateEmail(""))
}

func TestValidateRegistration(t *testing.T) {
	assert.NoError(t, ValidateRegistration("john@example.com", "secret1", "secret1"))

	assert.Error(t, ValidateRegistration("not-an-email", "secret1", "secret1"))
	assert.Error(t, ValidateRegistration("john@example.com", "abc", "abc"))
	assert.Error(t, ValidateRegistration("john@example.com", "secret1", "secret2"))
}

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("+84912345678"))
	assert.True(t, ValidatePhone("84 912 345 678"))

	assert.False(t, ValidatePhone("abc"))
	assert.False(t, ValidatePhone(""))
}
