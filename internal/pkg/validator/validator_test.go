package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("a"))
	assert.False(t, IsEmpty(" a "))
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last@sub.domain.co",
		"user+tag@example.io",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@example.com",
		"user@",
		"user@domain",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2026-03-16")
	assert.True(t, ok)

	for _, s := range []string{"16-03-2026", "2026/03/16", "2026-13-01", "not a date", ""} {
		_, ok := IsValidDate(s)
		assert.False(t, ok, s)
	}
}

func TestIsValidClock(t *testing.T) {
	start, ok := IsValidClock("08:30")
	assert.True(t, ok)
	assert.Equal(t, 8, start.Hour())
	assert.Equal(t, 30, start.Minute())

	_, ok = IsValidClock("23:59")
	assert.True(t, ok)

	for _, s := range []string{"8:30:00", "24:00", "08:60", "morning", ""} {
		_, ok := IsValidClock(s)
		assert.False(t, ok, s)
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	valid := []string{
		"0901234567",
		"0907654321",
		"0351234567",
		"+841234567890",
		"081234567890",
		"0812-3456-7890",
		"090 1234 567",
	}
	for _, phone := range valid {
		assert.True(t, IsValidPhoneNumber(phone), phone)
	}

	invalid := []string{
		"",
		"12345",
		"0901234",
		"0812345678901234567",
		"0812abc34567",
		"+84-12-34",
	}
	for _, phone := range invalid {
		assert.False(t, IsValidPhoneNumber(phone), phone)
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "name is required"},
		{Field: "email", Message: "invalid email format"},
	}

	assert.Equal(t, "name: name is required; email: invalid email format", errs.Error())
	assert.Equal(t, map[string]string{
		"name":  "name is required",
		"email": "invalid email format",
	}, errs.ToMap())
}
