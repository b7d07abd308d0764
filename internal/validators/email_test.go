package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"anna@salon.pl",
		"admin@sub.example.com",
		"a.b+tag@example.co",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}

	invalid := []string{
		"",
		"anna",
		"@salon.pl",
		"anna@",
		"anna@salon",
		"anna@.pl",
		"anna@salon.",
		"anna kowalska@salon.pl",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}
