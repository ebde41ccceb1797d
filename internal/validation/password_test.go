package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordStrength(t *testing.T) {
	assert.Empty(t, PasswordStrength("correct1horse"))
	assert.NotEmpty(t, PasswordStrength("short1"))
	assert.NotEmpty(t, PasswordStrength("allletters"))
	assert.NotEmpty(t, PasswordStrength("12345678"))
	assert.NotEmpty(t, PasswordStrength(strings.Repeat("a1", 40)))
}
