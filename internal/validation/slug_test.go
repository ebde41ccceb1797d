package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Guitar", "guitar"},
		{"  Spanish Conversation  ", "spanish-conversation"},
		{"C++ Programming", "c-programming"},
		{"Déjà Vu!!", "d-j-vu"},
		{"---", ""},
		{"already-a-slug", "already-a-slug"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in), "Slugify(%q)", tc.in)
	}
}

func TestValidSlug(t *testing.T) {
	assert.True(t, ValidSlug("guitar"))
	assert.True(t, ValidSlug("spanish-conversation"))
	assert.False(t, ValidSlug(""))
	assert.False(t, ValidSlug("-leading"))
	assert.False(t, ValidSlug("trailing-"))
	assert.False(t, ValidSlug("Upper"))
	assert.False(t, ValidSlug("double--hyphen"))
}

func TestValidHandle(t *testing.T) {
	assert.True(t, ValidHandle("alice"))
	assert.True(t, ValidHandle("alice_b2"))
	assert.False(t, ValidHandle("ab"))
	assert.False(t, ValidHandle("9alice"))
	assert.False(t, ValidHandle("alice!"))
}
