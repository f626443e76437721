package bot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStampedName(t *testing.T) {
	name := stampedName("photo", "AgACAgIAAxk", ".jpg")

	assert.True(t, strings.HasPrefix(name, "photo_"))
	assert.True(t, strings.HasSuffix(name, "_AgACAgIAAxk.jpg"))
}

func TestTooLarge(t *testing.T) {
	b := &Bot{maxFileSize: 50 << 20}

	assert.False(t, b.tooLarge(50<<20))
	assert.True(t, b.tooLarge(50<<20+1))
	assert.False(t, b.tooLarge(0))
}
