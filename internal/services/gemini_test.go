package services

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncateUTF8(t *testing.T) {
	assert.Equal(t, "short", truncateUTF8("short", 10))
	assert.Equal(t, "abc", truncateUTF8("abcdef", 3))

	// each Cyrillic letter is two bytes
	assert.Equal(t, "ин", truncateUTF8("инженерия", 5))
	assert.Equal(t, "инж", truncateUTF8("инженерия", 6))

	long := strings.Repeat("программирование ", 5000)
	cut := truncateUTF8(long, maxEmbedChars)
	assert.LessOrEqual(t, len(cut), maxEmbedChars)
	assert.True(t, utf8.ValidString(cut))
}
