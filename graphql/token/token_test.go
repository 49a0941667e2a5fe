package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosition(t *testing.T) {
	assert.Equal(t, "3:14", Position{Line: 3, Column: 14}.String())
	assert.Equal(t, "-", Position{}.String())
	assert.False(t, Position{}.IsValid())
}

func TestToken_IsIgnored(t *testing.T) {
	assert.True(t, COMMA.IsIgnored())
	assert.True(t, COMMENT.IsIgnored())
	assert.False(t, NAME.IsIgnored())
	assert.False(t, PUNCTUATOR.IsIgnored())
}
