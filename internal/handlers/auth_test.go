package handlers

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomPassword(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 32; i++ {
		password, err := randomPassword()
		assert.NoError(t, err)
		assert.Len(t, password, 32)

		_, err = hex.DecodeString(password)
		assert.NoError(t, err)

		assert.False(t, seen[password], `placeholder credentials must not repeat`)
		seen[password] = true
	}
}
