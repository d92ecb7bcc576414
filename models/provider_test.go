package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProviderUpdate_IsEmpty(t *testing.T) {
	available := false
	empty := []string{}

	assert.True(t, ProviderUpdate{}.IsEmpty())
	assert.False(t, ProviderUpdate{IsAvailable: &available}.IsEmpty())
	assert.False(t, ProviderUpdate{Specialties: &empty}.IsEmpty())
}
