package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_ReadyToUse(t *testing.T) {
	client := NewHTTPClient()

	require.NotNil(t, client)
	require.NotNil(t, client.Client)
	assert.NotNil(t, client.R(), "embedded resty client must produce requests")
}

func TestNewHTTPClient_IndependentInstances(t *testing.T) {
	// Two adapters must not share connection pools or base URLs.
	first := NewHTTPClient().SetBaseURL("http://first.local")
	second := NewHTTPClient().SetBaseURL("http://second.local")

	assert.NotSame(t, first, second)
	assert.Equal(t, "http://first.local", first.BaseURL)
	assert.Equal(t, "http://second.local", second.BaseURL)
}
