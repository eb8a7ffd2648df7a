package bridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"breathed/internal/models"
)

func TestDeepLink_RoundTrip(t *testing.T) {
	app := models.AppInfo{ID: "com.instagram.android", Name: "Instagram", Category: "social"}

	link := BuildOverlayLink(app)
	assert.Contains(t, link, "breathein://overlay?")
	assert.Contains(t, link, "app_id=com.instagram.android")

	parsed, err := ParseOverlayLink(link)
	require.NoError(t, err)
	assert.Equal(t, app.ID, parsed.ID)
	assert.Equal(t, app.Name, parsed.Name)
}

func TestDeepLink_EncodesSpacesInNames(t *testing.T) {
	link := BuildOverlayLink(models.AppInfo{ID: "com.a", Name: "My Shiny App"})

	parsed, err := ParseOverlayLink(link)
	require.NoError(t, err)
	assert.Equal(t, "My Shiny App", parsed.Name)
}

func TestDeepLink_MissingNameSynthesized(t *testing.T) {
	parsed, err := ParseOverlayLink("breathein://overlay?app_id=com.example.coolapp")
	require.NoError(t, err)
	assert.Equal(t, "com.example.coolapp", parsed.ID)
	assert.Equal(t, "coolapp", parsed.Name)
}

func TestDeepLink_Rejections(t *testing.T) {
	_, err := ParseOverlayLink("https://overlay?app_id=x")
	assert.Error(t, err)

	_, err = ParseOverlayLink("breathein://settings?app_id=x")
	assert.Error(t, err)

	_, err = ParseOverlayLink("breathein://overlay?app_name=no-id")
	assert.Error(t, err)
}
