package bridge

import (
	"fmt"
	"net/url"

	"breathed/internal/models"
)

const (
	DeepLinkScheme = "breathein"
	deepLinkHost   = "overlay"
)

// BuildOverlayLink renders the intent used to resurface the app with
// overlay context: breathein://overlay?app_id=<id>&app_name=<name>.
func BuildOverlayLink(app models.AppInfo) string {
	q := url.Values{}
	q.Set("app_id", app.ID)
	q.Set("app_name", app.Name)
	return fmt.Sprintf("%s://%s?%s", DeepLinkScheme, deepLinkHost, q.Encode())
}

// ParseOverlayLink extracts the app from an overlay deep link.
func ParseOverlayLink(link string) (models.AppInfo, error) {
	u, err := url.Parse(link)
	if err != nil {
		return models.AppInfo{}, fmt.Errorf("invalid deep link: %w", err)
	}
	if u.Scheme != DeepLinkScheme || u.Host != deepLinkHost {
		return models.AppInfo{}, fmt.Errorf("not an overlay deep link: %s", link)
	}
	id := u.Query().Get("app_id")
	if id == "" {
		return models.AppInfo{}, fmt.Errorf("overlay deep link missing app_id: %s", link)
	}
	name := u.Query().Get("app_name")
	if name == "" {
		return models.SynthesizeAppInfo(id), nil
	}
	return models.AppInfo{ID: id, Name: name, Category: models.GuessCategory(id, name)}, nil
}
