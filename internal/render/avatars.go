package render

import "encoding/base64"

const defaultUserSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100" width="40" height="40"><circle cx="50" cy="50" r="45" fill="#4A90E2"/><text x="50" y="65" font-size="40" fill="#FFFFFF" text-anchor="middle">U</text></svg>`

const defaultAssistantSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100" width="40" height="40"><circle cx="50" cy="50" r="45" fill="#50E3C2"/><text x="50" y="65" font-size="40" fill="#000000" text-anchor="middle">A</text></svg>`

// Avatars holds the data-URI image references embedded next to each turn.
// The renderer treats them as opaque strings; the fallbacks are always
// available for unrecognized roles.
type Avatars struct {
	User              string
	Assistant         string
	FallbackUser      string
	FallbackAssistant string
}

// NewAvatars builds the avatar set. Empty overrides select the built-in SVGs.
func NewAvatars(userSVG, assistantSVG string) Avatars {
	if userSVG == "" {
		userSVG = defaultUserSVG
	}
	if assistantSVG == "" {
		assistantSVG = defaultAssistantSVG
	}
	return Avatars{
		User:              svgDataURI(userSVG),
		Assistant:         svgDataURI(assistantSVG),
		FallbackUser:      svgDataURI(defaultUserSVG),
		FallbackAssistant: svgDataURI(defaultAssistantSVG),
	}
}

// For returns the image reference for a role, falling back to the user
// avatar for roles the toolkit does not recognize.
func (a Avatars) For(role string) string {
	switch role {
	case "user":
		return a.User
	case "assistant":
		return a.Assistant
	}
	return a.FallbackUser
}

func svgDataURI(svg string) string {
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg))
}
