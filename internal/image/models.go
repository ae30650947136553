// Package image talks to the A4F image-generation endpoint and holds the
// registry of image models the client can target.
package image

import "strings"

// Model is one entry of the image-model registry.
type Model struct {
	ID   string // backend identifier, e.g. "provider-4/imagen-4"
	Name string // display name users and the chat model refer to
}

// Models lists the available image backends. The order matters only for
// help/about text; Imagen 4 is the fixed fallback when a requested name
// cannot be resolved.
var Models = []Model{
	{ID: "provider-4/flux-schnell", Name: "Flux Schnell (Fast)"},
	{ID: "provider-4/flux-dev", Name: "Flux Dev"},
	{ID: "provider-4/sdxl-turbo", Name: "SDXL Turbo"},
	{ID: "provider-4/dall-e-3", Name: "DALL-E 3"},
	{ID: "provider-4/stable-diffusion-3", Name: "Stable Diffusion 3"},
	{ID: "provider-4/imagen-4", Name: "Imagen 4"},
}

// Default returns the fallback model.
func Default() Model {
	return Models[len(Models)-1]
}

// ByName resolves a model by case-insensitive exact display-name match.
func ByName(name string) (Model, bool) {
	for _, m := range Models {
		if strings.EqualFold(m.Name, strings.TrimSpace(name)) {
			return m, true
		}
	}
	return Model{}, false
}

// NameByID returns the display name for a model ID, falling back to the
// last path segment of the ID itself.
func NameByID(id string) string {
	for _, m := range Models {
		if m.ID == id {
			return m.Name
		}
	}
	if i := strings.LastIndex(id, "/"); i >= 0 {
		return id[i+1:]
	}
	return id
}

// Names returns all display names in registry order.
func Names() []string {
	names := make([]string, len(Models))
	for i, m := range Models {
		names[i] = m.Name
	}
	return names
}
