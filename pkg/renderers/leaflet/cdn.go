package leaflet

// Pinned Leaflet release served from the unpkg CDN. The integrity hashes
// match the published 1.9.4 artifacts. Deployments that cannot reach the CDN
// can point the emitted tags elsewhere through WithVendorAssets.
const (
	VendorVersion = "1.9.4"

	DefaultVendorStylesheetURL       = "https://unpkg.com/leaflet@1.9.4/dist/leaflet.css"
	DefaultVendorStylesheetIntegrity = "sha256-p4NxAoJBhIIN+hmNHrzRCf9tD/miZyoHS5obTRR9BMY="

	DefaultVendorScriptURL       = "https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"
	DefaultVendorScriptIntegrity = "sha256-20nQCchB9co0qIjJZRGuk2/Z9VM+kNiyxNV1lvTlZBo="
)

// VendorAssets describes where the Leaflet library itself is loaded from.
// Empty integrity values omit the attribute, which self-hosted copies need.
type VendorAssets struct {
	StylesheetURL       string
	StylesheetIntegrity string
	ScriptURL           string
	ScriptIntegrity     string
}

func defaultVendorAssets() VendorAssets {
	return VendorAssets{
		StylesheetURL:       DefaultVendorStylesheetURL,
		StylesheetIntegrity: DefaultVendorStylesheetIntegrity,
		ScriptURL:           DefaultVendorScriptURL,
		ScriptIntegrity:     DefaultVendorScriptIntegrity,
	}
}

func normalizeVendorAssets(assets VendorAssets) VendorAssets {
	result := defaultVendorAssets()
	if assets.StylesheetURL != "" {
		result.StylesheetURL = assets.StylesheetURL
		result.StylesheetIntegrity = assets.StylesheetIntegrity
	}
	if assets.ScriptURL != "" {
		result.ScriptURL = assets.ScriptURL
		result.ScriptIntegrity = assets.ScriptIntegrity
	}
	return result
}
