// Package sanitize cleans inline SVG markup before it is embedded in
// generated pages. Icon descriptors may come from configuration files, so
// their markup is never trusted as-is.
package sanitize

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	svgPolicyOnce sync.Once
	svgPolicy     *bluemonday.Policy
)

// SVG strips everything from raw except a small allowlist of SVG elements
// and presentation attributes. Script content, event handlers and foreign
// elements are removed. Returns "" when nothing safe remains.
func SVG(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(svgSanitizer().Sanitize(trimmed))
}

func svgSanitizer() *bluemonday.Policy {
	svgPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements(
			"svg", "g", "path", "circle", "rect", "line", "polyline", "polygon",
			"ellipse", "title", "desc", "defs", "use", "clipPath",
		)

		policy.AllowAttrs(
			"xmlns", "viewBox", "width", "height", "fill", "stroke",
			"stroke-width", "stroke-linecap", "stroke-linejoin", "aria-hidden",
			"role", "focusable", "class",
		).OnElements("svg")

		policy.AllowAttrs("href", "xlink:href", "clip-path").OnElements("use")

		for _, el := range []string{"path", "circle", "rect", "line", "polyline", "polygon", "ellipse"} {
			policy.AllowAttrs(
				"d", "cx", "cy", "r", "x", "y", "x1", "y1", "x2", "y2",
				"points", "rx", "ry", "fill", "fill-rule", "stroke",
				"stroke-width", "stroke-linecap", "stroke-linejoin",
				"transform", "class",
			).OnElements(el)
		}

		policy.AllowAttrs("id", "transform").OnElements("g")
		policy.AllowAttrs("id", "clipPathUnits").OnElements("clipPath")
		policy.AllowAttrs("id").OnElements("defs")

		svgPolicy = policy
	})
	return svgPolicy
}
