// Package pageassist applies small usability affordances to rendered pages:
// focusing the first form control, asking for confirmation before marked
// actions, and auto-hiding a success banner. Every affordance is best-effort;
// a page missing the expected elements renders exactly as it would without
// this package.
//
// The package works on parsed trees from golang.org/x/net/html. Apply marks a
// tree once, server-side; the embedded mapgen-pageassist.js runtime performs
// the same behaviors in the browser, driven by the attributes Apply writes.
package pageassist

import (
	"strconv"

	"golang.org/x/net/html"
)

// Attributes written by Apply and consumed by the browser runtime.
const (
	// RootAttr marks the element the runtime reads its configuration from.
	RootAttr = "data-pageassist"
	// PromptAttr carries the fallback confirmation prompt.
	PromptAttr = "data-pageassist-prompt"
	// ConfirmAttrAttr names the confirmation marker attribute in use.
	ConfirmAttrAttr = "data-pageassist-confirm"
	// HiddenClassAttr names the class the runtime adds to hide the banner.
	HiddenClassAttr = "data-pageassist-hidden"
	// AutoHideAttr carries the banner delay in milliseconds.
	AutoHideAttr = "data-pageassist-autohide"
)

// Confirmer answers a confirmation prompt. The browser runtime uses the
// native blocking dialog; tests substitute canned answers.
type Confirmer func(prompt string) bool

// Assist applies the affordances configured by Options.
type Assist struct {
	opts Options
}

// New returns an Assist with fns applied over the default options.
func New(fns ...OptionFn) *Assist {
	return &Assist{opts: NewOptions(fns...)}
}

// Options returns the resolved configuration.
func (a *Assist) Options() Options {
	return a.opts
}

// Apply performs the one-shot page initialization on root: it marks the
// first form control for focus, stamps the runtime configuration on the
// document body, and tags a visible success banner with its auto-hide delay.
// Missing pieces are skipped silently; a nil root is a no-op.
func (a *Assist) Apply(root *html.Node) {
	if root == nil {
		return
	}

	a.Autofocus(root)

	if host := configHost(root); host != nil {
		setAttr(host, RootAttr, "")
		setAttr(host, ConfirmAttrAttr, a.opts.ConfirmAttr)
		setAttr(host, PromptAttr, a.opts.ConfirmPrompt)
		setAttr(host, HiddenClassAttr, a.opts.HiddenClass)
	}

	if banner := elementByID(root, a.opts.BannerID); banner != nil && !hasClass(banner, a.opts.HiddenClass) {
		setAttr(banner, AutoHideAttr, strconv.FormatInt(a.opts.AutoHideDelay.Milliseconds(), 10))
	}
}

// Autofocus finds the first input, select, or textarea inside a form, in
// document order, and marks it with the autofocus attribute. It returns the
// marked node, or nil when no such control exists. Whether focus actually
// lands is up to the browser; a control it cannot focus degrades silently.
func (a *Assist) Autofocus(root *html.Node) *html.Node {
	control := findFirst(root, func(n *html.Node) bool {
		if !isElement(n, "input") && !isElement(n, "select") && !isElement(n, "textarea") {
			return false
		}
		return hasAncestor(n, "form")
	})
	if control == nil {
		return nil
	}
	setAttr(control, "autofocus", "")
	return control
}

// PromptFor resolves the confirmation prompt for a clicked node by examining
// the node and its ancestors for the confirmation attribute. The nearest
// declaration wins; an empty attribute value falls back to the configured
// prompt. ok is false when no ancestor declares the capability.
func (a *Assist) PromptFor(n *html.Node) (prompt string, ok bool) {
	for p := n; p != nil; p = p.Parent {
		if p.Type != html.ElementNode {
			continue
		}
		if raw, found := attrValue(p, a.opts.ConfirmAttr); found {
			if raw == "" {
				return a.opts.ConfirmPrompt, true
			}
			return raw, true
		}
	}
	return "", false
}

// Allow decides whether a click on n may proceed. Nodes outside any
// confirmation scope always proceed; otherwise the confirmer is asked and a
// decline suppresses the action (the browser runtime additionally stops the
// event from propagating).
func (a *Assist) Allow(n *html.Node, confirm Confirmer) bool {
	prompt, ok := a.PromptFor(n)
	if !ok {
		return true
	}
	if confirm == nil {
		return true
	}
	return confirm(prompt)
}

// ScheduleHide arms the one-shot banner timer: after the configured delay the
// element gains the hidden class. It reports whether a hide was scheduled;
// nil elements and elements already hidden at schedule time are left alone.
// The timer is fire-and-forget; it is not cancelled or reset by later content
// changes.
func (a *Assist) ScheduleHide(el *html.Node) bool {
	if el == nil || hasClass(el, a.opts.HiddenClass) {
		return false
	}
	a.opts.AfterFunc(a.opts.AutoHideDelay, func() {
		addClass(el, a.opts.HiddenClass)
	})
	return true
}

// configHost picks the element Apply stamps the runtime configuration on:
// the body when present, otherwise the first element in the tree.
func configHost(root *html.Node) *html.Node {
	if body := findFirst(root, func(n *html.Node) bool { return isElement(n, "body") }); body != nil {
		return body
	}
	return findFirst(root, func(*html.Node) bool { return true })
}
