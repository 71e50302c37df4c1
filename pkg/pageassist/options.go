package pageassist

import "time"

// Options configure the page affordances. All fields have working defaults;
// construct with NewOptions and the With* functions.
type Options struct {
	// ConfirmAttr is the attribute that marks an element (or a subtree) as
	// requiring confirmation before its click proceeds.
	ConfirmAttr string
	// ConfirmPrompt is the dialog text used when the attribute is present
	// but empty.
	ConfirmPrompt string
	// BannerID identifies the success status element that auto-hides.
	BannerID string
	// HiddenClass is the class that marks an element as hidden.
	HiddenClass string
	// AutoHideDelay is how long the success banner stays visible.
	AutoHideDelay time.Duration
	// AfterFunc schedules the one-shot hide. Defaults to time.AfterFunc;
	// tests substitute a manual trigger.
	AfterFunc func(d time.Duration, fn func()) *time.Timer
}

// OptionFn mutates Options.
type OptionFn func(*Options)

// DefaultOptions returns the stock configuration: data-confirm attributes, a
// Spanish confirmation prompt, the success-message banner hidden after eight
// seconds via the hidden class.
func DefaultOptions() Options {
	return Options{
		ConfirmAttr:   "data-confirm",
		ConfirmPrompt: "¿Estás seguro?",
		BannerID:      "success-message",
		HiddenClass:   "hidden",
		AutoHideDelay: 8 * time.Second,
		AfterFunc:     time.AfterFunc,
	}
}

// NewOptions applies fns over the defaults and normalizes the result.
func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.ConfirmAttr == "" {
		opts.ConfirmAttr = "data-confirm"
	}
	if opts.ConfirmPrompt == "" {
		opts.ConfirmPrompt = DefaultOptions().ConfirmPrompt
	}
	if opts.BannerID == "" {
		opts.BannerID = "success-message"
	}
	if opts.HiddenClass == "" {
		opts.HiddenClass = "hidden"
	}
	if opts.AutoHideDelay <= 0 {
		opts.AutoHideDelay = 8 * time.Second
	}
	if opts.AfterFunc == nil {
		opts.AfterFunc = time.AfterFunc
	}
	return opts
}

// WithConfirmAttr sets the confirmation marker attribute.
func WithConfirmAttr(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.ConfirmAttr = name
	}
}

// WithConfirmPrompt sets the fallback dialog text.
func WithConfirmPrompt(prompt string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.ConfirmPrompt = prompt
	}
}

// WithBannerID sets the id of the auto-hiding success element.
func WithBannerID(id string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.BannerID = id
	}
}

// WithHiddenClass sets the class that marks elements as hidden.
func WithHiddenClass(class string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.HiddenClass = class
	}
}

// WithAutoHideDelay sets how long the banner stays visible.
func WithAutoHideDelay(d time.Duration) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.AutoHideDelay = d
	}
}
