package gotemplate

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
	gotemplatepkg "github.com/goliatone/go-template"

	"github.com/goliatone/go-mapgen/pkg/render/template"
)

const defaultExtension = ".tpl"

// Option configures the engine during construction.
type Option func(*settings)

type settings struct {
	dir     string
	fsys    fs.FS
	ext     string
	funcs   map[string]any
	globals map[string]any
}

// WithBaseDir loads templates from a directory on disk.
func WithBaseDir(dir string) Option {
	return func(s *settings) {
		s.dir = strings.TrimSpace(dir)
	}
}

// WithFS loads templates from the given filesystem, typically an embed.FS.
func WithFS(fsys fs.FS) Option {
	return func(s *settings) {
		s.fsys = fsys
	}
}

// WithExtension changes the extension appended to template names that lack
// one. A leading dot is added when missing; empty values are ignored.
func WithExtension(ext string) Option {
	return func(s *settings) {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			return
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		s.ext = ext
	}
}

// WithTemplateFunc makes the named callables available to templates. Values
// implementing pongo2.FilterFunction register as filters; other functions
// land in the global context where expressions can call them.
func WithTemplateFunc(funcs map[string]any) Option {
	return func(s *settings) {
		if len(funcs) == 0 {
			return
		}
		if s.funcs == nil {
			s.funcs = make(map[string]any, len(funcs))
		}
		for name, fn := range funcs {
			s.funcs[strings.TrimSpace(name)] = fn
		}
	}
}

// WithGlobalData seeds values that every rendered template can read.
func WithGlobalData(data map[string]any) Option {
	return func(s *settings) {
		if len(data) == 0 {
			return
		}
		if s.globals == nil {
			s.globals = make(map[string]any, len(data))
		}
		for key, value := range data {
			s.globals[strings.TrimSpace(key)] = value
		}
	}
}

// WithGoTemplateOptions accepts go-template options for call sites written
// against the upstream engine. The pongo2 set covers those concerns here, so
// the options are accepted and ignored.
func WithGoTemplateOptions(_ ...gotemplatepkg.Option) Option {
	return func(*settings) {}
}

// Engine implements template.TemplateRenderer on top of a pongo2 template
// set. Parsed template files are cached per path; inline content is parsed
// on every call.
type Engine struct {
	mu sync.RWMutex

	set   *pongo2.TemplateSet
	cache map[string]*pongo2.Template
	ext   string
}

var _ template.TemplateRenderer = (*Engine)(nil)

// New builds an Engine from the supplied options. At least one template
// source, a base directory or an fs.FS, is required.
func New(options ...Option) (*Engine, error) {
	cfg := settings{ext: defaultExtension}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	loaders, err := cfg.loaders()
	if err != nil {
		return nil, err
	}
	if len(loaders) == 0 {
		return nil, errors.New("gotemplate: no template source configured, set a base dir or an fs.FS")
	}

	engine := &Engine{
		set:   pongo2.NewSet("mapgen", loaders...),
		cache: make(map[string]*pongo2.Template),
		ext:   cfg.ext,
	}
	registerBuiltinFilters()

	if err := engine.GlobalContext(cfg.globals); err != nil {
		return nil, fmt.Errorf("gotemplate: seed globals: %w", err)
	}
	for name, fn := range cfg.funcs {
		if err := engine.installFunc(name, fn); err != nil {
			return nil, fmt.Errorf("gotemplate: install template func %q: %w", name, err)
		}
	}

	return engine, nil
}

func (s settings) loaders() ([]pongo2.TemplateLoader, error) {
	var loaders []pongo2.TemplateLoader
	if s.dir != "" {
		local, err := pongo2.NewLocalFileSystemLoader(s.dir)
		if err != nil {
			return nil, fmt.Errorf("gotemplate: open template dir %q: %w", s.dir, err)
		}
		loaders = append(loaders, local)
	}
	if s.fsys != nil {
		loaders = append(loaders, pongo2.NewFSLoader(s.fsys))
	}
	return loaders, nil
}

// Render treats name as inline template content when it contains template
// syntax, and as a template file path otherwise.
func (e *Engine) Render(name string, data any, out ...io.Writer) (string, error) {
	if looksInline(name) {
		return e.RenderString(name, data, out...)
	}
	return e.RenderTemplate(name, data, out...)
}

// RenderTemplate renders the template file stored under name, appending the
// configured extension when name does not already carry it.
func (e *Engine) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	if err := e.ready(); err != nil {
		return "", err
	}

	path := name
	if !strings.HasSuffix(path, e.ext) {
		path += e.ext
	}
	tmpl, err := e.load(path)
	if err != nil {
		return "", err
	}
	return e.execute(tmpl, fmt.Sprintf("template %q", path), data, out)
}

// RenderString renders inline template content.
func (e *Engine) RenderString(content string, data any, out ...io.Writer) (string, error) {
	if err := e.ready(); err != nil {
		return "", err
	}

	tmpl, err := e.set.FromString(content)
	if err != nil {
		return "", fmt.Errorf("gotemplate: parse inline template: %w", err)
	}
	return e.execute(tmpl, "inline template", data, out)
}

// RegisterFilter exposes fn to templates as a pongo2 filter. Filter names
// are global to the process, so a name that already exists is rejected.
func (e *Engine) RegisterFilter(name string, fn func(input any, param any) (any, error)) error {
	if strings.TrimSpace(name) == "" || fn == nil {
		return errors.New("gotemplate: filter needs a name and a function")
	}
	if pongo2.FilterExists(name) {
		return fmt.Errorf("gotemplate: filter %q already registered", name)
	}

	wrapped := func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		var arg any
		if param != nil {
			arg = param.Interface()
		}
		result, err := fn(in.Interface(), arg)
		if err != nil {
			return nil, &pongo2.Error{Sender: "filter:" + name, OrigError: err}
		}
		return pongo2.AsValue(result), nil
	}
	return pongo2.RegisterFilter(name, wrapped)
}

// GlobalContext merges data into the globals every template sees. Nil data
// leaves the globals untouched.
func (e *Engine) GlobalContext(data any) error {
	if err := e.ready(); err != nil {
		return err
	}
	if data == nil {
		return nil
	}

	ctx, err := buildContext(data)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.set.Globals == nil {
		e.set.Globals = make(pongo2.Context)
	}
	e.set.Globals.Update(ctx)
	return nil
}

func (e *Engine) ready() error {
	if e == nil || e.set == nil {
		return errors.New("gotemplate: engine is not initialized")
	}
	return nil
}

// execute renders tmpl with the normalized data and tees the result into any
// extra writers. Template execution holds the read lock so global context
// updates cannot race a running render.
func (e *Engine) execute(tmpl *pongo2.Template, what string, data any, out []io.Writer) (string, error) {
	viewCtx, err := buildContext(data)
	if err != nil {
		return "", fmt.Errorf("gotemplate: build context: %w", err)
	}

	var buf bytes.Buffer

	e.mu.RLock()
	err = tmpl.ExecuteWriter(viewCtx, &buf)
	e.mu.RUnlock()

	if err != nil {
		return "", fmt.Errorf("gotemplate: render %s: %w", what, err)
	}

	rendered := buf.String()
	for _, w := range out {
		if _, err := w.Write([]byte(rendered)); err != nil {
			return "", err
		}
	}
	return rendered, nil
}

func (e *Engine) installFunc(name string, fn any) error {
	name = strings.TrimSpace(name)
	if name == "" || fn == nil {
		return nil
	}

	if filter, ok := fn.(pongo2.FilterFunction); ok {
		if pongo2.FilterExists(name) {
			return nil
		}
		return pongo2.RegisterFilter(name, filter)
	}
	if !callable(fn) {
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.set.Globals == nil {
		e.set.Globals = make(pongo2.Context)
	}
	e.set.Globals[name] = fn
	return nil
}

// load returns the cached parse of path, parsing it on first use.
func (e *Engine) load(path string) (*pongo2.Template, error) {
	e.mu.RLock()
	tmpl, ok := e.cache[path]
	e.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if tmpl, ok := e.cache[path]; ok {
		return tmpl, nil
	}
	tmpl, err := e.set.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("gotemplate: load template %q: %w", path, err)
	}
	e.cache[path] = tmpl
	return tmpl, nil
}

func looksInline(s string) bool {
	return strings.Contains(s, "{{") || strings.Contains(s, "{%")
}
