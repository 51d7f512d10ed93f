// Package summary renders plain-text summaries of a contact draft, used by
// the CLI wizard for its confirmation screen. The engine wraps a cached
// pongo2 template set behind a small functional-options API.
package summary

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
)

// Option configures the engine before construction.
type Option func(*config)

type config struct {
	templates  fs.FS
	extension  string
	globalData map[string]any
}

// WithFS loads templates from an fs.FS.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templates = files
	}
}

// WithExtension overrides the default .tpl template extension.
func WithExtension(ext string) Option {
	return func(cfg *config) {
		trimmed := strings.TrimSpace(ext)
		if trimmed == "" {
			return
		}
		if !strings.HasPrefix(trimmed, ".") {
			trimmed = "." + trimmed
		}
		cfg.extension = trimmed
	}
}

// WithGlobalData seeds context values available to every template.
func WithGlobalData(data map[string]any) Option {
	return func(cfg *config) {
		if len(data) == 0 {
			return
		}
		if cfg.globalData == nil {
			cfg.globalData = make(map[string]any, len(data))
		}
		for key, value := range data {
			cfg.globalData[strings.TrimSpace(key)] = value
		}
	}
}

// Engine renders named templates from a cached pongo2 template set.
type Engine struct {
	mu sync.RWMutex

	templateSet *pongo2.TemplateSet
	templates   map[string]*pongo2.Template
	tplExt      string
	globalData  map[string]any
}

// New constructs an Engine from the provided options. A template filesystem
// is required.
func New(options ...Option) (*Engine, error) {
	cfg := &config{extension: ".tpl"}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}
	if cfg.templates == nil {
		return nil, errors.New("summary: need to provide a template fs.FS")
	}

	return &Engine{
		templateSet: pongo2.NewSet("contactform", pongo2.NewFSLoader(cfg.templates)),
		templates:   make(map[string]*pongo2.Template),
		tplExt:      cfg.extension,
		globalData:  cfg.globalData,
	}, nil
}

// Render executes the named template with the given data. Names without the
// configured extension have it appended.
func (e *Engine) Render(name string, data any) (string, error) {
	if e == nil || e.templateSet == nil {
		return "", errors.New("summary: engine is nil")
	}
	templatePath := name
	if !strings.HasSuffix(templatePath, e.tplExt) {
		templatePath += e.tplExt
	}

	tmpl, err := e.getTemplate(templatePath)
	if err != nil {
		return "", err
	}

	viewContext, err := e.convertToContext(data)
	if err != nil {
		return "", fmt.Errorf("summary: convert data: %w", err)
	}

	var buf bytes.Buffer
	e.mu.RLock()
	err = tmpl.ExecuteWriter(viewContext, &buf)
	e.mu.RUnlock()
	if err != nil {
		return "", fmt.Errorf("summary: execute template %q: %w", templatePath, err)
	}
	return buf.String(), nil
}

// RenderString executes inline template content against data.
func (e *Engine) RenderString(content string, data any) (string, error) {
	if e == nil || e.templateSet == nil {
		return "", errors.New("summary: engine is nil")
	}
	tmpl, err := e.templateSet.FromString(content)
	if err != nil {
		return "", fmt.Errorf("summary: parse inline template: %w", err)
	}
	viewContext, err := e.convertToContext(data)
	if err != nil {
		return "", fmt.Errorf("summary: convert data: %w", err)
	}
	out, err := tmpl.Execute(viewContext)
	if err != nil {
		return "", fmt.Errorf("summary: execute inline template: %w", err)
	}
	return out, nil
}

func (e *Engine) getTemplate(path string) (*pongo2.Template, error) {
	e.mu.RLock()
	tmpl, ok := e.templates[path]
	e.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if tmpl, ok := e.templates[path]; ok {
		return tmpl, nil
	}
	tmpl, err := e.templateSet.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("summary: load template %q: %w", path, err)
	}
	e.templates[path] = tmpl
	return tmpl, nil
}

// convertToContext flattens arbitrary data into a pongo2 context, merging the
// engine's global data underneath.
func (e *Engine) convertToContext(data any) (pongo2.Context, error) {
	ctx := pongo2.Context{}
	for key, value := range e.globalData {
		ctx[key] = value
	}
	if data == nil {
		return ctx, nil
	}

	switch typed := data.(type) {
	case pongo2.Context:
		for key, value := range typed {
			ctx[key] = value
		}
	case map[string]any:
		for key, value := range typed {
			ctx[key] = value
		}
	default:
		raw, err := json.Marshal(data)
		if err != nil {
			return nil, err
		}
		flat := make(map[string]any)
		if err := json.Unmarshal(raw, &flat); err != nil {
			return nil, err
		}
		for key, value := range flat {
			ctx[key] = value
		}
	}
	return ctx, nil
}
