package generator

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"sync"
	"text/template"
)

// Renderer handles template parsing and rendering with caching
type Renderer struct {
	funcMap template.FuncMap
	cache   map[string]*template.Template
	mu      sync.RWMutex // Protect cache for concurrent access
}

// NewRenderer creates a renderer with built-in helper functions
func NewRenderer() *Renderer {
	return &Renderer{
		funcMap: defaultFuncMap(),
		cache:   make(map[string]*template.Template),
	}
}

// RenderString renders a template from a string
// The name is used for caching and error messages
func (r *Renderer) RenderString(name, templateStr string, data any) ([]byte, error) {
	cacheKey := r.getCacheKey("string", name)

	// Check cache with read lock
	r.mu.RLock()
	if tmpl, ok := r.cache[cacheKey]; ok {
		r.mu.RUnlock()
		return r.executeTemplate(tmpl, data)
	}
	r.mu.RUnlock()

	// Parse template
	tmpl, err := template.New(name).Funcs(r.funcMap).Parse(templateStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template '%s': %w", name, err)
	}

	// Cache with write lock
	r.mu.Lock()
	r.cache[cacheKey] = tmpl
	r.mu.Unlock()

	return r.executeTemplate(tmpl, data)
}

// RenderFS renders a template from an embedded filesystem
func (r *Renderer) RenderFS(fs embed.FS, path string, data any) ([]byte, error) {
	cacheKey := r.getCacheKey("fs", path)

	// Check cache with read lock
	r.mu.RLock()
	if tmpl, ok := r.cache[cacheKey]; ok {
		r.mu.RUnlock()
		return r.executeTemplate(tmpl, data)
	}
	r.mu.RUnlock()

	// Read template from embedded filesystem
	templateBytes, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template from fs '%s': %w", path, err)
	}

	// Parse template
	tmpl, err := template.New(path).Funcs(r.funcMap).Parse(string(templateBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template '%s': %w", path, err)
	}

	// Cache with write lock
	r.mu.Lock()
	r.cache[cacheKey] = tmpl
	r.mu.Unlock()

	return r.executeTemplate(tmpl, data)
}

// ClearCache clears the template cache (useful for testing)
func (r *Renderer) ClearCache() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache = make(map[string]*template.Template)
}

// executeTemplate executes a parsed template with the given data
func (r *Renderer) executeTemplate(tmpl *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render template '%s': %w", tmpl.Name(), err)
	}
	return buf.Bytes(), nil
}

// getCacheKey generates a cache key for a template
func (r *Renderer) getCacheKey(typ, identifier string) string {
	return fmt.Sprintf("%s:%s", typ, identifier)
}

// defaultFuncMap returns the default template function map
func defaultFuncMap() template.FuncMap {
	return template.FuncMap{
		"quote":   Quote, // test → "test"
		"upper":   strings.ToUpper,
		"lower":   strings.ToLower,
		"trim":    strings.TrimSpace,
		"replace": strings.ReplaceAll,
	}
}

// Quote wraps a string in double quotes
func Quote(s string) string {
	return fmt.Sprintf("%q", s)
}
