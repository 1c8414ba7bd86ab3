package build

import "sort"

// ExtensionContainer holds named build-wide configuration objects.
type ExtensionContainer struct {
	byName map[string]any
}

// NewExtensionContainer returns an empty container.
func NewExtensionContainer() *ExtensionContainer {
	return &ExtensionContainer{byName: make(map[string]any)}
}

// Add registers ext under name. Names are unique per build.
func (c *ExtensionContainer) Add(name string, ext any) error {
	if _, exists := c.byName[name]; exists {
		return configErrorf(name, "extension already registered")
	}
	c.byName[name] = ext
	return nil
}

// Get returns the extension registered under name.
func (c *ExtensionContainer) Get(name string) (any, bool) {
	ext, ok := c.byName[name]
	return ext, ok
}

// Names returns the sorted extension names.
func (c *ExtensionContainer) Names() []string {
	names := make([]string, 0, len(c.byName))
	for n := range c.byName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// FindExtension returns the extension registered under name if it has type T.
func FindExtension[T any](c *ExtensionContainer, name string) (T, bool) {
	ext, ok := c.byName[name].(T)
	return ext, ok
}
