// SPDX-License-Identifier: MIT
package tokens

import (
	"sort"
	"strings"
	"sync"
)

// Surface is the runtime presentation state the publisher writes into.
// Only the publisher mutates it; everything else reads.
type Surface interface {
	SetToken(name, value string)
	SetCustomCSS(css string)
	SetFavicon(url string)
	SetTitle(title string)
}

// StyleSurface is the concrete, process-wide presentation surface.
// It holds the named style properties, the single managed custom-CSS
// container, and the favicon/title side effects. Setters are no-ops when
// the value is unchanged, so the version only moves on real changes.
type StyleSurface struct {
	mu        sync.RWMutex
	tokens    map[string]string
	customCSS string
	favicon   string
	title     string
	version   uint64
}

// NewStyleSurface returns an empty surface
func NewStyleSurface() *StyleSurface {
	return &StyleSurface{tokens: make(map[string]string)}
}

// SetToken writes one named style property
func (s *StyleSurface) SetToken(name, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if current, ok := s.tokens[name]; ok && current == value {
		return
	}
	s.tokens[name] = value
	s.version++
}

// SetCustomCSS replaces the managed custom stylesheet container in place.
// An empty string clears the container; it is never removed, so toggling
// custom CSS on and off stays cheap.
func (s *StyleSurface) SetCustomCSS(css string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.customCSS == css {
		return
	}
	s.customCSS = css
	s.version++
}

// SetFavicon updates the favicon reference
func (s *StyleSurface) SetFavicon(url string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.favicon == url {
		return
	}
	s.favicon = url
	s.version++
}

// SetTitle updates the document title
func (s *StyleSurface) SetTitle(title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.title == title {
		return
	}
	s.title = title
	s.version++
}

// Token returns one published property value
func (s *StyleSurface) Token(name string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens[name]
}

// Tokens returns a copy of every published property
func (s *StyleSurface) Tokens() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.tokens))
	for k, v := range s.tokens {
		out[k] = v
	}
	return out
}

// CustomCSS returns the managed custom stylesheet contents
func (s *StyleSurface) CustomCSS() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.customCSS
}

// Favicon returns the current favicon reference
func (s *StyleSurface) Favicon() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.favicon
}

// Title returns the current document title
func (s *StyleSurface) Title() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.title
}

// Version increments whenever any published value actually changes.
// Two identical publishes leave it untouched.
func (s *StyleSurface) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// CSS renders the surface as a stylesheet: every token as a CSS custom
// property on :root, followed by the managed custom-CSS container.
// Token order is sorted for stable output.
func (s *StyleSurface) CSS() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.tokens))
	for name := range s.tokens {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, name := range names {
		b.WriteString("  ")
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(s.tokens[name])
		b.WriteString(";\n")
	}
	b.WriteString("}\n")

	if s.customCSS != "" {
		b.WriteString("\n/* custom styles */\n")
		b.WriteString(s.customCSS)
		if !strings.HasSuffix(s.customCSS, "\n") {
			b.WriteString("\n")
		}
	}

	return b.String()
}
