package domain

import (
	"sort"
	"strings"
)

const (
	FileMain     = "main.js"
	FileRenderer = "renderer.js"
	FilePreload  = "preload.js"
	FileHTML     = "index.html"
	FileStyles   = "styles.css"
	FilePackage  = "package.json"
)

// EditorFiles are the sources scanned for module references.
var EditorFiles = []string{FileMain, FileRenderer, FilePreload}

type Snippet struct {
	Name  string
	Files map[string]string
}

func NewSnippet(name string, files map[string]string) Snippet {
	copied := make(map[string]string, len(files))
	for file, content := range files {
		copied[file] = content
	}
	return Snippet{Name: name, Files: copied}
}

func (s Snippet) File(name string) string {
	return s.Files[name]
}

func (s Snippet) FileNames() []string {
	names := make([]string, 0, len(s.Files))
	for name := range s.Files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s Snippet) EditorSources() []string {
	sources := make([]string, 0, len(EditorFiles))
	for _, name := range EditorFiles {
		if content, ok := s.Files[name]; ok && strings.TrimSpace(content) != "" {
			sources = append(sources, content)
		}
	}
	return sources
}

func (s Snippet) IsEmpty() bool {
	for _, content := range s.Files {
		if strings.TrimSpace(content) != "" {
			return false
		}
	}
	return true
}

type RunRequest struct {
	Snippet        Snippet
	Version        string
	ExecutionFlags []string
	Env            map[string]string
}
