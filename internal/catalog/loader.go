package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/wordlist.json
var defaultWordlist []byte

// Default returns the catalog shipped with the binary.
func Default() *Catalog {
	c, err := Parse(defaultWordlist)
	if err != nil {
		// The embedded file is part of the build; a parse failure is a bug.
		panic(err)
	}
	return c
}

// Load reads a catalog file. An empty path returns the embedded default.
// Files ending in .yaml or .yml are read as YAML, everything else as JSON.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: failed to read %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return Parse(data)
	}
}

// Parse decodes a word list of the form {"Theme": [{"word": "..."}]}.
// Input that does not look like a JSON object is handed to ParseYAML.
// Entries that are not objects with a string "word" field are skipped; a
// theme whose value is not a list is kept with no words. A theme named twice
// keeps its first position and its last list.
func Parse(data []byte) (*Catalog, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return ParseYAML(data)
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("catalog: failed to parse word list: %w", err)
	}

	var themes []Theme
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("catalog: failed to parse word list: %w", err)
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("catalog: unexpected token %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("catalog: theme %q: %w", name, err)
		}
		themes = append(themes, Theme{Name: name, Words: jsonWords(raw)})
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("catalog: failed to parse word list: %w", err)
	}
	return New(themes...), nil
}

func jsonWords(raw json.RawMessage) []string {
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil
	}
	words := make([]string, 0, len(entries))
	for _, item := range entries {
		var e map[string]any
		if err := json.Unmarshal(item, &e); err != nil {
			continue
		}
		if w, ok := e["word"].(string); ok {
			words = append(words, w)
		}
	}
	return words
}

// ParseYAML decodes the YAML form of the word list, keeping the order themes
// appear in the document.
func ParseYAML(data []byte) (*Catalog, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("catalog: failed to parse word list: %w", err)
	}
	if len(doc.Content) == 0 {
		return New(), nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("catalog: word list must be a mapping of theme to words")
	}

	themes := make([]Theme, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		themes = append(themes, Theme{
			Name:  root.Content[i].Value,
			Words: yamlWords(root.Content[i+1]),
		})
	}
	return New(themes...), nil
}

func yamlWords(n *yaml.Node) []string {
	if n.Kind != yaml.SequenceNode {
		return nil
	}
	words := make([]string, 0, len(n.Content))
	for _, item := range n.Content {
		if item.Kind != yaml.MappingNode {
			continue
		}
		for j := 0; j+1 < len(item.Content); j += 2 {
			k, v := item.Content[j], item.Content[j+1]
			if k.Value == "word" && v.Kind == yaml.ScalarNode && v.ShortTag() == "!!str" {
				words = append(words, v.Value)
				break
			}
		}
	}
	return words
}
