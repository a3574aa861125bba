// Package yaml loads intent prompt templates from YAML files.
package yaml

import (
	_ "embed"
	"errors"
	"io/fs"
	"os"

	"github.com/fwojciec/snlchat"
	yamlv3 "gopkg.in/yaml.v3"
)

//go:embed prompts.yaml
var defaultPrompts []byte

type templateFile struct {
	Templates map[string]string `yaml:"templates"`
}

// DefaultTemplates returns the built-in templates for every intent.
func DefaultTemplates() (snlchat.Templates, error) {
	return ParseTemplates(defaultPrompts)
}

// ParseTemplates decodes a templates document. Unknown intent names are
// rejected so a typo does not silently fall back to the generic instruction.
func ParseTemplates(data []byte) (snlchat.Templates, error) {
	var f templateFile
	if err := yamlv3.Unmarshal(data, &f); err != nil {
		return nil, snlchat.Errorf(snlchat.EINVALID, "parse templates: %v", err)
	}

	templates := make(snlchat.Templates, len(f.Templates))
	for name, text := range f.Templates {
		intent, ok := snlchat.ParseIntent(name)
		if !ok {
			return nil, snlchat.Errorf(snlchat.EINVALID, "unknown intent %q in templates", name)
		}
		templates[intent] = text
	}
	return templates, nil
}

// LoadTemplates returns the default templates overlaid with those in the file
// at path. An empty path returns the defaults.
func LoadTemplates(path string) (snlchat.Templates, error) {
	templates, err := DefaultTemplates()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return templates, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, snlchat.Errorf(snlchat.ENOTFOUND, "templates file %q not found", path)
	} else if err != nil {
		return nil, err
	}

	overrides, err := ParseTemplates(data)
	if err != nil {
		return nil, err
	}
	for intent, text := range overrides {
		templates[intent] = text
	}
	return templates, nil
}

// MarshalTemplates encodes templates in the same layout ParseTemplates reads.
func MarshalTemplates(t snlchat.Templates) ([]byte, error) {
	f := templateFile{Templates: make(map[string]string, len(t))}
	for intent, text := range t {
		f.Templates[string(intent)] = text
	}
	return yamlv3.Marshal(f)
}
