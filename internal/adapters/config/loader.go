// Package config loads ignore rules for keydiff.
package config

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"

	"go.trai.ch/keydiff/internal/core/domain"
	"go.trai.ch/keydiff/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.RuleLoader = (*Loader)(nil)

// Loader implements ports.RuleLoader. Ignore files are JSON arrays unless their
// extension is .yaml or .yml.
type Loader struct {
	fs ports.FileSystem
}

// NewLoader creates a new Loader reading through fsys.
func NewLoader(fsys ports.FileSystem) *Loader {
	return &Loader{fs: fsys}
}

// Load reads and compiles the ignore file at path.
// An empty path or a missing file yields an empty rule set.
func (l *Loader) Load(path string) (*domain.IgnoreRuleSet, error) {
	if path == "" {
		return domain.EmptyIgnoreRuleSet(), nil
	}

	exists, err := l.fs.Exists(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrRuleLoadFailed, err.Error()), "path", path)
	}
	if !exists {
		return domain.EmptyIgnoreRuleSet(), nil
	}

	data, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrRuleLoadFailed, err.Error()), "path", path)
	}

	dtos, err := decode(path, data)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrRuleLoadFailed, err.Error()), "path", path)
	}

	rules, err := domain.NewIgnoreRuleSet(toRules(dtos))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrRuleLoadFailed, err.Error()), "path", path)
	}
	return rules, nil
}

func decode(path string, data []byte) ([]ruleDTO, error) {
	var dtos []ruleDTO

	if isYAML(path) {
		if err := yaml.Unmarshal(data, &dtos); err != nil {
			return nil, err
		}
		return dtos, nil
	}

	dec := json.NewDecoder(bytes.NewReader(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))))
	if err := dec.Decode(&dtos); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, zerr.New("unexpected content after rule list")
	}
	return dtos, nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
