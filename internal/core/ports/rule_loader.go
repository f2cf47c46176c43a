package ports

import "go.trai.ch/keydiff/internal/core/domain"

// RuleLoader reads ignore rules from an ignore file.
//
//go:generate go run go.uber.org/mock/mockgen -source=rule_loader.go -destination=mocks/mock_rule_loader.go -package=mocks
type RuleLoader interface {
	// Load reads the ignore file at path and compiles its rules.
	// A missing file yields an empty rule set.
	Load(path string) (*domain.IgnoreRuleSet, error)
}
