package config

import "go.trai.ch/keydiff/internal/core/domain"

// ruleDTO is one entry of an ignore file.
type ruleDTO struct {
	Pattern    string   `json:"pattern"    yaml:"pattern"`
	IgnoreKeys []string `json:"ignoreKeys" yaml:"ignoreKeys"`
}

func toRules(dtos []ruleDTO) []domain.IgnoreRule {
	rules := make([]domain.IgnoreRule, len(dtos))
	for i, dto := range dtos {
		rules[i] = domain.IgnoreRule{Pattern: dto.Pattern, IgnoreKeys: dto.IgnoreKeys}
	}
	return rules
}
