package config

import (
	"fmt"
	"os"

	"github.com/Hyunseung-Nam/excel-statement-analyzer/internal/domain"
	"gopkg.in/yaml.v3"
)

// LoadRules reads the ordered category rules from a YAML file. The file is
// an ordered list, first match wins, and the final entry must be the
// keyword-free catch-all. A missing file falls back to the built-in rules so
// the tool works out of the box.
func LoadRules(path string) (domain.RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultRules(), nil
		}
		return nil, fmt.Errorf("rules: read %s: %w", path, err)
	}

	var rules domain.RuleSet
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("rules: parse %s: %w", path, err)
	}
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("rules: %s: %w", path, err)
	}
	return rules, nil
}

// DefaultRules is the built-in classification for a Korean card statement.
func DefaultRules() domain.RuleSet {
	return domain.RuleSet{
		{Label: "식비", Keywords: []string{"식당", "김밥", "치킨", "맥도날드", "버거", "배달의민족", "요기요"}},
		{Label: "카페/간식", Keywords: []string{"카페", "커피", "스타벅스", "베이커리", "빙수", "디저트"}},
		{Label: "교통/차량", Keywords: []string{"주유", "택시", "버스", "지하철", "철도", "하이패스"}},
		{Label: "생활/마트", Keywords: []string{"마트", "편의점", "씨유", "지에스25", "세븐일레븐", "다이소"}},
		{Label: "문화/여가", Keywords: []string{"노래방", "영화", "씨지브이", "롯데시네마", "피시방"}},
		{Label: "온라인쇼핑", Keywords: []string{"쿠팡", "네이버", "지마켓", "11번가", "옥션"}},
		{Label: "기타"},
	}
}
