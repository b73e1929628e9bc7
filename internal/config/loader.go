package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var corplKeyMap = map[string]string{
	"comment":         "comment",
	"marker":          "comment",
	"closing_comment": "closing_comment",
	"closing":         "closing_comment",
	"long_comment":    "long_comment",
	"keep":            "keep",
	"enable":          "enable",
	"enabled":         "enable",
	"disable":         "disable",
	"disabled":        "disable",
	"style":           "style",
	"lang":            "style",
	"language":        "style",
}

// Load reads and strictly decodes a config file. Unknown keys are
// errors so typos surface instead of silently doing nothing.
func Load(path string) (Config, error) {
	var cfg Config
	path = strings.TrimSpace(path)
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	ext := strings.ToLower(filepath.Ext(path))
	var raw map[string]any
	switch ext {
	case ".yaml", ".yml":
		if decodeErr := yaml.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	case ".toml":
		if decodeErr := toml.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	case ".json":
		if decodeErr := json.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	if raw == nil {
		return cfg, nil
	}
	decoded, err := decodeConfigMap(raw)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return decoded, nil
}

func decodeConfigMap(raw map[string]any) (Config, error) {
	var cfg Config
	corplSection := make(map[string]any)

	if block, ok := raw["corpl"]; ok {
		sub, err := toStringKeyMap(block)
		if err != nil {
			return cfg, fmt.Errorf("corpl: %w", err)
		}
		if err := fillSection(corplSection, sub, corplKeyMap, "corpl"); err != nil {
			return cfg, err
		}
	}

	for key, value := range raw {
		norm := normalizeKey(key)
		switch norm {
		case "corpl":
			continue
		case "color", "colour":
			str, err := expectString(value, "color")
			if err != nil {
				return cfg, err
			}
			trimmed := strings.TrimSpace(str)
			cfg.Color = &trimmed
		default:
			if canonical, ok := corplKeyMap[norm]; ok {
				corplSection[canonical] = value
				continue
			}
			return cfg, fmt.Errorf("unknown config key: %s", key)
		}
	}

	if err := assignCorpl(corplSection, &cfg.Corpl); err != nil {
		return cfg, fmt.Errorf("corpl: %w", err)
	}
	return cfg, nil
}

func fillSection(dst, src map[string]any, allowed map[string]string, section string) error {
	for key, value := range src {
		canonical, ok := allowed[normalizeKey(key)]
		if !ok {
			return fmt.Errorf("unknown %s key: %s", section, key)
		}
		dst[canonical] = value
	}
	return nil
}

func assignCorpl(section map[string]any, dst *CorplConfig) error {
	for key, value := range section {
		switch key {
		case "comment":
			str, err := expectString(value, key)
			if err != nil {
				return err
			}
			dst.Comment = &str
		case "closing_comment":
			str, err := expectString(value, key)
			if err != nil {
				return err
			}
			dst.ClosingComment = &str
		case "long_comment":
			b, err := expectBool(value, key)
			if err != nil {
				return err
			}
			dst.LongComment = &b
		case "keep":
			b, err := expectBool(value, key)
			if err != nil {
				return err
			}
			dst.Keep = &b
		case "enable":
			list, err := expectStringList(value, key)
			if err != nil {
				return err
			}
			dst.Enable = &list
		case "disable":
			list, err := expectStringList(value, key)
			if err != nil {
				return err
			}
			dst.Disable = &list
		case "style":
			str, err := expectString(value, key)
			if err != nil {
				return err
			}
			trimmed := strings.TrimSpace(str)
			dst.Style = &trimmed
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
	}
	return nil
}

func expectString(value any, field string) (string, error) {
	if value == nil {
		return "", fmt.Errorf("%s cannot be null", field)
	}
	if s, ok := value.(string); ok {
		return s, nil
	}
	return "", fmt.Errorf("expected string for %s, got %T", field, value)
}

func expectBool(value any, field string) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		return ParseBool(v, field)
	default:
		return false, fmt.Errorf("expected bool for %s, got %T", field, value)
	}
}

func expectStringList(value any, field string) ([]string, error) {
	switch v := value.(type) {
	case string:
		return SplitMulti([]string{v}), nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			str, err := expectString(item, field)
			if err != nil {
				return nil, err
			}
			out = append(out, str)
		}
		return normalizeList(out), nil
	case []string:
		return normalizeList(v), nil
	default:
		return nil, fmt.Errorf("expected string or list for %s, got %T", field, value)
	}
}

func normalizeList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}

func toStringKeyMap(v any) (map[string]any, error) {
	switch typed := v.(type) {
	case map[string]any:
		return typed, nil
	case map[any]any:
		out := make(map[string]any, len(typed))
		for k, value := range typed {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string key: %v", k)
			}
			out[key] = value
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected map, got %T", v)
	}
}

func normalizeKey(key string) string {
	norm := strings.ToLower(strings.TrimSpace(key))
	norm = strings.ReplaceAll(norm, "-", "_")
	return norm
}
