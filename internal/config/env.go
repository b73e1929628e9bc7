package config

import (
	"errors"
	"strings"
)

// FromEnv reads one config layer from ICLU_* environment variables.
// ICLU_CONFIG is not read here; the caller passes it to Find.
func FromEnv(getenv func(string) string) (Config, error) {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	var cfg Config
	var errs []error

	setString := func(target **string, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		value := raw
		*target = &value
	}
	setList := func(target **[]string, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		list := SplitMulti([]string{raw})
		if len(list) == 0 {
			empty := make([]string, 0)
			*target = &empty
			return
		}
		copyVals := make([]string, len(list))
		copy(copyVals, list)
		*target = &copyVals
	}
	setBool := func(target **bool, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		v, err := ParseBool(raw, key)
		if err != nil {
			errs = append(errs, err)
			return
		}
		value := v
		*target = &value
	}

	setString(&cfg.Corpl.Comment, "ICLU_COMMENT")
	setString(&cfg.Corpl.ClosingComment, "ICLU_CLOSING_COMMENT")
	setBool(&cfg.Corpl.LongComment, "ICLU_LONG_COMMENT")
	setBool(&cfg.Corpl.Keep, "ICLU_KEEP")
	setList(&cfg.Corpl.Enable, "ICLU_ENABLE")
	setList(&cfg.Corpl.Disable, "ICLU_DISABLE")
	setString(&cfg.Corpl.Style, "ICLU_STYLE")
	setString(&cfg.Color, "ICLU_COLOR")

	if len(errs) > 0 {
		return cfg, errors.Join(errs...)
	}
	return cfg, nil
}
