package utils

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// lookupEnv returns defaultValue when key is unset or parse rejects it. A bad
// value is reported once through the standard logger, since configuration is
// read before the zap logger exists.
func lookupEnv[T any](key string, defaultValue T, parse func(string) (T, error)) T {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	value, err := parse(raw)
	if err != nil {
		log.Printf("ignoring %s=%q: %v", key, raw, err)
		return defaultValue
	}
	return value
}

func GetEnvString(key, defaultValue string) string {
	return lookupEnv(key, defaultValue, func(s string) (string, error) { return s, nil })
}

func GetEnvInt(key string, defaultValue int) int {
	return lookupEnv(key, defaultValue, strconv.Atoi)
}

func GetEnvBool(key string, defaultValue bool) bool {
	return lookupEnv(key, defaultValue, strconv.ParseBool)
}

// GetEnvStringSlice reads a comma separated list, ignoring blank items. A
// list with no items falls back to defaultValue.
func GetEnvStringSlice(key string, defaultValue []string) []string {
	items := lookupEnv[[]string](key, nil, func(s string) ([]string, error) {
		var out []string
		for _, item := range strings.Split(s, ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
		return out, nil
	})
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
