package config

import (
	"os"
	"path/filepath"
	"strings"
)

// expandEnv расширяет переменную окружения формата ${VAR:default}
// в начале строки; остаток строки сохраняется как есть.
func expandEnv(s string) string {
	if !strings.HasPrefix(s, "${") {
		return s
	}

	end := strings.Index(s, "}")
	if end == -1 {
		return s
	}

	content := s[2:end]
	rest := s[end+1:]

	if key, defaultVal, ok := strings.Cut(content, ":"); ok {
		if val := os.Getenv(key); val != "" {
			return val + rest
		}
		return defaultVal + rest
	}

	return os.Getenv(content) + rest
}

// ExpandHome расширяет ~ в пути
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
	}
	return path
}
