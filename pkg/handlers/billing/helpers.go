package billing

import (
	"fmt"
	"strings"
)

func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

func errInvalidMonths(raw string) error {
	return fmt.Errorf("months must be a positive integer, got %q", raw)
}
