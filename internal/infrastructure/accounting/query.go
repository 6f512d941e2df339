package accounting

import (
	"fmt"
	"strings"

	"locksmith_invoicing/internal/usecase/interfaces"
)

// quoteString renders v as a query string literal.
func quoteString(v string) string {
	return "'" + escape(v) + "'"
}

// quoteContains renders v as a LIKE pattern matching any value containing v.
// Caller supplied wildcards are dropped.
func quoteContains(v string) string {
	return "'%" + escape(strings.ReplaceAll(v, "%", "")) + "%'"
}

func escape(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	return strings.ReplaceAll(v, `'`, `\'`)
}

// checkID rejects anything that is not a provider entity id (digits only).
func checkID(kind, id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", fmt.Errorf("%w: empty %s id", interfaces.ErrInvalidReference, kind)
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("%w: %s id %q", interfaces.ErrInvalidReference, kind, id)
		}
	}
	return id, nil
}

// quoteID checks id and renders it as a string literal.
func quoteID(kind, id string) (string, error) {
	id, err := checkID(kind, id)
	if err != nil {
		return "", err
	}
	return quoteString(id), nil
}
