package reports

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var placeholderPattern = regexp.MustCompile(`@p\d+`)

func TestRegistryEntriesAreWellFormed(t *testing.T) {
	require.NotEmpty(t, Registry)

	paths := make(map[string]bool)
	names := make(map[string]bool)

	for _, report := range Registry {
		assert.NotEmpty(t, report.Name)
		assert.True(t, strings.HasPrefix(report.Path, "/api/"), "%s must live under /api", report.Name)
		assert.NotEmpty(t, strings.TrimSpace(report.Query), "%s has no query", report.Name)

		assert.False(t, paths[report.Path], "duplicate path %s", report.Path)
		assert.False(t, names[report.Name], "duplicate name %s", report.Name)
		paths[report.Path] = true
		names[report.Name] = true
	}
}

func TestRegistryPlaceholdersMatchPathParams(t *testing.T) {
	for _, report := range Registry {
		placeholders := map[string]bool{}
		for _, m := range placeholderPattern.FindAllString(report.Query, -1) {
			placeholders[m] = true
		}

		assert.Len(t, placeholders, len(report.PathParams),
			"%s: placeholder count must match declared path params", report.Name)

		for _, param := range report.PathParams {
			assert.Contains(t, report.Path, ":"+param,
				"%s: path param %s missing from route pattern", report.Name, param)
		}
	}
}

func TestRegistryQueriesAreReadOnly(t *testing.T) {
	for _, report := range Registry {
		head := strings.ToUpper(strings.Fields(report.Query)[0])
		assert.Contains(t, []string{"SELECT", "WITH"}, head,
			"%s must be a read-only statement", report.Name)
	}
}
