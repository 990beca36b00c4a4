package i18n

import (
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestTag(t *testing.T) {
	require.Equal(t, language.Spanish, Tag(""))
	require.Equal(t, language.Spanish, Tag("es-AR"))
	require.Equal(t, language.English, Tag("en-US"))
	require.Equal(t, language.Spanish, Tag("not a locale!"))
}

func TestPrinterTranslates(t *testing.T) {
	es := Printer("es")
	require.Equal(t, "¿Estás seguro de que deseas eliminar al proveedor Acme?",
		es.Sprintf("Are you sure you want to delete supplier %s?", "Acme"))

	en := Printer("en")
	require.Equal(t, "Are you sure you want to delete supplier Acme?",
		en.Sprintf("Are you sure you want to delete supplier %s?", "Acme"))
}

func TestCatalogHasNoEmptyTranslations(t *testing.T) {
	seen := map[string]bool{}
	for _, e := range spanish {
		require.NotEmpty(t, e.msg, e.key)
		require.False(t, seen[e.key], "duplicate key %q", e.key)
		seen[e.key] = true
	}
}

func TestCatalogKeysAreUsed(t *testing.T) {
	root, err := filepath.Abs(filepath.Join("..", ".."))
	require.NoError(t, err)
	require.FileExists(t, filepath.Join(root, "go.mod"))

	var src strings.Builder
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if path != root && (strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") || name == "catalog_es.go" {
			return nil
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		src.Write(raw)
		return nil
	})
	require.NoError(t, err)

	code := src.String()
	for _, e := range spanish {
		require.Contains(t, code, strconv.Quote(e.key), "catalog entry never used")
	}
}
