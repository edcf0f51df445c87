package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteCSVOneRowPerEntry(t *testing.T) {
	l := NewLog()
	l.Append("es", Entry{Key: "greeting", Original: "Hello", Translated: "Hola", CumulativeTokens: 2})
	l.Append("es", Entry{Key: "farewell", Original: "Goodbye", Translated: "Adiós", CumulativeTokens: 4})
	l.Append("fr", Entry{Key: "greeting", Original: "Hello", Translated: "Bonjour", CumulativeTokens: 2})

	path := filepath.Join(t.TempDir(), "translation_report.csv")
	require.NoError(t, l.WriteCSV(path))

	rows := readCSV(t, path)
	require.Len(t, rows, 4) // header + 3 entries
	assert.Equal(t, []string{"Language", "Key", "Original Text", "Translated Text"}, rows[0])
	assert.Equal(t, []string{"es", "greeting", "Hello", "Hola"}, rows[1])
	assert.Equal(t, []string{"es", "farewell", "Goodbye", "Adiós"}, rows[2])
	assert.Equal(t, []string{"fr", "greeting", "Hello", "Bonjour"}, rows[3])
}

func TestWriteCSVEmptyLogStillHasHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "translation_report.csv")
	require.NoError(t, NewLog().WriteCSV(path))

	rows := readCSV(t, path)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"Language", "Key", "Original Text", "Translated Text"}, rows[0])
}

func TestWriteCSVOverwritesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "translation_report.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale content\nmore\nrows\n"), 0644))

	l := NewLog()
	l.Append("es", Entry{Key: "greeting", Original: "Hello", Translated: "Hola"})
	require.NoError(t, l.WriteCSV(path))

	rows := readCSV(t, path)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"es", "greeting", "Hello", "Hola"}, rows[1])
}
