package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestFindFilesSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "pod.yaml", "kind: Pod\n")

	files, err := FindFiles(path)
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)
}

func TestFindFilesDirectorySorted(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b-service.yml", "kind: Service\n")
	writeFile(t, dir, "a-pod.yaml", "kind: Pod\n")
	writeFile(t, dir, "notes.txt", "not yaml\n")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0755))

	files, err := FindFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a-pod.yaml"),
		filepath.Join(dir, "b-service.yml"),
	}, files)
}

func TestFindFilesMissingPath(t *testing.T) {
	_, err := FindFiles(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestLoadSingleDocument(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "pod.yaml", "apiVersion: v1\nkind: Pod\nmetadata:\n  name: web\n")

	docs, err := Load(path)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, path, docs[0].SourceFile)
	assert.Equal(t, 1, docs[0].Index)
	assert.Equal(t, "Pod", docs[0].Kind())
	assert.NoError(t, docs[0].ParseErr)
}

func TestLoadMultiDocumentStream(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "stack.yaml", `---
kind: PersistentVolume
---
# a comment between documents
kind: PersistentVolumeClaim
---
kind: Deployment
`)

	docs, err := Load(path)
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, "PersistentVolume", docs[0].Kind())
	assert.Equal(t, "PersistentVolumeClaim", docs[1].Kind())
	assert.Equal(t, "Deployment", docs[2].Kind())
	for i, d := range docs {
		assert.Equal(t, i+1, d.Index)
	}
}

// A syntax error in the middle document keeps the documents around it and
// their stream positions.
func TestLoadBrokenMiddleDocument(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "broken.yaml", `kind: Pod
---
kind: [unclosed
---
kind: Service
`)

	docs, err := Load(path)
	require.NoError(t, err)
	require.Len(t, docs, 3)

	assert.Equal(t, "Pod", docs[0].Kind())
	assert.NoError(t, docs[0].ParseErr)

	require.Error(t, docs[1].ParseErr)
	var perr *ParseError
	require.ErrorAs(t, docs[1].ParseErr, &perr)
	assert.Equal(t, path, perr.File)
	assert.Equal(t, 2, perr.Doc)

	assert.Equal(t, "Service", docs[2].Kind())
	assert.Equal(t, 3, docs[2].Index)
}

func TestLoadSkipsEmptyDocuments(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "sparse.yaml", `---
# only a comment here
---
kind: Pod
---
`)

	docs, err := Load(path)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Pod", docs[0].Kind())
	assert.Equal(t, 1, docs[0].Index)
}

func TestLoadUnreadableFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
