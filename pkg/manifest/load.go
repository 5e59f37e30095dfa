package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Preetu-Sharma/k8s-yaml-validator/pkg/logger"
	"gopkg.in/yaml.v3"
)

// FindFiles resolves a user-supplied path into the ordered list of YAML files
// to validate. A file path is returned as-is; a directory yields every
// .yaml/.yml file directly inside it, in filename-sorted order.
func FindFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("accessing %s: %w", path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", path, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if isYAMLFile(e.Name()) {
			files = append(files, filepath.Join(path, e.Name()))
		}
	}
	return files, nil
}

func isYAMLFile(name string) bool {
	return strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")
}

// Load reads a YAML file and returns its documents in stream order. Each
// document is decoded independently, so a syntax error in one document of a
// multi-document file surfaces as Document.ParseErr on that slot without
// losing the documents around it. Only the file read itself can fail.
func Load(path string) ([]Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	var docs []Document
	for _, chunk := range splitStream(content) {
		index := len(docs) + 1
		var root map[string]interface{}
		if err := yaml.Unmarshal(chunk, &root); err != nil {
			docs = append(docs, Document{
				SourceFile: path,
				Index:      index,
				ParseErr:   &ParseError{File: path, Doc: index, Err: err},
			})
			continue
		}
		if root == nil {
			logger.Debugf("skipping empty document #%d in %s", index, path)
			continue
		}
		docs = append(docs, Document{SourceFile: path, Index: index, Root: root})
	}
	return docs, nil
}

// splitStream splits a YAML stream on the standard document separator: a line
// consisting of exactly "---". Chunks containing only blank lines and comments
// are dropped, matching how a YAML stream parser enumerates documents.
func splitStream(content []byte) [][]byte {
	lines := strings.Split(string(content), "\n")

	var chunks [][]byte
	var current []string
	flush := func() {
		if chunkHasContent(current) {
			chunks = append(chunks, []byte(strings.Join(current, "\n")))
		}
		current = nil
	}
	for _, line := range lines {
		if strings.TrimRight(line, " \t\r") == "---" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()
	return chunks
}

func chunkHasContent(lines []string) bool {
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && !strings.HasPrefix(trimmed, "#") {
			return true
		}
	}
	return false
}
