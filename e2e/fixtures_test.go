//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CreateTestWorkspace creates a temporary directory for the app to run in
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// WriteRows writes a rows.toml dataset with one row per last name
func (tf *TUITestFramework) WriteRows(lastNames ...string) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}
	var b strings.Builder
	for i, name := range lastNames {
		fmt.Fprintf(&b, "[[rows]]\nid = \"%d\"\nlast = %q\nfirst = \"Test\"\n\n", i+1, name)
	}
	path := filepath.Join(tf.workspace, "rows.toml")
	return path, os.WriteFile(path, []byte(b.String()), 0644)
}

// WriteConfig writes a config file with the given page size
func (tf *TUITestFramework) WriteConfig(pageSize int, keepSelected bool) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}
	content := fmt.Sprintf("version = 1\nlocale = \"en\"\n\n[table]\ntitle = \"E2E\"\npage_size = %d\nkeep_selected = %t\n", pageSize, keepSelected)
	path := filepath.Join(tf.workspace, "config.toml")
	return path, os.WriteFile(path, []byte(content), 0644)
}

// StartWithRows writes a config and dataset and launches the app on them
func (tf *TUITestFramework) StartWithRows(pageSize int, keepSelected bool, lastNames ...string) error {
	if _, err := tf.CreateTestWorkspace(); err != nil {
		return err
	}
	configPath, err := tf.WriteConfig(pageSize, keepSelected)
	if err != nil {
		return err
	}
	dataPath, err := tf.WriteRows(lastNames...)
	if err != nil {
		return err
	}
	return tf.StartApp("-config", configPath, "-data", dataPath, "-env", filepath.Join(tf.workspace, ".env"))
}
