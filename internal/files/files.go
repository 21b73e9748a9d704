package files

import (
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SaveFile saves a file to the specified path.
// If the destination directory doesn't exist, it will be created.
func SaveFile(filePath string, data []byte) error {
	dirPath := filepath.Dir(filePath)
	if err := os.MkdirAll(dirPath, os.ModePerm); err != nil {
		return err
	}

	dest, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer dest.Close()

	_, err = dest.Write(data)

	return err
}

// BackupFile copies a file to a sibling `.bak` path before it gets overwritten.
// Returns the backup path.
func BackupFile(filePath string) (string, error) {
	src, err := os.Open(filePath)
	if err != nil {
		return "", err
	}
	defer src.Close()

	backupPath := filePath + ".bak"
	dest, err := os.Create(backupPath)
	if err != nil {
		return "", err
	}
	defer dest.Close()

	if _, err = io.Copy(dest, src); err != nil {
		return "", err
	}

	return backupPath, nil
}

// IsYamlType checks if the content is a valid YAML document.
// Any root shape is accepted: mapping, sequence or scalar.
func IsYamlType(content []byte) bool {
	var yamlData interface{}
	err := yaml.Unmarshal(content, &yamlData)
	return err == nil
}
