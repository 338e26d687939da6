package classifier

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// modelConfig is the subset of a Hugging Face config.json we need.
type modelConfig struct {
	ID2Label map[string]string `json:"id2label"`
}

// LoadLabels reads id2label from config.json in modelPath. modelPath may
// also point at the file itself.
func LoadLabels(modelPath string) ([]string, error) {
	path := modelPath
	if info, err := os.Stat(modelPath); err == nil && info.IsDir() {
		path = filepath.Join(modelPath, "config.json")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg modelConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(cfg.ID2Label) == 0 {
		return nil, fmt.Errorf("%s has no id2label mapping", path)
	}

	labels := make([]string, len(cfg.ID2Label))
	for key, label := range cfg.ID2Label {
		id, err := strconv.Atoi(key)
		if err != nil || id < 0 || id >= len(labels) {
			return nil, fmt.Errorf("id2label key %q is not a class index below %d", key, len(labels))
		}
		if labels[id] != "" {
			return nil, fmt.Errorf("id2label maps class %d more than once", id)
		}
		if label == "" {
			return nil, fmt.Errorf("id2label key %q has an empty label", key)
		}
		labels[id] = label
	}
	return labels, nil
}
