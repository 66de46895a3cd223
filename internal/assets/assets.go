// Package assets loads viseme table sets from YAML files, so the
// phonetic→visual mapping can be versioned and revised alongside the mouth
// sprites without touching pipeline code.
package assets

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/normanking/mouthsync/internal/viseme"
)

// tableFile is the on-disk asset format:
//
//	version: 1
//	trigraphs:
//	  eer: [2, 4]
//	digraphs:
//	  th: [7]
//	singles:
//	  a: [1]
//	  ".": [0]
type tableFile struct {
	Version   int              `yaml:"version"`
	Trigraphs map[string][]int `yaml:"trigraphs"`
	Digraphs  map[string][]int `yaml:"digraphs"`
	Singles   map[string][]int `yaml:"singles"`
}

// Load reads and validates a table asset file.
func Load(path string) (*viseme.Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read table asset: %w", err)
	}

	var tf tableFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parse table asset %s: %w", path, err)
	}
	if tf.Version != 1 {
		return nil, fmt.Errorf("table asset %s: unsupported version %d", path, tf.Version)
	}

	if err := validate(tf.Trigraphs, 3); err != nil {
		return nil, fmt.Errorf("table asset %s: trigraphs: %w", path, err)
	}
	if err := validate(tf.Digraphs, 2); err != nil {
		return nil, fmt.Errorf("table asset %s: digraphs: %w", path, err)
	}
	if err := validate(tf.Singles, 1); err != nil {
		return nil, fmt.Errorf("table asset %s: singles: %w", path, err)
	}

	return viseme.NewTables(tf.Trigraphs, tf.Digraphs, tf.Singles), nil
}

func validate(table map[string][]int, keyLen int) error {
	for key, codes := range table {
		if len(key) != keyLen {
			return fmt.Errorf("key %q: want length %d", key, keyLen)
		}
		if len(codes) == 0 {
			return fmt.Errorf("key %q: empty code list", key)
		}
		for _, c := range codes {
			if c < 0 {
				return fmt.Errorf("key %q: negative code %d", key, c)
			}
		}
	}
	return nil
}
