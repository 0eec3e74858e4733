package merge

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/dtwconn/pairwise"
	"github.com/katalvlaran/dtwconn/partition"
	"gopkg.in/yaml.v3"
)

// Artifact describes one persisted partial result.
type Artifact struct {
	Begin    int    `yaml:"begin"`
	End      int    `yaml:"end"`
	Path     string `yaml:"path"`
	Rows     int    `yaml:"rows"`
	Checksum uint64 `yaml:"xxh3"`
}

// Range returns the row range covered by a.
func (a Artifact) Range() partition.Range {
	return partition.Range{Begin: a.Begin, End: a.End}
}

// Manifest records the partial artifacts of one run so a later MergeFiles
// can verify them.
type Manifest struct {
	Series    int        `yaml:"series"`
	Metric    string     `yaml:"metric"`
	Window    int        `yaml:"window"`
	Artifacts []Artifact `yaml:"artifacts"`
}

// lookup returns the artifact recorded for r.
func (m *Manifest) lookup(r partition.Range) (Artifact, bool) {
	if m == nil {
		return Artifact{}, false
	}
	for _, a := range m.Artifacts {
		if a.Range() == r {
			return a, true
		}
	}

	return Artifact{}, false
}

// WritePartial atomically persists one partial result under
// PartialName(prefix, p.Range).
func WritePartial(prefix string, p *pairwise.PartialResult) (Artifact, error) {
	path := PartialName(prefix, p.Range)
	sum, err := writeAtomic(path, func(w io.Writer) error {
		return WriteRows(w, p.Rows)
	})
	if err != nil {
		return Artifact{}, err
	}

	return Artifact{
		Begin:    p.Range.Begin,
		End:      p.Range.End,
		Path:     path,
		Rows:     len(p.Rows),
		Checksum: sum,
	}, nil
}

// WriteManifest atomically stores m as YAML at path.
func WriteManifest(path string, m *Manifest) error {
	_, err := writeAtomic(path, func(w io.Writer) error {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(m); err != nil {
			return err
		}

		return enc.Close()
	})

	return err
}

// ReadManifest loads a manifest written by WriteManifest.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("merge: read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("merge: parse manifest %s: %w", path, err)
	}

	return &m, nil
}
