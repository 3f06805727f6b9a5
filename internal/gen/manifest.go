package gen

import (
	"fmt"

	"github.com/bytedance/sonic"

	"go.dw1.io/constconv/internal/relation"
)

var api = sonic.ConfigStd

// Manifest is a reviewable snapshot of the relation table.
type Manifest struct {
	Version   int     `json:"version"`
	Relations []Entry `json:"relations"`
}

// Entry is one non-identity row of the relation table.
type Entry struct {
	Source   string `json:"source"`
	Target   string `json:"target"`
	Relation string `json:"relation"`
}

// NewManifest snapshots the relation table.
func NewManifest() Manifest {
	m := Manifest{Version: relation.Version}
	for _, r := range []relation.Relation{relation.Lossless, relation.Bounded} {
		for _, p := range relation.Pairs(r) {
			m.Relations = append(m.Relations, Entry{
				Source:   p.Source.String(),
				Target:   p.Target.String(),
				Relation: r.String(),
			})
		}
	}

	return m
}

// MarshalManifest encodes the current relation table as indented JSON.
func MarshalManifest() ([]byte, error) {
	return MarshalManifestOf(NewManifest())
}

// MarshalManifestOf encodes m the way [MarshalManifest] does.
func MarshalManifestOf(m Manifest) ([]byte, error) {
	data, err := api.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("gen: encode manifest: %w", err)
	}

	return append(data, '\n'), nil
}

// UnmarshalManifest decodes a manifest previously written by
// [MarshalManifest].
func UnmarshalManifest(data []byte) (Manifest, error) {
	var m Manifest
	if err := api.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("gen: decode manifest: %w", err)
	}

	return m, nil
}

// Diff returns the rows present in only one of old and cur, formatted as
// "+ src -> dst (relation)" for additions and "- ..." for removals.
func Diff(old, cur Manifest) []string {
	key := func(e Entry) string {
		return e.Source + " -> " + e.Target + " (" + e.Relation + ")"
	}

	seen := make(map[string]bool, len(old.Relations))
	for _, e := range old.Relations {
		seen[key(e)] = true
	}

	var diff []string
	for _, e := range cur.Relations {
		k := key(e)
		if seen[k] {
			delete(seen, k)
			continue
		}

		diff = append(diff, "+ "+k)
	}

	for _, e := range old.Relations {
		if k := key(e); seen[k] {
			diff = append(diff, "- "+k)
		}
	}

	return diff
}
