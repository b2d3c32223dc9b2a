package search

import (
	"encoding/gob"
	"io"

	"github.com/derekparker/trie"

	"github.com/sdkawata/unicode3/internal/errors"
)

// snapshot is the serialized form of an index: the suffix postings plus the
// display-name side table. Both are required together for a faithful
// re-import; the trie itself is reconstructed from the postings keys.
type snapshot struct {
	Postings map[string][]rune
	Names    map[rune]string
}

// Export writes the index to w as a gob blob. Exporting and re-importing
// yields identical search results.
func (idx *Index) Export(w io.Writer) error {
	snap := snapshot{
		Postings: idx.postings,
		Names:    idx.names,
	}
	if err := gob.NewEncoder(w).Encode(&snap); err != nil {
		return errors.Newf("failed to encode search index: %w", err).
			Component("search").
			Category(errors.CategoryIndex).
			Build()
	}
	return nil
}

// Import reads an index previously written by Export.
func Import(r io.Reader) (*Index, error) {
	var snap snapshot
	if err := gob.NewDecoder(r).Decode(&snap); err != nil {
		return nil, errors.Newf("failed to decode search index: %w", err).
			Component("search").
			Category(errors.CategoryIndex).
			Build()
	}
	idx := &Index{
		trie:     trie.New(),
		postings: snap.Postings,
		names:    snap.Names,
	}
	if idx.postings == nil {
		idx.postings = make(map[string][]rune)
	}
	if idx.names == nil {
		idx.names = make(map[rune]string)
	}
	for suffix := range idx.postings {
		idx.trie.Add(suffix, nil)
	}
	return idx, nil
}
