package reconcile

import (
	"strings"
)

// Index maps uppercased gene names onto their canonical spelling. When two
// names collide after uppercasing the first one wins.
type Index struct {
	keys  []string          // uppercased names in insertion order
	canon map[string]string // uppercased -> canonical
	kept  []int             // positions in the input list that won
}

// NewIndex builds an Index from an ordered list of gene names.
func NewIndex(names []string) *Index {
	idx := &Index{canon: make(map[string]string, len(names))}
	var up string
	var found bool
	for i := range names {
		up = strings.ToUpper(names[i])
		if _, found = idx.canon[up]; found {
			continue
		}
		idx.canon[up] = names[i]
		idx.keys = append(idx.keys, up)
		idx.kept = append(idx.kept, i)
	}
	return idx
}

// Lookup returns the canonical gene named by an uppercased token.
func (idx *Index) Lookup(token string) (string, bool) {
	gene, found := idx.canon[token]
	return gene, found
}

// Genes returns the canonical names in insertion order.
func (idx *Index) Genes() []string {
	ans := make([]string, len(idx.keys))
	for i := range idx.keys {
		ans[i] = idx.canon[idx.keys[i]]
	}
	return ans
}

// Kept returns the positions in the list passed to NewIndex whose names were
// retained, in order. Callers use it to drop the same duplicates from any
// table the names were taken from.
func (idx *Index) Kept() []int {
	ans := make([]int, len(idx.kept))
	copy(ans, idx.kept)
	return ans
}

func (idx *Index) Len() int {
	return len(idx.keys)
}
