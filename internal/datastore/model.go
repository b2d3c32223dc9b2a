// model.go defines the relational data model of the unicode artifact
package datastore

// Character is the per-codepoint record. Exactly one row exists for every
// codepoint present in the primary source table. DecompositionType is
// non-nil iff at least one Decomposition row references the codepoint.
type Character struct {
	Codepoint         int32   `gorm:"primaryKey;autoIncrement:false"`
	Name              *string `gorm:"index:idx_characters_name"`
	GeneralCategory   string  `gorm:"type:varchar(2)"`
	BlockName         *string `gorm:"index:idx_characters_block"`
	ScriptName        *string
	BidiClass         string
	DecompositionType *string
	EastAsianWidth    *string `gorm:"type:varchar(2)"` // F, H, W, Na, A or N
	IsEmoji           bool
	IsJIS0201         bool // single-byte legacy encoding membership
	IsJIS0208         bool // double-byte legacy encoding membership
}

// Decomposition is one edge of a decomposition mapping. For a fixed
// codepoint the positions form a contiguous 0-based sequence; ascending
// position reconstructs the decomposition list exactly.
type Decomposition struct {
	Codepoint int32 `gorm:"primaryKey;autoIncrement:false;index:idx_decompositions_cp"`
	Position  int32 `gorm:"primaryKey;autoIncrement:false"`
	Target    int32
}

// NameAlias is one alias row. The full triple is the uniqueness key: the
// same text may repeat under a different type and one type may carry
// several texts.
type NameAlias struct {
	Codepoint int32  `gorm:"primaryKey;autoIncrement:false;index:idx_name_aliases_cp"`
	Alias     string `gorm:"primaryKey"`
	Type      string `gorm:"primaryKey"`
}

// Block is a named, disjoint codepoint range.
type Block struct {
	StartCp int32 `gorm:"primaryKey;autoIncrement:false"`
	EndCp   int32
	Name    string
}

// UnihanProperty is one Unihan property row, unique per (codepoint, name).
type UnihanProperty struct {
	Codepoint int32  `gorm:"primaryKey;autoIncrement:false;index:idx_unihan_cp"`
	Name      string `gorm:"primaryKey"`
	Value     string
}

// Annotation is a CLDR annotation row; keywords are pipe-joined.
type Annotation struct {
	Codepoint int32 `gorm:"primaryKey;autoIncrement:false"`
	Keywords  string
	TTS       string
}

// VariationSequence pairs a base codepoint with a variation selector. The
// two source lists are concatenated without deduplication, so rows need a
// surrogate key: the same (base, selector) pair may legitimately appear
// once per source with different descriptions.
type VariationSequence struct {
	ID          uint  `gorm:"primaryKey"`
	Base        int32 `gorm:"index:idx_variation_sequences_base"`
	Selector    int32
	Description string
}

// Dataset is the full normalized entity set handed to the writer. It is
// produced once by the normalization stage and immutable afterwards.
type Dataset struct {
	Characters         []Character
	Decompositions     []Decomposition
	NameAliases        []NameAlias
	Blocks             []Block
	UnihanProperties   []UnihanProperty
	Annotations        []Annotation
	VariationSequences []VariationSequence
}

// allModels lists every table in creation order.
func allModels() []any {
	return []any{
		&Character{},
		&Decomposition{},
		&NameAlias{},
		&Block{},
		&UnihanProperty{},
		&Annotation{},
		&VariationSequence{},
	}
}
