// normalize.go joins the parsed record streams into the final entity set
package pipeline

import (
	"log/slog"
	"strings"

	"github.com/sdkawata/unicode3/internal/datastore"
	"github.com/sdkawata/unicode3/internal/ucd"
)

// Normalize combines all parsed record streams into the normalized entity
// set: every character record gets its block, script and width resolved by
// first-match interval scan, membership flags from the emoji and legacy
// encoding sets, and one decomposition edge per target codepoint. The
// result is immutable once returned.
func Normalize(src *Sources, log *slog.Logger) *datastore.Dataset {
	blocks := ucd.NewTable(src.Blocks)
	scripts := ucd.NewTable(src.Scripts)
	widths := ucd.NewTable(src.Widths)
	emoji := ucd.NewTable(src.Emoji)

	ds := &datastore.Dataset{
		Characters:     make([]datastore.Character, 0, len(src.Characters)),
		Decompositions: make([]datastore.Decomposition, 0, len(src.Characters)/8),
	}

	known := make(map[rune]struct{}, len(src.Characters))
	for i := range src.Characters {
		line := &src.Characters[i]
		known[line.Codepoint] = struct{}{}

		char := datastore.Character{
			Codepoint:       int32(line.Codepoint),
			GeneralCategory: line.GeneralCategory,
			BidiClass:       line.BidiClass,
			IsEmoji:         emoji.Contains(line.Codepoint),
			IsJIS0201:       contains(src.JIS0201, line.Codepoint),
			IsJIS0208:       contains(src.JIS0208, line.Codepoint),
		}
		if line.HasName {
			char.Name = ptr(line.Name)
		}
		if block, ok := blocks.Resolve(line.Codepoint); ok {
			char.BlockName = ptr(block)
		}
		if script, ok := scripts.Resolve(line.Codepoint); ok {
			char.ScriptName = ptr(script)
		}
		if width, ok := widths.Resolve(line.Codepoint); ok {
			char.EastAsianWidth = ptr(width)
		}
		if !line.Decomposition.IsZero() {
			char.DecompositionType = ptr(line.Decomposition.Type)
			for position, target := range line.Decomposition.Targets {
				ds.Decompositions = append(ds.Decompositions, datastore.Decomposition{
					Codepoint: int32(line.Codepoint),
					Position:  int32(position),
					Target:    int32(target),
				})
			}
		}
		ds.Characters = append(ds.Characters, char)
	}

	// Cross-file version lag occasionally references codepoints absent from
	// the primary table; such rows pass through as foreign rows rather than
	// failing the run.
	foreign := 0
	for _, alias := range src.Aliases {
		if _, ok := known[alias.Codepoint]; !ok {
			foreign++
		}
		ds.NameAliases = append(ds.NameAliases, datastore.NameAlias{
			Codepoint: int32(alias.Codepoint),
			Alias:     alias.Alias,
			Type:      alias.Type,
		})
	}
	if foreign > 0 {
		log.Debug("Aliases referencing codepoints absent from the primary table", "count", foreign)
	}

	for _, block := range src.Blocks {
		ds.Blocks = append(ds.Blocks, datastore.Block{
			StartCp: int32(block.Lo),
			EndCp:   int32(block.Hi),
			Name:    block.Value,
		})
	}

	for _, prop := range src.Unihan {
		ds.UnihanProperties = append(ds.UnihanProperties, datastore.UnihanProperty{
			Codepoint: int32(prop.Codepoint),
			Name:      prop.Name,
			Value:     prop.Value,
		})
	}

	for _, ann := range src.Annotations {
		ds.Annotations = append(ds.Annotations, datastore.Annotation{
			Codepoint: int32(ann.Codepoint),
			Keywords:  strings.Join(ann.Keywords, "|"),
			TTS:       ann.TTS,
		})
	}

	// Plain concatenation in source order; duplicate (base, selector) pairs
	// across the two lists coexist with their own descriptions.
	for _, seq := range src.Variations {
		ds.VariationSequences = append(ds.VariationSequences, datastore.VariationSequence{
			Base:        int32(seq.Base),
			Selector:    int32(seq.Selector),
			Description: seq.Description,
		})
	}

	log.Info("Dataset normalized",
		"characters", len(ds.Characters),
		"decomposition_edges", len(ds.Decompositions))
	return ds
}

func contains(set map[rune]struct{}, cp rune) bool {
	_, ok := set[cp]
	return ok
}

func ptr(s string) *string {
	return &s
}
