// documents.go derives the search document set from the parsed sources
package pipeline

import (
	"sort"

	"github.com/sdkawata/unicode3/internal/search"
)

// Unihan property keys contributing searchable text.
const (
	unihanJapaneseOn  = "kJapaneseOn"
	unihanJapaneseKun = "kJapaneseKun"
	unihanDefinition  = "kDefinition"
)

// BuildDocuments assembles one composite search document per codepoint that
// has a display name, a Japanese reading, a dictionary definition or a CLDR
// keyword set. Absent fields are skipped; documents are emitted in
// ascending codepoint order.
func BuildDocuments(src *Sources) []search.Document {
	byCp := make(map[rune]*search.Document)
	get := func(cp rune) *search.Document {
		doc, ok := byCp[cp]
		if !ok {
			doc = &search.Document{Codepoint: cp}
			byCp[cp] = doc
		}
		return doc
	}

	for i := range src.Characters {
		line := &src.Characters[i]
		if !line.HasName {
			continue
		}
		get(line.Codepoint).Name = line.Name
	}

	for _, prop := range src.Unihan {
		switch prop.Name {
		case unihanJapaneseOn, unihanJapaneseKun, unihanDefinition:
			doc := get(prop.Codepoint)
			doc.Texts = append(doc.Texts, prop.Value)
		}
	}

	for _, ann := range src.Annotations {
		if len(ann.Keywords) == 0 && ann.TTS == "" {
			continue
		}
		doc := get(ann.Codepoint)
		doc.Texts = append(doc.Texts, ann.Keywords...)
		if ann.TTS != "" {
			doc.Texts = append(doc.Texts, ann.TTS)
		}
	}

	docs := make([]search.Document, 0, len(byCp))
	for _, doc := range byCp {
		docs = append(docs, *doc)
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Codepoint < docs[j].Codepoint })
	return docs
}
