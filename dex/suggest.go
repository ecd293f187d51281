package dex

import (
	"context"
	"fmt"

	"github.com/blugelabs/bluge"
)

// Suggester answers "did you mean" queries for names that failed dex
// validation. The index lives purely in memory and is rebuilt from the
// registry at startup.
type Suggester struct {
	writer *bluge.Writer
	reader *bluge.Reader
}

// NewSuggester indexes every canonical name of the registry.
func NewSuggester(reg *Registry) (*Suggester, error) {
	writer, err := bluge.OpenWriter(bluge.InMemoryOnlyConfig())
	if err != nil {
		return nil, fmt.Errorf("opening suggestion index: %w", err)
	}

	batch := bluge.NewBatch()
	for _, name := range reg.Names() {
		doc := bluge.NewDocument(Normalize(name)).
			AddField(bluge.NewTextField("name", Normalize(name))).
			AddField(bluge.NewStoredOnlyField("display", []byte(name)))
		batch.Update(doc.ID(), doc)
	}
	if err := writer.Batch(batch); err != nil {
		_ = writer.Close()
		return nil, fmt.Errorf("indexing dex names: %w", err)
	}

	reader, err := writer.Reader()
	if err != nil {
		_ = writer.Close()
		return nil, fmt.Errorf("opening suggestion reader: %w", err)
	}
	return &Suggester{writer: writer, reader: reader}, nil
}

// Suggest returns up to limit canonical names close to the given input,
// combining prefix and fuzzy matches.
func (s *Suggester) Suggest(ctx context.Context, input string, limit int) ([]string, error) {
	key := Normalize(input)
	if key == "" || limit < 1 {
		return nil, nil
	}

	query := bluge.NewBooleanQuery().
		AddShould(bluge.NewPrefixQuery(key).SetField("name")).
		AddShould(bluge.NewFuzzyQuery(key).SetField("name").SetFuzziness(2))

	it, err := s.reader.Search(ctx, bluge.NewTopNSearch(limit, query))
	if err != nil {
		return nil, fmt.Errorf("suggestion search: %w", err)
	}

	var names []string
	match, err := it.Next()
	for err == nil && match != nil {
		visitErr := match.VisitStoredFields(func(field string, value []byte) bool {
			if field == "display" {
				names = append(names, string(value))
			}
			return true
		})
		if visitErr != nil {
			return nil, visitErr
		}
		match, err = it.Next()
	}
	if err != nil {
		return nil, err
	}
	return names, nil
}

func (s *Suggester) Close() error {
	if err := s.reader.Close(); err != nil {
		_ = s.writer.Close()
		return err
	}
	return s.writer.Close()
}
