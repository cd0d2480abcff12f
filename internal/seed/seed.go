// Package seed loads content items from a JSON file and upserts them by
// kind and title, so a seed file can be applied repeatedly.
package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"tridivya/internal/lib/logger/sl"
	"tridivya/internal/models"
)

var validate = validator.New()

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ContentUpserter
type ContentUpserter interface {
	UpsertContentByTitle(ctx context.Context, c models.Content) (bool, error)
}

type Summary struct {
	Inserted int
	Updated  int
}

// Load reads a JSON array of content items. Each item names its kind and
// carries only that kind's fields.
func Load(r io.Reader) ([]models.Content, error) {
	const op = "seed.Load"

	var raw []json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	items := make([]models.Content, 0, len(raw))
	for i, msg := range raw {
		var head struct {
			Kind string `json:"kind"`
		}
		if err := json.Unmarshal(msg, &head); err != nil {
			return nil, fmt.Errorf("%s: item %d: %w", op, i, err)
		}

		kind, err := models.ParseContentKind(head.Kind)
		if err != nil {
			return nil, fmt.Errorf("%s: item %d: %w", op, i, err)
		}

		c, err := models.DecodeContent(kind, msg)
		if err != nil {
			return nil, fmt.Errorf("%s: item %d: %w", op, i, err)
		}

		if err = validate.Struct(c); err != nil {
			return nil, fmt.Errorf("%s: item %d (%s): %w", op, i, c.Base().Title, err)
		}

		items = append(items, c)
	}

	return items, nil
}

// Run upserts every item. It keeps going past failures and reports them
// joined.
func Run(ctx context.Context, log *slog.Logger, store ContentUpserter, items []models.Content) (Summary, error) {
	const op = "seed.Run"

	log = log.With(slog.String("op", op))

	var (
		sum  Summary
		errs []error
	)

	for _, c := range items {
		b := c.Base()

		inserted, err := store.UpsertContentByTitle(ctx, c)
		if err != nil {
			log.Error("failed to upsert content", slog.String("kind", string(b.Kind)), slog.String("title", b.Title), sl.Err(err))
			errs = append(errs, fmt.Errorf("%s %q: %w", b.Kind, b.Title, err))
			continue
		}

		if inserted {
			sum.Inserted++
		} else {
			sum.Updated++
		}

		log.Debug("content upserted", slog.String("kind", string(b.Kind)), slog.String("title", b.Title), slog.Bool("inserted", inserted))
	}

	return sum, errors.Join(errs...)
}
