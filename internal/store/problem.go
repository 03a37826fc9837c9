package store

import (
	"context"
	"fmt"

	"github.com/abhisek/prepdash/ent"
	"github.com/abhisek/prepdash/ent/problem"
	"github.com/abhisek/prepdash/internal/catalog"
)

// catalogRepo implements CatalogRepo using the ent client.
type catalogRepo struct {
	client *ent.Client
}

func (r *catalogRepo) Replace(ctx context.Context, problems []catalog.Problem) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin catalog replace: %w", err)
	}

	if _, err := tx.Problem.Delete().Exec(ctx); err != nil {
		tx.Rollback()
		return fmt.Errorf("clear problem master: %w", err)
	}

	builders := make([]*ent.ProblemCreate, 0, len(problems))
	for _, p := range problems {
		builders = append(builders, tx.Problem.Create().
			SetProblemID(p.ID).
			SetSubject(p.Subject).
			SetGenre(p.Genre).
			SetUnit(p.Unit).
			SetTargetTimeSecs(p.TargetTimeSecs).
			SetTargetAccuracyPct(p.TargetAccuracyPct).
			SetTier(string(p.Tier)).
			SetFrequencyWeight(p.FrequencyWeight))
	}
	if len(builders) > 0 {
		if _, err := tx.Problem.CreateBulk(builders...).Save(ctx); err != nil {
			tx.Rollback()
			return fmt.Errorf("save problem master: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit catalog replace: %w", err)
	}
	return nil
}

func (r *catalogRepo) Load(ctx context.Context) (*catalog.Catalog, error) {
	rows, err := r.client.Problem.Query().
		Order(ent.Asc(problem.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query problem master: %w", err)
	}

	problems := make([]catalog.Problem, 0, len(rows))
	for _, row := range rows {
		problems = append(problems, catalog.Problem{
			ID:                row.ProblemID,
			Subject:           row.Subject,
			Genre:             row.Genre,
			Unit:              row.Unit,
			TargetTimeSecs:    row.TargetTimeSecs,
			TargetAccuracyPct: row.TargetAccuracyPct,
			Tier:              catalog.ParseTier(row.Tier),
			FrequencyWeight:   row.FrequencyWeight,
		})
	}
	return catalog.New(problems), nil
}
