package store

import (
	"context"
	"fmt"

	"github.com/abhisek/prepdash/ent"
	"github.com/abhisek/prepdash/ent/attemptevent"
	"github.com/abhisek/prepdash/internal/attemptlog"
)

// attemptRepo implements AttemptRepo using the ent client.
type attemptRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *attemptRepo) Append(ctx context.Context, entries attemptlog.Log, batchID string) error {
	if len(entries) == 0 {
		return nil
	}

	builders := make([]*ent.AttemptEventCreate, 0, len(entries))
	for _, e := range entries {
		seqNum, err := r.seq.Next(ctx)
		if err != nil {
			return fmt.Errorf("next sequence: %w", err)
		}
		builders = append(builders, r.client.AttemptEvent.Create().
			SetSequence(seqNum).
			SetAttemptedOn(e.Day()).
			SetProblemID(e.ProblemID).
			SetCorrect(e.Correct()).
			SetAnswerSecs(e.AnswerSecs).
			SetMissReason(e.MissReason).
			SetStudyMins(e.StudyMins).
			SetImportBatch(batchID))
	}

	if _, err := r.client.AttemptEvent.CreateBulk(builders...).Save(ctx); err != nil {
		return fmt.Errorf("save attempt batch: %w", err)
	}
	return nil
}

func (r *attemptRepo) Log(ctx context.Context) (attemptlog.Log, error) {
	rows, err := r.client.AttemptEvent.Query().
		Order(ent.Asc(attemptevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}

	log := make(attemptlog.Log, 0, len(rows))
	for _, row := range rows {
		result := attemptlog.ResultIncorrect
		if row.Correct {
			result = attemptlog.ResultCorrect
		}
		log = append(log, attemptlog.Entry{
			Date:       row.AttemptedOn,
			ProblemID:  row.ProblemID,
			Result:     result,
			AnswerSecs: row.AnswerSecs,
			MissReason: row.MissReason,
			StudyMins:  row.StudyMins,
		})
	}
	return log, nil
}

func (r *attemptRepo) Count(ctx context.Context) (int, error) {
	n, err := r.client.AttemptEvent.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count attempts: %w", err)
	}
	return n, nil
}
