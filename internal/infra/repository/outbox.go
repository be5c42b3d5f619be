package repository

import (
	"context"
	"time"

	"gin-order-service/internal/infra"
	sqlc "gin-order-service/internal/infra/sqlc/generated"
	"gin-order-service/internal/pkg/pgconv"
	"gin-order-service/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	OutboxStatusQueued = "queued"
	OutboxStatusSent   = "sent"
	OutboxStatusFailed = "failed"
)

type OutboxWriteQueries interface {
	CreateOrderEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOrderEventParams) error
	ClaimDueOrderEvents(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimDueOrderEventsParams) ([]sqlc.OrderEvents, error)
	MarkOrderEventSent(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	MarkOrderEventRetry(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkOrderEventRetryParams) error
}

type OutboxRepository struct {
	queries OutboxWriteQueries
	db      sqlc.DBTX
}

func NewOutboxRepository(queries OutboxWriteQueries, db sqlc.DBTX) *OutboxRepository {
	return &OutboxRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OutboxRepository) Enqueue(ctx context.Context, evt shared.OutboxEvent) error {
	params := sqlc.CreateOrderEventParams{
		Topic:       evt.Topic,
		EventType:   evt.Type,
		AggregateID: evt.AggregateID,
		Payload:     evt.Payload,
		RunAt:       pgconv.TimeToPgtype(evt.RunAt),
	}

	err := r.queries.CreateOrderEvent(ctx, r.db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to enqueue order event", err)
	}

	return nil
}

func (r *OutboxRepository) ClaimDue(ctx context.Context, now time.Time, limit int) ([]shared.OutboxMessage, error) {
	rows, err := r.queries.ClaimDueOrderEvents(ctx, r.db, sqlc.ClaimDueOrderEventsParams{
		RunAt: pgconv.TimeToPgtype(now),
		Limit: int32(limit), // #nosec G115 -- configured batch size
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim order events", err)
	}

	msgs := make([]shared.OutboxMessage, 0, len(rows))
	for _, row := range rows {
		msgs = append(msgs, shared.OutboxMessage{
			ID:          row.ID,
			Topic:       row.Topic,
			Type:        row.EventType,
			AggregateID: row.AggregateID,
			Payload:     row.Payload,
			Attempts:    int(row.Attempts),
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return msgs, nil
}

func (r *OutboxRepository) MarkSent(ctx context.Context, id uuid.UUID) error {
	if err := r.queries.MarkOrderEventSent(ctx, r.db, id); err != nil {
		return infra.WrapRepoErr("failed to mark order event sent", err)
	}
	return nil
}

// MarkRetry reschedules the event, or parks it as failed when giveUp is set.
func (r *OutboxRepository) MarkRetry(ctx context.Context, id uuid.UUID, lastError string, runAt time.Time, giveUp bool) error {
	status := OutboxStatusQueued
	if giveUp {
		status = OutboxStatusFailed
	}

	err := r.queries.MarkOrderEventRetry(ctx, r.db, sqlc.MarkOrderEventRetryParams{
		ID:        id,
		Status:    status,
		LastError: pgconv.NonEmptyToPgtype(lastError),
		RunAt:     pgconv.TimeToPgtype(runAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to reschedule order event", err)
	}
	return nil
}
