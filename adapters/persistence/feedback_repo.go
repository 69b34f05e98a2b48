package persistence

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vuhoang/roastline/internal/domain/feedback"
	"github.com/vuhoang/roastline/pkg/apperror"
	"github.com/vuhoang/roastline/pkg/logger"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type postgresFeedbackRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresFeedbackRepo(db *pgxpool.Pool, log logger.Logger) feedback.Repository {
	return &postgresFeedbackRepo{db: db, logger: log}
}

func (r *postgresFeedbackRepo) SaveFeedback(ctx context.Context, f *feedback.Feedback) error {
	sql, args, err := psql.Insert("feedback").
		Columns("id", "rating", "comment", "client_timestamp", "created_at").
		Values(f.ID, f.Rating, f.Comment, f.Timestamp, f.CreatedAt).
		ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build feedback insert", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return apperror.NewInternal("failed to insert feedback", err)
	}
	return nil
}

func (r *postgresFeedbackRepo) SaveRating(ctx context.Context, rec *feedback.Rating) error {
	sql, args, err := psql.Insert("ratings").
		Columns("id", "rating", "feedback_text", "created_at").
		Values(rec.ID, rec.Rating, rec.FeedbackText, rec.CreatedAt).
		ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build rating insert", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return apperror.NewInternal("failed to insert rating", err)
	}
	return nil
}
