package persistence

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vuhoang/roastline/internal/domain/roast"
	"github.com/vuhoang/roastline/pkg/apperror"
	"github.com/vuhoang/roastline/pkg/logger"
)

type postgresRoastRecordRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresRoastRecordRepo(db *pgxpool.Pool, log logger.Logger) roast.Repository {
	return &postgresRoastRecordRepo{db: db, logger: log}
}

func (r *postgresRoastRecordRepo) Save(ctx context.Context, rec *roast.Record) error {
	sql, args, err := psql.Insert("roast_records").
		Columns("id", "profile_url", "style", "roast_text", "audio_filename", "created_at").
		Values(rec.ID, rec.ProfileURL, string(rec.Style), rec.Text, rec.AudioFilename, rec.CreatedAt).
		ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build roast record insert", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return apperror.NewInternal("failed to insert roast record", err)
	}
	return nil
}

func (r *postgresRoastRecordRepo) SetCDNUrl(ctx context.Context, id uuid.UUID, url string) error {
	sql, args, err := psql.Update("roast_records").
		Set("cdn_url", url).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build roast record update", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return apperror.NewInternal("failed to update roast record cdn url", err)
	}
	return nil
}
