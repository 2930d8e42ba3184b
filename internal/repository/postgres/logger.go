package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	applog "github.com/dom/debt-ledger/internal/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// zerologGorm routes gorm's SQL logging through the application logger.
type zerologGorm struct {
	level logger.LogLevel
}

func NewLogger(level logger.LogLevel) logger.Interface {
	return &zerologGorm{level: level}
}

func (l *zerologGorm) LogMode(level logger.LogLevel) logger.Interface {
	return &zerologGorm{level: level}
}

func (l *zerologGorm) Info(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= logger.Info {
		applog.Log.Info().Msg(fmt.Sprintf(msg, args...))
	}
}

func (l *zerologGorm) Warn(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= logger.Warn {
		applog.Log.Warn().Msg(fmt.Sprintf(msg, args...))
	}
}

func (l *zerologGorm) Error(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= logger.Error {
		applog.Log.Error().Msg(fmt.Sprintf(msg, args...))
	}
}

func (l *zerologGorm) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	// Missing rows are an expected outcome for lookups, not a failure.
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= logger.Error:
		sql, rows := fc()
		applog.Log.Error().Err(err).Dur("elapsed", elapsed).Int64("rows", rows).Str("sql", sql).Msg("query failed")
	case elapsed > slowQueryThreshold && l.level >= logger.Warn:
		sql, rows := fc()
		applog.Log.Warn().Dur("elapsed", elapsed).Int64("rows", rows).Str("sql", sql).Msg("slow query")
	case l.level >= logger.Info:
		sql, rows := fc()
		applog.Log.Debug().Dur("elapsed", elapsed).Int64("rows", rows).Str("sql", sql).Msg("query")
	}
}
