package student

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"studentInfoBot/internal/domain/models"
	"studentInfoBot/internal/metrics"
	"studentInfoBot/internal/pkg/logger/sl"
	"studentInfoBot/internal/pkg/phone"
)

var (
	ErrStudentNotFound    = errors.New("student not found")
	ErrBackendUnavailable = errors.New("student backend unavailable")
)

// RowProvider отдает все строки таблицы учеников
type RowProvider interface {
	Rows(ctx context.Context) ([]models.Student, error)
}

// LookupObserver учитывает результаты поиска
type LookupObserver interface {
	ObserveLookup(result string, took time.Duration)
}

type Student struct {
	log      *slog.Logger
	rows     RowProvider
	observer LookupObserver
	timeout  time.Duration
}

func New(
	log *slog.Logger,
	rows RowProvider,
	observer LookupObserver,
	timeout time.Duration,
) *Student {
	return &Student{
		log:      log,
		rows:     rows,
		observer: observer,
		timeout:  timeout,
	}
}

// FindByPhone читает всю таблицу и возвращает первую строку, чей номер
// совпадает с искомым после нормализации.
func (s *Student) FindByPhone(ctx context.Context, rawPhone string) (models.Student, error) {
	const op = "Student.FindByPhone"

	wanted := phone.Normalize(rawPhone)

	log := s.log.With(
		slog.String("op", op),
		slog.String("phone", wanted),
	)

	log.Info("looking up student")

	started := time.Now()

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	rows, err := s.rows.Rows(ctx)
	if err != nil {
		log.Error("failed to read students", sl.Err(err))
		s.observe(metrics.LookupUnavailable, started)

		return nil, fmt.Errorf("%s: %w: %w", op, ErrBackendUnavailable, err)
	}

	for _, row := range rows {
		// Normalize не идемпотентна, поэтому сравниваются исходные значения
		if phone.Equal(row[models.FieldPhone], rawPhone) {
			log.Info("student found", slog.String("name", row.FullName()))
			s.observe(metrics.LookupFound, started)

			return row, nil
		}
	}

	log.Info("student not found", slog.Int("rows", len(rows)))
	s.observe(metrics.LookupNotFound, started)

	return nil, fmt.Errorf("%s: %w", op, ErrStudentNotFound)
}

func (s *Student) observe(result string, started time.Time) {
	if s.observer != nil {
		s.observer.ObserveLookup(result, time.Since(started))
	}
}
