// Package gsheets читает таблицу учеников через Google Sheets API.
package gsheets

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"studentInfoBot/internal/domain/models"

	"github.com/sethvargo/go-retry"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Client доступ к таблице только на чтение
type Client struct {
	log           *slog.Logger
	service       *sheets.Service
	spreadsheetID string
	readRange     string
	backoff       func() retry.Backoff
}

// New создает клиент Google Sheets API по ключу сервисного аккаунта
func New(ctx context.Context, log *slog.Logger, cfg *Config) (*Client, error) {
	const op = "gsheets.New"

	creds, err := cfg.CredentialsJSON()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	service, err := sheets.NewService(ctx,
		option.WithCredentialsJSON(creds),
		option.WithScopes(sheets.SpreadsheetsReadonlyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create sheets service: %w", op, err)
	}

	return &Client{
		log:           log,
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		readRange:     cfg.Range,
		backoff:       newBackoff(cfg.Retries, cfg.RetryBackoff),
	}, nil
}

// Rows возвращает все строки таблицы как отображение заголовок -> значение
func (c *Client) Rows(ctx context.Context) ([]models.Student, error) {
	const op = "gsheets.Rows"

	resp, err := fetchWithRetry(ctx, c.backoff(), func(ctx context.Context) (*sheets.ValueRange, error) {
		return c.service.Spreadsheets.Values.Get(c.spreadsheetID, c.readRange).Context(ctx).Do()
	})
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read range %s: %w", op, c.readRange, err)
	}

	rows := RecordsFromValues(resp.Values)

	c.log.Debug("spreadsheet rows fetched",
		slog.String("op", op),
		slog.Int("rows", len(rows)),
	)

	return rows, nil
}

// RecordsFromValues превращает диапазон ячеек в записи. Первая строка считается
// заголовком; пустые строки пропускаются, недостающие ячейки становятся "".
func RecordsFromValues(values [][]interface{}) []models.Student {
	if len(values) == 0 {
		return nil
	}

	header := make([]string, len(values[0]))
	for i, cell := range values[0] {
		header[i] = strings.TrimSpace(cellString(cell))
	}

	records := make([]models.Student, 0, len(values)-1)
	for _, row := range values[1:] {
		record := make(models.Student, len(header))
		empty := true

		for i, name := range header {
			if name == "" {
				continue
			}
			if _, seen := record[name]; seen {
				continue
			}

			var v string
			if i < len(row) {
				v = cellString(row[i])
			}
			if strings.TrimSpace(v) != "" {
				empty = false
			}
			record[name] = v
		}

		if empty {
			continue
		}
		records = append(records, record)
	}

	return records
}

func cellString(cell interface{}) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
