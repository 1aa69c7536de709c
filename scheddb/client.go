package scheddb

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"horaires.srtgn.tn/internal/logging"
)

// Client is the main entry point for the timetable database.
type Client struct {
	config        Config
	DB            *sql.DB
	Queries       *Queries
	importRuntime time.Duration
}

// NewClient creates a new Client with the provided configuration.
func NewClient(config Config) (*Client, error) {
	db, err := createDB(config)
	if err != nil {
		return nil, fmt.Errorf("unable to create timetable DB: %w", err)
	}

	return &Client{
		config:  config,
		DB:      db,
		Queries: New(db),
	}, nil
}

func (c *Client) Close() error {
	return c.DB.Close()
}

// ImportRuntime returns how long the last import took.
func (c *Client) ImportRuntime() time.Duration {
	return c.importRuntime
}

// DownloadAndStore downloads a timetable CSV from the given URL and stores
// it in the database, replacing any previous timetable.
func (c *Client) DownloadAndStore(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("error creating timetable request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("error downloading timetable: %w", err)
	}
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "timetable_downloader")),
		"http_response_body")

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading timetable: %w", err)
	}

	return c.processAndStoreTimetable(ctx, b)
}

// ImportFromFile imports a timetable CSV from a local file into the
// database, replacing any previous timetable.
func (c *Client) ImportFromFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return c.processAndStoreTimetable(ctx, data)
}

func (c *Client) processAndStoreTimetable(ctx context.Context, data []byte) error {
	start := time.Now()

	trips, skipped, err := parseTimetableCSV(data)
	if err != nil {
		return fmt.Errorf("error parsing timetable CSV: %w", err)
	}

	if err := c.replaceTimetable(ctx, trips); err != nil {
		return err
	}

	c.importRuntime = time.Since(start)

	if c.config.verbose {
		c.logImportSummary(trips, skipped)
	}

	return nil
}
