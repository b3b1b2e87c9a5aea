// Package importer loads the seed CSV into the store on startup.
package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pmarquez/stockbook/internal/inventory"
	"github.com/pmarquez/stockbook/pkg/db"
	"github.com/pmarquez/stockbook/pkg/logger"
	"github.com/pmarquez/stockbook/pkg/money"
	"go.uber.org/multierr"
	"gorm.io/gorm"
)

var seedHeader = []string{"product_name", "product_price", "product_quantity"}

// Importer upserts seed rows into the store, one transaction per row.
type Importer struct {
	client *db.Client
	repo   *inventory.Repository
	logg   *logger.Logger
	now    func() time.Time
}

func New(client *db.Client, repo *inventory.Repository, logg *logger.Logger) *Importer {
	return &Importer{client: client, repo: repo, logg: logg, now: time.Now}
}

// Result summarises one import run. RowErrors aggregates the skipped rows;
// rows around a bad one still commit.
type Result struct {
	Created   int
	Updated   int
	Skipped   int
	RowErrors error
}

// Run reads the seed file and upserts every row. The returned error covers
// opening and header problems only; per-row failures land in Result.RowErrors.
func (im *Importer) Run(ctx context.Context, path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("opening seed file: %w", err)
	}
	defer f.Close()

	return im.consume(ctx, csv.NewReader(f))
}

func (im *Importer) consume(ctx context.Context, reader *csv.Reader) (Result, error) {
	reader.FieldsPerRecord = len(seedHeader)

	header, err := reader.Read()
	if err != nil {
		return Result{}, fmt.Errorf("reading seed header: %w", err)
	}
	if err := validateHeader(header); err != nil {
		return Result{}, err
	}

	var res Result
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			im.skip(ctx, &res, line, err)
			continue
		}

		name, cents, quantity, err := parseRow(row)
		if err != nil {
			im.skip(ctx, &res, line, err)
			continue
		}

		var created bool
		err = im.client.WithTx(ctx, func(tx *gorm.DB) error {
			_, c, upsertErr := im.repo.WithTx(tx).Upsert(ctx, name, cents, quantity, im.now())
			created = c
			return upsertErr
		})
		if err != nil {
			im.skip(ctx, &res, line, err)
			continue
		}
		if created {
			res.Created++
		} else {
			res.Updated++
		}
	}

	return res, nil
}

func (im *Importer) skip(ctx context.Context, res *Result, line int, err error) {
	res.Skipped++
	res.RowErrors = multierr.Append(res.RowErrors, fmt.Errorf("row %d: %w", line, err))
	if im.logg != nil {
		im.logg.Warn(im.logg.WithField(ctx, "row", line), fmt.Sprintf("skipping seed row: %v", err))
	}
}

func validateHeader(header []string) error {
	if len(header) != len(seedHeader) {
		return fmt.Errorf("seed header has %d columns, want %d", len(header), len(seedHeader))
	}
	for i, col := range header {
		if strings.TrimSpace(col) != seedHeader[i] {
			return fmt.Errorf("seed header column %d is %q, want %q", i+1, col, seedHeader[i])
		}
	}
	return nil
}

func parseRow(row []string) (string, int64, int, error) {
	name := strings.TrimSpace(row[0])
	if name == "" {
		return "", 0, 0, fmt.Errorf("empty product name")
	}

	cents, err := money.ParseDollars(row[1])
	if err != nil {
		return "", 0, 0, err
	}

	quantity, err := strconv.Atoi(strings.TrimSpace(row[2]))
	if err != nil {
		return "", 0, 0, fmt.Errorf("parsing quantity %q: %w", row[2], err)
	}
	if quantity < 0 {
		return "", 0, 0, fmt.Errorf("negative quantity %d", quantity)
	}

	return name, cents, quantity, nil
}
