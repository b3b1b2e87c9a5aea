// Package backup dumps the store to a CSV file.
package backup

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/pmarquez/stockbook/internal/inventory"
	"github.com/pmarquez/stockbook/pkg/logger"
	"github.com/pmarquez/stockbook/pkg/money"
)

var backupHeader = []string{"product_id", "product_name", "product_price", "product_quantity", "date_updated"}

const dateLayout = "01/02/2006"

// Exporter writes every stored record to the backup CSV, overwriting any
// previous backup at the same path.
type Exporter struct {
	repo *inventory.Repository
	logg *logger.Logger
}

func NewExporter(repo *inventory.Repository, logg *logger.Logger) *Exporter {
	return &Exporter{repo: repo, logg: logg}
}

// Run exports the store and returns the number of rows written.
func (e *Exporter) Run(ctx context.Context, path string) (int, error) {
	products, err := e.repo.List(ctx)
	if err != nil {
		return 0, err
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("creating backup file: %w", err)
	}

	writer := csv.NewWriter(f)
	if err := writer.Write(backupHeader); err != nil {
		_ = f.Close()
		return 0, fmt.Errorf("writing backup header: %w", err)
	}
	for _, p := range products {
		record := []string{
			strconv.FormatInt(p.ID, 10),
			p.Name,
			money.FormatCents(p.PriceCents),
			strconv.Itoa(p.Quantity),
			p.UpdatedAt.Format(dateLayout),
		}
		if err := writer.Write(record); err != nil {
			_ = f.Close()
			return 0, fmt.Errorf("writing backup row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		_ = f.Close()
		return 0, fmt.Errorf("flushing backup: %w", err)
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("closing backup file: %w", err)
	}

	if e.logg != nil {
		e.logg.Info(e.logg.WithFields(ctx, map[string]any{"path": path, "rows": len(products)}), "backup written")
	}
	return len(products), nil
}
