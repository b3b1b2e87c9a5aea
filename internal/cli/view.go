package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pmarquez/stockbook/pkg/db/models"
	pkgerrors "github.com/pmarquez/stockbook/pkg/errors"
	"github.com/pmarquez/stockbook/pkg/money"
)

// Weekday, day, year, time. The layout carries no month, matching the
// program's historical output.
const viewTimeLayout = "Monday 02 2006 at 15:04:05"

func (s *Session) viewProduct(ctx context.Context) {
	for {
		product := s.promptForProduct(ctx)
		if product == nil {
			return
		}

		fmt.Fprintf(s.out, "\n%s is priced at %s\n", product.Name, money.FormatCents(product.PriceCents))
		fmt.Fprintf(s.out, "There are currently %d item(s) in stock.\n", product.Quantity)
		fmt.Fprintf(s.out, "This item was last updated on %s.\n", product.UpdatedAt.Format(viewTimeLayout))

		repeat, ok := s.prompt("\nWould you like to view another product? y/n: ")
		if !ok || !strings.EqualFold(strings.TrimSpace(repeat), "y") {
			fmt.Fprintln(s.out, "\nReturning you to the main menu!")
			return
		}
	}
}

// promptForProduct re-prompts until a stored id is entered. Non-numeric input
// gets the same miss message as an unknown id. Returns nil once input ends.
func (s *Session) promptForProduct(ctx context.Context) *models.Product {
	for {
		raw, ok := s.prompt("Please enter the ID of an item: ")
		if !ok {
			return nil
		}

		id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err == nil {
			product, lookupErr := s.repo.GetByID(ctx, id)
			if lookupErr == nil {
				return product
			}
			if !pkgerrors.HasCode(lookupErr, pkgerrors.CodeNotFound) {
				s.logg.Error(ctx, "looking up product", lookupErr)
			}
		}
		fmt.Fprintln(s.out, "\nI'm afraid we cannot find that item. Please try again.")
	}
}
