package cli

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/pmarquez/stockbook/pkg/db/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedWidget(t *testing.T, s *testSession) *models.Product {
	t.Helper()

	product, err := s.repo.Create(context.Background(), &models.Product{
		Name:       "Widget",
		PriceCents: 1999,
		Quantity:   5,
		UpdatedAt:  fixedNow,
	})
	require.NoError(t, err)
	return product
}

func TestViewProductFormatsRecord(t *testing.T) {
	s := newTestSession(t, "")
	product := seedWidget(t, s)

	s.in = newScanner(fmt.Sprintf("%d\nn\n", product.ID))
	s.viewProduct(context.Background())

	output := s.out.String()
	assert.Contains(t, output, "Widget is priced at $19.99")
	assert.Contains(t, output, "There are currently 5 item(s) in stock.")
	assert.Contains(t, output, "This item was last updated on Saturday 04 2026 at 16:30:00.")
	assert.Contains(t, output, "Returning you to the main menu!")
}

func TestViewProductRepromptsOnUnknownID(t *testing.T) {
	s := newTestSession(t, "")
	product := seedWidget(t, s)

	s.in = newScanner(fmt.Sprintf("999\nabc\n%d\nn\n", product.ID))
	s.viewProduct(context.Background())

	output := s.out.String()
	assert.Equal(t, 2, strings.Count(output, "I'm afraid we cannot find that item. Please try again."))
	assert.Contains(t, output, "Widget is priced at $19.99")
}

func TestViewProductLoopsWhileConfirmed(t *testing.T) {
	s := newTestSession(t, "")
	product := seedWidget(t, s)

	s.in = newScanner(fmt.Sprintf("%d\ny\n%d\nn\n", product.ID, product.ID))
	s.viewProduct(context.Background())

	assert.Equal(t, 2, strings.Count(s.out.String(), "Widget is priced at $19.99"))
}

func TestViewProductExitsOnAnyOtherAnswer(t *testing.T) {
	s := newTestSession(t, "")
	product := seedWidget(t, s)

	s.in = newScanner(fmt.Sprintf("%d\nmaybe\n", product.ID))
	s.viewProduct(context.Background())

	assert.Equal(t, 1, strings.Count(s.out.String(), "Widget is priced at $19.99"))
	assert.Contains(t, s.out.String(), "Returning you to the main menu!")
}
