package cli

import (
	"context"
	"strings"
	"testing"

	pkgerrors "github.com/pmarquez/stockbook/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddEntryConfirmed(t *testing.T) {
	s := newTestSession(t, "Widget\n19.99\n5\ny\n")

	s.addEntry(context.Background())

	product, err := s.repo.GetByName(context.Background(), "Widget")
	require.NoError(t, err)
	assert.Equal(t, int64(1999), product.PriceCents)
	assert.Equal(t, 5, product.Quantity)
	assert.Equal(t, fixedNow, product.UpdatedAt.UTC())

	output := s.out.String()
	assert.Contains(t, output, "Product price: $19.99")
	assert.Contains(t, output, "Product quantity: 5")
	assert.Contains(t, output, "Product successfully added!")
}

func TestAddEntryUppercaseConfirmation(t *testing.T) {
	s := newTestSession(t, "Widget\n19.99\n5\nY\n")

	s.addEntry(context.Background())

	_, err := s.repo.GetByName(context.Background(), "Widget")
	require.NoError(t, err)
}

func TestAddEntryDeclined(t *testing.T) {
	s := newTestSession(t, "Widget\n19.99\n5\nn\n")

	s.addEntry(context.Background())

	_, err := s.repo.GetByName(context.Background(), "Widget")
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeNotFound), "declined entry must not persist")
	assert.Contains(t, s.out.String(), "Entry not added. Now returning you to the main menu.")
}

func TestAddEntryRejectsNonAlphaName(t *testing.T) {
	for _, name := range []string{"Widget 2", "Widget2", "Widget!", ""} {
		t.Run(name, func(t *testing.T) {
			s := newTestSession(t, name+"\n19.99\n5\ny\n")

			s.addEntry(context.Background())

			assert.Contains(t, s.out.String(), "I'm afraid that is an invalid name for your product.")

			rows, err := s.repo.List(context.Background())
			require.NoError(t, err)
			assert.Empty(t, rows)
		})
	}
}

func TestAddEntryRejectsBadPrice(t *testing.T) {
	s := newTestSession(t, "Widget\nfree\n5\ny\n")

	s.addEntry(context.Background())

	assert.Contains(t, s.out.String(), "I'm afraid that is not a valid price.")
	rows, err := s.repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestAddEntryRejectsBadQuantity(t *testing.T) {
	for _, qty := range []string{"lots", "-3", "2.5"} {
		t.Run(qty, func(t *testing.T) {
			s := newTestSession(t, "Widget\n19.99\n"+qty+"\ny\n")

			s.addEntry(context.Background())

			assert.Contains(t, s.out.String(), "I'm afraid that is not a valid quantity.")
			rows, err := s.repo.List(context.Background())
			require.NoError(t, err)
			assert.Empty(t, rows)
		})
	}
}

func TestAddEntryDuplicateNameUpdates(t *testing.T) {
	s := newTestSession(t, strings.Join([]string{
		"Widget", "19.99", "5", "y",
		"Widget", "25.00", "2", "y",
	}, "\n")+"\n")

	s.addEntry(context.Background())
	s.addEntry(context.Background())

	product, err := s.repo.GetByName(context.Background(), "Widget")
	require.NoError(t, err)
	assert.Equal(t, int64(2500), product.PriceCents)
	assert.Equal(t, 2, product.Quantity)

	rows, err := s.repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1, "re-entry must not create a second record")

	assert.Contains(t, s.out.String(), "Product successfully updated!")
}
