package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pmarquez/stockbook/pkg/money"
)

var validate = validator.New()

// addInput is the add-entry form. Names are letters only, matching the
// original validation rule; price and quantity are parsed separately so each
// failure gets its own message.
type addInput struct {
	Name     string `validate:"required,alpha"`
	Price    string `validate:"required"`
	Quantity string `validate:"required"`
}

func (s *Session) addEntry(ctx context.Context) {
	name, ok := s.prompt("Product name: ")
	if !ok {
		return
	}
	price, ok := s.prompt("Price: $")
	if !ok {
		return
	}
	quantity, ok := s.prompt("Quantity: ")
	if !ok {
		return
	}

	input := addInput{
		Name:     strings.TrimSpace(name),
		Price:    strings.TrimSpace(price),
		Quantity: strings.TrimSpace(quantity),
	}
	if err := validate.Struct(input); err != nil {
		fmt.Fprintln(s.out, validationMessage(err))
		return
	}

	cents, err := money.ParseDollars(input.Price)
	if err != nil {
		fmt.Fprintln(s.out, "I'm afraid that is not a valid price.")
		return
	}
	qty, err := strconv.Atoi(input.Quantity)
	if err != nil || qty < 0 {
		fmt.Fprintln(s.out, "I'm afraid that is not a valid quantity.")
		return
	}

	fmt.Fprintf(s.out, "Product name: %s\n", input.Name)
	fmt.Fprintf(s.out, "Product price: $%s\n", input.Price)
	fmt.Fprintf(s.out, "Product quantity: %d\n", qty)
	confirmation, ok := s.prompt("Please confirm if you'd like to add this product to the inventory. y/n: \n")
	if !ok || !strings.EqualFold(strings.TrimSpace(confirmation), "y") {
		fmt.Fprintln(s.out, "Entry not added. Now returning you to the main menu.")
		return
	}

	_, created, err := s.repo.Upsert(ctx, input.Name, cents, qty, s.now())
	if err != nil {
		s.logg.Error(ctx, "persisting product", err)
		fmt.Fprintln(s.out, "Something went wrong saving that product.")
		return
	}
	if created {
		fmt.Fprintln(s.out, "Product successfully added!")
	} else {
		fmt.Fprintln(s.out, "Product successfully updated!")
	}
}

func validationMessage(err error) string {
	if errs, ok := err.(validator.ValidationErrors); ok {
		for _, fieldErr := range errs {
			if fieldErr.Field() == "Name" {
				return "I'm afraid that is an invalid name for your product."
			}
		}
	}
	return "I'm afraid that input is not valid."
}
