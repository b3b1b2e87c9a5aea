package cli

import (
	"context"
	"fmt"
	"strings"
)

// Command identifies one main-menu action.
type Command string

const (
	CommandAdd    Command = "a"
	CommandView   Command = "v"
	CommandBackup Command = "b"
	CommandQuit   Command = "q"
)

// menuOrder fixes the display order of the menu.
var menuOrder = []Command{CommandAdd, CommandView, CommandBackup}

func (c Command) Label() string {
	switch c {
	case CommandAdd:
		return "Add a new product to the inventory"
	case CommandView:
		return "View an item from the inventory"
	case CommandBackup:
		return "Create a backup of the inventory, exported as a CSV"
	case CommandQuit:
		return "Quit"
	}
	return ""
}

// Run blocks on the menu loop until the quit command is entered or input
// ends. Unrecognized selections simply re-display the menu.
func (s *Session) Run(ctx context.Context) {
	for {
		s.printMenu()
		line, ok := s.prompt("\nSelection: ")
		if !ok {
			return
		}
		switch Command(strings.ToLower(strings.TrimSpace(line))) {
		case CommandAdd:
			s.addEntry(ctx)
		case CommandView:
			s.viewProduct(ctx)
		case CommandBackup:
			s.createBackup(ctx)
		case CommandQuit:
			return
		}
	}
}

func (s *Session) printMenu() {
	fmt.Fprint(s.out, "\nPlease select from the following options. Enter 'q' to quit\n\n")
	for _, cmd := range menuOrder {
		fmt.Fprintf(s.out, "%s) %s\n", string(cmd), cmd.Label())
	}
}

func (s *Session) createBackup(ctx context.Context) {
	count, err := s.exporter.Run(ctx, s.backupPath)
	if err != nil {
		s.logg.Error(ctx, "writing backup", err)
		fmt.Fprintln(s.out, "Something went wrong writing the backup file.")
		return
	}
	s.logg.Debug(s.logg.WithField(ctx, "rows", count), "backup completed")
	fmt.Fprintln(s.out, "\nBackup successfully completed!")
}
