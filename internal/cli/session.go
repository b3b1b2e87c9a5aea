// Package cli drives the interactive menu over the console.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/pmarquez/stockbook/internal/backup"
	"github.com/pmarquez/stockbook/internal/inventory"
	"github.com/pmarquez/stockbook/pkg/logger"
)

// Session holds the console streams and the handlers' dependencies for one
// interactive run. Input and output are injected so tests can script them.
type Session struct {
	in         *bufio.Scanner
	out        io.Writer
	repo       *inventory.Repository
	exporter   *backup.Exporter
	backupPath string
	logg       *logger.Logger
	now        func() time.Time
}

func NewSession(in io.Reader, out io.Writer, repo *inventory.Repository, exporter *backup.Exporter, backupPath string, logg *logger.Logger) *Session {
	return &Session{
		in:         bufio.NewScanner(in),
		out:        out,
		repo:       repo,
		exporter:   exporter,
		backupPath: backupPath,
		logg:       logg,
		now:        time.Now,
	}
}

// prompt prints the label and blocks for one line of input. The second return
// is false once input is exhausted.
func (s *Session) prompt(label string) (string, bool) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}
