package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/bahikhata-dev/bahikhata/internal/auditlog"
	"github.com/bahikhata-dev/bahikhata/internal/config"
	"github.com/bahikhata-dev/bahikhata/internal/gitops"
	"github.com/bahikhata-dev/bahikhata/internal/ledgers"
	"github.com/bahikhata-dev/bahikhata/internal/logging"
	"github.com/bahikhata-dev/bahikhata/internal/model"
	"github.com/bahikhata-dev/bahikhata/internal/stock"
	"github.com/bahikhata-dev/bahikhata/internal/vouchers"
)

// books bundles everything a command needs to work against one books
// directory: config, masters, and a logger at the configured level.
type books struct {
	dir     string
	cfg     *config.Config
	log     *logrus.Logger
	ledgers *ledgers.Service
	stock   *stock.Service
}

// resolveDir picks the books directory: an explicit flag wins, then
// BAHIKHATA_DIR, then the current directory.
func resolveDir(flagDir string) (string, error) {
	dir := flagDir
	if dir == "" {
		env, err := config.LoadEnv()
		if err != nil {
			return "", err
		}
		dir = env.BooksDir
	}
	if dir == "" {
		dir = "."
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}
	return abs, nil
}

// openBooks loads the config and masters for a books directory.
func openBooks(flagDir string) (*books, error) {
	dir, err := resolveDir(flagDir)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(filepath.Join(dir, "bahikhata.yaml"))
	if err != nil {
		return nil, fmt.Errorf("not a books directory (run bahikhata init first): %w", err)
	}

	env, err := config.LoadEnv()
	if err != nil {
		return nil, err
	}
	log := logging.New(env.LogLevel)

	ledgerSvc, err := ledgers.Load(dir)
	if err != nil {
		return nil, err
	}
	stockSvc, err := stock.Load(dir)
	if err != nil {
		return nil, err
	}

	return &books{dir: dir, cfg: cfg, log: log, ledgers: ledgerSvc, stock: stockSvc}, nil
}

// recordVoucher appends the voucher, commits the books if auto-commit is
// on, and writes an audit log entry. Returns the assigned voucher number.
func (b *books) recordVoucher(v model.Voucher) (string, error) {
	svc := vouchers.NewService(b.dir, b.ledgers, b.log)
	no, err := svc.Add(v)
	if err != nil {
		return "", err
	}

	hash := ""
	if b.cfg.Git.AutoCommit && gitops.IsRepo(b.dir) {
		hash, err = gitops.CommitBooks(b.dir, fmt.Sprintf("voucher %s: %s", no, v.Type), b.cfg.Git.AuthorName, b.cfg.Git.AuthorEmail)
		if err != nil {
			return "", fmt.Errorf("committing books: %w", err)
		}
	}

	entry := auditlog.Entry{
		Timestamp:  time.Now().UTC(),
		User:       os.Getenv("USER"),
		Action:     "voucher.add",
		Details:    string(v.Type),
		VoucherNo:  no,
		CommitHash: hash,
	}
	if err := auditlog.Append(b.dir, []auditlog.Entry{entry}); err != nil {
		return "", fmt.Errorf("writing audit log: %w", err)
	}

	return no, nil
}

// readPeriod reads a month's vouchers, or the whole year when month is 0.
func (b *books) readPeriod(year, month int) ([]model.Voucher, error) {
	svc := vouchers.NewService(b.dir, b.ledgers, b.log)
	if month == 0 {
		return svc.ReadYear(year)
	}
	return svc.ReadMonth(year, month)
}
