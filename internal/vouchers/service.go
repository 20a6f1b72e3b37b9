package vouchers

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/bahikhata-dev/bahikhata/internal/id"
	"github.com/bahikhata-dev/bahikhata/internal/model"
)

// Service provides business logic for voucher entry and retrieval over a
// books directory.
type Service struct {
	booksRoot string
	ledgers   LedgerChecker
	log       logrus.FieldLogger
}

// NewService creates a voucher Service.
func NewService(booksRoot string, ledgers LedgerChecker, log logrus.FieldLogger) *Service {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Service{booksRoot: booksRoot, ledgers: ledgers, log: log}
}

// Add assigns the voucher the month's next number, validates the whole
// month including it, and appends it to vouchers.csv. Returns the
// voucher number.
func (s *Service) Add(v model.Voucher) (string, error) {
	year := v.Date.Year()
	month := int(v.Date.Month())

	seq, err := s.NextVoucherSeq(year, month)
	if err != nil {
		return "", err
	}
	v.No = id.FormatVoucherNo(year, month, seq)

	existing, err := s.ReadMonth(year, month)
	if err != nil {
		return "", err
	}

	all := append(existing, v)
	if verrs := ValidateVouchers(all, s.ledgers, year, month); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return "", fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
	}

	path := s.monthPath(year, month)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creating voucher dir: %w", err)
	}

	isNew := false
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		isNew = true
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return "", fmt.Errorf("opening vouchers file: %w", err)
	}
	defer f.Close()

	if isNew {
		if _, err := fmt.Fprintln(f, Header); err != nil {
			return "", fmt.Errorf("writing header: %w", err)
		}
	}

	if err := AppendVouchers(f, []model.Voucher{v}); err != nil {
		return "", fmt.Errorf("appending voucher: %w", err)
	}

	return v.No, nil
}

// ReadMonth reads all vouchers for a given year/month. A missing month
// file is an empty month.
func (s *Service) ReadMonth(year, month int) ([]model.Voucher, error) {
	path := s.monthPath(year, month)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening vouchers %s: %w", path, err)
	}
	defer f.Close()

	vs, err := ReadVouchers(f, s.log)
	if err != nil {
		return nil, fmt.Errorf("reading vouchers %s: %w", path, err)
	}
	return vs, nil
}

// ReadYear reads all vouchers for a year, in month order.
func (s *Service) ReadYear(year int) ([]model.Voucher, error) {
	var all []model.Voucher
	for month := 1; month <= 12; month++ {
		vs, err := s.ReadMonth(year, month)
		if err != nil {
			return nil, err
		}
		all = append(all, vs...)
	}
	return all, nil
}

// NextVoucherSeq returns the next available sequence number for a month.
func (s *Service) NextVoucherSeq(year, month int) (int, error) {
	vs, err := s.ReadMonth(year, month)
	if err != nil {
		return 0, err
	}

	maxSeq := 0
	for _, v := range vs {
		_, _, seq, err := id.ParseVoucherNo(v.No)
		if err != nil {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}
	return maxSeq + 1, nil
}

func (s *Service) monthPath(year, month int) string {
	return filepath.Join(s.booksRoot, fmt.Sprintf("%04d", year), fmt.Sprintf("%02d", month), "vouchers.csv")
}
