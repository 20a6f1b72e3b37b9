package commands_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bahikhata-dev/bahikhata/internal/ledgers"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build the binary once for all tests.
	tmpDir, err := os.MkdirTemp("", "bahikhata-test-*")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(tmpDir)

	binaryPath = filepath.Join(tmpDir, "bahikhata")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/bahikhata")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		panic("failed to build binary: " + err.Error())
	}

	os.Exit(m.Run())
}

func runBahikhata(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

func TestInit_CreatesStructure(t *testing.T) {
	dir := t.TempDir()
	_, err := runBahikhata(t, "init", dir, "--name", "Sharma Traders")
	require.NoError(t, err)

	for _, d := range []string{"masters", "logs"} {
		info, err := os.Stat(filepath.Join(dir, d))
		require.NoError(t, err, "directory %s should exist", d)
		assert.True(t, info.IsDir(), "%s should be a directory", d)
	}
}

func TestInit_Config(t *testing.T) {
	dir := t.TempDir()
	_, err := runBahikhata(t, "init", dir, "--name", "Sharma Traders", "--state-code", "27", "--gstin", "27AAAPL1234C1ZV")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "bahikhata.yaml"))
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "name: Sharma Traders")
	assert.Contains(t, contents, "state_code: \"27\"")
	assert.Contains(t, contents, "gstin: 27AAAPL1234C1ZV")
	assert.Contains(t, contents, "year_start: 04-01")
}

func TestInit_LedgerMasters(t *testing.T) {
	dir := t.TempDir()
	_, err := runBahikhata(t, "init", dir, "--name", "Sharma Traders")
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(dir, "masters", "ledgers.csv"))
	require.NoError(t, err)
	defer f.Close()

	accts, err := ledgers.ReadLedgers(f)
	require.NoError(t, err)
	assert.Len(t, accts, 6, "default masters carry the trading, tax, and cash ledgers")

	svc := ledgers.NewService(accts)
	for _, name := range []string{"Cash", "Sales", "Purchases", "CGST", "SGST", "IGST"} {
		assert.True(t, svc.Exists(name), "default ledger %s should exist", name)
	}
}

func TestInit_GitRepo(t *testing.T) {
	dir := t.TempDir()
	_, err := runBahikhata(t, "init", dir, "--name", "Sharma Traders")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, ".git"))
	require.NoError(t, err, ".git should exist")

	log := exec.Command("git", "log", "--format=%s", "-1")
	log.Dir = dir
	out, err := log.Output()
	require.NoError(t, err)
	assert.Contains(t, string(out), "init:")

	authorLog := exec.Command("git", "log", "--format=%an <%ae>", "-1")
	authorLog.Dir = dir
	out, err = authorLog.Output()
	require.NoError(t, err)
	assert.Contains(t, string(out), "Bahikhata <books@bahikhata.dev>")
}

func TestInit_RequiresName(t *testing.T) {
	dir := t.TempDir()
	_, err := runBahikhata(t, "init", dir)
	require.Error(t, err, "init without --name should fail")
}

func TestAddAndReport_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	_, err := runBahikhata(t, "init", dir, "--name", "Sharma Traders", "--state-code", "27")
	require.NoError(t, err)

	out, err := runBahikhata(t, "ledger", "add", "--dir", dir,
		"--name", "Gupta & Sons",
		"--category", "Assets", "--group", "Current Assets", "--sub-group", "Sundry Debtors")
	require.NoError(t, err, out)

	out, err = runBahikhata(t, "add", "receipt", "--dir", dir,
		"--party", "Gupta & Sons", "--account", "Cash",
		"--amount", "500", "--date", "2025-04-03")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Recorded receipt voucher 2025-04-001")

	data, err := os.ReadFile(filepath.Join(dir, "2025", "04", "vouchers.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "2025-04-001a")

	out, err = runBahikhata(t, "report", "trial-balance", "--dir", dir, "--year", "2025")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Cash")
	assert.Contains(t, out, "500.00")
}

func TestStockRateFallback_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	_, err := runBahikhata(t, "init", dir, "--name", "Sharma Traders", "--state-code", "27")
	require.NoError(t, err)

	out, err := runBahikhata(t, "ledger", "add", "--dir", dir,
		"--name", "Verma Constructions",
		"--category", "Assets", "--group", "Current Assets", "--sub-group", "Sundry Debtors")
	require.NoError(t, err, out)

	out, err = runBahikhata(t, "stock", "add", "--dir", dir,
		"--name", "Cement", "--unit", "bag", "--gst-rate", "5")
	require.NoError(t, err, out)

	// The item spec carries no GST rate, so the master's 5% applies.
	out, err = runBahikhata(t, "add", "sales", "--dir", dir,
		"--party", "Verma Constructions", "--item", "Cement:10:100",
		"--date", "2025-04-05")
	require.NoError(t, err, out)

	out, err = runBahikhata(t, "report", "gstr1", "--dir", dir, "--year", "2025")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Verma Constructions")
	assert.Contains(t, out, "1000.00")
	assert.Contains(t, out, "25.00")
	assert.Contains(t, out, "1050.00")
}

func TestAdd_RejectsUnknownLedger(t *testing.T) {
	dir := t.TempDir()
	_, err := runBahikhata(t, "init", dir, "--name", "Sharma Traders")
	require.NoError(t, err)

	out, err := runBahikhata(t, "add", "payment", "--dir", dir,
		"--party", "Nobody", "--account", "Cash",
		"--amount", "100", "--date", "2025-04-03")
	require.Error(t, err)
	assert.Contains(t, out, "unknown ledger")
}
