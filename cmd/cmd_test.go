package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/paydown"
	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs a subcommand with args.
func execute(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(fs)
	require.NoError(t, fs.Parse(args))
	return c.Execute(context.Background(), fs)
}

// useLoanFile points the global -f flag to a new file with content.
func useLoanFile(t *testing.T, content string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "loan.json")
	require.NoError(t, os.WriteFile(filename, []byte(content), 0644))
	*loanFile = filename
	t.Cleanup(func() { *loanFile = "" })
	return filename
}

func TestLoanFileSetting(t *testing.T) {
	t.Setenv(EnvLoanFile, "")
	assert.Equal(t, "loan.json", LoanFile())

	t.Setenv(EnvLoanFile, "env.json")
	assert.Equal(t, "env.json", LoanFile())

	*loanFile = "flag.json"
	defer func() { *loanFile = "" }()
	assert.Equal(t, "flag.json", LoanFile())
}

func TestFmt(t *testing.T) {
	filename := useLoanFile(t, `{"events":[{"date":"1.6.2024","pay_single_fee":2},{"date":"1.3.2024","rate":4}],
	"loan":{"start_date":"1.1.2024","end_date":"1.1.2025","principal":1000,"rate":5}}`)

	assert.Equal(t, subcommands.ExitFailure, execute(t, &fmtCmd{}, "-check"))
	assert.Equal(t, subcommands.ExitSuccess, execute(t, &fmtCmd{}))
	assert.Equal(t, subcommands.ExitSuccess, execute(t, &fmtCmd{}, "-check"))

	f, err := os.Open(filename)
	require.NoError(t, err)
	defer f.Close()
	_, events, err := paydown.DecodeLoan(f)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.IsType(t, paydown.RateChange{}, events[0])
}

func TestFmtRejectsInvalidLoan(t *testing.T) {
	useLoanFile(t, `{"loan":{"start_date":"01.01.2024","end_date":"01.01.2025","principal":1000,"rate":5},
	"events":[{"date":"01.01.2024","rate":4}]}`)
	assert.Equal(t, subcommands.ExitFailure, execute(t, &fmtCmd{}))
}

func TestImport(t *testing.T) {
	dir := t.TempDir()
	record := filepath.Join(dir, "answer.json")
	require.NoError(t, os.WriteFile(record, []byte(`{"data":[{"sdt":"2024-01-01","edt":"2025-01-01","fp":"5000","fr":"4.5",
	"pdt":"2024-02-01","frpd":1,"items":[{"fdt":"2024-06-01","fr":"4"}]}]}`), 0644))
	out := filepath.Join(dir, "loan.json")

	require.Equal(t, subcommands.ExitSuccess, execute(t, &importCmd{}, "-root", "$.data[0]", "-o", out, record))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	terms, events, err := paydown.DecodeLoan(f)
	require.NoError(t, err)
	assert.Equal(t, "5000", terms.Principal.String())
	assert.Equal(t, paydown.Act365, terms.DayCount)
	require.NotNil(t, terms.Recurring)
	require.Len(t, events, 1)
}

func TestScheduleRequiresLoanFile(t *testing.T) {
	*loanFile = filepath.Join(t.TempDir(), "missing.json")
	defer func() { *loanFile = "" }()
	assert.Equal(t, subcommands.ExitFailure, execute(t, &scheduleCmd{}))
}

func TestSummaryJSON(t *testing.T) {
	useLoanFile(t, `{"loan":{"start_date":"01.01.2024","end_date":"01.01.2025","principal":1000,"rate":5}}`)
	assert.Equal(t, subcommands.ExitSuccess, execute(t, &summaryCmd{}, "-json"))
}

func TestAnnuityUsage(t *testing.T) {
	assert.Equal(t, subcommands.ExitUsageError, execute(t, &annuityCmd{}))
	assert.Equal(t, subcommands.ExitUsageError, execute(t, &annuityCmd{}, "-principal", "1000", "-rate", "5", "-new-rate", "4"))
	assert.Equal(t, subcommands.ExitFailure, execute(t, &annuityCmd{},
		"-principal", "10000", "-rate", "6", "-installment", "10", "-new-rate", "4", "-on", "01.07.2024", "-maturity", "01.01.2025"))
}

func TestTopic(t *testing.T) {
	t.Setenv(EnvStyle, "plain")
	assert.Equal(t, subcommands.ExitSuccess, execute(t, &topicCmd{}, "-list"))
	assert.Equal(t, subcommands.ExitSuccess, execute(t, &topicCmd{}, "loan-file"))
	assert.Equal(t, subcommands.ExitFailure, execute(t, &topicCmd{}, "no-such-topic"))
}
