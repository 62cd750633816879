package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pable/splitstats/internal/csvio"
	"github.com/pable/splitstats/internal/model"
	"github.com/pable/splitstats/internal/pipeline"
	"github.com/pable/splitstats/internal/report"
	"github.com/pable/splitstats/internal/storage"
)

var (
	cPrompt   = color.New(color.FgCyan, color.Bold)
	cMuted    = color.New(color.Faint)
	cError    = color.New(color.FgRed, color.Bold)
	cWarn     = color.New(color.FgYellow)
	cCmd      = color.New(color.FgYellow, color.Bold)
	cGreeting = color.New(color.Bold)
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive session over the raw data",
	Long:  "Load the raw data once and compute splits or run SQL interactively. Type 'help' for available commands.",
	Args:  cobra.NoArgs,
	RunE:  runShell,
}

// shellSession holds the data loaded for one REPL session.
type shellSession struct {
	records []model.Record
	db      *storage.DB
}

func runShell(_ *cobra.Command, _ []string) error {
	records, err := csvio.ReadRecordsFile(cfg.InputRecordsPath)
	if err != nil {
		return fmt.Errorf("read records: %w", err)
	}
	db, err := openRecordsDB(records)
	if err != nil {
		return err
	}
	defer db.Close()
	s := &shellSession{records: records, db: db}

	cGreeting.Println("splitstats shell")
	cMuted.Printf("%d plate-appearance rows from %s, min PA %d\n", len(records), cfg.InputRecordsPath, cfg.MinPA)
	cMuted.Println("type 'help' or 'exit'")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		cPrompt.Print("splitstats")
		cMuted.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		tokens := strings.Fields(line)
		cmd, args := tokens[0], tokens[1:]

		switch cmd {
		case "exit", "quit":
			return nil
		case "help":
			shellHelp()
		case "combos":
			s.combos()
		case "stat":
			if len(args) < 3 {
				cError.Fprintln(os.Stderr, "usage: stat <AVG|OBP|SLG|OPS> <subject> <split>")
				continue
			}
			s.stat(args[0], args[1], strings.Join(args[2:], " "))
		case "subject":
			if len(args) != 1 {
				cError.Fprintln(os.Stderr, "usage: subject <id>")
				continue
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				cError.Fprintf(os.Stderr, "invalid subject id %q\n", args[0])
				continue
			}
			s.subject(id)
		case "sql":
			if len(args) == 0 {
				cError.Fprintln(os.Stderr, "usage: sql <query>")
				continue
			}
			s.sql(strings.TrimSpace(strings.TrimPrefix(line, "sql")))
		default:
			cWarn.Fprintf(os.Stderr, "unknown command %q, type 'help'\n", cmd)
		}
	}
	return scanner.Err()
}

func shellHelp() {
	fmt.Println()
	type entry struct{ cmd, desc string }
	rows := []entry{
		{"combos", "show the configured combinations and their criteria"},
		{"stat <stat> <subject> <split>", "compute one line, e.g. stat OPS HitterId vs LHP"},
		{"subject <id>", "every configured line for one subject id"},
		{"sql <query>", "query the plate_appearances table"},
		{"help", "show this message"},
		{"exit / quit", "close the session"},
	}
	for _, r := range rows {
		fmt.Print("  ")
		cCmd.Printf("%-34s", r.cmd)
		fmt.Println(r.desc)
	}
	fmt.Println()
}

func (s *shellSession) combos() {
	combos, err := csvio.ReadCombinationsFile(cfg.CombinationsPath)
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	steps, err := pipeline.Plan(combos)
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	report.PrintCombinationsTable(os.Stdout, steps)
}

func (s *shellSession) stat(stat, subject, split string) {
	var (
		c   model.Combination
		err error
	)
	if c.Stat, err = model.ParseStat(stat); err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	if c.Subject, err = model.ParseSubject(subject); err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	if c.Split, err = model.ParseSplit(split); err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	s.runAndPrint([]model.Combination{c}, 0)
}

func (s *shellSession) subject(id int64) {
	combos, err := csvio.ReadCombinationsFile(cfg.CombinationsPath)
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	s.runAndPrint(combos, id)
}

// runAndPrint computes combos and prints the rows, restricted to onlyID when non-zero.
func (s *shellSession) runAndPrint(combos []model.Combination, onlyID int64) {
	rows, summary, err := pipeline.Run(s.records, combos, pipeline.Options{MinPA: cfg.MinPA, Logger: logger})
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	if onlyID != 0 {
		var kept []model.OutputRow
		for _, r := range rows {
			if r.SubjectID == onlyID {
				kept = append(kept, r)
			}
		}
		rows = kept
	}
	if len(rows) == 0 {
		cMuted.Println("(no rows)")
		return
	}
	report.PrintReportTable(os.Stdout, rows, 0)
	if summary.ZeroDenominator > 0 {
		cWarn.Printf("%d subjects left out for a zero denominator\n", summary.ZeroDenominator)
	}
}

func (s *shellSession) sql(query string) {
	cols, rows, err := s.db.QueryRaw(query)
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	if len(rows) == 0 {
		cMuted.Println("(no rows)")
		return
	}
	report.PrintRawTable(os.Stdout, cols, rows)
}
