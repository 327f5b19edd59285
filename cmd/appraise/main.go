package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/LootLedger_Go/internal/appraisal"
	"github.com/osse101/LootLedger_Go/internal/catalog"
	"github.com/osse101/LootLedger_Go/internal/domain"
	"github.com/osse101/LootLedger_Go/internal/loot"
)

const usageText = `Usage: appraise [flags] <loot-file>

Prices a loot list and reports per-origin totals. The loot file holds
one "name,amount" pair per line; "-" reads from stdin.

Flags:
`

func main() {
	level := flag.String("level", "", "party level (N) or inclusive range (X-Y) to compare against")
	currency := flag.Int("currency", 0, "flat extra gold to count as currency")
	tablesDir := flag.String("tables", "configs/tables", "directory holding the catalog CSV tables")

	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usageText)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	// Keep CLI output readable: warnings about unknown items still show,
	// routine info logging does not.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(flag.Arg(0), *level, *currency, *tablesDir); err != nil {
		fmt.Fprintln(os.Stderr, "appraise:", err)
		os.Exit(1)
	}
}

func run(lootPath, levelSpec string, currencyGP int, tablesDir string) error {
	cat, err := catalog.NewLoader().Load(tablesDir)
	if err != nil {
		return err
	}

	svc, err := appraisal.NewService(cat, appraisal.DefaultCacheSize)
	if err != nil {
		return err
	}

	lines, err := readLoot(lootPath)
	if err != nil {
		return err
	}

	summary, err := svc.AppraiseLoot(context.Background(), lines, currencyGP)
	if err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	printMoney(p, "Items", summary.Items)
	printMoney(p, "Currency", summary.Currency)
	printMoney(p, "Total", summary.Total)

	for _, name := range summary.Skipped {
		p.Printf("Skipped:  %s\n", name)
	}

	if levelSpec != "" {
		comparison, err := svc.CompareToExpected(summary, levelSpec)
		if err != nil {
			return err
		}

		p.Printf("Expected wealth for level %s: %d gp\n", levelSpec, comparison.ExpectedGP)
		switch comparison.Verdict {
		case appraisal.VerdictNone:
			p.Printf("The loot matches the expected wealth exactly\n")
		case appraisal.VerdictTooMuch:
			p.Printf("Difference: %d gp %s\n", -comparison.DifferenceGP, comparison.Verdict)
		default:
			p.Printf("Difference: %d gp %s\n", comparison.DifferenceGP, comparison.Verdict)
		}
	}

	return nil
}

func readLoot(path string) ([]domain.LootLine, error) {
	if path == "-" {
		return loot.Parse(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open loot file: %w", err)
	}
	defer f.Close()

	return loot.Parse(f)
}

func printMoney(p *message.Printer, label string, m domain.Money) {
	p.Printf("%-9s %d gp, %d sp, %d cp\n", label+":", m.GP, m.SP, m.CP)
}
