package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dom/debt-ledger/internal/logger"
)

type sampleDebt struct {
	name        string
	debtType    string
	amount      string
	currency    string
	description string
	useDefault  bool
}

var sampleDebts = []sampleDebt{
	{name: "Bob", debtType: "OWED_TO", amount: "100", currency: "USD", description: "concert tickets", useDefault: true},
	{name: "Bob", debtType: "OWED_BY", amount: "40", currency: "USD", description: "taxi"},
	{name: "Alice", debtType: "OWED_TO", amount: "250000", currency: "UZS", description: "lunch", useDefault: true},
	{name: "Carol", debtType: "OWED_BY", amount: "15.50", currency: "EUR", description: "book"},
}

func main() {
	apiURL := "http://localhost:8080"
	if envURL := os.Getenv("API_URL"); envURL != "" {
		apiURL = envURL
	}

	username := flag.String("username", "demo", "Demo account username")
	email := flag.String("email", "demo@example.com", "Demo account email")
	password := flag.String("password", "demopassword123", "Demo account password")
	flag.Usage = printUsage
	flag.Parse()

	client := NewAPIClient(apiURL)

	if err := client.Signup(*username, *email, *password); err != nil {
		logger.Log.Fatal().Err(err).Msg("signup failed")
	}

	tokens, err := client.Login(*username, *password)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("login failed")
	}

	now := time.Now().UTC()
	for i, d := range sampleDebts {
		debt, err := client.CreateDebt(tokens.Access, map[string]interface{}{
			"name":                          d.name,
			"debt_type":                     d.debtType,
			"amount":                        d.amount,
			"currency":                      d.currency,
			"description":                   d.description,
			"received_or_given_time":        now.AddDate(0, 0, -i).Format("2006-01-02"),
			"setting_reminder_time_default": d.useDefault,
		})
		if err != nil {
			logger.Log.Fatal().Err(err).Str("name", d.name).Msg("create debt failed")
		}
		logger.Log.Info().
			Uint("debt_id", debt.ID).
			Str("name", debt.Name).
			Str("debt_type", debt.DebtType).
			Str("amount", debt.Amount.String()).
			Msg("debt created")
	}

	totals, err := client.Individual(tokens.Access)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("failed to fetch counterparty totals")
	}

	fmt.Printf("\n%-4s %-12s %12s %12s %12s\n", "ID", "NAME", "OWED TO", "OWED BY", "TOTAL")
	for _, t := range totals {
		fmt.Printf("%-4d %-12s %12s %12s %12s\n", t.DebtNameID, t.Name,
			t.OwedToMoney.StringFixed(2), t.OwedByMoney.StringFixed(2), t.Total.StringFixed(2))
	}

	monitoring, err := client.Monitoring(tokens.Access)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("failed to fetch monitoring")
	}
	fmt.Printf("\nOverall: %s owed to you, %s owed by you, net %s\n",
		monitoring.DebtMonitoring.OwedToTotal.StringFixed(2),
		monitoring.DebtMonitoring.OwedByTotal.StringFixed(2),
		monitoring.DebtMonitoring.Total.StringFixed(2))
}

func printUsage() {
	fmt.Println(`Seeder - records sample debts for a demo account

USAGE:
  seeder [--username=demo] [--email=demo@example.com] [--password=...]

ENVIRONMENT:
  API_URL   Backend API URL (default: http://localhost:8080)

Re-running the seeder adds the sample debts again; counterparty names are
reused.`)
}
