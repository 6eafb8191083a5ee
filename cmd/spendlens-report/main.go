// Command spendlens-report logs into a SpendLens server, builds the spending
// breakdown and average-spend reports for a date range and prints them.
//
// Credentials and the server URL come from the environment (a .env file is
// loaded when present):
//
//	SPENDLENS_BASE_URL  defaults to http://localhost:8000
//	SPENDLENS_EMAIL
//	SPENDLENS_PASSWORD
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/spendlens/spendlens-go/pkg/spendlens"
)

func main() {
	// Missing .env is fine, the variables may be set directly
	_ = godotenv.Load()

	var (
		startDate = flag.String("start", defaultStart(), "Range start (YYYY-MM-DD)")
		endDate   = flag.String("end", time.Now().UTC().Format("2006-01-02"), "Range end (YYYY-MM-DD)")
		asJSON    = flag.Bool("json", false, "Print reports as JSON")
	)
	flag.Parse()

	email := os.Getenv("SPENDLENS_EMAIL")
	password := os.Getenv("SPENDLENS_PASSWORD")
	if email == "" || password == "" {
		log.Fatal("SPENDLENS_EMAIL and SPENDLENS_PASSWORD must be set")
	}

	client, err := spendlens.NewClient(&spendlens.ClientOptions{
		BaseURL: os.Getenv("SPENDLENS_BASE_URL"),
	})
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}
	defer client.Close()

	ctx := context.Background()

	if err := client.Auth.Login(ctx, email, password); err != nil {
		log.Fatalf("Login failed: %v", err)
	}
	defer func() {
		if err := client.Auth.Logout(context.Background()); err != nil {
			log.Printf("Logout failed: %v", err)
		}
	}()

	breakdown, err := client.Reports.SpendingBreakdown(ctx, *startDate, *endDate)
	if err != nil {
		log.Fatalf("Failed to build spending breakdown: %v", err)
	}

	averages, err := client.Reports.AverageSpend(ctx, *startDate, *endDate)
	if err != nil {
		log.Fatalf("Failed to fetch average spend: %v", err)
	}

	if *asJSON {
		printJSON(breakdown, averages)
		return
	}

	printBreakdown(breakdown)
	printAverages(averages)
}

func defaultStart() string {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
}

func printJSON(breakdown *spendlens.SpendingBreakdown, averages *spendlens.AverageSpendReport) {
	out := map[string]interface{}{
		"breakdown":    breakdown,
		"averageSpend": averages,
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode report: %v", err)
	}
	fmt.Println(string(data))
}

func printBreakdown(breakdown *spendlens.SpendingBreakdown) {
	fmt.Printf("Spending %s to %s\n", breakdown.StartDate, breakdown.EndDate)
	if breakdown.Incomplete {
		fmt.Println("(partial data: not every page of the range could be fetched)")
	}

	for _, entry := range breakdown.Categories {
		share := 0.0
		if breakdown.TotalSpend > 0 {
			share = entry.Total / breakdown.TotalSpend * 100
		}
		fmt.Printf("  %-24s %10.2f  %5.1f%%\n", entry.Name, entry.Total, share)
	}
	fmt.Printf("  %-24s %10.2f\n", "Total", breakdown.TotalSpend)

	if len(breakdown.Trend) >= spendlens.MinTrendPoints {
		fmt.Println("\nDaily trend:")
		for _, day := range breakdown.Trend {
			fmt.Printf("  %s  %10.2f\n", day.Date, day.TotalAmount)
		}
	}
}

func printAverages(report *spendlens.AverageSpendReport) {
	fmt.Println("\nAverage spend per category:")
	for _, row := range report.Expense {
		fmt.Printf("  %-24s %10.2f over %d expenses\n", row.CategoryName, row.AverageAmount, row.ExpenseCount)
	}
	if len(report.Income) > 0 {
		fmt.Println("\nIncome:")
		for _, row := range report.Income {
			fmt.Printf("  %-24s %10.2f over %d entries\n", row.CategoryName, row.AverageAmount, row.ExpenseCount)
		}
	}
}
