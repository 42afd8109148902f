package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bumdeskas-cli",
		Short: "BUMDes bookkeeping CLI tool",
		Long:  `A command line interface for interacting with the BUMDes bookkeeping API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the bookkeeping API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(entryCmd())
	rootCmd.AddCommand(ledgerCmd())
	rootCmd.AddCommand(trialBalanceCmd())
	rootCmd.AddCommand(statementsCmd())
	rootCmd.AddCommand(backupCmd())
	rootCmd.AddCommand(exportCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func entryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entry",
		Short: "Journal entry operations",
	}

	var date, description, ref, account, debit, kredit string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a journal entry",
		Run: func(cmd *cobra.Command, args []string) {
			body := map[string]any{
				"date":        date,
				"description": description,
				"ref":         ref,
				"account":     account,
				"debit":       debit,
				"kredit":      kredit,
			}
			doJSON(http.MethodPost, "/api/v1/entries", body)
		},
	}
	addCmd.Flags().StringVar(&date, "date", "", "Entry date, e.g. 31-03-2025")
	addCmd.Flags().StringVar(&description, "description", "", "Entry description")
	addCmd.Flags().StringVar(&ref, "ref", "", "Account ref code")
	addCmd.Flags().StringVar(&account, "account", "", "Account name")
	addCmd.Flags().StringVar(&debit, "debit", "0", "Debit amount")
	addCmd.Flags().StringVar(&kredit, "kredit", "0", "Kredit amount")

	var month, year int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List journal entries",
		Run: func(cmd *cobra.Command, args []string) {
			doJSON(http.MethodGet, "/api/v1/entries"+periodQuery(month, year), nil)
		},
	}
	listCmd.Flags().IntVar(&month, "month", 0, "Filter month (1-12)")
	listCmd.Flags().IntVar(&year, "year", 0, "Filter year")

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a journal entry",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			doJSON(http.MethodDelete, "/api/v1/entries/"+args[0], nil)
		},
	}

	cmd.AddCommand(addCmd, listCmd, deleteCmd)
	return cmd
}

func ledgerCmd() *cobra.Command {
	var month, year int
	cmd := &cobra.Command{
		Use:   "ledger [ref]",
		Short: "Show the ledger, or one account with running balance",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			path := "/api/v1/ledger"
			if len(args) == 1 {
				path += "/" + args[0]
			}
			doJSON(http.MethodGet, path+periodQuery(month, year), nil)
		},
	}
	cmd.Flags().IntVar(&month, "month", 0, "Filter month (1-12)")
	cmd.Flags().IntVar(&year, "year", 0, "Filter year")
	return cmd
}

func trialBalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trial-balance",
		Short: "Trial balance operations",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Show the trial balance",
		Run: func(cmd *cobra.Command, args []string) {
			doJSON(http.MethodGet, "/api/v1/trial-balance", nil)
		},
	}

	var month, year int
	var mode string
	syncCmd := &cobra.Command{
		Use:   "sync",
		Short: "Sync the trial balance from the ledger",
		Run: func(cmd *cobra.Command, args []string) {
			doJSON(http.MethodPost, "/api/v1/trial-balance/sync", map[string]any{
				"month": month,
				"year":  year,
				"mode":  mode,
			})
		},
	}
	syncCmd.Flags().IntVar(&month, "month", 0, "Period month (1-12)")
	syncCmd.Flags().IntVar(&year, "year", 0, "Period year")
	syncCmd.Flags().StringVar(&mode, "mode", "merge", "Sync mode: merge or replace")

	cmd.AddCommand(listCmd, syncCmd)
	return cmd
}

func statementsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "statements",
		Short: "Financial statement operations",
	}

	for _, kind := range []string{"income", "balance-sheet", "cash-flow"} {
		kind := kind
		cmd.AddCommand(&cobra.Command{
			Use:   kind,
			Short: "Show the " + kind + " statement",
			Run: func(cmd *cobra.Command, args []string) {
				doJSON(http.MethodGet, "/api/v1/statements/"+kind, nil)
			},
		})
	}

	var force bool
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed statement tables from the trial balance",
		Run: func(cmd *cobra.Command, args []string) {
			path := "/api/v1/statements/seed"
			if force {
				path += "?force=true"
			}
			doJSON(http.MethodPost, path, nil)
		},
	}
	seedCmd.Flags().BoolVar(&force, "force", false, "Reload even if already seeded")
	cmd.AddCommand(seedCmd)

	return cmd
}

func backupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Backup operations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "push",
		Short: "Push a snapshot to the configured GitHub repository",
		Run: func(cmd *cobra.Command, args []string) {
			doJSON(http.MethodPost, "/api/v1/backup", nil)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "snapshot",
		Short: "Print the raw session snapshot",
		Run: func(cmd *cobra.Command, args []string) {
			doJSON(http.MethodGet, "/api/v1/backup/snapshot", nil)
		},
	})

	return cmd
}

func exportCmd() *cobra.Command {
	var out string
	var month, year int
	cmd := &cobra.Command{
		Use:   "export <report>",
		Short: "Download a report as PDF",
		Long:  "Report is one of: journal, trial-balance, income, balance-sheet, cash-flow, or ledger/<ref>.",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			paths := map[string]string{
				"journal":       "/api/v1/entries/journal",
				"trial-balance": "/api/v1/trial-balance",
				"income":        "/api/v1/statements/income",
				"balance-sheet": "/api/v1/statements/balance-sheet",
				"cash-flow":     "/api/v1/statements/cash-flow",
			}
			path, ok := paths[args[0]]
			if !ok {
				if len(args[0]) > 7 && args[0][:7] == "ledger/" {
					path = "/api/v1/" + args[0]
				} else {
					fmt.Printf("Unknown report %q\n", args[0])
					os.Exit(1)
				}
			}

			sep := "?"
			query := periodQuery(month, year)
			if query != "" {
				sep = "&"
			}
			downloadPDF(path+query+sep+"format=pdf", out)
		},
	}
	cmd.Flags().StringVar(&out, "out", "report.pdf", "Output file")
	cmd.Flags().IntVar(&month, "month", 0, "Report month (1-12)")
	cmd.Flags().IntVar(&year, "year", 0, "Report year")
	return cmd
}

func periodQuery(month, year int) string {
	if month == 0 && year == 0 {
		return ""
	}
	return fmt.Sprintf("?month=%d&year=%d", month, year)
}

func doJSON(method, path string, body any) {
	client := &http.Client{Timeout: timeout}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			fmt.Printf("Failed to encode request: %v\n", err)
			os.Exit(1)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, baseURL+path, reqBody)
	if err != nil {
		fmt.Printf("Failed to build request: %v\n", err)
		os.Exit(1)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(data))
		os.Exit(1)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, data, "", "  "); err != nil {
		fmt.Println(string(data))
		return
	}
	fmt.Println(pretty.String())
}

func downloadPDF(path, out string) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		fmt.Printf("Export failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	f, err := os.Create(out)
	if err != nil {
		fmt.Printf("Failed to create %s: %v\n", out, err)
		os.Exit(1)
	}
	defer f.Close()

	n, err := io.Copy(f, resp.Body)
	if err != nil {
		fmt.Printf("Failed to write %s: %v\n", out, err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s (%d bytes)\n", out, n)
}
