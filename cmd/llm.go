package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/careercompass/compass/internal/llm"
	"github.com/careercompass/compass/internal/store"
)

const timeLayout = "2006-01-02 15:04:05"

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect LLM request/response events",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM events",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		ctx := cmd.Context()
		st, _, cleanup, err := openRepos(ctx, cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		events, err := st.EventRepo().QueryLLMEvents(ctx, store.QueryOpts{Limit: limit, Purpose: purpose})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No LLM events found.")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTIMESTAMP\tPURPOSE\tMODEL\tIN\tOUT\tMS\tOK")
		for _, e := range events {
			ok := "✓"
			if !e.Success {
				ok = "✗"
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%d\t%d\t%s\n",
				e.ID,
				e.Timestamp.Local().Format(timeLayout),
				e.Purpose,
				truncate(e.Model, 32),
				e.InputTokens,
				e.OutputTokens,
				e.LatencyMs,
				ok,
			)
		}
		return w.Flush()
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "View full request/response for an LLM event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		ctx := cmd.Context()
		st, _, cleanup, err := openRepos(ctx, cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		e, err := st.EventRepo().GetLLMEvent(ctx, id)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if e == nil {
			return fmt.Errorf("event %d not found", id)
		}

		fmt.Printf("ID:        %d\n", e.ID)
		fmt.Printf("Time:      %s\n", e.Timestamp.Local().Format(timeLayout))
		fmt.Printf("Provider:  %s\n", e.Provider)
		fmt.Printf("Model:     %s\n", e.Model)
		fmt.Printf("Purpose:   %s\n", e.Purpose)
		fmt.Printf("Tokens:    %d in / %d out\n", e.InputTokens, e.OutputTokens)
		fmt.Printf("Latency:   %dms\n", e.LatencyMs)
		fmt.Printf("Success:   %v\n", e.Success)
		if e.ErrorMessage != "" {
			fmt.Printf("Error:     %s\n", e.ErrorMessage)
		}

		printBody("REQUEST", e.RequestBody)
		printBody("RESPONSE", e.ResponseBody)
		return nil
	},
}

func printBody(label, body string) {
	sep := strings.Repeat("─", 60)
	fmt.Println()
	fmt.Println(sep)
	fmt.Println(label)
	fmt.Println(sep)
	if body == "" {
		body = "(not captured)"
	}
	fmt.Println(body)
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated LLM token usage and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, _, cleanup, err := openRepos(ctx, cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		byPurpose, err := st.EventRepo().LLMUsageByPurpose(ctx)
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		if len(byPurpose) == 0 {
			fmt.Println("No LLM usage recorded yet.")
			return nil
		}

		fmt.Println("Usage by Purpose")
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "PURPOSE\tCALLS\tINPUT\tOUTPUT\tTOTAL\tAVG MS")

		var totalCalls, totalIn, totalOut int
		for _, p := range byPurpose {
			fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%d\n",
				p.Purpose, p.Calls, p.InputTokens, p.OutputTokens,
				p.InputTokens+p.OutputTokens, p.AvgLatencyMs)
			totalCalls += p.Calls
			totalIn += p.InputTokens
			totalOut += p.OutputTokens
		}
		fmt.Fprintf(w, "TOTAL\t%d\t%d\t%d\t%d\t\n", totalCalls, totalIn, totalOut, totalIn+totalOut)
		if err := w.Flush(); err != nil {
			return err
		}

		byModel, err := st.EventRepo().LLMUsageByModel(ctx)
		if err != nil {
			return fmt.Errorf("query model usage: %w", err)
		}
		if len(byModel) == 0 {
			return nil
		}

		fmt.Println()
		fmt.Println("Estimated Cost (USD)")
		w = tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "MODEL\tCALLS\tINPUT\tOUTPUT\tCOST")

		var totalCost float64
		var unpriced []string
		for _, mu := range byModel {
			cost := llm.LookupCost(mu.Model)
			if cost == nil {
				unpriced = append(unpriced, mu.Model)
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\t?\n",
					truncate(mu.Model, 32), mu.Calls, mu.InputTokens, mu.OutputTokens)
				continue
			}
			c := cost.Cost(mu.InputTokens, mu.OutputTokens)
			totalCost += c
			fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\n",
				truncate(mu.Model, 32), mu.Calls, mu.InputTokens, mu.OutputTokens, formatCost(c))
		}

		label := "TOTAL"
		if len(unpriced) > 0 {
			label = "TOTAL (partial)"
		}
		fmt.Fprintf(w, "%s\t\t\t\t%s\n", label, formatCost(totalCost))
		if err := w.Flush(); err != nil {
			return err
		}

		if len(unpriced) > 0 {
			fmt.Printf("\nPricing unavailable for: %s\n", strings.Join(unpriced, ", "))
		}
		return nil
	},
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (e.g. roadmap-gen, roadmap-edit, test-gen)")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmViewCmd)
	llmCmd.AddCommand(llmStatsCmd)
}
