package commands

import (
	"github.com/spf13/cobra"
)

// scanCmd runs one fetch-and-rank pass and prints the ranking
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "최근 뉴스 스캔 + 랭킹",
	Long: `RSS 피드에서 최근 기사를 수집해 점수순으로 출력합니다.

Example:
  go run ./cmd/newsquant scan
  go run ./cmd/newsquant scan --period week --industry fnb
  go run ./cmd/newsquant scan --json`,
	RunE: runScan,
}

var (
	scanPeriod   string
	scanIndustry string
	scanJSON     bool
)

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringVar(&scanPeriod, "period", "day", "기간 (day|week|month)")
	scanCmd.Flags().StringVar(&scanIndustry, "industry", "all", "산업 (fnb|tech|all)")
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "JSON 출력")
}

func runScan(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	result, err := a.scanner.Run(cmd.Context(), scanPeriod, scanIndustry)
	if err != nil {
		return err
	}

	if scanJSON {
		return printJSON(cmd.OutOrStdout(), result)
	}

	printScanResult(cmd.OutOrStdout(), result)
	return nil
}
