package commands

import (
	"context"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose      bool
	noSummary    bool
	taxonomyPath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "newsquant",
	Short: "NewsQuant - 뉴스 시그널 추출 / 스코어링",
	Long: `NewsQuant Unified CLI

뉴스 기사에서 감성, 티커, 트래픽 부스트 카테고리를 추출해
종목 시그널 요약과 0~10 관련도 점수를 만듭니다.

Usage:
  go run ./cmd/newsquant [command]

Examples:
  go run ./cmd/newsquant api --watch
  go run ./cmd/newsquant scan --period week --industry fnb
  go run ./cmd/newsquant analyze --content "$MCD jumps after new CEO named"
  go run ./cmd/newsquant scheduler list`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug 로그 출력")
	rootCmd.PersistentFlags().BoolVar(&noSummary, "no-summary", false, "요약 API 사용 안 함 (truncation만 사용)")
	rootCmd.PersistentFlags().StringVar(&taxonomyPath, "taxonomy", "", "카테고리 YAML 경로 (기본: 내장 테이블)")
}
