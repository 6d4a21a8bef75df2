package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wonny/newsquant/internal/contracts"
)

// analyzeCmd composes one article and prints the analysis as JSON
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "단건 기사 분석",
	Long: `기사 한 건의 시그널 요약을 JSON으로 출력합니다.
--content 가 비어 있고 --url 이 있으면 본문을 URL에서 추출합니다.

Example:
  go run ./cmd/newsquant analyze --title "Tesla" --content '$TSLA surges after new CEO appointed'
  go run ./cmd/newsquant analyze --url https://example.com/story`,
	RunE: runAnalyze,
}

var (
	analyzeTitle   string
	analyzeContent string
	analyzeURL     string
	analyzeSource  string
)

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&analyzeTitle, "title", "", "기사 제목")
	analyzeCmd.Flags().StringVar(&analyzeContent, "content", "", "기사 본문")
	analyzeCmd.Flags().StringVar(&analyzeURL, "url", "", "기사 URL")
	analyzeCmd.Flags().StringVar(&analyzeSource, "source", "", "출처")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if strings.TrimSpace(analyzeContent) == "" && analyzeURL == "" {
		return fmt.Errorf("--content or --url is required")
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := cmd.Context()
	article := contracts.RawArticle{
		Title:   analyzeTitle,
		Content: analyzeContent,
		Source:  analyzeSource,
		URL:     analyzeURL,
	}

	if strings.TrimSpace(article.Content) == "" {
		title, text, err := a.extractor.Extract(ctx, analyzeURL)
		if err != nil {
			return fmt.Errorf("extract article: %w", err)
		}
		article.Content = text
		if article.Title == "" {
			article.Title = title
		}
	}

	analysis, err := a.composer.Analyze(ctx, article)
	if err != nil {
		return err
	}

	return printJSON(cmd.OutOrStdout(), analysis)
}
