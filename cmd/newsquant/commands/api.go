package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wonny/newsquant/internal/api"
	"github.com/wonny/newsquant/internal/api/handlers"
	"github.com/wonny/newsquant/internal/scheduler"
	"github.com/wonny/newsquant/internal/scheduler/jobs"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "API 서버 시작",
	Long: `REST API 서버를 시작합니다.

Endpoints:
  GET  /health                  - Health check
  POST /articles/analyze        - 단건 기사 분석 (/api 접두사도 지원)
  GET  /scan?period=&industry=  - 최근 뉴스 스캔 + 랭킹 (/api 접두사도 지원)
  GET  /ws/scan                 - 스케줄 스캔 결과 websocket (--watch)

Example:
  go run ./cmd/newsquant api
  go run ./cmd/newsquant api --port 8080 --watch`,
	RunE: runAPIServer,
}

var (
	apiPort  string
	apiWatch bool
)

func init() {
	rootCmd.AddCommand(apiCmd)

	apiCmd.Flags().StringVar(&apiPort, "port", "", "API 서버 포트 (기본: PORT 환경변수)")
	apiCmd.Flags().BoolVar(&apiWatch, "watch", false, "스캔 스케줄러 실행 후 /ws/scan 으로 결과 push")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	log := a.log

	hub := handlers.NewScanHub(log)
	router := api.NewRouter(api.Handlers{
		Articles: handlers.NewArticleHandler(a.composer, a.extractor, log),
		Scan:     handlers.NewScanHandler(a.scanner, log),
		Stream:   hub,
	}, log)

	server := api.New(a.cfg, log, router, apiPort)
	server.OnShutdown(hub.Close)

	if apiWatch {
		sched := scheduler.New(log, scheduler.DefaultOptions())
		job := jobs.NewScanJob(a.scanner, hub, a.cfg.Scan.Schedule, a.cfg.Scan.Period, a.cfg.Scan.Industry, log)
		if err := sched.AddJob(job); err != nil {
			return fmt.Errorf("add scan job: %w", err)
		}
		sched.Start()
		defer sched.Stop()

		// 첫 결과는 스케줄을 기다리지 않고 바로 생성
		if err := sched.RunJob(job.Name()); err != nil {
			return fmt.Errorf("run scan job: %w", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(cmd.ErrOrStderr(), "\n✅ Server running on http://localhost%s\n", server.Addr())
	fmt.Fprintln(cmd.ErrOrStderr(), "Press Ctrl+C to stop")

	if err := server.Run(ctx); err != nil {
		return err
	}

	log.Info("Server stopped")
	return nil
}
