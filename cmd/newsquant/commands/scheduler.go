package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wonny/newsquant/internal/scheduler"
	"github.com/wonny/newsquant/internal/scheduler/jobs"
)

// schedulerCmd represents the scheduler command
var schedulerCmd = &cobra.Command{
	Use:   "scheduler",
	Short: "스케줄러 관리",
	Long: `스캔 스케줄러를 시작하거나 작업을 관리합니다.

Subcommands:
  start   - 스케줄러 시작
  list    - 등록된 작업 목록
  run     - 특정 작업 즉시 실행

Example:
  go run ./cmd/newsquant scheduler start
  go run ./cmd/newsquant scheduler list
  go run ./cmd/newsquant scheduler run news_scan`,
}

var (
	schedulerStartCmd = &cobra.Command{
		Use:   "start",
		Short: "스케줄러 시작",
		Long: `스케줄러를 시작하고 등록된 모든 작업을 스케줄합니다.

등록되는 작업:
- news_scan: SCAN_SCHEDULE (기본 15분마다) 최근 뉴스 스캔 후 Redis에 캐시

스케줄러는 Ctrl+C로 종료할 수 있습니다.`,
		RunE: runScheduler,
	}

	schedulerListCmd = &cobra.Command{
		Use:   "list",
		Short: "등록된 작업 목록",
		RunE:  listJobs,
	}

	schedulerRunCmd = &cobra.Command{
		Use:   "run [job_name]",
		Short: "특정 작업 즉시 실행",
		Args:  cobra.ExactArgs(1),
		RunE:  runJob,
	}
)

func init() {
	rootCmd.AddCommand(schedulerCmd)
	schedulerCmd.AddCommand(schedulerStartCmd)
	schedulerCmd.AddCommand(schedulerListCmd)
	schedulerCmd.AddCommand(schedulerRunCmd)
}

func runScheduler(cmd *cobra.Command, args []string) error {
	a, sched, _, err := initScheduler()
	if err != nil {
		return fmt.Errorf("init scheduler: %w", err)
	}
	defer a.Close()

	sched.Start()

	out := cmd.ErrOrStderr()
	fmt.Fprintln(out, "\n✅ Scheduler started successfully")
	fmt.Fprintln(out, "\nRegistered jobs:")
	for _, jobName := range sched.GetAllJobs() {
		fmt.Fprintf(out, "  - %s\n", jobName)
	}
	fmt.Fprintln(out, "\nPress Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	fmt.Fprintln(out, "\nShutting down scheduler...")
	sched.Stop()

	return nil
}

func listJobs(cmd *cobra.Command, args []string) error {
	a, sched, _, err := initScheduler()
	if err != nil {
		return fmt.Errorf("init scheduler: %w", err)
	}
	defer a.Close()

	stats := sched.GetJobStats()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Registered jobs:")
	for _, jobName := range sortedKeys(stats) {
		fmt.Fprintf(out, "  - %s (%s)\n", jobName, stats[jobName].Schedule)
	}

	return nil
}

func runJob(cmd *cobra.Command, args []string) error {
	jobName := args[0]

	a, sched, scanJob, err := initScheduler()
	if err != nil {
		return fmt.Errorf("init scheduler: %w", err)
	}
	defer a.Close()

	fmt.Fprintf(cmd.ErrOrStderr(), "Running job: %s\n", jobName)

	result, err := sched.RunNow(cmd.Context(), jobName)
	if err != nil {
		return fmt.Errorf("run job: %w", err)
	}

	if !result.Success {
		return fmt.Errorf("job %s failed after %d attempts: %s", jobName, result.Attempts, result.Error)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "✅ Job %s completed in %.2fs\n", jobName, result.Duration.Seconds())

	if jobName == scanJob.Name() && scanJob.Last() != nil {
		printScanResult(cmd.OutOrStdout(), scanJob.Last())
	}
	return nil
}

func initScheduler() (*app, *scheduler.Scheduler, *jobs.ScanJob, error) {
	a, err := newApp()
	if err != nil {
		return nil, nil, nil, err
	}

	sched := scheduler.New(a.log, scheduler.DefaultOptions())

	scanJob := jobs.NewScanJob(a.scanner, nil, a.cfg.Scan.Schedule, a.cfg.Scan.Period, a.cfg.Scan.Industry, a.log)
	if err := sched.AddJob(scanJob); err != nil {
		a.Close()
		return nil, nil, nil, err
	}

	return a, sched, scanJob, nil
}
