package jobs

import (
	"log"
	"os"

	"Backend-EduSync/src/database"

	"github.com/hibiken/asynq"
)

// ReportDir is where generated report files live, shared by the HTTP layer
// and the worker.
func ReportDir() string {
	if dir := os.Getenv("REPORT_DIR"); dir != "" {
		return dir
	}
	return "reports"
}

// StartWorker runs the asynq worker loop. Call in a goroutine after
// database.InitRedis; a missing Redis disables background jobs.
func StartWorker() {
	if database.RedisURI == "" {
		log.Println("⚠️ Redis not available. Worker will not start.")
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: database.RedisURI},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeGenerateReport, HandleGenerateReportTask)
	mux.HandleFunc(TypeRecomputeAttendance, HandleRecomputeAttendanceTask)
	mux.HandleFunc(TypeCleanupReports, HandleCleanupReportsTask)

	log.Println("✅ Worker started")
	if err := srv.Run(mux); err != nil {
		log.Fatal("❌ Worker stopped:", err)
	}
}
