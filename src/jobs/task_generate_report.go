package jobs

import (
	"context"
	"encoding/json"
	"log"

	"Backend-EduSync/src/database"
	"Backend-EduSync/src/services/reports"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HandleGenerateReportTask renders a queued report. The caller polls
// /reports/recent for the finished artifact.
func HandleGenerateReportTask(ctx context.Context, t *asynq.Task) error {
	var payload GenerateReportPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("❌ Payload decode error:", err)
		return err
	}

	var opts reports.Options
	if len(payload.Options) > 0 {
		if err := json.Unmarshal(payload.Options, &opts); err != nil {
			log.Println("❌ Options decode error:", err)
			return err
		}
	}

	userID, err := primitive.ObjectIDFromHex(payload.UserID)
	if err != nil {
		return err
	}

	svc := reports.NewService(database.NewReportsRepo(), ReportDir())
	report, err := svc.Generate(ctx, payload.ReportType, payload.Format, opts, userID)
	if err != nil {
		log.Println("❌ Report generation failed:", err)
		return err
	}

	log.Println("✅ Report generated:", report.FileName)
	return nil
}
