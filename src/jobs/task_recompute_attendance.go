package jobs

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"Backend-EduSync/src/database"
	"Backend-EduSync/src/services/attendance"
	"Backend-EduSync/src/utils"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HandleRecomputeAttendanceTask rebuilds the monthly summaries of one
// class/section, e.g. after a backdated correction.
func HandleRecomputeAttendanceTask(ctx context.Context, t *asynq.Task) error {
	var payload RecomputeAttendancePayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("❌ Payload decode error:", err)
		return err
	}

	classID, err := primitive.ObjectIDFromHex(payload.ClassID)
	if err != nil {
		return err
	}
	sectionID, err := primitive.ObjectIDFromHex(payload.SectionID)
	if err != nil {
		return err
	}
	date, err := time.Parse("2006-01-02", payload.Date)
	if err != nil {
		return err
	}

	svc := attendance.NewService(database.NewAttendanceRepo(), utils.NewRedisCache())
	if err := svc.RecomputeMonthly(ctx, classID, sectionID, date); err != nil {
		log.Println("❌ Attendance recompute failed:", err)
		return err
	}

	log.Printf("✅ Monthly attendance recomputed for section %s (%s)", payload.SectionID, payload.Date)
	return nil
}
