// Package holidays manages the holiday calendar and expands recurring
// holidays into concrete dates for working-day computation.
package holidays

import (
	"context"
	"errors"
	"fmt"
	"time"

	DB "Backend-EduSync/src/database"
	"Backend-EduSync/src/errs"
	"Backend-EduSync/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create stores a holiday. ToDate defaults to FromDate for one-day holidays.
func Create(ctx context.Context, h *models.Holiday) error {
	if h.Name == "" {
		return errs.Validation("holiday name is required")
	}
	if h.ToDate.IsZero() {
		h.ToDate = h.FromDate
	}
	if h.ToDate.Before(h.FromDate) {
		return errs.Validation("toDate is before fromDate")
	}
	if h.IsRecurring {
		if _, bad := validatePattern(h.RecurrencePattern); bad != nil {
			return bad
		}
	}

	h.ID = primitive.NewObjectID()
	_, err := DB.HolidayCollection.InsertOne(ctx, h)
	return err
}

// validatePattern runs a recurrence pattern through the expander over a
// two-year trial window; a pattern that expands to nothing is invalid.
func validatePattern(pattern string) (string, error) {
	if pattern == "" {
		return "", errs.Validation("recurrencePattern is required for a recurring holiday")
	}
	trial := models.Holiday{
		Name:              "trial",
		FromDate:          time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		ToDate:            time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		IsRecurring:       true,
		RecurrencePattern: pattern,
	}
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	if len(Expand([]models.Holiday{trial}, from, to)) == 0 {
		return "", errs.Validation("unrecognized recurrencePattern " + pattern)
	}
	return pattern, nil
}

// GetAll returns every holiday, soonest first.
func GetAll(ctx context.Context) ([]models.Holiday, error) {
	cursor, err := DB.HolidayCollection.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"fromDate": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var hs []models.Holiday
	if err := cursor.All(ctx, &hs); err != nil {
		return nil, err
	}
	return hs, nil
}

// GetByID returns a single holiday.
func GetByID(ctx context.Context, id primitive.ObjectID) (*models.Holiday, error) {
	var h models.Holiday
	err := DB.HolidayCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&h)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.NotFound("holiday")
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// Update replaces the mutable fields of a holiday.
func Update(ctx context.Context, id primitive.ObjectID, h *models.Holiday) error {
	if h.IsRecurring {
		if _, bad := validatePattern(h.RecurrencePattern); bad != nil {
			return bad
		}
	}
	res, err := DB.HolidayCollection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"name":              h.Name,
		"fromDate":          h.FromDate,
		"toDate":            h.ToDate,
		"holidayType":       h.HolidayType,
		"isRecurring":       h.IsRecurring,
		"recurrencePattern": h.RecurrencePattern,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errs.NotFound("holiday")
	}
	return nil
}

// Delete removes a holiday.
func Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := DB.HolidayCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errs.NotFound("holiday")
	}
	return nil
}

// Calendar returns the expanded holiday dates and working-day count of one
// month.
type Calendar struct {
	Month       int         `json:"month"`
	Year        int         `json:"year"`
	WorkingDays int         `json:"workingDays"`
	Holidays    []DateRange `json:"holidays"`
}

// MonthCalendar expands all holidays into the given month.
func MonthCalendar(ctx context.Context, month, year int) (*Calendar, error) {
	if month < 1 || month > 12 {
		return nil, errs.Validation("month must be 1-12")
	}

	hs, err := GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load holidays: %w", err)
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0).AddDate(0, 0, -1)

	return &Calendar{
		Month:       month,
		Year:        year,
		WorkingDays: WorkingDays(year, time.Month(month), hs),
		Holidays:    Expand(hs, from, to),
	}, nil
}
