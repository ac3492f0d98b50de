package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Recurrence pattern grammar for recurring holidays:
//
//	YEARLY              same month/day span every year
//	MONTHLY:<n>:<WD>    nth weekday of every month, n in 1..5 (5 = last)
//	WEEKLY:<WD>         every such weekday
//
// <WD> is MON..SUN.
const (
	RecurrenceYearly  = "YEARLY"
	RecurrenceMonthly = "MONTHLY"
	RecurrenceWeekly  = "WEEKLY"
)

// Holiday วันหยุด — single range {fromDate,toDate}; fromDate==toDate for a
// one-day holiday. Recurring holidays are expanded into concrete dates at
// query time.
type Holiday struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name              string             `bson:"name" json:"name"`
	FromDate          time.Time          `bson:"fromDate" json:"fromDate"`
	ToDate            time.Time          `bson:"toDate" json:"toDate"`
	HolidayType       string             `bson:"holidayType,omitempty" json:"holidayType,omitempty"`
	IsRecurring       bool               `bson:"isRecurring" json:"isRecurring"`
	RecurrencePattern string             `bson:"recurrencePattern,omitempty" json:"recurrencePattern,omitempty"`
}
