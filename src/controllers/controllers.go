// Package controllers maps HTTP requests onto the service layer. The
// aggregator services are constructed once in Setup with their mongo-backed
// stores; handlers stay plain functions like the rest of the codebase.
package controllers

import (
	"Backend-EduSync/src/database"
	"Backend-EduSync/src/jobs"
	"Backend-EduSync/src/services/attendance"
	"Backend-EduSync/src/services/reports"
	"Backend-EduSync/src/services/results"
	"Backend-EduSync/src/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	validate = validator.New()

	attendanceService *attendance.Service
	resultService     *results.Service
	reportService     *reports.Service
)

// Setup wires the aggregator services. Must run after database.ConnectMongoDB.
func Setup() {
	attendanceService = attendance.NewService(database.NewAttendanceRepo(), utils.NewRedisCache())
	resultService = results.NewService(database.NewResultsRepo())
	reportService = reports.NewService(database.NewReportsRepo(), jobs.ReportDir())
}

// objectIDParam parses a hex ObjectID from a route parameter.
func objectIDParam(c *fiber.Ctx, name string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(c.Params(name))
	if err != nil {
		return primitive.NilObjectID, err
	}
	return id, nil
}

// objectIDQuery parses an optional hex ObjectID from the query string.
func objectIDQuery(c *fiber.Ctx, name string) (*primitive.ObjectID, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// callerID returns the authenticated user's id from the JWT claims.
func callerID(c *fiber.Ctx) (primitive.ObjectID, error) {
	raw, _ := c.Locals("userId").(string)
	return primitive.ObjectIDFromHex(raw)
}
