package results

import (
	"Backend-EduSync/src/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fallbackGrades is the fixed letter table used when no GradeDefinition band
// matches a percentage. Order matters: first threshold that fits wins.
var fallbackGrades = []struct {
	min    float64
	letter string
}{
	{90, "A+"},
	{80, "A"},
	{70, "B+"},
	{60, "B"},
	{50, "C+"},
	{45, "C"},
	{40, "D"},
	{0, "F"},
}

// resolveGrade looks the percentage up in the configured bands; when no band
// matches it falls back to the fixed table and reports no band id. A missing
// band never borrows an unrelated document's id.
func resolveGrade(bands []models.GradeDefinition, pct float64) (*primitive.ObjectID, string) {
	for _, b := range bands {
		if pct >= b.MinScore && pct <= b.MaxScore {
			id := b.ID
			return &id, b.Grade
		}
	}
	return nil, fallbackLetter(pct)
}

func fallbackLetter(pct float64) string {
	for _, g := range fallbackGrades {
		if pct >= g.min {
			return g.letter
		}
	}
	return "F"
}
