// Package results computes per-subject grades and the overall pass/fail
// outcome of a student's term. The store is injected for test isolation.
package results

import (
	"context"
	"fmt"
	"math"

	"Backend-EduSync/src/errs"
	"Backend-EduSync/src/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Overall pass threshold on the aggregated percentage.
const passPercentage = 40.0

// Store is the query surface the aggregator needs from the data store.
type Store interface {
	StudentByID(ctx context.Context, id primitive.ObjectID) (*models.Student, error)
	SubjectByID(ctx context.Context, id primitive.ObjectID) (*models.Subject, error)
	SectionByID(ctx context.Context, id primitive.ObjectID) (*models.Section, error)
	InsertSubjectResult(ctx context.Context, r *models.SubjectResult) error // errs.ErrDuplicate on key clash
	SubjectResultByID(ctx context.Context, id primitive.ObjectID) (*models.SubjectResult, error)
	ReplaceSubjectResult(ctx context.Context, r *models.SubjectResult) error
	SubjectResultsByTerm(ctx context.Context, studentID primitive.ObjectID, academicYear, term string) ([]models.SubjectResult, error)
	GradeBands(ctx context.Context) ([]models.GradeDefinition, error)
	UpsertOverall(ctx context.Context, r *models.OverallResult) error
	OverallByKey(ctx context.Context, studentID primitive.ObjectID, academicYear, term string) (*models.OverallResult, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// AddSubjectResultInput carries the marks of one subject for one term.
type AddSubjectResultInput struct {
	StudentID      primitive.ObjectID `json:"studentId" validate:"required"`
	SubjectID      primitive.ObjectID `json:"subjectId" validate:"required"`
	AcademicYear   string             `json:"academicYear" validate:"required"`
	Term           string             `json:"term" validate:"required"`
	FullMarks      float64            `json:"fullMarks"`
	PassMarks      float64            `json:"passMarks"`
	TheoryMarks    float64            `json:"theoryMarks"`
	PracticalMarks float64            `json:"practicalMarks"`
	IsAbsent       bool               `json:"isAbsent"`
}

func (in *AddSubjectResultInput) validate() error {
	if in.FullMarks <= 0 {
		return errs.Validation("fullMarks must be greater than 0")
	}
	if in.PassMarks < 0 || in.PassMarks > in.FullMarks {
		return errs.Validation("passMarks must be between 0 and fullMarks")
	}
	if in.TheoryMarks < 0 || in.PracticalMarks < 0 {
		return errs.Validation("marks cannot be negative")
	}
	if !in.IsAbsent && in.TheoryMarks+in.PracticalMarks > in.FullMarks {
		return errs.Validation("theory + practical marks exceed fullMarks")
	}
	return nil
}

// AddSubjectResult records the marks of one subject. A second call with the
// same (student, subject, year, term) key fails with a conflict and leaves
// the first result untouched. The student's overall result is recomputed
// afterwards.
func (s *Service) AddSubjectResult(ctx context.Context, in AddSubjectResultInput) (*models.SubjectResult, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	student, err := s.store.StudentByID(ctx, in.StudentID)
	if err != nil {
		return nil, err
	}
	if _, err := s.store.SubjectByID(ctx, in.SubjectID); err != nil {
		return nil, err
	}

	// The overall recompute needs the section's class teacher; check before
	// inserting so a missing teacher never leaves a row behind.
	section, err := s.store.SectionByID(ctx, student.SectionID)
	if err != nil {
		return nil, err
	}
	if section.ClassTeacherID.IsZero() {
		return nil, errs.NotFound("class teacher for section")
	}

	bands, err := s.store.GradeBands(ctx)
	if err != nil {
		return nil, fmt.Errorf("load grade bands: %w", err)
	}

	r := models.SubjectResult{
		StudentID:      in.StudentID,
		SubjectID:      in.SubjectID,
		AcademicYear:   in.AcademicYear,
		Term:           in.Term,
		FullMarks:      in.FullMarks,
		PassMarks:      in.PassMarks,
		TheoryMarks:    in.TheoryMarks,
		PracticalMarks: in.PracticalMarks,
		IsAbsent:       in.IsAbsent,
	}
	applyMarks(&r, bands)

	if err := s.store.InsertSubjectResult(ctx, &r); err != nil {
		return nil, err
	}

	if _, err := s.CalculateOverallResult(ctx, in.StudentID, in.AcademicYear, in.Term); err != nil {
		return nil, err
	}
	return &r, nil
}

// UpdateMarksInput carries a mark correction for an existing subject result.
type UpdateMarksInput struct {
	TheoryMarks    float64 `json:"theoryMarks"`
	PracticalMarks float64 `json:"practicalMarks"`
	IsAbsent       bool    `json:"isAbsent"`
}

// UpdateSubjectResult corrects the marks of an unlocked subject result and
// recomputes the overall outcome. Locked results are rejected.
func (s *Service) UpdateSubjectResult(ctx context.Context, id primitive.ObjectID, in UpdateMarksInput) (*models.SubjectResult, error) {
	r, err := s.store.SubjectResultByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.IsLocked {
		return nil, fmt.Errorf("subject result %s: %w", id.Hex(), errs.ErrLocked)
	}
	if in.TheoryMarks < 0 || in.PracticalMarks < 0 {
		return nil, errs.Validation("marks cannot be negative")
	}
	if !in.IsAbsent && in.TheoryMarks+in.PracticalMarks > r.FullMarks {
		return nil, errs.Validation("theory + practical marks exceed fullMarks")
	}

	bands, err := s.store.GradeBands(ctx)
	if err != nil {
		return nil, fmt.Errorf("load grade bands: %w", err)
	}

	r.TheoryMarks = in.TheoryMarks
	r.PracticalMarks = in.PracticalMarks
	r.IsAbsent = in.IsAbsent
	applyMarks(r, bands)

	if err := s.store.ReplaceSubjectResult(ctx, r); err != nil {
		return nil, err
	}
	if _, err := s.CalculateOverallResult(ctx, r.StudentID, r.AcademicYear, r.Term); err != nil {
		return nil, err
	}
	return r, nil
}

// LockSubjectResult freezes a subject result against further mark updates.
func (s *Service) LockSubjectResult(ctx context.Context, id primitive.ObjectID) error {
	r, err := s.store.SubjectResultByID(ctx, id)
	if err != nil {
		return err
	}
	r.IsLocked = true
	return s.store.ReplaceSubjectResult(ctx, r)
}

// CalculateOverallResult aggregates all subject results of a (student, year,
// term) into a pass/fail outcome and upserts it. The student's class teacher
// must exist; its absence is a hard error.
func (s *Service) CalculateOverallResult(ctx context.Context, studentID primitive.ObjectID, academicYear, term string) (*models.OverallResult, error) {
	subjectResults, err := s.store.SubjectResultsByTerm(ctx, studentID, academicYear, term)
	if err != nil {
		return nil, fmt.Errorf("load subject results: %w", err)
	}
	if len(subjectResults) == 0 {
		return nil, errs.NotFound("subject results for student/term")
	}

	var totalMarks, fullMarks float64
	failed := false
	for _, r := range subjectResults {
		totalMarks += r.TotalMarks
		fullMarks += r.FullMarks
		if r.IsAbsent || r.TotalMarks < r.PassMarks {
			failed = true
		}
	}

	pct := round2(totalMarks / fullMarks * 100)
	status := models.ResultFailed
	if !failed && pct >= passPercentage {
		status = models.ResultPassed
	}

	student, err := s.store.StudentByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	section, err := s.store.SectionByID(ctx, student.SectionID)
	if err != nil {
		return nil, err
	}
	if section.ClassTeacherID.IsZero() {
		return nil, errs.NotFound("class teacher for section")
	}

	overall := models.OverallResult{
		StudentID:       studentID,
		AcademicYear:    academicYear,
		Term:            term,
		TotalPercentage: pct,
		Status:          status,
		ClassTeacherID:  section.ClassTeacherID,
	}
	if err := s.store.UpsertOverall(ctx, &overall); err != nil {
		return nil, fmt.Errorf("upsert overall result: %w", err)
	}
	return &overall, nil
}

// GetOverallResult returns the stored overall outcome of a student's term.
func (s *Service) GetOverallResult(ctx context.Context, studentID primitive.ObjectID, academicYear, term string) (*models.OverallResult, error) {
	return s.store.OverallByKey(ctx, studentID, academicYear, term)
}

// GetSubjectResults returns all subject results of a student's term.
func (s *Service) GetSubjectResults(ctx context.Context, studentID primitive.ObjectID, academicYear, term string) ([]models.SubjectResult, error) {
	return s.store.SubjectResultsByTerm(ctx, studentID, academicYear, term)
}

// applyMarks derives TotalMarks and the grade from the raw marks.
func applyMarks(r *models.SubjectResult, bands []models.GradeDefinition) {
	if r.IsAbsent {
		r.TotalMarks = 0
	} else {
		r.TotalMarks = r.TheoryMarks + r.PracticalMarks
	}
	pct := r.TotalMarks / r.FullMarks * 100
	r.GradeID, r.GradeLetter = resolveGrade(bands, pct)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
