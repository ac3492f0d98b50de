package results

import (
	"context"
	"testing"

	"Backend-EduSync/src/errs"
	"Backend-EduSync/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeStore struct {
	students map[primitive.ObjectID]*models.Student
	subjects map[primitive.ObjectID]*models.Subject
	sections map[primitive.ObjectID]*models.Section
	results  map[primitive.ObjectID]*models.SubjectResult
	overall  map[string]*models.OverallResult // studentHex|year|term
	bands    []models.GradeDefinition
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		students: map[primitive.ObjectID]*models.Student{},
		subjects: map[primitive.ObjectID]*models.Subject{},
		sections: map[primitive.ObjectID]*models.Section{},
		results:  map[primitive.ObjectID]*models.SubjectResult{},
		overall:  map[string]*models.OverallResult{},
	}
}

// addStudent seeds a student plus a section with a class teacher.
func (f *fakeStore) addStudent() primitive.ObjectID {
	sec := &models.Section{ID: primitive.NewObjectID(), ClassTeacherID: primitive.NewObjectID()}
	f.sections[sec.ID] = sec
	st := &models.Student{ID: primitive.NewObjectID(), Name: "Test Student", SectionID: sec.ID, IsActive: true}
	f.students[st.ID] = st
	return st.ID
}

func (f *fakeStore) addSubject(fullMark int) primitive.ObjectID {
	sub := &models.Subject{ID: primitive.NewObjectID(), Name: "Math", FullMark: fullMark}
	f.subjects[sub.ID] = sub
	return sub.ID
}

func (f *fakeStore) StudentByID(_ context.Context, id primitive.ObjectID) (*models.Student, error) {
	if st, ok := f.students[id]; ok {
		return st, nil
	}
	return nil, errs.NotFound("student")
}

func (f *fakeStore) SubjectByID(_ context.Context, id primitive.ObjectID) (*models.Subject, error) {
	if sub, ok := f.subjects[id]; ok {
		return sub, nil
	}
	return nil, errs.NotFound("subject")
}

func (f *fakeStore) SectionByID(_ context.Context, id primitive.ObjectID) (*models.Section, error) {
	if sec, ok := f.sections[id]; ok {
		return sec, nil
	}
	return nil, errs.NotFound("section")
}

func (f *fakeStore) InsertSubjectResult(_ context.Context, r *models.SubjectResult) error {
	for _, existing := range f.results {
		if existing.StudentID == r.StudentID && existing.SubjectID == r.SubjectID &&
			existing.AcademicYear == r.AcademicYear && existing.Term == r.Term {
			return errs.Duplicate("subject result")
		}
	}
	r.ID = primitive.NewObjectID()
	cp := *r
	f.results[r.ID] = &cp
	return nil
}

func (f *fakeStore) SubjectResultByID(_ context.Context, id primitive.ObjectID) (*models.SubjectResult, error) {
	if r, ok := f.results[id]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, errs.NotFound("subject result")
}

func (f *fakeStore) ReplaceSubjectResult(_ context.Context, r *models.SubjectResult) error {
	if _, ok := f.results[r.ID]; !ok {
		return errs.NotFound("subject result")
	}
	cp := *r
	f.results[r.ID] = &cp
	return nil
}

func (f *fakeStore) SubjectResultsByTerm(_ context.Context, studentID primitive.ObjectID, academicYear, term string) ([]models.SubjectResult, error) {
	var out []models.SubjectResult
	for _, r := range f.results {
		if r.StudentID == studentID && r.AcademicYear == academicYear && r.Term == term {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeStore) GradeBands(_ context.Context) ([]models.GradeDefinition, error) {
	return f.bands, nil
}

func overallKey(studentID primitive.ObjectID, year, term string) string {
	return studentID.Hex() + "|" + year + "|" + term
}

func (f *fakeStore) UpsertOverall(_ context.Context, r *models.OverallResult) error {
	cp := *r
	f.overall[overallKey(r.StudentID, r.AcademicYear, r.Term)] = &cp
	return nil
}

func (f *fakeStore) OverallByKey(_ context.Context, studentID primitive.ObjectID, academicYear, term string) (*models.OverallResult, error) {
	if r, ok := f.overall[overallKey(studentID, academicYear, term)]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, errs.NotFound("overall result")
}

func passingInput(studentID, subjectID primitive.ObjectID) AddSubjectResultInput {
	return AddSubjectResultInput{
		StudentID:    studentID,
		SubjectID:    subjectID,
		AcademicYear: "2026",
		Term:         "T1",
		FullMarks:    100,
		PassMarks:    40,
		TheoryMarks:  60,
	}
}

func TestAddSubjectResult(t *testing.T) {
	ctx := context.Background()

	t.Run("records marks and derives the grade", func(t *testing.T) {
		store := newFakeStore()
		svc := NewService(store)
		studentID := store.addStudent()
		subjectID := store.addSubject(100)

		in := passingInput(studentID, subjectID)
		in.TheoryMarks = 70
		in.PracticalMarks = 20

		r, err := svc.AddSubjectResult(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, 90.0, r.TotalMarks)
		assert.Equal(t, "A+", r.GradeLetter)
		assert.Nil(t, r.GradeID, "fallback grades carry no band id")

		overall, err := svc.GetOverallResult(ctx, studentID, "2026", "T1")
		require.NoError(t, err)
		assert.Equal(t, models.ResultPassed, overall.Status)
		assert.Equal(t, 90.0, overall.TotalPercentage)
	})

	t.Run("uses configured bands when they match", func(t *testing.T) {
		store := newFakeStore()
		bandID := primitive.NewObjectID()
		store.bands = []models.GradeDefinition{{ID: bandID, MinScore: 80, MaxScore: 100, Grade: "EXCELLENT"}}
		svc := NewService(store)
		studentID := store.addStudent()
		subjectID := store.addSubject(100)

		in := passingInput(studentID, subjectID)
		in.TheoryMarks = 85

		r, err := svc.AddSubjectResult(ctx, in)
		require.NoError(t, err)
		require.NotNil(t, r.GradeID)
		assert.Equal(t, bandID, *r.GradeID)
		assert.Equal(t, "EXCELLENT", r.GradeLetter)
	})

	t.Run("duplicate key is a conflict", func(t *testing.T) {
		store := newFakeStore()
		svc := NewService(store)
		studentID := store.addStudent()
		subjectID := store.addSubject(100)

		_, err := svc.AddSubjectResult(ctx, passingInput(studentID, subjectID))
		require.NoError(t, err)

		_, err = svc.AddSubjectResult(ctx, passingInput(studentID, subjectID))
		assert.ErrorIs(t, err, errs.ErrDuplicate)
		assert.Len(t, store.results, 1, "the first result is untouched")
	})

	t.Run("rejects invalid marks", func(t *testing.T) {
		store := newFakeStore()
		svc := NewService(store)
		studentID := store.addStudent()
		subjectID := store.addSubject(100)

		for name, mutate := range map[string]func(*AddSubjectResultInput){
			"zero fullMarks":       func(in *AddSubjectResultInput) { in.FullMarks = 0 },
			"negative fullMarks":   func(in *AddSubjectResultInput) { in.FullMarks = -10 },
			"passMarks above full": func(in *AddSubjectResultInput) { in.PassMarks = 150 },
			"negative theory":      func(in *AddSubjectResultInput) { in.TheoryMarks = -1 },
			"marks above full":     func(in *AddSubjectResultInput) { in.TheoryMarks = 80; in.PracticalMarks = 30 },
		} {
			in := passingInput(studentID, subjectID)
			mutate(&in)
			_, err := svc.AddSubjectResult(ctx, in)
			assert.ErrorIs(t, err, errs.ErrValidation, name)
		}
	})

	t.Run("absent means zero marks and a failed term", func(t *testing.T) {
		store := newFakeStore()
		svc := NewService(store)
		studentID := store.addStudent()
		mathID := store.addSubject(100)
		sciID := store.addSubject(100)

		in := passingInput(studentID, mathID)
		in.TheoryMarks = 95
		_, err := svc.AddSubjectResult(ctx, in)
		require.NoError(t, err)

		absent := passingInput(studentID, sciID)
		absent.IsAbsent = true
		absent.TheoryMarks = 0
		r, err := svc.AddSubjectResult(ctx, absent)
		require.NoError(t, err)
		assert.Equal(t, 0.0, r.TotalMarks)

		overall, err := svc.GetOverallResult(ctx, studentID, "2026", "T1")
		require.NoError(t, err)
		assert.Equal(t, models.ResultFailed, overall.Status, "one absence fails the term regardless of totals")
	})
}

func TestUpdateSubjectResult(t *testing.T) {
	ctx := context.Background()

	t.Run("corrects marks and recomputes overall", func(t *testing.T) {
		store := newFakeStore()
		svc := NewService(store)
		studentID := store.addStudent()
		subjectID := store.addSubject(100)

		r, err := svc.AddSubjectResult(ctx, passingInput(studentID, subjectID))
		require.NoError(t, err)

		updated, err := svc.UpdateSubjectResult(ctx, r.ID, UpdateMarksInput{TheoryMarks: 30})
		require.NoError(t, err)
		assert.Equal(t, 30.0, updated.TotalMarks)

		overall, err := svc.GetOverallResult(ctx, studentID, "2026", "T1")
		require.NoError(t, err)
		assert.Equal(t, models.ResultFailed, overall.Status, "30 < passMarks fails")
	})

	t.Run("locked results reject updates", func(t *testing.T) {
		store := newFakeStore()
		svc := NewService(store)
		studentID := store.addStudent()
		subjectID := store.addSubject(100)

		r, err := svc.AddSubjectResult(ctx, passingInput(studentID, subjectID))
		require.NoError(t, err)
		require.NoError(t, svc.LockSubjectResult(ctx, r.ID))

		_, err = svc.UpdateSubjectResult(ctx, r.ID, UpdateMarksInput{TheoryMarks: 99})
		assert.ErrorIs(t, err, errs.ErrLocked)

		stored, err := store.SubjectResultByID(ctx, r.ID)
		require.NoError(t, err)
		assert.Equal(t, 60.0, stored.TotalMarks, "marks stay as they were")
	})
}

func TestCalculateOverallResult(t *testing.T) {
	ctx := context.Background()

	t.Run("no subject results is not found", func(t *testing.T) {
		store := newFakeStore()
		svc := NewService(store)
		studentID := store.addStudent()

		_, err := svc.CalculateOverallResult(ctx, studentID, "2026", "T1")
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("missing class teacher is a hard error", func(t *testing.T) {
		store := newFakeStore()
		svc := NewService(store)
		studentID := store.addStudent()
		subjectID := store.addSubject(100)
		store.sections[store.students[studentID].SectionID].ClassTeacherID = primitive.NilObjectID

		_, err := svc.AddSubjectResult(ctx, passingInput(studentID, subjectID))
		assert.ErrorIs(t, err, errs.ErrNotFound)
		assert.Empty(t, store.results, "the failed add leaves no subject result behind")
		assert.Empty(t, store.overall)
	})

	t.Run("low percentage fails even with every subject passed", func(t *testing.T) {
		store := newFakeStore()
		svc := NewService(store)
		studentID := store.addStudent()
		subjectID := store.addSubject(100)

		in := passingInput(studentID, subjectID)
		in.PassMarks = 20
		in.TheoryMarks = 35 // above passMarks, below the 40% overall threshold
		_, err := svc.AddSubjectResult(ctx, in)
		require.NoError(t, err)

		overall, err := svc.GetOverallResult(ctx, studentID, "2026", "T1")
		require.NoError(t, err)
		assert.Equal(t, models.ResultFailed, overall.Status)
	})
}

func TestFallbackLetter(t *testing.T) {
	cases := map[float64]string{
		95: "A+", 90: "A+", 85: "A", 72: "B+", 61: "B", 50: "C+", 46: "C", 40: "D", 39.9: "F", 0: "F",
	}
	for pct, want := range cases {
		assert.Equal(t, want, fallbackLetter(pct), "pct %.1f", pct)
	}
}
