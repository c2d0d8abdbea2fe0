package grade

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kat-co/vala"
	"github.com/pkg/errors"
)

var nowFunc = func() time.Time { return time.Now().UTC() }

type (
	// Backend is the school API, the durable owner of grades.
	// Every call is authorized by the caller's `token`.
	Backend interface {
		TeachingAssignments(ctx context.Context, token string) ([]TeachingAssignment, error)
		SaveGrade(ctx context.Context, token string, sg SaveGrade) error
		StudentGrades(ctx context.Context, token string) ([]SubjectGrade, error)
	}

	// SheetRepository keeps the open grade sheets.
	// GetSheet & UpdateSheet return copies; `fn` runs under the repository's lock.
	SheetRepository interface {
		CreateSheet(sh Sheet) error
		GetSheet(id string) (Sheet, error)
		UpdateSheet(id string, fn func(sh *Sheet) error) (Sheet, error)
		DeleteSheet(id string) error
		// DeleteSheetsIdleSince drops the sheets last touched before `t`.
		DeleteSheetsIdleSince(t time.Time) (int, error)
	}

	Service struct {
		backend  Backend
		repo     SheetRepository
		validate *validator.Validate
		ttl      time.Duration
	}
)

func NewService(backend Backend, repo SheetRepository, validate *validator.Validate, ttl time.Duration) *Service {
	vala.BeginValidation().Validate(
		vala.IsNotNil(backend, "backend"),
		vala.IsNotNil(repo, "repo"),
		vala.IsNotNil(validate, "validate"),
	).CheckAndPanic()

	return &Service{backend: backend, repo: repo, validate: validate, ttl: ttl}
}

func (svc *Service) Assignments(ctx context.Context, token string) ([]TeachingAssignment, error) {
	return svc.backend.TeachingAssignments(ctx, token)
}

// OpenSheet starts a grade entry session of the teaching assignment `assignmentID` for `owner`.
func (svc *Service) OpenSheet(ctx context.Context, token, owner string, assignmentID int) (Sheet, error) {
	tas, err := svc.backend.TeachingAssignments(ctx, token)
	if err != nil {
		return Sheet{}, err
	}
	for _, ta := range tas {
		if ta.ID == assignmentID {
			sh := NewSheet(owner, ta, nowFunc())
			if err := svc.repo.CreateSheet(sh); err != nil {
				return Sheet{}, errors.Wrap(err, "storing sheet")
			}
			return sh.Clone(), nil
		}
	}
	return Sheet{}, ErrAssignmentNotFound
}

// Sheet returns a snapshot of the sheet `id` of `owner`.
func (svc *Service) Sheet(owner, id string) (Sheet, error) {
	sh, err := svc.repo.GetSheet(id)
	if err != nil {
		return Sheet{}, err
	}
	if sh.Owner != owner {
		return Sheet{}, ErrSheetNotFound
	}
	return sh, nil
}

func (svc *Service) update(owner, id string, fn func(sh *Sheet) error) (Sheet, error) {
	return svc.repo.UpdateSheet(id, func(sh *Sheet) error {
		if sh.Owner != owner {
			return ErrSheetNotFound
		}
		if err := fn(sh); err != nil {
			return err
		}
		sh.UpdatedAt = nowFunc()
		return nil
	})
}

// SetScore applies one raw input to a score component. It never calls the school API.
// Rejected input is not an error: the unchanged record is returned with `accepted` false.
func (svc *Service) SetScore(owner, id string, studentID int, field Field, raw string) (rec GradeRecord, accepted bool, err error) {
	_, err = svc.update(owner, id, func(sh *Sheet) error {
		var err error
		rec, accepted, err = sh.SetScore(studentID, field, raw)
		return err
	})
	if err != nil {
		return GradeRecord{}, false, err
	}
	return rec, accepted, nil
}

// SaveGrade persists a student's record to the school API, once.
// On failure, the sheet is left as is and a *BackendError is returned.
func (svc *Service) SaveGrade(ctx context.Context, token, owner, id string, studentID int) (GradeRecord, error) {
	sh, err := svc.Sheet(owner, id)
	if err != nil {
		return GradeRecord{}, err
	}
	rec, err := sh.Record(studentID)
	if err != nil {
		return GradeRecord{}, err
	}

	sg := rec.Payload()
	if err := sg.Validate(svc.validate); err != nil {
		return GradeRecord{}, err
	}
	if err := svc.backend.SaveGrade(ctx, token, sg); err != nil {
		var be *BackendError
		if errors.As(err, &be) {
			return GradeRecord{}, be
		}
		return GradeRecord{}, &BackendError{Err: err}
	}

	// another edit may have landed during the call: only that edit keeps the record dirty.
	sh, err = svc.update(owner, id, func(sh *Sheet) error {
		sh.MarkSaved(sg)
		return nil
	})
	if err != nil {
		return GradeRecord{}, err
	}
	return sh.Record(studentID)
}

func (svc *Service) CloseSheet(owner, id string) error {
	if _, err := svc.Sheet(owner, id); err != nil {
		return err
	}
	return svc.repo.DeleteSheet(id)
}

// Sweep drops the sheets nobody touched for longer than the service's TTL.
func (svc *Service) Sweep(now time.Time) (int, error) {
	if svc.ttl <= 0 {
		return 0, nil
	}
	return svc.repo.DeleteSheetsIdleSince(now.Add(-svc.ttl))
}

// ReportCard returns the caller's own subject grades.
func (svc *Service) ReportCard(ctx context.Context, token string) ([]SubjectGrade, error) {
	return svc.backend.StudentGrades(ctx, token)
}
