package roster

import (
	"context"

	"github.com/kat-co/vala"
	"github.com/pkg/errors"
)

type (
	// Backend is the school API, the owner of the student & class records.
	Backend interface {
		Students(ctx context.Context, token string) ([]Student, error)
		Classes(ctx context.Context, token string) ([]Class, error)
	}

	Service struct {
		backend Backend
	}
)

func NewService(backend Backend) *Service {
	vala.BeginValidation().Validate(
		vala.IsNotNil(backend, "backend"),
	).CheckAndPanic()

	return &Service{backend: backend}
}

// Roster returns the students matching `filter`, along with every class.
func (svc *Service) Roster(ctx context.Context, token string, filter QueryFilter) (Roster, error) {
	students, err := svc.backend.Students(ctx, token)
	if err != nil {
		return Roster{}, errors.Wrap(err, "querying students")
	}
	classes, err := svc.backend.Classes(ctx, token)
	if err != nil {
		return Roster{}, errors.Wrap(err, "querying classes")
	}

	r := Roster{Students: make([]Student, 0, len(students)), Classes: classes}
	for _, st := range students {
		if filter.match(st) {
			r.Students = append(r.Students, st)
		}
	}
	return r, nil
}
