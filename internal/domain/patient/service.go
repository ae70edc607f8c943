package patient

import (
	"context"
	"time"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// RegisterInput carries the caller-entered registration fields. Required-ness
// is the view layer's concern; the engine accepts what it is given.
type RegisterInput struct {
	FirstName     string
	LastName      string
	PreferredName string
	MRN           string
	Sex           string
	Language      string
	DateOfBirth   *time.Time
}

// Register appends a new patient and returns it with a freshly assigned id.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*Patient, error) {
	p := &Patient{
		MRN:           in.MRN,
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		PreferredName: in.PreferredName,
		Sex:           ParseSex(in.Sex),
		Language:      in.Language,
		DateOfBirth:   in.DateOfBirth,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Get looks up one patient by id.
func (s *Service) Get(ctx context.Context, id string) (*Patient, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns the full patient collection in insertion order.
func (s *Service) List(ctx context.Context) ([]*Patient, error) {
	return s.repo.List(ctx)
}
