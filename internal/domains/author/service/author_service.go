package service

import (
	"context"
	"strings"

	"authors-backend/internal/domains/author"
)

type authorService struct {
	repo author.Repository
}

// NewAuthorService wires the repository into the service. Explicit
// constructor composition: the container builds the graph, nothing is
// wired by reflection.
func NewAuthorService(repo author.Repository) author.Service {
	return &authorService{
		repo: repo,
	}
}

func (s *authorService) Create(ctx context.Context, req *author.CreateAuthorRequest) (*author.Author, error) {
	a := req.ToEntity()
	a.Name = strings.TrimSpace(a.Name)
	a.Surname = strings.TrimSpace(a.Surname)

	return s.repo.Create(ctx, a)
}

func (s *authorService) Update(ctx context.Context, req *author.UpdateAuthorRequest) (*author.Author, error) {
	if req.ID <= 0 {
		return nil, author.ErrAuthorNotFound
	}

	a := req.ToEntity()
	a.Name = strings.TrimSpace(a.Name)
	a.Surname = strings.TrimSpace(a.Surname)

	return s.repo.Update(ctx, a)
}

func (s *authorService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return author.ErrAuthorNotFound
	}

	return s.repo.Delete(ctx, id)
}

func (s *authorService) FindByID(ctx context.Context, id int64) (*author.Author, error) {
	if id <= 0 {
		return nil, nil
	}

	return s.repo.FindByID(ctx, id)
}

func (s *authorService) ListAll(ctx context.Context) ([]author.Author, error) {
	return s.repo.ListAll(ctx)
}

func (s *authorService) FindByTerm(ctx context.Context, term string) ([]author.Author, error) {
	// The term is passed through verbatim: matching is case-respecting
	// and the empty term returns every row.
	return s.repo.FindByTerm(ctx, term)
}

func (s *authorService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
