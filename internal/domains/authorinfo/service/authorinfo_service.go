package service

import (
	"context"
	"strings"

	"authors-backend/internal/domains/authorinfo"
)

type authorInfoService struct {
	repo authorinfo.Repository
}

func NewAuthorInfoService(repo authorinfo.Repository) authorinfo.Service {
	return &authorInfoService{
		repo: repo,
	}
}

func (s *authorInfoService) Create(ctx context.Context, req *authorinfo.CreateAuthorInfoRequest) (*authorinfo.AuthorInfo, error) {
	i := req.ToEntity()
	i.Role = strings.TrimSpace(i.Role)

	return s.repo.Create(ctx, i)
}

func (s *authorInfoService) Update(ctx context.Context, req *authorinfo.UpdateAuthorInfoRequest) (*authorinfo.AuthorInfo, error) {
	if req.ID <= 0 {
		return nil, authorinfo.ErrAuthorInfoNotFound
	}

	i := req.ToEntity()
	i.Role = strings.TrimSpace(i.Role)

	return s.repo.Update(ctx, i)
}

func (s *authorInfoService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return authorinfo.ErrAuthorInfoNotFound
	}

	return s.repo.Delete(ctx, id)
}

func (s *authorInfoService) FindByID(ctx context.Context, id int64) (*authorinfo.AuthorInfo, error) {
	if id <= 0 {
		return nil, nil
	}

	return s.repo.FindByID(ctx, id)
}

func (s *authorInfoService) ListAll(ctx context.Context) ([]authorinfo.AuthorInfo, error) {
	return s.repo.ListAll(ctx)
}

func (s *authorInfoService) FindByTerm(ctx context.Context, term string) ([]authorinfo.AuthorInfo, error) {
	return s.repo.FindByTerm(ctx, term)
}

func (s *authorInfoService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
