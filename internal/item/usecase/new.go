package usecase

import (
	"items-api/internal/item"
	"items-api/internal/item/repository"
	"items-api/pkg/log"
)

// implUseCase is the private implementation of item.UseCase.
// It keeps no per-request state; everything lives in the database.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

var _ item.UseCase = (*implUseCase)(nil)

// New creates a new item UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
