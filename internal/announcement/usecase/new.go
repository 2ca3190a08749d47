package usecase

import (
	"time"

	"mango-alerts-srv/internal/announcement"
	"mango-alerts-srv/internal/announcement/repository"
	pkgLog "mango-alerts-srv/pkg/log"
)

type usecase struct {
	l      pkgLog.Logger
	repo   repository.Repository
	secret string
	clock  func() time.Time
}

// New creates the announcement usecase. secret is the process-wide
// write password for mutating operations.
func New(l pkgLog.Logger, repo repository.Repository, secret string) announcement.UseCase {
	return &usecase{
		l:      l,
		repo:   repo,
		secret: secret,
		clock:  time.Now,
	}
}
