// service содержит бизнес-логику feed-сервиса.
package service

import (
	"errors"

	"github.com/short5/feed-service/internal/config"
	"github.com/short5/feed-service/internal/storage"
)

var (
	// ErrNotFound — сущность отсутствует.
	// Транспорт: 404.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument — некорректные входные аргументы.
	// Транспорт: 400.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrConflict — гонка при записи голоса.
	// Транспорт: 409.
	ErrConflict = errors.New("conflict")
)

// Service — описывает бизнес-логику feed-service.
type Service struct {
	storage storage.Storage
	cfg     config.Config
}

// New создает новый экземпляр Service.
func New(storage storage.Storage, cfg config.Config) *Service {
	return &Service{
		storage: storage,
		cfg:     cfg,
	}
}
