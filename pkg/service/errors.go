package service

import (
	"errors"
	"fmt"

	"droscher.com/BeerCatalog/pkg/repository"
)

var ErrNotFound = errors.New("not found")

// NotFoundError names the entity kind and id that could not be resolved.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with id: %d", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

func translate(err error, entity string, id uint) error {
	if errors.Is(err, repository.ErrNotFound) {
		return &NotFoundError{Entity: entity, ID: id}
	}

	return err
}
