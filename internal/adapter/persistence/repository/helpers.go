package repository

import (
	"errors"
	"os"
)

// ErrDuplicateID is returned by Create when the id is already stored.
var ErrDuplicateID = errors.New("duplicate id")

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
