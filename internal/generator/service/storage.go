package service

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ============================================================
// File Storage
// ============================================================

var ErrInvalidSession = errors.New("invalid session id")

// FileStorage раскладывает сгенерированные файлы по каталогам сессий,
// чтобы параллельные запросы не перетирали друг друга.
type FileStorage struct {
	root string
}

func NewFileStorage(root string) *FileStorage {
	return &FileStorage{root: root}
}

// NewSessionID выдает новый идентификатор сессии.
func NewSessionID() string {
	return uuid.NewString()
}

// ValidateSession принимает только канонический uuid.
func ValidateSession(sessionID string) error {
	id, err := uuid.Parse(sessionID)
	if err != nil || id.String() != sessionID {
		return fmt.Errorf("%w: %q", ErrInvalidSession, sessionID)
	}
	return nil
}

func (s *FileStorage) Root() string {
	return s.root
}

func (s *FileStorage) SessionDir(sessionID string) string {
	return filepath.Join(s.root, sessionID)
}

// MeshFilename: имя файла для типа и раскладки; "/" и пробелы заменяются.
func MeshFilename(outletType, arrangement string) string {
	r := strings.NewReplacer("/", "-", "\\", "-", " ", "_", "..", "_")
	return r.Replace(outletType) + "_" + r.Replace(arrangement) + ".stl"
}

func (s *FileStorage) MeshPath(sessionID, filename string) string {
	return filepath.Join(s.SessionDir(sessionID), filename)
}

func (s *FileStorage) EnsureSessionDir(sessionID string) error {
	if err := ValidateSession(sessionID); err != nil {
		return err
	}
	if err := os.MkdirAll(s.SessionDir(sessionID), 0o755); err != nil {
		return fmt.Errorf("mkdir session dir: %w", err)
	}
	return nil
}

// Lookup возвращает путь к существующему файлу сессии.
func (s *FileStorage) Lookup(sessionID, filename string) (string, error) {
	if err := ValidateSession(sessionID); err != nil {
		return "", err
	}
	if filename == "" || filename != filepath.Base(filename) || strings.HasPrefix(filename, ".") {
		return "", fmt.Errorf("invalid file name %q", filename)
	}
	path := s.MeshPath(sessionID, filename)
	if _, err := os.Stat(path); err != nil {
		return "", err
	}
	return path, nil
}

// Remove удаляет файл, отсутствие файла ошибкой не считается.
func (s *FileStorage) Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
