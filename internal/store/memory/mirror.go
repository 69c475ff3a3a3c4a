package memory

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/celosalong/salon-booking-api/internal/models"
)

// The mirror file keeps bookings across restarts. It is best effort: a
// failed write is logged and the in-memory state stays authoritative.

func (s *Store) loadMirror() {
	if s.mirrorPath == "" {
		return
	}

	data, err := os.ReadFile(s.mirrorPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logrus.WithError(err).WithField("file", s.mirrorPath).
				Warn("could not read bookings mirror")
		}
		return
	}

	var bookings []models.Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		logrus.WithError(err).WithField("file", s.mirrorPath).
			Warn("bookings mirror is corrupt, starting empty")
		return
	}

	s.bookings = bookings
	logrus.WithField("count", len(bookings)).Info("bookings loaded from mirror")
}

// saveMirrorLocked is called with s.mu held, after every mutation.
func (s *Store) saveMirrorLocked() {
	if s.mirrorPath == "" {
		return
	}

	data, err := json.MarshalIndent(s.bookings, "", "  ")
	if err != nil {
		logrus.WithError(err).Error("could not encode bookings mirror")
		return
	}

	if err := os.MkdirAll(filepath.Dir(s.mirrorPath), 0o755); err != nil {
		logrus.WithError(err).Error("could not create mirror directory")
		return
	}

	if err := os.WriteFile(s.mirrorPath, data, 0o644); err != nil {
		logrus.WithError(err).WithField("file", s.mirrorPath).
			Error("could not write bookings mirror")
	}
}
