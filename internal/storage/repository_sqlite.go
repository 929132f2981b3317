package storage

import (
	"time"

	"github.com/AndrewMorgan2/Spritied-Towards/internal/game"
	"gorm.io/gorm"
)

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) CreateSession(s *game.Session) error {
	return r.db.Create(s).Error
}

func (r *sqliteRepository) GetSessionByUUID(uuid string) (*game.Session, error) {
	var s game.Session
	err := r.preloaded().Where("session_uuid = ?", uuid).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sqliteRepository) FindSessionByJoinCode(code string) (*game.Session, error) {
	var s game.Session
	err := r.preloaded().Where("join_code = ?", code).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// preloaded loads a session with its hand in play order and its hostile
// roster attached.
func (r *sqliteRepository) preloaded() *gorm.DB {
	return r.db.
		Preload("Hand", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Hostiles")
}

func (r *sqliteRepository) UpdateSession(s *game.Session) error {
	if err := r.db.Session(&gorm.Session{FullSaveAssociations: true}).Save(s).Error; err != nil {
		return err
	}
	// FullSaveAssociations upserts association rows but never removes
	// them, so cards played out of the hand would linger. Prune any hand
	// row the session no longer carries.
	kept := make([]uint, 0, len(s.Hand))
	for i := range s.Hand {
		kept = append(kept, s.Hand[i].ID)
	}
	q := r.db.Unscoped().Where("session_id = ?", s.ID)
	if len(kept) > 0 {
		q = q.Where("id NOT IN ?", kept)
	}
	return q.Delete(&game.HandCard{}).Error
}

func (r *sqliteRepository) DeleteSession(s *game.Session) error {
	if err := r.db.Unscoped().Where("session_id = ?", s.ID).Delete(&game.HandCard{}).Error; err != nil {
		return err
	}
	if err := r.db.Unscoped().Where("session_id = ?", s.ID).Delete(&game.Hostile{}).Error; err != nil {
		return err
	}
	return r.db.Unscoped().Delete(s).Error
}

func (r *sqliteRepository) FindStaleSessions(cutoff time.Time) ([]game.Session, error) {
	var sessions []game.Session
	err := r.db.Where("updated_at <= ?", cutoff).Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}
