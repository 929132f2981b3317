package service

import (
	"errors"
	"testing"
	"time"

	"github.com/AndrewMorgan2/Spritied-Towards/internal/engine"
	"github.com/AndrewMorgan2/Spritied-Towards/internal/game"
)

type mockRepo struct {
	sessions map[string]*game.Session
	updated  int
	deleted  []string
	failNext error
}

func newMockRepo() *mockRepo {
	return &mockRepo{sessions: map[string]*game.Session{}}
}

func (m *mockRepo) CreateSession(s *game.Session) error {
	if m.failNext != nil {
		err := m.failNext
		m.failNext = nil
		return err
	}
	m.sessions[s.JoinCode] = s
	return nil
}

func (m *mockRepo) FindSessionByJoinCode(code string) (*game.Session, error) {
	if s, ok := m.sessions[code]; ok {
		return s, nil
	}
	return nil, errors.New("record not found")
}

func (m *mockRepo) UpdateSession(s *game.Session) error {
	m.updated++
	m.sessions[s.JoinCode] = s
	return nil
}

func (m *mockRepo) DeleteSession(s *game.Session) error {
	m.deleted = append(m.deleted, s.JoinCode)
	delete(m.sessions, s.JoinCode)
	return nil
}

func (m *mockRepo) FindStaleSessions(cutoff time.Time) ([]game.Session, error) {
	var out []game.Session
	for _, s := range m.sessions {
		out = append(out, *s)
	}
	return out, nil
}

type mockChapters struct {
	chapters []game.Chapter
}

func (m *mockChapters) Chapter(key string) *game.Chapter {
	for i := range m.chapters {
		if m.chapters[i].Key == key {
			return &m.chapters[i]
		}
	}
	return nil
}

func (m *mockChapters) Entry() *game.Chapter { return &m.chapters[0] }

func testChapters() *mockChapters {
	return &mockChapters{chapters: []game.Chapter{
		{
			Key:             "forest",
			Title:           "The Magic Forest",
			PlayerMaxHealth: 100,
			Hostiles: []game.HostileConfig{
				{Name: "Gloom", MaxHealth: 10, AttackDamage: 15},
			},
			InitialHand:         []game.CardKind{game.CardFire, game.CardIce},
			AdvanceDelaySeconds: 5,
			NextChapter:         "fort",
		},
		{
			Key:             "fort",
			Title:           "The Fort",
			PlayerMaxHealth: 100,
			Hostiles: []game.HostileConfig{
				{Name: "Warden", MaxHealth: 21, AttackDamage: 25},
			},
			InitialHand: []game.CardKind{game.CardIce, game.CardEarth, game.CardCrystal},
		},
	}}
}

func TestCreateSession_EntryChapter(t *testing.T) {
	repo := newMockRepo()

	s, err := CreateSession(repo, testChapters(), "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.ChapterKey != "forest" {
		t.Fatalf("expected entry chapter, got %s", s.ChapterKey)
	}
	if s.PlayerName != "Adventurer" {
		t.Fatalf("blank player name should fall back to a default, got %q", s.PlayerName)
	}
	if s.SessionUUID == "" || len(s.JoinCode) != 8 {
		t.Fatalf("session missing identity: uuid=%q code=%q", s.SessionUUID, s.JoinCode)
	}
	if _, ok := repo.sessions[s.JoinCode]; !ok {
		t.Fatal("session was not persisted")
	}
}

func TestCreateSession_UnknownChapter(t *testing.T) {
	repo := newMockRepo()
	if _, err := CreateSession(repo, testChapters(), "swamp", "Rin"); err != ErrChapterNotFound {
		t.Fatalf("expected ErrChapterNotFound, got %v", err)
	}
}

func TestPlayCard_PersistsAndPassesEngineErrors(t *testing.T) {
	repo := newMockRepo()
	s, err := CreateSession(repo, testChapters(), "", "Rin")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, _, err := PlayCard(repo, "NOPE0000", 0); err != ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if _, _, err := PlayCard(repo, s.JoinCode, 9); err != engine.ErrInvalidCardIndex {
		t.Fatalf("expected engine error to pass through, got %v", err)
	}
	if repo.updated != 0 {
		t.Fatal("rejected play must not persist")
	}

	got, out, err := PlayCard(repo, s.JoinCode, 0)
	if err != nil {
		t.Fatalf("play failed: %v", err)
	}
	// Boosted fire fells the 10-health hostile outright.
	if out.Outcome != game.OutcomeVictory {
		t.Fatalf("expected victory, got %s", out.Outcome)
	}
	if repo.updated != 1 {
		t.Fatalf("expected one persist, got %d", repo.updated)
	}
	if len(got.Hand) != 1 {
		t.Fatalf("expected one card left, got %d", len(got.Hand))
	}
}

func TestEndTurn_ClosedSessionRejected(t *testing.T) {
	repo := newMockRepo()
	s, err := CreateSession(repo, testChapters(), "", "Rin")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	s.Status = game.StatusClosed

	if _, _, err := EndTurn(repo, s.JoinCode); err != ErrSessionClosed {
		t.Fatalf("expected ErrSessionClosed, got %v", err)
	}
}

func TestAdvanceChapter_VictoryOpensNextChapter(t *testing.T) {
	repo := newMockRepo()
	s, err := CreateSession(repo, testChapters(), "", "Rin")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := AdvanceChapter(repo, testChapters(), s.JoinCode); err != ErrEncounterOngoing {
		t.Fatalf("expected ErrEncounterOngoing, got %v", err)
	}

	if _, _, err := PlayCard(repo, s.JoinCode, 0); err != nil {
		t.Fatalf("play failed: %v", err)
	}

	next, err := AdvanceChapter(repo, testChapters(), s.JoinCode)
	if err != nil {
		t.Fatalf("advance failed: %v", err)
	}
	if next.ChapterKey != "fort" {
		t.Fatalf("expected the fort chapter, got %s", next.ChapterKey)
	}
	if next.JoinCode == s.JoinCode {
		t.Fatal("next chapter must get its own join code")
	}
	if repo.sessions[s.JoinCode].Status != game.StatusClosed {
		t.Fatal("concluded session should be closed")
	}
	if len(next.Hand) != 3 {
		t.Fatalf("next chapter hand not dealt: %d cards", len(next.Hand))
	}

	// A second advance on the closed session is rejected.
	if _, err := AdvanceChapter(repo, testChapters(), s.JoinCode); err != ErrSessionClosed {
		t.Fatalf("expected ErrSessionClosed, got %v", err)
	}
}

func TestAdvanceChapter_DefeatJustCloses(t *testing.T) {
	repo := newMockRepo()
	s, err := CreateSession(repo, testChapters(), "fort", "Rin")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	s.PlayerHealth = 5

	if _, _, err := EndTurn(repo, s.JoinCode); err != nil {
		t.Fatalf("end turn failed: %v", err)
	}
	closed, err := AdvanceChapter(repo, testChapters(), s.JoinCode)
	if err != nil {
		t.Fatalf("advance failed: %v", err)
	}
	if closed.JoinCode != s.JoinCode || closed.Status != game.StatusClosed {
		t.Fatal("defeat should close the same session, not open a new one")
	}
}

func TestCleanupStaleSessions(t *testing.T) {
	repo := newMockRepo()
	if _, err := CreateSession(repo, testChapters(), "", "Rin"); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := CreateSession(repo, testChapters(), "", "Rin"); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	removed := CleanupStaleSessions(repo, time.Hour)
	if removed != 2 {
		t.Fatalf("expected 2 removals, got %d", removed)
	}
	if len(repo.sessions) != 0 {
		t.Fatalf("expected empty store, %d sessions left", len(repo.sessions))
	}
}
