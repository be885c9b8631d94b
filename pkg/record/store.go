package record

import (
	"context"
	"fmt"
	"moodbite/domain"

	"github.com/gofiber/fiber/v2/log"
)

// Store reads and writes the typed records on top of a RecordRepository.
// Reads never fail on bad data: a corrupt value is logged and replaced by
// the record's default.
type Store struct {
	repo RecordRepository
}

func NewStore(repo RecordRepository) *Store {
	return &Store{repo: repo}
}

func (s *Store) LoadFavorites(ctx context.Context) ([]string, error) {
	return s.loadIDs(ctx, KeyFavorites)
}

func (s *Store) SaveFavorites(ctx context.Context, ids []string) error {
	return s.save(ctx, KeyFavorites, ids)
}

func (s *Store) LoadCompleted(ctx context.Context) ([]string, error) {
	return s.loadIDs(ctx, KeyCompleted)
}

func (s *Store) SaveCompleted(ctx context.Context, ids []string) error {
	return s.save(ctx, KeyCompleted, ids)
}

func (s *Store) LoadPet(ctx context.Context) (domain.PetState, error) {
	raw, found, err := s.repo.Get(ctx, KeyPet)
	if err != nil {
		return domain.PetState{}, fmt.Errorf("load %s: %w", KeyPet, err)
	}
	d := DecodePet(raw, found)
	s.warnCorrupt(KeyPet, d.Source)
	return d.Value, nil
}

func (s *Store) SavePet(ctx context.Context, pet domain.PetState) error {
	return s.save(ctx, KeyPet, pet)
}

func (s *Store) LoadMissions(ctx context.Context) (domain.MissionProgress, error) {
	raw, found, err := s.repo.Get(ctx, KeyMissions)
	if err != nil {
		return domain.MissionProgress{}, fmt.Errorf("load %s: %w", KeyMissions, err)
	}
	d := DecodeMissions(raw, found)
	s.warnCorrupt(KeyMissions, d.Source)
	return d.Value, nil
}

func (s *Store) SaveMissions(ctx context.Context, m domain.MissionProgress) error {
	return s.save(ctx, KeyMissions, m)
}

func (s *Store) loadIDs(ctx context.Context, key string) ([]string, error) {
	raw, found, err := s.repo.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	d := DecodeIDs(raw, found)
	s.warnCorrupt(key, d.Source)
	return d.Value, nil
}

func (s *Store) save(ctx context.Context, key string, v any) error {
	value, err := encode(v)
	if err != nil {
		return err
	}
	if err := s.repo.Set(ctx, key, value); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

func (s *Store) warnCorrupt(key string, src Source) {
	if src == SourceCorrupt {
		log.Warnf("record %s is not valid JSON, using default", key)
	}
}
