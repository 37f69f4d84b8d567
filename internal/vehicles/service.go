package vehicles

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/richxcame/fleet-management/pkg/logger"
	"go.uber.org/zap"
)

// Service is the vehicle rule engine. Each operation loads the full fleet
// snapshot, validates the proposed change against it, and writes the new
// snapshot back. Mutations are serialized with a single writer lock so
// overlapping callers cannot race the read-modify-write cycle.
type Service struct {
	repo  Repository
	quota QuotaPolicy
	mu    sync.RWMutex
}

// NewService creates a new vehicle service
func NewService(repo Repository, quota QuotaPolicy) *Service {
	return &Service{repo: repo, quota: quota}
}

// List returns the full vehicle collection
func (s *Service) List(ctx context.Context) ([]Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fleet, err := s.repo.ReadAll(ctx)
	if err != nil {
		return nil, ErrLoadFailed
	}
	if fleet == nil {
		fleet = []Vehicle{}
	}
	return fleet, nil
}

// Get returns a single vehicle by id
func (s *Service) Get(ctx context.Context, id string) (*Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fleet, err := s.repo.ReadAll(ctx)
	if err != nil {
		return nil, ErrLoadFailed
	}
	for i := range fleet {
		if fleet[i].ID == id {
			v := fleet[i]
			return &v, nil
		}
	}
	return nil, ErrVehicleNotFound
}

// Create validates and appends a new vehicle. Status is always forced to
// Available; a supplied id must be format-valid and unique, otherwise a
// fresh one is generated.
func (s *Service) Create(ctx context.Context, req CreateVehicleRequest) (*Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	plate := NormalizeLicense(req.LicensePlate)
	if plate == "" {
		return nil, ErrLicenseRequired
	}
	if !IsValidLicense(plate) {
		return nil, ErrCreateLicenseFormat
	}

	fleet, err := s.repo.ReadAll(ctx)
	if err != nil {
		return nil, ErrLoadFailed
	}

	for _, v := range fleet {
		if v.LicensePlate == plate {
			return nil, ErrDuplicateLicense
		}
	}

	id := strings.TrimSpace(req.ID)
	if id != "" {
		if !IsValidID(id) {
			return nil, ErrCreateIDFormat
		}
		for _, v := range fleet {
			if v.ID == id {
				return nil, ErrDuplicateID
			}
		}
	} else {
		id = s.freshID(fleet)
	}

	vehicle := Vehicle{
		ID:           id,
		LicensePlate: plate,
		Status:       StatusAvailable,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}

	fleet = append(fleet, vehicle)
	if err := s.repo.WriteAll(ctx, fleet); err != nil {
		logger.Error("Failed to persist created vehicle", zap.String("id", id), zap.Error(err))
		return nil, ErrSaveFailed
	}
	return &vehicle, nil
}

// Update applies a partial patch to a vehicle: licensePlate, then id, then
// status, each only when present and different from the current value.
// Every change is validated against the unmodified snapshot before any of
// them is applied, so a failing field leaves the record fully untouched.
func (s *Service) Update(ctx context.Context, targetID string, req UpdateVehicleRequest) (*Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fleet, err := s.repo.ReadAll(ctx)
	if err != nil {
		return nil, ErrLoadFailed
	}

	idx := -1
	for i := range fleet {
		if fleet[i].ID == targetID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrVehicleNotFound
	}

	// Work on a copy; the snapshot stays pristine until commit
	updated := fleet[idx]

	if req.LicensePlate != nil && *req.LicensePlate != "" {
		plate := NormalizeLicense(*req.LicensePlate)
		if plate != updated.LicensePlate {
			if !IsValidLicense(plate) {
				return nil, ErrUpdateLicenseFormat
			}
			for _, v := range fleet {
				if v.LicensePlate == plate && v.ID != targetID {
					return nil, ErrDuplicateLicense
				}
			}
			updated.LicensePlate = plate
		}
	}

	if req.ID != nil {
		id := strings.TrimSpace(*req.ID)
		if id == "" {
			return nil, ErrEmptyID
		}
		if id != updated.ID {
			if !IsValidID(id) {
				return nil, ErrUpdateIDFormat
			}
			for _, v := range fleet {
				if v.ID == id && v.ID != targetID {
					return nil, ErrDuplicateID
				}
			}
			updated.ID = id
		}
	}

	if req.Status != nil && *req.Status != "" && *req.Status != updated.Status {
		if rerr := CheckTransition(fleet, updated.Status, *req.Status, s.quota); rerr != nil {
			return nil, rerr
		}
		updated.Status = *req.Status
	}

	fleet[idx] = updated
	if err := s.repo.WriteAll(ctx, fleet); err != nil {
		logger.Error("Failed to persist updated vehicle", zap.String("id", targetID), zap.Error(err))
		return nil, ErrSaveFailed
	}
	return &updated, nil
}

// Delete removes a vehicle. Vehicles that are InUse or in Maintenance
// cannot be deleted.
func (s *Service) Delete(ctx context.Context, targetID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	fleet, err := s.repo.ReadAll(ctx)
	if err != nil {
		return ErrLoadFailed
	}

	idx := -1
	for i := range fleet {
		if fleet[i].ID == targetID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrVehicleNotFound
	}

	if fleet[idx].Status == StatusInUse || fleet[idx].Status == StatusMaintenance {
		return ErrDeleteBlocked
	}

	fleet = append(fleet[:idx], fleet[idx+1:]...)
	if err := s.repo.WriteAll(ctx, fleet); err != nil {
		logger.Error("Failed to persist vehicle deletion", zap.String("id", targetID), zap.Error(err))
		return ErrSaveFailed
	}
	return nil
}

// ResetFromSeed replaces the persisted collection with the seed snapshot
func (s *Service) ResetFromSeed(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.ResetFromSeed(ctx); err != nil {
		logger.Error("Failed to reset vehicle data from seed", zap.Error(err))
		return ErrResetFailed
	}
	return nil
}

// freshID generates ids until one clears the fleet; generated ids are
// format-valid by construction but collisions with pre-existing data are
// possible, so re-check before trusting one.
func (s *Service) freshID(fleet []Vehicle) string {
	for {
		id := GenerateID()
		taken := false
		for _, v := range fleet {
			if v.ID == id {
				taken = true
				break
			}
		}
		if !taken {
			return id
		}
	}
}
