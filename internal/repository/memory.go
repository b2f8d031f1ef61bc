package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"impilo/registry/internal/models"
)

// RegistrationMemory mirrors RegistrationRepository for tests that don't
// want a database.
type RegistrationMemory struct {
	mu   sync.RWMutex
	rows map[string]models.Registration
}

func NewRegistrationMemory() *RegistrationMemory {
	return &RegistrationMemory{rows: make(map[string]models.Registration)}
}

func (m *RegistrationMemory) Create(ctx context.Context, reg models.Registration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[reg.ID]; ok {
		return ErrDuplicate
	}
	m.rows[reg.ID] = reg
	return nil
}

func (m *RegistrationMemory) GetByID(ctx context.Context, id string) (models.Registration, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	reg, ok := m.rows[id]
	if !ok {
		return models.Registration{}, ErrNotFound
	}
	return reg, nil
}

func (m *RegistrationMemory) List(ctx context.Context, limit, offset int) ([]models.Registration, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	regs := make([]models.Registration, 0, len(m.rows))
	for _, reg := range m.rows {
		regs = append(regs, reg)
	}
	sort.Slice(regs, func(i, j int) bool {
		if !regs[i].CreatedAt.Equal(regs[j].CreatedAt) {
			return regs[i].CreatedAt.After(regs[j].CreatedAt)
		}
		return regs[i].ID > regs[j].ID
	})

	if offset >= len(regs) {
		return nil, nil
	}
	regs = regs[offset:]
	if limit > 0 && limit < len(regs) {
		regs = regs[:limit]
	}
	return regs, nil
}

func (m *RegistrationMemory) UpdateStatus(ctx context.Context, id string, status models.RegistrationStatus) (models.Registration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	reg, ok := m.rows[id]
	if !ok {
		return models.Registration{}, ErrNotFound
	}
	reg.Status = status
	m.rows[id] = reg
	return reg, nil
}

func (m *RegistrationMemory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

func (m *RegistrationMemory) ExistsByEmailOrPhone(ctx context.Context, email, phone string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, reg := range m.rows {
		if strings.EqualFold(reg.Email, email) || reg.Phone == phone {
			return true, nil
		}
	}
	return false, nil
}

func (m *RegistrationMemory) CountByStatus(ctx context.Context, status models.RegistrationStatus) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	count := 0
	for _, reg := range m.rows {
		if reg.Status == status {
			count++
		}
	}
	return count, nil
}

// AdminMemory mirrors AdminRepository for tests.
type AdminMemory struct {
	mu   sync.RWMutex
	rows map[string]models.Admin
}

func NewAdminMemory() *AdminMemory {
	return &AdminMemory{rows: make(map[string]models.Admin)}
}

func (m *AdminMemory) GetByEmail(ctx context.Context, email string) (models.Admin, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	admin, ok := m.rows[strings.ToLower(email)]
	if !ok {
		return models.Admin{}, ErrNotFound
	}
	return admin, nil
}

func (m *AdminMemory) Create(ctx context.Context, admin models.Admin) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := strings.ToLower(admin.Email)
	if _, ok := m.rows[key]; ok {
		return nil
	}
	m.rows[key] = admin
	return nil
}
