// Package store provides the in-memory implementation of the project
// repository. The host embeds the engine with a key-addressable store; this
// adapter is that store for single-process deployments and for tests.
package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/blackbird-voyages/ops-engine/internal/domain"
	"github.com/blackbird-voyages/ops-engine/internal/domain/opsproject"
	"github.com/blackbird-voyages/ops-engine/internal/ports"
)

// Compile-time interface check.
var _ ports.ProjectRepository = (*Memory)(nil)

// Memory is a thread-safe in-memory project repository keyed by package ID.
// Every read and write deep-copies, so a stored project can never be mutated
// through an escaped reference. Save replaces the stored project wholesale;
// concurrent writers are last-write-wins.
type Memory struct {
	mu       sync.RWMutex
	projects map[string]opsproject.Project
}

// NewMemory creates an empty in-memory repository.
func NewMemory() *Memory {
	return &Memory{projects: make(map[string]opsproject.Project)}
}

// Get returns the project for a package.
func (m *Memory) Get(_ context.Context, packageID string) (*opsproject.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.projects[packageID]
	if !ok {
		return nil, fmt.Errorf("project for package %s: %w", packageID, domain.ErrNotFound)
	}
	out := p.Clone()
	return &out, nil
}

// List returns every stored project in unspecified order.
func (m *Memory) List(_ context.Context) ([]opsproject.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]opsproject.Project, 0, len(m.projects))
	for _, p := range m.projects {
		out = append(out, p.Clone())
	}
	return out, nil
}

// Save stores the project, replacing any previous state for the package.
func (m *Memory) Save(_ context.Context, p *opsproject.Project) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.projects[p.PackageID] = p.Clone()
	return nil
}

// Delete removes a package's project.
func (m *Memory) Delete(_ context.Context, packageID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.projects[packageID]; !ok {
		return fmt.Errorf("project for package %s: %w", packageID, domain.ErrNotFound)
	}
	delete(m.projects, packageID)
	return nil
}
