package usecase

import (
	"clinica_finanzas/internal/domain/entities"
	"log"
	"strings"
	"sync"
)

// IEntityRegistry resolves payer ids to patients or companies.
type IEntityRegistry interface {
	Resolve(id string) (entities.Entity, bool)
	DisplayName(id string) string
}

// EntityRegistry is a read-only id index over patients and companies.
//
// Patients are indexed before companies. When both collections use the same
// id the patient keeps it and the id is listed in Collisions.
type EntityRegistry struct {
	mu         sync.RWMutex
	byID       map[string]entities.Entity
	collisions []string
}

var _ IEntityRegistry = (*EntityRegistry)(nil)

func NewEntityRegistry() *EntityRegistry {
	return &EntityRegistry{byID: map[string]entities.Entity{}}
}

// Load replaces the index with the given collections.
func (r *EntityRegistry) Load(patients []entities.Patient, companies []entities.Company) {
	byID := make(map[string]entities.Entity, len(patients)+len(companies))
	var collisions []string
	for _, p := range patients {
		byID[p.ID] = p
	}
	for _, c := range companies {
		if existing, ok := byID[c.ID]; ok {
			log.Printf("[entity][registry] id collision id=%s kept=%s dropped=%s", c.ID, existing.Kind(), c.Kind())
			collisions = append(collisions, c.ID)
			continue
		}
		byID[c.ID] = c
	}

	r.mu.Lock()
	r.byID = byID
	r.collisions = collisions
	r.mu.Unlock()
	log.Printf("[entity][registry] loaded patients=%d companies=%d collisions=%d", len(patients), len(companies), len(collisions))
}

func (r *EntityRegistry) Resolve(id string) (entities.Entity, bool) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.byID[id]
	return e, ok
}

// DisplayName returns the entity name, or entities.UnknownEntityName.
func (r *EntityRegistry) DisplayName(id string) string {
	if e, ok := r.Resolve(id); ok {
		return e.DisplayName()
	}
	return entities.UnknownEntityName
}

func (r *EntityRegistry) Collisions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.collisions...)
}

func (r *EntityRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}
