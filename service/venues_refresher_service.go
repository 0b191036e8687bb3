package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"hours-server/dao/redis"
	"hours-server/util"
)

// RefreshSummary counts what one refresh did.
type RefreshSummary struct {
	Upserted int
	Skipped  int
	Deleted  int
}

// VenuesRefresherService keeps the stored venues in sync with the catalog
// file.
type VenuesRefresherService struct {
	venueDao    *redis.RedisVenueDAO
	catalogPath string
}

// NewVenuesRefresherService constructs a new Refresher with dependencies.
func NewVenuesRefresherService(venueDao *redis.RedisVenueDAO, catalogPath string) *VenuesRefresherService {
	return &VenuesRefresherService{
		venueDao:    venueDao,
		catalogPath: catalogPath,
	}
}

// StartPeriodicJob launches the background loop at the given interval. It
// stops when ctx is done.
func (vr *VenuesRefresherService) StartPeriodicJob(ctx context.Context, interval time.Duration) {
	go vr.startPeriodicJob(ctx, interval)
}

func (vr *VenuesRefresherService) startPeriodicJob(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("[VenuesRefresherService] Periodic job stopped.")
			return
		case <-ticker.C:
			log.Println("[VenuesRefresherService] Running periodic venues refresher job.")
			if _, err := vr.RefreshVenuesData(); err != nil {
				log.Printf("[VenuesRefresherService] RefreshVenuesData returned error: %v", err)
			}
		}
	}
}

// RefreshVenuesData upserts every catalog venue with valid hours and
// deletes stored venues the catalog no longer lists. Venues with invalid
// hours are logged and skipped; a stored copy of a skipped venue is kept.
func (vr *VenuesRefresherService) RefreshVenuesData() (RefreshSummary, error) {
	var summary RefreshSummary

	catalog, err := util.ReadVenueCatalog(vr.catalogPath)
	if err != nil {
		return summary, fmt.Errorf("failed to read venue catalog: %w", err)
	}
	log.Printf("[VenuesRefresherService] Loaded %d venues from %s", len(catalog.Venues), vr.catalogPath)

	listed := make(map[string]struct{}, len(catalog.Venues))
	for _, v := range catalog.Venues {
		if _, dup := listed[v.VenueID]; dup {
			log.Printf("[VenuesRefresherService] Duplicate venue ID=%s, later entry wins", v.VenueID)
		}
		listed[v.VenueID] = struct{}{}
		if err := vr.venueDao.UpsertVenue(v); err != nil {
			log.Printf("[VenuesRefresherService] Skipping venue ID=%s: %v", v.VenueID, err)
			summary.Skipped++
			continue
		}
		summary.Upserted++
	}

	stored, err := vr.venueDao.ListAllVenueIDs()
	if err != nil {
		return summary, fmt.Errorf("failed to list stored venues: %w", err)
	}
	for _, id := range stored {
		if _, ok := listed[id]; ok {
			continue
		}
		if err := vr.venueDao.DeleteVenue(id); err != nil {
			log.Printf("[VenuesRefresherService] Failed to delete stale venue %s: %v", id, err)
			continue
		}
		summary.Deleted++
	}

	log.Printf("[VenuesRefresherService] Refresh done: upserted=%d skipped=%d deleted=%d",
		summary.Upserted, summary.Skipped, summary.Deleted)
	return summary, nil
}
