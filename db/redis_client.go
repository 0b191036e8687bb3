package db

import "context"

// RedisClient is the subset of Redis the venue catalog needs.
type RedisClient interface {
	Set(key, value string) error
	Get(key string) (string, error)
	Del(key string) error
	Keys(pattern string) ([]string, error)
	AddLocationWithJSON(ctx context.Context, geoKey, memberKey string, lat, lon float64, data interface{}) error
	GetLocationsWithinRadius(key string, lat, lon, radius float64) ([]string, error)
	RemoveLocation(ctx context.Context, geoKey, memberKey string) error
	GetContext() context.Context
	Ping() error
}
