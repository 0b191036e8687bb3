package db

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/go-redis/redis/v8"
)

// GeoRedisClient struct holds the Redis client and context
type GeoRedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewGeoRedisClient wraps an existing go-redis client. Call Ping to check
// the connection.
func NewGeoRedisClient(ctx context.Context, client *redis.Client) *GeoRedisClient {
	return &GeoRedisClient{
		client: client,
		ctx:    ctx,
	}
}

// Set sets a key-value pair in Redis
func (r *GeoRedisClient) Set(key, value string) error {
	return r.client.Set(r.ctx, key, value, 0).Err()
}

// Get retrieves the value for a given key. A missing key returns
// redis.Nil.
func (r *GeoRedisClient) Get(key string) (string, error) {
	return r.client.Get(r.ctx, key).Result()
}

func (r *GeoRedisClient) Del(key string) error {
	return r.client.Del(r.ctx, key).Err()
}

// Keys returns every key matching pattern, using SCAN rather than KEYS.
func (r *GeoRedisClient) Keys(pattern string) ([]string, error) {
	var keys []string
	iter := r.client.Scan(r.ctx, 0, pattern, 100).Iterator()
	for iter.Next(r.ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan keys %q: %w", pattern, err)
	}
	return keys, nil
}

// AddLocationWithJSON stores geolocation along with associated JSON data.
func (r *GeoRedisClient) AddLocationWithJSON(ctx context.Context, geoKey, memberKey string, lat, lon float64, data interface{}) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if err := r.client.GeoAdd(ctx, geoKey, &redis.GeoLocation{
		Name:      memberKey,
		Latitude:  lat,
		Longitude: lon,
	}).Err(); err != nil {
		return fmt.Errorf("failed to add geolocation: %w", err)
	}

	// The JSON lives under the member name so radius queries can fetch it.
	if err := r.client.Set(ctx, memberKey, jsonData, 0).Err(); err != nil {
		return fmt.Errorf("failed to set JSON data: %w", err)
	}
	return nil
}

// GetLocationsWithinRadius returns the JSON of every member within radius
// kilometers of (lat, lon).
func (r *GeoRedisClient) GetLocationsWithinRadius(key string, lat, lon, radius float64) ([]string, error) {
	ctx := r.ctx
	results, err := r.client.GeoRadius(ctx, key, lon, lat, &redis.GeoRadiusQuery{
		Radius: radius,
		Unit:   "km",
		Sort:   "ASC",
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get nearby locations: %w", err)
	}

	var objects []string
	for _, loc := range results {
		data, err := r.client.Get(ctx, loc.Name).Result()
		if err != nil {
			log.Printf("[GeoRedisClient] Skipping member %s due to error: %v", loc.Name, err)
			continue
		}
		objects = append(objects, data)
	}
	return objects, nil
}

// RemoveLocation drops memberKey from the geo index and deletes its JSON.
func (r *GeoRedisClient) RemoveLocation(ctx context.Context, geoKey, memberKey string) error {
	if err := r.client.ZRem(ctx, geoKey, memberKey).Err(); err != nil {
		return fmt.Errorf("failed to remove geolocation: %w", err)
	}
	if err := r.client.Del(ctx, memberKey).Err(); err != nil {
		return fmt.Errorf("failed to delete JSON data: %w", err)
	}
	return nil
}

func (r *GeoRedisClient) GetContext() context.Context {
	return r.ctx
}

func (r *GeoRedisClient) Ping() error {
	return r.client.Ping(r.ctx).Err()
}
