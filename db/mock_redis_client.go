package db

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"path"
	"sort"
	"sync"

	"github.com/go-redis/redis/v8"
)

// MockRedisClient simulates a Redis client for testing purposes.
type MockRedisClient struct {
	data    map[string]string            // Key-value store
	geoData map[string]map[string]GeoLoc // Geolocation data
	mu      sync.RWMutex
	context context.Context
}

// GeoLoc represents a geolocation with latitude and longitude.
type GeoLoc struct {
	Latitude  float64
	Longitude float64
}

// NewMockRedisClient initializes a new MockRedisClient.
func NewMockRedisClient(ctx context.Context) *MockRedisClient {
	return &MockRedisClient{
		data:    make(map[string]string),
		geoData: make(map[string]map[string]GeoLoc),
		context: ctx,
	}
}

// Set stores a key-value pair in the mock Redis.
func (m *MockRedisClient) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// Get retrieves a value for a given key. Like Redis, a miss is redis.Nil.
func (m *MockRedisClient) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, exists := m.data[key]
	if !exists {
		return "", redis.Nil
	}
	return value, nil
}

func (m *MockRedisClient) Del(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Keys matches glob patterns against stored keys, sorted.
func (m *MockRedisClient) Keys(pattern string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var keys []string
	for k := range m.data {
		ok, err := path.Match(pattern, k)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		if ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

// AddLocationWithJSON adds geolocation with JSON data in the mock Redis.
func (m *MockRedisClient) AddLocationWithJSON(ctx context.Context, geoKey, memberKey string, lat, lon float64, data interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, exists := m.geoData[geoKey]; !exists {
		m.geoData[geoKey] = make(map[string]GeoLoc)
	}
	m.geoData[geoKey][memberKey] = GeoLoc{Latitude: lat, Longitude: lon}
	m.data[memberKey] = string(jsonData)
	return nil
}

// GetLocationsWithinRadius returns members within radius kilometers,
// nearest first, using the haversine distance.
func (m *MockRedisClient) GetLocationsWithinRadius(key string, lat, lon, radius float64) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	type hit struct {
		member string
		dist   float64
	}
	var hits []hit
	for member, loc := range m.geoData[key] {
		if d := haversineKm(lat, lon, loc.Latitude, loc.Longitude); d <= radius {
			hits = append(hits, hit{member, d})
		}
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].dist != hits[j].dist {
			return hits[i].dist < hits[j].dist
		}
		return hits[i].member < hits[j].member
	})

	var results []string
	for _, h := range hits {
		if data, exists := m.data[h.member]; exists {
			results = append(results, data)
		}
	}
	return results, nil
}

func (m *MockRedisClient) RemoveLocation(ctx context.Context, geoKey, memberKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.geoData[geoKey], memberKey)
	delete(m.data, memberKey)
	return nil
}

// GetContext returns the mock Redis client's context.
func (m *MockRedisClient) GetContext() context.Context {
	return m.context
}

// Ping always succeeds.
func (m *MockRedisClient) Ping() error {
	log.Println("[MockRedisClient] Ping successful")
	return nil
}

const earthRadiusKm = 6371.0

func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	rad := func(deg float64) float64 { return deg * math.Pi / 180 }
	dLat := rad(lat2 - lat1)
	dLon := rad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(lat1))*math.Cos(rad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}
