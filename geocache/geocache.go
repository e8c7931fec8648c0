// Package geocache caches location-autocomplete responses in Redis so
// repeated lookups don't hit the upstream geocoder.
package geocache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store { return &Store{rdb: rdb, ttl: ttl} }

// Suggestion is one autocomplete result as served to clients.
type Suggestion struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Country string `json:"country"`
	Coords  Coords `json:"coordinates"`
}

type Coords struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Key normalizes a query plus optional bias point into a cache key. Bias
// coordinates are part of the key since they change the upstream results.
func Key(q, lat, lon string) string {
	k := strings.ToLower(strings.TrimSpace(q))
	if lat != "" && lon != "" {
		k += "@" + lat + "," + lon
	}
	return fmt.Sprintf("geo:search:%s", k)
}

func (s *Store) Get(ctx context.Context, key string) ([]Suggestion, error) {
	b, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, err
	}
	var out []Suggestion
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) Set(ctx context.Context, key string, v []Suggestion) error {
	b, _ := json.Marshal(v)
	return s.rdb.Set(ctx, key, b, s.ttl).Err()
}
