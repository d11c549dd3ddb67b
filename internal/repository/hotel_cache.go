package repository

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/event-hotel-booking/internal/config"
	"github.com/iliyamo/event-hotel-booking/internal/model"
)

// HotelSource is the uncached catalog, normally *HotelRepo.
type HotelSource interface {
	ListHotels(ctx context.Context) ([]model.Hotel, error)
	ListRoomsByHotel(ctx context.Context, hotelID int) ([]model.RoomWithHotel, error)
	HotelExists(ctx context.Context, hotelID int) (bool, error)
}

// HotelCache is a cache-aside layer over the hotel catalog.  Redis failures
// never fail a read; they are logged and the source is queried instead.
// Room lists carry no booking data, so caching them cannot hide a capacity
// change.
type HotelCache struct {
	src HotelSource
	rdb *redis.Client
	ttl time.Duration
	pfx string
	log logrus.FieldLogger
}

// NewHotelCache wraps src.  When caching is disabled or rdb is nil, src is
// returned unchanged.
func NewHotelCache(src HotelSource, rdb *redis.Client, cfg config.CacheConfig, log logrus.FieldLogger) HotelSource {
	if !cfg.Enabled || rdb == nil {
		return src
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &HotelCache{src: src, rdb: rdb, ttl: ttl, pfx: cfg.Prefix, log: log}
}

func (c *HotelCache) ListHotels(ctx context.Context) ([]model.Hotel, error) {
	key := c.pfx + ":all"
	var hotels []model.Hotel
	if c.get(ctx, key, &hotels) {
		return hotels, nil
	}
	hotels, err := c.src.ListHotels(ctx)
	if err != nil {
		return nil, err
	}
	c.set(ctx, key, hotels)
	return hotels, nil
}

func (c *HotelCache) ListRoomsByHotel(ctx context.Context, hotelID int) ([]model.RoomWithHotel, error) {
	key := c.pfx + ":" + strconv.Itoa(hotelID) + ":rooms"
	var rooms []model.RoomWithHotel
	if c.get(ctx, key, &rooms) {
		return rooms, nil
	}
	rooms, err := c.src.ListRoomsByHotel(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	c.set(ctx, key, rooms)
	return rooms, nil
}

// HotelExists is not cached.
func (c *HotelCache) HotelExists(ctx context.Context, hotelID int) (bool, error) {
	return c.src.HotelExists(ctx, hotelID)
}

func (c *HotelCache) get(ctx context.Context, key string, dst any) bool {
	bs, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.WithError(err).WithField("key", key).Warn("hotel cache read failed")
		}
		return false
	}
	if err := json.Unmarshal(bs, dst); err != nil {
		c.log.WithError(err).WithField("key", key).Warn("hotel cache entry corrupt")
		return false
	}
	return true
}

func (c *HotelCache) set(ctx context.Context, key string, v any) {
	bs, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, bs, c.ttl).Err(); err != nil {
		c.log.WithError(err).WithField("key", key).Warn("hotel cache write failed")
	}
}
