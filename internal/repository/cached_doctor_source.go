package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"doctor-directory/internal/domain/entity"
	domainRepo "doctor-directory/internal/domain/repository"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// redisCacheTimeout bounds each cache round trip so a slow Redis never holds up the load
const redisCacheTimeout = 2 * time.Second

type cachedDoctorSource struct {
	next        domainRepo.DoctorSource
	redisClient *redis.Client
	log         *logrus.Logger
	key         string
	ttl         time.Duration
}

// NewCachedDoctorSource keeps the raw payload of next in Redis under key for ttl.
// Cache failures are logged and the call falls through to next.
func NewCachedDoctorSource(next domainRepo.DoctorSource, redisClient *redis.Client, log *logrus.Logger, key string, ttl time.Duration) domainRepo.DoctorSource {
	return &cachedDoctorSource{
		next:        next,
		redisClient: redisClient,
		log:         log,
		key:         key,
		ttl:         ttl,
	}
}

func (s *cachedDoctorSource) FetchDoctors(ctx context.Context) ([]entity.RawDoctor, error) {
	if raws, ok := s.readCache(ctx); ok {
		s.log.WithField("count", len(raws)).Info("Loaded doctors from cache")
		return raws, nil
	}

	raws, err := s.next.FetchDoctors(ctx)
	if err != nil {
		return nil, err
	}

	s.writeCache(ctx, raws)
	return raws, nil
}

func (s *cachedDoctorSource) readCache(ctx context.Context) ([]entity.RawDoctor, bool) {
	ctx, cancel := context.WithTimeout(ctx, redisCacheTimeout)
	defer cancel()

	data, err := s.redisClient.Get(ctx, s.key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Warnf("Failed to read doctors cache: %+v", err)
		}
		return nil, false
	}

	var raws []entity.RawDoctor
	if err := json.Unmarshal(data, &raws); err != nil {
		s.log.Warnf("Discarding unreadable doctors cache: %+v", err)
		return nil, false
	}
	return raws, true
}

func (s *cachedDoctorSource) writeCache(ctx context.Context, raws []entity.RawDoctor) {
	data, err := json.Marshal(raws)
	if err != nil {
		s.log.Warnf("Failed to encode doctors for cache: %+v", err)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, redisCacheTimeout)
	defer cancel()

	if err := s.redisClient.Set(ctx, s.key, data, s.ttl).Err(); err != nil {
		s.log.Warnf("Failed to write doctors cache: %+v", err)
	}
}
