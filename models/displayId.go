package models

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/bsm/redislock"
	"github.com/zmeurelos/farm_backend/config"
	"github.com/zmeurelos/farm_backend/utils"
	"gorm.io/gorm"
)

// DisplayIdEntity is implemented by every record type that carries a
// human-readable sequential id ("P001", "R014", ...). The prefix is fixed
// per entity type; the numeric suffix is tenant-scoped and monotonic.
type DisplayIdEntity interface {
	DisplayIdPrefix() string
}

type displayIdSettable interface {
	setDisplayId(string)
}

// insert attempts before giving up with ErrorDisplayIdConflict
const maxDisplayIdAttempts = 5

var displaySeqMutex sync.Mutex

// FormatDisplayId renders prefix + zero-padded suffix. Padding is a minimum:
// suffix 1000 renders as "P1000", not truncated.
func FormatDisplayId(prefix string, n int64) string {
	return fmt.Sprintf("%s%03d", prefix, n)
}

// ParseDisplayIdSuffix extracts the numeric suffix of a display id.
// Returns false for ids that don't match prefix + positive integer.
func ParseDisplayIdSuffix(prefix string, displayId string) (int64, bool) {
	digits, found := strings.CutPrefix(displayId, prefix)
	if !found || digits == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// maxDisplaySuffix computes the true numeric maximum over existing ids.
// Rows that fail to parse are skipped: one corrupted legacy id must not
// block creations. Lexical order is deliberately not used here, it breaks
// past the padding width ("P99" vs "P100").
func maxDisplaySuffix(prefix string, displayIds []string) (max int64, malformed []string) {
	for _, id := range displayIds {
		n, ok := ParseDisplayIdSuffix(prefix, id)
		if !ok {
			malformed = append(malformed, id)
			continue
		}
		if n > max {
			max = n
		}
	}
	return max, malformed
}

// maxDisplaySuffixForTenant reads every display id of the tenant and returns
// the highest parsed suffix. A store failure propagates: silently treating it
// as "no rows" would hand out the tenant's first id again.
func maxDisplaySuffixForTenant[T DisplayIdEntity](ctx context.Context, tenantId string) (int64, error) {
	var model T
	db := config.GetDB()

	var displayIds []string
	if err := db.WithContext(ctx).Model(&model).
		Where("tenant_id = ?", tenantId).
		Pluck("display_id", &displayIds).Error; err != nil {
		return 0, err
	}

	max, malformed := maxDisplaySuffix(model.DisplayIdPrefix(), displayIds)
	if len(malformed) > 0 {
		config.LogWarn(config.GetLogger(), "models", "maxDisplaySuffixForTenant",
			"skipping display ids that do not parse as "+model.DisplayIdPrefix()+"+integer", malformed)
	}
	return max, nil
}

// NextDisplayId returns the next display id for the tenant and entity type.
// Fast path is a redis counter keyed per tenant+type, seeded from the DB
// maximum on first use; without redis every call recomputes the DB maximum.
// The candidate is re-checked against the store before being handed out.
func NextDisplayId[T DisplayIdEntity](ctx context.Context, tenantId string) (string, error) {
	var model T
	prefix := model.DisplayIdPrefix()

	displaySeqMutex.Lock()
	defer displaySeqMutex.Unlock()

	release, err := obtainDisplaySeqLock(ctx, tenantId, prefix)
	if err != nil {
		return "", err
	}
	defer release()

	cacheKey := tenantId + "-" + strings.ToLower(utils.GetTypeName[T]()) + "_display_seq"

	for attempt := 0; attempt < maxDisplayIdAttempts; attempt++ {
		seqNo, err := config.GetRedisCounter(ctx, cacheKey)
		if err != nil {
			return "", err
		}
		// counter fresh (or redis absent): seed from the store's true maximum
		if seqNo <= 1 {
			dbMax, err := maxDisplaySuffixForTenant[T](ctx, tenantId)
			if err != nil {
				return "", err
			}
			seqNo = dbMax + 1
			if err := config.SetRedisObject(cacheKey, &seqNo, 0); err != nil {
				return "", err
			}
		}

		candidate := FormatDisplayId(prefix, seqNo)
		count, err := utils.ResourceCountWhere[T](ctx, tenantId, "display_id = ?", candidate)
		if err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
	}
	return "", utils.ErrorDisplayIdConflict
}

// obtainDisplaySeqLock serializes sequence bootstrap across instances when
// redis is available. Single-instance deployments rely on displaySeqMutex.
func obtainDisplaySeqLock(ctx context.Context, tenantId string, prefix string) (func(), error) {
	locker := config.GetRedisLock()
	if locker == nil {
		return func() {}, nil
	}
	lockKey := fmt.Sprintf("DisplaySeq:%s:%s", tenantId, prefix)
	lock, err := locker.Obtain(ctx, lockKey, 10*time.Second, &redislock.Options{
		RetryStrategy: redislock.LimitRetry(redislock.LinearBackoff(100*time.Millisecond), 20),
	})
	if err == redislock.ErrNotObtained {
		return nil, utils.ErrorDisplayIdConflict
	} else if err != nil {
		return nil, err
	}
	return func() { _ = lock.Release(ctx) }, nil
}

// insertWithDisplayId assigns a fresh display id and inserts the record.
// The composite unique index on (tenant_id, display_id) rejects the losing
// side of a concurrent insert; losers regenerate and retry, bounded.
func insertWithDisplayId[T DisplayIdEntity, PT interface {
	*T
	displayIdSettable
}](ctx context.Context, tenantId string, record PT) error {

	db := config.GetDB()
	for attempt := 0; attempt < maxDisplayIdAttempts; attempt++ {
		displayId, err := NextDisplayId[T](ctx, tenantId)
		if err != nil {
			return err
		}
		record.setDisplayId(displayId)

		err = db.WithContext(ctx).Create(record).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		config.LogWarn(config.GetLogger(), "models", "insertWithDisplayId",
			"display id lost a concurrent insert, regenerating", displayId)
	}
	return utils.ErrorDisplayIdConflict
}
