package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix    = "user:%d"
	FeedDayKeyPrefix = "feed:%s"
	LocaleKeyPrefix  = "locale:%s"
)

const (
	UserTTL = 5 * time.Minute
	// Closed UTC days never change, but keep a bound in case of reconciliation sweeps.
	FeedDayTTL = 30 * time.Minute
	LocaleTTL  = 24 * time.Hour
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

// FeedDayKey keys the public feed for a UTC day (YYYY-MM-DD).
func FeedDayKey(day string) string {
	return fmt.Sprintf(FeedDayKeyPrefix, day)
}

func LocaleKey(ip string) string {
	return fmt.Sprintf(LocaleKeyPrefix, ip)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidateFeedDay(ctx context.Context, day string) {
	Invalidate(ctx, FeedDayKey(day))
}
