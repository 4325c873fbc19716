package source

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/zhengshuai-xiao/hd/internal"
)

const redisDialTimeout = 5 * time.Second

type redisTarget struct {
	addrs    []string
	master   string
	db       int
	username string
	password string
	key      string
}

// parseRedisTarget splits redis://[user:pass@]host:port[,host:port...]/db/key.
// A first host without a port names a sentinel master, as in
// redis://mymaster,s1:26379,s2:26379/0/key.
func parseRedisTarget(target string) (*redisTarget, error) {
	shown := internal.RemovePassword(target)
	u, err := url.Parse(target)
	if err != nil {
		return nil, fmt.Errorf("invalid redis target %q: %v: %w", shown, err, internal.ErrUsage)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("redis target %q has no address: %w", shown, internal.ErrUsage)
	}
	parts := strings.SplitN(strings.TrimPrefix(u.Path, "/"), "/", 2)
	if len(parts) != 2 || parts[1] == "" {
		return nil, fmt.Errorf("redis target %q must look like redis://host:port/db/key: %w", shown, internal.ErrUsage)
	}
	db, err := strconv.Atoi(parts[0])
	if err != nil || db < 0 {
		return nil, fmt.Errorf("redis target %q: invalid db %q: %w", shown, parts[0], internal.ErrUsage)
	}

	t := &redisTarget{addrs: strings.Split(u.Host, ","), db: db, key: parts[1]}
	if len(t.addrs) > 1 && !strings.Contains(t.addrs[0], ":") {
		t.master, t.addrs = t.addrs[0], t.addrs[1:]
	}
	if u.User != nil {
		t.username = u.User.Username()
		t.password, _ = u.User.Password()
	}
	return t, nil
}

func newUniversalRedisClient(ctx context.Context, t *redisTarget, conf *internal.Config) (redis.UniversalClient, error) {
	password := t.password
	if password == "" {
		password = conf.RedisPassword
	}
	if password == "" {
		password = os.Getenv("REDIS_PASSWORD")
	}

	opts := &redis.UniversalOptions{
		Addrs:       t.addrs,
		MasterName:  t.master,
		DB:          t.db,
		Username:    t.username,
		Password:    password,
		MaxRetries:  -1,
		PoolSize:    1,
		DialTimeout: redisDialTimeout,
	}
	switch {
	case opts.MasterName != "":
		logger.Debugf("connecting to redis in sentinel mode, master %s, sentinels %v", opts.MasterName, opts.Addrs)
	case len(opts.Addrs) > 1:
		logger.Debugf("connecting to redis in cluster mode, nodes %v", opts.Addrs)
	default:
		logger.Debugf("connecting to redis at %s", opts.Addrs[0])
	}

	rdb := redis.NewUniversalClient(opts)
	pctx, cancel := context.WithTimeout(ctx, redisDialTimeout)
	defer cancel()
	if err := rdb.Ping(pctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis at %v: %v: %w", t.addrs, err, internal.ErrIO)
	}
	return rdb, nil
}

type redisSource struct {
	*rangeReader
	rdb  redis.UniversalClient
	name string
}

// OpenRedis opens a redis string value. The value is read with GETRANGE in
// readAhead windows, so large values are never pulled in one reply.
func OpenRedis(ctx context.Context, target string, conf *internal.Config) (Source, error) {
	t, err := parseRedisTarget(target)
	if err != nil {
		return nil, err
	}
	rdb, err := newUniversalRedisClient(ctx, t, conf)
	if err != nil {
		return nil, err
	}
	src, err := openRedisKey(ctx, rdb, t.key, internal.RemovePassword(target))
	if err != nil {
		rdb.Close()
		return nil, err
	}
	return src, nil
}

func openRedisKey(ctx context.Context, rdb redis.UniversalClient, key, name string) (*redisSource, error) {
	kind, err := rdb.Type(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", name, err, internal.ErrIO)
	}
	switch kind {
	case "none":
		return nil, fmt.Errorf("%s: %w", name, internal.ErrNotFound)
	case "string":
	default:
		return nil, fmt.Errorf("%s holds a %s, not a string: %w", name, kind, internal.ErrUsage)
	}
	size, err := rdb.StrLen(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", name, err, internal.ErrIO)
	}

	fetch := func(off, n int64) ([]byte, error) {
		s, err := rdb.GetRange(ctx, key, off, off+n-1).Result()
		if err != nil {
			return nil, fmt.Errorf("%s: getrange at 0x%x: %v: %w", name, off, err, internal.ErrIO)
		}
		return []byte(s), nil
	}
	return &redisSource{rangeReader: newRangeReader(size, fetch), rdb: rdb, name: name}, nil
}

func (s *redisSource) Size() int64  { return s.size }
func (s *redisSource) Name() string { return s.name }
func (s *redisSource) Close() error { return s.rdb.Close() }
