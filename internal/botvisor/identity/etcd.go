package identity

import (
	"context"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	clientv3 "go.etcd.io/etcd/client/v3"

	"github.com/ehsaniara/botvisor/pkg/logger"
)

// Etcd allocates names from a counter key shared by every botvisor instance pointed at
// the same cluster. Each allocation is a compare-and-swap on the key's mod revision.
type Etcd struct {
	Naming
	client *clientv3.Client
	key    string
	floor  atomic.Uint64
	logger *logger.Logger
}

type EtcdConfig struct {
	Endpoints   []string
	DialTimeout time.Duration
	Key         string
	Prefix      string
}

func NewEtcd(cfg EtcdConfig) (*Etcd, error) {
	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = 5 * time.Second
	}
	cli, err := clientv3.New(clientv3.Config{
		Endpoints:   cfg.Endpoints,
		DialTimeout: cfg.DialTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("connect etcd %v: %w", cfg.Endpoints, err)
	}
	return &Etcd{
		Naming: NewNaming(cfg.Prefix),
		client: cli,
		key:    cfg.Key,
		logger: logger.WithField("component", "identity-etcd"),
	}, nil
}

func (e *Etcd) Allocate(ctx context.Context) (string, error) {
	for attempt := 1; ; attempt++ {
		resp, err := e.client.Get(ctx, e.key)
		if err != nil {
			return "", fmt.Errorf("read counter %s: %w", e.key, err)
		}

		var current uint64
		var rev int64 // 0 means the key does not exist yet
		if len(resp.Kvs) > 0 {
			current, err = strconv.ParseUint(string(resp.Kvs[0].Value), 10, 64)
			if err != nil {
				return "", fmt.Errorf("corrupt counter %s=%q: %w", e.key, resp.Kvs[0].Value, err)
			}
			rev = resp.Kvs[0].ModRevision
		}
		if floor := e.floor.Load(); floor > current {
			current = floor
		}
		next := current + 1

		txn, err := e.client.Txn(ctx).
			If(clientv3.Compare(clientv3.ModRevision(e.key), "=", rev)).
			Then(clientv3.OpPut(e.key, strconv.FormatUint(next, 10))).
			Commit()
		if err != nil {
			return "", fmt.Errorf("update counter %s: %w", e.key, err)
		}
		if txn.Succeeded {
			return e.Format(next), nil
		}
		e.logger.Debug("counter contention, retrying", "attempt", attempt)
	}
}

func (e *Etcd) Observe(name string) {
	if seq, ok := e.Sequence(name); ok {
		raiseFloor(&e.floor, seq)
	}
}

func (e *Etcd) Close() error {
	return e.client.Close()
}
