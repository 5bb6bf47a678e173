/*
Package redisstore provides an implementation of tree.Store
backed by a redis DB.
*/
package redisstore

import (
	"context"
	"fmt"

	"github.com/pbanos/sapling/tree"
	treejson "github.com/pbanos/sapling/tree/json"
	"gopkg.in/redis.v5"
)

type redisStore struct {
	rc     *redis.Client
	prefix string
}

/*
New builds a tree.Store backed by a redis DB through the given
client. Trees are kept JSON-encoded under the key prefix:name.
*/
func New(rc *redis.Client, prefix string) tree.Store {
	return &redisStore{rc, prefix}
}

/*
Dial takes a redis address, password and DB number and returns a
tree.Store over a new client to it or an error if the server does
not answer a PING.
*/
func Dial(addr, password string, db int, prefix string) (tree.Store, error) {
	rc := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	if err := rc.Ping().Err(); err != nil {
		rc.Close()
		return nil, fmt.Errorf("connecting to redis at %s: %v", addr, err)
	}
	return &redisStore{rc, prefix}, nil
}

func (rs *redisStore) Save(ctx context.Context, name string, n tree.Node) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	redisID := rs.keyFor(name)
	data, err := treejson.Encode(n)
	if err != nil {
		return fmt.Errorf("storing tree %q: encoding tree: %v", redisID, err)
	}
	_, err = rs.rc.Set(redisID, data, 0).Result()
	if err != nil {
		return fmt.Errorf("storing tree %q in redis: %v", redisID, err)
	}
	return nil
}

func (rs *redisStore) Load(ctx context.Context, name string) (tree.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	redisID := rs.keyFor(name)
	data, err := rs.rc.Get(redisID).Bytes()
	if err == redis.Nil {
		return nil, fmt.Errorf("retrieving tree %q: %w", redisID, tree.ErrTreeNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("retrieving tree %q: %v", redisID, err)
	}
	n, err := treejson.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("retrieving tree %q: decoding %q: %v", redisID, data, err)
	}
	return n, nil
}

func (rs *redisStore) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	redisID := rs.keyFor(name)
	_, err := rs.rc.Del(redisID).Result()
	if err != nil {
		return fmt.Errorf("deleting tree %q from redis: %v", redisID, err)
	}
	return nil
}

func (rs *redisStore) Close(ctx context.Context) error {
	return rs.rc.Close()
}

func (rs *redisStore) keyFor(name string) string {
	return fmt.Sprintf("%s:%s", rs.prefix, name)
}
