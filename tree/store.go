package tree

import (
	"context"
	"sync"
)

// StoreError represents an error related with tree stores
type StoreError string

/*
ErrTreeNotFound is the error returned by a Store when no tree
is saved under the requested name.
*/
const ErrTreeNotFound = StoreError("tree not found")

func (se StoreError) Error() string {
	return string(se)
}

/*
Store is an interface to manage a store where grown
trees can be saved under a name, retrieved and deleted.

All it methods take a context that may allow
cancelling the operation (thus forcing the return
of an error) if the implementation allows it.
*/
type Store interface {
	// Save takes a name and the root of a tree and
	// stores the tree under the name, replacing any
	// tree previously saved with it. It returns an
	// error if the tree cannot be stored.
	Save(ctx context.Context, name string, n Node) error
	// Load takes a name and returns the root of the
	// tree saved under it, ErrTreeNotFound if there
	// is none, or another error if the store cannot
	// be queried.
	Load(ctx context.Context, name string) (Node, error)
	// Delete takes a name and removes the tree saved
	// under it. Deleting a name without a tree is not
	// an error.
	Delete(ctx context.Context, name string) error
	// Close closes the store, implementations should
	// free any resources in use before returning
	// (unless the context expires).
	Close(ctx context.Context) error
}

type memoryStore struct {
	trees map[string]Node
	lock  *sync.RWMutex
}

// NewMemoryStore returns an implementation
// of Store with the process memory space
// as underlying backend
func NewMemoryStore() Store {
	return &memoryStore{
		trees: make(map[string]Node),
		lock:  &sync.RWMutex{},
	}
}

func (ms *memoryStore) Save(ctx context.Context, name string, n Node) error {
	return ms.withLock(ctx, func(ctx context.Context) error {
		ms.trees[name] = n
		return nil
	})
}

func (ms *memoryStore) Load(ctx context.Context, name string) (Node, error) {
	var n Node
	err := ms.withRLock(ctx, func(ctx context.Context) error {
		var ok bool
		n, ok = ms.trees[name]
		if !ok {
			return ErrTreeNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return n, nil
}

func (ms *memoryStore) Delete(ctx context.Context, name string) error {
	return ms.withLock(ctx, func(ctx context.Context) error {
		delete(ms.trees, name)
		return nil
	})
}

func (ms *memoryStore) Close(ctx context.Context) error {
	return nil
}

func (ms *memoryStore) withLock(ctx context.Context, f func(ctx context.Context) error) error {
	gotLock := make(chan struct{})
	go func() {
		ms.lock.Lock()
		select {
		case <-ctx.Done():
			ms.lock.Unlock()
		case gotLock <- struct{}{}:
		}
	}()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-gotLock:
		defer ms.lock.Unlock()
	}
	return f(ctx)
}

func (ms *memoryStore) withRLock(ctx context.Context, f func(ctx context.Context) error) error {
	gotLock := make(chan struct{})
	go func() {
		ms.lock.RLock()
		select {
		case <-ctx.Done():
			ms.lock.RUnlock()
		case gotLock <- struct{}{}:
		}
	}()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-gotLock:
		defer ms.lock.RUnlock()
	}
	return f(ctx)
}
