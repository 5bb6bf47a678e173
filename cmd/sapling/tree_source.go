package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pbanos/sapling/tree"
	"github.com/pbanos/sapling/tree/json"
	"github.com/pbanos/sapling/tree/redisstore"
	"github.com/pbanos/sapling/tree/yaml"
	"github.com/spf13/pflag"
)

const (
	jsonFormat = "json"
	yamlFormat = "yaml"
)

/*
treeStoreConfig holds the flags to reach the Redis server on which
trees are saved by name.
*/
type treeStoreConfig struct {
	redisAddr     string
	redisPassword string
	redisDB       int
	redisPrefix   string
	name          string
}

func (tsc *treeStoreConfig) addFlags(fs *pflag.FlagSet) {
	fs.StringVar(&(tsc.redisAddr), "redis-addr", "", "address (host:port) of a Redis server storing trees")
	fs.StringVar(&(tsc.redisPassword), "redis-password", "", "password for the Redis server")
	fs.IntVar(&(tsc.redisDB), "redis-db", 0, "Redis database number")
	fs.StringVar(&(tsc.redisPrefix), "redis-prefix", "sapling", "prefix for the keys of trees on the Redis server")
	fs.StringVar(&(tsc.name), "name", "", "name of the tree on the Redis server (required with redis-addr)")
}

func (tsc *treeStoreConfig) enabled() bool {
	return tsc.redisAddr != ""
}

func (tsc *treeStoreConfig) Validate() error {
	if tsc.enabled() && tsc.name == "" {
		return fmt.Errorf("required name flag was not set for Redis server at %s", tsc.redisAddr)
	}
	return nil
}

func (tsc *treeStoreConfig) store() (tree.Store, error) {
	return redisstore.Dial(tsc.redisAddr, tsc.redisPassword, tsc.redisDB, tsc.redisPrefix)
}

/*
treeInputConfig holds the flags that locate the tree a command reads:
either a JSON or YAML file or a Redis server.
*/
type treeInputConfig struct {
	*rootCmdConfig
	treeStoreConfig
	treeInput string
}

func (tic *treeInputConfig) addFlags(fs *pflag.FlagSet, purpose string) {
	fs.StringVarP(&(tic.treeInput), "tree", "t", "", fmt.Sprintf("path to a JSON or YAML (.yml, .yaml) file from which the tree to %s will be read (required unless redis-addr is set)", purpose))
	tic.treeStoreConfig.addFlags(fs)
}

func (tic *treeInputConfig) Validate() error {
	if tic.treeInput == "" && !tic.enabled() {
		return fmt.Errorf("required tree flag was not set")
	}
	if tic.treeInput != "" && tic.enabled() {
		return fmt.Errorf("cannot set both tree and redis-addr flags at the same time")
	}
	return tic.treeStoreConfig.Validate()
}

func (tic *treeInputConfig) loadTree(ctx context.Context) (tree.Node, error) {
	if tic.enabled() {
		tic.Logf("Loading tree %s from Redis server at %s...", tic.name, tic.redisAddr)
		s, err := tic.store()
		if err != nil {
			return nil, err
		}
		defer s.Close(ctx)
		return s.Load(ctx, tic.name)
	}
	format := formatForPath(tic.treeInput, jsonFormat)
	tic.Logf("Reading tree in %s from %s...", format, tic.treeInput)
	var n tree.Node
	var err error
	if format == yamlFormat {
		n, err = yaml.ReadTreeFromFile(tic.treeInput)
	} else {
		n, err = json.ReadTreeFromFile(tic.treeInput)
	}
	if err != nil {
		return nil, fmt.Errorf("reading tree from %s: %w", tic.treeInput, err)
	}
	return n, nil
}

/*
formatForPath returns the tree format matching the extension of the
given path, or def when the extension does not identify any.
*/
func formatForPath(path, def string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return yamlFormat
	case ".json":
		return jsonFormat
	}
	return def
}
