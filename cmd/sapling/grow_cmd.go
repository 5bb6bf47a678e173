package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pbanos/sapling"
	"github.com/pbanos/sapling/tree"
	"github.com/pbanos/sapling/tree/json"
	"github.com/pbanos/sapling/tree/yaml"
	"github.com/spf13/cobra"
)

type growCmdConfig struct {
	*rootCmdConfig
	input  tableInputConfig
	store  treeStoreConfig
	output string
	format string
}

func growCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &growCmdConfig{rootCmdConfig: rootConfig}
	config.input.rootCmdConfig = rootConfig
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow a tree from a table",
		Long:  `Grow a decision tree from a table of samples to predict the value of its last column.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			ctx := cmd.Context()
			t, featureNames, err := config.input.readTable(ctx)
			if err != nil {
				fmt.Fprintf(os.Stderr, "reading table: %v\n", err)
				os.Exit(2)
			}
			config.Logf("Growing tree from a table with %d rows and features %v...", t.Count(), featureNames)
			root, err := config.grower().Grow(t, featureNames)
			if err != nil {
				fmt.Fprintf(os.Stderr, "growing the tree: %v\n", err)
				os.Exit(3)
			}
			config.Logf("Done: tree with depth %d and %d leaves", tree.Depth(root), tree.LeafCount(root))
			if config.store.enabled() {
				err = config.saveTree(ctx, root)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(4)
				}
				if config.output == "" {
					return
				}
			}
			err = config.outputTree(cmd.OutOrStdout(), root)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(5)
			}
		},
	}
	config.input.addFlags(cmd.PersistentFlags(), "grow the tree from")
	config.store.addFlags(cmd.PersistentFlags())
	cmd.PersistentFlags().StringVarP(&(config.output), "output", "o", "", "path to a file to which the generated tree will be written (defaults to STDOUT unless redis-addr is set)")
	cmd.PersistentFlags().StringVarP(&(config.format), "format", "f", "", "format of the written tree: json or yaml (defaults to the one matching the output extension, or json)")
	return cmd
}

func (gcc *growCmdConfig) Validate() error {
	if err := gcc.input.Validate(); err != nil {
		return err
	}
	if err := gcc.store.Validate(); err != nil {
		return err
	}
	switch gcc.format {
	case "", jsonFormat, yamlFormat:
	default:
		return fmt.Errorf("unknown format %s, valid ones are %s and %s", gcc.format, jsonFormat, yamlFormat)
	}
	return nil
}

func (gcc *growCmdConfig) grower() *sapling.Grower {
	g := &sapling.Grower{}
	if gcc.verbose {
		g.Tracer = sapling.LogTracer(gcc)
	}
	return g
}

func (gcc *growCmdConfig) outputFormat() string {
	if gcc.format != "" {
		return gcc.format
	}
	return formatForPath(gcc.output, jsonFormat)
}

func (gcc *growCmdConfig) outputTree(stdout io.Writer, root tree.Node) error {
	w := stdout
	if gcc.output != "" {
		f, err := os.Create(gcc.output)
		if err != nil {
			return fmt.Errorf("creating %s: %w", gcc.output, err)
		}
		defer f.Close()
		w = f
	}
	if gcc.outputFormat() == yamlFormat {
		return yaml.WriteTree(w, root)
	}
	return json.WriteTree(w, root)
}

func (gcc *growCmdConfig) saveTree(ctx context.Context, root tree.Node) error {
	gcc.Logf("Saving tree %s on Redis server at %s...", gcc.store.name, gcc.store.redisAddr)
	s, err := gcc.store.store()
	if err != nil {
		return err
	}
	defer s.Close(ctx)
	return s.Save(ctx, gcc.store.name, root)
}
