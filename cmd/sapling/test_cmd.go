package main

import (
	"fmt"
	"os"

	"github.com/pbanos/sapling/tree"
	"github.com/spf13/cobra"
)

type testCmdConfig struct {
	*rootCmdConfig
	tree  treeInputConfig
	input tableInputConfig
}

func testCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &testCmdConfig{rootCmdConfig: rootConfig}
	config.tree.rootCmdConfig = rootConfig
	config.input.rootCmdConfig = rootConfig
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test the performance of a tree",
		Long:  `Test the performance of a tree against a table of labelled samples`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			ctx := cmd.Context()
			root, err := config.tree.loadTree(ctx)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			t, featureNames, err := config.input.readTable(ctx)
			if err != nil {
				fmt.Fprintf(os.Stderr, "reading testing table: %v\n", err)
				os.Exit(3)
			}
			config.Logf("Testing tree against table with %d rows...", t.Count())
			successRate, errorCount, err := tree.Test(root, t, featureNames)
			if err != nil {
				fmt.Fprintf(os.Stderr, "testing tree: %v\n", err)
				os.Exit(4)
			}
			config.Logf("Done")
			fmt.Fprintf(cmd.OutOrStdout(), "%f success rate, failed to make a prediction for %d samples\n", successRate, errorCount)
		},
	}
	config.tree.addFlags(cmd.Flags(), "test")
	config.input.addFlags(cmd.Flags(), "test the tree against")
	return cmd
}

func (tcc *testCmdConfig) Validate() error {
	if err := tcc.tree.Validate(); err != nil {
		return err
	}
	return tcc.input.Validate()
}
