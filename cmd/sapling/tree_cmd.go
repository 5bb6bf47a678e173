package main

import (
	"fmt"
	"os"

	"github.com/pbanos/sapling/tree"
	"github.com/spf13/cobra"
)

type treeCmdConfig struct {
	*rootCmdConfig
	input treeInputConfig
}

func treeCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &treeCmdConfig{rootCmdConfig: rootConfig}
	config.input.rootCmdConfig = rootConfig
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Show a decision tree",
		Long:  `Show a decision tree as the questions asked at every node and the labels at its leaves`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.input.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			root, err := config.input.loadTree(cmd.Context())
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			config.Logf("Tree with depth %d and %d leaves", tree.Depth(root), tree.LeafCount(root))
			fmt.Fprint(cmd.OutOrStdout(), tree.Format(root))
		},
	}
	config.input.addFlags(cmd.Flags(), "show")
	return cmd
}
