package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pbanos/sapling/tree"
	"github.com/spf13/cobra"
)

type predictCmdConfig struct {
	*rootCmdConfig
	tree treeInputConfig
}

func predictCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &predictCmdConfig{rootCmdConfig: rootConfig}
	config.tree.rootCmdConfig = rootConfig
	cmd := &cobra.Command{
		Use:   "predict [FEATURE=VALUE]...",
		Short: "Predict the label of a sample",
		Long:  `Use a tree to predict the label of a sample given as feature=value arguments`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.tree.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			sample, err := parseSample(args)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			root, err := config.tree.loadTree(cmd.Context())
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			label, err := tree.Predict(root, sample)
			if err != nil {
				fmt.Fprintf(os.Stderr, "predicting: %v\n", err)
				os.Exit(4)
			}
			fmt.Fprintln(cmd.OutOrStdout(), label)
		},
	}
	config.tree.addFlags(cmd.Flags(), "predict with")
	return cmd
}

/*
parseSample takes arguments in the feature=value form and returns
the sample they describe or an error if an argument is malformed or
repeats a feature.
*/
func parseSample(args []string) (map[string]string, error) {
	sample := make(map[string]string, len(args))
	for _, arg := range args {
		kv := strings.SplitN(arg, "=", 2)
		if len(kv) != 2 || kv[0] == "" {
			return nil, fmt.Errorf("invalid sample argument %q, expected feature=value", arg)
		}
		if _, ok := sample[kv[0]]; ok {
			return nil, fmt.Errorf("feature %s given more than once", kv[0])
		}
		sample[kv[0]] = kv[1]
	}
	return sample, nil
}
