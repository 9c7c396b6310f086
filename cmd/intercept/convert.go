package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/taigrr/intercept/internal/scenario"
)

func newConvertCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Convert between YAML scenarios and glTF scenes",
		Long: "convert writes a single scenario as a glTF scene (.gltf or .glb), or any\n" +
			"scenario file as a YAML scenario list (.yaml or .yml).",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, out := args[0], args[1]
			ss, err := scenario.Load(in)
			if err != nil {
				return err
			}

			switch strings.ToLower(filepath.Ext(out)) {
			case ".yaml", ".yml":
				data, err := scenario.MarshalYAML(ss)
				if err != nil {
					return fmt.Errorf("encode %s: %w", out, err)
				}
				if err := os.WriteFile(out, data, 0o644); err != nil {
					return fmt.Errorf("write %s: %w", out, err)
				}
			default:
				if len(ss) != 1 {
					return fmt.Errorf("%s holds %d scenarios, a scene holds one", in, len(ss))
				}
				if err := scenario.SaveGLTF(ss[0], out); err != nil {
					return err
				}
			}

			opts.logger.Info("converted", zap.String("from", in), zap.String("to", out), zap.Int("scenarios", len(ss)))
			return nil
		},
	}
}
