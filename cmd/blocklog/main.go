// Command blocklog inspects and streams a Steem-style block_log file.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/crokkon/blocklog/core"
	"github.com/crokkon/blocklog/internal/explorer"
)

var log = logrus.WithField("component", "cmd/blocklog")

func main() {
	_ = godotenv.Load(".env")
	viper.AutomaticEnv()

	root := &cobra.Command{Use: "blocklog"}
	root.PersistentFlags().String("path", "block_log", "path to the block log file")
	root.PersistentFlags().String("timestamp-format", "datetime", "datetime|unix|string")
	root.PersistentFlags().String("amount-format", "structured", "structured|string")
	root.PersistentFlags().String("key-format", "hex", "hex|string")
	root.PersistentFlags().String("address-prefix", "STM", "chain address prefix used when key-format=string")

	root.AddCommand(inspectCmd())
	root.AddCommand(streamCmd())
	root.AddCommand(serveCmd())

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func renderConfigFromFlags(cmd *cobra.Command) (core.RenderConfig, error) {
	ts, _ := cmd.Flags().GetString("timestamp-format")
	am, _ := cmd.Flags().GetString("amount-format")
	key, _ := cmd.Flags().GetString("key-format")
	prefix, _ := cmd.Flags().GetString("address-prefix")
	return core.NewRenderConfig(ts, am, key, prefix)
}

func openLog(cmd *cobra.Command) (*core.BlockLog, error) {
	path, _ := cmd.Flags().GetString("path")
	rc, err := renderConfigFromFlags(cmd)
	if err != nil {
		return nil, err
	}
	return core.OpenBlockLog(path, rc)
}

func inspectCmd() *cobra.Command {
	var number uint32
	var offset int64

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "decode and print a single block",
		RunE: func(cmd *cobra.Command, args []string) error {
			bl, err := openLog(cmd)
			if err != nil {
				return err
			}
			defer bl.Close()

			var blk *core.Block
			if number != 0 {
				blk, err = bl.BlockAtNumber(number)
			} else {
				blk, err = bl.BlockAtOffset(offset)
			}
			if err != nil {
				return err
			}
			return printJSON(blk)
		},
	}
	cmd.Flags().Uint32Var(&number, "number", 0, "block number (requires index_log)")
	cmd.Flags().Int64Var(&offset, "offset", 0, "byte offset, used when --number is unset")
	return cmd
}

func streamCmd() *cobra.Command {
	var start, stop uint32
	var opNames []string
	var rawOps bool

	cmd := &cobra.Command{
		Use:   "stream",
		Short: "stream filtered operations as newline-delimited JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			bl, err := openLog(cmd)
			if err != nil {
				return err
			}
			defer bl.Close()

			s := core.NewStream(bl, start, stop, opNames, rawOps)
			enc := json.NewEncoder(os.Stdout)
			for {
				rec, ok := s.Next()
				if !ok {
					break
				}
				if err := enc.Encode(rec); err != nil {
					return err
				}
			}
			return s.Err()
		},
	}
	cmd.Flags().Uint32Var(&start, "start", 0, "first block number (advisory, requires index_log to seek)")
	cmd.Flags().Uint32Var(&stop, "stop", 0, "last block number, 0 for unbounded")
	cmd.Flags().StringSliceVar(&opNames, "op", nil, "operation names to include, empty for all")
	cmd.Flags().BoolVar(&rawOps, "raw-ops", false, "emit {block_num,trx_num,op,timestamp} instead of augmented field maps")
	return cmd
}

func printJSON(v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}

func serveCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "serve a read-only HTTP explorer over the block log",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("path")
			rc, err := renderConfigFromFlags(cmd)
			if err != nil {
				return err
			}
			return runExplorer(addr, path, rc)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "HTTP listen address")
	return cmd
}

func runExplorer(addr, path string, rc core.RenderConfig) error {
	bl, err := core.OpenBlockLog(path, rc)
	if err != nil {
		return err
	}
	defer bl.Close()
	return explorer.NewServer(addr, bl).Start()
}
