// Command explorer serves a read-only HTTP view over a block_log file,
// standalone from the blocklog CLI's "serve" subcommand for deployments
// that only need the HTTP surface.
package main

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/crokkon/blocklog/core"
	"github.com/crokkon/blocklog/internal/explorer"
)

func main() {
	_ = godotenv.Load(".env")
	viper.AutomaticEnv()

	log := logrus.WithField("component", "cmd/explorer")

	path := viper.GetString("BLOCKLOG_PATH")
	if path == "" {
		path = "block_log"
	}
	addr := viper.GetString("BLOCKLOG_EXPLORER_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	rc, err := core.NewRenderConfig(
		viper.GetString("BLOCKLOG_TIMESTAMP_FORMAT"),
		viper.GetString("BLOCKLOG_AMOUNT_FORMAT"),
		viper.GetString("BLOCKLOG_KEY_FORMAT"),
		viper.GetString("BLOCKLOG_ADDRESS_PREFIX"),
	)
	if err != nil {
		log.Fatalf("render config: %v", err)
	}

	bl, err := core.OpenBlockLog(path, rc)
	if err != nil {
		log.Fatalf("open block log: %v", err)
	}
	defer bl.Close()

	srv := explorer.NewServer(addr, bl)
	log.Fatal(srv.Start())
}
