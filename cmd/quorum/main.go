// quorum is an operator tool for engine state kept in a local durable
// store: it initializes the registries and inspects owners, modules,
// transactions and the nonce without going through a transport.
package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/store/iavl"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

func main() {
	root := &cobra.Command{
		Use:   "quorum",
		Short: "Inspect and initialize a quorum engine store",
	}
	root.PersistentFlags().String("home", ".quorum", "directory of the durable store")
	root.PersistentFlags().String("engine", "", "engine identity as hex address")
	for _, flag := range []string{"home", "engine"} {
		if err := viper.BindPFlag(flag, root.PersistentFlags().Lookup(flag)); err != nil {
			logger.Fatal().Err(err).Msg("bind flag")
		}
	}
	viper.SetEnvPrefix("QUORUM")
	viper.AutomaticEnv()

	root.AddCommand(
		cmdInit(),
		cmdOwners(),
		cmdModules(),
		cmdTx(),
		cmdNonce(),
		cmdKeygen(),
	)
	if err := root.Execute(); err != nil {
		logger.Fatal().Err(err).Msg("command failed")
	}
}

// openStore opens the durable store under the configured home directory
// and loads its latest committed version.
func openStore() (*iavl.CommitStore, error) {
	home := viper.GetString("home")
	db, err := iavl.NewCommitStore(home, "quorum")
	if err != nil {
		return nil, err
	}
	if err := db.LoadLatestVersion(); err != nil {
		return nil, err
	}
	return db, nil
}

// engineAddress reads the configured engine identity.
func engineAddress() (quorum.Address, error) {
	return parseAddress(viper.GetString("engine"))
}

func parseAddress(raw string) (quorum.Address, error) {
	val, err := hex.DecodeString(raw)
	if err != nil {
		return nil, errors.Wrap(err, "cannot decode hex address")
	}
	a := quorum.Address(val)
	return a, a.Validate()
}

func printf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stdout, format, args...)
}
