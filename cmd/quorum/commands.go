package main

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/crypto"
	"github.com/iov-one/quorum/orm"
	"github.com/iov-one/quorum/x/engine"
	"github.com/iov-one/quorum/x/modules"
	"github.com/iov-one/quorum/x/owners"
)

func cmdInit() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init <owner-hex>...",
		Short: "Initialize the owner registry and module set in a fresh store",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			self, err := engineAddress()
			if err != nil {
				return err
			}
			ownerSet := make([]quorum.Address, 0, len(args))
			for _, raw := range args {
				a, err := parseAddress(raw)
				if err != nil {
					return err
				}
				ownerSet = append(ownerSet, a)
			}
			threshold := viper.GetInt64("threshold")

			db, err := openStore()
			if err != nil {
				return err
			}
			cache := db.CacheWrap()
			if err := owners.NewRegistry(self).Setup(cache, ownerSet, threshold); err != nil {
				cache.Discard()
				return err
			}
			if err := modules.NewManager(self).Init(cache); err != nil {
				cache.Discard()
				return err
			}
			if err := cache.Write(); err != nil {
				return err
			}
			commit, err := db.Commit()
			if err != nil {
				return err
			}
			logger.Info().
				Int("owners", len(ownerSet)).
				Int64("threshold", threshold).
				Int64("version", commit.Version).
				Msg("store initialized")
			return nil
		},
	}
	cmd.Flags().Int64("threshold", 1, "approval threshold")
	if err := viper.BindPFlag("threshold", cmd.Flags().Lookup("threshold")); err != nil {
		logger.Fatal().Err(err).Msg("bind flag")
	}
	return cmd
}

func cmdOwners() *cobra.Command {
	return &cobra.Command{
		Use:   "owners",
		Short: "List the owner set and the threshold",
		RunE: func(_ *cobra.Command, _ []string) error {
			self, err := engineAddress()
			if err != nil {
				return err
			}
			db, err := openStore()
			if err != nil {
				return err
			}
			view := db.CacheWrap()
			defer view.Discard()

			reg := owners.NewRegistry(self)
			members, err := reg.Owners(view)
			if err != nil {
				return err
			}
			threshold, err := reg.Threshold(view)
			if err != nil {
				return err
			}
			printf("threshold: %d of %d\n", threshold, len(members))
			for _, m := range members {
				printf("%s\n", m)
			}
			return nil
		},
	}
}

func cmdModules() *cobra.Command {
	return &cobra.Command{
		Use:   "modules",
		Short: "List the enabled modules",
		RunE: func(_ *cobra.Command, _ []string) error {
			self, err := engineAddress()
			if err != nil {
				return err
			}
			db, err := openStore()
			if err != nil {
				return err
			}
			view := db.CacheWrap()
			defer view.Discard()

			mgr := modules.NewManager(self)
			var cursor quorum.Address
			for {
				page, next, err := mgr.ListModules(view, cursor, modules.DefaultPageSize)
				if err != nil {
					return err
				}
				for _, m := range page {
					printf("%s\n", m)
				}
				if next == nil {
					return nil
				}
				cursor = next
			}
		},
	}
}

func cmdTx() *cobra.Command {
	return &cobra.Command{
		Use:   "tx [id]",
		Short: "Show one transaction, or all of them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			db, err := openStore()
			if err != nil {
				return err
			}
			view := db.CacheWrap()
			defer view.Discard()

			ledger := engine.NewLedger()
			from, to := int64(1), int64(0)
			if len(args) == 1 {
				id, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					return errors.Wrap(err, "transaction id")
				}
				from, to = id, id
			} else {
				latest, err := ledger.LatestID(view)
				if err != nil {
					return err
				}
				to = latest
			}
			for id := from; id <= to; id++ {
				tx, err := ledger.Get(view, id)
				if err != nil {
					return err
				}
				printf("id=%d kind=%s target=%s value=%d approvals=%d executed=%t payload=%X\n",
					id, tx.Kind, tx.Target, tx.Value, tx.Approvals, tx.Executed, tx.Payload)
			}
			return nil
		},
	}
}

func cmdKeygen() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keygen <label>...",
		Short: "Derive owner addresses from a seed",
		Long: "Derive one secp256k1 key per label from the seed passed " +
			"via --seed or the QUORUM_SEED environment variable and print " +
			"the resulting addresses. Derivation is deterministic, the " +
			"same seed and label always yield the same key.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			seed := viper.GetString("seed")
			if seed == "" {
				return errors.New("a non empty seed is required")
			}
			for _, label := range args {
				key, err := crypto.DerivePrivateKey([]byte(seed), label)
				if err != nil {
					return err
				}
				printf("%s\t%s\n", label, key.Address())
			}
			return nil
		},
	}
	cmd.Flags().String("seed", "", "seed material for key derivation")
	if err := viper.BindPFlag("seed", cmd.Flags().Lookup("seed")); err != nil {
		logger.Fatal().Err(err).Msg("bind flag")
	}
	return cmd
}

func cmdNonce() *cobra.Command {
	return &cobra.Command{
		Use:   "nonce",
		Short: "Show the last consumed direct execution nonce",
		RunE: func(_ *cobra.Command, _ []string) error {
			db, err := openStore()
			if err != nil {
				return err
			}
			view := db.CacheWrap()
			defer view.Discard()

			seq := orm.NewSequence("engine", "nonce")
			val, _, err := seq.Latest(view)
			if err != nil {
				return err
			}
			printf("%d\n", val)
			return nil
		},
	}
}
