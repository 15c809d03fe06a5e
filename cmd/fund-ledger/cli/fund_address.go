package cli

import (
	"fmt"

	"github.com/emergency-fund/fund-ledger/internal/config"
	"github.com/emergency-fund/fund-ledger/internal/types"
	"github.com/spf13/cobra"
)

func FundAddressCmd() *cobra.Command {
	var (
		authority string
		seed      string
		programID string
	)

	cmd := &cobra.Command{
		Use:   "fund-address",
		Short: "Prints the address of the fund owned by an authority",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			authorityAddr, err := types.ParseAddress(authority)
			if err != nil {
				return fmt.Errorf("invalid authority: %w", err)
			}

			fundCfg := config.FundConfig{ProgramID: programID, DefaultSeed: seed}
			if programID == "" {
				cfg, err := config.New(GetConfigPath())
				if err != nil {
					return fmt.Errorf("program id not set and config could not be loaded: %w", err)
				}
				fundCfg.ProgramID = cfg.Fund.ProgramID
				if fundCfg.DefaultSeed == "" {
					fundCfg.DefaultSeed = cfg.Fund.DefaultSeed
				}
			}
			if err := fundCfg.Validate(); err != nil {
				return err
			}

			address, err := types.DeriveFundAddress(authorityAddr, fundCfg.DefaultSeed, fundCfg.ProgramAddress())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), address.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&authority, "authority", "", "base58 address of the fund authority")
	cmd.Flags().StringVar(&seed, "seed", "", fmt.Sprintf("fund seed (default %q or the configured seed)", config.DefaultFundSeed))
	cmd.Flags().StringVar(&programID, "program-id", "", "base58 program id, read from the config file when empty")
	_ = cmd.MarkFlagRequired("authority")

	return cmd
}
