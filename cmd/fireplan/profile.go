package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/rgehrsitz/fireplan/internal/config"
	"github.com/rgehrsitz/fireplan/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

func profileCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage saved household profiles",
	}
	cmd.AddCommand(
		profileListCmd(a),
		profileSaveCmd(a),
		profileLoadCmd(a),
		profileDeleteCmd(a),
		profileUseCmd(a),
	)
	return cmd
}

// withStore opens the store for the duration of fn
func (a *app) withStore(cmd *cobra.Command, fn func(s store.ProfileStore) error) error {
	s, err := a.openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer func() {
		if err := s.Close(); err != nil {
			a.logger.Warn("failed to close profile store", zap.Error(err))
		}
	}()
	return fn(s)
}

func profileListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd, func(s store.ProfileStore) error {
				profiles, err := s.ListProfiles(cmd.Context())
				if err != nil {
					return err
				}
				current, err := s.CurrentProfile(cmd.Context())
				if err != nil {
					return err
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "\tID\tNAME")
				for _, p := range profiles {
					marker := ""
					if p.ID == current {
						marker = "*"
					}
					fmt.Fprintf(w, "%s\t%s\t%s\n", marker, p.ID, p.Name)
				}
				return w.Flush()
			})
		},
	}
}

func profileSaveCmd(a *app) *cobra.Command {
	var id, name string
	cmd := &cobra.Command{
		Use:   "save [state-file]",
		Short: "Save a snapshot file as a profile",
		Long: `Save a snapshot file as a profile. Without --id a new profile is created;
with --id an existing profile is overwritten or a new one created with that ID.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := a.loadState(args[0])
			if err != nil {
				return err
			}
			if name == "" {
				name = state.UserSettings.Name
			}
			if name == "" {
				name = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
			}

			return a.withStore(cmd, func(s store.ProfileStore) error {
				profile, err := s.SaveProfile(cmd.Context(), store.Profile{ID: id, Name: name})
				if err != nil {
					return err
				}
				if err := s.SaveState(cmd.Context(), profile.ID, state); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved profile %s (%s)\n", profile.ID, profile.Name)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "Profile ID (default: generated)")
	cmd.Flags().StringVar(&name, "name", "", "Profile name (default: household name or file name)")
	return cmd
}

func profileLoadCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "load [profile-id]",
		Short: "Print a profile's snapshot or write it to a file",
		Long:  "Print a profile's snapshot as YAML. Without an ID the current profile is used.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd, func(s store.ProfileStore) error {
				id := ""
				if len(args) == 1 {
					id = args[0]
				} else {
					current, err := s.CurrentProfile(cmd.Context())
					if err != nil {
						return err
					}
					id = current
				}

				state, err := s.LoadState(cmd.Context(), id)
				if err != nil {
					return err
				}
				if out != "" {
					if err := config.NewInputParser().SaveToFile(state, out); err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Wrote profile %s to %s\n", id, out)
					return nil
				}
				data, err := yaml.Marshal(state)
				if err != nil {
					return fmt.Errorf("failed to marshal snapshot: %w", err)
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			})
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write the snapshot to this file instead of stdout")
	return cmd
}

func profileDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete [profile-id]",
		Short: "Delete a profile and its snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd, func(s store.ProfileStore) error {
				if err := s.DeleteProfile(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted profile %s\n", args[0])
				return nil
			})
		},
	}
}

func profileUseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "use [profile-id]",
		Short: "Make a profile the current one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd, func(s store.ProfileStore) error {
				if err := s.SetCurrentProfile(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Current profile is now %s\n", args[0])
				return nil
			})
		},
	}
}
