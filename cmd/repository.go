package main

import (
	"context"
	"fmt"
	"os"
	"pkgadmin/internal/config"
	"pkgadmin/internal/packages"
	"pkgadmin/pkg/domain"
	"pkgadmin/pkg/logger"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// repositoryCommand constructs the 'repository' subcommand managing the
// package repositories packages are created under.
func repositoryCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repository",
		Short: "Manages package repositories",
	}

	cmd.AddCommand(repositoryAddCommand(cfg), repositoryListCommand(cfg))

	return cmd
}

func repositoryAddCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Registers a package repository",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			ID, _ := cmd.Flags().GetString("id")
			name, _ := cmd.Flags().GetString("name")
			pluginID, _ := cmd.Flags().GetString("plugin")
			props, _ := cmd.Flags().GetStringSlice("property")

			repo := domain.PackageRepository{
				ID:       domain.RepositoryID(ID),
				Name:     name,
				PluginID: pluginID,
			}
			for _, p := range props {
				key, value, _ := strings.Cut(p, "=")
				repo.Configuration = append(repo.Configuration, domain.ConfigurationProperty{Key: key, Value: value})
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			stored, err := packages.NewRepositoryFinder(strg).Add(ctx, repo)
			if err != nil {
				logger.Fatal(ctx, "could not add package repository", zap.Error(err))
			}

			fmt.Println(stored.ID) //nolint: forbidigo
		},
	}

	cmd.Flags().String("id", "", "Repository ID, generated when empty")
	cmd.Flags().String("name", "", "Repository name")
	cmd.Flags().String("plugin", "", "Package material plugin ID")
	cmd.Flags().StringSlice("property", nil, "Plugin configuration as KEY=VALUE, repeatable")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("plugin")

	return cmd
}

func repositoryListCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lists package repositories",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			repos, err := packages.NewRepositoryFinder(strg).List(ctx)
			if err != nil {
				logger.Fatal(ctx, "could not list package repositories", zap.Error(err))
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "ID\tNAME\tPLUGIN")
			for _, r := range repos {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", r.ID, r.Name, r.PluginID)
			}
			_ = w.Flush()
		},
	}
}
