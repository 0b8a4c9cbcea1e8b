// Package shell implements the interactive menu over a games catalog.
package shell

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/gamecat/internal/appcontext"
	"github.com/agentstation/gamecat/pkg/catalogs"
)

// NewCommand creates the shell command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var preload bool

	cmd := &cobra.Command{
		Use:     "shell",
		GroupID: "core",
		Short:   "Start the interactive menu",
		Long: `Shell reads one command per line. Numbered commands follow the classic
menu (1 load, 2 developer games, 2.1 export, 3 month, 4.1-4.4 statistics,
5 exit); every command also has a word alias. Type help for the list.

The shell starts with an empty catalog unless --preload is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog := catalogs.New()
			if preload {
				c, err := app.Catalog()
				if err != nil {
					return err
				}
				catalog.Add(c.Games()...)
			}

			return New(app, cmd.InOrStdin(), cmd.OutOrStdout(), catalog).Run(cmd.Context())
		},
	}

	cmd.Flags().BoolVar(&preload, "preload", false, "start with the configured catalog loaded")

	return cmd
}
