package app

import (
	"fmt"

	"github.com/spf13/cobra"

	gsync "github.com/costsync/costsync/internal/sync"
)

// createSyncCommand creates the sync command, the tool's single real
// operation.
func (a *App) createSyncCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Reconcile the cost center's membership once",
		Long: `Sync fetches the target cost center's current members, collects the
desired member set from the configured sources, and applies the add and
remove mutations needed for the two to converge.

Sources come from --org/--team, repeated --source org/team pairs, or a
--sources-file. With no sources configured, the organizations linked on
the cost center record itself are used and its direct members are kept.`,
		Example: `  costsync sync --enterprise acme-corp --cost-center "Platform Eng" --org acme
  costsync sync --enterprise acme-corp --cost-center "Platform Eng" --org acme --team platform
  costsync sync --enterprise acme-corp --cost-center "Platform Eng" --source acme/platform --source widgets/infra
  costsync sync --enterprise acme-corp --cost-center "Platform Eng"   # sources from the record`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runSync(cmd)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&a.config.Enterprise, "enterprise", a.config.Enterprise, "enterprise slug the cost center lives under")
	flags.StringVar(&a.config.CostCenter, "cost-center", a.config.CostCenter, "exact name of the target cost center")
	flags.StringArrayVar(&a.config.Orgs, "org", a.config.Orgs, "source organization (repeatable)")
	flags.StringVar(&a.config.Team, "team", a.config.Team, "scope every --org to this team")
	flags.StringArrayVar(&a.config.Sources, "source", a.config.Sources, "source as org/team pair (repeatable)")
	flags.StringVar(&a.config.SourcesFile, "sources-file", a.config.SourcesFile, "YAML file listing org/team sources")
	flags.StringVar(&a.config.APIURL, "api-url", a.config.APIURL, "directory API base URL override")
	flags.StringVar(&a.config.BillingAPIURL, "billing-api-url", a.config.BillingAPIURL, "billing API base URL override")

	return cmd
}

// runSync executes one reconciliation and emits the result string.
func (a *App) runSync(cmd *cobra.Command) error {
	specs, err := a.config.Specifiers()
	if err != nil {
		return err
	}

	syncer, err := a.Syncer()
	if err != nil {
		return err
	}

	result, err := syncer.Run(cmd.Context(), gsync.Options{
		CostCenter: a.config.CostCenter,
		Sources:    specs,
	})
	if err != nil {
		return err
	}

	output := result.Output()
	fmt.Fprintln(cmd.OutOrStdout(), output)
	if err := writeActionOutput("result", output); err != nil {
		a.logger.Warn().Err(err).Msg("Could not write result to the action output file")
	}
	return nil
}

// createVersionCommand creates the version command.
func (a *App) createVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "costsync %s (commit %s, built %s)\n", a.version, a.commit, a.date)
		},
	}
}
