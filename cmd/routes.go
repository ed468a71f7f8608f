package cmd

import (
	"fmt"
	"io"
	"net/http"

	"github.com/EO-DataHub/eodhp-posts-filter/api/router"
	"github.com/EO-DataHub/eodhp-posts-filter/internal/appconfig"
	"github.com/gorilla/mux"
	"github.com/spf13/cobra"
)

var routesCmd = &cobra.Command{
	Use:   "routes [path...]",
	Short: "Print the route table, or the route each given path resolves to",
	Run: func(cmd *cobra.Command, args []string) {

		// Load the config and set up logging
		commonSetUp()

		r := buildRouter(appCfg, http.NotFoundHandler())
		printRoutes(cmd.OutOrStdout(), appCfg, r, args)
	},
}

func init() {
	rootCmd.AddCommand(routesCmd)
}

func printRoutes(out io.Writer, cfg *appconfig.Config, r *mux.Router, paths []string) {
	if len(paths) > 0 {
		for _, p := range paths {
			name, ok := router.Resolve(r, p)
			switch {
			case !ok:
				fmt.Fprintf(out, "%s\t(no match)\n", p)
			case name == "":
				fmt.Fprintf(out, "%s\t(unnamed)\n", p)
			default:
				fmt.Fprintf(out, "%s\t%s\n", p, name)
			}
		}
		return
	}

	fmt.Fprintf(out, "router: %s\n", cfg.RouterVariant)
	_ = r.Walk(func(route *mux.Route, _ *mux.Router, _ []*mux.Route) error {
		tpl, err := route.GetPathTemplate()
		if err != nil {
			return nil
		}
		name := route.GetName()
		if name == "" {
			name = "-"
		}
		fmt.Fprintf(out, "%s\t%s\n", tpl, name)
		return nil
	})
}
