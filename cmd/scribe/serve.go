package main

import (
	"errors"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/odvcencio/scribe/editor"
	"github.com/odvcencio/scribe/web"
)

func newServeCommand() *cobra.Command {
	var addr, configPath string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve editing sessions over WebSocket JSON-RPC",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := editor.DefaultConfig()
			if configPath != "" {
				var err error
				if cfg, err = editor.LoadConfig(configPath); err != nil {
					return err
				}
			}

			srv := web.NewServer(cfg)
			server := &http.Server{Addr: addr, Handler: srv}
			go func() {
				<-cmd.Context().Done()
				server.Close()
			}()
			defer srv.Close()

			log.Notice("Serving editing sessions on %s (ws://%s/ws)", addr, addr)
			if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			log.Notice("Server stopped")
			return nil
		},
	}
	cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "address to listen on")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML file of editing preferences")
	return cmd
}
