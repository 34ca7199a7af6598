package cli

import (
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	httpadapter "svw.info/sudoku-solver/internal/adapters/http"
	"svw.info/sudoku-solver/internal/hint"
	"svw.info/sudoku-solver/internal/infrastructure/storage"
	"svw.info/sudoku-solver/internal/usecase"
	"svw.info/sudoku-solver/internal/validator"
)

func newServeCommand() *cobra.Command {
	var addr, dataDir string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON solving API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			if dataDir != "" {
				cfg.DataDir = dataDir
			}
			logger := newLogger(cfg.LogLevel)
			eng, err := newSolver(cfg.Engine)
			if err != nil {
				return err
			}
			_ = os.MkdirAll(cfg.DataDir, 0o755)

			// Wire providers -> use cases -> HTTP adapter
			uc := usecase.NewService(eng, validator.New(), hint.NewForcedMoves(), storage.NewFS(cfg.DataDir))
			h := httpadapter.New(uc)

			mux := http.NewServeMux()
			h.Register(mux)

			srv := &http.Server{
				Addr:              cfg.Addr,
				Handler:           httpadapter.RequestLogger(logger, mux),
				ReadHeaderTimeout: 5 * time.Second,
			}
			logger.Info("listening", "addr", cfg.Addr, "data", cfg.DataDir, "engine", cfg.Engine)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("server error", "err", err)
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	cmd.Flags().StringVar(&dataDir, "data", "", "save directory (overrides config)")
	return cmd
}
