package cmd

import (
	"context"
	"sync"

	"github.com/spf13/cobra"

	"github.com/sdtaxation/adminctl/internal/config"
	"github.com/sdtaxation/adminctl/internal/credstore"
	"github.com/sdtaxation/adminctl/internal/errors"
	"github.com/sdtaxation/adminctl/internal/log"
	"github.com/sdtaxation/adminctl/internal/notify"
	"github.com/sdtaxation/adminctl/internal/pincode"
	"github.com/sdtaxation/adminctl/internal/platform"
	"github.com/sdtaxation/adminctl/internal/session"
	"github.com/sdtaxation/adminctl/internal/ux"
)

// app bundles the wired collaborators every command needs. Built once
// per process on first use.
type app struct {
	cfg      *config.Config
	logger   *log.Logger
	store    *credstore.Store
	signal   *session.ExpirySignal
	client   *platform.Client
	manager  *session.Manager
	pincodes *pincode.Client
	notifier *notify.Notifier
}

var (
	appOnce sync.Once
	appInst *app
	appErr  error
)

// getApp wires the application graph: config, logger, credential store,
// expiry signal, platform client and session manager.
func getApp() (*app, error) {
	appOnce.Do(func() {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			appErr = err
			return
		}

		logger := log.New(log.Config{
			Level:  log.ParseLevel(cfg.LogLevel),
			Format: log.ParseFormat(cfg.LogFormat),
			Output: log.OutputStderr(),
		})
		log.SetDefaultLogger(logger)

		store := credstore.New(cfg.StorageDir, logger)
		signal := session.NewExpirySignal()
		client := platform.NewClient(cfg.APIBaseURL, store,
			platform.WithTimeout(cfg.HTTPTimeout),
			platform.WithExpiryPublisher(signal),
			platform.WithLogger(logger),
		)
		manager := session.NewManager(store, client, signal,
			session.WithWatchInterval(cfg.ExpiryCheckInterval),
			session.WithCountdown(cfg.ExpiryCountdown),
			session.WithManagerLogger(logger),
		)

		appInst = &app{
			cfg:      cfg,
			logger:   logger,
			store:    store,
			signal:   signal,
			client:   client,
			manager:  manager,
			pincodes: pincode.NewClient(cfg.PincodeBaseURL, pincode.WithLogger(logger)),
			notifier: notify.New(notify.WithNoColor(flagNoColor)),
		}
	})
	return appInst, appErr
}

// requireSession restores the session and fails when no valid login is
// available. Commands that talk to protected endpoints call it first.
func requireSession(ctx context.Context, a *app) error {
	a.manager.Initialize(ctx)
	snap := a.manager.Snapshot()
	if !snap.Authenticated() {
		if snap.ModalVisible {
			return errors.NewTokenExpiredError()
		}
		return errors.NewNotLoggedInError()
	}
	return nil
}

// formatter builds the output formatter the --output flag asked for,
// writing to the command's stdout.
func formatter(cmd *cobra.Command) (ux.Formatter, error) {
	return ux.NewFormatter(flagOutput, &ux.FormatterOptions{
		Writer:  cmd.OutOrStdout(),
		NoColor: flagNoColor,
	})
}

// confirmed gates destructive actions behind a prompt unless --yes.
func confirmed(cmd *cobra.Command, message string) bool {
	if flagYes {
		return true
	}
	return ux.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(), message, false)
}
