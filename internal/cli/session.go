package cli

import (
	"errors"

	"github.com/roach88/events/internal/config"
	"github.com/roach88/events/internal/engine"
	"github.com/roach88/events/internal/store"
)

// openEngine locates and loads the store and wraps it in an engine.
// Failures are returned as ExitErrors.
func (o *RootOptions) openEngine() (*engine.Engine, error) {
	path, err := o.storePath()
	if err != nil {
		return nil, err
	}

	st, err := store.Open(path, o.log())
	if err != nil {
		return nil, WrapExitError(ExitFailure, ErrCodeLoad, "", err)
	}
	o.log().Debug("store opened", "path", path, "events", st.Len())

	return engine.New(st, o.clock(), o.log()), nil
}

// storePath locates the store file: the configured path when one is set,
// otherwise the default location under the home directory. Neither is
// created when missing.
func (o *RootOptions) storePath() (string, error) {
	cfg := o.config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	var (
		path string
		err  error
	)
	if cfg.Store == "" && o.Home == "" {
		// Looks the home directory up again so a failure keeps its cause.
		path, err = store.UserPath()
	} else {
		path = cfg.StorePath(o.home)
		err = store.VerifyPath(path)
	}
	if err != nil {
		return "", WrapExitError(ExitCommandError, string(store.ErrCodePathUnavailable), "", err)
	}
	return path, nil
}

// commandError maps an engine error to an ExitError.
func commandError(err error) error {
	var ve *engine.ValidationError
	switch {
	case errors.As(err, &ve):
		return WrapExitError(ExitUsage, string(ve.Code), "", err)
	case errors.Is(err, store.ErrPersist):
		return WrapExitError(ExitFailure, ErrCodePersist, "", err)
	case errors.Is(err, store.ErrLoad):
		return WrapExitError(ExitFailure, ErrCodeLoad, "", err)
	default:
		return WrapExitError(ExitFailure, ErrCodeGeneric, "", err)
	}
}
