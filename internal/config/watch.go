package config

import (
	"github.com/fsnotify/fsnotify"
	"github.com/rileyhilliard/dash/internal/errors"
)

// Watch re-reads the config file at path whenever it changes on disk and
// passes the result to onChange. A failed reload hands over a nil config and
// the error; the caller decides whether to surface it. An empty path is a
// no-op since there's nothing to watch.
//
// The watch lives for the rest of the process.
func Watch(path string, onChange func(*Config, error)) error {
	if path == "" || onChange == nil {
		return nil
	}

	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Can't watch config file "+path,
			"Check the file exists and is valid YAML")
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		cfg, err := fromViper(v, path)
		if err == nil {
			err = Validate(cfg)
		}
		if err != nil {
			onChange(nil, err)
			return
		}
		onChange(cfg, nil)
	})
	v.WatchConfig()
	return nil
}
