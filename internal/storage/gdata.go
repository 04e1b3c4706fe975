package storage

import (
	"errors"
	"fmt"

	"github.com/quasilyte/gdata/v2"
)

// DefaultAppName is the gdata application name used when none is given.
const DefaultAppName = "dash_runner"

const (
	gdataObject = "score"
	gdataProp   = "best"
)

// GdataStore keeps the best score in the user's application data directory.
type GdataStore struct {
	manager *gdata.Manager
}

func init() {
	Register(BackendGdata, func(opts Options) (Store, error) {
		return OpenGdata(opts.AppName)
	})
}

// OpenGdata opens the data directory of the given application.
func OpenGdata(appName string) (*GdataStore, error) {
	if appName == "" {
		appName = DefaultAppName
	}
	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open gdata for %s: %w", appName, err)
	}
	if manager == nil {
		return nil, errors.New("storage: gdata is not available on this platform")
	}
	return &GdataStore{manager: manager}, nil
}

// Best returns the stored best score, or 0 if none was saved yet.
func (s *GdataStore) Best() (int, error) {
	if !s.manager.ObjectPropExists(gdataObject, gdataProp) {
		return 0, nil
	}
	data, err := s.manager.LoadObjectProp(gdataObject, gdataProp)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot load best score: %w", err)
	}
	return parseBest(string(data))
}

// SetBest overwrites the best score.
func (s *GdataStore) SetBest(score int) error {
	value, err := formatBest(score)
	if err != nil {
		return err
	}
	if err := s.manager.SaveObjectProp(gdataObject, gdataProp, []byte(value)); err != nil {
		return fmt.Errorf("storage: cannot save best score: %w", err)
	}
	return nil
}

// Reset stores an empty value, which reads back as no best score.
func (s *GdataStore) Reset() error {
	if err := s.manager.SaveObjectProp(gdataObject, gdataProp, nil); err != nil {
		return fmt.Errorf("storage: cannot reset best score: %w", err)
	}
	return nil
}

// Close is a no-op; gdata writes files eagerly.
func (s *GdataStore) Close() error {
	return nil
}
