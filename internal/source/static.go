package source

import (
	"context"
	"sync"
)

// Static is a Source that returns fixed values. Useful for tests and for
// rendering a dashboard from recorded data.
type Static struct {
	mu      sync.Mutex
	info    *ServerInfo
	sample  *LoadSample
	infoErr error
}

// NewStatic creates a Static source.
func NewStatic(info *ServerInfo, sample *LoadSample) *Static {
	return &Static{info: info, sample: sample}
}

// SetInfo replaces the info returned by later calls.
func (s *Static) SetInfo(info *ServerInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.info = info
}

// SetSample replaces the sample returned by later calls.
func (s *Static) SetSample(sample *LoadSample) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sample = sample
}

// SetInfoError makes Info fail with err until cleared with nil.
func (s *Static) SetInfoError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.infoErr = err
}

// Info implements Source.
func (s *Static) Info(ctx context.Context) (*ServerInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.infoErr != nil {
		return nil, s.infoErr
	}
	return s.info, nil
}

// Sample implements Source.
func (s *Static) Sample(ctx context.Context) (*LoadSample, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sample == nil {
		return &LoadSample{}, nil
	}
	cp := *s.sample
	return &cp, nil
}

var (
	_ Source = (*Static)(nil)
	_ Source = (*Collector)(nil)
)
