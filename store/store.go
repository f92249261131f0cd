package store

import (
	"github.com/sofimaye/platter/errmsg"
)

func New() *store {
	return &store{mp: make(map[string][]string)}
}

func (s *store) Create(name string, blocks int) error {
	if blocks < 0 {
		return errmsg.BadBlockCount
	}
	s.Lock()
	defer s.Unlock()
	if _, ok := s.mp[name]; ok {
		return errmsg.DuplicateFile
	}
	s.mp[name] = make([]string, blocks)
	return nil
}

func (s *store) Write(name string, i int, data string) error {
	s.Lock()
	defer s.Unlock()
	bs, ok := s.mp[name]
	if !ok {
		return errmsg.UnknownFile
	}
	if i < 0 || i >= len(bs) {
		return errmsg.BadBlockIndex
	}
	bs[i] = data
	return nil
}

func (s *store) Read(name string, i int) (string, error) {
	s.Lock()
	defer s.Unlock()
	bs, ok := s.mp[name]
	if !ok {
		return "", errmsg.UnknownFile
	}
	if i < 0 || i >= len(bs) {
		return "", errmsg.BadBlockIndex
	}
	return bs[i], nil
}

func (s *store) Blocks(name string) (int, error) {
	s.Lock()
	defer s.Unlock()
	bs, ok := s.mp[name]
	if !ok {
		return 0, errmsg.UnknownFile
	}
	return len(bs), nil
}

func (s *store) Files() int {
	s.Lock()
	defer s.Unlock()
	return len(s.mp)
}
