package services

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"runtime"

	"github.com/zalando/go-keyring"
)

const keyringServiceName = "chatforge"

func GetOS() string {
	return runtime.GOOS
}

// KeyringService stores git access tokens in the OS credential store, keyed
// by remote url. An index file tracks which remotes have a token, since the
// keyring itself cannot be enumerated.
type KeyringService struct {
}

func NewKeyringService() *KeyringService {
	return &KeyringService{}
}

func (s *KeyringService) StoreToken(remote string, token []byte) error {
	if len(token) == 0 {
		return errors.New("token is empty")
	}
	if remote == "" {
		return errors.New("remote is required")
	}

	if err := keyring.Set(keyringServiceName, remote, string(token)); err != nil {
		return err
	}

	return s.addRemote(remote)
}

func (s *KeyringService) GetToken(remote string) (string, error) {
	if remote == "" {
		return "", errors.New("remote is required")
	}
	return keyring.Get(keyringServiceName, remote)
}

func (s *KeyringService) DeleteToken(remote string) error {
	if remote == "" {
		return errors.New("remote is required")
	}

	if err := keyring.Delete(keyringServiceName, remote); err != nil {
		return err
	}

	return s.removeRemote(remote)
}

// ListRemotes returns the remotes that still resolve to a stored token.
func (s *KeyringService) ListRemotes() ([]string, error) {
	remotes, err := s.loadRemotes()
	if err != nil {
		return nil, err
	}

	var results []string
	for _, remote := range remotes {
		if _, err := keyring.Get(keyringServiceName, remote); err != nil {
			continue
		}
		results = append(results, remote)
	}
	return results, nil
}

func (s *KeyringService) indexPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(configDir, keyringServiceName)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}
	return filepath.Join(dir, "remotes.json"), nil
}

func (s *KeyringService) loadRemotes() ([]string, error) {
	path, err := s.indexPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var remotes []string
	if err := json.Unmarshal(data, &remotes); err != nil {
		return nil, err
	}
	return remotes, nil
}

func (s *KeyringService) saveRemotes(remotes []string) error {
	path, err := s.indexPath()
	if err != nil {
		return err
	}
	data, err := json.Marshal(remotes)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

func (s *KeyringService) addRemote(remote string) error {
	remotes, err := s.loadRemotes()
	if err != nil {
		return err
	}
	for _, r := range remotes {
		if r == remote {
			return nil
		}
	}
	return s.saveRemotes(append(remotes, remote))
}

func (s *KeyringService) removeRemote(remote string) error {
	remotes, err := s.loadRemotes()
	if err != nil {
		return err
	}
	kept := remotes[:0]
	for _, r := range remotes {
		if r != remote {
			kept = append(kept, r)
		}
	}
	return s.saveRemotes(kept)
}
