package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	tokenFile = "token"
	userFile  = "user.json"
)

// FilePersister mirrors the token and the user JSON into two files
// under Dir.
type FilePersister struct {
	Dir string
}

func (p FilePersister) Load() (State, error) {
	const op = "session.FilePersister.Load"

	raw, err := os.ReadFile(filepath.Join(p.Dir, tokenFile))
	if errors.Is(err, fs.ErrNotExist) {
		return State{}, nil
	}
	if err != nil {
		return State{}, fmt.Errorf("%s: %w", op, err)
	}

	st := State{Token: strings.TrimSpace(string(raw))}

	raw, err = os.ReadFile(filepath.Join(p.Dir, userFile))
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return State{}, fmt.Errorf("%s: %w", op, err)
	default:
		if err = json.Unmarshal(raw, &st.User); err != nil {
			return State{}, fmt.Errorf("%s: %w", op, err)
		}
	}

	return st, nil
}

func (p FilePersister) Save(st State) error {
	const op = "session.FilePersister.Save"

	if err := os.MkdirAll(p.Dir, 0o700); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := os.WriteFile(filepath.Join(p.Dir, tokenFile), []byte(st.Token), 0o600); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	raw, err := json.Marshal(st.User)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = os.WriteFile(filepath.Join(p.Dir, userFile), raw, 0o600); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (p FilePersister) Clear() error {
	const op = "session.FilePersister.Clear"

	for _, name := range []string{tokenFile, userFile} {
		if err := os.Remove(filepath.Join(p.Dir, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	return nil
}
