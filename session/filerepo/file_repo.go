package filerepo

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/apextrack/go-admin-console/session"
)

const sessionFileName = "session.json"

var _ session.Repo = (*FileRepo)(nil)

// FileRepo persists the session as a JSON file under the data folder.
// The file is written 0600; it holds a live bearer token.
type FileRepo struct {
	path string
}

func New(dataFolder string) (*FileRepo, error) {
	if dataFolder == "" {
		return nil, errors.New("[filerepo.New] dataFolder is required")
	}
	if err := os.MkdirAll(dataFolder, 0o700); err != nil {
		return nil, errors.Wrap(err, "[filerepo.New] os.MkdirAll")
	}
	return &FileRepo{path: filepath.Join(dataFolder, sessionFileName)}, nil
}

func (r *FileRepo) Save(sess session.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return errors.Wrap(err, "[FileRepo.Save] json.Marshal")
	}
	if err := os.WriteFile(r.path, data, 0o600); err != nil {
		return errors.Wrap(err, "[FileRepo.Save] os.WriteFile")
	}
	return nil
}

func (r *FileRepo) Load() (session.Session, error) {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return session.Session{}, nil
	}
	if err != nil {
		return session.Session{}, errors.Wrap(err, "[FileRepo.Load] os.ReadFile")
	}

	var sess session.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		// A corrupt session file should not brick the console; treat it
		// as no persisted session.
		_ = os.Remove(r.path)
		return session.Session{}, nil
	}
	return sess, nil
}

func (r *FileRepo) Clear() error {
	if err := os.Remove(r.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "[FileRepo.Clear] os.Remove")
	}
	return nil
}
