package groups

import (
	"encoding/json"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/sjzar/clawbridge/internal/errors"
)

type Config interface {
	GetGroupsConfig() string
	GetDefaultGroup() string
	GetGroups() map[string]string
}

// Service resolves group names to WhatsApp JIDs. The mapping is loaded once
// at startup and is immutable afterwards, so it is safe to share across
// concurrent handlers without locking. Changing the groups config requires a
// process restart.
type Service struct {
	defaultGroup string
	jids         map[string]string
}

// NewService loads the group mapping from the groups config file, overlaid
// with any inline entries from the server config. A missing file yields an
// empty mapping; a file that exists but does not parse is a startup error.
func NewService(conf Config) (*Service, error) {
	s := &Service{
		defaultGroup: conf.GetDefaultGroup(),
		jids:         make(map[string]string),
	}

	path := conf.GetGroupsConfig()
	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(b, &s.jids); err != nil {
			return nil, errors.GroupsConfigInvalid(path, err)
		}
	case os.IsNotExist(err):
		log.Warn().Msgf("groups config %s does not exist, starting with empty mapping", path)
	default:
		return nil, errors.GroupsConfigInvalid(path, err)
	}

	for name, jid := range conf.GetGroups() {
		s.jids[name] = jid
	}

	log.Info().Msgf("loaded %d group(s), default group: %q", len(s.jids), s.defaultGroup)

	return s, nil
}

// Resolve maps a group name to its JID. An empty name falls back to the
// configured default group. JID format is not validated.
func (s *Service) Resolve(group string) (string, error) {
	if group == "" {
		group = s.defaultGroup
	}

	jid, ok := s.jids[group]
	if !ok {
		return "", errors.GroupNotFound(group)
	}

	return jid, nil
}

// Len returns the number of configured groups.
func (s *Service) Len() int {
	return len(s.jids)
}
