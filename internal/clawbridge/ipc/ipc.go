package ipc

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/sjzar/clawbridge/internal/errors"
)

const TypeMessage = "message"

// Message is the on-disk contract consumed by the nanoclaw container. Files
// are written once and never mutated; ownership transfers to the bot on
// write.
type Message struct {
	Type    string `json:"type"`
	ChatJID string `json:"chatJid"`
	Text    string `json:"text"`
}

type Config interface {
	GetDataDir() string
}

// Service writes IPC message files into the shared data volume.
type Service struct {
	dataDir string
}

func NewService(conf Config) *Service {
	return &Service{
		dataDir: conf.GetDataDir(),
	}
}

// MessagesDir returns the directory polled by the bot for new messages.
func (s *Service) MessagesDir() string {
	return filepath.Join(s.dataDir, "ipc", "main", "messages")
}

// Send writes a message file addressed to the given JID and returns its
// path. The messages directory is created by the bot on startup; if it is
// missing the bot is not running and nothing is written.
//
// Concurrent requests within the same millisecond produce the same filename
// and the later write wins. The bot's polling contract names files by
// millisecond timestamp, so the collision window is accepted here rather
// than worked around with a different naming scheme.
func (s *Service) Send(jid, text string) (string, error) {
	dir := s.MessagesDir()
	stat, err := os.Stat(dir)
	if err != nil || !stat.IsDir() {
		return "", errors.IPCDirNotFound(dir)
	}

	b, err := json.Marshal(&Message{
		Type:    TypeMessage,
		ChatJID: jid,
		Text:    text,
	})
	if err != nil {
		return "", errors.Internal("failed to marshal ipc message", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("webhook-%d.json", time.Now().UnixMilli()))

	// Write to a temp name, then rename onto the final name. The bot only
	// picks up webhook-*.json, so it never observes a partial file.
	if err := writeFileAtomic(path, b); err != nil {
		return "", errors.IPCWriteFailed(path, err)
	}

	log.Debug().Msgf("wrote ipc message %s for %s", path, jid)

	return path, nil
}

func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".webhook-*.tmp")
	if err != nil {
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}
