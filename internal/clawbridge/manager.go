package clawbridge

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/sjzar/clawbridge/internal/clawbridge/conf"
	"github.com/sjzar/clawbridge/internal/clawbridge/groups"
	"github.com/sjzar/clawbridge/internal/clawbridge/http"
	"github.com/sjzar/clawbridge/internal/clawbridge/ipc"
	"github.com/sjzar/clawbridge/pkg/config"
)

// Manager wires the bridge services together.
type Manager struct {
	sc  *conf.ServerConfig
	scm *config.Manager

	// Services
	groups *groups.Service
	ipc    *ipc.Service
	http   *http.Service
}

func New() *Manager {
	return &Manager{}
}

// CommandHTTPServer loads configuration, builds the services and serves HTTP
// until SIGINT or SIGTERM.
func (m *Manager) CommandHTTPServer(configPath string, cmdConf map[string]any) error {

	var err error
	m.sc, m.scm, err = conf.LoadServiceConfig(configPath, cmdConf)
	if err != nil {
		return err
	}

	m.groups, err = groups.NewService(m.sc)
	if err != nil {
		return err
	}

	m.ipc = ipc.NewService(m.sc)

	m.http = http.NewService(m.sc, m.groups, m.ipc)

	errc := make(chan error, 1)
	go func() {
		errc <- m.http.ListenAndServe()
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errc:
		return err
	case sig := <-sigc:
		log.Info().Msgf("received signal %s, shutting down", sig)
		return m.http.Stop()
	}
}
