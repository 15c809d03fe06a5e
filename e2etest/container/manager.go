package container

import (
	"fmt"
	"testing"
	"time"

	"github.com/emergency-fund/fund-ledger/testutil"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"
)

const (
	RabbitMQUser     = "user"
	RabbitMQPassword = "password"
)

// Manager starts the containers an e2e test depends on and purges them when
// the test ends.
type Manager struct {
	cfg  ImageConfig
	pool *dockertest.Pool
}

func NewManager(t *testing.T) (*Manager, error) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, err
	}
	pool.MaxWait = 2 * time.Minute

	return &Manager{
		cfg:  NewImageConfig(),
		pool: pool,
	}, nil
}

// RunRabbitMQResource starts a broker and returns its host:port once it
// accepts connections.
func (m *Manager) RunRabbitMQResource(t *testing.T) string {
	suffix, err := testutil.RandomAlphaNum(3)
	require.NoError(t, err)

	resource, err := m.pool.RunWithOptions(&dockertest.RunOptions{
		Name:       "rabbitmq-e2e-" + suffix,
		Repository: m.cfg.RabbitMQRepository,
		Tag:        m.cfg.RabbitMQVersion,
		Env: []string{
			"RABBITMQ_DEFAULT_USER=" + RabbitMQUser,
			"RABBITMQ_DEFAULT_PASS=" + RabbitMQPassword,
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = m.pool.Purge(resource)
	})

	hostPort := fmt.Sprintf("localhost:%s", resource.GetPort("5672/tcp"))
	err = m.pool.Retry(func() error {
		conn, err := amqp.Dial(fmt.Sprintf("amqp://%s:%s@%s/", RabbitMQUser, RabbitMQPassword, hostPort))
		if err != nil {
			return err
		}
		return conn.Close()
	})
	require.NoError(t, err)

	return hostPort
}
