package container

// ImageConfig contains all images and their respective tags
// needed for running e2e tests.
type ImageConfig struct {
	RabbitMQRepository string
	RabbitMQVersion    string
}

const (
	dockerRabbitMQRepository = "rabbitmq"
	dockerRabbitMQVersionTag = "3.13-alpine"
)

// NewImageConfig returns ImageConfig needed for running e2e test.
func NewImageConfig() ImageConfig {
	return ImageConfig{
		RabbitMQRepository: dockerRabbitMQRepository,
		RabbitMQVersion:    dockerRabbitMQVersionTag,
	}
}
