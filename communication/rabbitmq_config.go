package communication

// PublisherConfig contains the parameters to publish reports in RabbitMQ. Nothing is published
// unless Enabled is true and URL is set.
type PublisherConfig struct {
	Enabled          bool                      `yaml:"enabled"`
	URL              string                    `yaml:"url"`
	ExchangeConfig   ExchangeDeclarationConfig `yaml:"exchange_declaration_config"`
	PublishingConfig PublishingConfig          `yaml:"publishing_config"`
}

// ExchangeDeclarationConfig contains the parameters to declare a RabbitMQ exchange
type ExchangeDeclarationConfig struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Durable     bool   `yaml:"durable"`
	AutoDeleted bool   `yaml:"auto_deleted"`
	Internal    bool   `yaml:"internal"`
	NoWait      bool   `yaml:"no_wait"`
}

// PublishingConfig config use it for publishing messages in a RabbitMQ exchange
type PublishingConfig struct {
	Exchange    string `yaml:"exchange"`
	RoutingKey  string `yaml:"routing_key"`
	Mandatory   bool   `yaml:"mandatory"`
	Immediate   bool   `yaml:"immediate"`
	ContentType string `yaml:"content_type"`
}
