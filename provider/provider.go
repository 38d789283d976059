package provider

import (
	"github.com/google/wire"
	"github.com/xh-polaris/aiagent-core-api/biz/application/service"
	"github.com/xh-polaris/aiagent-core-api/biz/domain/model"
	"github.com/xh-polaris/aiagent-core-api/biz/infra/config"
	"github.com/xh-polaris/aiagent-core-api/biz/infra/mapper/conversation"
	"github.com/xh-polaris/aiagent-core-api/biz/infra/mapper/message"
	"github.com/xh-polaris/aiagent-core-api/pkg/ac"
)

var provider *Provider

func Init() {
	var err error
	provider, err = NewProvider()
	if err != nil {
		panic(err)
	}
}

// Provider 提供controller依赖的对象
type Provider struct {
	Config              *config.Config
	ChatService         service.IChatService
	ConversationService service.IConversationService
}

func Get() *Provider {
	return provider
}

func NewProvider() (*Provider, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}
	matcher, err := ac.New(cfg.Moderation.Words)
	if err != nil {
		return nil, err
	}
	engine, err := model.NewChatEngine(cfg)
	if err != nil {
		return nil, err
	}
	conversationMapper := conversation.NewConversationMongoMapper(cfg)
	messageMapper := message.NewMessageMongoMapper(cfg)
	return &Provider{
		Config: cfg,
		ChatService: &service.ChatService{
			Config:             cfg,
			Engine:             engine,
			Moderation:         matcher,
			ConversationMapper: conversationMapper,
			MessageMapper:      messageMapper,
		},
		ConversationService: &service.ConversationService{
			ConversationMapper: conversationMapper,
			MessageMapper:      messageMapper,
		},
	}, nil
}

var ApplicationSet = wire.NewSet(
	service.ChatServiceSet,
	service.ConversationServiceSet,
)

var DomainSet = wire.NewSet(
	model.NewChatEngine,
)

var InfraSet = wire.NewSet(
	config.NewConfig,
	conversation.NewConversationMongoMapper,
	message.NewMessageMongoMapper,
)

var AllProvider = wire.NewSet(
	ApplicationSet,
	DomainSet,
	InfraSet,
)
