package config

import (
	"os"
	"sync"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/service"
	"github.com/zeromicro/go-zero/core/stores/cache"
)

var (
	config *Config
	once   sync.Once
)

type Auth struct {
	SecretKey    string
	AccessExpire int64
}

type Mongo struct {
	URL string
	DB  string
}

// Engine 生成引擎配置, openai兼容接口
type Engine struct {
	BaseURL    string
	APIKey     string
	Model      string
	TimeoutSec int `json:",default=60"`
}

// Stream SSE流配置
type Stream struct {
	ChunkSize  int `json:",default=120"`
	TimeoutSec int `json:",default=600"`
}

type Moderation struct {
	Words []string `json:",optional"`
}

type Config struct {
	service.ServiceConf
	ListenOn   string
	Auth       Auth
	Engine     Engine
	Stream     Stream          `json:",optional"`
	Moderation Moderation      `json:",optional"`
	Cache      cache.CacheConf `json:",optional"`
	Mongo      Mongo
}

func NewConfig() (*Config, error) {
	c := new(Config)
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "etc/config.yaml"
	}
	err := conf.Load(path, c)
	if err != nil {
		return nil, err
	}
	err = c.SetUp()
	if err != nil {
		return nil, err
	}
	config = c
	return config, nil
}

func GetConfig() *Config {
	return config
}
