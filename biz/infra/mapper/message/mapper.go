package message

import (
	"context"
	"errors"

	"github.com/xh-polaris/aiagent-core-api/biz/infra/config"
	"github.com/xh-polaris/aiagent-core-api/biz/infra/cst"
	"github.com/xh-polaris/aiagent-core-api/pkg/errorx"
	"github.com/xh-polaris/aiagent-core-api/pkg/logs"
	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

var _ MongoMapper = (*mongoMapper)(nil)

const collection = "message"

type MongoMapper interface {
	Insert(ctx context.Context, msg *Message) error
	ListAfter(ctx context.Context, cid, lastId string, limit int64) (msgs []*Message, err error)
}

type mongoMapper struct {
	conn *monc.Model
}

func NewMessageMongoMapper(config *config.Config) MongoMapper {
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, collection, config.Cache)
	return &mongoMapper{conn: conn}
}

// Insert 插入一条msg, 消息不可变, 无更新路径
func (m *mongoMapper) Insert(ctx context.Context, msg *Message) error {
	_, err := m.conn.InsertOneNoCache(ctx, msg)
	return err
}

// ListAfter 取出对话内id严格大于lastId的未删除消息, 按id升序, 最多limit条
// lastId为空串表示从头开始
func (m *mongoMapper) ListAfter(ctx context.Context, cid, lastId string, limit int64) (msgs []*Message, err error) {
	ocid, err := primitive.ObjectIDFromHex(cid)
	if err != nil {
		return nil, err
	}

	filter := bson.M{cst.ConversationId: ocid, cst.Status: bson.M{cst.NE: cst.DeletedStatus}}
	if lastId != "" {
		cursor, err := primitive.ObjectIDFromHex(lastId)
		if err != nil {
			return nil, err
		}
		filter[cst.Id] = bson.M{cst.GT: cursor}
	}
	opts := options.Find().SetSort(bson.M{cst.Id: 1}).SetLimit(limit)
	if err = m.conn.Find(ctx, &msgs, filter, opts); err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		logs.Errorf("[message mapper] find err:%s", errorx.ErrorWithoutStack(err))
		return nil, err
	}
	return msgs, nil
}
